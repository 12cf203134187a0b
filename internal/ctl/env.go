package ctl

import (
	"fmt"

	"llmctl/internal/envfile"
	"llmctl/internal/selector"
)

// Env selects a model for this host and writes the downstream assistant's env
// file. The write replaces the whole file; re-running is idempotent.
func (a *App) Env(output string) error {
	if output == "" {
		output = envfile.DefaultPath
	}
	mem := a.MemGB()
	model := selector.Select(mem, a.Cfg.Thresholds(), a.Cfg.Tiers())
	pairs := envfile.Render(model, a.Cfg.BaseURL(), mem, a.Arch())
	if err := envfile.Write(output, pairs); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Wrote: %s\n", output)
	fmt.Fprintf(a.Out, "Model: %s\n", model)
	return nil
}
