package ctl

import (
	"context"
	"fmt"

	"llmctl/internal/envfile"
)

// Pull downloads a model through the runtime tool. With no argument the model
// comes from the previously generated env file. The tool's exit code travels
// back to the caller unchanged.
func (a *App) Pull(ctx context.Context, model string) error {
	if model == "" {
		m, err := envfile.Model(envfile.DefaultPath)
		if err != nil {
			return fmt.Errorf("no model given and none recorded: %w (run `llmctl env` first)", err)
		}
		model = m
	}
	fmt.Fprintf(a.Out, "Pulling %s...\n", model)
	return a.Tool.Pull(ctx, model)
}
