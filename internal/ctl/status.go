package ctl

import (
	"context"
	"fmt"
	"sort"

	"llmctl/internal/artifacts"
	"llmctl/internal/common/fsutil"
	"llmctl/internal/ollama"
)

// Status reports runtime reachability, the models volume, the imported model
// set and host resources. An unreachable runtime is a handled failure.
func (a *App) Status(ctx context.Context) error {
	st := a.styles
	a.header("Ollama Status")
	fmt.Fprintf(a.Out, "  Endpoint: %s\n", a.Cfg.BaseURL())

	lctx, cancel := context.WithTimeout(ctx, ollama.LivenessTimeout)
	models, err := a.Client.Models(lctx)
	cancel()
	if err != nil {
		a.line(false, "Ollama is not running")
		fmt.Fprintf(a.Out, "\n  Start with: %s\n", st.note.Render("llmctl serve"))
		return ErrReported
	}
	a.line(true, "Ollama is running")

	vol, err := a.Cfg.ModelsVolume()
	if err != nil {
		return err
	}
	volOK := fsutil.PathExists(vol)
	a.line(volOK, fmt.Sprintf("Models volume: %s", vol))
	if volOK {
		if ggufs, err := artifacts.Scan(vol); err == nil {
			fmt.Fprintf(a.Out, "    %d gguf artifact(s) on volume\n", len(ggufs))
		}
	}

	fmt.Fprintln(a.Out)
	a.header("Loaded Models (%d)", len(models))
	if len(models) == 0 {
		fmt.Fprintf(a.Out, "  %s\n", st.warn.Render("No models loaded"))
		fmt.Fprintf(a.Out, "  Run: %s\n", st.note.Render("llmctl import"))
	} else {
		sort.Slice(models, func(i, j int) bool { return models[i].Name < models[j].Name })
		for _, m := range models {
			fmt.Fprintf(a.Out, "  - %s (%.1f GB)\n", m.Name, m.SizeGB())
		}
	}

	fmt.Fprintln(a.Out)
	a.header("System")
	fmt.Fprintf(a.Out, "  RAM: %d GB\n", a.MemGB())
	fmt.Fprintf(a.Out, "  Arch: %s\n", a.Arch())
	return nil
}
