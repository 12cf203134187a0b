package ctl

import (
	"context"
	"fmt"
	"time"

	"llmctl/internal/ollama"
)

// Health blocks until the runtime answers or timeout elapses; meant for
// scripts that need the runtime ready before proceeding.
func (a *App) Health(ctx context.Context, timeout time.Duration) error {
	fmt.Fprintf(a.Out, "Waiting for Ollama (timeout: %ds)...", int(timeout.Seconds()))
	p := ollama.NewPoller(a.Client, ollama.DefaultPollInterval)
	if p.WaitUntilReady(ctx, timeout) {
		fmt.Fprintf(a.Out, " %s\n", a.styles.ok.Render("OK"))
		return nil
	}
	fmt.Fprintf(a.Out, " %s\n", a.styles.bad.Render("FAILED"))
	if err := ctx.Err(); err != nil {
		// operator interrupt, not a health verdict
		return err
	}
	return ErrReported
}
