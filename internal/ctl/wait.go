package ctl

import (
	"context"
	"fmt"
	"time"

	"llmctl/internal/artifacts"
)

// WaitArtifacts blocks until every declared gguf artifact exists on the models
// volume. timeout <= 0 waits forever; the operator's interrupt still works.
func (a *App) WaitArtifacts(ctx context.Context, timeout time.Duration) error {
	decls, err := a.Cfg.Declarations()
	if err != nil {
		return err
	}
	if len(decls) == 0 {
		return fmt.Errorf("no local models declared in configuration")
	}
	paths := make([]string, 0, len(decls))
	for _, d := range decls {
		paths = append(paths, d.ArtifactPath)
	}

	wctx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		wctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	err = artifacts.Wait(wctx, paths, artifacts.DefaultRescanInterval, func(missing []string) {
		fmt.Fprintln(a.Out, "Waiting for:")
		for _, m := range missing {
			fmt.Fprintf(a.Out, "- %s\n", m)
		}
	})
	if err == nil {
		a.line(true, fmt.Sprintf("all %d artifact(s) present", len(paths)))
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("timed out waiting for artifacts after %s", timeout)
}
