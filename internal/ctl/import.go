package ctl

import (
	"context"
	"fmt"

	"llmctl/internal/common/fsutil"
	"llmctl/internal/importer"
)

// Import reconciles every declared model against the runtime. Unreachable
// runtime and unmounted volume are fatal; individual import failures are
// reported per item and never abort the pass.
func (a *App) Import(ctx context.Context) error {
	existing, err := a.Client.Names(ctx)
	if err != nil {
		return fmt.Errorf("ollama is not running at %s", a.Cfg.BaseURL())
	}
	vol, err := a.Cfg.ModelsVolume()
	if err != nil {
		return err
	}
	if !fsutil.PathExists(vol) {
		return fmt.Errorf("models volume not mounted: %s", vol)
	}
	decls, err := a.Cfg.Declarations()
	if err != nil {
		return err
	}

	st := a.styles
	rec := importer.New(a.Tool)
	rec.Progress = func(d importer.Declaration) {
		fmt.Fprintf(a.Out, "  %s %s...\n", st.note.Render("importing"), d.Name)
	}
	outcomes := rec.Reconcile(ctx, decls, existing)

	created := 0
	for _, o := range outcomes {
		name := o.Declaration.Name
		switch o.Status {
		case importer.Created:
			created++
			fmt.Fprintf(a.Out, "  %s %s\n", st.ok.Render("created"), name)
		case importer.SkippedExists:
			fmt.Fprintf(a.Out, "  %s %s (already exists)\n", st.warn.Render("skip"), name)
		case importer.SkippedArtifactMissing:
			fmt.Fprintf(a.Out, "  %s %s (gguf not found: %s)\n", st.bad.Render("skip"), name, o.Declaration.ArtifactPath)
		case importer.SkippedDefinitionMissing:
			fmt.Fprintf(a.Out, "  %s %s (modelfile not found: %s)\n", st.bad.Render("skip"), name, o.Declaration.DefinitionPath)
		case importer.Failed:
			fmt.Fprintf(a.Out, "  %s %s\n    %s\n", st.bad.Render("failed"), name, o.Detail)
		}
		a.Log.Debug().Str("model", name).Stringer("status", o.Status).Msg("reconciled")
	}
	fmt.Fprintf(a.Out, "\nImported %d model(s)\n", created)

	// An interrupt mid-pass shows up as Failed items; still exit 130.
	return ctx.Err()
}
