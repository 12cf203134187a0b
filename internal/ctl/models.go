package ctl

import (
	"context"
	"fmt"
	"sort"

	"llmctl/internal/common/fsutil"
	"llmctl/internal/ollama"
)

// Models lists declared artifacts and their presence on the volume, then the
// models the runtime reports, tagging declared ones. An unreachable runtime
// only downgrades the second half to a warning.
func (a *App) Models(ctx context.Context) error {
	st := a.styles
	a.header("Local GGUF Files")
	decls, err := a.Cfg.Declarations()
	if err != nil {
		return err
	}
	for _, d := range decls {
		status := st.ok.Render("exists")
		if !fsutil.PathExists(d.ArtifactPath) {
			status = st.bad.Render("missing")
		}
		fmt.Fprintf(a.Out, "  %s: %s\n", d.Name, status)
	}

	lctx, cancel := context.WithTimeout(ctx, ollama.LivenessTimeout)
	models, err := a.Client.Models(lctx)
	cancel()
	if err != nil {
		fmt.Fprintf(a.Out, "\n%s\n", st.warn.Render("Ollama not running - can't list imported models"))
		return nil
	}

	fmt.Fprintln(a.Out)
	a.header("Imported in Ollama")
	local := a.Cfg.DeclaredNames()
	sort.Slice(models, func(i, j int) bool { return models[i].Name < models[j].Name })
	for _, m := range models {
		tag := ""
		if _, ok := local[m.Name]; ok {
			tag = " " + st.note.Render("(local)")
		}
		fmt.Fprintf(a.Out, "  - %s%s\n", m.Name, tag)
	}
	return nil
}
