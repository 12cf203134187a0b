package ctl

import (
	"context"
	"fmt"

	"llmctl/internal/common/fsutil"
)

// Serve runs the runtime server in the foreground with the configured bind
// address and storage home. Refuses to start when something already listens
// on the configured port.
func (a *App) Serve(ctx context.Context) error {
	host, port := a.Cfg.Ollama.Host, a.Cfg.Ollama.Port
	if busy, desc := isPortBusy(host, port); busy {
		return fmt.Errorf("port %d is already in use (%s); is ollama already running?", port, desc)
	}

	hostport := fmt.Sprintf("%s:%d", host, port)
	env := map[string]string{"OLLAMA_HOST": hostport}
	if a.Cfg.Ollama.OllamaHome != "" {
		home, err := fsutil.ExpandAbs(a.Cfg.Ollama.OllamaHome)
		if err != nil {
			return err
		}
		env["OLLAMA_HOME"] = home
	}

	fmt.Fprintln(a.Out, "Starting Ollama...")
	if home, ok := env["OLLAMA_HOME"]; ok {
		fmt.Fprintf(a.Out, "  OLLAMA_HOME=%s\n", home)
	}
	fmt.Fprintf(a.Out, "  OLLAMA_HOST=%s\n", hostport)
	return a.Tool.Serve(ctx, env)
}
