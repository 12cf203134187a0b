package ollama

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Tool shells out to the runtime's command-line program for the lifecycle
// operations the HTTP control plane does not expose.
type Tool struct {
	// Bin overrides the executable name; empty means "ollama".
	Bin string
}

func (t Tool) bin() string {
	if t.Bin == "" {
		return "ollama"
	}
	return t.Bin
}

// toolCmd is the unified runner for tool invocations.
type toolCmd struct {
	args    []string
	env     map[string]string // additional env vars
	inherit bool              // attach the operator's stdio
}

func (t Tool) run(ctx context.Context, c toolCmd) error {
	cmd := exec.CommandContext(ctx, t.bin(), c.args...)
	cmd.Env = os.Environ()
	for k, v := range c.env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	if c.inherit {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}
	return nil
}

// Create builds a runtime model entry from a definition file. The tool's
// stderr becomes the error detail on non-zero exit.
func (t Tool) Create(ctx context.Context, name, definitionPath string) error {
	return t.run(ctx, toolCmd{args: []string{"create", name, "-f", definitionPath}})
}

// Pull downloads a model from the registry with the operator's stdio attached
// so the tool's own progress output is visible. The exit code travels back as
// an *exec.ExitError for the caller to propagate.
func (t Tool) Pull(ctx context.Context, model string) error {
	return t.run(ctx, toolCmd{args: []string{"pull", model}, inherit: true})
}

// Serve runs the runtime server in the foreground with storage and bind
// parameters injected through its environment.
func (t Tool) Serve(ctx context.Context, env map[string]string) error {
	return t.run(ctx, toolCmd{args: []string{"serve"}, env: env, inherit: true})
}
