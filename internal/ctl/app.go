// Package ctl implements the llmctl commands behind the cobra surface. Each
// command is a method on App so tests can swap the output writer, the probes
// and the runtime tool.
package ctl

import (
	"errors"
	"io"

	"github.com/rs/zerolog"

	"llmctl/internal/config"
	"llmctl/internal/ollama"
	"llmctl/internal/sysinfo"
)

// ErrReported marks a handled failure whose report has already been printed;
// main maps it to exit code 1 without repeating the message.
var ErrReported = errors.New("command failed")

// App carries the resolved configuration and the two runtime boundaries
// (HTTP control plane, command-line tool) into each command.
type App struct {
	Cfg    *config.Config
	Log    zerolog.Logger
	Out    io.Writer
	Client *ollama.Client
	Tool   ollama.Tool

	// Host probes; swapped out in tests.
	MemGB func() int
	Arch  func() string

	styles styles
}

// NewApp wires an App from resolved configuration. color controls whether the
// report output carries ANSI styling.
func NewApp(cfg *config.Config, log zerolog.Logger, out io.Writer, color bool) *App {
	return &App{
		Cfg:    cfg,
		Log:    log,
		Out:    out,
		Client: ollama.NewClient(cfg.BaseURL(), ollama.DefaultTimeout),
		Tool:   ollama.Tool{},
		MemGB:  sysinfo.MemGB,
		Arch:   sysinfo.Arch,
		styles: newStyles(color),
	}
}
