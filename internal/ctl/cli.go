package ctl

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"llmctl/internal/config"
)

// Execute runs the llmctl command tree. Errors come back instead of exiting so
// main owns the exit-code mapping.
func Execute(ctx context.Context, args []string) error {
	root := buildRoot()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// buildRoot constructs the cobra command tree. Configuration is resolved once
// in the persistent pre-run and injected into the App; no command searches for
// it on its own.
func buildRoot() *cobra.Command {
	var (
		app      *App
		cfgPath  string
		logLevel string
	)
	root := &cobra.Command{
		Use:           "llmctl",
		Short:         "Control utility for the local LLM runtime",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to llm.toml (default: discovered upward from the working directory)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", envStr("LLMCTL_LOG_LEVEL", "warn"), "Log level: debug|info|warn|error")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		log := newLogger(logLevel)
		var (
			cfg *config.Config
			err error
		)
		if cfgPath != "" {
			cfg, err = config.Load(cfgPath)
		} else {
			wd, werr := os.Getwd()
			if werr != nil {
				return werr
			}
			cfg, err = config.DiscoverAndLoad(wd)
		}
		if err != nil {
			return err
		}
		log.Debug().Str("config_dir", cfg.Dir).Str("endpoint", cfg.BaseURL()).Msg("configuration loaded")
		app = NewApp(cfg, log, os.Stdout, isatty.IsTerminal(os.Stdout.Fd()))
		return nil
	}

	root.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show Ollama status and loaded models",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return app.Status(cmd.Context()) },
	})

	var healthTimeout int
	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Wait for Ollama to become ready (for scripts)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Health(cmd.Context(), time.Duration(healthTimeout)*time.Second)
		},
	}
	healthCmd.Flags().IntVarP(&healthTimeout, "timeout", "t", 60, "Overall timeout in seconds")
	root.AddCommand(healthCmd)

	root.AddCommand(&cobra.Command{
		Use:   "models",
		Short: "List declared artifacts and imported models",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return app.Models(cmd.Context()) },
	})

	root.AddCommand(&cobra.Command{
		Use:   "import",
		Short: "Import declared local GGUF models into Ollama",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return app.Import(cmd.Context()) },
	})

	root.AddCommand(&cobra.Command{
		Use:   "pull [model]",
		Short: "Pull a model from the Ollama registry (defaults to the env-file model)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := ""
			if len(args) == 1 {
				model = args[0]
			}
			return app.Pull(cmd.Context(), model)
		},
	})

	var selectJSON bool
	selectCmd := &cobra.Command{
		Use:   "select",
		Short: "Pick the best model for this host's RAM",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return app.Select(selectJSON) },
	}
	selectCmd.Flags().BoolVar(&selectJSON, "json", false, "Emit the selection as JSON")
	root.AddCommand(selectCmd)

	var envOutput string
	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Write the env file for the downstream coding assistant",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return app.Env(envOutput) },
	}
	envCmd.Flags().StringVarP(&envOutput, "output", "o", "", "Output path (default .env.local)")
	root.AddCommand(envCmd)

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the Ollama server in the foreground",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return app.Serve(cmd.Context()) },
	})

	var waitTimeout int
	waitCmd := &cobra.Command{
		Use:   "wait",
		Short: "Block until every declared GGUF artifact exists on the volume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.WaitArtifacts(cmd.Context(), time.Duration(waitTimeout)*time.Second)
		},
	}
	waitCmd.Flags().IntVarP(&waitTimeout, "timeout", "t", 0, "Overall timeout in seconds (0 waits forever)")
	root.AddCommand(waitCmd)

	return root
}
