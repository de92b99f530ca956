package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rcail/nudge/internal/config"
	"github.com/rcail/nudge/internal/engine"
	"github.com/rcail/nudge/internal/notify"
	"github.com/rcail/nudge/internal/store"
)

// buildEngine assembles the engine from configuration: file store under
// the resolved root, desktop notification channel, and hook runner.
func buildEngine(opts *RootOptions) (*engine.Engine, *config.Config, error) {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "invalid config", err)
	}

	log := slog.Default()
	st := store.New(cfg.ResolveDir(opts.Dir))
	channel := notify.NewDesktop(cfg.Notifier, log)
	runner := notify.NewHookRunner(cfg.ChangeHook, log)

	eng := engine.New(st, channel, runner, engine.WithLogger(log))
	return eng, cfg, nil
}

// formatter builds the output formatter for a command.
func formatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}
