// Package cli is the thin command front end over the lifecycle engine:
// flag parsing, output formatting, and exit codes. All semantics live in
// internal/engine and below.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Dir     string // record root directory override
	Format  string // "text" | "json"
	Verbose bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the nudge CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "nudge",
		Short: "nudge - file-backed pending alerts",
		Long: `nudge keeps pending desktop alerts as one JSON file per record and
keeps storage, notifications, and the external change signal in step.

Each invocation is a complete transaction: it reads or writes the record
directory, talks to the platform notifier, fires the change hook, and
exits.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Dir, "dir", "", "record root directory (default $NUDGE_DIR or ~/.nudge)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose diagnostics on stderr")

	cmd.AddCommand(NewSendCommand(opts))
	cmd.AddCommand(NewDismissCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCountCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))

	return cmd
}

// configureLogging routes diagnostics to stderr. Delivery and signal
// warnings are logged at debug level, so they only appear with
// --verbose.
func configureLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
