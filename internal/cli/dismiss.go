package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcail/nudge/internal/engine"
)

// DismissOptions holds flags for the dismiss command.
type DismissOptions struct {
	*RootOptions
	Run bool
}

// NewDismissCommand creates the dismiss command.
func NewDismissCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DismissOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dismiss <id>",
		Short: "Dismiss an alert",
		Long: `Dismiss an alert: remove its record, withdraw its notification, and
fire the change signal.

With --run, the alert's on-click command (if any) is executed detached
before the notification is withdrawn.

Example:
  nudge dismiss 1738000000_a1b2c3d4 --run`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDismiss(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Run, "run", false, "execute the alert's on-click command")

	return cmd
}

func runDismiss(opts *DismissOptions, id string, cmd *cobra.Command) error {
	eng, _, err := buildEngine(opts.RootOptions)
	if err != nil {
		return err
	}
	out := formatter(opts.RootOptions, cmd)

	removed, err := eng.Dismiss(cmd.Context(), id, opts.Run)
	if err != nil {
		if engine.IsNotFound(err) {
			_ = out.Error(string(engine.ErrCodeNotFound), err.Error())
			return WrapExitError(ExitFailure, "dismiss failed", err)
		}
		_ = out.Error(string(engine.ErrCodePersistence), err.Error())
		return WrapExitError(ExitFailure, "dismiss failed", err)
	}

	text := fmt.Sprintf("dismissed %s  %s", removed.ID, removed.Title)
	return out.SuccessText(text, map[string]string{
		"id":    removed.ID,
		"title": removed.Title,
	})
}
