package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcail/nudge/internal/engine"
)

// ClearOptions holds flags for the clear command.
type ClearOptions struct {
	*RootOptions
	Filters FilterFlags
}

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClearOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every alert matching the filters",
		Long: `Remove every alert matching the filter flags, withdraw their
notifications in one batch, and fire the change signal once.

Without filters, clears everything:
  nudge clear
  nudge clear --session run-42`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(opts, cmd)
		},
	}

	opts.Filters.Register(cmd)

	return cmd
}

func runClear(opts *ClearOptions, cmd *cobra.Command) error {
	eng, _, err := buildEngine(opts.RootOptions)
	if err != nil {
		return err
	}
	out := formatter(opts.RootOptions, cmd)

	n, err := eng.Clear(cmd.Context(), opts.Filters.Filter())
	if err != nil {
		_ = out.Error(string(engine.ErrCodePersistence), err.Error())
		return WrapExitError(ExitFailure, "clear failed", err)
	}

	return out.SuccessText(fmt.Sprintf("cleared %d", n), map[string]int{"removed": n})
}
