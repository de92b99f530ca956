package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rcail/nudge/internal/engine"
)

// CountOptions holds flags for the count command.
type CountOptions struct {
	*RootOptions
	Filters FilterFlags
}

// NewCountCommand creates the count command.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CountOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count pending alerts",
		Long: `Count pending alerts matching the filter flags. Read-only; always
consistent with what list would return under the same flags.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(opts, cmd)
		},
	}

	opts.Filters.Register(cmd)

	return cmd
}

func runCount(opts *CountOptions, cmd *cobra.Command) error {
	eng, _, err := buildEngine(opts.RootOptions)
	if err != nil {
		return err
	}
	out := formatter(opts.RootOptions, cmd)

	n, err := eng.Count(cmd.Context(), opts.Filters.Filter())
	if err != nil {
		_ = out.Error(string(engine.ErrCodePersistence), err.Error())
		return WrapExitError(ExitFailure, "count failed", err)
	}

	return out.SuccessText(strconv.Itoa(n), map[string]int{"count": n})
}
