package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcail/nudge/internal/alert"
	"github.com/rcail/nudge/internal/engine"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Filters FilterFlags
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending alerts",
		Long: `List pending alerts, oldest first. Read-only: no notification or
signal calls are made.

Filter flags combine with AND across dimensions and OR within one:
  nudge list --tag ci --tag deploy --source jenkins
matches alerts from jenkins carrying either tag.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	opts.Filters.Register(cmd)

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	eng, _, err := buildEngine(opts.RootOptions)
	if err != nil {
		return err
	}
	out := formatter(opts.RootOptions, cmd)

	alerts, err := eng.List(cmd.Context(), opts.Filters.Filter())
	if err != nil {
		_ = out.Error(string(engine.ErrCodePersistence), err.Error())
		return WrapExitError(ExitFailure, "list failed", err)
	}

	return out.SuccessText(renderAlerts(alerts), alerts)
}

// renderAlerts produces the text listing: one line per alert, oldest
// first, metadata only when present.
func renderAlerts(alerts []alert.Alert) string {
	if len(alerts) == 0 {
		return "no pending alerts"
	}

	var b strings.Builder
	for i, a := range alerts {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(renderAlert(&a))
	}
	return b.String()
}

func renderAlert(a *alert.Alert) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s: %s", a.ID, a.Title, a.Message)

	var meta []string
	if len(a.Tags) > 0 {
		meta = append(meta, "tags="+strings.Join(a.Tags, ","))
	}
	if a.Source != "" {
		meta = append(meta, "source="+a.Source)
	}
	if a.Session != "" {
		meta = append(meta, "session="+a.Session)
	}
	if a.Kind != "" {
		meta = append(meta, "kind="+a.Kind)
	}
	if a.DedupeKey != "" {
		meta = append(meta, "dedupe="+a.DedupeKey)
	}
	if len(meta) > 0 {
		b.WriteString("  [" + strings.Join(meta, " ") + "]")
	}
	return b.String()
}
