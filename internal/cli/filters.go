package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcail/nudge/internal/alert"
)

// FilterFlags binds the five filter dimensions to repeatable flags,
// shared by list, count, and clear.
type FilterFlags struct {
	Tags       []string
	Sources    []string
	Sessions   []string
	Kinds      []string
	DedupeKeys []string
}

// Register adds the filter flags to a command.
func (f *FilterFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.Tags, "tag", nil, "match any of these tags (repeatable)")
	cmd.Flags().StringArrayVar(&f.Sources, "source", nil, "match any of these sources (repeatable)")
	cmd.Flags().StringArrayVar(&f.Sessions, "session", nil, "match any of these sessions (repeatable)")
	cmd.Flags().StringArrayVar(&f.Kinds, "kind", nil, "match any of these kinds (repeatable)")
	cmd.Flags().StringArrayVar(&f.DedupeKeys, "dedupe-key", nil, "match any of these dedupe keys (repeatable)")
}

// Filter converts the flags to the engine's filter type.
func (f *FilterFlags) Filter() alert.Filter {
	return alert.Filter{
		Tags:       f.Tags,
		Sources:    f.Sources,
		Sessions:   f.Sessions,
		Kinds:      f.Kinds,
		DedupeKeys: f.DedupeKeys,
	}
}
