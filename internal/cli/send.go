package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcail/nudge/internal/engine"
)

// SendOptions holds flags for the send command.
type SendOptions struct {
	*RootOptions
	OnClick   string
	Icon      string
	Sound     string
	Tags      []string
	Source    string
	Session   string
	Kind      string
	DedupeKey string
	NoNotify  bool
}

// NewSendCommand creates the send command.
func NewSendCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SendOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "send <title> <message>",
		Short: "Create an alert and deliver its notification",
		Long: `Create an alert record and deliver its notification.

A dedupe key makes the new alert replace any existing alert with the
same key. With --session the replacement is scoped to that session;
without it the key is global across sessions.

Example:
  nudge send "Build" "main is green" --tag ci --source jenkins
  nudge send "Deploy" "rolling out" --session run-42 --dedupe-key deploy`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.OnClick, "on-click", "", "command to run when dismissed with --run")
	cmd.Flags().StringVar(&opts.Icon, "icon", "", "display icon hint")
	cmd.Flags().StringVar(&opts.Sound, "sound", "", "notification sound hint")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "free-form label (repeatable)")
	cmd.Flags().StringVar(&opts.Source, "source", "", "producing actor")
	cmd.Flags().StringVar(&opts.Session, "session", "", "correlation/run identifier")
	cmd.Flags().StringVar(&opts.Kind, "kind", "", "free-form category")
	cmd.Flags().StringVar(&opts.DedupeKey, "dedupe-key", "", "replacement-lane key")
	cmd.Flags().BoolVar(&opts.NoNotify, "no-notify", false, "persist the alert without a notification")

	return cmd
}

func runSend(opts *SendOptions, title, message string, cmd *cobra.Command) error {
	eng, cfg, err := buildEngine(opts.RootOptions)
	if err != nil {
		return err
	}
	out := formatter(opts.RootOptions, cmd)

	draft := engine.Draft{
		Title:     title,
		Message:   message,
		OnClick:   opts.OnClick,
		Icon:      opts.Icon,
		Tags:      opts.Tags,
		Source:    opts.Source,
		Session:   opts.Session,
		Kind:      opts.Kind,
		DedupeKey: opts.DedupeKey,
		Sound:     opts.Sound,
		Silent:    opts.NoNotify,
	}

	// Config-level display defaults apply only when the flag is unset.
	if draft.Sound == "" {
		draft.Sound = cfg.Sound
	}
	if draft.Icon == "" {
		draft.Icon = cfg.Icon
	}

	id, err := eng.Create(cmd.Context(), draft)
	if err != nil {
		_ = out.Error(string(engine.ErrCodePersistence), err.Error())
		return WrapExitError(ExitFailure, "create failed", err)
	}

	return out.SuccessText(id, map[string]string{"id": id})
}
