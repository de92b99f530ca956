package notify

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/rcail/nudge/internal/alert"
)

// Desktop delivers notifications by invoking a platform notifier binary.
//
// The binary is probed once at construction: terminal-notifier when
// installed (the only common notifier that can also withdraw a banner by
// group id), otherwise osascript on darwin or notify-send elsewhere. An
// explicit command from configuration overrides the probe.
type Desktop struct {
	bin string
	log *slog.Logger
}

// NewDesktop creates a desktop channel. command, when non-empty, names
// the notifier binary to use instead of probing. The returned channel is
// usable even when no notifier exists; Send then reports an error that
// the engine logs and swallows.
func NewDesktop(command string, log *slog.Logger) *Desktop {
	if log == nil {
		log = slog.Default()
	}
	if command == "" {
		command = probeNotifier()
	}
	return &Desktop{bin: command, log: log}
}

func probeNotifier() string {
	candidates := []string{"terminal-notifier"}
	if runtime.GOOS == "darwin" {
		candidates = append(candidates, "osascript")
	} else {
		candidates = append(candidates, "notify-send")
	}
	for _, c := range candidates {
		if path, err := exec.LookPath(c); err == nil {
			return path
		}
	}
	return ""
}

// RequestPermission reports whether a notifier binary is available.
// There is no interactive prompt to drive from a CLI; availability is
// the whole permission model, and repeated calls are free.
func (d *Desktop) RequestPermission(context.Context) bool {
	return d.bin != ""
}

// Send delivers one notification. Best effort: the caller logs and
// ignores the returned error.
func (d *Desktop) Send(ctx context.Context, a *alert.Alert) error {
	if d.bin == "" {
		return fmt.Errorf("send %s: no notifier binary available", a.ID)
	}

	cmd := exec.CommandContext(ctx, d.bin, d.sendArgs(a)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		d.log.Debug("notifier invocation failed",
			"bin", d.bin, "id", a.ID, "stderr", stderr.String())
		return fmt.Errorf("send %s: %w", a.ID, err)
	}
	return nil
}

// Remove withdraws the banner for one record id. Only terminal-notifier
// supports withdrawal; for the other notifiers this is a silent no-op,
// which matches their banners timing out on their own.
func (d *Desktop) Remove(ctx context.Context, id string) error {
	if filepath.Base(d.bin) != "terminal-notifier" {
		return nil
	}
	cmd := exec.CommandContext(ctx, d.bin, "-remove", id)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("remove %s: %w", id, err)
	}
	return nil
}

// RemoveAll withdraws banners for many ids in one pass.
func (d *Desktop) RemoveAll(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if err := d.Remove(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// sendArgs builds the notifier invocation per binary flavor.
func (d *Desktop) sendArgs(a *alert.Alert) []string {
	switch filepath.Base(d.bin) {
	case "terminal-notifier":
		args := []string{"-title", a.Title, "-message", a.Message, "-group", a.ID}
		if a.Sound != "" {
			args = append(args, "-sound", a.Sound)
		}
		if a.Icon != "" {
			args = append(args, "-appIcon", a.Icon)
		}
		return args
	case "osascript":
		script := fmt.Sprintf("display notification %q with title %q", a.Message, a.Title)
		if a.Sound != "" {
			script += fmt.Sprintf(" sound name %q", a.Sound)
		}
		return []string{"-e", script}
	case "notify-send":
		args := []string{}
		if a.Icon != "" {
			args = append(args, "--icon", a.Icon)
		}
		return append(args, a.Title, a.Message)
	default:
		// Custom notifier command: positional title and message.
		return []string{a.Title, a.Message}
	}
}
