package notify

import (
	"log/slog"
	"os/exec"
)

// HookRunner spawns detached shell commands: a configured hook whenever
// alert state changes, and user-supplied on-click commands.
//
// Both spawns are fire-and-forget. The process is started, released, and
// never waited on; its exit status is unobservable except through the
// diagnostics logger when the start itself fails.
type HookRunner struct {
	changeHook string
	shell      string
	log        *slog.Logger
}

// NewHookRunner creates a runner. changeHook may be empty, in which case
// FireChangeSignal does nothing.
func NewHookRunner(changeHook string, log *slog.Logger) *HookRunner {
	if log == nil {
		log = slog.Default()
	}
	return &HookRunner{changeHook: changeHook, shell: "/bin/sh", log: log}
}

// FireChangeSignal runs the configured change hook, detached.
func (r *HookRunner) FireChangeSignal() {
	if r.changeHook == "" {
		return
	}
	r.spawn(r.changeHook)
}

// Execute runs a user-supplied command, detached.
func (r *HookRunner) Execute(command string) {
	if command == "" {
		return
	}
	r.spawn(command)
}

func (r *HookRunner) spawn(command string) {
	cmd := exec.Command(r.shell, "-c", command)
	if err := cmd.Start(); err != nil {
		r.log.Debug("detached command failed to start", "command", command, "error", err)
		return
	}
	// Detach: the child outlives this invocation and is never reaped
	// here.
	if err := cmd.Process.Release(); err != nil {
		r.log.Debug("detached command release failed", "command", command, "error", err)
	}
}
