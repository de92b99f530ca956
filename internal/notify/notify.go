// Package notify provides the production collaborators consumed by the
// engine: a desktop notification channel that shells out to the platform
// notifier, and a hook runner for the change signal and on-click
// commands.
//
// Everything here is best effort. The engine treats the record store as
// the source of truth; a lost banner or a dead hook never fails an
// operation, it only shows up on the diagnostics logger.
package notify

import (
	"context"

	"github.com/rcail/nudge/internal/alert"
)

// NoopChannel delivers nothing. Used when notifications are disabled and
// as a safe default when no platform notifier is available.
type NoopChannel struct{}

func (NoopChannel) RequestPermission(context.Context) bool    { return false }
func (NoopChannel) Send(context.Context, *alert.Alert) error  { return nil }
func (NoopChannel) Remove(context.Context, string) error      { return nil }
func (NoopChannel) RemoveAll(context.Context, []string) error { return nil }

// NoopRunner fires nothing and runs nothing.
type NoopRunner struct{}

func (NoopRunner) FireChangeSignal() {}
func (NoopRunner) Execute(string)    {}
