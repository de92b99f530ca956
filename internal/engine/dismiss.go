package engine

import (
	"context"

	"github.com/rcail/nudge/internal/alert"
)

// Dismiss removes one alert and withdraws its notification. Returns the
// removed record.
//
// This is the only dismissal code path: a CLI dismiss and a dismissal
// triggered from a delivered notification both land here, so the two can
// never drift.
//
// An unknown id is a not-found failure and stops immediately — zero
// channel or runner calls are made for a record that was never present.
// When run is true and the record carries an on-click command, the
// command is executed detached before the notification is withdrawn.
func (e *Engine) Dismiss(ctx context.Context, id string, run bool) (*alert.Alert, error) {
	removed, err := e.store.Remove(id)
	if err != nil {
		return nil, NewPersistenceError(id, err)
	}
	if removed == nil {
		return nil, NewNotFoundError(id)
	}

	if run && removed.OnClick != "" {
		e.runner.Execute(removed.OnClick)
	}

	e.warn("notification removal failed", e.channel.Remove(ctx, id), "id", id)
	e.runner.FireChangeSignal()

	return removed, nil
}
