package engine

import (
	"context"

	"github.com/rcail/nudge/internal/alert"
)

// List returns the alerts matching the filter, sorted ascending by
// creation time. Read-only: no channel or runner calls.
func (e *Engine) List(_ context.Context, f alert.Filter) ([]alert.Alert, error) {
	alerts, err := e.store.List(f)
	if err != nil {
		return nil, NewPersistenceError("", err)
	}
	return alerts, nil
}

// Count returns the number of alerts matching the filter. Read-only.
func (e *Engine) Count(_ context.Context, f alert.Filter) (int, error) {
	n, err := e.store.Count(f)
	if err != nil {
		return 0, NewPersistenceError("", err)
	}
	return n, nil
}
