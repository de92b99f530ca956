package engine

import (
	"context"

	"github.com/rcail/nudge/internal/alert"
)

// Clear removes every alert matching the filter and returns how many
// were removed. An empty filter clears everything.
//
// Notifications for the removed records are withdrawn in one batched
// call, and the change signal fires once regardless of how many records
// went away. A filter that matches nothing removes nothing, makes no
// channel call, and still succeeds.
func (e *Engine) Clear(ctx context.Context, f alert.Filter) (int, error) {
	removed, err := e.store.Clear(f)
	if err != nil {
		return 0, NewPersistenceError("", err)
	}

	if len(removed) > 0 {
		ids := make([]string, len(removed))
		for i, a := range removed {
			ids[i] = a.ID
		}
		e.warn("batched notification removal failed", e.channel.RemoveAll(ctx, ids), "ids", ids)
	}
	e.runner.FireChangeSignal()

	return len(removed), nil
}
