package engine

import (
	"context"

	"github.com/rcail/nudge/internal/alert"
)

// Draft carries the caller-supplied fields of a new alert. ID and
// CreatedAt are assigned by the engine.
type Draft struct {
	Title     string
	Message   string
	OnClick   string
	Icon      string
	Tags      []string
	Source    string
	Session   string
	Kind      string
	DedupeKey string
	Sound     string

	// Silent suppresses the notification send while still persisting
	// the record and firing the change signal.
	Silent bool
}

// Create persists a new alert and delivers its notification.
//
// Sequence:
//  1. Request delivery permission (idempotent, outcome never fatal).
//  2. If the draft carries a dedupe key, remove every existing record in
//     the same lane — scoped to the draft's session when present, global
//     across sessions otherwise — and withdraw their notifications,
//     before the new record exists.
//  3. Persist the new record. A persistence failure aborts here: no
//     notification is sent and no signal fires, so an orphaned banner
//     with no backing state cannot occur.
//  4. Send the notification (best effort; the record stays persisted
//     even if delivery fails).
//  5. Fire the change signal.
//
// Two processes creating into the same dedupe lane concurrently can both
// observe an empty lane and both insert. There is no cross-process lock;
// the race is accepted.
func (e *Engine) Create(ctx context.Context, d Draft) (string, error) {
	e.channel.RequestPermission(ctx)

	if d.DedupeKey != "" {
		if err := e.sweepDedupeLane(ctx, d.DedupeKey, d.Session); err != nil {
			return "", err
		}
	}

	now := e.clock.Now()
	a := &alert.Alert{
		ID:        e.ids.Generate(now),
		Title:     d.Title,
		Message:   d.Message,
		OnClick:   d.OnClick,
		Icon:      d.Icon,
		Tags:      d.Tags,
		Source:    d.Source,
		Session:   d.Session,
		Kind:      d.Kind,
		DedupeKey: d.DedupeKey,
		Sound:     d.Sound,
		CreatedAt: now,
	}

	if _, err := e.store.Save(a); err != nil {
		return "", NewPersistenceError(a.ID, err)
	}

	if !d.Silent {
		e.warn("notification send failed", e.channel.Send(ctx, a), "id", a.ID)
	}
	e.runner.FireChangeSignal()

	return a.ID, nil
}

// sweepDedupeLane removes every record matching the dedupe key (and
// session, when non-empty) from the store and withdraws their
// notifications.
func (e *Engine) sweepDedupeLane(ctx context.Context, key, session string) error {
	f := alert.Filter{DedupeKeys: []string{key}}
	if session != "" {
		f.Sessions = []string{session}
	}

	removed, err := e.store.Clear(f)
	if err != nil {
		return NewPersistenceError("", err)
	}
	if len(removed) == 0 {
		return nil
	}

	ids := make([]string, len(removed))
	for i, a := range removed {
		ids[i] = a.ID
	}
	e.warn("dedupe notification removal failed", e.channel.RemoveAll(ctx, ids), "ids", ids)
	return nil
}
