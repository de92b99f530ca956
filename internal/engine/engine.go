// Package engine sequences alert lifecycle operations across the record
// store, the notification channel, and the signal runner.
//
// Each operation runs as one synchronous pass in a short-lived process:
// store first, then notification channel, then signal runner. The store
// is the source of truth; channel and runner calls are best effort and
// their failures never change an operation's outcome.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/rcail/nudge/internal/alert"
	"github.com/rcail/nudge/internal/store"
)

// Channel delivers and withdraws user-visible notifications.
// Implemented by notify.Desktop (production) and test fakes.
type Channel interface {
	// RequestPermission asks for delivery permission. Idempotent; a
	// false return never aborts an operation.
	RequestPermission(ctx context.Context) bool

	// Send delivers a notification for the record. Best effort.
	Send(ctx context.Context, a *alert.Alert) error

	// Remove withdraws the notification for one record id.
	Remove(ctx context.Context, id string) error

	// RemoveAll withdraws notifications for many record ids in one call.
	RemoveAll(ctx context.Context, ids []string) error
}

// Runner fires the external change signal and runs user-supplied
// commands. Both calls are fire-and-forget: they return immediately and
// their outcomes are never awaited.
type Runner interface {
	FireChangeSignal()
	Execute(command string)
}

// IDGenerator produces record ids.
// Implemented by RandomHexGenerator (production) and fixed test stubs.
type IDGenerator interface {
	Generate(now time.Time) string
}

// RandomHexGenerator generates ids as {unix_seconds}_{8 random hex}.
type RandomHexGenerator struct{}

func (RandomHexGenerator) Generate(now time.Time) string {
	return alert.NewID(now)
}

// Clock supplies creation timestamps. Wall time in production, fixed in
// tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// Engine orchestrates the five lifecycle operations.
//
// Collaborators are injected as interface values; the engine never holds
// a concrete channel or runner type. There is no locking: one invocation
// is a single synchronous sequence, and cross-process races (notably two
// concurrent creates in the same dedupe lane) are deliberately left
// unserialized — see the dedupe note on Create.
type Engine struct {
	store   *store.Store
	channel Channel
	runner  Runner
	clock   Clock
	ids     IDGenerator
	log     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock, for deterministic timestamps in
// tests.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) { e.ids = g }
}

// WithLogger sets the diagnostics logger. Delivery and signal failures
// surface only here, at debug level, never in operation results.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an Engine over the given store and collaborators.
func New(s *store.Store, channel Channel, runner Runner, opts ...Option) *Engine {
	e := &Engine{
		store:   s,
		channel: channel,
		runner:  runner,
		clock:   systemClock{},
		ids:     RandomHexGenerator{},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// warn records a best-effort collaborator failure on the diagnostics
// channel. Never propagated.
func (e *Engine) warn(msg string, err error, args ...any) {
	if err == nil {
		return
	}
	e.log.Debug(msg, append([]any{"error", err}, args...)...)
}
