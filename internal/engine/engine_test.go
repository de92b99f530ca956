package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rcail/nudge/internal/alert"
	"github.com/rcail/nudge/internal/store"
	"github.com/rcail/nudge/internal/testutil"
)

// callLog records collaborator calls in order so tests can assert the
// ordering contracts, not just that calls happened.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(call string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

func (l *callLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type fakeChannel struct {
	log       *callLog
	sendErr   error
	removeErr error
}

func (c *fakeChannel) RequestPermission(context.Context) bool {
	c.log.add("permission")
	return true
}

func (c *fakeChannel) Send(_ context.Context, a *alert.Alert) error {
	c.log.add("send:" + a.ID)
	return c.sendErr
}

func (c *fakeChannel) Remove(_ context.Context, id string) error {
	c.log.add("remove:" + id)
	return c.removeErr
}

func (c *fakeChannel) RemoveAll(_ context.Context, ids []string) error {
	c.log.add(fmt.Sprintf("removeAll:%v", ids))
	return c.removeErr
}

type fakeRunner struct {
	log *callLog
}

func (r *fakeRunner) FireChangeSignal() {
	r.log.add("signal")
}

func (r *fakeRunner) Execute(command string) {
	r.log.add("execute:" + command)
}

// seqIDs hands out predetermined ids in order.
type seqIDs struct {
	mu  sync.Mutex
	ids []string
	idx int
}

func (g *seqIDs) Generate(time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.ids) {
		panic("seqIDs exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

type fixture struct {
	engine  *Engine
	store   *store.Store
	channel *fakeChannel
	runner  *fakeRunner
	clock   *testutil.FixedClock
	log     *callLog
}

func newFixture(t *testing.T, ids ...string) *fixture {
	t.Helper()

	log := &callLog{}
	channel := &fakeChannel{log: log}
	runner := &fakeRunner{log: log}
	clock := testutil.NewFixedClock(time.Unix(1738000000, 0).UTC())
	st := store.New(t.TempDir())

	opts := []Option{
		WithClock(clock),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	if len(ids) > 0 {
		opts = append(opts, WithIDGenerator(&seqIDs{ids: ids}))
	}

	return &fixture{
		engine:  New(st, channel, runner, opts...),
		store:   st,
		channel: channel,
		runner:  runner,
		clock:   clock,
		log:     log,
	}
}

func (f *fixture) mustCreate(t *testing.T, d Draft) string {
	t.Helper()
	id, err := f.engine.Create(context.Background(), d)
	require.NoError(t, err)
	return id
}

// writeFileAt drops a regular file at dir/name, blocking its use as a
// directory.
func writeFileAt(t *testing.T, dir, name string) error {
	t.Helper()
	return os.WriteFile(filepath.Join(dir, name), []byte("in the way"), 0o644)
}
