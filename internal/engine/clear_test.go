package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcail/nudge/internal/alert"
)

func TestClear_EmptyFilterRemovesEverything(t *testing.T) {
	f := newFixture(t, "1738000000_aaaaaaaa", "1738000001_bbbbbbbb")
	f.mustCreate(t, Draft{Title: "A", Message: "m"})
	f.clock.Advance(time.Second)
	f.mustCreate(t, Draft{Title: "B", Message: "m"})

	n, err := f.engine.Clear(context.Background(), alert.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	left, err := f.engine.Count(context.Background(), alert.Filter{})
	require.NoError(t, err)
	assert.Zero(t, left)

	// One batched removal, one signal.
	assert.Equal(t, []string{
		"permission", "send:1738000000_aaaaaaaa", "signal",
		"permission", "send:1738000001_bbbbbbbb", "signal",
		"removeAll:[1738000000_aaaaaaaa 1738000001_bbbbbbbb]",
		"signal",
	}, f.log.all())
}

func TestClear_FilterScopesRemoval(t *testing.T) {
	f := newFixture(t, "1738000000_aaaaaaaa", "1738000001_bbbbbbbb")
	f.mustCreate(t, Draft{Title: "A", Message: "m", Session: "s1"})
	f.clock.Advance(time.Second)
	f.mustCreate(t, Draft{Title: "B", Message: "m", Session: "s2"})

	n, err := f.engine.Clear(context.Background(), alert.Filter{Sessions: []string{"s1"}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rest, err := f.engine.List(context.Background(), alert.Filter{})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "B", rest[0].Title)
}

func TestClear_NoMatchesMakesNoChannelCall(t *testing.T) {
	f := newFixture(t)

	n, err := f.engine.Clear(context.Background(), alert.Filter{Tags: []string{"nothing"}})
	require.NoError(t, err)
	assert.Zero(t, n)

	for _, call := range f.log.all() {
		assert.NotContains(t, call, "removeAll")
	}
}

func TestListAndCount_MakeNoCollaboratorCalls(t *testing.T) {
	f := newFixture(t, "1738000000_aaaaaaaa")
	f.mustCreate(t, Draft{Title: "A", Message: "m"})
	before := f.log.all()

	_, err := f.engine.List(context.Background(), alert.Filter{})
	require.NoError(t, err)
	_, err = f.engine.Count(context.Background(), alert.Filter{})
	require.NoError(t, err)

	assert.Equal(t, before, f.log.all())
}
