package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
)

func TestMemorySaveGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	g := game.New("worry")
	require.NoError(t, m.Save(ctx, g))

	got, err := m.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)

	_, err = m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStore()
	m.now = func() time.Time { return now }

	live := game.New("worry")
	done := game.New("worry")
	_, _, err := done.ApplyGuess(ctx, "worry")
	require.NoError(t, err)
	stale := game.New("crane")

	require.NoError(t, m.Save(ctx, stale))
	now = now.Add(50 * time.Minute)
	require.NoError(t, m.Save(ctx, live))
	require.NoError(t, m.Save(ctx, done))
	now = now.Add(20 * time.Minute)

	assert.Equal(t, 2, m.Sweep(time.Hour))
	assert.Equal(t, 1, m.Len())
	_, err = m.Get(ctx, live.ID)
	assert.NoError(t, err)
}
