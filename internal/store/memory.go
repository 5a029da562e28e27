// internal/store/memory.go
//
// In-memory implementation of Store for live rounds.
// Rounds are ephemeral: nothing here survives a restart, and finished
// rounds are swept after a retention period so the map does not grow
// without bound.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
)

// ErrNotFound is returned for unknown IDs.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for live rounds.
type Store interface {
	// Save persists or updates a round.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a round by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Game, error)
}

type entry struct {
	g       *game.Game
	touched time.Time
}

// Memory is a map-based Store guarded by an RWMutex.
type Memory struct {
	mu    sync.RWMutex
	games map[string]entry // keyed by Game.ID
	now   func() time.Time
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() *Memory {
	return &Memory{games: make(map[string]entry), now: time.Now}
}

// Save adds or updates the round.
func (m *Memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = entry{g: g, touched: m.now()}
	return nil
}

// Get looks up a round by ID.
func (m *Memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.games[id]; ok {
		return e.g, nil
	}
	return nil, ErrNotFound
}

// Len returns the number of stored rounds.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// Sweep drops rounds not saved within maxAge, and finished rounds not
// saved within maxAge/4. It returns the number removed.
func (m *Memory) Sweep(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	n := 0
	for id, e := range m.games {
		age := now.Sub(e.touched)
		if age > maxAge || (e.g.State().Done() && age > maxAge/4) {
			delete(m.games, id)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
// A non-positive interval disables sweeping.
func (m *Memory) RunSweeper(ctx context.Context, interval, maxAge time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Sweep(maxAge)
		}
	}
}
