// internal/store/memory.go
//
// In-memory session store for games in play.
//
// Characteristics:
//   - Holds one game.State per session ID (uuid).
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs the transition under the write lock, so each session has a
//     single writer at a time and no update is lost between Get and Save.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session is a game plus its bookkeeping.
type Session struct {
	ID        string
	State     game.State
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store defines the session persistence interface.
type Store interface {
	// Create registers a new session for st and returns it.
	Create(ctx context.Context, st game.State) (Session, error)

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (Session, error)

	// Update replaces the session state with fn(current) atomically.
	Update(ctx context.Context, id string, fn func(game.State) game.State) (Session, error)

	// Sweep drops sessions not updated since cutoff and reports how many.
	Sweep(ctx context.Context, cutoff time.Time) int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex        // guards sessions
	sessions map[string]*Session // keyed by Session.ID
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session), now: time.Now}
}

// Create stores st under a fresh ID.
func (m *memory) Create(ctx context.Context, st game.State) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	now := m.now()
	s := &Session{ID: uuid.NewString(), State: st, CreatedAt: now, UpdatedAt: now}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return *s, nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return *s, nil
	}
	return Session{}, ErrNotFound
}

// Update applies fn to the stored state under the write lock.
func (m *memory) Update(ctx context.Context, id string, fn func(game.State) game.State) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	s.State = fn(s.State)
	s.UpdatedAt = m.now()
	return *s, nil
}

// Sweep removes idle sessions.
func (m *memory) Sweep(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}
