package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/internal/game"
)

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	s, err := st.Create(ctx, game.State{Target: "REACT", Status: game.StatusInProgress})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)

	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "REACT", got.State.Target)

	_, err = st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s, err := st.Create(ctx, game.State{})
	require.NoError(t, err)

	got, err := st.Update(ctx, s.ID, func(g game.State) game.State {
		g.Pending += "A"
		return g
	})
	require.NoError(t, err)
	assert.Equal(t, "A", got.State.Pending)

	_, err = st.Update(ctx, "missing", func(g game.State) game.State { return g })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateIsSingleWriter(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s, err := st.Create(ctx, game.State{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = st.Update(ctx, s.ID, func(g game.State) game.State {
				g.Pending += "A"
				return g
			})
		}()
	}
	wg.Wait()

	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, got.State.Pending, 50)
}

func TestCancelledContext(t *testing.T) {
	st := NewMemoryStore()
	s, err := st.Create(context.Background(), game.State{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = st.Create(ctx, game.State{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = st.Get(ctx, s.ID)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = st.Update(ctx, s.ID, func(g game.State) game.State { return g })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s, err := st.Create(ctx, game.State{})
	require.NoError(t, err)

	assert.Equal(t, 0, st.Sweep(ctx, time.Now().Add(-time.Hour)))
	assert.Equal(t, 1, st.Sweep(ctx, time.Now().Add(time.Hour)))

	_, err = st.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
