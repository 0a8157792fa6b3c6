package scoreboard

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scores.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "player_scores", Record{}.TableName())
}

func TestSaveAndList(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by score then step count", func(t *testing.T) {
		s := openStore(t)
		require.NoError(t, s.Save(ctx,
			Record{Name: "alice", StepCount: 20, Score: 0},
			Record{Name: "bob", StepCount: 25, Score: 1},
			Record{Name: "carol", StepCount: 18, Score: 1},
			Record{Name: "dave", StepCount: 12, Score: 0},
		))

		got, err := s.List(ctx)
		require.NoError(t, err)

		names := make([]string, len(got))
		for i, r := range got {
			names[i] = r.Name
		}
		require.Equal(t, []string{"carol", "bob", "dave", "alice"}, names)
		require.NotZero(t, got[0].ID)
		require.False(t, got[0].CreatedAt.IsZero())
	})

	t.Run("keeps one row per game for the same name", func(t *testing.T) {
		s := openStore(t)
		require.NoError(t, s.Save(ctx, Record{Name: "alice", StepCount: 10, Score: 1}))
		require.NoError(t, s.Save(ctx, Record{Name: "alice", StepCount: 14, Score: 0}))

		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		s := openStore(t)
		err := s.Save(ctx, Record{Name: "  ", Score: 1})
		require.ErrorIs(t, err, ErrEmptyName)

		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("persists across reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.db")
		s, err := Open(path, zerolog.Nop())
		require.NoError(t, err)
		require.NoError(t, s.Save(ctx, Record{Name: "erin", StepCount: 9, Score: 1}))
		require.NoError(t, s.Close())

		s, err = Open(path, zerolog.Nop())
		require.NoError(t, err)
		defer s.Close()
		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "erin", got[0].Name)
	})
}

func TestInMemory(t *testing.T) {
	ctx := context.Background()
	s, err := Open("", zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(ctx, Record{Name: "frank", StepCount: 3, Score: 1}))
	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestTotals(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	require.NoError(t, s.Save(ctx,
		Record{Name: "alice", StepCount: 10, Score: 1},
		Record{Name: "bob", StepCount: 11, Score: 0},
		Record{Name: "alice", StepCount: 15, Score: 0},
		Record{Name: "bob", StepCount: 8, Score: 1},
		Record{Name: "bob", StepCount: 9, Score: 1},
	))

	got, err := s.Totals(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bob", got[0].Name)
	assert.Equal(t, 2, got[0].Score)
	assert.Equal(t, 28, got[0].StepCount)
	assert.Equal(t, "alice", got[1].Name)
	assert.Equal(t, 1, got[1].Score)
	assert.Equal(t, 25, got[1].StepCount)
}
