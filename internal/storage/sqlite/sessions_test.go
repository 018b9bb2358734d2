package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sandevgo/factbot/internal/core"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SessionsRepo {
	t.Helper()

	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "factbot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSessionsRepo(db)
}

func TestLoadUnknownSessionIsFresh(t *testing.T) {
	repo := newTestRepo(t)

	state, err := repo.Load(context.Background(), "never-seen")
	require.NoError(t, err)
	require.NotNil(t, state.Remaining)
	require.Empty(t, state.Remaining)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	state := core.NewSessionState()
	state.Remaining["history"] = []string{"h2", "h4"}
	state.Remaining["cats"] = []string{}

	require.NoError(t, repo.Save(ctx, "s1", state))

	got, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, []string{"h2", "h4"}, got.Remaining["history"])

	// A depleted bucket must survive as touched-and-empty, not as untouched.
	cats, touched := got.Remaining["cats"]
	require.True(t, touched)
	require.Empty(t, cats)
}

func TestSaveOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := core.NewSessionState()
	first.Remaining["history"] = []string{"h1", "h2"}
	require.NoError(t, repo.Save(ctx, "s1", first))

	second := core.NewSessionState()
	second.Remaining["history"] = []string{"h2"}
	require.NoError(t, repo.Save(ctx, "s1", second))

	got, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, []string{"h2"}, got.Remaining["history"])
}

func TestSessionsAreIsolated(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a := core.NewSessionState()
	a.Remaining["history"] = []string{}
	require.NoError(t, repo.Save(ctx, "a", a))

	got, err := repo.Load(ctx, "b")
	require.NoError(t, err)
	require.Empty(t, got.Remaining)
}
