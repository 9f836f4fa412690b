package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.CreateSchema())
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	t.Parallel()

	config := viper.New()
	config.Set(historyPathKey, filepath.Join(t.TempDir(), "nested", "history.db"))

	store, err := Open(config)
	require.NoError(t, err)
	defer store.Close()

	games, err := store.Games().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestGameRepositorySyncAndMarkPlayed(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	repo := store.Games()
	ctx := context.Background()

	require.NoError(t, repo.Sync(ctx, []domain.Game{
		{ID: "hk4e", Name: "Genshin Impact"},
		{ID: "hkrpg", Name: "Honkai: Star Rail"},
		{ID: "nap", Name: "Zenless Zone Zero"},
	}))

	playedAt := time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkPlayed(ctx, "nap", playedAt))
	require.NoError(t, repo.MarkPlayed(ctx, "hk4e", playedAt.Add(-time.Hour)))
	require.NoError(t, repo.Sync(ctx, []domain.Game{{ID: "nap", Name: "ZZZ"}}))

	game, err := repo.GetByID(ctx, "nap")
	require.NoError(t, err)
	assert.Equal(t, "ZZZ", game.Name)
	assert.True(t, playedAt.Equal(game.LastPlayedAt))

	games, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, domain.GameID("nap"), games[0].ID)
	assert.Equal(t, domain.GameID("hk4e"), games[1].ID)
	assert.Equal(t, domain.GameID("hkrpg"), games[2].ID)
	assert.True(t, games[2].LastPlayedAt.IsZero())
}

func TestGameRepositoryUnknownGame(t *testing.T) {
	t.Parallel()

	_, err := newTestStore(t).Games().GetByID(context.Background(), "bh3")
	require.ErrorIs(t, err, domain.ErrUnknownGame)
}

func TestMarkPlayedCreatesMissingGame(t *testing.T) {
	t.Parallel()

	repo := newTestStore(t).Games()
	ctx := context.Background()

	require.NoError(t, repo.MarkPlayed(ctx, "bh3", time.Now()))

	game, err := repo.GetByID(ctx, "bh3")
	require.NoError(t, err)
	assert.Empty(t, game.Name)
	assert.False(t, game.LastPlayedAt.IsZero())
}

func TestSessionLogLifecycle(t *testing.T) {
	t.Parallel()

	log := newTestStore(t).Sessions()
	ctx := context.Background()
	started := time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)

	first, err := log.Start(ctx, domain.Session{
		Launch:    domain.LaunchContext{Game: "hk4e", Version: "5.0.0", Channel: 1},
		Path:      "/games/hk4e",
		ProcessID: 4242,
		StartedAt: started,
	})
	require.NoError(t, err)
	_, err = uuid.Parse(first)
	require.NoError(t, err)

	second, err := log.Start(ctx, domain.Session{
		Launch:    domain.LaunchContext{Game: "nap", Version: "1.0", Channel: 2},
		Path:      "/games/nap",
		StartedAt: started.Add(time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, log.Finish(ctx, first, started.Add(30*time.Minute), domain.SessionEndExited))
	require.Error(t, log.Finish(ctx, first, started.Add(40*time.Minute), domain.SessionEndStopped))

	sessions, err := log.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, second, sessions[0].ID)
	assert.True(t, sessions[0].Active())
	assert.Equal(t, domain.Channel(2), sessions[0].Launch.Channel)

	assert.Equal(t, first, sessions[1].ID)
	assert.Equal(t, domain.SessionEndExited, sessions[1].EndReason)
	assert.Equal(t, 30*time.Minute, sessions[1].Duration(time.Now()))
	assert.Equal(t, 4242, sessions[1].ProcessID)

	limited, err := log.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
