package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathStoreResolve(t *testing.T) {
	repo := newMemPaths(
		domain.InstallRecord{Game: "hk4e", Versions: map[domain.Version]domain.VersionPaths{
			"4.8.0": domain.LegacyVersionPath{Path: "/legacy"},
			"5.0.0": domain.ChannelVersionPaths{1: "/A", 2: "/B"},
		}},
	)
	store := NewPathStore(repo, DefaultLegacyChannel)
	ctx := context.Background()

	tests := []struct {
		name    string
		game    domain.GameID
		version domain.Version
		channel domain.Channel
		want    string
		found   bool
	}{
		{name: "legacy any channel", game: "hk4e", version: "4.8.0", channel: 9, want: "/legacy", found: true},
		{name: "channel match", game: "hk4e", version: "5.0.0", channel: 2, want: "/B", found: true},
		{name: "missing channel", game: "hk4e", version: "5.0.0", channel: 3},
		{name: "missing version", game: "hk4e", version: "6.0.0", channel: 1},
		{name: "missing game", game: "nap", version: "1.0", channel: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path, ok, err := store.Resolve(ctx, tc.game, tc.version, tc.channel)
			require.NoError(t, err)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, path)
		})
	}
}

func TestPathStoreSetMigratesLegacyRecord(t *testing.T) {
	repo := newMemPaths(domain.InstallRecord{Game: "hk4e", Versions: map[domain.Version]domain.VersionPaths{
		"5.0.0": domain.LegacyVersionPath{Path: "/legacy"},
	}})
	store := NewPathStore(repo, DefaultLegacyChannel)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "hk4e", "5.0.0", 2, "  /beta  "))

	record, err := repo.Get(ctx, "hk4e")
	require.NoError(t, err)
	assert.Equal(t, domain.ChannelVersionPaths{1: "/legacy", 2: "/beta"}, record.Versions["5.0.0"])
}

func TestPathStoreLegacyPath(t *testing.T) {
	repo := newMemPaths(domain.InstallRecord{Game: "hk4e", Versions: map[domain.Version]domain.VersionPaths{
		"4.8.0": domain.LegacyVersionPath{Path: "/legacy"},
		"5.0.0": domain.ChannelVersionPaths{1: "/A"},
	}})
	store := NewPathStore(repo, DefaultLegacyChannel)
	ctx := context.Background()

	path, ok, err := store.LegacyPath(ctx, "hk4e", "4.8.0")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/legacy", path)

	_, ok, err = store.LegacyPath(ctx, "hk4e", "5.0.0")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.LegacyPath(ctx, "nap", "1.0")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "hk4e", "4.8.0", 2, "/beta"))
	_, ok, err = store.LegacyPath(ctx, "hk4e", "4.8.0")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, DefaultLegacyChannel, store.LegacyChannel())
}

func TestPathStoreSetCreatesRecord(t *testing.T) {
	repo := newMemPaths()
	store := NewPathStore(repo, DefaultLegacyChannel)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "nap", "1.0", 1, "/games/nap"))
	require.Error(t, store.Set(ctx, "nap", "1.0", 1, "   "))

	path, ok, err := store.Resolve(ctx, "nap", "1.0", 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/games/nap", path)
	assert.Equal(t, 1, repo.saved)
}

func TestPathStoreRemove(t *testing.T) {
	repo := newMemPaths(domain.InstallRecord{Game: "hk4e", Versions: map[domain.Version]domain.VersionPaths{
		"5.0.0": domain.ChannelVersionPaths{1: "/A", 2: "/B"},
	}})
	store := NewPathStore(repo, DefaultLegacyChannel)
	ctx := context.Background()

	require.NoError(t, store.Remove(ctx, "hk4e", "5.0.0", 1))

	_, ok, err := store.Resolve(ctx, "hk4e", "5.0.0", 1)
	require.NoError(t, err)
	assert.False(t, ok)
	path, ok, err := store.Resolve(ctx, "hk4e", "5.0.0", 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/B", path)

	require.ErrorIs(t, store.Remove(ctx, "nap", "1.0", 1), domain.ErrGameNotFound)
}

func TestPathStoreRepositoryErrorsPropagate(t *testing.T) {
	repo := mocks.NewMockPathRepository(t)
	store := NewPathStore(repo, DefaultLegacyChannel)
	boom := errors.New("disk full")

	repo.EXPECT().Get(mockAnyContext(), domain.GameID("hk4e")).Return(domain.InstallRecord{}, boom)

	_, _, err := store.Resolve(context.Background(), "hk4e", "5.0.0", 1)
	require.ErrorIs(t, err, boom)
}
