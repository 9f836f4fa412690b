package toml

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPathRepository(t *testing.T, path string) *PathRepository {
	t.Helper()

	config := viper.New()
	config.Set(pathsPathKey, path)
	repo, err := NewPathRepository(config)
	require.NoError(t, err)

	return repo
}

func TestPathRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestPathRepository(t, filepath.Join(t.TempDir(), "paths.toml"))
	ctx := context.Background()

	genshin := domain.InstallRecord{Game: "hk4e", Versions: map[domain.Version]domain.VersionPaths{
		"4.8.0": domain.LegacyVersionPath{Path: "/games/legacy"},
		"5.0.0": domain.ChannelVersionPaths{1: "/games/global", 2: "/games/beta"},
	}}
	zzz := domain.InstallRecord{Game: "nap", Versions: map[domain.Version]domain.VersionPaths{
		"1.0": domain.ChannelVersionPaths{1: `D:\Games\ZZZ`},
	}}

	require.NoError(t, repo.Save(ctx, genshin))
	require.NoError(t, repo.Save(ctx, zzz))

	got, err := repo.Get(ctx, "hk4e")
	require.NoError(t, err)
	assert.Equal(t, genshin, got)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.InstallRecord{genshin, zzz}, records)
}

func TestPathRepositoryDecodesBothShapes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "paths.toml")
	require.NoError(t, os.WriteFile(path, []byte(`version = 1

[games.hk4e]
"4.8.0" = "/legacy"

[games.hk4e."5.0.0"]
1 = "/A"
2 = "/B"
beta = "/ignored"
`), 0o600))

	repo := newTestPathRepository(t, path)
	record, err := repo.Get(context.Background(), "hk4e")
	require.NoError(t, err)

	legacy, ok := record.Resolve("4.8.0", 5)
	assert.True(t, ok)
	assert.Equal(t, "/legacy", legacy)

	assert.Equal(t, domain.ChannelVersionPaths{1: "/A", 2: "/B"}, record.Versions["5.0.0"])
	_, ok = record.Resolve("5.0.0", 3)
	assert.False(t, ok)
}

func TestPathRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestPathRepository(t, filepath.Join(t.TempDir(), "missing.toml"))

	_, err := repo.Get(context.Background(), "hk4e")
	require.ErrorIs(t, err, domain.ErrGameNotFound)

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPathRepositorySaveWithoutVersionsRemovesGame(t *testing.T) {
	t.Parallel()

	repo := newTestPathRepository(t, filepath.Join(t.TempDir(), "paths.toml"))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.InstallRecord{Game: "hk4e", Versions: map[domain.Version]domain.VersionPaths{
		"5.0.0": domain.ChannelVersionPaths{1: "/A"},
	}}))
	require.NoError(t, repo.Save(ctx, domain.InstallRecord{Game: "hk4e"}))

	_, err := repo.Get(ctx, "hk4e")
	require.ErrorIs(t, err, domain.ErrGameNotFound)
}

func TestPathRepositorySaveCreatesDirectoryAndEnforcesPermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "paths.toml")
	repo := newTestPathRepository(t, path)

	require.NoError(t, repo.Save(context.Background(), domain.InstallRecord{Game: "hk4e", Versions: map[domain.Version]domain.VersionPaths{
		"5.0.0": domain.LegacyVersionPath{Path: "/A"},
	}}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}

func TestPathRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "paths.toml")
	require.NoError(t, os.WriteFile(path, []byte("[games\n"), 0o600))

	_, err := newTestPathRepository(t, path).List(context.Background())
	require.ErrorContains(t, err, "decode paths file")
}

func TestPathRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "paths.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 9\n"), 0o600))

	_, err := newTestPathRepository(t, path).List(context.Background())
	require.ErrorContains(t, err, "unsupported paths schema version 9")
}

func TestPathRepositoryCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestPathRepository(t, filepath.Join(t.TempDir(), "paths.toml"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.InstallRecord{Game: "hk4e"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPathRepositoryConcurrentSavesAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "paths.toml")
	first := newTestPathRepository(t, path)
	second := newTestPathRepository(t, path)

	var wg sync.WaitGroup
	for i := range 10 {
		repo := first
		if i%2 == 1 {
			repo = second
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			game := domain.GameID("game-" + strconv.Itoa(i))
			assert.NoError(t, repo.Save(context.Background(), domain.InstallRecord{Game: game, Versions: map[domain.Version]domain.VersionPaths{
				"1.0": domain.LegacyVersionPath{Path: "/" + string(game)},
			}}))
		}()
	}
	wg.Wait()

	records, err := first.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 10)
}

func newTestPreferenceRepository(t *testing.T, path string) *PreferenceRepository {
	t.Helper()

	config := viper.New()
	config.Set(preferencesPathKey, path)
	repo, err := NewPreferenceRepository(config)
	require.NoError(t, err)

	return repo
}

func TestPreferenceRepositoryDeleteHoyoPass(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	repo := newTestPreferenceRepository(t, path)
	ctx := context.Background()

	value, err := repo.DeleteHoyoPass(ctx)
	require.NoError(t, err)
	assert.True(t, value)

	require.NoError(t, repo.SetDeleteHoyoPass(ctx, false))

	value, err = newTestPreferenceRepository(t, path).DeleteHoyoPass(ctx)
	require.NoError(t, err)
	assert.False(t, value)
}

func TestPreferenceRepositorySuppressedAdvisory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	repo := newTestPreferenceRepository(t, path)
	ctx := context.Background()
	now := time.Date(2026, 10, 17, 21, 30, 0, 0, time.Local)

	_, ok, err := repo.SuppressedAdvisory(ctx, now)
	require.NoError(t, err)
	assert.False(t, ok)

	stored := domain.SuppressUntilMidnight("Maintenance at 06:00", now)
	require.NoError(t, repo.SaveSuppressedAdvisory(ctx, stored))

	got, ok, err := repo.SuppressedAdvisory(ctx, now)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, stored.Message, got.Message)
	assert.True(t, stored.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, repo.ClearSuppressedAdvisory(ctx))
	_, ok, err = repo.SuppressedAdvisory(ctx, now)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPreferenceRepositoryExpiredAdvisoryIsDeleted(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	repo := newTestPreferenceRepository(t, path)
	ctx := context.Background()
	now := time.Date(2026, 10, 17, 21, 30, 0, 0, time.Local)

	require.NoError(t, repo.SaveSuppressedAdvisory(ctx, domain.SuppressUntilMidnight("Maintenance", now)))

	_, ok, err := repo.SuppressedAdvisory(ctx, domain.NextLocalMidnight(now))
	require.NoError(t, err)
	assert.False(t, ok)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "suppressed_advisory")
}

func TestPreferenceRepositoryInvalidAdvisoryIsDeleted(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte(`version = 1
delete_hoyopass = false

[suppressed_advisory]
message = ""
expires_at = 0
`), 0o600))
	repo := newTestPreferenceRepository(t, path)
	ctx := context.Background()

	_, ok, err := repo.SuppressedAdvisory(ctx, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "suppressed_advisory")

	value, err := repo.DeleteHoyoPass(ctx)
	require.NoError(t, err)
	assert.False(t, value)
}
