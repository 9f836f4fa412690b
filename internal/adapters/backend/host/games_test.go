package host

import (
	"testing"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGamesLookup(t *testing.T) {
	t.Parallel()

	games := DefaultGames()

	genshin, err := games.Lookup("hk4e")
	require.NoError(t, err)
	name, ok := genshin.Executable(2)
	require.True(t, ok)
	assert.Equal(t, "YuanShen.exe", name)
	assert.Equal(t, []string{"GenshinImpact.exe", "YuanShen.exe"}, genshin.ExecutableNames())

	honkai, err := games.Lookup("bh3")
	require.NoError(t, err)
	_, ok = honkai.Executable(2)
	assert.False(t, ok)

	_, err = games.Lookup("nope")
	require.ErrorIs(t, err, domain.ErrUnknownGame)
}

func TestParseGamesAcceptsCommentsAndTrailingCommas(t *testing.T) {
	t.Parallel()

	games, err := ParseGames([]byte(`{
  // custom build
  "games": [
    {"id": "custom", "name": "Custom", "executables": {"1": "Custom.exe",},},
  ],
}`))
	require.NoError(t, err)

	list := games.Games()
	require.Len(t, list, 1)
	assert.Equal(t, domain.GameID("custom"), list[0].ID)
	assert.Equal(t, "Custom", list[0].Name)
}

func TestParseGamesRejectsInvalidCatalogs(t *testing.T) {
	t.Parallel()

	_, err := ParseGames([]byte(`{"games": [{"id": "a"}, {"id": "a"}]}`))
	require.ErrorContains(t, err, "duplicate game a")

	_, err = ParseGames([]byte(`{"games": [{"name": "no id"}]}`))
	require.ErrorContains(t, err, "game without id")

	_, err = ParseGames([]byte(`{"games": [`))
	require.Error(t, err)
}
