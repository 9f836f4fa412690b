package host

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/tidwall/jsonc"
)

//go:embed games.jsonc
var embeddedGames []byte

// GameDefinition describes how to recognise and start one game.
type GameDefinition struct {
	ID          domain.GameID             `json:"id"`
	Name        string                    `json:"name"`
	Executables map[domain.Channel]string `json:"executables"`
}

// Executable returns the executable file name for channel.
func (d GameDefinition) Executable(channel domain.Channel) (string, bool) {
	name, ok := d.Executables[channel]
	return name, ok && name != ""
}

// ExecutableNames returns the distinct executable names of every channel.
func (d GameDefinition) ExecutableNames() []string {
	seen := map[string]struct{}{}
	var names []string
	for _, name := range d.Executables {
		if _, ok := seen[name]; ok || name == "" {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Catalog is the set of known game definitions.
type Catalog struct {
	games map[domain.GameID]GameDefinition
	order []domain.GameID
}

type catalogDocument struct {
	Games []GameDefinition `json:"games"`
}

// ParseGames decodes a JSONC game catalog.
func ParseGames(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("parse game catalog: %w", err)
	}

	catalog := &Catalog{games: make(map[domain.GameID]GameDefinition, len(doc.Games))}
	for _, game := range doc.Games {
		if strings.TrimSpace(string(game.ID)) == "" {
			return nil, fmt.Errorf("parse game catalog: game without id")
		}
		if _, dup := catalog.games[game.ID]; dup {
			return nil, fmt.Errorf("parse game catalog: duplicate game %s", game.ID)
		}
		catalog.games[game.ID] = game
		catalog.order = append(catalog.order, game.ID)
	}

	return catalog, nil
}

// DefaultGames returns the catalog compiled into the binary.
func DefaultGames() *Catalog {
	catalog, err := ParseGames(embeddedGames)
	if err != nil {
		panic(err)
	}
	return catalog
}

func (c *Catalog) Lookup(id domain.GameID) (GameDefinition, error) {
	game, ok := c.games[id]
	if !ok {
		return GameDefinition{}, fmt.Errorf("%w: %s", domain.ErrUnknownGame, id)
	}
	return game, nil
}

// Games lists definitions in catalog order.
func (c *Catalog) Games() []domain.Game {
	games := make([]domain.Game, 0, len(c.order))
	for _, id := range c.order {
		games = append(games, domain.Game{ID: id, Name: c.games[id].Name})
	}
	return games
}

func (c *Catalog) definitions() []GameDefinition {
	defs := make([]GameDefinition, 0, len(c.order))
	for _, id := range c.order {
		defs = append(defs, c.games[id])
	}
	return defs
}
