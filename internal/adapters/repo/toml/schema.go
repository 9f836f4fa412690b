package toml

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/bnema/gamectl/internal/domain"
)

const currentSchemaVersion = 1

// pathsFileSchema keeps each version entry loosely typed: a plain string is
// the legacy single-path shape, a table maps channel numbers to paths.
type pathsFileSchema struct {
	Version int                       `toml:"version"`
	Games   map[string]map[string]any `toml:"games,omitempty"`
}

func (s *pathsFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Games == nil {
		s.Games = map[string]map[string]any{}
	}
}

func (s pathsFileSchema) validateVersion() error {
	return validateVersion("paths", s.Version)
}

type preferencesFileSchema struct {
	Version            int                       `toml:"version"`
	DeleteHoyoPass     *bool                     `toml:"delete_hoyopass,omitempty"`
	SuppressedAdvisory *suppressedAdvisorySchema `toml:"suppressed_advisory,omitempty"`
}

func (s *preferencesFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s preferencesFileSchema) validateVersion() error {
	return validateVersion("preferences", s.Version)
}

type suppressedAdvisorySchema struct {
	Message   string `toml:"message"`
	ExpiresAt int64  `toml:"expires_at"`
}

func validateVersion(label string, version int) error {
	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported %s schema version %d (current %d)", label, version, currentSchemaVersion)
	}

	return nil
}

func fromGameSchema(game string, versions map[string]any) domain.InstallRecord {
	record := domain.InstallRecord{
		Game:     domain.GameID(game),
		Versions: make(map[domain.Version]domain.VersionPaths, len(versions)),
	}

	for version, raw := range versions {
		if paths, ok := decodeVersionPaths(raw); ok {
			record.Versions[domain.Version(version)] = paths
		}
	}

	return record
}

func decodeVersionPaths(raw any) (domain.VersionPaths, bool) {
	switch value := raw.(type) {
	case string:
		if value == "" {
			return nil, false
		}
		return domain.LegacyVersionPath{Path: value}, true
	case map[string]any:
		paths := make(domain.ChannelVersionPaths, len(value))
		for key, entry := range value {
			channel, err := domain.ParseChannel(key)
			if err != nil {
				continue
			}
			path, ok := entry.(string)
			if !ok || path == "" {
				continue
			}
			paths[channel] = path
		}
		if len(paths) == 0 {
			return nil, false
		}
		return paths, true
	default:
		return nil, false
	}
}

func toGameSchema(record domain.InstallRecord) map[string]any {
	versions := make(map[string]any, len(record.Versions))
	for version, paths := range record.Versions {
		switch p := paths.(type) {
		case domain.LegacyVersionPath:
			versions[string(version)] = p.Path
		case domain.ChannelVersionPaths:
			channels := make(map[string]any, len(p))
			for channel, path := range p {
				channels[strconv.Itoa(int(channel))] = path
			}
			versions[string(version)] = channels
		}
	}

	return versions
}

func sortedGames(games map[string]map[string]any) []string {
	ids := make([]string, 0, len(games))
	for id := range games {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func fromSuppressedSchema(schema *suppressedAdvisorySchema) domain.SuppressedAdvisory {
	if schema == nil {
		return domain.SuppressedAdvisory{}
	}

	advisory := domain.SuppressedAdvisory{Message: schema.Message}
	if schema.ExpiresAt > 0 {
		advisory.ExpiresAt = time.UnixMilli(schema.ExpiresAt)
	}

	return advisory
}

func toSuppressedSchema(advisory domain.SuppressedAdvisory) *suppressedAdvisorySchema {
	return &suppressedAdvisorySchema{
		Message:   advisory.Message,
		ExpiresAt: advisory.ExpiresAt.UnixMilli(),
	}
}
