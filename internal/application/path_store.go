package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports"
)

const DefaultLegacyChannel domain.Channel = 1

type PathStore struct {
	repo          ports.PathRepository
	legacyChannel domain.Channel
}

func NewPathStore(repo ports.PathRepository, legacyChannel domain.Channel) *PathStore {
	return &PathStore{repo: repo, legacyChannel: legacyChannel}
}

// Resolve returns the installation folder for game/version/channel. A legacy
// record answers for every channel.
func (s *PathStore) Resolve(ctx context.Context, game domain.GameID, version domain.Version, channel domain.Channel) (string, bool, error) {
	record, err := s.repo.Get(ctx, game)
	if err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get installation record: %w", err)
	}

	path, ok := record.Resolve(version, channel)
	return path, ok, nil
}

// LegacyPath returns the folder of a record that still answers every channel
// of version. Set and Remove narrow such a record to the legacy channel.
func (s *PathStore) LegacyPath(ctx context.Context, game domain.GameID, version domain.Version) (string, bool, error) {
	record, err := s.repo.Get(ctx, game)
	if err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get installation record: %w", err)
	}

	path, ok := record.LegacyPath(version)
	return path, ok, nil
}

func (s *PathStore) LegacyChannel() domain.Channel {
	return s.legacyChannel
}

func (s *PathStore) Set(ctx context.Context, game domain.GameID, version domain.Version, channel domain.Channel, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("installation path is empty")
	}

	record, err := s.load(ctx, game)
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, record.WithPath(version, channel, path, s.legacyChannel)); err != nil {
		return fmt.Errorf("save installation record: %w", err)
	}

	return nil
}

func (s *PathStore) Remove(ctx context.Context, game domain.GameID, version domain.Version, channel domain.Channel) error {
	record, err := s.repo.Get(ctx, game)
	if err != nil {
		return fmt.Errorf("get installation record: %w", err)
	}

	if err := s.repo.Save(ctx, record.WithoutPath(version, channel, s.legacyChannel)); err != nil {
		return fmt.Errorf("save installation record: %w", err)
	}

	return nil
}

func (s *PathStore) List(ctx context.Context) ([]domain.InstallRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list installation records: %w", err)
	}

	return records, nil
}

func (s *PathStore) load(ctx context.Context, game domain.GameID) (domain.InstallRecord, error) {
	record, err := s.repo.Get(ctx, game)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, domain.ErrGameNotFound) {
		return domain.InstallRecord{}, fmt.Errorf("get installation record: %w", err)
	}

	return domain.InstallRecord{Game: game, Versions: map[domain.Version]domain.VersionPaths{}}, nil
}
