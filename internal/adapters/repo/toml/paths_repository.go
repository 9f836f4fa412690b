package toml

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports"
	"github.com/spf13/viper"
)

const (
	pathsPathKey  = "paths.path"
	pathsFileName = "paths.toml"
)

// PathRepository stores installation folders per game, version and channel.
type PathRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.PathRepository = (*PathRepository)(nil)

func NewPathRepository(cfg *viper.Viper) (*PathRepository, error) {
	path, err := resolveFilePath(cfg, pathsPathKey, pathsFileName)
	if err != nil {
		return nil, err
	}

	return &PathRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *PathRepository) Path() string {
	return r.path
}

func (r *PathRepository) Get(ctx context.Context, game domain.GameID) (domain.InstallRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.InstallRecord{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.InstallRecord{}, err
	}

	versions, ok := file.Games[string(game)]
	if !ok {
		return domain.InstallRecord{}, fmt.Errorf("%w: %s", domain.ErrGameNotFound, game)
	}

	return fromGameSchema(string(game), versions), nil
}

func (r *PathRepository) List(ctx context.Context) ([]domain.InstallRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	records := make([]domain.InstallRecord, 0, len(file.Games))
	for _, game := range sortedGames(file.Games) {
		records = append(records, fromGameSchema(game, file.Games[game]))
	}

	return records, nil
}

// Save replaces the whole record of one game. A record without versions
// removes the game.
func (r *PathRepository) Save(ctx context.Context, record domain.InstallRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if record.Game == "" {
		return fmt.Errorf("save installation record: game is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	if len(record.Versions) == 0 {
		delete(file.Games, string(record.Game))
	} else {
		file.Games[string(record.Game)] = toGameSchema(record)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTOMLFile(r.path, file)
}

func (r *PathRepository) readSchema() (pathsFileSchema, error) {
	var file pathsFileSchema
	if err := readTOMLFile(r.path, "paths", &file); err != nil {
		return pathsFileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return pathsFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}
