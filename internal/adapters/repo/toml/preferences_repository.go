package toml

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports"
	"github.com/spf13/viper"
)

const (
	preferencesPathKey  = "preferences.path"
	preferencesFileName = "preferences.toml"

	DefaultDeleteHoyoPass = true
)

// PreferenceRepository stores launch preferences and the single suppressed
// advisory slot.
type PreferenceRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.PreferenceRepository = (*PreferenceRepository)(nil)

func NewPreferenceRepository(cfg *viper.Viper) (*PreferenceRepository, error) {
	path, err := resolveFilePath(cfg, preferencesPathKey, preferencesFileName)
	if err != nil {
		return nil, err
	}

	return &PreferenceRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *PreferenceRepository) DeleteHoyoPass(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return DefaultDeleteHoyoPass, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return DefaultDeleteHoyoPass, err
	}
	if file.DeleteHoyoPass == nil {
		return DefaultDeleteHoyoPass, nil
	}

	return *file.DeleteHoyoPass, nil
}

func (r *PreferenceRepository) SetDeleteHoyoPass(ctx context.Context, value bool) error {
	return r.update(ctx, func(file *preferencesFileSchema) bool {
		file.DeleteHoyoPass = &value
		return true
	})
}

// SuppressedAdvisory returns the stored slot when it is still valid at now.
// An invalid or expired slot is removed from the file.
func (r *PreferenceRepository) SuppressedAdvisory(ctx context.Context, now time.Time) (domain.SuppressedAdvisory, bool, error) {
	var (
		advisory domain.SuppressedAdvisory
		found    bool
	)

	err := r.update(ctx, func(file *preferencesFileSchema) bool {
		if file.SuppressedAdvisory == nil {
			return false
		}

		stored := fromSuppressedSchema(file.SuppressedAdvisory)
		if !stored.Valid() || stored.Expired(now) {
			file.SuppressedAdvisory = nil
			return true
		}

		advisory, found = stored, true
		return false
	})
	if err != nil {
		return domain.SuppressedAdvisory{}, false, err
	}

	return advisory, found, nil
}

func (r *PreferenceRepository) SaveSuppressedAdvisory(ctx context.Context, advisory domain.SuppressedAdvisory) error {
	return r.update(ctx, func(file *preferencesFileSchema) bool {
		file.SuppressedAdvisory = toSuppressedSchema(advisory)
		return true
	})
}

func (r *PreferenceRepository) ClearSuppressedAdvisory(ctx context.Context) error {
	return r.update(ctx, func(file *preferencesFileSchema) bool {
		if file.SuppressedAdvisory == nil {
			return false
		}
		file.SuppressedAdvisory = nil
		return true
	})
}

// update runs mutate under the write lock and persists the file when mutate
// reports a change.
func (r *PreferenceRepository) update(ctx context.Context, mutate func(*preferencesFileSchema) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	if !mutate(&file) {
		return nil
	}

	return writeTOMLFile(r.path, file)
}

func (r *PreferenceRepository) readSchema() (preferencesFileSchema, error) {
	var file preferencesFileSchema
	if err := readTOMLFile(r.path, "preferences", &file); err != nil {
		return preferencesFileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return preferencesFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}
