//go:build !linux && !windows

package host

import (
	"context"

	"github.com/bnema/gamectl/internal/domain"
)

// GetAvailableDrives reports the root filesystem only. Sizes are unknown.
func (b *Backend) GetAvailableDrives(ctx context.Context) ([]domain.DriveInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return []domain.DriveInfo{{Letter: "/", Name: "System", Type: domain.DriveTypeFixed}}, nil
}
