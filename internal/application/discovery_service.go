package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports"
)

// DiscoveryService finds candidate installations on fixed drives.
type DiscoveryService struct {
	backend ports.DriveBackend
	events  ports.EventSource
	logger  *slog.Logger
}

func NewDiscoveryService(backend ports.DriveBackend, events ports.EventSource, logger *slog.Logger) *DiscoveryService {
	return &DiscoveryService{backend: backend, events: events, logger: loggerOrDiscard(logger)}
}

func (s *DiscoveryService) ListFixedDrives(ctx context.Context) ([]domain.DriveInfo, error) {
	drives, err := s.backend.GetAvailableDrives(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available drives: %w", err)
	}

	return domain.FilterFixedDrives(drives), nil
}

// Scan runs a backend scan of drive and forwards every progress snapshot to
// onProgress. The progress subscription never outlives the call: it is removed
// on completion, on failure and when ctx is cancelled.
func (s *DiscoveryService) Scan(ctx context.Context, drive string, game domain.GameID, channel domain.Channel, onProgress func(domain.ScanProgress)) ([]string, error) {
	if onProgress != nil && s.events != nil {
		unsubscribe := s.events.Subscribe(domain.EventScanProgress, func(payload any) {
			progress, ok := payload.(domain.ScanProgress)
			if !ok {
				s.logger.Debug("ignoring scan progress payload", "type", fmt.Sprintf("%T", payload))
				return
			}
			onProgress(progress.Clone())
		})
		defer unsubscribe()
	}

	s.logger.Info("scanning drive", "drive", drive, "game", game, "channel", channel)
	found, err := s.backend.ScanDriveForGames(ctx, drive, game, channel)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrScanFailed, drive, err)
	}

	return append([]string(nil), found...), nil
}
