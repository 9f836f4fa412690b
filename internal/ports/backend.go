package ports

import (
	"context"

	"github.com/bnema/gamectl/internal/domain"
)

type DriveBackend interface {
	GetAvailableDrives(ctx context.Context) ([]domain.DriveInfo, error)
	// ScanDriveForGames blocks until the scan completes. Progress is pushed as
	// domain.EventScanProgress events while it runs.
	ScanDriveForGames(ctx context.Context, drive string, game domain.GameID, channel domain.Channel) ([]string, error)
}

type Fingerprinter interface {
	GetGameMD5(ctx context.Context, path string) (string, error)
}

type GateBackend interface {
	CheckPatchMessage(ctx context.Context, launch domain.LaunchContext, gameFolderPath string) (domain.Advisory, error)
	CheckSSLCertificateInstalled(ctx context.Context) (bool, error)
}

type LaunchRequest struct {
	Launch         domain.LaunchContext
	GameFolderPath string
	DeleteHoyoPass bool
}

type LaunchBackend interface {
	// LaunchGame returns a bridge result that may embed a process id in any
	// shape accepted by domain.ParseProcessID.
	LaunchGame(ctx context.Context, req LaunchRequest) (any, error)
	StopGameProcess(ctx context.Context, processID int) error
	StopGame(ctx context.Context, game domain.GameID) error
	StopProxy(ctx context.Context) error
}

type MonitorBackend interface {
	IsGameMonitorActive(ctx context.Context) (bool, error)
	ForceStopGameMonitor(ctx context.Context) error
}

// Backend is the full command surface of the in-process bridge.
type Backend interface {
	DriveBackend
	Fingerprinter
	GateBackend
	LaunchBackend
	MonitorBackend
}

type EventHandler func(payload any)

// EventSource is the push side of the bridge. The returned function removes
// the subscription and is safe to call more than once.
type EventSource interface {
	Subscribe(event string, handler EventHandler) (unsubscribe func())
}
