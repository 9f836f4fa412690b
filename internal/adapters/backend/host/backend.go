package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports"
)

const (
	defaultScanDepth       = 6
	defaultProgressEvery   = 200
	proxyPIDFile           = "proxy.pid"
	gamePIDSuffix          = ".pid"
	defaultStopGracePeriod = 5 * time.Second
)

// Publisher receives push events produced while the backend works.
type Publisher interface {
	Publish(event string, payload any)
}

// Advisories fetches the advisory shown before a launch.
type Advisories interface {
	PatchMessage(ctx context.Context, launch domain.LaunchContext) (domain.Advisory, error)
}

type Config struct {
	// StateDir holds pid files shared between gamectl invocations.
	StateDir string
	// Runner prefixes the game executable, for example a wine wrapper.
	Runner []string
	// ProxyCommand is started next to the game and stopped by StopProxy.
	ProxyCommand []string
	// CACertificate is the proxy CA that must be trusted before launching.
	CACertificate string
	// TrustDirs are searched for an installed copy of CACertificate.
	TrustDirs []string
	// HoyoPassPath is removed before launch when requested.
	HoyoPassPath string
	ScanDepth    int
}

// Backend runs games on the local host. It implements the full
// ports.Backend command surface.
type Backend struct {
	cfg        Config
	games      *Catalog
	catalog    ports.Catalog
	advisories Advisories
	events     Publisher
	logger     *slog.Logger

	mu       sync.Mutex
	watchers map[int]context.CancelFunc
}

var _ ports.Backend = (*Backend)(nil)

func New(cfg Config, games *Catalog, catalog ports.Catalog, advisories Advisories, events Publisher, logger *slog.Logger) (*Backend, error) {
	if games == nil {
		games = DefaultGames()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.ScanDepth <= 0 {
		cfg.ScanDepth = defaultScanDepth
	}
	if cfg.StateDir == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve state directory: %w", err)
		}
		cfg.StateDir = filepath.Join(dir, "gamectl")
	}
	if len(cfg.TrustDirs) == 0 {
		cfg.TrustDirs = defaultTrustDirs()
	}

	return &Backend{
		cfg:        cfg,
		games:      games,
		catalog:    catalog,
		advisories: advisories,
		events:     events,
		logger:     logger,
		watchers:   map[int]context.CancelFunc{},
	}, nil
}

func (b *Backend) Games() *Catalog {
	return b.games
}

func (b *Backend) CheckPatchMessage(ctx context.Context, launch domain.LaunchContext, gameFolderPath string) (domain.Advisory, error) {
	if b.advisories == nil {
		return domain.Advisory{}, nil
	}
	if _, err := os.Stat(gameFolderPath); err != nil {
		return domain.Advisory{}, fmt.Errorf("check game folder: %w", err)
	}

	return b.advisories.PatchMessage(ctx, launch)
}

// IsGameMonitorActive reports whether any recorded game process is alive.
// Pid files of dead processes are removed on the way.
func (b *Backend) IsGameMonitorActive(ctx context.Context) (bool, error) {
	entries, err := os.ReadDir(b.cfg.StateDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", domain.ErrMonitorUnavailable, err)
	}

	active := false
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		name := entry.Name()
		if entry.IsDir() || name == proxyPIDFile || !strings.HasSuffix(name, gamePIDSuffix) {
			continue
		}

		path := filepath.Join(b.cfg.StateDir, name)
		alive, err := pidFileAlive(path)
		if err != nil {
			b.logger.Debug("unreadable pid file", "path", path, "err", err)
			continue
		}
		if alive {
			active = true
		}
	}

	return active, nil
}

// ForceStopGameMonitor stops watching launched processes in this process.
// Pid files stay so other invocations can still find the game.
func (b *Backend) ForceStopGameMonitor(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for pid, cancel := range b.watchers {
		cancel()
		delete(b.watchers, pid)
	}

	return nil
}

func (b *Backend) StopGameProcess(ctx context.Context, processID int) error {
	if processID <= 0 {
		return fmt.Errorf("invalid process id %d", processID)
	}

	if err := terminateProcess(ctx, processID, defaultStopGracePeriod); err != nil {
		return fmt.Errorf("terminate process %d: %w", processID, err)
	}
	b.forgetProcess(processID)

	return nil
}

func (b *Backend) StopGame(ctx context.Context, game domain.GameID) error {
	path := b.gamePIDPath(game)
	pid, err := readPIDFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s is not running", game)
		}
		return err
	}

	if processAlive(pid) {
		if err := terminateProcess(ctx, pid, defaultStopGracePeriod); err != nil {
			return fmt.Errorf("terminate %s (pid %d): %w", game, pid, err)
		}
	}
	b.forgetProcess(pid)
	_ = removePIDFile(path)

	return nil
}

// StopProxy terminates the proxy started with the last launch. It is a no-op
// when no proxy is running.
func (b *Backend) StopProxy(ctx context.Context) error {
	path := filepath.Join(b.cfg.StateDir, proxyPIDFile)
	pid, err := readPIDFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	if processAlive(pid) {
		if err := terminateProcess(ctx, pid, defaultStopGracePeriod); err != nil {
			return fmt.Errorf("terminate proxy (pid %d): %w", pid, err)
		}
	}

	return removePIDFile(path)
}

func (b *Backend) gamePIDPath(game domain.GameID) string {
	return filepath.Join(b.cfg.StateDir, string(game)+gamePIDSuffix)
}

// forgetProcess drops the watcher of pid and any pid file that points at it.
func (b *Backend) forgetProcess(pid int) {
	b.mu.Lock()
	if cancel, ok := b.watchers[pid]; ok {
		cancel()
		delete(b.watchers, pid)
	}
	b.mu.Unlock()

	for _, def := range b.games.definitions() {
		path := b.gamePIDPath(def.ID)
		if recorded, err := readPIDFile(path); err == nil && recorded == pid {
			_ = removePIDFile(path)
		}
	}
}
