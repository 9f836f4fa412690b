package host

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports"
)

// LaunchGame starts the game detached from gamectl and records its pid. The
// build is checked against the patch catalog first; an unsupported build
// fails with a patch diagnostic.
func (b *Backend) LaunchGame(ctx context.Context, req ports.LaunchRequest) (any, error) {
	def, err := b.games.Lookup(req.Launch.Game)
	if err != nil {
		return nil, err
	}
	name, ok := def.Executable(req.Launch.Channel)
	if !ok {
		return nil, fmt.Errorf("%s has no channel %d", def.Name, req.Launch.Channel)
	}
	executable := filepath.Join(req.GameFolderPath, name)
	if _, err := os.Stat(executable); err != nil {
		return nil, fmt.Errorf("find game executable: %w", err)
	}

	if err := b.checkPatch(ctx, req.Launch, executable); err != nil {
		return nil, err
	}

	if req.DeleteHoyoPass && b.cfg.HoyoPassPath != "" {
		if err := os.Remove(b.cfg.HoyoPassPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			b.logger.Warn("remove hoyopass failed", "path", b.cfg.HoyoPassPath, "err", err)
		}
	}

	proxyStarted, err := b.startProxy()
	if err != nil {
		return nil, err
	}

	args := append(append([]string(nil), b.cfg.Runner...), executable)
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = req.GameFolderPath
	detach(cmd)
	if err := cmd.Start(); err != nil {
		if proxyStarted {
			_ = b.StopProxy(ctx)
		}
		return nil, fmt.Errorf("start %s: %w", name, err)
	}

	pid := cmd.Process.Pid
	pidPath := b.gamePIDPath(def.ID)
	if err := writePIDFile(pidPath, pid); err != nil {
		b.logger.Warn("record game pid failed", "game", def.ID, "err", err)
	}
	b.watch(cmd, def.ID, pidPath)

	b.logger.Info("game started", "game", def.ID, "pid", pid, "path", req.GameFolderPath)
	return map[string]any{"game": string(def.ID), "pid": pid}, nil
}

func (b *Backend) checkPatch(ctx context.Context, launch domain.LaunchContext, executable string) error {
	if b.catalog == nil {
		return nil
	}

	fingerprint, err := fileMD5(ctx, executable)
	if err != nil {
		return err
	}

	outcome, err := b.catalog.FindPatch(ctx, fingerprint)
	if err != nil {
		b.logger.Warn("patch lookup failed, launching anyway", "game", launch.Game, "md5", fingerprint, "err", err)
		return nil
	}

	diag := domain.PatchDiagnostic{
		Game:        launch.Game,
		Version:     launch.Version,
		Channel:     launch.Channel,
		Fingerprint: fingerprint,
	}
	switch {
	case !outcome.Supported():
		diag.ErrorType = outcome.Reason
	case outcome.Game != launch.Game || outcome.Version != launch.Version || outcome.Channel != launch.Channel:
		diag.ErrorType = fmt.Sprintf("installed build is %s %s (channel %d)", outcome.Game, outcome.Version, outcome.Channel)
	default:
		return nil
	}

	encoded, err := diag.Encode()
	if err != nil {
		return err
	}
	return errors.New(encoded)
}

// startProxy starts the configured proxy unless one is already running.
func (b *Backend) startProxy() (bool, error) {
	if len(b.cfg.ProxyCommand) == 0 {
		return false, nil
	}

	path := filepath.Join(b.cfg.StateDir, proxyPIDFile)
	if alive, err := pidFileAlive(path); err == nil && alive {
		return false, nil
	}

	cmd := exec.Command(b.cfg.ProxyCommand[0], b.cfg.ProxyCommand[1:]...)
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return false, fmt.Errorf("start proxy: %w", err)
	}
	if err := writePIDFile(path, cmd.Process.Pid); err != nil {
		_ = cmd.Process.Kill()
		return false, err
	}
	go func() { _ = cmd.Wait() }()

	return true, nil
}

// watch reaps the game process and clears its pid file when it exits.
func (b *Backend) watch(cmd *exec.Cmd, game domain.GameID, pidPath string) {
	pid := cmd.Process.Pid
	watchCtx, cancel := context.WithCancel(context.Background())

	b.mu.Lock()
	b.watchers[pid] = cancel
	b.mu.Unlock()

	go func() {
		err := cmd.Wait()

		b.mu.Lock()
		delete(b.watchers, pid)
		b.mu.Unlock()

		if recorded, readErr := readPIDFile(pidPath); readErr == nil && recorded == pid {
			_ = removePIDFile(pidPath)
		}
		if watchCtx.Err() == nil {
			b.logger.Info("game exited", "game", game, "pid", pid, "err", err)
		}
		cancel()
	}()
}
