package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"
)

// watchTrustStore calls onChange whenever a file appears or changes in one of
// dirs. Directories that do not exist are skipped. The watch ends with ctx.
func watchTrustStore(ctx context.Context, dirs []string, logger *slog.Logger, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	watched := 0
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			logger.Debug("watch trust directory failed", "dir", dir, "err", err)
			continue
		}
		watched++
	}
	if watched == 0 {
		_ = watcher.Close()
		return errors.New("no trust store directory to watch")
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename) {
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Debug("trust store watch error", "err", err)
			}
		}
	}()

	return nil
}
