package host

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/gamectl/internal/domain"
)

var skippedDirs = map[string]struct{}{
	"proc":                      {},
	"sys":                       {},
	"dev":                       {},
	"run":                       {},
	"tmp":                       {},
	"node_modules":              {},
	"Windows":                   {},
	"System Volume Information": {},
}

// ScanDriveForGames walks drive looking for folders that contain the
// executable of game on channel. Progress snapshots are published as
// domain.EventScanProgress while the walk runs.
func (b *Backend) ScanDriveForGames(ctx context.Context, drive string, game domain.GameID, channel domain.Channel) ([]string, error) {
	def, err := b.games.Lookup(game)
	if err != nil {
		return nil, err
	}
	executable, ok := def.Executable(channel)
	if !ok {
		return nil, fmt.Errorf("%s has no channel %d", def.Name, channel)
	}

	root := driveRoot(drive)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDriveNotFound, drive, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrDriveNotFound, drive)
	}

	progress := domain.ScanProgress{}
	found := []string{}
	sinceLast := 0
	publish := func() {
		if b.events == nil {
			return
		}
		snapshot := progress
		snapshot.FoundPaths = append([]string(nil), found...)
		b.events.Publish(domain.EventScanProgress, snapshot)
		sinceLast = 0
	}

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			if path != root && skipDir(entry.Name()) {
				return fs.SkipDir
			}
			if depth(root, path) > b.cfg.ScanDepth {
				return fs.SkipDir
			}
			progress.DirectoriesScanned++
			progress.CurrentPath = path
		} else {
			progress.FilesScanned++
			if strings.EqualFold(entry.Name(), executable) && entry.Type().IsRegular() {
				found = append(found, filepath.Dir(path))
				publish()
				return fs.SkipDir
			}
		}

		sinceLast++
		if sinceLast >= defaultProgressEvery {
			publish()
		}
		return nil
	})
	if walkErr != nil && !errors.Is(walkErr, fs.SkipDir) {
		return nil, walkErr
	}

	publish()
	return found, nil
}

func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "$") {
		return true
	}
	_, skip := skippedDirs[name]
	return skip
}

func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// driveRoot turns a bare drive letter such as "D:" into its root directory.
func driveRoot(drive string) string {
	if len(drive) == 2 && drive[1] == ':' {
		return drive + `\`
	}
	return drive
}
