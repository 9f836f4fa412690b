//go:build linux

package host

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/gamectl/internal/domain"
	"golang.org/x/sys/unix"
)

var (
	procMountsPath = "/proc/mounts"
	sysBlockPath   = "/sys/class/block"
)

func (b *Backend) GetAvailableDrives(ctx context.Context) ([]domain.DriveInfo, error) {
	file, err := os.Open(procMountsPath)
	if err != nil {
		return nil, fmt.Errorf("read mount table: %w", err)
	}
	defer file.Close()

	var drives []domain.DriveInfo
	for _, entry := range parseMounts(file) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		drive := domain.DriveInfo{
			Letter: entry.MountPoint,
			Name:   driveName(entry),
			Type:   classifyMount(entry, blockDeviceRemovable(entry.Device)),
		}

		var stat unix.Statfs_t
		if err := unix.Statfs(entry.MountPoint, &stat); err != nil {
			b.logger.Debug("statfs failed", "mount", entry.MountPoint, "err", err)
		} else {
			blockSize := uint64(stat.Bsize)
			drive.TotalSize = stat.Blocks * blockSize
			drive.FreeSize = stat.Bavail * blockSize
		}

		drives = append(drives, drive)
	}

	return drives, nil
}

func driveName(entry mountEntry) string {
	if entry.MountPoint == "/" {
		return "System"
	}
	return filepath.Base(entry.MountPoint)
}

// blockDeviceRemovable reads the sysfs removable flag of device, walking
// from a partition up to its parent disk.
func blockDeviceRemovable(device string) bool {
	if !strings.HasPrefix(device, "/dev/") {
		return false
	}

	resolved, err := filepath.EvalSymlinks(device)
	if err != nil {
		resolved = device
	}
	name := filepath.Base(resolved)

	if flag, ok := readRemovable(filepath.Join(sysBlockPath, name, "removable")); ok {
		return flag
	}

	sysPath, err := filepath.EvalSymlinks(filepath.Join(sysBlockPath, name))
	if err != nil {
		return false
	}
	flag, _ := readRemovable(filepath.Join(filepath.Dir(sysPath), "removable"))

	return flag
}

func readRemovable(path string) (bool, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, false
	}
	return strings.TrimSpace(string(data)) == "1", true
}
