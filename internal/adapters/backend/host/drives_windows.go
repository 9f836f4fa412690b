//go:build windows

package host

import (
	"context"
	"fmt"

	"github.com/bnema/gamectl/internal/domain"
	"golang.org/x/sys/windows"
)

func (b *Backend) GetAvailableDrives(ctx context.Context) ([]domain.DriveInfo, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, fmt.Errorf("get logical drives: %w", err)
	}

	var drives []domain.DriveInfo
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		letter := string(rune('A'+i)) + ":"
		root, err := windows.UTF16PtrFromString(letter + `\`)
		if err != nil {
			continue
		}

		drive := domain.DriveInfo{
			Letter: letter,
			Name:   volumeLabel(root, letter),
			Type:   driveType(windows.GetDriveType(root)),
		}

		var free, total, totalFree uint64
		if err := windows.GetDiskFreeSpaceEx(root, &free, &total, &totalFree); err != nil {
			b.logger.Debug("disk free space failed", "drive", letter, "err", err)
		} else {
			drive.TotalSize = total
			drive.FreeSize = free
		}

		drives = append(drives, drive)
	}

	return drives, nil
}

func volumeLabel(root *uint16, fallback string) string {
	label := make([]uint16, windows.MAX_PATH+1)
	if err := windows.GetVolumeInformation(root, &label[0], uint32(len(label)), nil, nil, nil, nil, 0); err != nil {
		return fallback
	}
	if name := windows.UTF16ToString(label); name != "" {
		return name
	}
	return fallback
}

func driveType(kind uint32) domain.DriveType {
	switch kind {
	case windows.DRIVE_FIXED:
		return domain.DriveTypeFixed
	case windows.DRIVE_REMOVABLE:
		return domain.DriveTypeRemovable
	case windows.DRIVE_REMOTE:
		return domain.DriveTypeNetwork
	case windows.DRIVE_CDROM:
		return domain.DriveTypeCDRom
	case windows.DRIVE_RAMDISK:
		return domain.DriveTypeRAMDisk
	default:
		return domain.DriveTypeUnknown
	}
}
