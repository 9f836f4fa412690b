package domain

import "fmt"

type DriveType string

const (
	DriveTypeFixed     DriveType = "Fixed"
	DriveTypeRemovable DriveType = "Removable"
	DriveTypeNetwork   DriveType = "Network"
	DriveTypeCDRom     DriveType = "CDRom"
	DriveTypeRAMDisk   DriveType = "RAMDisk"
	DriveTypeUnknown   DriveType = "Unknown"
)

type DriveInfo struct {
	Letter    string    `json:"letter"`
	Name      string    `json:"name"`
	TotalSize uint64    `json:"total_size"`
	FreeSize  uint64    `json:"free_size"`
	Type      DriveType `json:"drive_type"`
}

func (d DriveInfo) Validate() error {
	if d.Letter == "" {
		return fmt.Errorf("drive letter is required")
	}
	if d.FreeSize > d.TotalSize {
		return fmt.Errorf("drive %s reports %d free bytes of %d", d.Letter, d.FreeSize, d.TotalSize)
	}

	return nil
}

func (d DriveInfo) Fixed() bool {
	return d.Type == DriveTypeFixed
}

// FilterFixedDrives keeps only fixed drives. Removable and network media are
// never scanned for installations.
func FilterFixedDrives(drives []DriveInfo) []DriveInfo {
	fixed := make([]DriveInfo, 0, len(drives))
	for _, drive := range drives {
		if drive.Fixed() {
			fixed = append(fixed, drive)
		}
	}

	return fixed
}

func FindDrive(drives []DriveInfo, letter string) (DriveInfo, error) {
	for _, drive := range drives {
		if drive.Letter == letter {
			return drive, nil
		}
	}

	return DriveInfo{}, fmt.Errorf("%w: %s", ErrDriveNotFound, letter)
}
