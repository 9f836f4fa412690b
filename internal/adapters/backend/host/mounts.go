package host

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/gamectl/internal/domain"
)

type mountEntry struct {
	Device     string
	MountPoint string
	FSType     string
}

var (
	networkFS = map[string]struct{}{
		"nfs": {}, "nfs4": {}, "cifs": {}, "smb3": {}, "smbfs": {}, "fuse.sshfs": {}, "9p": {},
	}
	opticalFS = map[string]struct{}{"iso9660": {}, "udf": {}}
	ramFS     = map[string]struct{}{"tmpfs": {}, "ramfs": {}}

	skippedMountPrefixes = []string{"/boot", "/snap", "/var/lib/docker", "/var/lib/containers"}
)

// parseMounts reads a /proc/mounts style table and keeps the mounts a game
// could live on. Later entries for the same mount point replace earlier ones.
func parseMounts(r io.Reader) []mountEntry {
	var (
		entries []mountEntry
		index   = map[string]int{}
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		entry := mountEntry{
			Device:     unescapeMount(fields[0]),
			MountPoint: unescapeMount(fields[1]),
			FSType:     fields[2],
		}
		if !candidateMount(entry) {
			continue
		}
		if i, ok := index[entry.MountPoint]; ok {
			entries[i] = entry
			continue
		}
		index[entry.MountPoint] = len(entries)
		entries = append(entries, entry)
	}

	return entries
}

func candidateMount(entry mountEntry) bool {
	for _, prefix := range skippedMountPrefixes {
		if entry.MountPoint == prefix || strings.HasPrefix(entry.MountPoint, prefix+"/") {
			return false
		}
	}
	if _, ok := networkFS[entry.FSType]; ok {
		return true
	}
	if _, ok := ramFS[entry.FSType]; ok {
		return false
	}
	if entry.FSType == "squashfs" || entry.FSType == "overlay" {
		return false
	}

	return strings.HasPrefix(entry.Device, "/dev/")
}

// classifyMount decides the drive type; removable is the sysfs removable
// flag of the backing block device.
func classifyMount(entry mountEntry, removable bool) domain.DriveType {
	if _, ok := networkFS[entry.FSType]; ok {
		return domain.DriveTypeNetwork
	}
	if _, ok := opticalFS[entry.FSType]; ok {
		return domain.DriveTypeCDRom
	}
	if _, ok := ramFS[entry.FSType]; ok {
		return domain.DriveTypeRAMDisk
	}
	if removable {
		return domain.DriveTypeRemovable
	}
	if strings.HasPrefix(entry.Device, "/dev/") {
		return domain.DriveTypeFixed
	}

	return domain.DriveTypeUnknown
}

// unescapeMount decodes the octal escapes the kernel uses for spaces, tabs
// and backslashes in mount tables.
func unescapeMount(field string) string {
	if !strings.Contains(field, `\`) {
		return field
	}

	var b strings.Builder
	for i := 0; i < len(field); i++ {
		if field[i] == '\\' && i+3 < len(field) {
			if value, err := strconv.ParseUint(field[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(value))
				i += 3
				continue
			}
		}
		b.WriteByte(field[i])
	}

	return b.String()
}
