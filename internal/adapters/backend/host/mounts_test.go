package host

import (
	"strings"
	"testing"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseMounts(t *testing.T) {
	t.Parallel()

	table := `proc /proc proc rw,nosuid 0 0
/dev/nvme0n1p2 / ext4 rw,relatime 0 0
/dev/nvme0n1p1 /boot vfat rw 0 0
tmpfs /tmp tmpfs rw 0 0
/dev/sdb1 /run/media/me/Game\040Drive exfat rw 0 0
nas:/export /mnt/nas nfs4 rw 0 0
/dev/loop3 /snap/core/1 squashfs ro 0 0
/dev/sdc1 /mnt/data ext4 rw 0 0
/dev/sdd1 /mnt/data btrfs rw 0 0
short line
`

	entries := parseMounts(strings.NewReader(table))

	assert.Equal(t, []mountEntry{
		{Device: "/dev/nvme0n1p2", MountPoint: "/", FSType: "ext4"},
		{Device: "/dev/sdb1", MountPoint: "/run/media/me/Game Drive", FSType: "exfat"},
		{Device: "nas:/export", MountPoint: "/mnt/nas", FSType: "nfs4"},
		{Device: "/dev/sdd1", MountPoint: "/mnt/data", FSType: "btrfs"},
	}, entries)
}

func TestClassifyMount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		entry     mountEntry
		removable bool
		want      domain.DriveType
	}{
		{name: "fixed disk", entry: mountEntry{Device: "/dev/sda1", FSType: "ext4"}, want: domain.DriveTypeFixed},
		{name: "usb stick", entry: mountEntry{Device: "/dev/sdb1", FSType: "vfat"}, removable: true, want: domain.DriveTypeRemovable},
		{name: "network share", entry: mountEntry{Device: "//nas/games", FSType: "cifs"}, want: domain.DriveTypeNetwork},
		{name: "optical", entry: mountEntry{Device: "/dev/sr0", FSType: "iso9660"}, removable: true, want: domain.DriveTypeCDRom},
		{name: "ram disk", entry: mountEntry{Device: "none", FSType: "tmpfs"}, want: domain.DriveTypeRAMDisk},
		{name: "unknown", entry: mountEntry{Device: "rootfs", FSType: "rootfs"}, want: domain.DriveTypeUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, classifyMount(tc.entry, tc.removable))
		})
	}
}

func TestUnescapeMount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/mnt/My Games", unescapeMount(`/mnt/My\040Games`))
	assert.Equal(t, "/mnt/tab\there", unescapeMount(`/mnt/tab\011here`))
	assert.Equal(t, `/mnt/back\slash`, unescapeMount(`/mnt/back\134slash`))
	assert.Equal(t, `/mnt/odd\9`, unescapeMount(`/mnt/odd\9`))
}
