package scan

import (
	"testing"
	"time"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDrives(t *testing.T) {
	output, err := Drives([]domain.DriveInfo{
		{Letter: "/", Name: "/dev/nvme0n1p2", TotalSize: 512 << 30, FreeSize: 128 << 30, Type: domain.DriveTypeFixed},
		{Letter: "/mnt/usb", TotalSize: 0, FreeSize: 0, Type: domain.DriveTypeRemovable},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "drives: 2, free 128 GiB of 512 GiB")
	assert.Contains(t, output, "128.0 GB free of 512.0 GB")
	assert.Contains(t, output, "[Fixed]")
	assert.Contains(t, output, "[Removable]")
	assert.Contains(t, output, "Unknown free of Unknown")
}

func TestRenderDrivesEmpty(t *testing.T) {
	output, err := Drives(nil)

	require.NoError(t, err)
	assert.Contains(t, output, "No drives available.")
}

func TestRenderResults(t *testing.T) {
	found := domain.FoundOutcome("hk4e", "5.0.0", 1)
	missing := domain.NotFoundOutcome("unknown build")
	offline := domain.NetworkErrorOutcome()

	output, err := Results("hk4e", []domain.PathCheckResult{
		domain.CheckingResult("/games/checking"),
		domain.CheckingResult("/games/ok").Resolve("abc123", &found),
		domain.CheckingResult("/games/missing").Resolve("def456", &missing),
		domain.CheckingResult("/games/offline").Resolve("0f0f", &offline),
		domain.CheckingResult("/games/broken").Resolve("", nil),
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Installations of hk4e")
	assert.Contains(t, output, "found: 5")
	assert.Contains(t, output, "/games/checking checking...")
	assert.Contains(t, output, "hk4e 5.0.0 (channel 1)")
	assert.Contains(t, output, "not found: unknown build")
	assert.Contains(t, output, "not found (catalog unreachable)")
	assert.Contains(t, output, "could not fingerprint")
}

func TestRenderPaths(t *testing.T) {
	output, err := Paths([]domain.InstallRecord{
		{Game: "hk4e", Versions: map[domain.Version]domain.VersionPaths{
			"4.8.0": domain.LegacyVersionPath{Path: "/games/old"},
			"5.0.0": domain.ChannelVersionPaths{2: "/games/cn", 1: "/games/global"},
		}},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "games: 1")
	assert.Contains(t, output, "all channels: /games/old")
	assert.Contains(t, output, "channel 1: /games/global")
	assert.Contains(t, output, "channel 2: /games/cn")
	assert.Less(t, indexOf(output, "channel 1:"), indexOf(output, "channel 2:"))
}

func TestRenderHistory(t *testing.T) {
	now := time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)
	launch := domain.LaunchContext{Game: "hk4e", Version: "5.0.0", Channel: 1}

	output, err := History([]domain.Session{
		{ID: "old", Launch: launch, StartedAt: now.Add(-26 * time.Hour), EndedAt: now.Add(-24 * time.Hour), EndReason: domain.SessionEndExited},
		{ID: "new", Launch: domain.LaunchContext{Game: "nap", Version: "1.0", Channel: 2}, StartedAt: now.Add(-10 * time.Minute)},
	}, []domain.Game{{ID: "hk4e", Name: "Genshin Impact"}}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "sessions: 2")
	assert.Contains(t, output, "Genshin Impact")
	assert.Contains(t, output, "1 day ago")
	assert.Contains(t, output, "for 2h00m")
	assert.Contains(t, output, "exited")
	assert.Contains(t, output, "10 minutes ago")
	assert.Contains(t, output, "running")
	assert.Less(t, indexOf(output, "nap"), indexOf(output, "Genshin Impact"))
}

func TestProgressLine(t *testing.T) {
	line := ProgressLine(domain.ScanProgress{
		CurrentPath:        "/games/some/really/long/path/that/keeps/going/and/going/until/it/is/truncated/Genshin",
		FilesScanned:       12345,
		DirectoriesScanned: 1200,
		FoundPaths:         []string{"/games/a"},
	})

	assert.Contains(t, line, "1,200 dirs, 12,345 files, 1 found")
	assert.Contains(t, line, "...")
	assert.Contains(t, line, "truncated/Genshin")
}

func indexOf(output, needle string) int {
	for i := 0; i+len(needle) <= len(output); i++ {
		if output[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
