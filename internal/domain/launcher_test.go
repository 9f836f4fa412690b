package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterFixedDrivesKeepsOnlyFixed(t *testing.T) {
	t.Parallel()

	drives := []DriveInfo{
		{Letter: "C:", Type: DriveTypeFixed, TotalSize: 100, FreeSize: 10},
		{Letter: "D:", Type: DriveTypeRemovable, TotalSize: 100, FreeSize: 10},
		{Letter: "E:", Type: DriveTypeNetwork},
		{Letter: "F:", Type: DriveTypeFixed},
		{Letter: "G:", Type: DriveTypeCDRom},
		{Letter: "H:", Type: DriveTypeUnknown},
	}

	fixed := FilterFixedDrives(drives)
	require.Len(t, fixed, 2)
	for _, drive := range fixed {
		assert.Equal(t, DriveTypeFixed, drive.Type)
	}
	assert.Equal(t, "C:", fixed[0].Letter)
	assert.Equal(t, "F:", fixed[1].Letter)

	assert.Empty(t, FilterFixedDrives(nil))
}

func TestDriveInfoValidateRejectsFreeAboveTotal(t *testing.T) {
	t.Parallel()

	require.NoError(t, DriveInfo{Letter: "C:", TotalSize: 10, FreeSize: 10}.Validate())
	require.Error(t, DriveInfo{Letter: "C:", TotalSize: 10, FreeSize: 11}.Validate())
}

func TestFormatSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Unknown", FormatSize(0))
	assert.Equal(t, "512.0 B", FormatSize(512))
	assert.Equal(t, "1.5 KB", FormatSize(1536))
	assert.Equal(t, "1.0 GB", FormatSize(1073741824))
	assert.Equal(t, "2.0 TB", FormatSize(2*1024*1024*1024*1024))
	assert.Equal(t, "2048.0 TB", FormatSize(2*1024*1024*1024*1024*1024))
	assert.Equal(t, "1023.0 B", FormatSize(1023))
	assert.Equal(t, "1.0 MB", FormatSize(1048575))
	assert.Equal(t, "1.0 GB", FormatSize(1073741823))
	assert.Equal(t, "1023.9 KB", FormatSize(1048473))
}

func TestInstallRecordResolveLegacyIgnoresChannel(t *testing.T) {
	t.Parallel()

	record := InstallRecord{
		Game:     "hk4e",
		Versions: map[Version]VersionPaths{"1.2.3": LegacyVersionPath{Path: "/path"}},
	}

	for _, channel := range []Channel{0, 1, 2, 7} {
		path, ok := record.Resolve("1.2.3", channel)
		require.True(t, ok)
		assert.Equal(t, "/path", path)
	}

	_, ok := record.Resolve("9.9.9", 1)
	assert.False(t, ok)
}

func TestInstallRecordResolveChannelShape(t *testing.T) {
	t.Parallel()

	record := InstallRecord{
		Game: "hk4e",
		Versions: map[Version]VersionPaths{
			"1.2.3": ChannelVersionPaths{1: "/A", 2: "/B"},
		},
	}

	path, ok := record.Resolve("1.2.3", 2)
	require.True(t, ok)
	assert.Equal(t, "/B", path)

	_, ok = record.Resolve("1.2.3", 3)
	assert.False(t, ok)
}

func TestMigrateVersionPathsDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	legacy := LegacyVersionPath{Path: "/legacy"}
	assert.Equal(t, ChannelVersionPaths{1: "/legacy"}, MigrateVersionPaths(legacy, 1))

	current := ChannelVersionPaths{2: "/B"}
	migrated := MigrateVersionPaths(current, 1)
	migrated[3] = "/C"
	assert.Equal(t, ChannelVersionPaths{2: "/B"}, current)

	assert.Equal(t, ChannelVersionPaths{}, MigrateVersionPaths(nil, 1))
}

func TestInstallRecordWithPathMigratesLegacyVersion(t *testing.T) {
	t.Parallel()

	record := InstallRecord{
		Game:     "hk4e",
		Versions: map[Version]VersionPaths{"1.2.3": LegacyVersionPath{Path: "/legacy"}},
	}

	updated := record.WithPath("1.2.3", 2, "/B", 1)
	assert.Equal(t, ChannelVersionPaths{1: "/legacy", 2: "/B"}, updated.Versions["1.2.3"])
	assert.Equal(t, LegacyVersionPath{Path: "/legacy"}, record.Versions["1.2.3"])

	removed := updated.WithoutPath("1.2.3", 1, 1).WithoutPath("1.2.3", 2, 1)
	assert.NotContains(t, removed.Versions, Version("1.2.3"))
}

func TestInstallRecordLegacyPath(t *testing.T) {
	t.Parallel()

	record := InstallRecord{
		Game: "hk4e",
		Versions: map[Version]VersionPaths{
			"1.0": LegacyVersionPath{Path: "/legacy"},
			"2.0": ChannelVersionPaths{1: "/A"},
			"3.0": LegacyVersionPath{},
		},
	}

	path, ok := record.LegacyPath("1.0")
	assert.True(t, ok)
	assert.Equal(t, "/legacy", path)

	for _, version := range []Version{"2.0", "3.0", "9.9"} {
		_, ok := record.LegacyPath(version)
		assert.False(t, ok, version)
	}

	_, ok = record.WithPath("1.0", 2, "/B", 1).LegacyPath("1.0")
	assert.False(t, ok)
}

func TestSuppressedAdvisorySuppresses(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	suppressed := SuppressUntilMidnight("maintenance tonight", now)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), suppressed.ExpiresAt)

	assert.True(t, suppressed.Suppresses("maintenance tonight", now))
	assert.False(t, suppressed.Suppresses("different text", now))
	assert.False(t, suppressed.Suppresses("maintenance tonight", suppressed.ExpiresAt))
	assert.True(t, suppressed.Expired(suppressed.ExpiresAt))
	assert.False(t, SuppressedAdvisory{}.Suppresses("", now))
}

func TestNextLocalMidnightAtMidnight(t *testing.T) {
	t.Parallel()

	location := time.FixedZone("UTC+8", 8*60*60)
	midnight := time.Date(2026, 12, 31, 0, 0, 0, 0, location)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, location), NextLocalMidnight(midnight))
}

func TestParseProcessIDAcceptsAllShapes(t *testing.T) {
	t.Parallel()

	type launchResult struct {
		ProcessID *int
	}
	pid := 4242

	cases := []struct {
		name   string
		result any
		want   int
		ok     bool
	}{
		{name: "int", result: 4242, want: 4242, ok: true},
		{name: "float", result: float64(4242), want: 4242, ok: true},
		{name: "json number", result: json.Number("4242"), want: 4242, ok: true},
		{name: "digit string", result: "4242", want: 4242, ok: true},
		{name: "json object string", result: `{"pid":4242}`, want: 4242, ok: true},
		{name: "json quoted string", result: `"4242"`, want: 4242, ok: true},
		{name: "raw json", result: json.RawMessage(`{"process_id":4242}`), want: 4242, ok: true},
		{name: "map", result: map[string]any{"processId": float64(4242)}, want: 4242, ok: true},
		{name: "struct", result: launchResult{ProcessID: &pid}, want: 4242, ok: true},
		{name: "struct pointer", result: &launchResult{ProcessID: &pid}, want: 4242, ok: true},
		{name: "nil", result: nil},
		{name: "empty", result: ""},
		{name: "garbage", result: "launched"},
		{name: "zero", result: 0},
		{name: "negative", result: -1},
		{name: "fraction", result: 1.5},
		{name: "missing key", result: map[string]any{"ok": true}},
		{name: "nil field", result: launchResult{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseProcessID(tc.result)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParsePatchDiagnostic(t *testing.T) {
	t.Parallel()

	message := `launch failed: PATCH_NOT_FOUND:{"gameId":"hk4e","version":"4.0.0","channel":1,"md5":"abc","url":"https://patch.example/find/abc","statusCode":404,"errorType":"not_found"}`

	diag, ok := ParsePatchDiagnostic(message)
	require.True(t, ok)
	assert.Equal(t, PatchDiagnostic{
		Game:        "hk4e",
		Version:     "4.0.0",
		Channel:     1,
		Fingerprint: "abc",
		URL:         "https://patch.example/find/abc",
		StatusCode:  404,
		ErrorType:   "not_found",
	}, diag)
	assert.Contains(t, diag.Text(), "md5: abc")

	encoded, err := diag.Encode()
	require.NoError(t, err)
	roundTrip, ok := ParsePatchDiagnostic(encoded)
	require.True(t, ok)
	assert.Equal(t, diag, roundTrip)
}

func TestParsePatchDiagnosticRejectsMalformedPayloads(t *testing.T) {
	t.Parallel()

	for _, message := range []string{
		"plain failure",
		"PATCH_NOT_FOUND:",
		"PATCH_NOT_FOUND:{not json",
		"PATCH_NOT_FOUND:{}",
	} {
		_, ok := ParsePatchDiagnostic(message)
		assert.False(t, ok, message)
	}
}

func TestLaunchOfCarriesContextOutsideIdle(t *testing.T) {
	t.Parallel()

	launch := LaunchContext{Game: "hk4e", Version: "4.0.0", Channel: 1}

	_, ok := LaunchOf(Idle{})
	assert.False(t, ok)

	for _, state := range []LaunchState{
		ResolvingPath{Launch: launch},
		AdvisoryPending{Launch: launch},
		SSLPending{Launch: launch},
		Running{Launch: launch},
	} {
		got, ok := LaunchOf(state)
		require.True(t, ok, state.Kind())
		assert.Equal(t, launch, got)
	}
}

func TestParseChannel(t *testing.T) {
	t.Parallel()

	channel, err := ParseChannel(" 2 ")
	require.NoError(t, err)
	assert.Equal(t, Channel(2), channel)

	_, err = ParseChannel("cn")
	require.Error(t, err)
	_, err = ParseChannel("-1")
	require.Error(t, err)
}
