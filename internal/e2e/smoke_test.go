package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	install := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runGamectl(t, binaryPath, home,
		"path", "set",
		"--game", "hkrpg",
		"--version", "2.5.0",
		"--channel", "1",
		install,
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runGamectl(t, binaryPath, home, "path", "get", "--game", "hkrpg", "--version", "2.5.0")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, install+"\n", stdout)

	stdout, stderr, err = runGamectl(t, binaryPath, home, "history")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "No games launched yet.")
	assert.FileExists(t, filepath.Join(home, ".gamectl", "history.db"))
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "gamectl-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gamectl")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build gamectl binary: %s", string(output))
	return binaryPath
}

func runGamectl(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"XDG_CACHE_HOME="+filepath.Join(home, ".cache"),
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
