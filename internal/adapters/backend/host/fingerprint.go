package host

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// GetGameMD5 hashes the first known game executable found in path.
func (b *Backend) GetGameMD5(ctx context.Context, path string) (string, error) {
	executable, err := b.findExecutable(path)
	if err != nil {
		return "", err
	}

	return fileMD5(ctx, executable)
}

func (b *Backend) findExecutable(folder string) (string, error) {
	for _, def := range b.games.definitions() {
		for _, name := range def.ExecutableNames() {
			candidate := filepath.Join(folder, name)
			if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("no game executable in %s", folder)
}

func fileMD5(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, contextReader{ctx: ctx, r: file}); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
