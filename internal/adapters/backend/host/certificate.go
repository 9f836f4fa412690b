package host

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// CheckSSLCertificateInstalled reports whether the proxy CA is present in one
// of the trust directories. Without a configured CA there is nothing to
// install.
func (b *Backend) CheckSSLCertificateInstalled(ctx context.Context) (bool, error) {
	if b.cfg.CACertificate == "" {
		return true, nil
	}

	want, err := os.ReadFile(b.cfg.CACertificate)
	if err != nil {
		return false, fmt.Errorf("read CA certificate: %w", err)
	}
	want = bytes.TrimSpace(want)
	if len(b.cfg.TrustDirs) == 0 {
		return false, fmt.Errorf("no trust store directories on %s", runtime.GOOS)
	}

	for _, dir := range b.cfg.TrustDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return false, err
			}
			if entry.IsDir() {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				continue
			}
			if bytes.Equal(bytes.TrimSpace(data), want) {
				return true, nil
			}
		}
	}

	return false, nil
}

// TrustDirs lists the directories a certificate install lands in.
func (b *Backend) TrustDirs() []string {
	return append([]string(nil), b.cfg.TrustDirs...)
}

func defaultTrustDirs() []string {
	switch runtime.GOOS {
	case "linux":
		return []string{
			"/usr/local/share/ca-certificates",
			"/etc/pki/ca-trust/source/anchors",
			"/etc/ca-certificates/trust-source/anchors",
		}
	default:
		return nil
	}
}
