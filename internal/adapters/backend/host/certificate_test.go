package host

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCA = "-----BEGIN CERTIFICATE-----\nMIIBfake\n-----END CERTIFICATE-----\n"

func TestCheckSSLCertificateInstalled(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	caPath := filepath.Join(t.TempDir(), "proxy-ca.crt")
	touch(t, caPath, testCA)

	t.Run("no certificate configured", func(t *testing.T) {
		t.Parallel()
		backend := newTestBackend(t, Config{}, nil)
		installed, err := backend.CheckSSLCertificateInstalled(ctx)
		require.NoError(t, err)
		assert.True(t, installed)
	})

	t.Run("installed copy found", func(t *testing.T) {
		t.Parallel()
		trust := t.TempDir()
		touch(t, filepath.Join(trust, "other.crt"), "something else")
		touch(t, filepath.Join(trust, "gamectl.crt"), "\n"+testCA+"\n")
		backend := newTestBackend(t, Config{CACertificate: caPath, TrustDirs: []string{filepath.Join(trust, "missing"), trust}}, nil)

		installed, err := backend.CheckSSLCertificateInstalled(ctx)
		require.NoError(t, err)
		assert.True(t, installed)
	})

	t.Run("not installed", func(t *testing.T) {
		t.Parallel()
		trust := t.TempDir()
		touch(t, filepath.Join(trust, "other.crt"), "something else")
		backend := newTestBackend(t, Config{CACertificate: caPath, TrustDirs: []string{trust}}, nil)

		installed, err := backend.CheckSSLCertificateInstalled(ctx)
		require.NoError(t, err)
		assert.False(t, installed)
		assert.Equal(t, []string{trust}, backend.TrustDirs())
	})

	t.Run("unreadable certificate", func(t *testing.T) {
		t.Parallel()
		backend := newTestBackend(t, Config{CACertificate: filepath.Join(t.TempDir(), "missing.crt"), TrustDirs: []string{t.TempDir()}}, nil)

		_, err := backend.CheckSSLCertificateInstalled(ctx)
		require.ErrorContains(t, err, "read CA certificate")
	})
}
