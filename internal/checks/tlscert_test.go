package checks

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTLSCertificatesAllPresent(t *testing.T) {
	dir := t.TempDir()
	key := filepath.Join(dir, "privkey.pem")
	chain := filepath.Join(dir, "fullchain.pem")
	require.NoError(t, os.WriteFile(key, []byte("key"), 0o600))
	require.NoError(t, os.WriteFile(chain, []byte("chain"), 0o644))

	var buf bytes.Buffer
	passed := TLSCertificates([]string{key, chain}, NewPrinter(&buf))

	assert.True(t, passed)
	assert.Contains(t, buf.String(), "TLS certificates found")
}

func TestTLSCertificatesMissing(t *testing.T) {
	dir := t.TempDir()
	key := filepath.Join(dir, "privkey.pem")
	require.NoError(t, os.WriteFile(key, []byte("key"), 0o600))
	missing := filepath.Join(dir, "fullchain.pem")

	var buf bytes.Buffer
	passed := TLSCertificates([]string{key, missing}, NewPrinter(&buf))

	assert.False(t, passed, "a single missing certificate fails the check")
	assert.Contains(t, buf.String(), "TLS certificates not found")
	assert.Contains(t, buf.String(), "certbot")
}
