package checks

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFixScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), FixScriptName)
	require.NoError(t, WriteFixScript(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "#!/bin/bash"))
	// One guarded block per fixable gap.
	assert.Contains(t, content, "command -v aws")
	assert.Contains(t, content, "command -v uv")
	assert.Contains(t, content, "config.yaml")
	assert.Contains(t, content, "cp .env.example .env")
	assert.Contains(t, content, "openssl req")
	assert.Contains(t, content, "aws sts get-caller-identity")
	assert.Contains(t, content, "sre-gateway validate")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm(), "script must be executable")
	}
}

func TestWriteFixScriptOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), FixScriptName)
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteFixScript(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data), "an existing script is regenerated")
}
