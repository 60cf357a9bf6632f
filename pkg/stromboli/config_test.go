package stromboli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stromboli.toml")
	content := `
uri_prefix = "stromboli://"
log_level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	opts, err := LoadOptions(path)

	require.NoError(t, err)
	assert.Equal(t, "stromboli://", opts.URIPrefix)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.Empty(t, opts.LogPath)
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "absent.toml"))

	require.Error(t, err)
	assert.True(t, IsInfrastructureError(err))
}
