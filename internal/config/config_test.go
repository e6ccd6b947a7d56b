package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vizbridge.toml")
	body := `
[backend]
url = "ws://viewer:9876/stream"
token = "s3cret"

[catalog]
enabled = true
dsn = "postgres://u:p@db:5432/catalog"

[scene]
manifest = "scenes/lab.yaml"

[logging]
level = "debug"
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ws://viewer:9876/stream", cfg.Backend.URL)
	assert.Equal(t, "s3cret", cfg.Backend.Token)
	assert.True(t, cfg.Catalog.Enabled)
	assert.Equal(t, "scenes/lab.yaml", cfg.Scene.Manifest)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched sections keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.Backend.DialTimeout)
	assert.Equal(t, 5, cfg.Catalog.MaxOpenConns)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/vizbridge.toml")
	assert.Error(t, err)
}
