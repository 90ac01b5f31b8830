package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-transfers/internal/config"
)

func TestWriteConfig(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), config.DefaultConfigFileName)
	cfg := config.Default()
	cfg.Export.Dir = "exports"
	cfg.Columns.Description = "NOMBRE"

	var out bytes.Buffer
	require.NoError(t, writeConfig(&out, cfg, path))
	assert.Equal(t, "Wrote configuration to "+path+"\n", out.String())

	loaded, loadedFrom, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, loadedFrom)
	assert.Equal(t, cfg, loaded)
}

func TestWriteConfig_Unwritable(t *testing.T) {
	// The parent "directory" is a regular file.
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, writeConfig(&bytes.Buffer{}, config.Default(), parent))

	err := writeConfig(&bytes.Buffer{}, config.Default(), filepath.Join(parent, "transfers.toml"))
	assert.ErrorContains(t, err, "writing config")
}
