package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	cfg := Fill(&Config{
		NET: NET{ReadBufferSize: 64},
	})

	require.Equal(t, 64, cfg.NET.ReadBufferSize)
	require.Equal(t, Default().NET.WriteBufferSize, cfg.NET.WriteBufferSize)
	require.Equal(t, Default().NET.AcceptLoopInterruptPeriod, cfg.NET.AcceptLoopInterruptPeriod)
	require.Equal(t, ".", cfg.FS.Root)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.json")
	raw := `{"net": {"read_buffer_size": 2048, "read_timeout": 1000000000}, "fs": {"root": "/srv/www"}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2048, cfg.NET.ReadBufferSize)
	require.Equal(t, time.Second, cfg.NET.ReadTimeout)
	require.Equal(t, "/srv/www", cfg.FS.Root)
	require.Equal(t, Default().NET.WriteBufferSize, cfg.NET.WriteBufferSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.json"))
	require.Error(t, err)
}
