package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFiles(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	t.Run("defaults when nothing exists", func(t *testing.T) {
		cfg, err := LoadConfigFiles(ctx, filepath.Join(dir, "missing.yaml"), "")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("override wins key by key", func(t *testing.T) {
		base := writeFile(t, dir, "base.yaml", "worker:\n  pool_size: 2\nqueue:\n  capacity: 5\n")
		override := writeFile(t, dir, "override.yaml", "worker:\n  pool_size: 8\n")

		cfg, err := LoadConfigFiles(ctx, base, override)
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Worker.PoolSize)
		assert.Equal(t, 5, cfg.Queue.Capacity, "keys absent from the override keep the base value")
	})

	t.Run("missing override is an error", func(t *testing.T) {
		_, err := LoadConfigFiles(ctx, "", filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeFile(t, dir, "typo.yaml", "worker:\n  poolsize: 3\n")
		_, err := LoadConfigFiles(ctx, path, "")
		require.Error(t, err)
	})

	t.Run("non positive pool size", func(t *testing.T) {
		path := writeFile(t, dir, "zero.yaml", "worker:\n  pool_size: 0\n")
		_, err := LoadConfigFiles(ctx, path, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pool_size must be positive")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "worker: [\n")
		_, err := LoadConfigFiles(ctx, path, "")
		require.Error(t, err)
	})
}

func TestLoadConfig_Env(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "env.yaml", "worker:\n  pool_size: 3\n")
	t.Setenv(ConfigPathEnv, path)

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Worker.PoolSize)
}
