package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "docs/images/icon.png", cfg.IconPath)
	assert.Equal(t, StorePreferences, cfg.Store)
	assert.Equal(t, float32(420), cfg.WindowWidth)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ETHEROLL_STORE", "leveldb")
	t.Setenv("ETHEROLL_LEVELDB_PATH", "/tmp/etheroll")
	t.Setenv("ETHEROLL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreLevelDB, cfg.Store)
	assert.Equal(t, "/tmp/etheroll", cfg.LevelDBPath)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("store", func(t *testing.T) {
		t.Setenv("ETHEROLL_STORE", "sqlite")
		_, err := Load()
		assert.ErrorContains(t, err, "unsupported store")
	})
	t.Run("log level", func(t *testing.T) {
		t.Setenv("ETHEROLL_LOG_LEVEL", "chatty")
		_, err := Load()
		assert.ErrorContains(t, err, "invalid log level")
	})
	t.Run("window size", func(t *testing.T) {
		t.Setenv("ETHEROLL_WINDOW_WIDTH", "wide")
		_, err := Load()
		assert.Error(t, err)
	})
}
