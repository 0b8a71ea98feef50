package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveConfigWritesReadableFile(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Data.Dir = "/tmp/shelf-data"
	cfg.Viewer.Command = "zathura"
	cfg.UI.GridColumns = 4
	cfg.Logging.Level = "DEBUG"

	require.NoError(t, saveConfigTo(cfg, dir))

	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, v.ReadInConfig())

	assert.Equal(t, "/tmp/shelf-data", v.GetString("data.dir"))
	assert.Equal(t, "zathura", v.GetString("viewer.command"))
	assert.Equal(t, 4, v.GetInt("ui.grid_columns"))
	assert.Equal(t, "DEBUG", v.GetString("logging.level"))
}

func TestSaveConfigCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	require.NoError(t, saveConfigTo(DefaultConfig(), dir))

	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, v.ReadInConfig())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NotEmpty(t, cfg.Data.Dir)
	assert.Equal(t, 3, cfg.UI.GridColumns)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Empty(t, cfg.Viewer.Command)
}
