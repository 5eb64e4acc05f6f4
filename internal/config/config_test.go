package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezchuang/pomodoro4linux/internal/options"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.WorkMinutes)
	assert.Equal(t, 5, cfg.RestMinutes)
	assert.True(t, cfg.Notify)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: 50\nnotify: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.WorkMinutes)
	assert.Equal(t, 5, cfg.RestMinutes)
	assert.False(t, cfg.Notify)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: [\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate_NamesYAMLKey(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.RestMinutes = 0
	err := cfg.Validate()

	var ove *options.OptionValueError
	require.True(t, errors.As(err, &ove))
	assert.Equal(t, "rest_minutes", ove.Option)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.RestMinutes = 10
	cfg.Database = "x.db"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
	assert.Equal(t, 10, got.Options().Rest)
}
