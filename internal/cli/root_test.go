package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezchuang/pomodoro4linux/internal/options"
)

func parse(t *testing.T, args ...string) (*flags, error) {
	t.Helper()
	cmd := NewRootCommand()
	require.NoError(t, cmd.ParseFlags(args))

	f := &flags{}
	f.work, _ = cmd.Flags().GetInt("work")
	f.rest, _ = cmd.Flags().GetInt("rest")
	f.configPath, _ = cmd.Flags().GetString("config")
	f.dbPath, _ = cmd.Flags().GetString("db")
	f.noHistory, _ = cmd.Flags().GetBool("no-history")
	_, err := resolve(cmd, f)
	return f, err
}

func TestResolve_DefaultsWithoutConfig(t *testing.T) {
	cmd := NewRootCommand()
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	require.NoError(t, cmd.ParseFlags([]string{"--config", missing}))

	f := &flags{configPath: missing, work: 25, rest: 5}
	cfg, err := resolve(cmd, f)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.WorkMinutes)
	assert.Equal(t, 5, cfg.RestMinutes)
}

func TestResolve_FlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: 40\nrest_minutes: 8\n"), 0o644))

	cmd := NewRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "-r", "12", "--no-history"}))
	f := &flags{configPath: path, work: 25, rest: 12, noHistory: true}

	cfg, err := resolve(cmd, f)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.WorkMinutes)
	assert.Equal(t, 12, cfg.RestMinutes)
	assert.Empty(t, cfg.Database)
}

func TestResolve_RejectsNonPositive(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := parse(t, "--config", missing, "--work=-5")

	var ove *options.OptionValueError
	require.True(t, errors.As(err, &ove))
	assert.Equal(t, "--work", ove.Option)
}

func TestResolve_RejectsBadConfigValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: 0\n"), 0o644))

	_, err := parse(t, "--config", path)

	var ove *options.OptionValueError
	require.True(t, errors.As(err, &ove))
	assert.Equal(t, "work_minutes", ove.Option)
	assert.Contains(t, err.Error(), path)
}

func TestResolve_FlagFixesBadConfigValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: 0\n"), 0o644))

	cmd := NewRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "-w", "30"}))
	cfg, err := resolve(cmd, &flags{configPath: path, work: 30, rest: 5})
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.WorkMinutes)
}

func TestResolve_RejectsOverlongFlag(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := parse(t, "--config", missing, "--work=153722867280912931")

	var ove *options.OptionValueError
	require.True(t, errors.As(err, &ove))
	assert.Equal(t, "--work", ove.Option)
	assert.Equal(t, options.MaxMinutes, ove.Max)
}

func TestExecute_InvalidRestFailsBeforeStarting(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "c.yaml"), "--rest", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--rest")
}
