package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/chartkit/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "blue", cfg.Defaults.Color)
	assert.NotNil(t, cfg.Charts)
	assert.Empty(t, cfg.Charts)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
version: 1
defaults:
  color: teal
  width: 640
  height: 320
  animate: false
  legend: on
  legend_position: right
charts:
  bar:
    variant: stacked
    bar_gap: 0.3
    grid: false
  sparkline:
    reference: 50
    duration: 1.5s
output:
  dir: renders
  color: never
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "teal", cfg.Defaults.Color)
	assert.Equal(t, 640.0, cfg.Defaults.Width)
	require.NotNil(t, cfg.Defaults.Animate)
	assert.False(t, *cfg.Defaults.Animate)
	assert.Equal(t, "on", cfg.Defaults.Legend)
	require.Contains(t, cfg.Charts, "bar")
	assert.Equal(t, "stacked", cfg.Charts["bar"].Variant)
	require.NotNil(t, cfg.Charts["bar"].BarGap)
	assert.Equal(t, 0.3, *cfg.Charts["bar"].BarGap)
	require.NotNil(t, cfg.Charts["sparkline"].Reference)
	assert.Equal(t, 50.0, *cfg.Charts["sparkline"].Reference)
	assert.Equal(t, filepath.Join(dir, "renders"), cfg.Output.Dir, "relative output dirs resolve against the config file")
	assert.Equal(t, "never", cfg.Output.Color)
}

func TestLoad_MinimalFileGetsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "version: 1\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "blue", cfg.Defaults.Color)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.NotNil(t, cfg.Charts)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{"bad yaml", "defaults: [unclosed", "Failed to read config file"},
		{"invalid width", "defaults:\n  width: 5\n", "defaults.width"},
		{"unknown kind", "charts:\n  donut:\n    color: red\n", "Unknown chart type 'donut'"},
		{"future version", "version: 99\n", "from the future"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/.chartkit.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind(t *testing.T) {
	t.Run("explicit path exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("version: 1"), 0644))
		got, err := Find(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("explicit path not found", func(t *testing.T) {
		_, err := Find("/nonexistent/config.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Specified config file not found")
	})

	t.Run("current directory", func(t *testing.T) {
		dir := t.TempDir()
		want := writeConfig(t, dir, "version: 1")
		chdir(t, dir)

		got, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, evalPath(t, want), evalPath(t, got))
	})

	t.Run("parent directory", func(t *testing.T) {
		dir := t.TempDir()
		want := writeConfig(t, dir, "version: 1")
		nested := filepath.Join(dir, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0755))
		chdir(t, nested)

		got, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, evalPath(t, want), evalPath(t, got))
	})

	t.Run("stops at git root", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "version: 1")
		repo := filepath.Join(dir, "repo")
		require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))
		chdir(t, repo)
		t.Setenv("HOME", t.TempDir())

		got, err := Find("")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)

	want := writeConfig(t, dir, "defaults:\n  color: rose\n")
	cfg, path, err = LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, evalPath(t, want), evalPath(t, path))
	assert.Equal(t, "rose", cfg.Defaults.Color)
}

func evalPath(t *testing.T, p string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(p)
	require.NoError(t, err)
	return resolved
}
