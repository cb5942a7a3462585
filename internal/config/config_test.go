package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabfmt/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromPathYAML(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "config.yaml", "format: csv\nborder: ascii\nprecision: 2\ncolor: never\n")
	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, "ascii", cfg.Border)
	require.NotNil(t, cfg.Precision)
	assert.Equal(t, 2, *cfg.Precision)
	assert.Equal(t, "never", cfg.Color)
}

func TestLoadFromPathTOML(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "config.toml", "format = \"markdown\"\nprecision = 0\n")
	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Format)
	require.NotNil(t, cfg.Precision)
	assert.Zero(t, *cfg.Precision)
	assert.Empty(t, cfg.Border)
}

func TestLoadFromPathPrecisionUnset(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "config.yml", "format: json\n")
	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Precision)
}

func TestLoadFromPathErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		name    string
		content string
	}{
		"bad yaml": {name: "config.yaml", content: "format: [csv\n"},
		"bad toml": {name: "config.toml", content: "format = \n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := config.LoadFromPath(writeFile(t, tt.name, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parse config")
		})
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	t.Parallel()
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// The tests below swap the package-level config path and must not run in
// parallel.

func TestLoadDefaultMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	orig := config.SetConfigPathFunc(func() (string, error) { return missing, nil })
	t.Cleanup(func() { config.SetConfigPathFunc(orig) })

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, &config.Config{}, cfg)
}

func TestLoadDefaultPresent(t *testing.T) {
	path := writeFile(t, "config.yaml", "border: heavy\n")
	orig := config.SetConfigPathFunc(func() (string, error) { return path, nil })
	t.Cleanup(func() { config.SetConfigPathFunc(orig) })

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "heavy", cfg.Border)
}

func TestDefaultConfigPathEnv(t *testing.T) {
	t.Setenv(config.EnvPath, "/tmp/tabfmt-test.yaml")
	got, err := config.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tabfmt-test.yaml", got)
}

func TestDefaultConfigPathHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvPath, "")
	t.Setenv("HOME", home)
	got, err := config.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "tabfmt", "config.yaml"), got)
}
