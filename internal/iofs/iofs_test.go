package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/pokedb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()

	// repeated calls are harmless
	for range 2 {
		require.NoError(t, EnsureDirs(home))
	}

	for _, dir := range []string{
		filepath.Join(home, ".config", "pokedb"),
		filepath.Join(home, ".local", "share", "pokedb", "logs"),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), dir)
	}
}

func TestTouchDirFails(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	err := touchDir(filepath.Join(file, "sub"))
	assert.Error(t, err)
}

func TestEnsureConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, EnsureDirs(home))
	require.NoError(t, EnsureConfigFile(home))

	path := filepath.Join(home, ".config", "pokedb", "config.yaml")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(content))

	custom := "database:\n  host: db.kanto\n"
	require.NoError(t, os.WriteFile(path, []byte(custom), 0644))
	require.NoError(t, EnsureConfigFile(home))

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, custom, string(content), "existing file is kept")
}

// TestConfigYAMLDefaults keeps the documented file in sync with
// config.New.
func TestConfigYAMLDefaults(t *testing.T) {
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(ConfigYAML), &cfg))

	def := config.New()
	assert.Equal(t, def.Database, cfg.Database)
	assert.Equal(t, def.Server, cfg.Server)
	assert.Equal(t, def.Seed, cfg.Seed)
	assert.Equal(t, def.Log, cfg.Log)
}
