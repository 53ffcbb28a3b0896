package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/pokedb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "pokedb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "pokedb", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "pokedb", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "pokedb", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 10, cfg.Database.MaxConns)
		assert.Equal(t, 2, cfg.Database.MinConns)

		// Server defaults
		assert.Equal(t, 8000, cfg.Server.Port)
		assert.Equal(t, 10, cfg.Server.PerPage)
		assert.False(t, cfg.Server.AccessLog)
		assert.Equal(t, "*", cfg.Server.CORSOrigins)

		assert.Equal(t, "data", cfg.Seed.Dir)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Empty(t, cfg.HomeDir)
	})
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid host",
			input:    "db.example.com",
			expected: "db.example.com",
		},
		{
			name:     "trims whitespace",
			input:    "  db.example.com  ",
			expected: "db.example.com",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "localhost",
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "localhost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseHost(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionPositiveInts(t *testing.T) {
	tests := []struct {
		name     string
		opt      func(int) config.Option
		get      func(*config.Config) int
		input    int
		expected int
	}{
		{
			name:     "database port",
			opt:      config.OptDatabasePort,
			get:      func(c *config.Config) int { return c.Database.Port },
			input:    6543,
			expected: 6543,
		},
		{
			name:     "database port ignores zero",
			opt:      config.OptDatabasePort,
			get:      func(c *config.Config) int { return c.Database.Port },
			input:    0,
			expected: 5432,
		},
		{
			name:     "max conns",
			opt:      config.OptDatabaseMaxConns,
			get:      func(c *config.Config) int { return c.Database.MaxConns },
			input:    25,
			expected: 25,
		},
		{
			name:     "min conns ignores negative",
			opt:      config.OptDatabaseMinConns,
			get:      func(c *config.Config) int { return c.Database.MinConns },
			input:    -1,
			expected: 2,
		},
		{
			name:     "server port",
			opt:      config.OptServerPort,
			get:      func(c *config.Config) int { return c.Server.Port },
			input:    9000,
			expected: 9000,
		},
		{
			name:     "per page",
			opt:      config.OptServerPerPage,
			get:      func(c *config.Config) int { return c.Server.PerPage },
			input:    50,
			expected: 50,
		},
		{
			name:     "per page ignores zero",
			opt:      config.OptServerPerPage,
			get:      func(c *config.Config) int { return c.Server.PerPage },
			input:    0,
			expected: 10,
		},
		{
			name:     "read timeout",
			opt:      config.OptServerReadTimeout,
			get:      func(c *config.Config) int { return c.Server.ReadTimeout },
			input:    30,
			expected: 30,
		},
		{
			name:     "write timeout ignores negative",
			opt:      config.OptServerWriteTimeout,
			get:      func(c *config.Config) int { return c.Server.WriteTimeout },
			input:    -5,
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt(tt.input)})
			assert.Equal(t, tt.expected, tt.get(cfg))
		})
	}
}

func TestOptionDatabaseSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid ssl mode - require",
			input:    "require",
			expected: "require",
		},
		{
			name:     "sets valid ssl mode - verify-full",
			input:    "verify-full",
			expected: "verify-full",
		},
		{
			name:     "normalizes to lowercase",
			input:    "REQUIRE",
			expected: "require",
		},
		{
			name:     "ignores invalid value",
			input:    "invalid",
			expected: "disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseSSLMode(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.SSLMode)
		})
	}
}

func TestOptionLog(t *testing.T) {
	t.Run("level", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptLogLevel(" DEBUG ")})
		assert.Equal(t, "debug", cfg.Log.Level)

		cfg.Update([]config.Option{config.OptLogLevel("verbose")})
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("format", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptLogFormat("text")})
		assert.Equal(t, "text", cfg.Log.Format)

		cfg.Update([]config.Option{config.OptLogFormat("xml")})
		assert.Equal(t, "text", cfg.Log.Format)
	})

	t.Run("destination", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptLogDestination("stderr")})
		assert.Equal(t, "stderr", cfg.Log.Destination)

		cfg.Update([]config.Option{config.OptLogDestination("stdin")})
		assert.Equal(t, "stderr", cfg.Log.Destination)
	})
}

func TestOptionServerStrings(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptServerHost(" 127.0.0.1 "),
		config.OptServerCORSOrigins("https://pokedex.example.org"),
		config.OptServerAccessLog(true),
		config.OptSeedDir("/srv/pokedb/csv"),
		config.OptSeedForce(true),
	})

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "https://pokedex.example.org", cfg.Server.CORSOrigins)
	assert.True(t, cfg.Server.AccessLog)
	assert.Equal(t, "/srv/pokedb/csv", cfg.Seed.Dir)
	assert.True(t, cfg.Seed.Force)

	cfg.Update([]config.Option{config.OptSeedDir("  ")})
	assert.Equal(t, "/srv/pokedb/csv", cfg.Seed.Dir)
}

func TestOptionHomeDir(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/ash")})
	assert.Equal(t, "/home/ash", cfg.HomeDir)
}

func TestToOptions(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptDatabaseHost("db.internal"),
		config.OptDatabaseDatabase("kanto"),
		config.OptServerPort(9090),
		config.OptServerPerPage(25),
		config.OptServerAccessLog(true),
		config.OptLogLevel("warn"),
		config.OptSeedForce(true),
		config.OptHomeDir("/home/misty"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, "db.internal", dst.Database.Host)
	assert.Equal(t, "kanto", dst.Database.Database)
	assert.Equal(t, 9090, dst.Server.Port)
	assert.Equal(t, 25, dst.Server.PerPage)
	assert.True(t, dst.Server.AccessLog)
	assert.Equal(t, "warn", dst.Log.Level)
	assert.False(t, dst.Seed.Force, "Seed.Force is runtime-only")
	assert.Empty(t, dst.HomeDir, "HomeDir is runtime-only")
}
