// Package config provides configuration management for PokeDB.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode,
//     max_conns, min_conns
//   - Server: host, port, read_timeout, write_timeout, per_page,
//     access_log, cors_origins
//   - Seed: dir
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Seed.Force (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use POKEDB_ prefix with underscores for nesting:
//
//	POKEDB_DATABASE_HOST=localhost
//	POKEDB_DATABASE_PORT=5432
//	POKEDB_SERVER_PORT=8000
//	POKEDB_LOG_LEVEL=info
package config

// Config represents the complete PokeDB configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Server contains settings of the HTTP shell.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	// Seed contains settings of the seed command.
	Seed SeedConfig `mapstructure:"seed" yaml:"seed"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// MaxConns is the upper limit of pooled connections.
	MaxConns int `mapstructure:"max_conns" yaml:"max_conns"`

	// MinConns is the number of connections kept open when idle.
	MinConns int `mapstructure:"min_conns" yaml:"min_conns"`
}

// ServerConfig contains settings of the HTTP server.
type ServerConfig struct {
	// Host is the address the server listens on. Empty means all interfaces.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the TCP port of the server.
	Port int `mapstructure:"port" yaml:"port"`

	// ReadTimeout in seconds.
	ReadTimeout int `mapstructure:"read_timeout" yaml:"read_timeout"`

	// WriteTimeout in seconds.
	WriteTimeout int `mapstructure:"write_timeout" yaml:"write_timeout"`

	// PerPage is the page size used when a list request has no per_page.
	PerPage int `mapstructure:"per_page" yaml:"per_page"`

	// AccessLog enables a line per request on STDERR.
	AccessLog bool `mapstructure:"access_log" yaml:"access_log"`

	// CORSOrigins is a comma-separated list of allowed origins.
	CORSOrigins string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// SeedConfig contains settings of the seed command.
type SeedConfig struct {
	// Dir is the directory with pokemon_species.csv, pokemon.csv and
	// pokemon_types.csv files.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Force allows seeding a database that already has records. The
	// tables are truncated first.
	Force bool `mapstructure:"-" yaml:"-"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "pokedb",
			SSLMode:  "disable",
			MaxConns: 10,
			MinConns: 2,
		},
		Server: ServerConfig{
			Port:         8000,
			ReadTimeout:  10,
			WriteTimeout: 10,
			PerPage:      10,
			CORSOrigins:  "*",
		},
		Seed: SeedConfig{
			Dir: "data",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
