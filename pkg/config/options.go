package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseMaxConns sets the maximum size of the connection pool.
func OptDatabaseMaxConns(i int) Option {
	return func(c *Config) {
		if isValidInt("Database MaxConns", i) {
			c.Database.MaxConns = i
		}
	}
}

// OptDatabaseMinConns sets the number of idle connections kept by the pool.
func OptDatabaseMinConns(i int) Option {
	return func(c *Config) {
		if isValidInt("Database MinConns", i) {
			c.Database.MinConns = i
		}
	}
}

// OptServerHost sets the listening address of the HTTP server.
func OptServerHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Server.Host = s
	}
}

// OptServerPort sets the TCP port of the HTTP server.
func OptServerPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Server Port", i) {
			c.Server.Port = i
		}
	}
}

// OptServerReadTimeout sets the read timeout in seconds.
func OptServerReadTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Server ReadTimeout", i) {
			c.Server.ReadTimeout = i
		}
	}
}

// OptServerWriteTimeout sets the write timeout in seconds.
func OptServerWriteTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Server WriteTimeout", i) {
			c.Server.WriteTimeout = i
		}
	}
}

// OptServerPerPage sets the default page size of list requests.
func OptServerPerPage(i int) Option {
	return func(c *Config) {
		if isValidInt("Server PerPage", i) {
			c.Server.PerPage = i
		}
	}
}

// OptServerAccessLog turns request logging on or off.
func OptServerAccessLog(b bool) Option {
	return func(c *Config) {
		c.Server.AccessLog = b
	}
}

// OptServerCORSOrigins sets allowed CORS origins (comma-separated).
func OptServerCORSOrigins(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Server CORSOrigins", s) {
			c.Server.CORSOrigins = s
		}
	}
}

// OptSeedDir sets the directory with CSV files for the seed command.
func OptSeedDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Seed Dir", s) {
			c.Seed.Dir = s
		}
	}
}

// OptSeedForce allows the seed command to replace existing records.
// Runtime-only field - not in ToOptions().
func OptSeedForce(b bool) Option {
	return func(c *Config) {
		c.Seed.Force = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
