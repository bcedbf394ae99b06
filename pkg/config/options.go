package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptStoreDir sets the directory holding per-language store files.
func OptStoreDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store Dir", s) {
			c.Store.Dir = s
		}
	}
}

// OptStoreLearnMode sets the learn_word insert/update strategy.
// Valid values: "mixed", "mostly_new".
func OptStoreLearnMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Store.LearnMode", s) {
			c.Store.LearnMode = LearnMode(s)
		}
	}
}

// OptStoreWordsPerFile sets the default export shard size.
func OptStoreWordsPerFile(i int) Option {
	return func(c *Config) {
		if isValidInt("Store Words Per File", i) {
			c.Store.WordsPerFile = i
		}
	}
}

// OptPostgresHost sets the PostgreSQL server hostname or IP address.
func OptPostgresHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Postgres Host", s) {
			c.Postgres.Host = s
		}
	}
}

// OptPostgresPort sets the PostgreSQL server port number.
func OptPostgresPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Postgres Port", i) {
			c.Postgres.Port = i
		}
	}
}

// OptPostgresUser sets the PostgreSQL database username.
func OptPostgresUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Postgres User", s) {
			c.Postgres.User = s
		}
	}
}

// OptPostgresPassword sets the PostgreSQL database password.
func OptPostgresPassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Postgres Password", s) {
			c.Postgres.Password = s
		}
	}
}

// OptPostgresDatabase sets the PostgreSQL database name to connect to.
func OptPostgresDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Postgres Database", s) {
			c.Postgres.Database = s
		}
	}
}

// OptPostgresSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptPostgresSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Postgres.SSLMode", s) {
			c.Postgres.SSLMode = s
		}
	}
}

// OptPostgresBatchSize sets the number of rows per batch for bulk
// import/export operations against the Postgres backend.
func OptPostgresBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Postgres Batch Size", i) {
			c.Postgres.BatchSize = i
		}
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
// Valid values: "json", "text", "tint".
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

// OptJobsNumber sets the number of concurrent worker handles a batch
// caller may run.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
