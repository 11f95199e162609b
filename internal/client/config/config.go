package config

import (
	"fmt"
	"time"
)

// InMemoryDatabase as DatabasePath keeps the session in memory only.
const InMemoryDatabase = ":memory:"

// Config holds runtime settings for the workforce CLI.
//
// Fields:
//   - APIBaseURL: scheme://host:port of the REST backend.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - DatabasePath: SQLite file holding the persisted session token, or
//     InMemoryDatabase for a session that ends with the process.
//   - LogLevel, LogFormat: zap logger settings ("debug".."error", "console"|"json").
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "workforce.db"
	c.LogLevel = "info"
	c.LogFormat = "console"
}

// Ephemeral reports whether the session must not outlive the process.
func (c *Config) Ephemeral() bool {
	return c.DatabasePath == InMemoryDatabase
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the .env file and environment, a JSON file (if requested) and finally
// command-line flags. Later sources take precedence over earlier ones.
// args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, DotEnvFile, lookupEnv); err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
