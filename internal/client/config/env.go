package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

const (
	EnvAPIURL   = "WORKFORCE_API_URL"
	EnvLogLevel = "WORKFORCE_LOG_LEVEL"
)

var lookupEnv = os.LookupEnv

// parseEnv overlays Config with WORKFORCE_* variables. The process
// environment wins over values from the .env file; a missing file is fine.
func parseEnv(cfg *Config, path string, lookup func(string) (string, bool)) error {
	file, err := godotenv.Read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}

	if v, ok := get(EnvAPIURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := get(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	return nil
}
