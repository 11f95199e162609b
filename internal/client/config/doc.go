// Package config loads runtime configuration for the workforce CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. WORKFORCE_API_URL and WORKFORCE_LOG_LEVEL from the environment, or
//     from a .env file in the working directory (see parseEnv).
//  3. Optional JSON file selected via -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL, e.g. http://localhost:5000
//	-t int      request timeout (seconds)
//	-d string   session database path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:5000",
//	  "request_timeout": "10s",
//	  "database_path": "workforce.db",
//	  "log_level": "info",
//	  "log_format": "console"
//	}
package config
