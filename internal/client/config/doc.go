// Package config loads runtime configuration for the character client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with CHARS_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   SQLite database DSN
//	-u string   comma-separated character URLs
//	-t int      per-request timeout (seconds, 0 = none)
//	-l string   log level
//	-b string   log backend (slog|zap)
//	-f string   log file ("-" for stderr)
//	-o string   OTLP/HTTP endpoint
//	-p          plain output
//
// # JSON schema
//
//	{
//	  "database_dsn": "characters.db",
//	  "character_urls": ["https://anapioficeandfire.com/api/characters/583"],
//	  "request_timeout": "10s",
//	  "log_level": "debug",
//	  "log_backend": "zap",
//	  "log_file": "-",
//	  "otlp_endpoint": "localhost:4318",
//	  "plain": true
//	}
//
// Environment variables use the same names upper-cased with the CHARS_
// prefix, e.g. CHARS_DATABASE_DSN or CHARS_CHARACTER_URLS (comma-separated).
package config
