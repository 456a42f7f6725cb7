package config

import "time"

// DefaultCharacterURLs is the fixed set of character resources the client
// caches: Jon Snow, Daenerys Targaryen, Arya Stark and Tyrion Lannister.
var DefaultCharacterURLs = []string{
	"https://anapioficeandfire.com/api/characters/583",
	"https://anapioficeandfire.com/api/characters/1303",
	"https://anapioficeandfire.com/api/characters/148",
	"https://anapioficeandfire.com/api/characters/1052",
}

// Config holds runtime settings for the character client.
//
// Fields:
//   - DatabaseDSN: SQLite DSN (file path or "file:...?mode=memory").
//   - CharacterURLs: resources fetched on every start, in display order.
//   - RequestTimeout: per-request HTTP timeout; 0 leaves the transport default.
//   - LogLevel / LogBackend / LogFile: see package logging; LogFile "-" is stderr.
//   - OTLPEndpoint: host:port of an OTLP/HTTP collector; empty disables tracing.
//   - Plain: render once as plain text instead of the interactive screen.
type Config struct {
	DatabaseDSN    string        `env:"DATABASE_DSN"`
	CharacterURLs  []string      `env:"CHARACTER_URLS" envSeparator:","`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	LogLevel       string        `env:"LOG_LEVEL"`
	LogBackend     string        `env:"LOG_BACKEND"`
	LogFile        string        `env:"LOG_FILE"`
	OTLPEndpoint   string        `env:"OTLP_ENDPOINT"`
	Plain          bool          `env:"PLAIN"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "characters.db"
	c.CharacterURLs = append([]string(nil), DefaultCharacterURLs...)
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.LogFile = "client.log"
	c.OTLPEndpoint = ""
	c.Plain = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
