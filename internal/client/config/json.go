package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/iceandfire/internal/flagx"
	"github.com/dmitrijs2005/iceandfire/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// nil-able fields tell "absent" apart from an explicit zero value.
type JsonConfig struct {
	DatabaseDSN    string          `json:"database_dsn"`
	CharacterURLs  []string        `json:"character_urls"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       string          `json:"log_level"`
	LogBackend     string          `json:"log_backend"`
	LogFile        string          `json:"log_file"`
	OTLPEndpoint   string          `json:"otlp_endpoint"`
	Plain          *bool           `json:"plain"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Fields missing from the file keep their current value. Read or decode
// errors panic; the caller decides whether to recover.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.applyTo(cfg)
}

func (jc *JsonConfig) applyTo(cfg *Config) {
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if len(jc.CharacterURLs) > 0 {
		cfg.CharacterURLs = jc.CharacterURLs
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
	if jc.OTLPEndpoint != "" {
		cfg.OTLPEndpoint = jc.OTLPEndpoint
	}
	if jc.Plain != nil {
		cfg.Plain = *jc.Plain
	}
}
