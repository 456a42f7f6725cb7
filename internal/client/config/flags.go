package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/iceandfire/internal/flagx"
)

var knownFlags = []string{"-d", "-u", "-t", "-l", "-b", "-f", "-o", "-p"}

// parseFlags populates Config fields from command-line flags (see the
// package documentation for the list). os.Args is filtered with
// flagx.FilterArgs first so flags owned by other parsers are ignored.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite database DSN")
	urls := fs.String("u", strings.Join(cfg.CharacterURLs, ","), "comma-separated character URLs")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "per-request timeout (in seconds, 0 = none)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend (slog|zap)")
	fs.StringVar(&cfg.LogFile, "f", cfg.LogFile, "log file, - for stderr")
	fs.StringVar(&cfg.OTLPEndpoint, "o", cfg.OTLPEndpoint, "OTLP/HTTP endpoint for traces")
	fs.BoolVar(&cfg.Plain, "p", cfg.Plain, "print plain text instead of the interactive screen")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -u and -t go through conversions, so only explicitly set flags are applied.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "u":
			cfg.CharacterURLs = splitURLs(*urls)
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}

func splitURLs(s string) []string {
	var out []string
	for _, u := range strings.Split(s, ",") {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}
