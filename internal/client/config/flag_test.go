package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-d", "x.db", "-u", "http://a, http://b", "-t", "7", "-l", "debug", "-b", "zap", "-f", "-", "-o", "otel:4318", "-p"},
			expected: &Config{
				DatabaseDSN:    "x.db",
				CharacterURLs:  []string{"http://a", "http://b"},
				RequestTimeout: 7 * time.Second,
				LogLevel:       "debug",
				LogBackend:     "zap",
				LogFile:        "-",
				OTLPEndpoint:   "otel:4318",
				Plain:          true,
			},
		},
		{
			name: "unset flags keep values",
			args: []string{"cmd", "-l", "warn", "-unrelated", "1"},
			expected: &Config{
				DatabaseDSN:    "keep.db",
				CharacterURLs:  []string{"http://keep"},
				RequestTimeout: 1500 * time.Millisecond,
				LogLevel:       "warn",
			},
		},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{
				DatabaseDSN:    "keep.db",
				CharacterURLs:  []string{"http://keep"},
				RequestTimeout: 1500 * time.Millisecond,
			}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestSplitURLs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitURLs(" a ,, b ,"))
	assert.Nil(t, splitURLs(""))
}
