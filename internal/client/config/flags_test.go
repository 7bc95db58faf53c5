package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"-a", "http://api:9000", "-s", "postgres", "-d", "postgres://db/craft", "-l", "debug"},
			expected: &Config{APIBaseURL: "http://api:9000", StoreBackend: "postgres", StoreDSN: "postgres://db/craft", LogLevel: "debug"}},
		{name: "foreign flags ignored", args: []string{"-c", "cfg.json", "-a", "http://api:9000", "-x"},
			expected: &Config{APIBaseURL: "http://api:9000"}},
		{name: "missing value", args: []string{"-s"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
