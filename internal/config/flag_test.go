package config

import (
	"os"
	"testing"

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
			args: []string{"cmd", "-f", "atom", "-l", "debug", "-b", "zap", "-i", "0", "-q", "1024"},
			expected: &Config{
				Format:       "atom",
				LogLevel:     "debug",
				LogBackend:   "zap",
				Indent:       0,
				DefaultQuota: 1024,
			},
		},
		{
			name: "subcommand flags are ignored",
			args: []string{"cmd", "new-user", "-first", "Jane", "-quota", "5", "-f=atom"},
			expected: &Config{
				Format:       "atom",
				LogLevel:     "info",
				LogBackend:   "slog",
				Indent:       2,
				DefaultQuota: 0,
			},
		},
		{
			name:        "non-numeric indent panics",
			args:        []string{"cmd", "-i", "wide"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			config.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}
