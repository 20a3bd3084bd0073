package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    func() *Config
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://127.0.0.1:9090", "-d", "/tmp/am", "-r=false", "-t", "4", "-i", "10", "-p", "bcrypt", "-l", "debug"},
			expected: func() *Config {
				c := defaults()
				c.DirectoryURL = "http://127.0.0.1:9090"
				c.DataDir = "/tmp/am"
				c.AllowRepurchase = false
				c.RequestTimeout = 4 * time.Second
				c.OnlineCheckInterval = 10 * time.Second
				c.PasswordScheme = "bcrypt"
				c.LogLevel = "debug"
				return c
			},
		},
		{
			name:     "unknown flags ignored",
			args:     []string{"-x", "1", "-c", "cfg.json"},
			expected: defaults,
		},
		{
			name:        "incorrect check interval",
			args:        []string{"-i", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected(), cfg))
		})
	}
}
