// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, _, err := parseFlags(nil, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Consumers)
	assert.Equal(t, 1, cfg.Producers)
	assert.Equal(t, defaultCapacity, cfg.Capacity)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Zero(t, cfg.StatsInterval)
	assert.NoError(t, validateFlags(cfg))
}

func TestParseFlagsShortAndLong(t *testing.T) {
	cfg, _, err := parseFlags([]string{"-c", "4", "-p", "2", "--capacity", "3"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Consumers)
	assert.Equal(t, 2, cfg.Producers)
	assert.Equal(t, 3, cfg.Capacity)

	cfg, _, err = parseFlags([]string{
		"--consumers=5", "--producers=6",
		"--log-level=debug", "--log-format=json",
		"--metrics-addr=:9090", "--stats-interval=2s",
	}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Consumers)
	assert.Equal(t, 6, cfg.Producers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, 2*time.Second, cfg.StatsInterval)
}

func TestParseFlagsEnvironment(t *testing.T) {
	t.Setenv("BOUNDED_CONSUMERS", "3")
	t.Setenv("BOUNDED_PRODUCERS", "7")
	t.Setenv("BOUNDED_CAPACITY", "8")
	t.Setenv("BOUNDED_STATS_INTERVAL", "500ms")

	cfg, _, err := parseFlags(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Consumers)
	assert.Equal(t, 7, cfg.Producers)
	assert.Equal(t, 8, cfg.Capacity)
	assert.Equal(t, 500*time.Millisecond, cfg.StatsInterval)

	// Flags win over environment
	cfg, _, err = parseFlags([]string{"-p", "1"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Producers)
}

func TestParseFlagsErrors(t *testing.T) {
	_, _, err := parseFlags([]string{"-c", "many"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, _, err = parseFlags([]string{"extra"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unexpected argument")
}

func TestValidateFlags(t *testing.T) {
	valid := func() *CLIConfig {
		return &CLIConfig{Consumers: 1, Producers: 1, Capacity: 12, LogLevel: "info", LogFormat: "text"}
	}

	tests := []struct {
		name    string
		mutate  func(*CLIConfig)
		wantErr string
	}{
		{"valid", func(*CLIConfig) {}, ""},
		{"zero consumers", func(c *CLIConfig) { c.Consumers = 0 }, "number of consumers must be > 0"},
		{"negative producers", func(c *CLIConfig) { c.Producers = -2 }, "number of producers must be > 0"},
		{"zero capacity", func(c *CLIConfig) { c.Capacity = 0 }, "capacity must be > 0"},
		{"bad level", func(c *CLIConfig) { c.LogLevel = "trace" }, "invalid log level"},
		{"bad format", func(c *CLIConfig) { c.LogFormat = "xml" }, "invalid log format"},
		{"negative interval", func(c *CLIConfig) { c.StatsInterval = -time.Second }, "invalid stats interval"},
		{"help skips checks", func(c *CLIConfig) { c.Consumers = 0; c.ShowHelp = true }, ""},
		{"version skips checks", func(c *CLIConfig) { c.Producers = 0; c.ShowVersion = true }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validateFlags(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-h"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Usage: bounded")
	assert.Contains(t, stdout.String(), "-producers")

	stdout.Reset()
	require.NoError(t, run([]string{"--version"}, &stdout, &stderr))
	assert.Equal(t, "bounded "+Version+"\n", stdout.String())
}

func TestRunRejectsInvalidCounts(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-c", "0"}, &stdout, &stderr)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "consumers"))

	err = run([]string{"-p", "0"}, &stdout, &stderr)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "producers"))
}
