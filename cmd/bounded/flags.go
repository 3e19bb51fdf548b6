// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"
)

// CLIConfig holds command-line configuration.
type CLIConfig struct {
	Consumers     int
	Producers     int
	Capacity      int
	LogLevel      string
	LogFormat     string
	MetricsAddr   string
	StatsInterval time.Duration
	ShowVersion   bool
	ShowHelp      bool
}

func parseFlags(args []string, output io.Writer) (*CLIConfig, *flag.FlagSet, error) {
	cfg := &CLIConfig{}
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.IntVar(&cfg.Consumers, "c", getEnvInt("BOUNDED_CONSUMERS", 1),
		"Number of consumer goroutines (env: BOUNDED_CONSUMERS)")
	fs.IntVar(&cfg.Consumers, "consumers", getEnvInt("BOUNDED_CONSUMERS", 1),
		"Number of consumer goroutines (env: BOUNDED_CONSUMERS)")

	fs.IntVar(&cfg.Producers, "p", getEnvInt("BOUNDED_PRODUCERS", 1),
		"Number of producer goroutines (env: BOUNDED_PRODUCERS)")
	fs.IntVar(&cfg.Producers, "producers", getEnvInt("BOUNDED_PRODUCERS", 1),
		"Number of producer goroutines (env: BOUNDED_PRODUCERS)")

	fs.IntVar(&cfg.Capacity, "capacity", getEnvInt("BOUNDED_CAPACITY", defaultCapacity),
		"Buffer capacity in slots (env: BOUNDED_CAPACITY)")

	fs.StringVar(&cfg.LogLevel, "log-level", getEnv("BOUNDED_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: BOUNDED_LOG_LEVEL)")
	fs.StringVar(&cfg.LogFormat, "log-format", getEnv("BOUNDED_LOG_FORMAT", "text"),
		"Log format: json, text (env: BOUNDED_LOG_FORMAT)")

	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", getEnv("BOUNDED_METRICS_ADDR", ""),
		"Prometheus listen address, empty to disable (env: BOUNDED_METRICS_ADDR)")
	fs.DurationVar(&cfg.StatsInterval, "stats-interval",
		getEnvDuration("BOUNDED_STATS_INTERVAL", 0),
		"Interval between progress records, 0 to disable (env: BOUNDED_STATS_INTERVAL)")

	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	fs.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	fs.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")

	fs.Usage = func() { printUsage(fs, output) }

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if fs.NArg() > 0 {
		return nil, fs, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	return cfg, fs, nil
}

func validateFlags(cfg *CLIConfig) error {
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if cfg.Consumers <= 0 {
		return fmt.Errorf("number of consumers must be > 0")
	}
	if cfg.Producers <= 0 {
		return fmt.Errorf("number of producers must be > 0")
	}
	if cfg.Capacity <= 0 {
		return fmt.Errorf("capacity must be > 0")
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	if !slices.Contains([]string{"json", "text"}, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}
	if cfg.StatsInterval < 0 {
		return fmt.Errorf("invalid stats interval: %s", cfg.StatsInterval)
	}

	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	_, _ = fmt.Fprintf(w, `%s - bounded producer/consumer transfer with sequence checking

Usage: %s [-c consumers] [-p producers] [options]

Options:
`, appName, appName)
	fs.SetOutput(w)
	fs.PrintDefaults()
	_, _ = fmt.Fprintf(w, `
Producers and consumers run until the process is interrupted. A consumed
item that arrives out of issue order aborts the process.

Examples:
  # One producer, four consumers, 12 slots
  %s -p 1 -c 4

  # Several producers; expect the integrity check to fire eventually
  %s -p 4 -c 4 --capacity 2

  # Export metrics and log progress every second
  %s --metrics-addr :9090 --stats-interval 1s

Version: %s
`, appName, appName, appName, Version)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
