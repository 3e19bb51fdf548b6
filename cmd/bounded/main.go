// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command bounded runs producer and consumer goroutines against one
// bounded buffer until it is interrupted.
//
// Every consumed item is checked against the global issue order. A
// mismatch panics and terminates the process.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"code.hybscloud.com/bounded"
)

const (
	Version         = "0.1.0"
	appName         = "bounded"
	defaultCapacity = 12
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if cfg.ShowHelp {
		printUsage(fs, stdout)
		return nil
	}
	if cfg.ShowVersion {
		_, _ = fmt.Fprintf(stdout, "%s %s\n", appName, Version)
		return nil
	}
	if err := validateFlags(cfg); err != nil {
		return err
	}

	logger := setupLogger(stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, logger)
}

// serve starts the transfer and blocks until ctx is done. Workers stop
// starting new iterations once ctx is done; the buffer is not drained.
func serve(ctx context.Context, cfg *CLIConfig, logger *slog.Logger) error {
	reg := prometheus.NewRegistry()
	buf := bounded.New(cfg.Capacity).
		Metrics(reg, appName).
		Logger(logger).
		Build()

	if cfg.MetricsAddr != "" {
		shutdown, err := startMetricsServer(cfg.MetricsAddr, reg, logger)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	spawn(ctx, buf, cfg.Consumers, cfg.Producers)
	logger.Info("transfer started",
		"consumers", cfg.Consumers,
		"producers", cfg.Producers,
		"capacity", cfg.Capacity)

	var tick <-chan time.Time
	if cfg.StatsInterval > 0 {
		ticker := time.NewTicker(cfg.StatsInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			logStats(logger, "transfer stopped", buf.Stats())
			return nil
		case <-tick:
			logStats(logger, "transfer progress", buf.Stats())
		}
	}
}

// spawn starts the consumers first, then the producers.
func spawn(ctx context.Context, buf *bounded.Buffer, consumers, producers int) {
	for range consumers {
		go work(ctx, buf.Consume)
	}
	for range producers {
		go work(ctx, buf.Produce)
	}
}

// work repeats step until ctx is done. A step parked in the buffer stays
// parked.
func work(ctx context.Context, step func() uint64) {
	for ctx.Err() == nil {
		step()
	}
}
