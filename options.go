// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounded

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Options configures buffer creation.
type Options struct {
	capacity    int
	onViolation ViolationHandler
	metrics     *bufferMetrics
	logger      *slog.Logger
}

// Builder creates buffers with fluent configuration.
//
// Example:
//
//	// Default buffer: violations abort the process
//	b := bounded.New(12).Build()
//
//	// Export Prometheus metrics and log violations
//	b := bounded.New(12).
//	    Metrics(prometheus.DefaultRegisterer, "pipeline").
//	    Logger(slog.Default()).
//	    Build()
type Builder struct {
	opts Options

	reg  prometheus.Registerer
	name string
}

// New creates a buffer builder with the given capacity.
//
// Capacity is used as given; 1 is valid and fully serializes transfers.
//
// Panics if capacity < 1.
func New(capacity int) *Builder {
	if capacity < 1 {
		panic("bounded: capacity must be >= 1")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// OnViolation sets the handler for sequence integrity violations.
// The default, Abort, panics.
func (b *Builder) OnViolation(h ViolationHandler) *Builder {
	b.opts.onViolation = h
	return b
}

// Metrics exports the buffer's Prometheus collectors to reg, labelled
// buffer=name. A nil reg disables metrics. The last call wins; nothing is
// registered until Build.
func (b *Builder) Metrics(reg prometheus.Registerer, name string) *Builder {
	b.reg = reg
	b.name = name
	return b
}

// Logger sets the logger used for construction and violation records.
// The default discards everything.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.opts.logger = l
	return b
}

// Build creates the Buffer and registers its collectors, if any.
//
// Panics if registration fails, as [prometheus.Registerer.MustRegister] does.
func (b *Builder) Build() *Buffer {
	o := b.opts
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if b.reg != nil {
		o.metrics = newBufferMetrics(b.reg, b.name)
	}
	return newBuffer(o)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte
