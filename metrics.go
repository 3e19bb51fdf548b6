// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounded

import "github.com/prometheus/client_golang/prometheus"

// bufferMetrics holds the Prometheus collectors of one buffer.
// A nil *bufferMetrics records nothing.
type bufferMetrics struct {
	produced   prometheus.Counter
	consumed   prometheus.Counter
	violations prometheus.Counter
	filled     prometheus.Gauge
}

func newBufferMetrics(reg prometheus.Registerer, name string) *bufferMetrics {
	labels := prometheus.Labels{"buffer": name}
	m := &bufferMetrics{
		produced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "bounded",
			Name:        "produced_total",
			Help:        "Total number of items published into the buffer.",
			ConstLabels: labels,
		}),
		consumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "bounded",
			Name:        "consumed_total",
			Help:        "Total number of items drained from the buffer.",
			ConstLabels: labels,
		}),
		violations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "bounded",
			Name:        "integrity_violations_total",
			Help:        "Total number of items consumed out of issue order.",
			ConstLabels: labels,
		}),
		filled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "bounded",
			Name:        "filled_slots",
			Help:        "Number of published slots not yet drained.",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(m.produced, m.consumed, m.violations, m.filled)
	return m
}

func (m *bufferMetrics) recordProduce() {
	if m == nil {
		return
	}
	m.produced.Inc()
	m.filled.Inc()
}

func (m *bufferMetrics) recordConsume() {
	if m == nil {
		return
	}
	m.consumed.Inc()
	m.filled.Dec()
}

func (m *bufferMetrics) recordViolation() {
	if m == nil {
		return
	}
	m.violations.Inc()
}
