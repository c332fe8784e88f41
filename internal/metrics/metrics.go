// Package metrics collects per-run Prometheus metrics for natcalc commands
// and exposes them over HTTP or as a node-exporter text file.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "natcalc"

// Metrics owns a private registry so that concurrent instances, as in
// tests, never collide on registration.
type Metrics struct {
	registry     *prometheus.Registry
	operations   *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	operandBits  *prometheus.HistogramVec
	valuesTested prometheus.Counter
	primesFound  prometheus.Counter
	handler      http.Handler
}

// New returns Metrics with the Go runtime collector and the natcalc
// collectors registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	mem := NewMemoryCollector()
	m := &Metrics{
		registry: reg,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Commands executed, by command and status.",
		}, []string{"command", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Command execution time.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"command"}),
		operandBits: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operand_bits",
			Help:      "Bit length of the largest operand of a command.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 16),
		}, []string{"command"}),
		valuesTested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_values_tested_total",
			Help:      "Values tested by prime range sweeps.",
		}),
		primesFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_primes_found_total",
			Help:      "Primes found by prime range sweeps.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		m.operations, m.duration, m.operandBits, m.valuesTested, m.primesFound,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "heap_alloc_bytes",
			Help:      "Heap bytes in use at collection time.",
		}, func() float64 { return float64(mem.Snapshot().HeapAlloc) }),
	)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

// ObserveOperation records one command execution.
func (m *Metrics) ObserveOperation(command string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.operations.WithLabelValues(command, status).Inc()
	m.duration.WithLabelValues(command).Observe(d.Seconds())
}

// ObserveOperandBits records the operand size of a command.
func (m *Metrics) ObserveOperandBits(command string, bits int) {
	m.operandBits.WithLabelValues(command).Observe(float64(bits))
}

// AddSweep records the totals of a prime range sweep.
func (m *Metrics) AddSweep(tested, primes uint64) {
	m.valuesTested.Add(float64(tested))
	m.primesFound.Add(float64(primes))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler { return m.handler }

// WriteToTextfile writes the registry to path for the node exporter's
// textfile collector.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
