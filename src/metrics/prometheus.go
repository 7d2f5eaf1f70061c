// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package metrics

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "multilog"

// PrometheusCollector implements Collector with Prometheus counters.
type PrometheusCollector struct {
	registry *prometheus.Registry

	writes  *prometheus.CounterVec
	bytes   *prometheus.CounterVec
	dropped *prometheus.CounterVec
	flushes *prometheus.CounterVec
	flushed *prometheus.CounterVec
	reloads *prometheus.CounterVec
}

// NewPrometheus creates a PrometheusCollector with its own registry.
// An empty namespace falls back to [DefaultNamespace].
//
// Registered metrics:
//   - <ns>_transport_writes_total{kind,sink}
//   - <ns>_transport_written_bytes_total{kind,sink}
//   - <ns>_transport_dropped_total{kind,sink,reason}
//   - <ns>_transport_flushes_total{kind,sink}
//   - <ns>_transport_flushed_entries_total{kind,sink}
//   - <ns>_transport_reloads_total{kind,sink,result}
func NewPrometheus(namespace string) (*PrometheusCollector, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	newVec := func(name, help string, labels ...string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transport",
			Name:      name,
			Help:      help,
		}, labels)
	}

	c := &PrometheusCollector{
		registry: prometheus.NewRegistry(),
		writes:   newVec("writes_total", "Number of writes handed to the sink.", "kind", "sink"),
		bytes:    newVec("written_bytes_total", "Number of bytes handed to the sink.", "kind", "sink"),
		dropped:  newVec("dropped_total", "Number of records that never reached the sink.", "kind", "sink", "reason"),
		flushes:  newVec("flushes_total", "Number of buffered flushes.", "kind", "sink"),
		flushed:  newVec("flushed_entries_total", "Number of buffered entries flushed.", "kind", "sink"),
		reloads:  newVec("reloads_total", "Number of stream reloads by result.", "kind", "sink", "result"),
	}

	for _, col := range []prometheus.Collector{c.writes, c.bytes, c.dropped, c.flushes, c.flushed, c.reloads} {
		if err := c.registry.Register(col); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}

	return c, nil
}

// Registry returns the registry holding the collector's metrics.
func (c *PrometheusCollector) Registry() *prometheus.Registry { return c.registry }

// Written implements Collector.
func (c *PrometheusCollector) Written(kind, sink string, n int) {
	c.writes.WithLabelValues(kind, sink).Inc()
	c.bytes.WithLabelValues(kind, sink).Add(float64(n))
}

// Dropped implements Collector.
func (c *PrometheusCollector) Dropped(kind, sink, reason string) {
	c.dropped.WithLabelValues(kind, sink, reason).Inc()
}

// Flushed implements Collector.
func (c *PrometheusCollector) Flushed(kind, sink string, entries int) {
	c.flushes.WithLabelValues(kind, sink).Inc()
	c.flushed.WithLabelValues(kind, sink).Add(float64(entries))
}

// Reloaded implements Collector.
func (c *PrometheusCollector) Reloaded(kind, sink string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	c.reloads.WithLabelValues(kind, sink, result).Inc()
}

// Sample is one counter series read back from the registry.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Snapshot gathers every series, sorted by metric name then labels.
func (c *PrometheusCollector) Snapshot() ([]Sample, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			pairs := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, lp.GetName()+"="+lp.GetValue())
			}
			out = append(out, Sample{
				Name:   mf.GetName(),
				Labels: strings.Join(pairs, ","),
				Value:  m.GetCounter().GetValue(),
			})
		}
	}
	return out, nil
}
