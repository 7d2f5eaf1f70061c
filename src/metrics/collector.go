// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package metrics counts what happens inside the transport pipeline:
// bytes written, records dropped, buffer flushes and stream reloads.
//
// Transports report through the [Collector] interface. [NewPrometheus]
// backs it with Prometheus counters on a private registry, while [Nop] is
// the default when no metrics are wanted.
package metrics

// Drop reasons reported to [Collector.Dropped].
const (
	ReasonClosed     = "closed"
	ReasonWriteError = "write_error"
)

// Collector receives transport pipeline events.
//
// kind names the transport type ("file", "buffered_file", "console") and
// sink identifies the destination, typically the file path.
//
// Implementations must be safe for concurrent use.
type Collector interface {
	// Written records one successful write of n bytes to the sink.
	Written(kind, sink string, n int)
	// Dropped records a record that never reached the sink.
	Dropped(kind, sink, reason string)
	// Flushed records a buffered flush of the given number of entries.
	Flushed(kind, sink string, entries int)
	// Reloaded records a stream reload; err is nil on success.
	Reloaded(kind, sink string, err error)
}

// NopCollector ignores every event.
type NopCollector struct{}

// Nop returns a Collector that does nothing.
func Nop() Collector { return NopCollector{} }

// Written does nothing.
func (NopCollector) Written(string, string, int) {}

// Dropped does nothing.
func (NopCollector) Dropped(string, string, string) {}

// Flushed does nothing.
func (NopCollector) Flushed(string, string, int) {}

// Reloaded does nothing.
func (NopCollector) Reloaded(string, string, error) {}
