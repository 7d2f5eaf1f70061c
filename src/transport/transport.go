// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package transport

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/H0llyW00dzZ/multilog/src/format"
	"github.com/H0llyW00dzZ/multilog/src/level"
	"github.com/H0llyW00dzZ/multilog/src/metrics"
)

// Transport kinds reported by [Transport.Kind].
const (
	KindWriter       = "writer"
	KindFile         = "file"
	KindBufferedFile = "buffered_file"
	KindConsole      = "console"
)

// Transport is a single output channel.
//
// Log formats the record and writes it without checking the threshold;
// callers gate it with ShouldLog. Log never returns an error: write failures
// go to the diagnostic side channel.
//
// Close must be safe to call more than once.
type Transport interface {
	Enabled() bool
	Enable()
	Disable()
	Level() level.Level
	SetLevel(l level.Level)
	ShouldLog(l level.Level) bool
	Log(l level.Level, args []any, meta *format.Meta)
	Reload() error
	Close() error

	// Kind names the transport type, see the Kind constants.
	Kind() string
	// Sink describes the destination, such as a file path.
	Sink() string
}

// base carries the state shared by every transport.
type base struct {
	kind    string
	enabled atomic.Bool
	lvl     atomic.Int64
	cfg     config
}

func (b *base) init(kind string, defaultLevel level.Level, opts []Option) {
	b.kind = kind
	b.cfg = newConfig(defaultLevel, opts)
	b.enabled.Store(true)
	b.lvl.Store(int64(b.cfg.level))
}

// Enabled reports whether the transport accepts records.
func (b *base) Enabled() bool { return b.enabled.Load() }

// Enable turns the transport on.
func (b *base) Enable() { b.enabled.Store(true) }

// Disable turns the transport off.
func (b *base) Disable() { b.enabled.Store(false) }

// Level returns the severity threshold.
func (b *base) Level() level.Level { return level.Level(b.lvl.Load()) }

// SetLevel changes the severity threshold.
func (b *base) SetLevel(l level.Level) { b.lvl.Store(int64(l)) }

// ShouldLog reports whether a record at l passes this transport.
func (b *base) ShouldLog(l level.Level) bool {
	return b.Enabled() && b.Level().Allows(l)
}

// Format renders a record with the transport's formatting options.
// It returns nil when there is nothing to write.
func (b *base) Format(l level.Level, args []any, meta *format.Meta) []byte {
	return format.Format(l, args, meta, b.cfg.formatOptions())
}

// Encoding returns the normalized output encoding.
func (b *base) Encoding() string { return b.cfg.encoding }

// Kind implements Transport.
func (b *base) Kind() string { return b.kind }

// Reload does nothing for transports without a stream.
func (b *base) Reload() error { return nil }

// Close does nothing for transports without a stream.
func (b *base) Close() error { return nil }

// Writer is a transport writing to an [io.Writer] it does not own.
// Its default level is NONE.
type Writer struct {
	base

	mu sync.Mutex
	w  io.Writer
}

// NewWriter creates a Writer transport. A nil writer discards output.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	if w == nil {
		w = io.Discard
	}
	t := &Writer{w: w}
	t.init(KindWriter, level.NONE, opts)
	return t
}

// Log implements Transport.
func (t *Writer) Log(l level.Level, args []any, meta *format.Meta) {
	buf := t.Format(l, args, meta)
	if len(buf) == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	n, err := t.w.Write(buf)
	if err != nil {
		t.cfg.collector.Dropped(t.kind, t.Sink(), metrics.ReasonWriteError)
		t.cfg.reporter.Error("log writer failed", "kind", t.kind, "error", err)
		return
	}
	t.cfg.collector.Written(t.kind, t.Sink(), n)
}

// Sink implements Transport.
func (t *Writer) Sink() string { return "writer" }
