// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package transport

import (
	"fmt"
	"io"
	"sync"

	"github.com/H0llyW00dzZ/multilog/src/format"
	"github.com/H0llyW00dzZ/multilog/src/level"
	"github.com/H0llyW00dzZ/multilog/src/metrics"
)

// File is a transport appending to a file.
//
// The stream is opened by [NewFile]. When a write fails the stream is
// discarded and reopened in place, and the failure is reported to the
// diagnostic side channel; the record that triggered it may be lost.
// When the reopen fails too, the next write tries again.
// After [File.Close] records are dropped instead of written.
//
// File is safe for concurrent use by multiple goroutines.
type File struct {
	base

	path string

	// mu guards stream and closed, and serializes writes.
	mu     sync.Mutex
	stream io.WriteCloser
	// closed is set by Close and cleared by a successful Reload.
	closed bool
}

// NewFile creates a File transport for path and opens its stream.
// The default level is INFO.
//
// It returns [ErrFileRequired] when path is empty, and the open error when
// the stream cannot be created.
func NewFile(path string, opts ...Option) (*File, error) {
	f := &File{}
	if err := f.setup(KindFile, path, opts); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) setup(kind, path string, opts []Option) error {
	if path == "" {
		return ErrFileRequired
	}

	f.init(kind, level.INFO, opts)
	f.path = path

	if err := f.Reload(); err != nil {
		return fmt.Errorf("failed to open log file %q: %w", path, err)
	}
	return nil
}

// Path returns the file path.
func (f *File) Path() string { return f.path }

// Sink implements Transport.
func (f *File) Sink() string { return f.path }

// Log implements Transport.
func (f *File) Log(l level.Level, args []any, meta *format.Meta) {
	buf := f.Format(l, args, meta)
	if len(buf) == 0 {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.writeLocked(1, func(w io.Writer) (int64, error) {
		n, err := w.Write(buf)
		return int64(n), err
	})
}

// Reload closes the current stream, if any, and opens a new one.
func (f *File) Reload() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.reloadLocked()
}

func (f *File) reloadLocked() error {
	if f.stream != nil {
		// The old stream is being replaced; its close error has nowhere useful to go.
		_ = f.stream.Close()
		f.stream = nil
	}

	stream, err := f.cfg.opener(f.path)
	f.cfg.collector.Reloaded(f.kind, f.path, err)
	if err != nil {
		return err
	}

	f.stream = stream
	f.closed = false
	return nil
}

// Close closes the stream. Calling it again does nothing.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.closeLocked()
}

func (f *File) closeLocked() error {
	f.closed = true
	if f.stream == nil {
		return nil
	}

	err := f.stream.Close()
	f.stream = nil
	return err
}

// writeLocked hands one payload of entries records to the stream through
// write. A missing stream drops the payload; a write error triggers the
// self-healing reload. A stream lost by a failed reload is reopened first.
func (f *File) writeLocked(entries int, write func(w io.Writer) (int64, error)) {
	if f.stream == nil && !f.closed {
		if err := f.reloadLocked(); err != nil {
			for range entries {
				f.cfg.collector.Dropped(f.kind, f.path, metrics.ReasonWriteError)
			}
			f.cfg.reporter.Error("log stream reload failed, record dropped",
				"path", f.path,
				"entries", entries,
				"error", err,
			)
			return
		}
		f.cfg.reporter.Warn("log stream reloaded", "path", f.path)
	}

	if f.stream == nil {
		for range entries {
			f.cfg.collector.Dropped(f.kind, f.path, metrics.ReasonClosed)
		}
		if !f.cfg.quiet {
			f.cfg.reporter.Error("log stream is not writable, record dropped",
				"path", f.path,
				"entries", entries,
			)
		}
		return
	}

	n, err := write(f.stream)
	if err != nil {
		f.healLocked(entries, err)
		return
	}

	f.cfg.collector.Written(f.kind, f.path, int(n))
}

// healLocked reports a stream failure and reopens the stream.
func (f *File) healLocked(entries int, cause error) {
	for range entries {
		f.cfg.collector.Dropped(f.kind, f.path, metrics.ReasonWriteError)
	}

	proc := f.cfg.process
	f.cfg.reporter.Error("log stream write failed",
		"pid", proc.PID,
		"hostname", proc.Hostname,
		"path", f.path,
		"error", cause,
	)

	if err := f.reloadLocked(); err != nil {
		f.cfg.reporter.Error("log stream reload failed",
			"path", f.path,
			"error", err,
		)
		return
	}

	f.cfg.reporter.Warn("log stream reloaded", "path", f.path)
}
