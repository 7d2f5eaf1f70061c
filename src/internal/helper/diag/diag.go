// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diag

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// EnvKey selects the execution mode. When it is set to "test" or "unittest"
// the pipeline runs in quiet mode, see [Quiet].
const EnvKey = "MULTILOG_ENV"

// Source is attached to every diagnostic so operators can tell pipeline
// failures apart from application records.
const Source = "multilog"

// Reporter receives diagnostics about the logging pipeline.
//
// Arguments after msg are slog-style key/value pairs:
//
//	r.Error("write failed", "path", path, "error", err)
type Reporter interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
}

// SlogReporter implements Reporter on top of [slog.Logger].
type SlogReporter struct {
	logger *slog.Logger
}

// New creates a Reporter writing text records to w.
// A nil writer is replaced by [os.Stderr].
func New(w io.Writer) *SlogReporter {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn})
	return NewSlogReporter(slog.New(handler))
}

// NewSlogReporter wraps an existing slog.Logger.
// When logger is nil, [slog.Default] is used.
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogReporter{logger: logger.With("source", Source, "pid", os.Getpid())}
}

// Error reports a pipeline failure.
func (s *SlogReporter) Error(msg string, args ...any) { s.logger.Error(msg, args...) }

// Warn reports a degraded but recovered pipeline.
func (s *SlogReporter) Warn(msg string, args ...any) { s.logger.Warn(msg, args...) }

// NopReporter discards every diagnostic.
type NopReporter struct{}

// Nop returns a Reporter that ignores all diagnostics.
func Nop() Reporter { return NopReporter{} }

// Error does nothing.
func (NopReporter) Error(string, ...any) {}

// Warn does nothing.
func (NopReporter) Warn(string, ...any) {}

var (
	defaultOnce     sync.Once
	defaultReporter Reporter
)

// Default returns the process-wide Reporter writing to stderr.
func Default() Reporter {
	defaultOnce.Do(func() {
		defaultReporter = New(os.Stderr)
	})
	return defaultReporter
}

// Quiet reports whether the process runs in quiet (test) mode.
// It reads [EnvKey] each time it is called; callers capture the value at
// construction time.
func Quiet() bool {
	return QuietEnv(os.Getenv(EnvKey))
}

// QuietEnv reports whether env names a quiet execution mode.
func QuietEnv(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test", "unittest":
		return true
	default:
		return false
	}
}
