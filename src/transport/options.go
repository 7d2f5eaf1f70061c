// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package transport

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/H0llyW00dzZ/multilog/src/format"
	"github.com/H0llyW00dzZ/multilog/src/internal/helper/diag"
	"github.com/H0llyW00dzZ/multilog/src/level"
	"github.com/H0llyW00dzZ/multilog/src/metrics"
)

const (
	// DefaultFlushInterval is how often a [BufferedFile] flushes on its own.
	DefaultFlushInterval = time.Second
	// DefaultMaxBufferLength is the pending entry count above which a
	// [BufferedFile] flushes immediately.
	DefaultMaxBufferLength = 1000
	// LevelEnvKey overrides the primary level of a [Console] at construction.
	LevelEnvKey = "MULTILOG_LEVEL"
)

// Opener opens the stream behind a file transport.
type Opener func(path string) (io.WriteCloser, error)

// OpenAppend creates the parent directories of path and opens it for appending.
func OpenAppend(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

// DefaultEOL returns the line terminator of the current platform.
func DefaultEOL() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Option configures a transport.
type Option func(*config)

type config struct {
	level level.Level

	encoding         string
	eol              string
	json             bool
	dateISO          bool
	formatter        format.Func
	contextFormatter format.Func
	paddingFormatter format.PaddingFunc
	process          *format.Process

	reporter  diag.Reporter
	quiet     bool
	quietSet  bool
	collector metrics.Collector

	opener          Opener
	flushInterval   time.Duration
	maxBufferLength int

	stderrLevel level.Level
	stdout      io.Writer
	stderr      io.Writer
}

func newConfig(defaultLevel level.Level, opts []Option) config {
	c := config{
		level:           defaultLevel,
		encoding:        format.UTF8,
		eol:             DefaultEOL(),
		flushInterval:   DefaultFlushInterval,
		maxBufferLength: DefaultMaxBufferLength,
		stderrLevel:     level.ERROR,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	if !c.quietSet {
		c.quiet = diag.Quiet()
	}
	if c.reporter == nil {
		c.reporter = diag.Default()
	}
	if c.collector == nil {
		c.collector = metrics.Nop()
	}
	if c.opener == nil {
		c.opener = OpenAppend
	}
	if c.process == nil {
		c.process = format.DefaultProcess()
	}
	if c.stdout == nil {
		c.stdout = os.Stdout
	}
	if c.stderr == nil {
		c.stderr = os.Stderr
	}
	if c.flushInterval <= 0 {
		c.flushInterval = DefaultFlushInterval
	}
	if c.maxBufferLength <= 0 {
		c.maxBufferLength = DefaultMaxBufferLength
	}

	return c
}

func (c *config) formatOptions() format.Options {
	return format.Options{
		Encoding:         c.encoding,
		EOL:              c.eol,
		JSON:             c.json,
		DateISOFormat:    c.dateISO,
		Formatter:        c.formatter,
		ContextFormatter: c.contextFormatter,
		PaddingFormatter: c.paddingFormatter,
		Process:          c.process,
	}
}

// WithLevel sets the severity threshold.
func WithLevel(l level.Level) Option {
	return func(c *config) { c.level = l }
}

// WithEncoding sets the output encoding. "utf-8" is normalized to "utf8".
func WithEncoding(encoding string) Option {
	return func(c *config) { c.encoding = format.NormalizeEncoding(encoding) }
}

// WithEOL sets the line terminator. An empty string writes records without one.
func WithEOL(eol string) Option {
	return func(c *config) { c.eol = eol }
}

// WithJSON writes one JSON object per record.
func WithJSON(enabled bool) Option {
	return func(c *config) { c.json = enabled }
}

// WithDateISOFormat renders dates as ISO 8601 in UTC.
func WithDateISOFormat(enabled bool) Option {
	return func(c *config) { c.dateISO = enabled }
}

// WithFormatter sets the line formatter.
func WithFormatter(fn format.Func) Option {
	return func(c *config) { c.formatter = fn }
}

// WithContextFormatter sets the formatter used for records carrying a request context.
func WithContextFormatter(fn format.Func) Option {
	return func(c *config) { c.contextFormatter = fn }
}

// WithPaddingFormatter sets how a request context turns into a padding message.
func WithPaddingFormatter(fn format.PaddingFunc) Option {
	return func(c *config) { c.paddingFormatter = fn }
}

// WithProcess sets the process context stamped on every record.
func WithProcess(p *format.Process) Option {
	return func(c *config) { c.process = p }
}

// WithReporter sets the diagnostic side channel.
func WithReporter(r diag.Reporter) Option {
	return func(c *config) { c.reporter = r }
}

// WithQuiet suppresses the diagnostic for records dropped on a closed stream.
// Without this option the value comes from [diag.Quiet].
func WithQuiet(quiet bool) Option {
	return func(c *config) {
		c.quiet = quiet
		c.quietSet = true
	}
}

// WithCollector sets the metrics collector.
func WithCollector(col metrics.Collector) Option {
	return func(c *config) { c.collector = col }
}

// WithOpener sets the stream factory of file transports.
func WithOpener(o Opener) Option {
	return func(c *config) { c.opener = o }
}

// WithFlushInterval sets the timer period of a [BufferedFile].
func WithFlushInterval(d time.Duration) Option {
	return func(c *config) { c.flushInterval = d }
}

// WithMaxBufferLength sets the pending entry count of a [BufferedFile] above
// which it flushes immediately.
func WithMaxBufferLength(n int) Option {
	return func(c *config) { c.maxBufferLength = n }
}

// WithStderrLevel sets the level from which a [Console] writes to stderr.
func WithStderrLevel(l level.Level) Option {
	return func(c *config) { c.stderrLevel = l }
}

// WithStdout sets the standard output stream of a [Console].
func WithStdout(w io.Writer) Option {
	return func(c *config) { c.stdout = w }
}

// WithStderr sets the error stream of a [Console].
func WithStderr(w io.Writer) Option {
	return func(c *config) { c.stderr = w }
}
