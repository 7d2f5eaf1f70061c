// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"strings"
	"time"

	"github.com/H0llyW00dzZ/multilog/src/format"
	"github.com/H0llyW00dzZ/multilog/src/internal/helper/diag"
	"github.com/H0llyW00dzZ/multilog/src/level"
	"github.com/H0llyW00dzZ/multilog/src/metrics"
	"github.com/H0llyW00dzZ/multilog/src/transport"
)

// Transport names used by the loggers of this package.
const (
	FileTransport    = "file"
	JSONTransport    = "jsonFile"
	ConsoleTransport = "console"
)

// Options configures the loggers built by [NewStandard], [NewError] and
// [NewConsole]. Start from [DefaultOptions]; the zero Level is DEBUG.
type Options struct {
	// File is the text log path. Required by NewStandard and NewError.
	File string
	// JSONFile is the JSON log path. When empty and OutputJSON is set it is
	// derived from File by replacing a ".log" suffix with ".json.log".
	JSONFile string
	// OutputJSON adds a JSON transport next to the text one.
	OutputJSON bool
	// OutputJSONOnly writes the JSON transport only.
	OutputJSONOnly bool
	// ErrorFile is the optional ERROR-only file of NewConsole.
	ErrorFile string

	Level         level.Level
	ConsoleLevel  level.Level
	Encoding      string
	EOL           string
	Buffer        bool
	FlushInterval time.Duration
	DateISOFormat bool

	Formatter        format.Func
	ConsoleFormatter format.Func
	// ContextFormatter renders records logged with a context, see [Logger.LogContext].
	ContextFormatter format.Func
	// PaddingFormatter turns that context into the padding message.
	PaddingFormatter format.PaddingFunc

	Reporter  diag.Reporter
	Collector metrics.Collector
	Process   *format.Process

	// Extra is appended to the options of every transport.
	Extra []transport.Option
}

// DefaultOptions returns the defaults: level INFO, console off, buffered
// writes, the default formatters, request padding from [RequestPadding] and
// the platform line terminator.
func DefaultOptions() Options {
	return Options{
		Level:            level.INFO,
		ConsoleLevel:     level.NONE,
		Encoding:         format.UTF8,
		EOL:              transport.DefaultEOL(),
		Buffer:           true,
		FlushInterval:    transport.DefaultFlushInterval,
		Formatter:        format.DefaultFormatter,
		ConsoleFormatter: format.ConsoleFormatter,
		ContextFormatter: format.ContextFormatter,
		PaddingFormatter: RequestPadding,
	}
}

// JSONPath returns the JSON log path for the options.
func (o Options) JSONPath() string {
	if o.JSONFile != "" {
		return o.JSONFile
	}
	if strings.HasSuffix(o.File, ".log") {
		return strings.TrimSuffix(o.File, ".log") + ".json.log"
	}
	return o.File + ".json.log"
}

func (o Options) common() []transport.Option {
	opts := []transport.Option{
		transport.WithEncoding(o.Encoding),
		transport.WithEOL(o.EOL),
		transport.WithDateISOFormat(o.DateISOFormat),
		transport.WithFlushInterval(o.FlushInterval),
	}
	if o.Reporter != nil {
		opts = append(opts, transport.WithReporter(o.Reporter))
	}
	if o.Collector != nil {
		opts = append(opts, transport.WithCollector(o.Collector))
	}
	if o.Process != nil {
		opts = append(opts, transport.WithProcess(o.Process))
	}
	if o.ContextFormatter != nil {
		opts = append(opts, transport.WithContextFormatter(o.ContextFormatter))
	}
	if o.PaddingFormatter != nil {
		opts = append(opts, transport.WithPaddingFormatter(o.PaddingFormatter))
	}
	return opts
}

func (o Options) with(opts ...transport.Option) []transport.Option {
	out := append(o.common(), opts...)
	return append(out, o.Extra...)
}

func (o Options) newFile(path string, opts ...transport.Option) (transport.Transport, error) {
	if o.Buffer {
		return transport.NewBufferedFile(path, o.with(opts...)...)
	}
	return transport.NewFile(path, o.with(opts...)...)
}

// Standard is a Logger with a text file, an optional JSON file and a
// console transport.
type Standard struct {
	*Logger
}

// NewStandard creates a Standard logger.
//
// It returns [transport.ErrFileRequired] when File is empty.
func NewStandard(o Options) (*Standard, error) {
	if o.File == "" {
		return nil, transport.ErrFileRequired
	}

	s := &Standard{Logger: New()}

	if !o.OutputJSONOnly {
		t, err := o.newFile(o.File,
			transport.WithLevel(o.Level),
			transport.WithFormatter(o.Formatter),
		)
		if err != nil {
			return nil, err
		}
		s.Set(FileTransport, t)
	}

	if o.OutputJSON || o.OutputJSONOnly {
		t, err := o.newFile(o.JSONPath(),
			transport.WithLevel(o.Level),
			transport.WithJSON(true),
		)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.Set(JSONTransport, t)
	}

	s.Set(ConsoleTransport, transport.NewConsole(o.with(
		transport.WithLevel(o.ConsoleLevel),
		transport.WithFormatter(o.ConsoleFormatter),
	)...))

	return s, nil
}

// SetLevel changes the threshold of every transport except the console.
func (s *Standard) SetLevel(l level.Level) {
	s.Each(func(_ string, t transport.Transport) {
		if t.Kind() != transport.KindConsole {
			t.SetLevel(l)
		}
	})
}

// SetConsoleLevel changes the threshold of the console transports.
func (s *Standard) SetConsoleLevel(l level.Level) {
	s.Each(func(_ string, t transport.Transport) {
		if t.Kind() == transport.KindConsole {
			t.SetLevel(l)
		}
	})
}

// NewError creates a Standard logger whose file and console levels are at
// least ERROR.
func NewError(o Options) (*Standard, error) {
	o.Level = max(o.Level, level.ERROR)
	o.ConsoleLevel = max(o.ConsoleLevel, level.ERROR)
	return NewStandard(o)
}

// NewConsole creates a Logger writing to the console at o.Level. When
// o.ErrorFile is set, ERROR records are also written to that file.
func NewConsole(o Options) (*Logger, error) {
	l := New()
	l.Set(ConsoleTransport, transport.NewConsole(o.with(
		transport.WithLevel(o.Level),
		transport.WithFormatter(o.ConsoleFormatter),
	)...))

	if o.ErrorFile != "" {
		t, err := transport.NewFile(o.ErrorFile, o.with(
			transport.WithLevel(level.ERROR),
			transport.WithFormatter(format.DefaultFormatter),
		)...)
		if err != nil {
			return nil, err
		}
		l.Set(FileTransport, t)
	}

	return l, nil
}
