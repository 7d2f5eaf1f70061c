// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/multilog/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/multilog/src/level"
)

// Func renders a populated [Meta] into a single line without the line terminator.
type Func func(m *Meta) string

// PaddingFunc renders the request padding for a record carrying a context.
type PaddingFunc func(ctx any) string

// Padder is implemented by request contexts that know their own padding message.
type Padder interface {
	PaddingMessage() string
}

// Meta describes one record. Callers set the optional inputs (Raw, Formatter,
// PaddingMessage, Ctx, Fields); [Format] fills in the rest on its own copy.
type Meta struct {
	Level          level.Level
	Date           string
	PID            int
	Hostname       string
	Message        string
	PaddingMessage string

	// Ctx is the request context of the call, if any. It selects
	// Options.ContextFormatter and feeds the padding message.
	Ctx any
	// Raw writes the message as-is, skipping formatter and JSON output.
	Raw bool
	// Formatter overrides Options.Formatter for this record.
	Formatter Func
	// Fields are extra attributes included in JSON output.
	Fields map[string]any
}

// Options are the transport-level formatting settings.
type Options struct {
	Encoding         string
	EOL              string
	JSON             bool
	DateISOFormat    bool
	Formatter        Func
	ContextFormatter Func
	PaddingFormatter PaddingFunc
	// MaxCauseChainLength bounds the error cause chain; zero means 10.
	MaxCauseChainLength int
	// Process stamps pid, hostname and time; nil means [DefaultProcess].
	Process *Process
}

// Format renders one record. It returns nil when there is nothing to write,
// for example a raw record with an empty message.
func Format(lvl level.Level, args []any, meta *Meta, opts Options) []byte {
	m := Meta{}
	if meta != nil {
		m = *meta
	}

	proc := opts.Process
	if proc == nil {
		proc = DefaultProcess()
	}

	formatter := m.Formatter
	if formatter == nil {
		formatter = opts.Formatter
	}
	if m.Ctx != nil {
		if opts.ContextFormatter != nil {
			formatter = opts.ContextFormatter
		}
		if m.PaddingMessage == "" {
			m.PaddingMessage = padding(m.Ctx, opts.PaddingFormatter)
		}
	}

	m.Message = message(args, opts, proc)

	var output string
	switch {
	case m.Raw:
		output = m.Message
	case opts.JSON || formatter != nil:
		m.Level = lvl
		m.Date = date(proc.now(), opts.DateISOFormat)
		m.PID = proc.PID
		m.Hostname = proc.Hostname
		if opts.JSON {
			output = marshalJSON(&m)
		} else {
			output = formatter(&m)
		}
	default:
		output = m.Message
	}

	if output == "" {
		return nil
	}

	return Encode(output+opts.EOL, opts.Encoding)
}

// message joins the call arguments. An error in first position is expanded
// with its cause chain and the process trailer.
func message(args []any, opts Options, proc *Process) string {
	if len(args) == 0 {
		return ""
	}

	if err, ok := args[0].(error); ok && err != nil {
		return FormatError(err, proc, opts.MaxCauseChainLength)
	}

	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprint(arg)
	}
	return strings.Join(parts, " ")
}

func padding(ctx any, fn PaddingFunc) string {
	if fn != nil {
		return fn(ctx)
	}
	if p, ok := ctx.(Padder); ok {
		return p.PaddingMessage()
	}
	return ""
}

func date(t time.Time, iso bool) string {
	if iso {
		return t.UTC().Format("2006-01-02T15:04:05.000Z")
	}
	return LogDate(t)
}

// jsonRecord is the shape of a JSON line. Fields are merged at the top level.
type jsonRecord struct {
	Level          string `json:"level"`
	Date           string `json:"date"`
	PID            int    `json:"pid"`
	Hostname       string `json:"hostname"`
	Message        string `json:"message"`
	PaddingMessage string `json:"paddingMessage,omitempty"`
}

func marshalJSON(m *Meta) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	var err error
	if len(m.Fields) == 0 {
		err = enc.Encode(jsonRecord{
			Level:          m.Level.String(),
			Date:           m.Date,
			PID:            m.PID,
			Hostname:       m.Hostname,
			Message:        m.Message,
			PaddingMessage: m.PaddingMessage,
		})
	} else {
		record := make(map[string]any, len(m.Fields)+6)
		for k, v := range m.Fields {
			record[k] = v
		}
		record["level"] = m.Level.String()
		record["date"] = m.Date
		record["pid"] = m.PID
		record["hostname"] = m.Hostname
		record["message"] = m.Message
		if m.PaddingMessage != "" {
			record["paddingMessage"] = m.PaddingMessage
		}
		err = enc.Encode(record)
	}
	if err != nil {
		return fmt.Sprintf(`{"level":%q,"message":%q}`, m.Level.String(), "json encode error: "+err.Error())
	}

	return strings.TrimSuffix(buf.String(), "\n")
}
