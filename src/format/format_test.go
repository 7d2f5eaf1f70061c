// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/H0llyW00dzZ/multilog/src/format"
	"github.com/H0llyW00dzZ/multilog/src/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

var fixedTime = time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.Local)

func testProcess() *format.Process {
	return &format.Process{
		PID:      42,
		Hostname: "box",
		Now:      func() time.Time { return fixedTime },
	}
}

type request struct{ id string }

func (r request) PaddingMessage() string { return "[" + r.id + "]" }

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "PlainMessage",
			testFunc: func(t *testing.T) {
				out := format.Format(level.INFO, []any{"hello", "world", 3}, nil, format.Options{
					EOL:     "\n",
					Process: testProcess(),
				})
				assert.Equal(t, "hello world 3\n", string(out))
			},
		},
		{
			name: "DefaultFormatter",
			testFunc: func(t *testing.T) {
				out := format.Format(level.WARN, []any{"careful"}, nil, format.Options{
					EOL:       "\n",
					Formatter: format.DefaultFormatter,
					Process:   testProcess(),
				})
				assert.Equal(t, "2026-01-02 03:04:05,006 WARN 42 careful\n", string(out))
			},
		},
		{
			name: "MetaFormatterOverridesOptions",
			testFunc: func(t *testing.T) {
				meta := &format.Meta{Formatter: func(m *format.Meta) string {
					return fmt.Sprintf("%d %s", m.PID, m.Message)
				}}
				out := format.Format(level.INFO, []any{"info"}, meta, format.Options{
					EOL:       "\n",
					Formatter: format.DefaultFormatter,
					Process:   testProcess(),
				})
				assert.Equal(t, "42 info\n", string(out))
			},
		},
		{
			name: "RawIgnoresFormatter",
			testFunc: func(t *testing.T) {
				out := format.Format(level.NONE, []any{"write"}, &format.Meta{Raw: true}, format.Options{
					EOL:       "\n",
					Formatter: format.DefaultFormatter,
					Process:   testProcess(),
				})
				assert.Equal(t, "write\n", string(out))
			},
		},
		{
			name: "EmptyRawProducesNothing",
			testFunc: func(t *testing.T) {
				out := format.Format(level.INFO, []any{""}, &format.Meta{Raw: true}, format.Options{
					EOL:     "\n",
					Process: testProcess(),
				})
				assert.Empty(t, out)

				out = format.Format(level.INFO, nil, nil, format.Options{EOL: "\n", Process: testProcess()})
				assert.Empty(t, out)
			},
		},
		{
			name: "EmptyEOL",
			testFunc: func(t *testing.T) {
				out := format.Format(level.INFO, []any{"no newline"}, nil, format.Options{Process: testProcess()})
				assert.Equal(t, "no newline", string(out))
			},
		},
		{
			name: "DoesNotMutateCallerMeta",
			testFunc: func(t *testing.T) {
				meta := &format.Meta{}
				format.Format(level.INFO, []any{"x"}, meta, format.Options{
					Formatter: format.DefaultFormatter,
					Process:   testProcess(),
				})
				assert.Empty(t, meta.Message)
				assert.Zero(t, meta.PID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestFormat_JSON(t *testing.T) {
	out := format.Format(level.ERROR, []any{"json", "line"}, nil, format.Options{
		EOL:     "\n",
		JSON:    true,
		Process: testProcess(),
	})
	require.True(t, strings.HasSuffix(string(out), "\n"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(out, &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "json line", record["message"])
	assert.Equal(t, "box", record["hostname"])
	assert.Equal(t, float64(42), record["pid"])
	assert.Equal(t, "2026-01-02 03:04:05,006", record["date"])
	assert.NotContains(t, record, "paddingMessage")
}

func TestFormat_JSONFields(t *testing.T) {
	out := format.Format(level.INFO, []any{"with fields"}, &format.Meta{
		Fields: map[string]any{"requestId": "abc", "status": 200},
	}, format.Options{
		JSON:    true,
		Process: testProcess(),
	})

	var record map[string]any
	require.NoError(t, json.Unmarshal(out, &record))
	assert.Equal(t, "abc", record["requestId"])
	assert.Equal(t, float64(200), record["status"])
	assert.Equal(t, "with fields", record["message"])
}

func TestFormat_ISODate(t *testing.T) {
	out := format.Format(level.INFO, []any{"iso"}, nil, format.Options{
		Formatter:     func(m *format.Meta) string { return m.Date },
		DateISOFormat: true,
		Process:       testProcess(),
	})
	assert.Equal(t, fixedTime.UTC().Format("2006-01-02T15:04:05.000Z"), string(out))
}

func TestFormat_Context(t *testing.T) {
	opts := format.Options{
		EOL:              "\n",
		Formatter:        format.DefaultFormatter,
		ContextFormatter: format.ContextFormatter,
		Process:          testProcess(),
	}

	out := format.Format(level.INFO, []any{"handled"}, &format.Meta{Ctx: request{id: "req-1"}}, opts)
	assert.Equal(t, "2026-01-02 03:04:05,006 INFO 42 [req-1] handled\n", string(out))

	opts.PaddingFormatter = func(ctx any) string { return "<custom>" }
	out = format.Format(level.INFO, []any{"handled"}, &format.Meta{Ctx: request{id: "req-1"}}, opts)
	assert.Equal(t, "2026-01-02 03:04:05,006 INFO 42 <custom> handled\n", string(out))

	out = format.Format(level.INFO, []any{"explicit"}, &format.Meta{PaddingMessage: "[pad]"}, format.Options{
		Formatter: format.DefaultFormatter,
		Process:   testProcess(),
	})
	assert.Equal(t, "2026-01-02 03:04:05,006 INFO 42 [pad] explicit", string(out))
}

func TestFormat_Error(t *testing.T) {
	base := errors.New("boom")
	wrapped := fmt.Errorf("outer: %w", base)

	out := string(format.Format(level.ERROR, []any{wrapped}, nil, format.Options{Process: testProcess()}))

	assert.Contains(t, out, "fmt.wrapError: outer: boom")
	assert.Contains(t, out, "cause:\n\nerrors.errorString: boom")
	assert.Contains(t, out, "pid: 42\nhostname: box\n")
}

func TestFormatError_CauseChainLimit(t *testing.T) {
	err := errors.New("root")
	for i := range 5 {
		err = fmt.Errorf("level %d: %w", i, err)
	}

	out := format.FormatError(err, testProcess(), 2)
	assert.Contains(t, out, "too long cause chain")
	assert.NotContains(t, out, "errors.errorString: root")
}

func TestFormat_GBK(t *testing.T) {
	out := format.Format(level.INFO, []any{"info foo 中文"}, nil, format.Options{
		EOL:      "\n",
		Encoding: "gbk",
		Process:  testProcess(),
	})

	assert.NotEqual(t, []byte("info foo 中文\n"), out, "GBK bytes differ from UTF-8")

	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(out)
	require.NoError(t, err)
	assert.Equal(t, "info foo 中文\n", string(decoded))
}

func TestEncoding(t *testing.T) {
	assert.Equal(t, format.UTF8, format.NormalizeEncoding("utf-8"))
	assert.Equal(t, format.UTF8, format.NormalizeEncoding("UTF-8"))
	assert.Equal(t, format.UTF8, format.NormalizeEncoding(""))
	assert.Equal(t, "gbk", format.NormalizeEncoding("GBK"))

	assert.True(t, format.IsUTF8("utf8"))
	assert.False(t, format.IsUTF8("gbk"))

	assert.True(t, format.Supported("gbk"))
	assert.False(t, format.Supported("klingon"))
	assert.Equal(t, []byte("plain"), format.Encode("plain", "klingon"))
}

func TestFormatters(t *testing.T) {
	m := &format.Meta{Date: "D", Level: level.INFO, PID: 7, Message: "msg"}
	assert.Equal(t, "D INFO 7 msg", format.DefaultFormatter(m))
	assert.Equal(t, "D INFO 7 msg", format.ConsoleFormatter(m))

	m.PaddingMessage = "[p]"
	assert.Equal(t, "D INFO 7 [p] msg", format.DefaultFormatter(m))
	assert.Equal(t, "D INFO 7 [p] msg", format.ContextFormatter(m))

	assert.Equal(t, "2026-01-02 03:04:05,006", format.LogDate(fixedTime))
}

func TestDefaultProcess(t *testing.T) {
	p := format.DefaultProcess()
	require.NotNil(t, p)
	assert.Positive(t, p.PID)
	assert.NotEmpty(t, p.Hostname)
	assert.Same(t, p, format.DefaultProcess())
}
