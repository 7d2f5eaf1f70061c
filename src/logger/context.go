// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/multilog/src/format"
	"github.com/H0llyW00dzZ/multilog/src/level"
	"go.opentelemetry.io/otel/trace"
)

// Request describes the request a [ContextLogger] logs for.
// Empty fields render as "-".
type Request struct {
	LogonID string
	UserID  string
	IP      string
	Method  string
	URL     string
	// TraceID overrides the trace id of the span carried by the context.
	TraceID string
	Start   time.Time
}

type requestKey struct{}

// WithRequest returns a copy of ctx carrying req.
func WithRequest(ctx context.Context, req *Request) context.Context {
	return context.WithValue(ctx, requestKey{}, req)
}

// RequestFromContext returns the request stored by [WithRequest], or nil.
func RequestFromContext(ctx context.Context) *Request {
	req, _ := ctx.Value(requestKey{}).(*Request)
	return req
}

// ContextLogger logs through a [Logger] and prefixes every record with the
// request padding:
//
//	[logonId/userId/ip/traceId/12ms GET /path]
//
// The trace id comes from the request, or else from the OpenTelemetry span
// in the context.
type ContextLogger struct {
	ctx    context.Context
	logger *Logger
	now    func() time.Time
}

// NewContextLogger creates a ContextLogger for the request in ctx.
func NewContextLogger(ctx context.Context, l *Logger) *ContextLogger {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ContextLogger{ctx: ctx, logger: l, now: time.Now}
}

// PaddingMessage renders the request padding.
func (c *ContextLogger) PaddingMessage() string {
	return requestPadding(c.ctx, c.now())
}

// RequestPadding is the padding formatter of [DefaultOptions]. It renders
// the request padding of a [context.Context], defers to
// [format.Padder] implementations, and returns "" for anything else.
func RequestPadding(ctx any) string {
	switch v := ctx.(type) {
	case context.Context:
		return requestPadding(v, time.Now())
	case format.Padder:
		return v.PaddingMessage()
	default:
		return ""
	}
}

func requestPadding(ctx context.Context, now time.Time) string {
	req := RequestFromContext(ctx)
	if req == nil {
		req = &Request{}
	}

	traceID := req.TraceID
	if traceID == "" {
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			traceID = sc.TraceID().String()
		}
	}

	var elapsed int64
	if !req.Start.IsZero() {
		elapsed = now.Sub(req.Start).Milliseconds()
	}

	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(orDash(req.LogonID))
	sb.WriteByte('/')
	sb.WriteString(orDash(req.UserID))
	sb.WriteByte('/')
	sb.WriteString(orDash(req.IP))
	sb.WriteByte('/')
	sb.WriteString(orDash(traceID))
	sb.WriteByte('/')
	sb.WriteString(strconv.FormatInt(elapsed, 10))
	sb.WriteString("ms ")
	sb.WriteString(orDash(req.Method))
	sb.WriteByte(' ')
	sb.WriteString(orDash(req.URL))
	sb.WriteByte(']')
	return sb.String()
}

func (c *ContextLogger) log(lvl level.Level, args []any) {
	c.logger.Log(lvl, args, &format.Meta{
		Ctx:            c.ctx,
		Formatter:      format.ContextFormatter,
		PaddingMessage: c.PaddingMessage(),
	})
}

// Write sends pre-formatted content through the underlying logger without
// the request padding.
func (c *ContextLogger) Write(args ...any) { c.logger.Write(args...) }

// Error logs args at ERROR.
func (c *ContextLogger) Error(args ...any) { c.log(level.ERROR, args) }

// Warn logs args at WARN.
func (c *ContextLogger) Warn(args ...any) { c.log(level.WARN, args) }

// Info logs args at INFO.
func (c *ContextLogger) Info(args ...any) { c.log(level.INFO, args) }

// Debug logs args at DEBUG.
func (c *ContextLogger) Debug(args ...any) { c.log(level.DEBUG, args) }

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
