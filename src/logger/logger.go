// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/H0llyW00dzZ/multilog/src/format"
	"github.com/H0llyW00dzZ/multilog/src/level"
	"github.com/H0llyW00dzZ/multilog/src/transport"
)

// Logger owns a named collection of transports and the per-level routing
// tables to other loggers.
//
// Logger is safe for concurrent use by multiple goroutines.
type Logger struct {
	mu         sync.RWMutex
	transports map[string]transport.Transport
	order      []string
	redirects  map[level.Level]*Logger
	duplicates map[level.Level]duplicateRule
}

type duplicateRule struct {
	target   *Logger
	excludes []string
}

// New creates an empty Logger.
func New() *Logger {
	return &Logger{
		transports: make(map[string]transport.Transport),
		redirects:  make(map[level.Level]*Logger),
		duplicates: make(map[level.Level]duplicateRule),
	}
}

// Set registers t under name. When name is already registered the call is
// ignored and the first transport stays.
func (l *Logger) Set(name string, t transport.Transport) {
	if t == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.transports[name]; ok {
		return
	}
	l.transports[name] = t
	l.order = append(l.order, name)
}

// Get returns the transport registered under name, or nil.
func (l *Logger) Get(name string) transport.Transport {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.transports[name]
}

// Enable turns on the named transport. Unknown names are ignored.
func (l *Logger) Enable(name string) {
	if t := l.Get(name); t != nil {
		t.Enable()
	}
}

// Disable turns off the named transport. Unknown names are ignored.
func (l *Logger) Disable(name string) {
	if t := l.Get(name); t != nil {
		t.Disable()
	}
}

// Names returns the transport names in registration order.
func (l *Logger) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.order)
}

// Each calls fn for every transport in registration order.
func (l *Logger) Each(fn func(name string, t transport.Transport)) {
	for _, e := range l.entries() {
		fn(e.name, e.t)
	}
}

type entry struct {
	name string
	t    transport.Transport
}

// entries snapshots the transports so writes happen outside the lock.
func (l *Logger) entries() []entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]entry, len(l.order))
	for i, name := range l.order {
		out[i] = entry{name: name, t: l.transports[name]}
	}
	return out
}

// Log dispatches one record.
//
// When a redirect is registered for lvl the record is forwarded to the
// target logger and nothing is written locally. Otherwise every local
// transport admitting lvl writes it, and a duplicate rule for lvl then
// writes it to the target's transports that admit lvl and are not excluded.
func (l *Logger) Log(lvl level.Level, args []any, meta *format.Meta) {
	l.mu.RLock()
	redirect := l.redirects[lvl]
	dup, hasDup := l.duplicates[lvl]
	l.mu.RUnlock()

	if redirect != nil {
		redirect.Log(lvl, args, meta)
		return
	}

	for _, e := range l.entries() {
		if e.t.ShouldLog(lvl) {
			e.t.Log(lvl, args, meta)
		}
	}

	if !hasDup {
		return
	}
	for _, e := range dup.target.entries() {
		if slices.Contains(dup.excludes, e.name) {
			continue
		}
		if e.t.ShouldLog(lvl) {
			e.t.Log(lvl, args, meta)
		}
	}
}

// Error logs args at ERROR.
func (l *Logger) Error(args ...any) { l.Log(level.ERROR, args, nil) }

// Warn logs args at WARN.
func (l *Logger) Warn(args ...any) { l.Log(level.WARN, args, nil) }

// Info logs args at INFO.
func (l *Logger) Info(args ...any) { l.Log(level.INFO, args, nil) }

// Debug logs args at DEBUG.
func (l *Logger) Debug(args ...any) { l.Log(level.DEBUG, args, nil) }

// LogContext dispatches one record carrying ctx. Transports render it with
// their context formatter and derive the padding message from ctx.
func (l *Logger) LogContext(ctx context.Context, lvl level.Level, args []any) {
	if ctx == nil {
		l.Log(lvl, args, nil)
		return
	}
	l.Log(lvl, args, &format.Meta{Ctx: ctx})
}

// ErrorContext logs args at ERROR for the request in ctx.
func (l *Logger) ErrorContext(ctx context.Context, args ...any) { l.LogContext(ctx, level.ERROR, args) }

// WarnContext logs args at WARN for the request in ctx.
func (l *Logger) WarnContext(ctx context.Context, args ...any) { l.LogContext(ctx, level.WARN, args) }

// InfoContext logs args at INFO for the request in ctx.
func (l *Logger) InfoContext(ctx context.Context, args ...any) { l.LogContext(ctx, level.INFO, args) }

// DebugContext logs args at DEBUG for the request in ctx.
func (l *Logger) DebugContext(ctx context.Context, args ...any) { l.LogContext(ctx, level.DEBUG, args) }

// Write sends pre-formatted content to every enabled transport, bypassing
// thresholds, formatters and routing.
func (l *Logger) Write(args ...any) {
	meta := &format.Meta{Raw: true}
	for _, e := range l.entries() {
		if e.t.Enabled() {
			e.t.Log(level.NONE, args, meta)
		}
	}
}

// Redirect forwards records at lvl to target instead of the local
// transports. A later call for the same level replaces the target.
func (l *Logger) Redirect(lvl level.Level, target *Logger) {
	if target == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.redirects[lvl] = target
}

// Unredirect removes the redirect for lvl.
func (l *Logger) Unredirect(lvl level.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.redirects, lvl)
}

// RedirectTarget returns the redirect target for lvl, or nil.
func (l *Logger) RedirectTarget(lvl level.Level) *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.redirects[lvl]
}

// Duplicate also writes records at lvl to the transports of target, except
// the transports named in excludes. Calling it again with the same target
// does nothing; a different target replaces the rule.
func (l *Logger) Duplicate(lvl level.Level, target *Logger, excludes ...string) {
	if target == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if rule, ok := l.duplicates[lvl]; ok && rule.target == target {
		return
	}
	l.duplicates[lvl] = duplicateRule{target: target, excludes: slices.Clone(excludes)}
}

// Unduplicate removes the duplicate rule for lvl when it points at target.
func (l *Logger) Unduplicate(lvl level.Level, target *Logger) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if rule, ok := l.duplicates[lvl]; ok && rule.target == target {
		delete(l.duplicates, lvl)
	}
}

// DuplicateTarget returns the duplicate target for lvl and its exclusions.
func (l *Logger) DuplicateTarget(lvl level.Level) (*Logger, []string) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rule, ok := l.duplicates[lvl]
	if !ok {
		return nil, nil
	}
	return rule.target, slices.Clone(rule.excludes)
}

// Reload reloads every transport.
func (l *Logger) Reload() error {
	var errs []error
	for _, e := range l.entries() {
		if err := e.t.Reload(); err != nil {
			errs = append(errs, fmt.Errorf("reload %s: %w", e.name, err))
		}
	}
	return errors.Join(errs...)
}

// Close closes every transport. Routing tables are left as they are.
func (l *Logger) Close() error {
	var errs []error
	for _, e := range l.entries() {
		if err := e.t.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", e.name, err))
		}
	}
	return errors.Join(errs...)
}
