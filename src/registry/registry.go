// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/H0llyW00dzZ/multilog/src/format"
	"github.com/H0llyW00dzZ/multilog/src/internal/helper/diag"
	"github.com/H0llyW00dzZ/multilog/src/level"
	"github.com/H0llyW00dzZ/multilog/src/logger"
	"github.com/H0llyW00dzZ/multilog/src/metrics"
	"github.com/H0llyW00dzZ/multilog/src/transport"
)

// Option configures the shared collaborators of a [Registry].
type Option func(*options)

type options struct {
	reporter  diag.Reporter
	collector metrics.Collector
	process   *format.Process
	extra     []transport.Option
}

// WithReporter sets the diagnostic side channel of every transport.
func WithReporter(r diag.Reporter) Option {
	return func(o *options) { o.reporter = r }
}

// WithCollector sets the metrics collector of every transport.
func WithCollector(c metrics.Collector) Option {
	return func(o *options) { o.collector = c }
}

// WithProcess sets the process context stamped on every record.
func WithProcess(p *format.Process) Option {
	return func(o *options) { o.process = p }
}

// WithTransportOptions appends options to every transport.
func WithTransportOptions(opts ...transport.Option) Option {
	return func(o *options) { o.extra = append(o.extra, opts...) }
}

// Registry owns the loggers of a process.
//
// Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	mu      sync.RWMutex
	loggers map[string]*logger.Logger
	order   []string

	cfg Config
}

// New creates every logger described by cfg and wires the concentrate-error
// routing. Configuration errors are returned before any file is opened.
func New(cfg Config, opts ...Option) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	if diag.QuietEnv(cfg.Env) {
		o.extra = append(o.extra, transport.WithQuiet(true))
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	r := &Registry{
		loggers: make(map[string]*logger.Logger),
		cfg:     cfg,
	}
	if err := r.build(&o); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

type pending struct {
	name string
	resolved
}

func (r *Registry) build(o *options) error {
	cfg := &r.cfg

	errorOpts := cfg.resolve(nil, cfg.ErrorLogName)
	errorLogger, err := logger.NewError(o.apply(errorOpts.options))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorLoggerName, err)
	}
	r.Set(ErrorLoggerName, errorLogger.Logger)

	var wiring []pending

	if cfg.Type == TypeAgent {
		core := cfg.resolve(cfg.CoreLogger, cfg.AgentLogName)
		l, err := logger.NewStandard(o.apply(core.options))
		if err != nil {
			return fmt.Errorf("%s: %w", CoreLoggerName, err)
		}
		r.Set(AppLoggerName, l.Logger)
		r.Set(CoreLoggerName, l.Logger)

		// One instance serves both names, so it is wired once with the core policy.
		wiring = append(wiring, pending{name: CoreLoggerName, resolved: core})
	} else {
		app := cfg.resolve(nil, cfg.AppLogName)
		core := cfg.resolve(cfg.CoreLogger, cfg.CoreLogName)

		for _, p := range []pending{{AppLoggerName, app}, {CoreLoggerName, core}} {
			l, err := logger.NewStandard(o.apply(p.options))
			if err != nil {
				return fmt.Errorf("%s: %w", p.name, err)
			}
			r.Set(p.name, l.Logger)
			wiring = append(wiring, p)
		}
	}

	for _, custom := range cfg.CustomLoggers {
		p := pending{name: custom.Name, resolved: cfg.resolve(&custom.Overrides, "")}
		l, err := logger.NewStandard(o.apply(p.options))
		if err != nil {
			return fmt.Errorf("%s: %w", custom.Name, err)
		}
		r.Set(custom.Name, l.Logger)
		wiring = append(wiring, p)
	}

	for _, p := range wiring {
		r.concentrate(p)
	}
	return nil
}

func (o *options) apply(lo logger.Options) logger.Options {
	lo.Reporter = o.reporter
	lo.Collector = o.collector
	lo.Process = o.process
	lo.Extra = o.extra
	return lo
}

// concentrate wires the ERROR traffic of one logger to its concentrate logger.
func (r *Registry) concentrate(p pending) {
	if p.name == ErrorLoggerName {
		return
	}

	l := r.Get(p.name)
	target := r.Get(p.targetName)
	if l == nil || target == nil || l == target {
		return
	}

	switch p.policy {
	case PolicyDuplicate:
		l.Duplicate(level.ERROR, target, logger.ConsoleTransport)
	case PolicyRedirect:
		l.Redirect(level.ERROR, target)
	case PolicyIgnore:
	}
}

// Config returns the configuration the registry was built from.
func (r *Registry) Config() Config { return r.cfg }

// Get returns the named logger, or nil.
func (r *Registry) Get(name string) *logger.Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.loggers[name]
}

// Logger returns the application logger.
func (r *Registry) Logger() *logger.Logger { return r.Get(AppLoggerName) }

// CoreLogger returns the framework logger.
func (r *Registry) CoreLogger() *logger.Logger { return r.Get(CoreLoggerName) }

// ErrorLogger returns the error logger.
func (r *Registry) ErrorLogger() *logger.Logger { return r.Get(ErrorLoggerName) }

// NameOf returns the first name l is registered under, or "".
func (r *Registry) NameOf(l *logger.Logger) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		if r.loggers[name] == l {
			return name
		}
	}
	return ""
}

// Names returns the logger names in creation order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.order)
}

// Set registers l under name. An existing name keeps its logger.
func (r *Registry) Set(name string, l *logger.Logger) {
	if l == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.loggers[name]; ok {
		return
	}
	r.loggers[name] = l
	r.order = append(r.order, name)
}

// unique returns every distinct logger once, in creation order.
func (r *Registry) unique() []*logger.Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*logger.Logger, 0, len(r.order))
	for _, name := range r.order {
		l := r.loggers[name]
		if !slices.Contains(out, l) {
			out = append(out, l)
		}
	}
	return out
}

// DisableConsole disables the console transport of every logger.
func (r *Registry) DisableConsole() {
	for _, l := range r.unique() {
		l.Disable(logger.ConsoleTransport)
	}
}

// Reload reloads every transport of every logger.
func (r *Registry) Reload() error {
	var errs []error
	for _, l := range r.unique() {
		errs = append(errs, l.Reload())
	}
	return errors.Join(errs...)
}

// Close closes every logger.
func (r *Registry) Close() error {
	var errs []error
	for _, l := range r.unique() {
		errs = append(errs, l.Close())
	}
	return errors.Join(errs...)
}
