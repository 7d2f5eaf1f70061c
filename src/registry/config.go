// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package registry

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/H0llyW00dzZ/multilog/src/format"
	"github.com/H0llyW00dzZ/multilog/src/level"
	"github.com/H0llyW00dzZ/multilog/src/logger"
	"github.com/H0llyW00dzZ/multilog/src/transport"
)

// Process roles.
const (
	TypeApplication = "application"
	TypeAgent       = "agent"
)

// Concentrate-error policies.
const (
	PolicyDuplicate = "duplicate"
	PolicyRedirect  = "redirect"
	PolicyIgnore    = "ignore"
)

// Built-in logger names.
const (
	ErrorLoggerName = "errorLogger"
	AppLoggerName   = "logger"
	CoreLoggerName  = "coreLogger"
)

var (
	// ErrMissingField is returned when a required configuration field is empty.
	ErrMissingField = errors.New("registry: missing required field")
	// ErrUnsupportedPolicy is returned for an unknown concentrateError value.
	ErrUnsupportedPolicy = errors.New("registry: unsupported concentrateError policy")
	// ErrDuplicateLogger is returned when two loggers share a name.
	ErrDuplicateLogger = errors.New("registry: duplicate logger name")
	// ErrUnsupportedEncoding is returned for an encoding the formatter cannot write.
	ErrUnsupportedEncoding = errors.New("registry: unsupported encoding")
)

// Config is the registry configuration.
type Config struct {
	// Env is the execution mode. "test" and "unittest" make every transport
	// quiet about records dropped on a closed stream.
	Env            string      `json:"env" yaml:"env"`
	Type           string      `json:"type" yaml:"type"`
	Dir            string      `json:"dir" yaml:"dir"`
	Encoding       string      `json:"encoding" yaml:"encoding"`
	Level          level.Level `json:"level" yaml:"level"`
	ConsoleLevel   level.Level `json:"consoleLevel" yaml:"consoleLevel"`
	OutputJSON     bool        `json:"outputJSON" yaml:"outputJSON"`
	OutputJSONOnly bool        `json:"outputJSONOnly" yaml:"outputJSONOnly"`
	Buffer         bool        `json:"buffer" yaml:"buffer"`
	DateISOFormat  bool        `json:"dateISOFormat" yaml:"dateISOFormat"`
	EOL            string      `json:"eol" yaml:"eol"`
	// FlushInterval is the buffered flush period in milliseconds.
	FlushInterval int `json:"flushInterval" yaml:"flushInterval"`

	AppLogName   string `json:"appLogName" yaml:"appLogName"`
	CoreLogName  string `json:"coreLogName" yaml:"coreLogName"`
	AgentLogName string `json:"agentLogName" yaml:"agentLogName"`
	ErrorLogName string `json:"errorLogName" yaml:"errorLogName"`

	ConcentrateError           string `json:"concentrateError" yaml:"concentrateError"`
	ConcentrateErrorLoggerName string `json:"concentrateErrorLoggerName" yaml:"concentrateErrorLoggerName"`

	// CoreLogger overrides the base settings for coreLogger.
	CoreLogger *Overrides `json:"coreLogger,omitempty" yaml:"coreLogger,omitempty"`
	// CustomLoggers are created in order after the built-in loggers.
	CustomLoggers []CustomLogger `json:"customLoggers,omitempty" yaml:"customLoggers,omitempty"`
}

// Overrides replace base settings for one logger. Nil fields inherit.
type Overrides struct {
	File                       *string      `json:"file,omitempty" yaml:"file,omitempty"`
	Encoding                   *string      `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Level                      *level.Level `json:"level,omitempty" yaml:"level,omitempty"`
	ConsoleLevel               *level.Level `json:"consoleLevel,omitempty" yaml:"consoleLevel,omitempty"`
	OutputJSON                 *bool        `json:"outputJSON,omitempty" yaml:"outputJSON,omitempty"`
	OutputJSONOnly             *bool        `json:"outputJSONOnly,omitempty" yaml:"outputJSONOnly,omitempty"`
	Buffer                     *bool        `json:"buffer,omitempty" yaml:"buffer,omitempty"`
	DateISOFormat              *bool        `json:"dateISOFormat,omitempty" yaml:"dateISOFormat,omitempty"`
	EOL                        *string      `json:"eol,omitempty" yaml:"eol,omitempty"`
	FlushInterval              *int         `json:"flushInterval,omitempty" yaml:"flushInterval,omitempty"`
	ConcentrateError           *string      `json:"concentrateError,omitempty" yaml:"concentrateError,omitempty"`
	ConcentrateErrorLoggerName *string      `json:"concentrateErrorLoggerName,omitempty" yaml:"concentrateErrorLoggerName,omitempty"`
}

// CustomLogger is a named logger created from the base settings and its overrides.
type CustomLogger struct {
	Name      string `json:"name" yaml:"name"`
	Overrides `yaml:",inline"`
}

// DefaultConfig returns a Config carrying every default. The role and the
// file names are left empty and must be set.
func DefaultConfig() Config {
	return Config{
		Env:                        "default",
		Encoding:                   format.UTF8,
		Level:                      level.INFO,
		ConsoleLevel:               level.NONE,
		Buffer:                     true,
		FlushInterval:              int(transport.DefaultFlushInterval / time.Millisecond),
		ConcentrateError:           PolicyDuplicate,
		ConcentrateErrorLoggerName: ErrorLoggerName,
	}
}

// Validate checks the required fields, the encodings and the concentrate policies.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"type", c.Type},
		{"dir", c.Dir},
		{"appLogName", c.AppLogName},
		{"coreLogName", c.CoreLogName},
		{"agentLogName", c.AgentLogName},
		{"errorLogName", c.ErrorLogName},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	if err := checkPolicy(c.ConcentrateError); err != nil {
		return err
	}
	if err := checkEncoding(c.Encoding); err != nil {
		return err
	}
	if err := c.CoreLogger.check(); err != nil {
		return fmt.Errorf("coreLogger: %w", err)
	}

	seen := map[string]bool{ErrorLoggerName: true, AppLoggerName: true, CoreLoggerName: true}
	for i, custom := range c.CustomLoggers {
		if custom.Name == "" {
			return fmt.Errorf("%w: customLoggers[%d].name", ErrMissingField, i)
		}
		if seen[custom.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateLogger, custom.Name)
		}
		seen[custom.Name] = true

		if custom.File == nil || *custom.File == "" {
			return fmt.Errorf("%w: customLoggers[%d].file", ErrMissingField, i)
		}
		if err := custom.Overrides.check(); err != nil {
			return fmt.Errorf("%s: %w", custom.Name, err)
		}
	}

	return nil
}

// check validates the overridden policy and encoding. A nil receiver is valid.
func (o *Overrides) check() error {
	if o == nil {
		return nil
	}
	if o.ConcentrateError != nil {
		if err := checkPolicy(*o.ConcentrateError); err != nil {
			return err
		}
	}
	if o.Encoding != nil {
		return checkEncoding(*o.Encoding)
	}
	return nil
}

func checkEncoding(e string) error {
	if !format.Supported(e) {
		return fmt.Errorf("%w: %q", ErrUnsupportedEncoding, e)
	}
	return nil
}

func checkPolicy(p string) error {
	switch p {
	case PolicyDuplicate, PolicyRedirect, PolicyIgnore:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedPolicy, p)
	}
}

// resolved is one logger's effective settings.
type resolved struct {
	options    logger.Options
	policy     string
	targetName string
}

// resolve merges o over the base settings and sets the file path.
// Relative paths are joined with Dir.
func (c *Config) resolve(o *Overrides, file string) resolved {
	r := resolved{
		options:    logger.DefaultOptions(),
		policy:     c.ConcentrateError,
		targetName: c.ConcentrateErrorLoggerName,
	}

	opts := &r.options
	opts.Encoding = c.Encoding
	opts.Level = c.Level
	opts.ConsoleLevel = c.ConsoleLevel
	opts.OutputJSON = c.OutputJSON
	opts.OutputJSONOnly = c.OutputJSONOnly
	opts.Buffer = c.Buffer
	opts.DateISOFormat = c.DateISOFormat
	if c.EOL != "" {
		opts.EOL = c.EOL
	}
	flush := c.FlushInterval

	if o != nil {
		if o.File != nil {
			file = *o.File
		}
		setIf(&opts.Encoding, o.Encoding)
		setIf(&opts.Level, o.Level)
		setIf(&opts.ConsoleLevel, o.ConsoleLevel)
		setIf(&opts.OutputJSON, o.OutputJSON)
		setIf(&opts.OutputJSONOnly, o.OutputJSONOnly)
		setIf(&opts.Buffer, o.Buffer)
		setIf(&opts.DateISOFormat, o.DateISOFormat)
		setIf(&opts.EOL, o.EOL)
		setIf(&flush, o.FlushInterval)
		setIf(&r.policy, o.ConcentrateError)
		setIf(&r.targetName, o.ConcentrateErrorLoggerName)
	}

	if flush > 0 {
		opts.FlushInterval = time.Duration(flush) * time.Millisecond
	}
	opts.File = c.path(file)

	return r
}

func (c *Config) path(file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.Dir, file)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
