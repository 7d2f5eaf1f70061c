// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package level

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownLevel is returned by [Parse] when the given name does not match any severity.
var ErrUnknownLevel = errors.New("unknown log level")

// Level is the severity rank of a log record.
//
// Levels are totally ordered: ALL < DEBUG < INFO < WARN < ERROR < NONE.
// ALL and NONE are sentinels so that "log everything" and "log nothing"
// can be expressed as ordinary thresholds.
type Level int

const (
	// ALL is the lowest possible threshold; every record passes it.
	ALL Level = math.MinInt32
	// DEBUG is used for execution tracing.
	DEBUG Level = 0
	// INFO is used for normal operational messages.
	INFO Level = 1
	// WARN is used for recoverable problems.
	WARN Level = 2
	// ERROR is used for errors and exceptions.
	ERROR Level = 3
	// NONE is the "off" threshold; nothing passes it.
	NONE Level = math.MaxInt32
)

// Levels lists the emitting severities in ascending order.
var Levels = []Level{DEBUG, INFO, WARN, ERROR}

// String returns the upper-case name of the level.
func (l Level) String() string {
	switch l {
	case ALL:
		return "ALL"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case NONE:
		return "NONE"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Parse returns the level for a case-insensitive name such as "info" or "WARN".
// "WARNING" is accepted as an alias of WARN.
func Parse(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ALL":
		return ALL, nil
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "NONE":
		return NONE, nil
	default:
		return NONE, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

// MustParse is like [Parse] but panics on an unknown name.
// It is intended for constants in tests and package initialisation.
func MustParse(name string) Level {
	l, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return l
}

// ParseOr parses name and falls back to def when name is empty.
func ParseOr(name string, def Level) (Level, error) {
	if strings.TrimSpace(name) == "" {
		return def, nil
	}
	return Parse(name)
}

// Allows reports whether a record at the given level passes threshold l.
// The NONE threshold suppresses everything, including ERROR.
func (l Level) Allows(record Level) bool {
	if l == NONE {
		return false
	}
	return l <= record
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
