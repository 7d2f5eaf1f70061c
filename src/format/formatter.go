// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format

import (
	"strconv"
	"time"
)

// LogDate renders t as "2006-01-02 15:04:05,000" in local time.
func LogDate(t time.Time) string {
	return t.Format("2006-01-02 15:04:05,000")
}

// DefaultFormatter renders "date LEVEL pid [padding] message".
func DefaultFormatter(m *Meta) string {
	padding := " "
	if m.PaddingMessage != "" {
		padding = " " + m.PaddingMessage + " "
	}
	return m.Date + " " + m.Level.String() + " " + strconv.Itoa(m.PID) + padding + m.Message
}

// ConsoleFormatter renders "date LEVEL pid message" for terminal output.
func ConsoleFormatter(m *Meta) string {
	return m.Date + " " + m.Level.String() + " " + strconv.Itoa(m.PID) + " " + m.Message
}

// ContextFormatter renders "date LEVEL pid padding message" and is meant
// for records carrying a request context.
func ContextFormatter(m *Meta) string {
	return m.Date + " " + m.Level.String() + " " + strconv.Itoa(m.PID) + " " + m.PaddingMessage + " " + m.Message
}
