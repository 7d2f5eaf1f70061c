// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package format turns a log call into the bytes a transport writes.
//
// The single entry point is [Format]. It receives the record level, the raw
// call arguments, optional per-record [Meta] and the transport [Options], and
// returns one encoded line terminated by the configured end-of-line marker.
// An empty result means there is nothing to write.
//
// Process-wide facts such as the pid and hostname are carried by an explicit
// [Process] value rather than read from globals at format time, which keeps
// the output deterministic in tests:
//
//	proc := &format.Process{PID: 42, Hostname: "box", Now: fixedClock}
//	line := format.Format(level.INFO, []any{"hello"}, nil, format.Options{
//		Formatter: format.DefaultFormatter,
//		EOL:       "\n",
//		Encoding:  format.UTF8,
//		Process:   proc,
//	})
package format
