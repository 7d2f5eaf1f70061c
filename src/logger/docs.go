// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger fans leveled log calls out to named transports.
//
// A [Logger] owns a set of [transport.Transport] values keyed by name. Every
// call to [Logger.Log] is written to each enabled transport whose threshold
// admits the level. Two routing rules connect loggers per level:
//
//   - Redirect sends the level to another logger instead of the local transports.
//   - Duplicate sends the level to another logger's transports as well, minus
//     an exclusion list.
//
// Routing references are not owning: closing a logger never closes the
// loggers it routes to. Routing cycles (A redirects to B, B redirects to A)
// recurse without bound and are a configuration error.
//
// On top of the core type the package provides the common shapes:
// [NewStandard] (file, optional JSON file and console), [NewError] (file
// clamped to ERROR and above), [NewConsole] (console with an optional error
// file) and [ContextLogger] (request padding for each record).
package logger
