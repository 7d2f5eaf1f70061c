// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface of multilog.
// It implements a Cobra-based CLI with two commands: emit writes records
// through a registry built from a configuration file, and inspect prints
// the loggers, transports and routing rules of that registry as markdown
// tables.
package cli
