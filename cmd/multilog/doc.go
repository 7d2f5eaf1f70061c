// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// multilog is a command-line tool for writing records through a logger
// registry and inspecting how that registry is wired.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/multilog/cmd/multilog@latest
//
// # Usage
//
//	multilog emit -c CONFIG [-l LOGGER] [--level LEVEL] [--raw] [--stdin] [--metrics] [MESSAGE...]
//	multilog inspect -c CONFIG
//
// # Flags
//
//	-c, --config   Registry configuration file (.json, .yaml, .yml) [required unless MULTILOG_CONFIG_FILE is set]
//	-l, --logger   Logger to write through (default: logger)
//	    --level    Record level: debug, info, warn, error (default: info)
//	    --raw      Write pre-formatted content, bypassing levels and formatters
//	    --stdin    Read one record per line from stdin
//	    --metrics  Print transport counters after writing
//
// # Environment
//
//	MULTILOG_CONFIG_FILE    configuration file when --config is not given
//	MULTILOG_ENV            "test" or "unittest" silences closed-stream diagnostics
//	MULTILOG_LEVEL          console level override, read when a console transport is created
//	MULTILOG_DIR            overrides dir
//	MULTILOG_TYPE           overrides type (application or agent)
//	MULTILOG_ENCODING       overrides encoding
//	MULTILOG_FILE_LEVEL     overrides level
//	MULTILOG_CONSOLE_LEVEL  overrides consoleLevel
//
// # Examples
//
// Write a record through the application logger:
//
//	multilog emit -c multilog.yaml "service started"
//
// Forward a process's output into the core logger:
//
//	./server 2>&1 | multilog emit -c multilog.yaml -l coreLogger --stdin
//
// Show loggers, transports and routing as markdown tables:
//
//	multilog inspect -c multilog.yaml
package main
