// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package registry builds the set of loggers a process uses from one
// configuration.
//
// Every registry holds:
//
//   - errorLogger, writing ERROR records to ErrorLogName,
//   - logger, the application logger writing to AppLogName,
//   - coreLogger, the framework logger writing to CoreLogName,
//   - one logger per entry of CustomLoggers, in configuration order.
//
// When Type is "agent", logger and coreLogger are the same [logger.Logger]
// writing to AgentLogName.
//
// After all loggers exist, the ERROR traffic of every logger except the
// concentrate logger is wired to it according to the logger's
// ConcentrateError policy: "duplicate" (also written there, console
// excluded), "redirect" (written there instead) or "ignore".
package registry
