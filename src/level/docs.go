// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package level defines the fixed set of log severities and their ordering.
//
// A transport emits a record when its threshold allows the record's level:
//
//	level.INFO.Allows(level.WARN)  // true
//	level.NONE.Allows(level.ERROR) // false, NONE switches the transport off
package level
