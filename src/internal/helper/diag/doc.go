// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package diag provides the side channel used to report failures of the
// logging pipeline itself, such as a file stream that failed to write and
// was reopened, or a record dropped because its transport was closed.
//
// Diagnostics never flow back into the loggers that produced them, so a
// broken transport cannot make the host application fail.
package diag
