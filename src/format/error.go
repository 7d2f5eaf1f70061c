// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format

import (
	"errors"
	"fmt"
	"strings"
)

const defaultMaxCauseChainLength = 10

// FormatError renders err with its type, message and wrapped causes,
// followed by the pid and hostname of the process.
func FormatError(err error, proc *Process, maxCauses int) string {
	if proc == nil {
		proc = DefaultProcess()
	}
	if maxCauses <= 0 {
		maxCauses = defaultMaxCauseChainLength
	}

	var b strings.Builder
	writeError(&b, err, maxCauses, 0)
	fmt.Fprintf(&b, "\npid: %d\nhostname: %s\n", proc.PID, proc.Hostname)
	return b.String()
}

func writeError(b *strings.Builder, err error, maxCauses, depth int) {
	if depth > maxCauses {
		b.WriteString("too long cause chain")
		return
	}

	fmt.Fprintf(b, "%s: %s", errorName(err), err.Error())

	if cause := errors.Unwrap(err); cause != nil {
		b.WriteString("\ncause:\n\n")
		writeError(b, cause, maxCauses, depth+1)
	}
}

// errorName returns the dynamic type of err without the pointer marker,
// e.g. "errors.errorString" or "fs.PathError".
func errorName(err error) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
}
