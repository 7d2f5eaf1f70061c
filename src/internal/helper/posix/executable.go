// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// FallbackName is returned when the executable name cannot be determined.
const FallbackName = "multilog"

// GetExecutableName returns the executable name without directory or .exe
// extension. Both '/' and '\' count as separators regardless of the host OS,
// so a Windows path still yields a clean name on Unix.
//
// Returns:
//   - string: Clean executable name suitable for CLI usage
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return FallbackName
	}
	return executableName(os.Args[0])
}

func executableName(arg0 string) string {
	name := strings.TrimRight(arg0, `/\`)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	name = strings.TrimSuffix(name, ".exe")
	if name == "" || name == "." {
		return FallbackName
	}
	return name
}
