// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//
// The CLI uses it as the cobra Use line so that help and examples show the
// name the binary was actually invoked as:
//
//	rootCmd := &cobra.Command{
//	    Use:   posix.GetExecutableName(),
//	    Short: "Multi-transport structured logger",
//	}
//
// Cross-Platform Behavior:
//
//   - Linux/macOS: "/usr/local/bin/multilog" → "multilog"
//   - Windows: "C:\bin\multilog.exe" → "multilog"
//   - Fallback: Empty args → "multilog"
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
