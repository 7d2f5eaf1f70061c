// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package transport

import "errors"

// ErrFileRequired is returned when a file transport is created without a path.
var ErrFileRequired = errors.New("transport: file path is required")
