// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format

import (
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// UTF8 is the default text encoding name.
const UTF8 = "utf8"

// NormalizeEncoding lower-cases an encoding name and maps "utf-8" to [UTF8].
// An empty name yields [UTF8].
func NormalizeEncoding(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "utf-8", UTF8:
		return UTF8
	default:
		return name
	}
}

// IsUTF8 reports whether name refers to the default text encoding.
func IsUTF8(name string) bool {
	return NormalizeEncoding(name) == UTF8
}

// Encode converts s into the named encoding.
// Unknown encodings and characters that cannot be represented leave the
// UTF-8 bytes untouched.
func Encode(s, encoding string) []byte {
	if IsUTF8(encoding) {
		return []byte(s)
	}

	enc, err := htmlindex.Get(NormalizeEncoding(encoding))
	if err != nil {
		return []byte(s)
	}

	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}

// Supported reports whether the named encoding is known.
func Supported(encoding string) bool {
	if IsUTF8(encoding) {
		return true
	}
	_, err := htmlindex.Get(NormalizeEncoding(encoding))
	return err == nil
}
