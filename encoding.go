// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// UnrecognizedEncodingError occurs when an environment variable's value
// is not a known text encoding label.
type UnrecognizedEncodingError struct {
	// Label is the unrecognized encoding label.
	Label string
}

// Error implements the error interface.
func (e UnrecognizedEncodingError) Error() string {
	return fmt.Sprintf("unrecognized encoding: %q", e.Label)
}

// ParseEncoding resolves a WHATWG encoding label, e.g. "utf-8" or
// "windows-1252", to its canonical encoding.
func ParseEncoding(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, UnrecognizedEncodingError{Label: label}
	}
	return enc, nil
}

// Encoding binds a text encoding field from a WHATWG encoding label.
func Encoding(name string, p *encoding.Encoding) Field {
	return Var(name, p, ParseEncoding)
}
