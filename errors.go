// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

import "fmt"

// NotUnicodeError occurs when an environment variable is present but its
// raw value is not valid UTF-8 text.
type NotUnicodeError struct {
	// Name is the environment variable the value was read from.
	Name string

	// Raw holds the undecodable value bytes.
	Raw []byte
}

// Error implements the error interface.
func (e NotUnicodeError) Error() string {
	return fmt.Sprintf("%s: value is not valid UTF-8 text", e.Name)
}

// ParseError occurs when an environment variable's text fails to decode
// into its field's type.
type ParseError struct {
	// Name is the environment variable whose text failed to decode.
	Name string

	// Cause is the decoder's error.
	Cause error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ParseError) Unwrap() error {
	return e.Cause
}
