// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

import (
	"fmt"

	"github.com/z5labs/envbind/defaults"
)

// DefaultsReadError occurs when one of the default value sources fails
// to apply itself.
type DefaultsReadError struct {
	Cause error
}

// Error implements the error interface.
func (e DefaultsReadError) Error() string {
	return fmt.Sprintf("failed to read default values: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e DefaultsReadError) Unwrap() error {
	return e.Cause
}

// DefaultsUnmarshalError occurs when the merged default values fail to
// unmarshal into the record type.
type DefaultsUnmarshalError struct {
	Cause error
}

// Error implements the error interface.
func (e DefaultsUnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal default values: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e DefaultsUnmarshalError) Unwrap() error {
	return e.Cause
}

// Load constructs a record by reading default values from the given
// sources and then binding environment variables on top. Later sources
// override earlier ones and the environment always wins. Binder errors
// are returned verbatim.
func Load[T any, PT interface {
	Binder
	*T
}](srcs ...defaults.Source) (*T, error) {
	m, err := defaults.Read(srcs...)
	if err != nil {
		return nil, DefaultsReadError{Cause: err}
	}

	var cfg T
	err = m.Unmarshal(&cfg)
	if err != nil {
		return nil, DefaultsUnmarshalError{Cause: err}
	}

	_, err = Bind(PT(&cfg))
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// New constructs a record purely from the environment, starting from the
// type's zero value.
func New[T any, PT interface {
	Binder
	*T
}]() (*T, error) {
	return Load[T, PT]()
}
