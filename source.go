// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

import (
	"os"
	"unicode/utf8"
)

// Source represents a read-only set of environment variables, looked up
// by exact, case-sensitive name. Lookup reports the variable's text and
// whether it is present; a present variable whose value cannot be decoded
// as text is reported as an error instead.
type Source interface {
	Lookup(name string) (value string, ok bool, err error)
}

// Env represents a Source where its underlying values are extracted from
// environment variables.
type Env struct {
	lookup func(string) (string, bool)
}

// OSEnv returns a Source which reads the environment variables available
// to the current process. Values which are not valid UTF-8 are reported
// as a [NotUnicodeError].
func OSEnv() Env {
	return Env{
		lookup: os.LookupEnv,
	}
}

// Lookup implements the Source interface.
func (src Env) Lookup(name string) (string, bool, error) {
	v, ok := src.lookup(name)
	if !ok {
		return "", false, nil
	}
	if !utf8.ValidString(v) {
		return "", false, NotUnicodeError{Name: name, Raw: []byte(v)}
	}
	return v, true, nil
}

// Map is an ordinary map[string]string but implements the Source interface.
type Map map[string]string

// Lookup implements the Source interface.
func (m Map) Lookup(name string) (string, bool, error) {
	v, ok := m[name]
	return v, ok, nil
}
