// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

import (
	"encoding"
	"reflect"
	"strconv"
	"time"
)

// ParseFunc decodes the text of a single environment variable into a
// concrete value.
type ParseFunc[T any] func(string) (T, error)

// Var binds a scalar field using the given decoder. An absent variable
// leaves the current value untouched; a present variable is looked up
// once and parsed once, and a decode failure aborts the pass with a
// [ParseError] naming the variable.
func Var[T any](name string, p *T, parse ParseFunc[T]) Field {
	return Field{
		name: name,
		kind: KindScalar,
		bind: func(src Source, name string) (bool, error) {
			return bindScalar(src, name, p, parse)
		},
	}
}

func bindScalar[T any](src Source, name string, p *T, parse ParseFunc[T]) (bool, error) {
	raw, ok, err := src.Lookup(name)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	v, err := parse(raw)
	if err != nil {
		return false, ParseError{Name: name, Cause: err}
	}
	*p = v
	return true, nil
}

// Ptr binds an optional scalar field. Presence reflects only the current
// pass: the field points at a freshly decoded value when the variable is
// present, and is cleared to nil when it is absent, regardless of any
// prior presence. On error the field is left untouched.
func Ptr[T any](name string, p **T, parse ParseFunc[T]) Field {
	return Field{
		name: name,
		kind: KindOptional,
		bind: func(src Source, name string) (bool, error) {
			var fresh T
			found, err := bindScalar(src, name, &fresh, parse)
			if err != nil {
				return false, err
			}
			if !found {
				*p = nil
				return false, nil
			}
			*p = &fresh
			return true, nil
		},
	}
}

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type float interface {
	~float32 | ~float64
}

// ParseString decodes text as-is.
func ParseString(s string) (string, error) {
	return s, nil
}

// ParseBool decodes the boolean syntax accepted by strconv.ParseBool.
func ParseBool(s string) (bool, error) {
	return strconv.ParseBool(s)
}

// ParseInt decodes a base-10 signed integer sized to fit T.
func ParseInt[T signed](s string) (T, error) {
	n, err := strconv.ParseInt(s, 10, reflect.TypeOf(T(0)).Bits())
	return T(n), err
}

// ParseUint decodes a base-10 unsigned integer sized to fit T.
func ParseUint[T unsigned](s string) (T, error) {
	n, err := strconv.ParseUint(s, 10, reflect.TypeOf(T(0)).Bits())
	return T(n), err
}

// ParseFloat decodes a floating point number sized to fit T.
func ParseFloat[T float](s string) (T, error) {
	n, err := strconv.ParseFloat(s, reflect.TypeOf(T(0)).Bits())
	return T(n), err
}

// ParseDuration decodes the duration syntax accepted by time.ParseDuration.
func ParseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}

// String binds a UTF-8 text field.
func String(name string, p *string) Field {
	return Var(name, p, ParseString)
}

// Path binds a filesystem path field. The path text is stored verbatim,
// without cleaning or resolution.
func Path(name string, p *string) Field {
	return Var(name, p, ParseString)
}

// Bool binds a boolean field.
func Bool(name string, p *bool) Field {
	return Var(name, p, ParseBool)
}

// Int binds a fixed width signed integer field.
func Int[T signed](name string, p *T) Field {
	return Var(name, p, ParseInt[T])
}

// Uint binds a fixed width unsigned integer field.
func Uint[T unsigned](name string, p *T) Field {
	return Var(name, p, ParseUint[T])
}

// Float binds a floating point field.
func Float[T float](name string, p *T) Field {
	return Var(name, p, ParseFloat[T])
}

// Duration binds a time.Duration field.
func Duration(name string, p *time.Duration) Field {
	return Var(name, p, ParseDuration)
}

// Text binds any field whose type implements encoding.TextUnmarshaler.
// The unmarshaler decodes in place, so a failing unmarshal may leave the
// value partially written before the pass aborts.
func Text(name string, u encoding.TextUnmarshaler) Field {
	return Field{
		name: name,
		kind: KindScalar,
		bind: func(src Source, name string) (bool, error) {
			raw, ok, err := src.Lookup(name)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
			err = u.UnmarshalText([]byte(raw))
			if err != nil {
				return false, ParseError{Name: name, Cause: err}
			}
			return true, nil
		},
	}
}
