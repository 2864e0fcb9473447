// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

// Binder is implemented by composite records which can overwrite their
// fields from environment variables beneath the given prefix. Bind reports
// whether at least one variable was consulted successfully. Implementations
// usually delegate to a [Schema] describing their fields.
type Binder interface {
	Bind(src Source, prefix string) (bool, error)
}

// BinderFunc is a functional implementation of the Binder interface.
type BinderFunc func(Source, string) (bool, error)

// Bind implements the Binder interface.
func (f BinderFunc) Bind(src Source, prefix string) (bool, error) {
	return f(src, prefix)
}

// Prefixer is an optional interface a record can implement to supply the
// default variable prefix used by [Bind] when no [WithPrefix] option is
// given.
type Prefixer interface {
	EnvPrefix() string
}

// Prefix separators for the two nested naming notations. Nested records
// and sequence elements accept both; see the package documentation for
// the full naming convention.
const (
	colonSep      = ":"
	underscoreSep = "__"
)

// Option configures Bind.
type Option func(*options)

type options struct {
	src       Source
	prefix    string
	hasPrefix bool
}

// WithSource overrides the [Source] consulted while binding. It defaults
// to the process environment.
func WithSource(src Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithPrefix overrides the variable prefix used while binding. It defaults
// to the record's [Prefixer] prefix, if implemented, and the empty prefix
// otherwise.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
		o.hasPrefix = true
	}
}

// Bind overwrites b's fields from the process environment and reports
// whether any variable was consulted successfully. Fields whose variables
// are absent keep their current values. The first decode failure aborts
// binding and is returned verbatim, with mutations performed before the
// failure left in place.
func Bind(b Binder, opts ...Option) (bool, error) {
	o := options{
		src: OSEnv(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasPrefix {
		if p, ok := b.(Prefixer); ok {
			o.prefix = p.EnvPrefix()
		}
	}
	return b.Bind(o.src, o.prefix)
}

// BindWithPrefix overwrites b's fields from the process environment using
// an explicit variable prefix instead of the record's default.
func BindWithPrefix(b Binder, prefix string) (bool, error) {
	return Bind(b, WithPrefix(prefix))
}
