// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

// Kind identifies how a field descriptor participates in binding. The set
// of kinds is closed; each is produced by exactly one family of [Field]
// constructors.
type Kind uint8

const (
	// KindScalar binds a single variable into a concrete value.
	KindScalar Kind = iota

	// KindOptional rebuilds a field's presence from the current pass.
	KindOptional

	// KindNested recurses into a record with an extended prefix.
	KindNested

	// KindSequence probes indexed variables into an ordered container.
	KindSequence

	// KindNestedSequence probes indexed child prefixes into a container
	// of records.
	KindNestedSequence
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindOptional:
		return "optional"
	case KindNested:
		return "nested"
	case KindSequence:
		return "sequence"
	case KindNestedSequence:
		return "nested sequence"
	default:
		return "unknown"
	}
}

// Field describes a single record field to the composite binder: the
// variable fragment derived from the field's identifier, the binding kind
// and the kind specific bind behaviour. The fragment is treated as an
// opaque string; formatting a field identifier into a fragment is the
// caller's concern.
type Field struct {
	name   string
	kind   Kind
	ignore bool

	// bind receives the caller's prefix already concatenated with the
	// field fragment. Kind specific separators and indices are appended
	// by the closure itself.
	bind func(src Source, name string) (bool, error)
}

// Name returns the variable fragment the field binds under.
func (f Field) Name() string {
	return f.name
}

// Kind returns the field's binding kind.
func (f Field) Kind() Kind {
	return f.kind
}

// Ignore returns a copy of f which is excluded from traversal entirely.
func Ignore(f Field) Field {
	f.ignore = true
	return f
}

// Schema is the field descriptor table for a composite record. It
// implements [Binder]. Binding results do not depend on the declared
// field order unless two descriptors resolve the same variable name.
type Schema []Field

// Bind implements the Binder interface. Fields are visited in a single
// pass; the found flags of all fields are OR'd together and the first
// error aborts the pass immediately, leaving earlier mutations in place.
func (s Schema) Bind(src Source, prefix string) (bool, error) {
	found := false
	for _, f := range s {
		if f.ignore {
			continue
		}
		ok, err := f.bind(src, prefix+f.name)
		if err != nil {
			return false, err
		}
		found = found || ok
	}
	return found, nil
}

// Nested binds a record valued field. Both child prefix notations are
// attempted, colon form first: NAME:REST and NAME__REST. A caller may mix
// notations across nesting levels, so the second notation is attempted
// even when the first one found a match; if both resolve the same leaf
// the underscore value wins.
func Nested(name string, b Binder) Field {
	return Field{
		name: name,
		kind: KindNested,
		bind: func(src Source, name string) (bool, error) {
			return bindNested(src, b, name)
		},
	}
}

func bindNested(src Source, b Binder, name string) (bool, error) {
	colonFound, err := b.Bind(src, name+colonSep)
	if err != nil {
		return false, err
	}
	underFound, err := b.Bind(src, name+underscoreSep)
	if err != nil {
		return false, err
	}
	return colonFound || underFound, nil
}

// NestedPtr binds an optional record valued field. Presence reflects only
// the current pass: the record is rebuilt from its zero value and attached
// when any of its variables were found, and the field is cleared to nil
// otherwise. On error the field is left untouched.
func NestedPtr[T any, PT interface {
	Binder
	*T
}](name string, p **T) Field {
	return Field{
		name: name,
		kind: KindOptional,
		bind: func(src Source, name string) (bool, error) {
			var fresh T
			found, err := bindNested(src, PT(&fresh), name)
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
