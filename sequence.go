// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

import "strconv"

// indexer builds indexed variable names. It reuses one scratch buffer
// across probe iterations so each candidate name costs a single
// allocation instead of one per concatenation.
type indexer struct {
	buf []byte
}

func (x *indexer) name(base, sep string, i int) string {
	x.buf = append(x.buf[:0], base...)
	x.buf = append(x.buf, sep...)
	x.buf = strconv.AppendInt(x.buf, int64(i), 10)
	return string(x.buf)
}

// Slice binds a sequence of scalars. The sequence has no declared length;
// it is discovered by probing indices from zero, attempting the colon form
// NAME:i and then the underscore form NAME__i for each. The first index
// matching neither form ends the sequence, so a gap in the indices
// truncates it. When at least one element is found the field is replaced
// with the freshly decoded elements; otherwise it is left untouched. A
// decode failure at any index aborts the whole pass, keeping the elements
// decoded before it.
func Slice[T any](name string, p *[]T, parse ParseFunc[T]) Field {
	return Field{
		name: name,
		kind: KindSequence,
		bind: func(src Source, base string) (bool, error) {
			var out []T
			var idx indexer
			for i := 0; ; i++ {
				var v T
				found, err := bindScalar(src, idx.name(base, colonSep, i), &v, parse)
				if err != nil {
					return false, keepPartial(p, out, err)
				}
				if !found {
					found, err = bindScalar(src, idx.name(base, underscoreSep, i), &v, parse)
					if err != nil {
						return false, keepPartial(p, out, err)
					}
				}
				if !found {
					break
				}
				out = append(out, v)
			}
			if len(out) == 0 {
				return false, nil
			}
			*p = out
			return true, nil
		},
	}
}

// NestedSlice binds a sequence of records. For each index a zero element
// is speculatively appended and bound at the child prefix NAME:i:, then at
// NAME__i__ when the colon form found nothing. An element matching neither
// form is rolled back and ends the sequence, so no stray empty trailing
// element is retained. A failing element is left attached when its bind
// errors.
func NestedSlice[T any, PT interface {
	Binder
	*T
}](name string, p *[]T) Field {
	return Field{
		name: name,
		kind: KindNestedSequence,
		bind: func(src Source, base string) (bool, error) {
			var out []T
			var idx indexer
			for i := 0; ; i++ {
				var elem T
				out = append(out, elem)
				pe := PT(&out[len(out)-1])

				found, err := pe.Bind(src, idx.name(base, colonSep, i)+colonSep)
				if err != nil {
					return false, keepPartial(p, out, err)
				}
				if !found {
					found, err = pe.Bind(src, idx.name(base, underscoreSep, i)+underscoreSep)
					if err != nil {
						return false, keepPartial(p, out, err)
					}
				}
				if !found {
					out = out[:len(out)-1]
					break
				}
			}
			if len(out) == 0 {
				return false, nil
			}
			*p = out
			return true, nil
		},
	}
}

// keepPartial applies the elements decoded before a failure, honoring the
// no-undo-on-failure rule without disturbing the field when nothing had
// been decoded yet.
func keepPartial[T any](p *[]T, out []T, err error) error {
	if len(out) > 0 {
		*p = out
	}
	return err
}
