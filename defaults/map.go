// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package defaults

import "fmt"

// Map is an ordinary map[string]any of nested default values. It
// implements both the Source and Store interfaces.
type Map map[string]any

// Apply implements the Source interface. It recursively walks the
// underlying map to find key value pairs to set on the given store.
func (m Map) Apply(store Store) error {
	return walkMap(m, store, nil)
}

func walkMap(m map[string]any, store Store, path []string) error {
	for k, v := range m {
		switch x := v.(type) {
		case map[string]any:
			err := walkMap(x, store, append(path, k))
			if err != nil {
				return err
			}
		default:
			err := store.Set(append(path, k), x)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// EmptyPathError occurs when a source tries to set a value with an empty
// key path.
type EmptyPathError struct {
	Value any
}

// Error implements the error interface.
func (e EmptyPathError) Error() string {
	return fmt.Sprintf("attempted to set value with an empty key path: %v", e.Value)
}

// KeyShadowError occurs when a source sets a nested key underneath a key
// which a previous source already set to a non-map value.
type KeyShadowError struct {
	Key string
}

// Error implements the error interface.
func (e KeyShadowError) Error() string {
	return fmt.Sprintf("key does not hold nested values: %s", e.Key)
}

// Set implements the Store interface.
func (m Map) Set(path []string, v any) error {
	if len(path) == 0 {
		return EmptyPathError{Value: v}
	}

	head := path[0]
	if len(path) == 1 {
		m[head] = v
		return nil
	}

	sub, ok := m[head]
	if !ok {
		sub = make(map[string]any)
		m[head] = sub
	}

	subM, ok := sub.(map[string]any)
	if !ok {
		return KeyShadowError{Key: head}
	}
	return Map(subM).Set(path[1:], v)
}
