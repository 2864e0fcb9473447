// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package defaults

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"

	"github.com/z5labs/envbind/internal/try"
)

// Json represents a Source where its underlying format is JSON.
type Json struct {
	r io.Reader
}

// FromJson returns a source which will apply its values from JSON parsed
// from the given io.Reader. The reader is closed after parsing if it
// implements io.Closer.
func FromJson(r io.Reader) Json {
	return Json{r: r}
}

// FromJsonFile returns a source which will apply its values from the
// named JSON file.
func FromJsonFile(fsys fs.FS, path string) Json {
	return FromJson(NewFileReader(fsys, path))
}

// InvalidJsonError occurs if the underlying io.Reader contains invalid JSON.
type InvalidJsonError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidJsonError) Error() string {
	return fmt.Sprintf("invalid json: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidJsonError) Unwrap() error {
	return e.cause
}

// Apply implements the Source interface.
func (src Json) Apply(store Store) (err error) {
	defer try.Close(&err, src.r)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return err
	}

	m := make(map[string]any)
	err = json.Unmarshal(b, &m)
	if err != nil {
		return InvalidJsonError{cause: err}
	}
	return Map(m).Apply(store)
}
