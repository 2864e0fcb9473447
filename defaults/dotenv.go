// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package defaults

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/z5labs/envbind/internal/try"

	"github.com/joho/godotenv"
)

// Dotenv represents a Source where its underlying format is dotenv
// KEY=VALUE lines.
type Dotenv struct {
	r io.Reader
}

// FromDotenv returns a source which will apply its values from dotenv
// lines parsed from the given io.Reader. Keys containing dots are treated
// as nested key paths. The reader is closed after parsing if it
// implements io.Closer.
func FromDotenv(r io.Reader) Dotenv {
	return Dotenv{r: r}
}

// FromDotenvFile returns a source which will apply its values from the
// named dotenv file.
func FromDotenvFile(fsys fs.FS, path string) Dotenv {
	return FromDotenv(NewFileReader(fsys, path))
}

// InvalidDotenvError occurs if the underlying io.Reader contains
// malformed dotenv lines.
type InvalidDotenvError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidDotenvError) Error() string {
	return fmt.Sprintf("invalid dotenv: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidDotenvError) Unwrap() error {
	return e.cause
}

// Apply implements the Source interface.
func (src Dotenv) Apply(store Store) (err error) {
	defer try.Close(&err, src.r)

	env, err := godotenv.Parse(src.r)
	if err != nil {
		return InvalidDotenvError{cause: err}
	}

	for k, v := range env {
		err = store.Set(strings.Split(k, "."), v)
		if err != nil {
			return err
		}
	}
	return nil
}
