// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema(t *testing.T) {
	t.Run("will leave the record unchanged", func(t *testing.T) {
		t.Run("if the environment contains none of its variables", func(t *testing.T) {
			cfg := testConfig{
				Name: "default",
				Sub:  subConfig{Port: 8080},
			}

			found, err := cfg.Bind(Map{"UNRELATED": "42"}, "PRE_")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.False(t, found) {
				return
			}
			if !assert.Equal(t, "default", cfg.Name) {
				return
			}
			if !assert.Equal(t, uint16(8080), cfg.Sub.Port) {
				return
			}
		})
	})

	t.Run("will overwrite a scalar field", func(t *testing.T) {
		t.Run("if its variable is present", func(t *testing.T) {
			var cfg testConfig
			found, err := cfg.Bind(Map{"PRE_NAME": "alice"}, "PRE_")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, found) {
				return
			}
			if !assert.Equal(t, "alice", cfg.Name) {
				return
			}
		})
	})

	t.Run("will skip a field", func(t *testing.T) {
		t.Run("if its descriptor is marked ignored", func(t *testing.T) {
			src := &recordingSource{src: Map{"PRE_IGNORED": "42"}}

			var cfg testConfig
			found, err := cfg.Bind(src, "PRE_")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.False(t, found) {
				return
			}
			if !assert.Zero(t, cfg.Ignored) {
				return
			}
			if !assert.NotContains(t, src.lookups, "PRE_IGNORED") {
				return
			}
		})
	})

	t.Run("will not depend on declared field order", func(t *testing.T) {
		t.Run("if the descriptors target distinct variables", func(t *testing.T) {
			src := Map{
				"PRE_NAME":     "alice",
				"PRE_SUB:PORT": "9000",
			}

			var name string
			var sub subConfig
			forward := Schema{
				String("NAME", &name),
				Nested("SUB", &sub),
			}
			found, err := forward.Bind(src, "PRE_")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, found) {
				return
			}

			var name2 string
			var sub2 subConfig
			reversed := Schema{
				Nested("SUB", &sub2),
				String("NAME", &name2),
			}
			found, err = reversed.Bind(src, "PRE_")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, found) {
				return
			}
			if !assert.Equal(t, name, name2) {
				return
			}
			if !assert.Equal(t, sub, sub2) {
				return
			}
		})
	})
}

func TestNested(t *testing.T) {
	t.Run("will bind the child record", func(t *testing.T) {
		t.Run("if the colon notation is used", func(t *testing.T) {
			var cfg testConfig
			found, err := cfg.Bind(Map{"PRE_SUB:PORT": "9000"}, "PRE_")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, found) {
				return
			}
			if !assert.Equal(t, uint16(9000), cfg.Sub.Port) {
				return
			}
		})

		t.Run("if the underscore notation is used", func(t *testing.T) {
			var cfg testConfig
			found, err := cfg.Bind(Map{"PRE_SUB__PORT": "9000"}, "PRE_")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, found) {
				return
			}
			if !assert.Equal(t, uint16(9000), cfg.Sub.Port) {
				return
			}
		})
	})

	t.Run("will apply the underscore notation last", func(t *testing.T) {
		t.Run("if both notations target the same leaf", func(t *testing.T) {
			var cfg testConfig
			found, err := cfg.Bind(Map{
				"PRE_SUB:PORT":  "1000",
				"PRE_SUB__PORT": "2000",
			}, "PRE_")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, found) {
				return
			}
			if !assert.Equal(t, uint16(2000), cfg.Sub.Port) {
				return
			}
		})
	})

	t.Run("will abort immediately", func(t *testing.T) {
		t.Run("if the colon notation fails to decode", func(t *testing.T) {
			var cfg testConfig
			_, err := cfg.Bind(Map{"PRE_SUB:PORT": "notanumber"}, "PRE_")

			var perr ParseError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
			if !assert.Equal(t, "PRE_SUB:PORT", perr.Name) {
				return
			}
		})
	})
}

func TestPtr(t *testing.T) {
	t.Run("will make the field present", func(t *testing.T) {
		t.Run("if its variable is present and decodes", func(t *testing.T) {
			var cfg testConfig
			found, err := cfg.Bind(Map{"PRE_OPT_NAME": "opt"}, "PRE_")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, found) {
				return
			}
			if !assert.NotNil(t, cfg.OptName) {
				return
			}
			if !assert.Equal(t, "opt", *cfg.OptName) {
				return
			}
		})
	})

	t.Run("will clear the field", func(t *testing.T) {
		t.Run("if it was present before but its variable is absent now", func(t *testing.T) {
			prior := "stale"
			cfg := testConfig{OptName: &prior}

			found, err := cfg.Bind(Map{}, "PRE_")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.False(t, found) {
				return
			}
			if !assert.Nil(t, cfg.OptName) {
				return
			}
		})
	})
}

func TestNestedPtr(t *testing.T) {
	t.Run("will attach a freshly bound record", func(t *testing.T) {
		t.Run("if any of its variables are present", func(t *testing.T) {
			var cfg testConfig
			found, err := cfg.Bind(Map{"PRE_OPT_SUB__PORT": "7000"}, "PRE_")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, found) {
				return
			}
			if !assert.NotNil(t, cfg.OptSub) {
				return
			}
			if !assert.Equal(t, uint16(7000), cfg.OptSub.Port) {
				return
			}
		})
	})

	t.Run("will clear the field", func(t *testing.T) {
		t.Run("if none of its variables are present", func(t *testing.T) {
			cfg := testConfig{OptSub: &subConfig{Port: 1}}
			found, err := cfg.Bind(Map{}, "PRE_")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.False(t, found) {
				return
			}
			if !assert.Nil(t, cfg.OptSub) {
				return
			}
		})
	})

	t.Run("will leave the field untouched", func(t *testing.T) {
		t.Run("if the inner bind fails", func(t *testing.T) {
			cfg := testConfig{OptSub: &subConfig{Port: 1}}
			_, err := cfg.Bind(Map{"PRE_OPT_SUB:PORT": "notanumber"}, "PRE_")

			var perr ParseError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
			if !assert.NotNil(t, cfg.OptSub) {
				return
			}
			if !assert.Equal(t, uint16(1), cfg.OptSub.Port) {
				return
			}
		})
	})
}

func TestKind(t *testing.T) {
	t.Run("will report the constructor's kind", func(t *testing.T) {
		var (
			s   string
			p   *string
			sub subConfig
			ns  []subConfig
			xs  []uint32
		)

		cases := []struct {
			field Field
			kind  Kind
			str   string
		}{
			{String("A", &s), KindScalar, "scalar"},
			{Ptr("B", &p, ParseString), KindOptional, "optional"},
			{NestedPtr[subConfig]("C", new(*subConfig)), KindOptional, "optional"},
			{Nested("D", &sub), KindNested, "nested"},
			{Slice("E", &xs, ParseUint[uint32]), KindSequence, "sequence"},
			{NestedSlice[subConfig]("F", &ns), KindNestedSequence, "nested sequence"},
		}
		for _, c := range cases {
			if !assert.Equal(t, c.kind, c.field.Kind(), c.field.Name()) {
				return
			}
			if !assert.Equal(t, c.str, c.field.Kind().String(), c.field.Name()) {
				return
			}
		}
	})
}
