// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package envbind overwrites the fields of hierarchical configuration
// records from process environment variables.
//
// A record describes its fields with a [Schema], a table of [Field]
// descriptors built from the constructors in this package. Binding walks
// the table, looks each variable up by exact name and overwrites the
// field when the variable is present, leaving absent fields untouched.
// This makes it easy to layer environment based overrides on top of
// programmatically constructed defaults:
//
//	type Config struct {
//	    Name string
//	    Port uint16
//	}
//
//	func (c *Config) Bind(src envbind.Source, prefix string) (bool, error) {
//	    return envbind.Schema{
//	        envbind.String("NAME", &c.Name),
//	        envbind.Uint("PORT", &c.Port),
//	    }.Bind(src, prefix)
//	}
//
//	cfg := Config{Name: "default", Port: 8080}
//	found, err := envbind.Bind(&cfg, envbind.WithPrefix("MY_APP_"))
//
// # Naming convention
//
// Scalar and optional fields bind the variable named by the prefix plus
// the field fragment, e.g. MY_APP_PORT. Nested records accept two child
// prefix notations, colon and double underscore, and both are always
// attempted:
//
//	MY_APP_SUB:PORT
//	MY_APP_SUB__PORT
//
// Sequences have no declared length; it is discovered by probing indices
// from zero until one matches neither notation:
//
//	MY_APP_ITEM:0   or  MY_APP_ITEM__0
//	MY_APP_SUB:0:PORT  or  MY_APP_SUB__0__PORT
//
// A gap in the indices truncates the sequence at the gap.
//
// # Outcomes
//
// Every bind reports whether at least one variable was consulted
// successfully. The first decode failure aborts the whole pass and is
// returned verbatim as a [ParseError] or [NotUnicodeError] naming the
// failing variable; mutations performed before the failure are not
// rolled back.
package envbind
