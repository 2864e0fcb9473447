// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package defaults reads and merges the default configuration values that
// environment binding is layered on top of.
//
// Sources apply themselves to a nested key value store; later sources
// override earlier ones. The merged values are then unmarshalled into a
// record via the "config" struct tag:
//
//	m, err := defaults.Read(
//	    defaults.FromYaml(strings.NewReader("http:\n  port: 8080")),
//	    defaults.FromDotenv(strings.NewReader("http.host=localhost")),
//	)
//	if err != nil {
//	    return err
//	}
//
//	var cfg struct {
//	    Http struct {
//	        Host string `config:"host"`
//	        Port uint16 `config:"port"`
//	    } `config:"http"`
//	}
//	err = m.Unmarshal(&cfg)
package defaults

import (
	"github.com/go-viper/mapstructure/v2"
)

// Store represents the nested key value structure sources apply their
// values to. The path holds one key per nesting level.
type Store interface {
	Set(path []string, v any) error
}

// Source defines valid default value sources as those who can serialize
// themselves into a key value like structure.
type Source interface {
	Apply(Store) error
}

// Manager holds the default values merged from one or more sources.
type Manager struct {
	store Map
}

// Read merges the given sources. Subsequent sources override previous
// sources.
func Read(srcs ...Source) (*Manager, error) {
	store := make(Map)
	for _, src := range srcs {
		err := src.Apply(store)
		if err != nil {
			return nil, err
		}
	}
	return &Manager{store: store}, nil
}

// Unmarshal decodes the merged values into v using the "config" struct
// tag. String values decode into encoding.TextUnmarshaler implementations
// and time.Duration fields.
func (m *Manager) Unmarshal(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "config",
		Result:  v,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(m.store))
}
