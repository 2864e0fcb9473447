// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"os"

	"github.com/z5labs/envbind"
	"github.com/z5labs/envbind/defaults"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

type Config struct {
	Name    string            `config:"name"`
	Charset encoding.Encoding `config:"-"`
	Http    HttpConfig        `config:"http"`
	Tags    []string          `config:"tags"`
	Peers   []HttpConfig      `config:"peers"`
	Debug   *bool             `config:"-"`
}

func (c *Config) Bind(src envbind.Source, prefix string) (bool, error) {
	return envbind.Schema{
		envbind.String("NAME", &c.Name),
		envbind.Encoding("CHARSET", &c.Charset),
		envbind.Nested("HTTP", &c.Http),
		envbind.Slice("TAG", &c.Tags, envbind.ParseString),
		envbind.NestedSlice[HttpConfig]("PEER", &c.Peers),
		envbind.Ptr("DEBUG", &c.Debug, envbind.ParseBool),
	}.Bind(src, prefix)
}

func (c *Config) EnvPrefix() string {
	return "LAYERED_"
}

type HttpConfig struct {
	Host string `config:"host"`
	Port uint16 `config:"port"`
}

func (c *HttpConfig) Bind(src envbind.Source, prefix string) (bool, error) {
	return envbind.Schema{
		envbind.String("HOST", &c.Host),
		envbind.Uint("PORT", &c.Port),
	}.Bind(src, prefix)
}

// Try it with e.g.:
//
//	LAYERED_HTTP__PORT=9000 LAYERED_TAG__0=alpha LAYERED_DEBUG=true go run .
func main() {
	cfg, err := envbind.Load[Config](
		defaults.FromYamlFile(os.DirFS("."), "config.yaml"),
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if cfg.Charset == nil {
		cfg.Charset = unicode.UTF8
	}

	fmt.Printf("%+v\n", *cfg)
}
