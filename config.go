// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cascade

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/nil-go/cascade/internal/credential"
	"github.com/nil-go/cascade/internal/maps"
)

// Source is a parsed configuration source.
//
// Name is the base name the cascade refers to, e.g. `production-web`
// for the file production-web.yaml.
type Source struct {
	Name   string
	Values map[string]any
}

func (s Source) String() string {
	return s.Name
}

// Config is the merged configuration. It is read-only:
// every accessor returns a copy of the underlying values.
//
// To create a new Config, call [Merge] or [Load].
type Config struct {
	delimiter  string
	tagName    string
	decodeHook mapstructure.DecodeHookFunc

	values  map[string]any
	sources []Source
}

// Merge deep merges the sources into a Config.
// Each source takes precedence over the sources before it:
// maps are merged recursively, any other value is replaced.
func Merge(sources ...Source) *Config {
	return apply(nil).merge(sources)
}

func (c Config) merge(sources []Source) *Config {
	config := c
	config.values = make(map[string]any)
	config.sources = make([]Source, 0, len(sources))
	for _, source := range sources {
		// Normalize takes a copy so later changes of the source do not leak in.
		values, ok := maps.Normalize(source.Values).(map[string]any)
		if !ok {
			values = make(map[string]any)
		}
		maps.Merge(config.values, values)
		config.sources = append(config.sources, Source{Name: source.Name, Values: values})
	}

	return &config
}

// Get returns a copy of the value under the given path, or nil if not exist.
func (c *Config) Get(path string) any {
	if c == nil {
		return nil
	}

	return maps.Clone(maps.Sub(c.values, c.split(path)))
}

// Has reports whether a value exists under the given path.
func (c *Config) Has(path string) bool {
	if c == nil {
		return false
	}

	return maps.Sub(c.values, c.split(path)) != nil
}

// Map returns a copy of all values.
func (c *Config) Map() map[string]any {
	if c == nil {
		return map[string]any{}
	}

	values, _ := maps.Clone(c.values).(map[string]any)

	return values
}

// Sources returns the names of the merged sources, in merge order.
func (c *Config) Sources() []string {
	if c == nil {
		return nil
	}

	names := make([]string, 0, len(c.sources))
	for _, source := range c.sources {
		names = append(names, source.Name)
	}

	return names
}

// Unmarshal reads configuration under the given path
// and decodes it into the given object pointed to by target.
func (c *Config) Unmarshal(path string, target any) error {
	if c == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:           target,
			WeaklyTypedInput: true,
			DecodeHook:       c.decodeHook,
			TagName:          c.tagName,
		},
	)
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}

	if err := decoder.Decode(c.Get(path)); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

func (c *Config) split(path string) []string {
	return strings.Split(path, c.separator())
}

func (c *Config) separator() string {
	if c.delimiter == "" {
		return "."
	}

	return c.delimiter
}

// Explain provides information about how Config resolve each value
// from sources for the given path. It blur sensitive information.
func (c *Config) Explain(path string) string {
	if c == nil {
		return path + " has no configuration.\n\n"
	}

	explanation := &strings.Builder{}
	c.explain(explanation, path, maps.Sub(c.values, c.split(path)))

	return explanation.String()
}

func (c *Config) explain(explanation *strings.Builder, path string, value any) {
	if values, ok := value.(map[string]any); ok {
		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		for _, key := range keys {
			sub := key
			if path != "" {
				sub = path + c.separator() + key
			}
			c.explain(explanation, sub, values[key])
		}

		return
	}

	type sourceValue struct {
		source string
		value  any
	}
	var sources []sourceValue
	for _, source := range c.sources {
		if v := maps.Sub(source.Values, c.split(path)); v != nil {
			sources = append(sources, sourceValue{source.Name, v})
		}
	}
	slices.Reverse(sources)

	if len(sources) == 0 {
		explanation.WriteString(path)
		explanation.WriteString(" has no configuration.\n\n")

		return
	}
	explanation.WriteString(path)
	explanation.WriteString(" has value[")
	explanation.WriteString(credential.Blur(path, sources[0].value))
	explanation.WriteString("] that is loaded by source[")
	explanation.WriteString(sources[0].source)
	explanation.WriteString("].\n")
	if len(sources) > 1 {
		explanation.WriteString("Here are other value(source)s:\n")
		for _, source := range sources[1:] {
			explanation.WriteString("  - ")
			explanation.WriteString(credential.Blur(path, source.value))
			explanation.WriteString("(")
			explanation.WriteString(source.source)
			explanation.WriteString(")\n")
		}
	}
	explanation.WriteString("\n")
}
