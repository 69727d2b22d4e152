// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package env loads override sources from environment variables.
//
// Env parses the NODE_CONFIG variable as a JSON object and returns it as the
// source `$NODE_CONFIG`. With a prefix, it also returns the environment variables
// whose names start with the prefix as the source `env:<prefix>`, splitting
// the names by `_` into nested keys. E.g. the environment variable
// `APP_SERVER_PORT="8080"` is loaded as `{APP: {SERVER: {PORT: "8080"}}}`.
// The environment variables with empty value are treated as unset.
//
// The sources are meant for cascade.WithOverrides,
// so they take precedence over every file in the cascade.
package env

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nil-go/cascade"
	"github.com/nil-go/cascade/internal/maps"
)

// VarNodeConfig is the environment variable holding a JSON object of overrides.
const VarNodeConfig = "NODE_CONFIG"

// Env is a loader that loads override sources from environment variables.
//
// To create a new Env, call [New].
type Env struct {
	_        [0]func() // Ensure it's incomparable.
	env      cascade.Env
	prefix   string
	splitter func(string) []string
}

// New creates an Env that reads the given environment variables, with the given Option(s).
func New(env cascade.Env, opts ...Option) Env {
	option := &options{env: env}
	for _, opt := range opts {
		opt(option)
	}
	if option.splitter == nil {
		option.splitter = func(name string) []string {
			return strings.Split(name, "_")
		}
	}

	return Env(*option)
}

// Load returns the override sources. It returns no source for NODE_CONFIG if it is not set,
// and no source for the prefix if no prefix is provided.
func (e Env) Load() ([]cascade.Source, error) {
	var sources []cascade.Source

	if value := strings.TrimSpace(e.env[VarNodeConfig]); value != "" {
		var values map[string]any
		if err := json.Unmarshal([]byte(value), &values); err != nil {
			return nil, fmt.Errorf("parse %s: %w", VarNodeConfig, err)
		}
		sources = append(sources, cascade.Source{Name: "$" + VarNodeConfig, Values: values})
	}

	if e.prefix != "" {
		values := make(map[string]any)
		for name, value := range e.env {
			if value == "" || !strings.HasPrefix(name, e.prefix) {
				// The environment variable with empty value is treated as unset.
				continue
			}
			if keys := e.splitter(name); len(keys) > 0 && !(len(keys) == 1 && keys[0] == "") {
				maps.Insert(values, keys, value)
			}
		}
		sources = append(sources, cascade.Source{Name: e.String(), Values: values})
	}

	return sources, nil
}

func (e Env) String() string {
	if e.prefix == "" {
		return "env"
	}

	return "env:" + e.prefix
}
