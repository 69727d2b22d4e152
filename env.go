// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cascade

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables consumed by the resolver.
const (
	VarNodeConfigEnv   = "NODE_CONFIG_ENV"
	VarNodeEnv         = "NODE_ENV"
	VarAppInstance     = "NODE_APP_INSTANCE"
	VarStrictMode      = "NODE_CONFIG_STRICT_MODE"
	VarSuppressWarning = "SUPPRESS_NO_CONFIG_WARNING"
	VarHost            = "HOST"
	VarHostname        = "HOSTNAME"
)

// Env is a snapshot of environment variables keyed by name.
//
// The resolver only reads the Env it is given,
// never the environment of the process.
type Env map[string]string

// Environ returns an Env with a snapshot of the process environment.
//
// If neither HOST nor HOSTNAME is set, HOSTNAME is filled with [os.Hostname],
// since shells usually do not export it.
func Environ() Env {
	env := ParseEnviron(os.Environ())
	if env[VarHost] == "" && env[VarHostname] == "" {
		if hostname, err := os.Hostname(); err == nil && hostname != "" {
			env[VarHostname] = hostname
		}
	}

	return env
}

// ParseEnviron returns an Env from entries in the form "key=value",
// as returned by [os.Environ]. Entries without '=' are ignored.
func ParseEnviron(environ []string) Env {
	env := make(Env, len(environ))
	for _, entry := range environ {
		if key, value, ok := strings.Cut(entry, "="); ok {
			env[key] = value
		}
	}

	return env
}

// truthy reports whether an environment value turns a flag on.
// Values understood by strconv.ParseBool keep their meaning,
// any other non-empty value counts as set.
func truthy(value string) bool {
	if value == "" {
		return false
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return true
}
