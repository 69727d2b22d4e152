// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cascade

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Reserved source names. They have fixed places in the cascade,
// so they are ambiguous when used as a deployment or instance name.
const (
	Default = "default"
	Local   = "local"
)

// DefaultDeployment is the deployment name used when no selector is set.
const DefaultDeployment = "development"

// IsReserved reports whether the name is one of the reserved source names.
func IsReserved(name string) bool {
	return name == Default || name == Local
}

// EnvSource identifies the environment variable that supplied the deployment names.
type EnvSource int

const (
	// EnvSourceNone means no selector is set and the default deployment is used.
	EnvSourceNone EnvSource = iota
	EnvSourceNodeEnv
	EnvSourceNodeConfigEnv
)

// Variable returns the name of the environment variable reported in messages.
// It is NODE_ENV unless NODE_CONFIG_ENV supplied the value.
func (s EnvSource) Variable() string {
	if s == EnvSourceNodeConfigEnv {
		return VarNodeConfigEnv
	}

	return VarNodeEnv
}

func (s EnvSource) String() string {
	switch s {
	case EnvSourceNodeEnv:
		return VarNodeEnv
	case EnvSourceNodeConfigEnv:
		return VarNodeConfigEnv
	default:
		return "NONE"
	}
}

// Selection holds the active deployment and instance names.
//
// DeploymentNames is ordered from least to most specific.
// Instance is empty if no instance is selected.
type Selection struct {
	DeploymentNames  []string
	Instance         string
	Source           EnvSource
	Strict           bool
	SuppressWarnings bool
	// Hostname is the short host name (up to the first '.'), empty if unknown.
	Hostname string
}

// selectors holds the variables Resolve reads.
// The env tags must stay in sync with the Var constants.
type selectors struct {
	ConfigEnv  string `env:"NODE_CONFIG_ENV"`
	NodeEnv    string `env:"NODE_ENV"`
	Instance   string `env:"NODE_APP_INSTANCE"`
	StrictMode string `env:"NODE_CONFIG_STRICT_MODE"`
	Suppress   string `env:"SUPPRESS_NO_CONFIG_WARNING"`
	Host       string `env:"HOST"`
	Hostname   string `env:"HOSTNAME"`
}

// Resolve returns the Selection for the given environment.
//
// Deployment names come from NODE_CONFIG_ENV, or NODE_ENV if it is not set,
// or default to development. The value is split on ',' with each name trimmed
// and empty names dropped. A selector with no names left is treated as unset.
func Resolve(environment Env) (Selection, error) {
	if environment == nil {
		// A nil Environment makes env fall back to the process environment.
		environment = Env{}
	}

	vars, err := env.ParseAsWithOptions[selectors](env.Options{Environment: environment})
	if err != nil {
		return Selection{}, fmt.Errorf("parse environment: %w", err)
	}

	selection := Selection{
		Instance:         vars.Instance,
		Strict:           truthy(vars.StrictMode),
		SuppressWarnings: truthy(vars.Suppress),
		Hostname:         shortHostname(vars.Host, vars.Hostname),
	}
	switch {
	case len(splitNames(vars.ConfigEnv)) > 0:
		selection.Source = EnvSourceNodeConfigEnv
		selection.DeploymentNames = splitNames(vars.ConfigEnv)
	case len(splitNames(vars.NodeEnv)) > 0:
		selection.Source = EnvSourceNodeEnv
		selection.DeploymentNames = splitNames(vars.NodeEnv)
	default:
		selection.DeploymentNames = []string{DefaultDeployment}
	}

	return selection, nil
}

func splitNames(value string) []string {
	var names []string
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	return names
}

func shortHostname(names ...string) string {
	for _, name := range names {
		if host, _, _ := strings.Cut(strings.TrimSpace(name), "."); host != "" {
			return host
		}
	}

	return ""
}
