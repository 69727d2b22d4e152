// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cascade_test

import (
	"errors"
	"testing"

	"github.com/nil-go/cascade"
	"github.com/nil-go/cascade/internal/assert"
)

const (
	strictModeNotice = "WARNING: Strict mode is off, continuing. See https://github.com/node-config/node-config/wiki/Strict-Mode"
	suppressNotice   = "WARNING: To disable this warning, set SUPPRESS_NO_CONFIG_WARNING in the environment."
)

func TestConditions(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		selection   cascade.Selection
		match       cascade.MatchResult
		expected    []cascade.Condition
	}{
		{
			description: "ok",
			selection:   cascade.Selection{DeploymentNames: []string{"production"}, Source: cascade.EnvSourceNodeEnv},
			match:       cascade.MatchResult{InstanceMatched: true},
		},
		{
			description: "default deployment without source",
			selection:   cascade.Selection{DeploymentNames: []string{"development"}},
			match:       cascade.MatchResult{Unmatched: []string{"development"}, InstanceMatched: true},
		},
		{
			description: "ambiguous before no match",
			selection: cascade.Selection{
				DeploymentNames: []string{"cloud", "local"},
				Instance:        "BOOM",
				Source:          cascade.EnvSourceNodeConfigEnv,
			},
			match: cascade.MatchResult{Unmatched: []string{"cloud", "local"}, InstanceRequested: true},
			expected: []cascade.Condition{
				{Kind: cascade.AmbiguousSelector, Variable: "NODE_CONFIG_ENV", Value: "local"},
				{Kind: cascade.NoDeploymentMatch, Variable: "NODE_CONFIG_ENV", Value: "cloud"},
				{Kind: cascade.NoInstanceMatch, Variable: "NODE_APP_INSTANCE", Value: "BOOM"},
			},
		},
		{
			description: "reserved instance",
			selection: cascade.Selection{
				DeploymentNames: []string{"production"},
				Instance:        "default",
				Source:          cascade.EnvSourceNodeEnv,
			},
			match: cascade.MatchResult{InstanceRequested: true},
			expected: []cascade.Condition{
				{Kind: cascade.AmbiguousSelector, Variable: "NODE_APP_INSTANCE", Value: "default"},
			},
		},
	}

	for i := range testcases {
		testcase := testcases[i]

		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testcase.expected, cascade.Conditions(testcase.selection, testcase.match))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	noDeployment := cascade.MatchResult{Unmatched: []string{"BOOM"}, InstanceMatched: true}
	testcases := []struct {
		description string
		selection   cascade.Selection
		match       cascade.MatchResult
		expected    []string
		err         string
	}{
		{
			description: "strict no deployment match",
			selection:   cascade.Selection{DeploymentNames: []string{"BOOM"}, Source: cascade.EnvSourceNodeEnv, Strict: true},
			match:       noDeployment,
			err: "FATAL: NODE_ENV value of 'BOOM' did not match any deployment config file names. " +
				"Strict mode is on, aborting. See https://github.com/node-config/node-config/wiki/Strict-Mode",
		},
		{
			description: "lenient no deployment match",
			selection:   cascade.Selection{DeploymentNames: []string{"BOOM"}, Source: cascade.EnvSourceNodeEnv},
			match:       noDeployment,
			expected: []string{
				"WARNING: NODE_ENV value of 'BOOM' did not match any deployment config file names.",
				strictModeNotice,
				suppressNotice,
			},
		},
		{
			description: "lenient no deployment match (suppressed)",
			selection: cascade.Selection{
				DeploymentNames:  []string{"BOOM"},
				Source:           cascade.EnvSourceNodeEnv,
				SuppressWarnings: true,
			},
			match: noDeployment,
		},
		{
			description: "lenient ambiguous (not suppressed)",
			selection: cascade.Selection{
				DeploymentNames:  []string{"default"},
				Source:           cascade.EnvSourceNodeEnv,
				SuppressWarnings: true,
			},
			match: cascade.MatchResult{InstanceMatched: true},
			expected: []string{
				"WARNING: NODE_ENV value of 'default' is ambiguous.",
				strictModeNotice,
			},
		},
		{
			description: "lenient multiple conditions",
			selection: cascade.Selection{
				DeploymentNames: []string{"local"},
				Instance:        "BOOM",
				Source:          cascade.EnvSourceNodeEnv,
			},
			match: cascade.MatchResult{InstanceRequested: true},
			expected: []string{
				"WARNING: NODE_ENV value of 'local' is ambiguous.",
				strictModeNotice,
				"WARNING: NODE_APP_INSTANCE value of 'BOOM' did not match any instance config file names.",
				strictModeNotice,
				suppressNotice,
			},
		},
		{
			description: "strict reports first condition",
			selection: cascade.Selection{
				DeploymentNames: []string{"local"},
				Instance:        "BOOM",
				Source:          cascade.EnvSourceNodeEnv,
				Strict:          true,
			},
			match: cascade.MatchResult{InstanceRequested: true},
			err: "FATAL: NODE_ENV value of 'local' is ambiguous. " +
				"Strict mode is on, aborting. See https://github.com/node-config/node-config/wiki/Strict-Mode",
		},
		{
			description: "strict ok",
			selection:   cascade.Selection{DeploymentNames: []string{"production"}, Strict: true},
			match:       cascade.MatchResult{InstanceMatched: true},
		},
	}

	for i := range testcases {
		testcase := testcases[i]

		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			diagnostics, err := cascade.Validate(testcase.selection, testcase.match)
			if testcase.err != "" {
				assert.EqualError(t, err, testcase.err)

				return
			}
			assert.NoError(t, err)

			var lines []string
			for _, diagnostic := range diagnostics {
				assert.Equal(t, cascade.Warning, diagnostic.Severity)
				lines = append(lines, diagnostic.String())
			}
			assert.Equal(t, testcase.expected, lines)
		})
	}
}

func TestError_Is(t *testing.T) {
	t.Parallel()

	err := error(&cascade.Error{Condition: cascade.Condition{Kind: cascade.NoInstanceMatch}})
	assert.ErrorIs(t, err, cascade.ErrNoInstanceMatch)
	assert.False(t, errors.Is(err, cascade.ErrNoDeploymentMatch))
	assert.False(t, errors.Is(err, cascade.ErrAmbiguousSelector))
}
