// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cascade

import (
	"errors"
	"fmt"
)

// StrictModeURL is referenced by every strict mode message.
const StrictModeURL = "https://github.com/node-config/node-config/wiki/Strict-Mode"

// Kind classifies a selector problem.
type Kind int

const (
	// AmbiguousSelector means a reserved name is used as a deployment or instance name.
	AmbiguousSelector Kind = iota + 1
	// NoDeploymentMatch means a deployment name has no source.
	NoDeploymentMatch
	// NoInstanceMatch means the instance name has no source.
	NoInstanceMatch
)

func (k Kind) String() string {
	switch k {
	case AmbiguousSelector:
		return "ambiguous selector"
	case NoDeploymentMatch:
		return "no deployment match"
	case NoInstanceMatch:
		return "no instance match"
	default:
		return "unknown"
	}
}

// Sentinel errors for errors.Is on an [*Error].
var (
	ErrAmbiguousSelector = errors.New("ambiguous selector")
	ErrNoDeploymentMatch = errors.New("no deployment match")
	ErrNoInstanceMatch   = errors.New("no instance match")
)

// Condition is a selector problem found during validation.
type Condition struct {
	Kind Kind
	// Variable is the environment variable that supplied Value.
	Variable string
	Value    string
}

// Message returns the description of the condition without severity prefix.
func (c Condition) Message() string {
	switch c.Kind {
	case AmbiguousSelector:
		return fmt.Sprintf("%s value of '%s' is ambiguous.", c.Variable, c.Value)
	case NoDeploymentMatch:
		return fmt.Sprintf("%s value of '%s' did not match any deployment config file names.", c.Variable, c.Value)
	case NoInstanceMatch:
		return fmt.Sprintf("%s value of '%s' did not match any instance config file names.", c.Variable, c.Value)
	default:
		return fmt.Sprintf("%s value of '%s' is invalid.", c.Variable, c.Value)
	}
}

// Suppressible reports whether SUPPRESS_NO_CONFIG_WARNING can silence the condition.
// Ambiguous selectors are always reported.
func (c Condition) Suppressible() bool {
	return c.Kind != AmbiguousSelector
}

// Error is returned by [Load] and [Validate] when strict mode is on
// and a selector problem is found.
type Error struct {
	Condition Condition
}

func (e *Error) Error() string {
	return "FATAL: " + e.Condition.Message() + " Strict mode is on, aborting. See " + StrictModeURL
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrAmbiguousSelector:
		return e.Condition.Kind == AmbiguousSelector
	case ErrNoDeploymentMatch:
		return e.Condition.Kind == NoDeploymentMatch
	case ErrNoInstanceMatch:
		return e.Condition.Kind == NoInstanceMatch
	default:
		return false
	}
}
