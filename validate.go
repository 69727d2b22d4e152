// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cascade

// Severity of a Diagnostic.
type Severity int

const Warning Severity = iota

func (s Severity) String() string {
	return "WARNING"
}

// Diagnostic is a line reported while strict mode is off.
// Text is the full line including the severity prefix.
type Diagnostic struct {
	Severity Severity
	Text     string
}

func (d Diagnostic) String() string {
	return d.Text
}

const (
	strictModeOff  = "Strict mode is off, continuing. See " + StrictModeURL
	suppressNotice = "To disable this warning, set " + VarSuppressWarning + " in the environment."
)

// Conditions returns the selector problems in reporting order:
// ambiguous selectors first, then unmatched deployment names, then the instance.
//
// Reserved names are only reported as ambiguous, and the default deployment
// never needs a source.
func Conditions(selection Selection, match MatchResult) []Condition {
	var conditions []Condition

	variable := selection.Source.Variable()
	for _, name := range selection.DeploymentNames {
		if IsReserved(name) {
			conditions = append(conditions, Condition{Kind: AmbiguousSelector, Variable: variable, Value: name})
		}
	}
	if IsReserved(selection.Instance) {
		conditions = append(conditions, Condition{Kind: AmbiguousSelector, Variable: VarAppInstance, Value: selection.Instance})
	}

	for _, name := range match.Unmatched {
		if IsReserved(name) || name == DefaultDeployment {
			continue
		}
		conditions = append(conditions, Condition{Kind: NoDeploymentMatch, Variable: variable, Value: name})
	}
	if match.InstanceRequested && !match.InstanceMatched && !IsReserved(selection.Instance) {
		conditions = append(conditions, Condition{Kind: NoInstanceMatch, Variable: VarAppInstance, Value: selection.Instance})
	}

	return conditions
}

// Validate checks the selection against the match result.
//
// In strict mode it returns an [*Error] for the first condition.
// Otherwise it returns the warning lines for every condition, each followed by
// the strict mode notice and, for suppressible conditions, how to suppress it.
// Suppressible conditions produce no lines if the selection suppresses warnings.
func Validate(selection Selection, match MatchResult) ([]Diagnostic, error) {
	conditions := Conditions(selection, match)
	if selection.Strict && len(conditions) > 0 {
		return nil, &Error{Condition: conditions[0]}
	}

	var diagnostics []Diagnostic
	for _, condition := range conditions {
		if condition.Suppressible() && selection.SuppressWarnings {
			continue
		}

		diagnostics = append(diagnostics, warning(condition.Message()), warning(strictModeOff))
		if condition.Suppressible() {
			diagnostics = append(diagnostics, warning(suppressNotice))
		}
	}

	return diagnostics, nil
}

func warning(text string) Diagnostic {
	return Diagnostic{Severity: Warning, Text: "WARNING: " + text}
}
