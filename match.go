// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cascade

// MatchResult reports which selectors have at least one source.
type MatchResult struct {
	// Unmatched lists deployment names without any source, in selection order.
	Unmatched []string
	// InstanceRequested reports whether any candidate carries an instance suffix.
	InstanceRequested bool
	// InstanceMatched is true if an instance-suffixed candidate has a source,
	// or no instance was requested.
	InstanceMatched bool
}

// DeploymentMatched reports whether every deployment name has a source.
func (m MatchResult) DeploymentMatched() bool {
	return len(m.Unmatched) == 0
}

// Match checks the candidates against the names of the supplied sources.
//
// A deployment name matches if any candidate derived from it is in the catalog.
// The default, host and local roles take no part in deployment matching.
func Match(candidates []Candidate, catalog []string) MatchResult {
	available := make(map[string]struct{}, len(catalog))
	for _, name := range catalog {
		available[name] = struct{}{}
	}

	var (
		result      MatchResult
		deployments []string
		matched     = make(map[string]bool)
	)
	for _, candidate := range candidates {
		_, found := available[candidate.Name]

		if deployment := candidate.Deployment; deployment != "" {
			if _, seen := matched[deployment]; !seen {
				deployments = append(deployments, deployment)
			}
			matched[deployment] = matched[deployment] || found
		}
		if candidate.Instance {
			result.InstanceRequested = true
			result.InstanceMatched = result.InstanceMatched || found
		}
	}
	if !result.InstanceRequested {
		result.InstanceMatched = true
	}

	for _, deployment := range deployments {
		if !matched[deployment] {
			result.Unmatched = append(result.Unmatched, deployment)
		}
	}

	return result
}
