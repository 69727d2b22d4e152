// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cascade

// Role is the place a candidate takes in the cascade.
type Role int

const (
	RoleDefault Role = iota
	RoleDeployment
	RoleHost
	RoleHostDeployment
	RoleLocal
	RoleLocalDeployment
)

func (r Role) String() string {
	switch r {
	case RoleDefault:
		return "default"
	case RoleDeployment:
		return "deployment"
	case RoleHost:
		return "host"
	case RoleHostDeployment:
		return "host-deployment"
	case RoleLocal:
		return "local"
	case RoleLocalDeployment:
		return "local-deployment"
	default:
		return "unknown"
	}
}

// Candidate is a source name the cascade would consult.
type Candidate struct {
	Name string
	Role Role
	// Deployment is the deployment name the candidate derives from,
	// empty for the default, host and local roles.
	Deployment string
	// Instance reports whether the name carries the instance suffix.
	Instance bool
}

// Candidates returns the source names implied by the selection,
// ordered from least to most specific. Each base name is followed by
// its instance variant if an instance is selected.
func Candidates(selection Selection) []Candidate {
	candidates := make([]Candidate, 0, 4*(len(selection.DeploymentNames)+2))
	add := func(name string, role Role, deployment string) {
		candidates = append(candidates, Candidate{Name: name, Role: role, Deployment: deployment})
		if selection.Instance != "" {
			candidates = append(candidates, Candidate{
				Name:       name + "-" + selection.Instance,
				Role:       role,
				Deployment: deployment,
				Instance:   true,
			})
		}
	}

	add(Default, RoleDefault, "")
	for _, deployment := range selection.DeploymentNames {
		add(deployment, RoleDeployment, deployment)
	}
	if host := selection.Hostname; host != "" {
		add(host, RoleHost, "")
		for _, deployment := range selection.DeploymentNames {
			add(host+"-"+deployment, RoleHostDeployment, deployment)
		}
	}
	add(Local, RoleLocal, "")
	for _, deployment := range selection.DeploymentNames {
		add(Local+"-"+deployment, RoleLocalDeployment, deployment)
	}

	return candidates
}
