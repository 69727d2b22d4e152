// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cascade

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// Result is the outcome of a successful Load.
type Result struct {
	Selection   Selection
	Candidates  []Candidate
	Match       MatchResult
	Diagnostics []Diagnostic
	Config      *Config
}

// Load resolves the selection, validates it against the given sources
// and merges the sources the cascade selects.
//
// The sources are usually supplied by a file discovery collaborator such as
// provider/dir, in directory order. Sources with the same name keep their
// order, and sources not in the cascade are skipped.
//
// In strict mode a selector problem returns an [*Error] and no Result.
// Otherwise the warnings are written to the diagnostic writer
// and also returned in Result.Diagnostics.
//
// Every call is independent; the caller is responsible for keeping the Result.
func Load(sources []Source, opts ...Option) (Result, error) {
	option := apply(opts)
	ctx := context.Background()

	env := option.env
	if env == nil {
		env = Environ()
	}
	selection, err := Resolve(env)
	if err != nil {
		return Result{}, fmt.Errorf("resolve selection: %w", err)
	}

	candidates := Candidates(selection)
	names := make([]string, 0, len(sources))
	for _, source := range sources {
		names = append(names, source.Name)
	}
	match := Match(candidates, names)

	diagnostics, err := Validate(selection, match)
	if err != nil {
		return Result{}, err
	}
	for _, diagnostic := range diagnostics {
		// Ignore error: a broken diagnostic writer should not fail the resolution.
		_, _ = io.WriteString(option.writer, diagnostic.Text+"\n")
	}

	selected := order(candidates, sources)
	if len(selected) < len(sources) {
		option.logger.LogAttrs(ctx, slog.LevelDebug,
			"Some config sources are not in the cascade and have been skipped.",
			slog.Int("skipped", len(sources)-len(selected)),
		)
	}
	config := option.merge(append(selected, option.overrides...))
	option.logger.LogAttrs(ctx, slog.LevelDebug,
		"Configuration has been resolved.",
		slog.Any("deployments", selection.DeploymentNames),
		slog.String("instance", selection.Instance),
		slog.Any("sources", config.Sources()),
	)

	return Result{
		Selection:   selection,
		Candidates:  candidates,
		Match:       match,
		Diagnostics: diagnostics,
		Config:      config,
	}, nil
}

// order returns the sources in the cascade, sorted by the position of their name.
func order(candidates []Candidate, sources []Source) []Source {
	rank := make(map[string]int, len(candidates))
	for i, candidate := range candidates {
		if _, ok := rank[candidate.Name]; !ok {
			rank[candidate.Name] = i
		}
	}

	selected := make([]Source, 0, len(sources))
	for _, source := range sources {
		if _, ok := rank[source.Name]; ok {
			selected = append(selected, source)
		}
	}
	slices.SortStableFunc(selected, func(a, b Source) int {
		return cmp.Compare(rank[a.Name], rank[b.Name])
	})

	return selected
}
