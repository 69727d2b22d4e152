// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package dir

import (
	"log/slog"
	"slices"
)

// WithUnmarshal provides the function used to parse files with the given extension,
// e.g. `.json5`. It replaces the function for an extension that is already supported,
// otherwise the extension is added with the lowest priority.
//
// The unmarshal function must be able to unmarshal the file content into a map[string]any.
func WithUnmarshal(ext string, unmarshal func([]byte, any) error) Option {
	return func(options *options) {
		i := slices.IndexFunc(options.extensions, func(e extension) bool { return e.ext == ext })
		if i < 0 {
			options.extensions = append(options.extensions, extension{ext: ext, unmarshal: unmarshal})

			return
		}
		options.extensions[i].unmarshal = unmarshal
	}
}

// WithName provides the name of the directory shown in logs and errors.
func WithName(name string) Option {
	return func(options *options) {
		options.name = name
	}
}

// WithLogHandler provides the slog.Handler for logs from Dir.
//
// By default, it uses handler from slog.Default().
func WithLogHandler(handler slog.Handler) Option {
	return func(options *options) {
		if handler != nil {
			options.logger = slog.New(handler)
		}
	}
}

type (
	// Option configures a Dir with specific options.
	Option  func(options *options)
	options Dir
)
