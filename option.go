// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cascade

import (
	"io"
	"log/slog"
	"os"

	"github.com/go-viper/mapstructure/v2"
)

// WithEnv provides the environment variables the selection is resolved from.
//
// By default, Load takes a snapshot of the process environment when it is called.
func WithEnv(env Env) Option {
	return func(options *options) {
		options.env = env
	}
}

// WithDiagnosticWriter provides the writer that warnings are written to, one per line.
//
// By default, it is os.Stderr.
func WithDiagnosticWriter(writer io.Writer) Option {
	return func(options *options) {
		options.writer = writer
	}
}

// WithLogHandler provides the slog.Handler for logs from Load.
//
// By default, it uses handler from slog.Default().
func WithLogHandler(handler slog.Handler) Option {
	return func(options *options) {
		if handler != nil {
			options.logger = slog.New(handler)
		}
	}
}

// WithOverrides provides sources merged after the cascade, in the given order.
// They are not subject to matching, e.g. values from the NODE_CONFIG variable.
func WithOverrides(sources ...Source) Option {
	return func(options *options) {
		options.overrides = append(options.overrides, sources...)
	}
}

// WithDelimiter provides the delimiter when specifying config path.
//
// The default delimiter is `.`, which makes config path like `parent.child.key`.
func WithDelimiter(delimiter string) Option {
	return func(options *options) {
		options.delimiter = delimiter
	}
}

// WithTagName provides the tag name that reads the customized field name when
// decoding into struct with Config.Unmarshal.
//
// The default tag name is `config`.
func WithTagName(tagName string) Option {
	return func(options *options) {
		options.tagName = tagName
	}
}

// WithDecodeHook provides the decode hook for Config.Unmarshal.
// It replaces the default hook, which converts strings into
// time.Duration, comma separated slices and encoding.TextUnmarshaler.
func WithDecodeHook(decodeHook mapstructure.DecodeHookFunc) Option {
	return func(options *options) {
		options.decodeHook = decodeHook
	}
}

// Option configures Load with specific options.
type Option func(*options)

type options struct {
	Config

	env       Env
	writer    io.Writer
	logger    *slog.Logger
	overrides []Source
}

func apply(opts []Option) options {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}

	if option.delimiter == "" {
		option.delimiter = "."
	}
	if option.tagName == "" {
		option.tagName = "config"
	}
	if option.decodeHook == nil {
		option.decodeHook = defaultDecodeHook
	}
	if option.writer == nil {
		option.writer = os.Stderr
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	option.logger = option.logger.WithGroup("cascade")

	return *option
}

var defaultDecodeHook = mapstructure.ComposeDecodeHookFunc( //nolint:gochecknoglobals
	mapstructure.StringToTimeDurationHookFunc(),
	mapstructure.StringToSliceHookFunc(","),
	mapstructure.TextUnmarshallerHookFunc(),
)
