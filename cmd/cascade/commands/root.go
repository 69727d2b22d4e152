// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package commands implements the cascade command line.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nil-go/cascade"
	"github.com/nil-go/cascade/provider/dir"
	"github.com/nil-go/cascade/provider/env"
)

type rootFlags struct {
	dir     string
	prefix  string
	verbose bool
}

// New returns the root command. The environment is passed in
// so the commands never read the process environment themselves.
func New(environment cascade.Env) *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "cascade",
		Short: "Resolve layered configuration for a deployment",
		Long: `cascade resolves the configuration of an application from the files in the
config directory, selected by NODE_CONFIG_ENV/NODE_ENV and NODE_APP_INSTANCE.

Set NODE_CONFIG_STRICT_MODE=1 to fail if a selector matches no file.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.PersistentFlags().StringVar(&flags.dir, "dir", "",
		"config directories, separated by the OS path list separator (default $NODE_CONFIG_DIR or ./config)")
	root.PersistentFlags().StringVar(&flags.prefix, "env-prefix", "",
		"also override with environment variables that have this prefix")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug messages to stderr")

	root.AddCommand(
		newCandidatesCommand(environment),
		newResolveCommand(environment, flags),
		newExplainCommand(environment, flags),
	)

	return root
}

// load reads the config directories and NODE_CONFIG, then resolves the configuration.
// Warnings are written to the command's stderr.
func load(cmd *cobra.Command, environment cascade.Env, flags *rootFlags) (cascade.Result, error) {
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn})
	if flags.verbose {
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	dirEnv := environment
	if flags.dir != "" {
		dirEnv = cascade.Env{dir.VarConfigDir: flags.dir}
	}
	sources, err := dir.LoadAll(dir.FromEnv(dirEnv, dir.WithLogHandler(handler))...)
	if err != nil {
		return cascade.Result{}, err
	}

	var envOpts []env.Option
	if flags.prefix != "" {
		envOpts = append(envOpts, env.WithPrefix(flags.prefix))
	}
	overrides, err := env.New(environment, envOpts...).Load()
	if err != nil {
		return cascade.Result{}, err
	}

	return cascade.Load(
		sources,
		cascade.WithEnv(environment),
		cascade.WithOverrides(overrides...),
		cascade.WithDiagnosticWriter(cmd.ErrOrStderr()),
		cascade.WithLogHandler(handler),
	)
}
