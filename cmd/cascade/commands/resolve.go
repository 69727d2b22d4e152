// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nil-go/cascade"
)

func newResolveCommand(environment cascade.Env, flags *rootFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "resolve [path]",
		Short: "Print the merged configuration, or the value under the path",
		Example: `  # Print the configuration for production
  NODE_ENV=production cascade resolve

  # Print the server section as YAML
  cascade resolve server --output yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := load(cmd, environment, flags)
			if err != nil {
				return err
			}

			var value any = result.Config.Map()
			if len(args) > 0 {
				value = result.Config.Get(args[0])
			}

			switch output {
			case "json":
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")

				return encoder.Encode(value)
			case "yaml":
				encoder := yaml.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent(2)
				if err := encoder.Encode(value); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}

				return encoder.Close()
			default:
				return fmt.Errorf("unsupported output format %q", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")

	return cmd
}
