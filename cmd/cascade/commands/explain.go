// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nil-go/cascade"
)

func newExplainCommand(environment cascade.Env, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <path>",
		Short: "Explain which source supplies each value under the path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := load(cmd, environment, flags)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), result.Config.Explain(args[0]))

			return nil
		},
	}
}
