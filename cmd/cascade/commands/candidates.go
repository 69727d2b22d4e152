// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nil-go/cascade"
)

func newCandidatesCommand(environment cascade.Env) *cobra.Command {
	var roles bool

	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "Print the source names the cascade consults, least specific first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			selection, err := cascade.Resolve(environment)
			if err != nil {
				return err
			}

			for _, candidate := range cascade.Candidates(selection) {
				if roles {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", candidate.Name, candidate.Role)

					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), candidate.Name)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&roles, "roles", false, "print the role of each name")

	return cmd
}
