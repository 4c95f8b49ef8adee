// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tbrpa/lattice"
)

func groupsCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the tabulated point groups",
		RunE: func(*cobra.Command, []string) error {
			pg, err := lattice.DefaultPointGroups()
			if err != nil {
				return err
			}
			for _, name := range pg.Names() {
				g, err := pg.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-4s %3d\n", name, g.Len())
			}
			return nil
		},
	}
}
