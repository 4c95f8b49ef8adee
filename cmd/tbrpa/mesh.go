// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) meshCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Prepare the k mesh and report its symmetry reduction",
		RunE: func(*cobra.Command, []string) error {
			f, err := a.load()
			if err != nil {
				return err
			}
			m, err := f.BuildModel(f.Engine.EigenOptions()...)
			if err != nil {
				return err
			}
			if m.Mesh == nil {
				return fmt.Errorf("mesh: run file has no mesh.grid")
			}
			grid := m.Mesh.Grid()
			fmt.Fprintf(a.out, "grid %dx%dx%d: %d points, %d irreducible under %s (%d operations)\n",
				grid[0], grid[1], grid[2], m.Mesh.Len(), m.Irreducible.Len(), m.Group().Name, m.Group().Len())
			if !list {
				return nil
			}
			for i, p := range m.Irreducible.Points {
				fmt.Fprintf(a.out, "%4d  (%8.5f, %8.5f, %8.5f)  w=%.6f\n", i, p.K[0], p.K[1], p.K[2], p.Weight)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print the irreducible points and weights")

	return cmd
}
