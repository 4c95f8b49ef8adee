// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tbrpa/kmesh"
)

func (a *app) bandsCmd() *cobra.Command {
	var (
		path   string
		points int
	)
	cmd := &cobra.Command{
		Use:   "bands",
		Short: "Print band energies along a momentum path",
		RunE: func(*cobra.Command, []string) error {
			nodes, err := parsePath(path)
			if err != nil {
				return err
			}
			f, err := a.load()
			if err != nil {
				return err
			}
			f.Mesh.Grid = nil
			m, err := f.BuildModel()
			if err != nil {
				return err
			}
			list, err := kmesh.NewPath(nodes, points)
			if err != nil {
				return err
			}
			bands, err := m.Bands(list)
			if err != nil {
				return err
			}
			dist := list.Distances(m.Lattice)
			for i, p := range list.Points {
				fmt.Fprintf(a.out, "%-4s %9.5f", p.Name, dist[i])
				for _, e := range bands[i] {
					fmt.Fprintf(a.out, " %11.6f", e)
				}
				fmt.Fprintln(a.out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "G:0,0,0;X:0.5,0,0;M:0.5,0.5,0;G:0,0,0", "nodes NAME:k1,k2,k3 separated by ';'")
	cmd.Flags().IntVar(&points, "points", 20, "points per segment")

	return cmd
}

// parsePath reads "G:0,0,0;X:0.5,0,0".
func parsePath(s string) ([]kmesh.PathNode, error) {
	var nodes []kmesh.PathNode
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, coords, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("path node %q: want NAME:k1,k2,k3", part)
		}
		xs := strings.Split(coords, ",")
		if len(xs) != 3 {
			return nil, fmt.Errorf("path node %q: want 3 components", part)
		}
		var n kmesh.PathNode
		n.Name = strings.TrimSpace(name)
		for i, x := range xs {
			v, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
			if err != nil {
				return nil, fmt.Errorf("path node %q: %w", part, err)
			}
			n.K[i] = v
		}
		nodes = append(nodes, n)
	}

	return nodes, nil
}
