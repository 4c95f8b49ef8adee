// SPDX-License-Identifier: MIT
package lattice

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed groups.yaml
var groupsYAML []byte

// groupTable mirrors groups.yaml.
type groupTable struct {
	Generators map[string][3][3]float64 `yaml:"generators"`
	Groups     []struct {
		Name       string   `yaml:"name"`
		Order      int      `yaml:"order"`
		Generators []string `yaml:"generators"`
	} `yaml:"groups"`
}

// PointGroups is a named collection of closed point groups in Cartesian form.
type PointGroups struct {
	byName map[string]*SpaceGroup
}

// LoadPointGroups decodes a YAML group table and closes every group.
// When a group declares an order, the closure must reach exactly it.
//
// Errors: ErrBadGroupTable for malformed input, unknown generator names or an
// order mismatch; Closure errors otherwise.
func LoadPointGroups(r io.Reader) (*PointGroups, error) {
	var tbl groupTable
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tbl); err != nil {
		return nil, latticeErrorf("LoadPointGroups", fmt.Errorf("%w: %v", ErrBadGroupTable, err))
	}
	pg := &PointGroups{byName: make(map[string]*SpaceGroup, len(tbl.Groups))}
	for _, entry := range tbl.Groups {
		gens := make([]*Symmetry, 0, len(entry.Generators))
		for _, gn := range entry.Generators {
			r, ok := tbl.Generators[gn]
			if !ok {
				return nil, latticeErrorf("LoadPointGroups",
					fmt.Errorf("%w: group %s: unknown generator %q", ErrBadGroupTable, entry.Name, gn))
			}
			gens = append(gens, &Symmetry{Name: gn, R: Mat3(r)})
		}
		g, err := Closure(entry.Name, gens)
		if err != nil {
			return nil, latticeErrorf("LoadPointGroups", err)
		}
		if entry.Order > 0 && g.Len() != entry.Order {
			return nil, latticeErrorf("LoadPointGroups",
				fmt.Errorf("%w: group %s has %d elements, declared %d", ErrBadGroupTable, entry.Name, g.Len(), entry.Order))
		}
		pg.byName[entry.Name] = g
	}

	return pg, nil
}

// DefaultPointGroups loads the embedded table.
func DefaultPointGroups() (*PointGroups, error) {
	return LoadPointGroups(bytes.NewReader(groupsYAML))
}

// Get returns a deep copy of the named group.
func (p *PointGroups) Get(name string) (*SpaceGroup, error) {
	g, ok := p.byName[name]
	if !ok {
		return nil, latticeErrorf("PointGroups.Get", fmt.Errorf("%w: %q", ErrUnknownGroup, name))
	}

	return g.Clone(), nil
}

// Names returns the group names in lexical order.
func (p *PointGroups) Names() []string {
	out := make([]string, 0, len(p.byName))
	for n := range p.byName {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}
