// Copyright The smartscompiler Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package molecule

import (
	"fmt"

	"github.com/timvdm/smartscompiler/pkg/smarts"
)

// AtomSpec describes an atom to be added to a molecule.
type AtomSpec struct {
	// Atomic number, or 0 for an unknown atom ("*").
	Element  int
	Aromatic bool
	// Isotope mass number, or 0 when unspecified.
	Mass   int
	Charge int
	Class  int
	// Bracket indicates the hydrogen count is given explicitly (as Hydrogens),
	// rather than being computed from the default valences.
	Bracket   bool
	Hydrogens int
}

// Builder constructs a molecule one atom and bond at a time.
type Builder struct {
	specs []AtomSpec
	bonds []Bond
}

// NewBuilder constructs an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddAtom adds a new atom, returning its index.
func (b *Builder) AddAtom(spec AtomSpec) uint {
	b.specs = append(b.specs, spec)
	//
	return uint(len(b.specs) - 1)
}

// AddBond adds a bond between two existing atoms, returning its index.  Bonds
// with order smarts.AROMATIC_ORDER are aromatic.
func (b *Builder) AddBond(src uint, dst uint, order int) (uint, error) {
	n := uint(len(b.specs))
	//
	switch {
	case src >= n || dst >= n:
		return 0, fmt.Errorf("bond %d-%d references unknown atom", src, dst)
	case src == dst:
		return 0, fmt.Errorf("bond connects atom %d to itself", src)
	case order < 1 || (order > 4 && order != smarts.AROMATIC_ORDER):
		return 0, fmt.Errorf("invalid bond order %d", order)
	case b.HasBond(src, dst):
		return 0, fmt.Errorf("duplicate bond %d-%d", src, dst)
	}
	//
	index := uint(len(b.bonds))
	b.bonds = append(b.bonds, Bond{index, src, dst, order, order == smarts.AROMATIC_ORDER, false})
	//
	return index, nil
}

// HasBond checks whether two atoms are already bonded.
func (b *Builder) HasBond(src uint, dst uint) bool {
	for _, bond := range b.bonds {
		if bond.source == src && bond.target == dst || bond.source == dst && bond.target == src {
			return true
		}
	}
	//
	return false
}

// IsAromatic checks whether a given atom was added as aromatic.
func (b *Builder) IsAromatic(atom uint) bool {
	return b.specs[atom].Aromatic
}

// Build the molecule, computing all derived atom and bond properties.
func (b *Builder) Build() *Molecule {
	var (
		n         = len(b.specs)
		atoms     = make([]Atom, n)
		bonds     = make([]Bond, len(b.bonds))
		adjacency = make([][]uint, n)
	)
	//
	copy(bonds, b.bonds)
	//
	for i, spec := range b.specs {
		atoms[i] = Atom{
			index:    uint(i),
			element:  spec.Element,
			mass:     spec.Mass,
			charge:   spec.Charge,
			class:    spec.Class,
			aromatic: spec.Aromatic,
		}
	}
	//
	for _, bond := range bonds {
		adjacency[bond.source] = append(adjacency[bond.source], bond.index)
		adjacency[bond.target] = append(adjacency[bond.target], bond.index)
	}
	//
	mol := &Molecule{atoms, bonds, adjacency, nil}
	//
	for i := range atoms {
		mol.perceiveHydrogens(uint(i), b.specs[i])
	}
	//
	mol.perceiveRings()
	//
	return mol
}

// Compute degree, hydrogen counts and valence for a given atom.
func (m *Molecule) perceiveHydrogens(id uint, spec AtomSpec) {
	atom := &m.atoms[id]
	// Sum of bond orders, counting aromatic bonds as 1
	sum := 0
	//
	for _, b := range m.adjacency[id] {
		bond := &m.bonds[b]
		//
		if bond.aromatic {
			sum++
		} else {
			sum += bond.order
		}
		//
		if m.atoms[bond.Other(id)].element == 1 {
			atom.explicitH++
		}
	}
	//
	atom.degree = len(m.adjacency[id])
	//
	if spec.Bracket {
		atom.hydrogens = spec.Hydrogens
	} else {
		atom.hydrogens = implicitHydrogens(atom.element, atom.aromatic, sum)
	}
	//
	atom.valence = valence(atom.element, atom.aromatic, sum+atom.hydrogens)
}
