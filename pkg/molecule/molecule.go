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
	"slices"

	"github.com/timvdm/smartscompiler/pkg/smarts"
)

// Atom is an atom within a molecule.  All derived properties (hydrogen counts,
// valence, ring membership, etc) are computed when the molecule is built.
type Atom struct {
	index    uint
	element  int
	mass     int
	charge   int
	class    int
	aromatic bool
	// Hydrogens which are not atoms of the graph (i.e. implicit, or given as a
	// count in a bracket atom).
	hydrogens int
	// Hydrogens which are atoms of the graph
	explicitH int
	degree    int
	valence   int
	cyclic    bool
	// Number of smallest rings containing this atom
	rings int
	// Distinct sizes of the smallest rings containing this atom
	ringSizes []int
	// Number of ring bonds on this atom
	ringConn int
}

// Index returns the index of this atom in its molecule.
func (a *Atom) Index() uint { return a.index }

// IsAromatic implementation for smarts.Atom interface.
func (a *Atom) IsAromatic() bool { return a.aromatic }

// IsAliphatic implementation for smarts.Atom interface.
func (a *Atom) IsAliphatic() bool { return !a.aromatic }

// IsCyclic implementation for smarts.Atom interface.
func (a *Atom) IsCyclic() bool { return a.cyclic }

// IsAcyclic implementation for smarts.Atom interface.
func (a *Atom) IsAcyclic() bool { return !a.cyclic }

// Element implementation for smarts.Atom interface.
func (a *Atom) Element() int { return a.element }

// Mass implementation for smarts.Atom interface.
func (a *Atom) Mass() int { return a.mass }

// Degree implementation for smarts.Atom interface.
func (a *Atom) Degree() int { return a.degree }

// Valence implementation for smarts.Atom interface.
func (a *Atom) Valence() int { return a.valence }

// Connectivity implementation for smarts.Atom interface.
func (a *Atom) Connectivity() int { return a.degree + a.hydrogens }

// TotalHydrogens implementation for smarts.Atom interface.
func (a *Atom) TotalHydrogens() int { return a.hydrogens + a.explicitH }

// ImplicitHydrogens implementation for smarts.Atom interface.
func (a *Atom) ImplicitHydrogens() int { return a.hydrogens }

// RingMembershipCount implementation for smarts.Atom interface.
func (a *Atom) RingMembershipCount() int { return a.rings }

// RingConnectivity implementation for smarts.Atom interface.
func (a *Atom) RingConnectivity() int { return a.ringConn }

// Charge implementation for smarts.Atom interface.
func (a *Atom) Charge() int { return a.charge }

// AtomClass implementation for smarts.Atom interface.
func (a *Atom) AtomClass() int { return a.class }

// IsInRingSize implementation for smarts.Atom interface.
func (a *Atom) IsInRingSize(size int) bool {
	return slices.Contains(a.ringSizes, size)
}

func (a *Atom) String() string {
	symbol, ok := smarts.ElementSymbol(a.element)
	//
	if !ok {
		symbol = "*"
	}
	//
	return fmt.Sprintf("%s%d", symbol, a.index)
}

// Bond is a bond within a molecule.
type Bond struct {
	index    uint
	source   uint
	target   uint
	order    int
	aromatic bool
	cyclic   bool
}

// Index returns the index of this bond in its molecule.
func (b *Bond) Index() uint { return b.index }

// IsAromatic implementation for smarts.Bond interface.
func (b *Bond) IsAromatic() bool { return b.aromatic }

// IsCyclic implementation for smarts.Bond interface.
func (b *Bond) IsCyclic() bool { return b.cyclic }

// Order implementation for smarts.Bond interface.
func (b *Bond) Order() int { return b.order }

// Source implementation for smarts.Bond interface.
func (b *Bond) Source() uint { return b.source }

// Target implementation for smarts.Bond interface.
func (b *Bond) Target() uint { return b.target }

// Other implementation for smarts.Bond interface.
func (b *Bond) Other(atom uint) uint {
	if atom == b.source {
		return b.target
	}
	//
	return b.source
}

// Molecule is an undirected molecular graph, with hydrogens mostly held as
// counts on the atoms they are attached to.  A molecule is immutable once
// built, and can be safely shared between goroutines.
type Molecule struct {
	atoms []Atom
	bonds []Bond
	// Bonds incident on each atom, in the order they were added
	adjacency [][]uint
	// Smallest set of smallest rings, each given as a set of bond indices
	rings [][]uint
}

// NumAtoms implementation for smarts.Graph interface.
func (m *Molecule) NumAtoms() uint {
	return uint(len(m.atoms))
}

// Atom implementation for smarts.Graph interface.
func (m *Molecule) Atom(id uint) smarts.Atom {
	return &m.atoms[id]
}

// NumNeighbours implementation for smarts.Graph interface.
func (m *Molecule) NumNeighbours(id uint) uint {
	return uint(len(m.adjacency[id]))
}

// Neighbour implementation for smarts.Graph interface.
func (m *Molecule) Neighbour(id uint, k uint) (uint, smarts.Bond) {
	bond := &m.bonds[m.adjacency[id][k]]
	//
	return bond.Other(id), bond
}

// BondBetween implementation for smarts.Graph interface.
func (m *Molecule) BondBetween(a uint, b uint) (smarts.Bond, bool) {
	for _, i := range m.adjacency[a] {
		if bond := &m.bonds[i]; bond.Other(a) == b {
			return bond, true
		}
	}
	//
	return nil, false
}

// NumBonds returns the number of bonds in this molecule.
func (m *Molecule) NumBonds() uint {
	return uint(len(m.bonds))
}

// GetAtom returns the concrete atom with the given index.
func (m *Molecule) GetAtom(id uint) *Atom {
	return &m.atoms[id]
}

// GetBond returns the concrete bond with the given index.
func (m *Molecule) GetBond(id uint) *Bond {
	return &m.bonds[id]
}

// Rings returns the smallest set of smallest rings, where each ring is given
// as its (sorted) atom indices.  Rings are ordered by size.
func (m *Molecule) Rings() [][]uint {
	rings := make([][]uint, len(m.rings))
	//
	for i, ring := range m.rings {
		rings[i] = m.ringAtoms(ring)
	}
	//
	return rings
}

func (m *Molecule) ringAtoms(ring []uint) []uint {
	var atoms []uint
	//
	for _, b := range ring {
		bond := &m.bonds[b]
		atoms = append(atoms, bond.source, bond.target)
	}
	//
	slices.Sort(atoms)
	//
	return slices.Compact(atoms)
}
