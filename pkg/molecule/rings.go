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
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Perceive ring bonds, ring atoms and the smallest set of smallest rings.
func (m *Molecule) perceiveRings() {
	m.perceiveRingBonds()
	// Number of independent rings
	nrings := len(m.bonds) - len(m.atoms) + m.components()
	//
	if nrings <= 0 {
		return
	}
	// Candidate rings are Horton's cycles, which are then considered smallest
	// first.
	var candidates []*bitset.BitSet
	//
	for root := range m.atoms {
		for _, ring := range m.hortonCycles(uint(root)) {
			if !containsSet(candidates, ring) {
				candidates = append(candidates, ring)
			}
		}
	}
	//
	slices.SortStableFunc(candidates, func(a, b *bitset.BitSet) int {
		return int(a.Count()) - int(b.Count())
	})
	// Select linearly independent rings (over GF(2)), using Gaussian
	// elimination keyed on the highest bond index.
	basis := make(map[uint]*bitset.BitSet)
	//
	for _, ring := range candidates {
		if len(m.rings) == nrings {
			break
		} else if independent(basis, ring) {
			m.rings = append(m.rings, elements(ring))
		}
	}
	//
	for _, ring := range m.rings {
		size := len(ring)
		//
		for _, id := range m.ringAtoms(ring) {
			atom := &m.atoms[id]
			atom.rings++
			//
			if !slices.Contains(atom.ringSizes, size) {
				atom.ringSizes = append(atom.ringSizes, size)
			}
		}
	}
}

// Ring bonds are exactly those which are not bridges.  Bridges are found with
// a depth-first search, where a tree bond is a bridge if no descendant of its
// lower atom can reach its upper atom (or above) without using it.  Bonds not
// in the search tree are never bridges.
func (m *Molecule) perceiveRingBonds() {
	var (
		n       = len(m.atoms)
		order   = make([]int, n)
		lowlink = make([]int, n)
		counter = 1
		visit   func(atom uint, parent int)
	)
	//
	visit = func(atom uint, parent int) {
		order[atom], lowlink[atom] = counter, counter
		counter++
		//
		for _, b := range m.adjacency[atom] {
			if int(b) == parent {
				continue
			}
			//
			next := m.bonds[b].Other(atom)
			//
			if order[next] == 0 {
				visit(next, int(b))
				lowlink[atom] = min(lowlink[atom], lowlink[next])
				// Not a bridge if next can reach atom (or above)
				m.bonds[b].cyclic = lowlink[next] <= order[atom]
			} else {
				// Any non-tree edge closes a cycle
				lowlink[atom] = min(lowlink[atom], order[next])
				m.bonds[b].cyclic = true
			}
		}
	}
	//
	for i := range m.atoms {
		if order[i] == 0 {
			visit(uint(i), -1)
		}
	}
	//
	for i := range m.bonds {
		if bond := &m.bonds[i]; bond.cyclic {
			m.atoms[bond.source].cyclic = true
			m.atoms[bond.target].cyclic = true
			m.atoms[bond.source].ringConn++
			m.atoms[bond.target].ringConn++
		}
	}
}

// Count the number of connected components.
func (m *Molecule) components() int {
	var (
		seen  = make([]bool, len(m.atoms))
		count = 0
	)
	//
	for i := range m.atoms {
		if seen[i] {
			continue
		}
		//
		count++
		worklist := []uint{uint(i)}
		seen[i] = true
		//
		for len(worklist) > 0 {
			atom := worklist[len(worklist)-1]
			worklist = worklist[:len(worklist)-1]
			//
			for _, b := range m.adjacency[atom] {
				if next := m.bonds[b].Other(atom); !seen[next] {
					seen[next] = true
					worklist = append(worklist, next)
				}
			}
		}
	}
	//
	return count
}

// Find the cycles formed by closing each ring bond (x,y) onto the shortest
// paths from a root atom to x and to y, where these paths meet only at the
// root.  The union of such cycles over all roots contains a minimum cycle
// basis.  Only ring bonds are traversed, and cycles are sets of bond indices.
func (m *Molecule) hortonCycles(root uint) []*bitset.BitSet {
	var (
		// Bond used to reach each atom (+1), or 0 if not reached.
		via    = make([]uint, len(m.atoms))
		queue  = []uint{root}
		cycles []*bitset.BitSet
	)
	//
	if !m.atoms[root].cyclic {
		return nil
	}
	// Breadth-first search tree from the root
	for len(queue) > 0 {
		atom := queue[0]
		queue = queue[1:]
		//
		for _, b := range m.adjacency[atom] {
			next := m.bonds[b].Other(atom)
			//
			if m.bonds[b].cyclic && next != root && via[next] == 0 {
				via[next] = b + 1
				queue = append(queue, next)
			}
		}
	}
	//
	for i := range m.bonds {
		bond := &m.bonds[i]
		x, y := bond.source, bond.target
		// Skip chain bonds, unreached atoms and bonds of the tree itself
		if !bond.cyclic || (x != root && via[x] == 0) || (y != root && via[y] == 0) ||
			via[x] == uint(i)+1 || via[y] == uint(i)+1 {
			continue
		}
		//
		px, py := m.pathToRoot(x, root, via), m.pathToRoot(y, root, via)
		//
		if px.IntersectionCardinality(py) == 0 {
			cycle := px.Union(py)
			cycle.Set(uint(i))
			cycles = append(cycles, cycle)
		}
	}
	//
	return cycles
}

// Determine the bonds on the search tree path from an atom back to the root.
func (m *Molecule) pathToRoot(atom uint, root uint, via []uint) *bitset.BitSet {
	path := bitset.New(uint(len(m.bonds)))
	//
	for atom != root {
		b := via[atom] - 1
		path.Set(b)
		atom = m.bonds[b].Other(atom)
	}
	//
	return path
}

// Check whether a ring is independent of those already in the basis and, if
// so, add its reduced form to the basis.
func independent(basis map[uint]*bitset.BitSet, ring *bitset.BitSet) bool {
	v := ring.Clone()
	//
	for {
		pivot, ok := highest(v)
		//
		if !ok {
			return false
		}
		//
		row, ok := basis[pivot]
		//
		if !ok {
			basis[pivot] = v
			return true
		}
		//
		v.InPlaceSymmetricDifference(row)
	}
}

func containsSet(sets []*bitset.BitSet, set *bitset.BitSet) bool {
	for _, s := range sets {
		if s.Equal(set) {
			return true
		}
	}
	//
	return false
}

// Determine the highest bond in a set of bonds.
func highest(set *bitset.BitSet) (uint, bool) {
	var (
		last  uint
		found bool
	)
	//
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		last, found = i, true
	}
	//
	return last, found
}

func elements(set *bitset.BitSet) []uint {
	items := make([]uint, 0, set.Count())
	//
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		items = append(items, i)
	}
	//
	return items
}
