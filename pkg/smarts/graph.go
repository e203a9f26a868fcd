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
package smarts

// AROMATIC_ORDER is the bond order reported for aromatic bonds.  Aromatic bonds
// are therefore never matched by the single, double, triple or quadruple bond
// primitives.
const AROMATIC_ORDER = 5

// Atom is the capability a graph atom must provide for atom predicates to be
// evaluated against it.  Implementations must ensure IsAliphatic() is the
// negation of IsAromatic(), and IsAcyclic() the negation of IsCyclic().
type Atom interface {
	IsAromatic() bool
	IsAliphatic() bool
	IsCyclic() bool
	IsAcyclic() bool
	// Element returns the atomic number.
	Element() int
	// Mass returns the isotope mass number, or 0 when unspecified.
	Mass() int
	// Degree returns the number of explicit connections.
	Degree() int
	// Valence returns the total bond order, including implicit hydrogens.
	Valence() int
	// Connectivity returns the total number of connections, including
	// implicit hydrogens.
	Connectivity() int
	TotalHydrogens() int
	ImplicitHydrogens() int
	// RingMembershipCount returns the number of smallest rings this atom is
	// a member of.
	RingMembershipCount() int
	// RingConnectivity returns the number of ring bonds on this atom.
	RingConnectivity() int
	Charge() int
	AtomClass() int
	// IsInRingSize checks whether this atom is a member of a (smallest) ring
	// of the given size.
	IsInRingSize(size int) bool
}

// Bond is the capability a graph bond must provide for bond predicates to be
// evaluated against it.
type Bond interface {
	IsAromatic() bool
	IsCyclic() bool
	// Order returns the bond order (1, 2, 3, 4 or AROMATIC_ORDER).
	Order() int
	// Source returns the first endpoint of this bond.
	Source() uint
	// Target returns the second endpoint of this bond.
	Target() uint
	// Other returns the endpoint of this bond which is not the given atom.
	Other(atom uint) uint
}

// Graph is the read-only view of a molecular graph needed by the matcher.  Atoms
// are identified by their index in the range 0..NumAtoms()-1.
type Graph interface {
	// NumAtoms returns the number of atoms in this graph.
	NumAtoms() uint
	// Atom returns the atom with the given index.
	Atom(id uint) Atom
	// NumNeighbours returns the number of neighbours of a given atom.
	NumNeighbours(id uint) uint
	// Neighbour returns the kth neighbour of an atom, along with the bond
	// connecting them.  The enumeration order must be stable.
	Neighbour(id uint, k uint) (uint, Bond)
	// BondBetween returns the bond directly connecting two atoms, if any.
	BondBetween(a uint, b uint) (Bond, bool)
}
