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

import (
	"fmt"
	"strings"
)

// AtomKind identifies a primitive atom test.
type AtomKind uint8

const (
	// ATOM_TRUE matches any atom (`*`).
	ATOM_TRUE AtomKind = iota
	// ATOM_FALSE matches no atom (`!*`).
	ATOM_FALSE
	// ATOM_AROMATIC matches aromatic atoms (`a`).
	ATOM_AROMATIC
	// ATOM_ALIPHATIC matches aliphatic atoms (`A`).
	ATOM_ALIPHATIC
	// ATOM_CYCLIC matches ring atoms (`R`).
	ATOM_CYCLIC
	// ATOM_ACYCLIC matches chain atoms (`R0`).
	ATOM_ACYCLIC
	// ATOM_ISOTOPE matches on mass number (`13`).
	ATOM_ISOTOPE
	// ATOM_ATOMIC_NUMBER matches on element (`#6`).
	ATOM_ATOMIC_NUMBER
	// ATOM_AROMATIC_ELEMENT matches aromatic atoms of a given element (`c`).
	ATOM_AROMATIC_ELEMENT
	// ATOM_ALIPHATIC_ELEMENT matches aliphatic atoms of a given element (`C`).
	ATOM_ALIPHATIC_ELEMENT
	// ATOM_TOTAL_H matches on total hydrogen count (`H2`).
	ATOM_TOTAL_H
	// ATOM_CHARGE matches on formal charge (`+`, `-2`).
	ATOM_CHARGE
	// ATOM_CONNECTIVITY matches on total connections (`X3`).
	ATOM_CONNECTIVITY
	// ATOM_DEGREE matches on explicit connections (`D2`).
	ATOM_DEGREE
	// ATOM_IMPLICIT_H matches on implicit hydrogen count (`h1`).
	ATOM_IMPLICIT_H
	// ATOM_RING_MEMBERSHIP matches on number of smallest rings (`R2`).
	ATOM_RING_MEMBERSHIP
	// ATOM_RING_SIZE matches membership of a ring of given size (`r6`).
	ATOM_RING_SIZE
	// ATOM_VALENCE matches on total bond order (`v4`).
	ATOM_VALENCE
	// ATOM_RING_CONNECTIVITY matches on number of ring bonds (`x2`).
	ATOM_RING_CONNECTIVITY
	// ATOM_CHIRALITY marks a stereo centre (`@`, `@@`).  It always holds;
	// chirality is verified by the matcher.
	ATOM_CHIRALITY
	// ATOM_CLASS matches on atom class (`:1`).
	ATOM_CLASS
)

// ANTICLOCKWISE is the value of a chirality leaf written `@`.
const ANTICLOCKWISE = 1

// CLOCKWISE is the value of a chirality leaf written `@@`.
const CLOCKWISE = 2

// AtomLeaf is a primitive atom test, consisting of a kind and (for valued
// kinds) an integer operand.
type AtomLeaf struct {
	Kind  AtomKind
	Value int
}

// AtomPredicate is a predicate tree over atom primitives.
type AtomPredicate = Predicate[AtomLeaf]

// NewAtomLeaf constructs an atom predicate consisting of a single primitive.
func NewAtomLeaf(kind AtomKind, value int) AtomPredicate {
	return NewLeaf(AtomLeaf{kind, value})
}

// Eval determines whether this primitive holds for a given atom.
//
//nolint:gocyclo
func (p AtomLeaf) Eval(atom Atom) bool {
	switch p.Kind {
	case ATOM_TRUE:
		return true
	case ATOM_FALSE:
		return false
	case ATOM_AROMATIC:
		return atom.IsAromatic()
	case ATOM_ALIPHATIC:
		return atom.IsAliphatic()
	case ATOM_CYCLIC:
		return atom.IsCyclic()
	case ATOM_ACYCLIC:
		return atom.IsAcyclic()
	case ATOM_ISOTOPE:
		return atom.Mass() == p.Value
	case ATOM_ATOMIC_NUMBER:
		return atom.Element() == p.Value
	case ATOM_AROMATIC_ELEMENT:
		return atom.IsAromatic() && atom.Element() == p.Value
	case ATOM_ALIPHATIC_ELEMENT:
		return atom.IsAliphatic() && atom.Element() == p.Value
	case ATOM_TOTAL_H:
		return atom.TotalHydrogens() == p.Value
	case ATOM_CHARGE:
		return atom.Charge() == p.Value
	case ATOM_CONNECTIVITY:
		return atom.Connectivity() == p.Value
	case ATOM_DEGREE:
		return atom.Degree() == p.Value
	case ATOM_IMPLICIT_H:
		return atom.ImplicitHydrogens() == p.Value
	case ATOM_RING_MEMBERSHIP:
		return atom.RingMembershipCount() == p.Value
	case ATOM_RING_SIZE:
		return atom.IsInRingSize(p.Value)
	case ATOM_VALENCE:
		return atom.Valence() == p.Value
	case ATOM_RING_CONNECTIVITY:
		return atom.RingConnectivity() == p.Value
	case ATOM_CHIRALITY:
		return true
	case ATOM_CLASS:
		return atom.AtomClass() == p.Value
	}
	// Unknown primitives are permissive
	return true
}

//nolint:gocyclo
func (p AtomLeaf) String() string {
	switch p.Kind {
	case ATOM_TRUE:
		return "*"
	case ATOM_FALSE:
		return "!*"
	case ATOM_AROMATIC:
		return "a"
	case ATOM_ALIPHATIC:
		return "A"
	case ATOM_CYCLIC:
		return "R"
	case ATOM_ACYCLIC:
		return "R0"
	case ATOM_ISOTOPE:
		return fmt.Sprintf("%d", p.Value)
	case ATOM_ATOMIC_NUMBER:
		return fmt.Sprintf("#%d", p.Value)
	case ATOM_AROMATIC_ELEMENT:
		if symbol, ok := ElementSymbol(p.Value); ok {
			return strings.ToLower(symbol)
		}
		//
		return fmt.Sprintf("a&#%d", p.Value)
	case ATOM_ALIPHATIC_ELEMENT:
		if symbol, ok := ElementSymbol(p.Value); ok {
			return symbol
		}
		//
		return fmt.Sprintf("A&#%d", p.Value)
	case ATOM_TOTAL_H:
		return fmt.Sprintf("H%d", p.Value)
	case ATOM_CHARGE:
		return chargeString(p.Value)
	case ATOM_CONNECTIVITY:
		return fmt.Sprintf("X%d", p.Value)
	case ATOM_DEGREE:
		return fmt.Sprintf("D%d", p.Value)
	case ATOM_IMPLICIT_H:
		return fmt.Sprintf("h%d", p.Value)
	case ATOM_RING_MEMBERSHIP:
		return fmt.Sprintf("R%d", p.Value)
	case ATOM_RING_SIZE:
		return fmt.Sprintf("r%d", p.Value)
	case ATOM_VALENCE:
		return fmt.Sprintf("v%d", p.Value)
	case ATOM_RING_CONNECTIVITY:
		return fmt.Sprintf("x%d", p.Value)
	case ATOM_CHIRALITY:
		if p.Value == CLOCKWISE {
			return "@@"
		}
		//
		return "@"
	case ATOM_CLASS:
		return fmt.Sprintf(":%d", p.Value)
	}
	//
	return "?"
}

func chargeString(charge int) string {
	switch {
	case charge == 1:
		return "+"
	case charge == -1:
		return "-"
	case charge < 0:
		return fmt.Sprintf("-%d", -charge)
	default:
		return fmt.Sprintf("+%d", charge)
	}
}
