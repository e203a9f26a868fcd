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

// BondKind identifies a primitive bond test.
type BondKind uint8

const (
	// BOND_ANY matches any bond (`~`).
	BOND_ANY BondKind = iota
	// BOND_FALSE matches no bond (`!~`).
	BOND_FALSE
	// BOND_DEFAULT is the implicit bond between two atoms, matching single or
	// aromatic bonds.
	BOND_DEFAULT
	// BOND_SINGLE matches single bonds (`-`).
	BOND_SINGLE
	// BOND_DOUBLE matches double bonds (`=`).
	BOND_DOUBLE
	// BOND_TRIPLE matches triple bonds (`#`).
	BOND_TRIPLE
	// BOND_QUADRUPLE matches quadruple bonds (`$`).
	BOND_QUADRUPLE
	// BOND_AROMATIC matches aromatic bonds (`:`).
	BOND_AROMATIC
	// BOND_RING matches ring bonds (`@`).
	BOND_RING
	// BOND_UP is a directional bond (`/`).  Direction is not checked.
	BOND_UP
	// BOND_DOWN is a directional bond (`\`).  Direction is not checked.
	BOND_DOWN
)

// BondLeaf is a primitive bond test.
type BondLeaf struct {
	Kind BondKind
}

// BondPredicate is a predicate tree over bond primitives.
type BondPredicate = Predicate[BondLeaf]

// NewBondLeaf constructs a bond predicate consisting of a single primitive.
func NewBondLeaf(kind BondKind) BondPredicate {
	return NewLeaf(BondLeaf{kind})
}

// Eval determines whether this primitive holds for a given bond.
func (p BondLeaf) Eval(bond Bond) bool {
	switch p.Kind {
	case BOND_ANY:
		return true
	case BOND_FALSE:
		return false
	case BOND_DEFAULT:
		return bond.Order() == 1 || bond.IsAromatic()
	case BOND_SINGLE:
		return bond.Order() == 1
	case BOND_DOUBLE:
		return bond.Order() == 2
	case BOND_TRIPLE:
		return bond.Order() == 3
	case BOND_QUADRUPLE:
		return bond.Order() == 4
	case BOND_AROMATIC:
		return bond.IsAromatic()
	case BOND_RING:
		return bond.IsCyclic()
	case BOND_UP, BOND_DOWN:
		return true
	}
	// Unknown primitives are permissive
	return true
}

func (p BondLeaf) String() string {
	switch p.Kind {
	case BOND_ANY:
		return "~"
	case BOND_FALSE:
		return "!~"
	case BOND_DEFAULT:
		return ""
	case BOND_SINGLE:
		return "-"
	case BOND_DOUBLE:
		return "="
	case BOND_TRIPLE:
		return "#"
	case BOND_QUADRUPLE:
		return "$"
	case BOND_AROMATIC:
		return ":"
	case BOND_RING:
		return "@"
	case BOND_UP:
		return "/"
	case BOND_DOWN:
		return "\\"
	}
	//
	return "?"
}
