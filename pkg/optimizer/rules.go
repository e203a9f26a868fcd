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
package optimizer

import "github.com/timvdm/smartscompiler/pkg/smarts"

type atomRules struct{}

func (atomRules) isTrue(leaf smarts.AtomLeaf) bool {
	return leaf.Kind == smarts.ATOM_TRUE
}

func (atomRules) isFalse(leaf smarts.AtomLeaf) bool {
	return leaf.Kind == smarts.ATOM_FALSE
}

func (atomRules) constant(value bool) smarts.AtomLeaf {
	if value {
		return smarts.AtomLeaf{Kind: smarts.ATOM_TRUE}
	}
	//
	return smarts.AtomLeaf{Kind: smarts.ATOM_FALSE}
}

// Aromaticity and ring membership are each split into two complementary
// primitives.
func (atomRules) negate(leaf smarts.AtomLeaf) (smarts.AtomLeaf, bool) {
	switch leaf.Kind {
	case smarts.ATOM_AROMATIC:
		return smarts.AtomLeaf{Kind: smarts.ATOM_ALIPHATIC}, true
	case smarts.ATOM_ALIPHATIC:
		return smarts.AtomLeaf{Kind: smarts.ATOM_AROMATIC}, true
	case smarts.ATOM_CYCLIC:
		return smarts.AtomLeaf{Kind: smarts.ATOM_ACYCLIC}, true
	case smarts.ATOM_ACYCLIC:
		return smarts.AtomLeaf{Kind: smarts.ATOM_CYCLIC}, true
	}
	//
	return leaf, false
}

func (atomRules) conjoin(lhs smarts.AtomLeaf, rhs smarts.AtomLeaf) (smarts.AtomLeaf, bool) {
	switch {
	case lhs.Kind == smarts.ATOM_ATOMIC_NUMBER && rhs.Kind == smarts.ATOM_ALIPHATIC:
		// #6&A => C
		return smarts.AtomLeaf{Kind: smarts.ATOM_ALIPHATIC_ELEMENT, Value: lhs.Value}, true
	case lhs.Kind == smarts.ATOM_ATOMIC_NUMBER && rhs.Kind == smarts.ATOM_AROMATIC:
		// #6&a => c
		return smarts.AtomLeaf{Kind: smarts.ATOM_AROMATIC_ELEMENT, Value: lhs.Value}, true
	case lhs.Kind == smarts.ATOM_ALIPHATIC_ELEMENT && rhs.Kind == smarts.ATOM_ALIPHATIC:
		// C&A => C
		return lhs, true
	case lhs.Kind == smarts.ATOM_AROMATIC_ELEMENT && rhs.Kind == smarts.ATOM_AROMATIC:
		// c&a => c
		return lhs, true
	case lhs.Kind == smarts.ATOM_ATOMIC_NUMBER && (rhs.Kind == smarts.ATOM_ALIPHATIC_ELEMENT ||
		rhs.Kind == smarts.ATOM_AROMATIC_ELEMENT) && lhs.Value == rhs.Value:
		// #6&C => C
		return rhs, true
	}
	//
	return lhs, false
}

func (atomRules) disjoin(lhs smarts.AtomLeaf, rhs smarts.AtomLeaf) (smarts.AtomLeaf, bool) {
	switch {
	case lhs.Kind == smarts.ATOM_ALIPHATIC_ELEMENT && rhs.Kind == smarts.ATOM_ALIPHATIC:
		// C,A => A
		return rhs, true
	case lhs.Kind == smarts.ATOM_AROMATIC_ELEMENT && rhs.Kind == smarts.ATOM_AROMATIC:
		// c,a => a
		return rhs, true
	case lhs.Kind == smarts.ATOM_ALIPHATIC && rhs.Kind == smarts.ATOM_AROMATIC:
		// A,a => *
		return smarts.AtomLeaf{Kind: smarts.ATOM_TRUE}, true
	case lhs.Kind == smarts.ATOM_ALIPHATIC_ELEMENT && rhs.Kind == smarts.ATOM_AROMATIC_ELEMENT &&
		lhs.Value == rhs.Value:
		// C,c => #6
		return smarts.AtomLeaf{Kind: smarts.ATOM_ATOMIC_NUMBER, Value: lhs.Value}, true
	}
	//
	return lhs, false
}

type bondRules struct{}

func (bondRules) isTrue(leaf smarts.BondLeaf) bool {
	return leaf.Kind == smarts.BOND_ANY
}

func (bondRules) isFalse(leaf smarts.BondLeaf) bool {
	return leaf.Kind == smarts.BOND_FALSE
}

func (bondRules) constant(value bool) smarts.BondLeaf {
	if value {
		return smarts.BondLeaf{Kind: smarts.BOND_ANY}
	}
	//
	return smarts.BondLeaf{Kind: smarts.BOND_FALSE}
}

func (bondRules) negate(leaf smarts.BondLeaf) (smarts.BondLeaf, bool) {
	return leaf, false
}

func (bondRules) conjoin(lhs smarts.BondLeaf, rhs smarts.BondLeaf) (smarts.BondLeaf, bool) {
	if lhs.Kind == smarts.BOND_DEFAULT && (rhs.Kind == smarts.BOND_SINGLE || rhs.Kind == smarts.BOND_AROMATIC) {
		return rhs, true
	}
	//
	return lhs, false
}

func (bondRules) disjoin(lhs smarts.BondLeaf, rhs smarts.BondLeaf) (smarts.BondLeaf, bool) {
	switch {
	case lhs.Kind == smarts.BOND_DEFAULT && (rhs.Kind == smarts.BOND_SINGLE || rhs.Kind == smarts.BOND_AROMATIC):
		return lhs, true
	case lhs.Kind == smarts.BOND_SINGLE && rhs.Kind == smarts.BOND_AROMATIC:
		return smarts.BondLeaf{Kind: smarts.BOND_DEFAULT}, true
	}
	//
	return lhs, false
}
