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
	"testing"

	"github.com/stretchr/testify/assert"
)

// countLeaf is a leaf which records how often it is evaluated.
type countLeaf struct {
	id    int
	value bool
}

func (l countLeaf) String() string {
	if l.value {
		return "T"
	}
	//
	return "F"
}

func (l countLeaf) Eval(counts []int) bool {
	counts[l.id]++
	return l.value
}

func Test_Predicate_00(t *testing.T) {
	// OR must not evaluate its right-hand side when the left side holds.
	p := Or(NewLeaf(countLeaf{0, true}), NewLeaf(countLeaf{1, true}))
	counts := make([]int, 2)
	//
	assert.True(t, Evaluate(&p, counts))
	assert.Equal(t, []int{1, 0}, counts)
}

func Test_Predicate_01(t *testing.T) {
	// OR evaluates its right-hand side when the left side fails.
	p := Or(NewLeaf(countLeaf{0, false}), NewLeaf(countLeaf{1, true}))
	counts := make([]int, 2)
	//
	assert.True(t, Evaluate(&p, counts))
	assert.Equal(t, []int{1, 1}, counts)
}

func Test_Predicate_02(t *testing.T) {
	for _, op := range []Op{AND_HIGH, AND_LOW} {
		p := Binary(op, NewLeaf(countLeaf{0, false}), NewLeaf(countLeaf{1, true}))
		counts := make([]int, 2)
		//
		assert.False(t, Evaluate(&p, counts))
		assert.Equal(t, []int{1, 0}, counts)
	}
}

func Test_Predicate_03(t *testing.T) {
	p := Not(And(NewLeaf(countLeaf{0, true}), NewLeaf(countLeaf{1, false})))
	counts := make([]int, 2)
	//
	assert.True(t, Evaluate(&p, counts))
	assert.Equal(t, []int{1, 1}, counts)
}

func Test_Predicate_04(t *testing.T) {
	// [C,N;!R]
	c := NewAtomLeaf(ATOM_ALIPHATIC_ELEMENT, 6)
	n := NewAtomLeaf(ATOM_ALIPHATIC_ELEMENT, 7)
	r := NewAtomLeaf(ATOM_CYCLIC, 0)
	p := AndLow(Or(c, n), Not(r))
	//
	assert.Equal(t, "C,N;!R", p.String())
	assert.True(t, Evaluate(&p, Atom(methylCarbon)))
	assert.True(t, Evaluate(&p, Atom(ammonium)))
	assert.False(t, Evaluate(&p, Atom(aromaticCarbon)))
}

func Test_Predicate_05(t *testing.T) {
	c := NewAtomLeaf(ATOM_ALIPHATIC_ELEMENT, 6)
	n := NewAtomLeaf(ATOM_ALIPHATIC_ELEMENT, 7)
	h := NewAtomLeaf(ATOM_TOTAL_H, 1)
	// Braces are required where precedence would otherwise be lost.
	p1 := And(Or(c, n), h)
	p2 := Not(Or(c, n))
	p3 := Or(AndLow(c, n), h)
	//
	assert.Equal(t, "(C,N)&H1", p1.String())
	assert.Equal(t, "!(C,N)", p2.String())
	assert.Equal(t, "(C;N),H1", p3.String())
}

func Test_Predicate_06(t *testing.T) {
	c := NewAtomLeaf(ATOM_ALIPHATIC_ELEMENT, 6)
	n := NewAtomLeaf(ATOM_ALIPHATIC_ELEMENT, 7)
	p1 := And(c, Not(n))
	p2 := And(c.Clone(), Not(n))
	p3 := AndLow(c, Not(n))
	p4 := And(c, Not(c))
	//
	assert.True(t, p1.Equals(&p2))
	assert.False(t, p1.Equals(&p3))
	assert.False(t, p1.Equals(&p4))
	assert.Equal(t, uint(4), p1.Size())
	assert.True(t, p1.Arg(1).Arg(0).IsLeaf())
	assert.Equal(t, n.Leaf(), p1.Arg(1).Arg(0).Leaf())
}

func Test_Predicate_07(t *testing.T) {
	p1 := Or(NewBondLeaf(BOND_SINGLE), NewBondLeaf(BOND_DOUBLE))
	p2 := p1.Clone()
	// Clones do not share argument storage
	p2.args[0] = NewBondLeaf(BOND_TRIPLE)
	//
	assert.Equal(t, "-,=", p1.String())
	assert.Equal(t, "#,=", p2.String())
}

func Test_Predicate_08(t *testing.T) {
	assert.Panics(t, func() {
		Binary(NOT, NewBondLeaf(BOND_ANY), NewBondLeaf(BOND_ANY))
	})
	assert.Panics(t, func() {
		p := Not(NewBondLeaf(BOND_ANY))
		p.Leaf()
	})
}
