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
	"strings"
)

// Op identifies the kind of node in a predicate tree.
type Op uint8

// LEAF is a primitive test on an atom or bond.
const LEAF Op = 0

// AND_HIGH is a high-precedence conjunction (written `&`, or implicitly by
// juxtaposition).
const AND_HIGH Op = 1

// AND_LOW is a low-precedence conjunction (written `;`).  It is semantically
// identical to AND_HIGH, and only kept distinct to reproduce the original
// text.
const AND_LOW Op = 2

// OR is a disjunction (written `,`).
const OR Op = 3

// NOT is a negation (written `!`).
const NOT Op = 4

// Leaf captures what every primitive test in a predicate tree must provide.
// Leaves are plain values (e.g. a kind tag plus an integer) and so can be
// compared directly.
type Leaf interface {
	comparable
	// String returns the textual (SMARTS) form of this leaf.
	String() string
}

// Evaluable is a leaf which can be evaluated against a subject of type S,
// where S is typically an atom or a bond of some molecular graph.
type Evaluable[S any] interface {
	Leaf
	// Eval determines whether this primitive holds for the given subject.
	Eval(subject S) bool
}

// Predicate is a boolean expression tree over some family of leaves.  Trees are
// immutable once constructed: NOT nodes have exactly one argument, AND/OR nodes
// have exactly two arguments, and leaves have none.  Since nodes are never
// modified after construction, subtrees may be freely shared between trees.
type Predicate[L Leaf] struct {
	op   Op
	leaf L
	args []Predicate[L]
}

// NewLeaf constructs a predicate consisting of a single leaf.
func NewLeaf[L Leaf](leaf L) Predicate[L] {
	return Predicate[L]{LEAF, leaf, nil}
}

// And constructs the (high precedence) conjunction of two predicates.
func And[L Leaf](lhs Predicate[L], rhs Predicate[L]) Predicate[L] {
	var empty L
	return Predicate[L]{AND_HIGH, empty, []Predicate[L]{lhs, rhs}}
}

// AndLow constructs the (low precedence) conjunction of two predicates.
func AndLow[L Leaf](lhs Predicate[L], rhs Predicate[L]) Predicate[L] {
	var empty L
	return Predicate[L]{AND_LOW, empty, []Predicate[L]{lhs, rhs}}
}

// Or constructs the disjunction of two predicates.
func Or[L Leaf](lhs Predicate[L], rhs Predicate[L]) Predicate[L] {
	var empty L
	return Predicate[L]{OR, empty, []Predicate[L]{lhs, rhs}}
}

// Not constructs the negation of a predicate.
func Not[L Leaf](arg Predicate[L]) Predicate[L] {
	var empty L
	return Predicate[L]{NOT, empty, []Predicate[L]{arg}}
}

// Binary constructs a binary node with the given operator.  This is useful for
// rewriting, where the operator of the original node should be preserved.
func Binary[L Leaf](op Op, lhs Predicate[L], rhs Predicate[L]) Predicate[L] {
	if op != AND_HIGH && op != AND_LOW && op != OR {
		panic("invalid binary operator")
	}
	//
	var empty L
	//
	return Predicate[L]{op, empty, []Predicate[L]{lhs, rhs}}
}

// Op returns the operator of this node.
func (p *Predicate[L]) Op() Op {
	return p.op
}

// IsLeaf checks whether this node is a leaf.
func (p *Predicate[L]) IsLeaf() bool {
	return p.op == LEAF
}

// IsAnd checks whether this node is a conjunction (of either precedence).
func (p *Predicate[L]) IsAnd() bool {
	return p.op == AND_HIGH || p.op == AND_LOW
}

// Leaf returns the leaf of a LEAF node.
func (p *Predicate[L]) Leaf() L {
	if p.op != LEAF {
		panic("predicate is not a leaf")
	}
	//
	return p.leaf
}

// Arg returns the ith argument of a NOT, AND or OR node.  The argument of a NOT
// node is at index 0, whilst the left and right arguments of a binary node are
// at indices 0 and 1 respectively.
func (p *Predicate[L]) Arg(i uint) *Predicate[L] {
	return &p.args[i]
}

// Equals checks whether two predicates are structurally identical.  Observe
// that AND_HIGH and AND_LOW are considered distinct here.
func (p *Predicate[L]) Equals(other *Predicate[L]) bool {
	if p.op != other.op || len(p.args) != len(other.args) {
		return false
	} else if p.op == LEAF {
		return p.leaf == other.leaf
	}
	//
	for i := range p.args {
		if !p.args[i].Equals(&other.args[i]) {
			return false
		}
	}
	//
	return true
}

// Clone creates a deep copy of this predicate.
func (p *Predicate[L]) Clone() Predicate[L] {
	if p.op == LEAF {
		return *p
	}
	//
	args := make([]Predicate[L], len(p.args))
	//
	for i := range p.args {
		args[i] = p.args[i].Clone()
	}
	//
	return Predicate[L]{p.op, p.leaf, args}
}

// Size returns the number of nodes in this predicate tree.
func (p *Predicate[L]) Size() uint {
	size := uint(1)
	//
	for i := range p.args {
		size += p.args[i].Size()
	}
	//
	return size
}

// Evaluate a predicate against a given subject.  Conjunctions and disjunctions
// short-circuit: the right-hand side is not evaluated when the left-hand side
// already determines the outcome.
func Evaluate[S any, L Evaluable[S]](p *Predicate[L], subject S) bool {
	switch p.op {
	case LEAF:
		return p.leaf.Eval(subject)
	case NOT:
		return !Evaluate(&p.args[0], subject)
	case AND_HIGH, AND_LOW:
		return Evaluate(&p.args[0], subject) && Evaluate(&p.args[1], subject)
	case OR:
		return Evaluate(&p.args[0], subject) || Evaluate(&p.args[1], subject)
	}
	// Unknown operators are permissive
	return true
}

func (p *Predicate[L]) String() string {
	var builder strings.Builder
	//
	p.write(&builder)
	//
	return builder.String()
}

func (p *Predicate[L]) write(builder *strings.Builder) {
	switch p.op {
	case LEAF:
		builder.WriteString(p.leaf.String())
	case NOT:
		builder.WriteString("!")
		p.args[0].writeArg(builder, p.precedence())
	default:
		p.args[0].writeArg(builder, p.precedence())
		builder.WriteString(p.symbol())
		p.args[1].writeArg(builder, p.precedence())
	}
}

// Write an argument, adding braces if its precedence is lower than that of the
// enclosing node.  Braces are not part of SMARTS, hence this is only
// for human consumption.
func (p *Predicate[L]) writeArg(builder *strings.Builder, enclosing uint) {
	if p.precedence() < enclosing {
		builder.WriteString("(")
		p.write(builder)
		builder.WriteString(")")
	} else {
		p.write(builder)
	}
}

func (p *Predicate[L]) precedence() uint {
	switch p.op {
	case AND_LOW:
		return 1
	case OR:
		return 2
	case AND_HIGH:
		return 3
	case NOT:
		return 4
	default:
		return 5
	}
}

func (p *Predicate[L]) symbol() string {
	switch p.op {
	case AND_HIGH:
		return "&"
	case AND_LOW:
		return ";"
	case OR:
		return ","
	case NOT:
		return "!"
	default:
		return ""
	}
}
