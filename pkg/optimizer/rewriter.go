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

// Knowledge about a particular family of leaves needed for rewriting.
type rules[L smarts.Leaf] interface {
	// Check whether a leaf accepts everything.
	isTrue(leaf L) bool
	// Check whether a leaf accepts nothing.
	isFalse(leaf L) bool
	// Leaf accepting everything (or nothing).
	constant(value bool) L
	// Complement of a leaf, if one exists.
	negate(leaf L) (L, bool)
	// Single leaf equivalent to the conjunction of two leaves, if one exists.
	conjoin(lhs L, rhs L) (L, bool)
	// Single leaf equivalent to the disjunction of two leaves, if one exists.
	disjoin(lhs L, rhs L) (L, bool)
}

// Bottom-up rewriting of predicate trees.  Arguments are rewritten before the
// node itself, hence a rewrite at one level can enable a rewrite at the next.
type rewriter[L smarts.Leaf] struct {
	opts   Optimisation
	rules  rules[L]
	counts map[Optimisation]uint
}

func newRewriter[L smarts.Leaf](opts Optimisation, rules rules[L]) *rewriter[L] {
	return &rewriter[L]{opts, rules, make(map[Optimisation]uint)}
}

func (r *rewriter[L]) rewrite(p *smarts.Predicate[L]) smarts.Predicate[L] {
	switch p.Op() {
	case smarts.LEAF:
		return *p
	case smarts.NOT:
		return r.rewriteNot(r.rewrite(p.Arg(0)))
	default:
		return r.rewriteBinary(p.Op(), r.rewrite(p.Arg(0)), r.rewrite(p.Arg(1)))
	}
}

func (r *rewriter[L]) rewriteNot(arg smarts.Predicate[L]) smarts.Predicate[L] {
	if arg.Op() == smarts.NOT && r.apply(DOUBLE_NEGATION) {
		return *arg.Arg(0)
	} else if !arg.IsLeaf() || !r.opts.Has(NEGATION_ELIM) {
		return smarts.Not(arg)
	}
	//
	leaf := arg.Leaf()
	//
	switch {
	case r.rules.isTrue(leaf):
		r.apply(NEGATION_ELIM)
		return smarts.NewLeaf(r.rules.constant(false))
	case r.rules.isFalse(leaf):
		r.apply(NEGATION_ELIM)
		return smarts.NewLeaf(r.rules.constant(true))
	}
	//
	if complement, ok := r.rules.negate(leaf); ok {
		r.apply(NEGATION_ELIM)
		return smarts.NewLeaf(complement)
	}
	//
	return smarts.Not(arg)
}

func (r *rewriter[L]) rewriteBinary(op smarts.Op, lhs smarts.Predicate[L], rhs smarts.Predicate[L]) smarts.Predicate[L] {
	conjunction := op != smarts.OR
	// Constants
	for _, args := range [][2]*smarts.Predicate[L]{{&lhs, &rhs}, {&rhs, &lhs}} {
		constant, other := args[0], args[1]
		//
		if !constant.IsLeaf() {
			continue
		} else if r.rules.isTrue(constant.Leaf()) && r.apply(TRUE_ELIM) {
			return pick(conjunction, *other, *constant)
		} else if r.rules.isFalse(constant.Leaf()) && r.apply(FALSE_ELIM) {
			return pick(conjunction, *constant, *other)
		}
	}
	// Duplicates
	if lhs.Equals(&rhs) && r.apply(DUPLICATE_ELIM) {
		return lhs
	}
	// Contractions
	if lhs.IsLeaf() && rhs.IsLeaf() && r.opts.Has(ELEMENT_CONTRACTION) {
		combine := r.rules.disjoin
		//
		if conjunction {
			combine = r.rules.conjoin
		}
		//
		if leaf, ok := combine(lhs.Leaf(), rhs.Leaf()); ok {
			r.apply(ELEMENT_CONTRACTION)
			return smarts.NewLeaf(leaf)
		} else if leaf, ok := combine(rhs.Leaf(), lhs.Leaf()); ok {
			r.apply(ELEMENT_CONTRACTION)
			return smarts.NewLeaf(leaf)
		}
	}
	//
	return smarts.Binary(op, lhs, rhs)
}

// Record that a rewrite is being applied, returning false if it is disabled.
func (r *rewriter[L]) apply(flag Optimisation) bool {
	if !r.opts.Has(flag) {
		return false
	}
	//
	r.counts[flag]++
	//
	return true
}

func pick[T any](cond bool, ifTrue T, ifFalse T) T {
	if cond {
		return ifTrue
	}
	//
	return ifFalse
}
