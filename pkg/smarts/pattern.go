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

// PatternAtom is a single atom of a pattern, holding the predicate which any
// matching graph atom must satisfy.
type PatternAtom struct {
	Predicate AtomPredicate
	// Chiral indicates this atom carries a stereo specification.
	Chiral bool
	// Class is the atom class (`:n`), or 0 when unspecified.
	Class int
}

// PatternBond is a single bond of a pattern.  Bonds are processed in order
// during matching.  A growing bond assigns its (previously unassigned) target
// atom, whilst a closure bond (Grow == false) checks for a bond between two
// atoms which are both already assigned.
type PatternBond struct {
	Predicate BondPredicate
	Source    uint
	Target    uint
	Grow      bool
}

// Pattern is a compiled SMARTS query, consisting of atom predicates, bond
// predicates and a traversal plan (the order of the bonds).  A pattern is
// never modified by matching.
type Pattern struct {
	Atoms  []PatternAtom
	Bonds  []PatternBond
	Chiral bool
}

// NumAtoms returns the number of atoms in this pattern.
func (p *Pattern) NumAtoms() uint {
	return uint(len(p.Atoms))
}

// NumBonds returns the number of bonds in this pattern.
func (p *Pattern) NumBonds() uint {
	return uint(len(p.Bonds))
}

// MatchAtom checks whether the ith pattern atom accepts a given graph atom.
func (p *Pattern) MatchAtom(i uint, atom Atom) bool {
	return Evaluate(&p.Atoms[i].Predicate, atom)
}

// MatchBond checks whether the ith pattern bond accepts a given graph bond.
func (p *Pattern) MatchBond(i uint, bond Bond) bool {
	return Evaluate(&p.Bonds[i].Predicate, bond)
}

// Bond returns the endpoints of the ith pattern bond, and whether or not it
// grows the mapping.
func (p *Pattern) Bond(i uint) (uint, uint, bool) {
	b := &p.Bonds[i]
	return b.Source, b.Target, b.Grow
}

// IsChiral checks whether any atom of this pattern carries a stereo
// specification.
func (p *Pattern) IsChiral() bool {
	return p.Chiral
}

// Validate checks that the traversal plan of this pattern is executable.  That
// is, atom 0 is assigned first and then, processing bonds in order, every
// growing bond starts from an assigned atom and ends on an unassigned atom,
// whilst every closure bond connects two assigned atoms.  Furthermore, every
// atom must be assigned by the end.
func (p *Pattern) Validate() error {
	n := uint(len(p.Atoms))
	//
	if n == 0 {
		if len(p.Bonds) != 0 {
			return fmt.Errorf("pattern has %d bonds but no atoms", len(p.Bonds))
		}
		//
		return nil
	}
	//
	assigned := make([]bool, n)
	assigned[0] = true
	//
	for i, b := range p.Bonds {
		if b.Source >= n || b.Target >= n {
			return fmt.Errorf("bond %d references out-of-range atom (%d-%d)", i, b.Source, b.Target)
		} else if !assigned[b.Source] {
			return fmt.Errorf("bond %d starts from unassigned atom %d", i, b.Source)
		} else if b.Grow && assigned[b.Target] {
			return fmt.Errorf("bond %d grows onto assigned atom %d", i, b.Target)
		} else if !b.Grow && !assigned[b.Target] {
			return fmt.Errorf("bond %d closes onto unassigned atom %d", i, b.Target)
		} else if b.Source == b.Target {
			return fmt.Errorf("bond %d is a self loop on atom %d", i, b.Source)
		}
		//
		assigned[b.Target] = true
	}
	//
	for i, a := range assigned {
		if !a {
			return fmt.Errorf("atom %d is unreachable", i)
		}
	}
	//
	return nil
}

// Clone returns a deep copy of this pattern.
func (p *Pattern) Clone() *Pattern {
	atoms := make([]PatternAtom, len(p.Atoms))
	bonds := make([]PatternBond, len(p.Bonds))
	//
	for i, a := range p.Atoms {
		atoms[i] = PatternAtom{a.Predicate.Clone(), a.Chiral, a.Class}
	}
	//
	for i, b := range p.Bonds {
		bonds[i] = PatternBond{b.Predicate.Clone(), b.Source, b.Target, b.Grow}
	}
	//
	return &Pattern{atoms, bonds, p.Chiral}
}

// String returns a multi-line listing of this pattern, giving each atom
// predicate and the traversal plan.
func (p *Pattern) String() string {
	var builder strings.Builder
	//
	for i := range p.Atoms {
		a := &p.Atoms[i]
		builder.WriteString(fmt.Sprintf("atom %d: [%s]", i, a.Predicate.String()))
		//
		if a.Class != 0 {
			builder.WriteString(fmt.Sprintf(" class=%d", a.Class))
		}
		//
		if a.Chiral {
			builder.WriteString(" chiral")
		}
		//
		builder.WriteString("\n")
	}
	//
	for i := range p.Bonds {
		b := &p.Bonds[i]
		kind := "grow"
		//
		if !b.Grow {
			kind = "close"
		}
		//
		builder.WriteString(fmt.Sprintf("bond %d: %d-%d %s [%s]\n", i, b.Source, b.Target, kind, b.Predicate.String()))
	}
	//
	return builder.String()
}
