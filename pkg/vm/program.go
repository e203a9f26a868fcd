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
package vm

import (
	"fmt"

	"github.com/timvdm/smartscompiler/pkg/smarts"
)

// Program is a compiled pattern.  This carries the same traversal plan as the
// pattern it was compiled from, but evaluates atom and bond predicates by
// executing bytecode.  Programs are immutable and, hence, safe for concurrent
// use.
type Program struct {
	code []Instruction
	// Entry points for each atom predicate
	atoms []uint
	// Entry points for each bond predicate
	bonds []uint
	// Traversal plan
	plan   []planBond
	chiral bool
	// Names of labelled addresses
	names map[uint]string
}

type planBond struct {
	source uint
	target uint
	grow   bool
}

// NumAtoms returns the number of atoms in the compiled pattern.
func (p *Program) NumAtoms() uint {
	return uint(len(p.atoms))
}

// NumBonds returns the number of bonds in the compiled pattern.
func (p *Program) NumBonds() uint {
	return uint(len(p.bonds))
}

// MatchAtom executes the code for the ith atom predicate.
func (p *Program) MatchAtom(i uint, atom smarts.Atom) bool {
	return p.exec(p.atoms[i], atom, nil)
}

// MatchBond executes the code for the ith bond predicate.
func (p *Program) MatchBond(i uint, bond smarts.Bond) bool {
	return p.exec(p.bonds[i], nil, bond)
}

// Bond returns the source and target atoms of the ith bond, and whether it
// grows the mapping.
func (p *Program) Bond(i uint) (uint, uint, bool) {
	b := p.plan[i]
	return b.source, b.target, b.grow
}

// IsChiral checks whether the compiled pattern had stereo specifications.
func (p *Program) IsChiral() bool {
	return p.chiral
}

// Len returns the number of instructions in this program.
func (p *Program) Len() uint {
	return uint(len(p.code))
}

// Execute code starting from a given address until a return instruction is
// reached.  Atom tests are only valid in atom blocks, and bond tests in bond
// blocks.
//
//nolint:gocyclo
func (p *Program) exec(pc uint, atom smarts.Atom, bond smarts.Bond) bool {
	var tf bool
	//
	for {
		insn := &p.code[pc]
		pc++
		//
		switch insn.Op {
		case JMP:
			pc = insn.Target
		case JE:
			if tf {
				pc = insn.Target
			}
		case JNE:
			if !tf {
				pc = insn.Target
			}
		case RET:
			return insn.Arg != 0
		case AROM:
			tf = atom.IsAromatic()
		case ALIPH:
			tf = atom.IsAliphatic()
		case CYCLIC:
			tf = atom.IsCyclic()
		case ACYCLIC:
			tf = atom.IsAcyclic()
		case ELEM:
			tf = atom.Element() == insn.Arg
		case AROMELEM:
			tf = atom.IsAromatic() && atom.Element() == insn.Arg
		case ALIPHELEM:
			tf = atom.IsAliphatic() && atom.Element() == insn.Arg
		case MASS:
			tf = atom.Mass() == insn.Arg
		case DEG:
			tf = atom.Degree() == insn.Arg
		case VAL:
			tf = atom.Valence() == insn.Arg
		case CONN:
			tf = atom.Connectivity() == insn.Arg
		case TOTALH:
			tf = atom.TotalHydrogens() == insn.Arg
		case IMPLH:
			tf = atom.ImplicitHydrogens() == insn.Arg
		case RMEM:
			tf = atom.RingMembershipCount() == insn.Arg
		case RSIZE:
			tf = atom.IsInRingSize(insn.Arg)
		case RCONN:
			tf = atom.RingConnectivity() == insn.Arg
		case CHG:
			tf = atom.Charge() == insn.Arg
		case CLASS:
			tf = atom.AtomClass() == insn.Arg
		case BDEF:
			tf = bond.Order() == 1 || bond.IsAromatic()
		case ORDER:
			tf = bond.Order() == insn.Arg
		case BAROM:
			tf = bond.IsAromatic()
		case BRING:
			tf = bond.IsCyclic()
		default:
			panic(fmt.Sprintf("invalid instruction %s at %d", insn.String(), pc-1))
		}
	}
}
