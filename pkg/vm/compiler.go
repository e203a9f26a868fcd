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
	"math"

	"github.com/timvdm/smartscompiler/pkg/smarts"
)

// UNBOUND marks a label whose address is not yet known.
const UNBOUND = math.MaxUint

// Compile a pattern into a program.  Each atom and bond predicate becomes a
// block of code which either returns 1 (match) or 0 (no match).  Conjunctions
// and disjunctions become short-circuiting jumps, whilst negations simply flip
// the sense of the jumps beneath them.  Hence, the resulting code contains no
// explicit negation.
func Compile(pattern *smarts.Pattern) *Program {
	var (
		asm   assembler
		atoms = make([]uint, len(pattern.Atoms))
		bonds = make([]uint, len(pattern.Bonds))
		plan  = make([]planBond, len(pattern.Bonds))
	)
	// First pass: emit code against symbolic labels
	for i := range pattern.Atoms {
		atoms[i] = asm.block(fmt.Sprintf("atom%d", i), func(fail uint) {
			jump(&asm, &pattern.Atoms[i].Predicate, fail, false, lowerAtom)
		})
	}
	//
	for i, bond := range pattern.Bonds {
		bonds[i] = asm.block(fmt.Sprintf("bond%d", i), func(fail uint) {
			jump(&asm, &pattern.Bonds[i].Predicate, fail, false, lowerBond)
		})
		plan[i] = planBond{bond.Source, bond.Target, bond.Grow}
	}
	// Second pass: bind labels to addresses
	code, names := asm.link()
	//
	for i := range atoms {
		atoms[i] = asm.labels[atoms[i]]
	}
	//
	for i := range bonds {
		bonds[i] = asm.labels[bonds[i]]
	}
	//
	return &Program{code, atoms, bonds, plan, pattern.IsChiral(), names}
}

// Generate code which jumps to a given label when the predicate evaluates to
// sense, and otherwise falls through.  The lowering function translates a
// leaf into a single test instruction or, for leaves which hold (or fail)
// regardless of their subject, into a constant.
func jump[L smarts.Leaf](asm *assembler, p *smarts.Predicate[L], label uint, sense bool,
	lower func(L) (Instruction, bool, bool)) {
	//
	switch p.Op() {
	case smarts.LEAF:
		insn, constant, value := lower(p.Leaf())
		//
		if !constant {
			asm.emit(insn)
			asm.branch(pick(sense, JE, JNE), label)
		} else if value == sense {
			asm.branch(JMP, label)
		}
	case smarts.NOT:
		jump(asm, p.Arg(0), label, !sense, lower)
	case smarts.AND_HIGH, smarts.AND_LOW:
		if sense {
			skip := asm.label("")
			jump(asm, p.Arg(0), skip, false, lower)
			jump(asm, p.Arg(1), label, true, lower)
			asm.bind(skip)
		} else {
			jump(asm, p.Arg(0), label, false, lower)
			jump(asm, p.Arg(1), label, false, lower)
		}
	case smarts.OR:
		if sense {
			jump(asm, p.Arg(0), label, true, lower)
			jump(asm, p.Arg(1), label, true, lower)
		} else {
			skip := asm.label("")
			jump(asm, p.Arg(0), skip, true, lower)
			jump(asm, p.Arg(1), label, false, lower)
			asm.bind(skip)
		}
	default:
		// Unknown operators are permissive
		if sense {
			asm.branch(JMP, label)
		}
	}
}

func lowerAtom(leaf smarts.AtomLeaf) (Instruction, bool, bool) {
	var op Opcode
	//
	switch leaf.Kind {
	case smarts.ATOM_FALSE:
		return Instruction{}, true, false
	case smarts.ATOM_AROMATIC:
		op = AROM
	case smarts.ATOM_ALIPHATIC:
		op = ALIPH
	case smarts.ATOM_CYCLIC:
		op = CYCLIC
	case smarts.ATOM_ACYCLIC:
		op = ACYCLIC
	case smarts.ATOM_ISOTOPE:
		op = MASS
	case smarts.ATOM_ATOMIC_NUMBER:
		op = ELEM
	case smarts.ATOM_AROMATIC_ELEMENT:
		op = AROMELEM
	case smarts.ATOM_ALIPHATIC_ELEMENT:
		op = ALIPHELEM
	case smarts.ATOM_TOTAL_H:
		op = TOTALH
	case smarts.ATOM_CHARGE:
		op = CHG
	case smarts.ATOM_CONNECTIVITY:
		op = CONN
	case smarts.ATOM_DEGREE:
		op = DEG
	case smarts.ATOM_IMPLICIT_H:
		op = IMPLH
	case smarts.ATOM_RING_MEMBERSHIP:
		op = RMEM
	case smarts.ATOM_RING_SIZE:
		op = RSIZE
	case smarts.ATOM_VALENCE:
		op = VAL
	case smarts.ATOM_RING_CONNECTIVITY:
		op = RCONN
	case smarts.ATOM_CLASS:
		op = CLASS
	default:
		// True, chirality and anything unknown
		return Instruction{}, true, true
	}
	//
	return Instruction{Op: op, Arg: leaf.Value}, false, false
}

func lowerBond(leaf smarts.BondLeaf) (Instruction, bool, bool) {
	switch leaf.Kind {
	case smarts.BOND_FALSE:
		return Instruction{}, true, false
	case smarts.BOND_DEFAULT:
		return Instruction{Op: BDEF}, false, false
	case smarts.BOND_SINGLE:
		return Instruction{Op: ORDER, Arg: 1}, false, false
	case smarts.BOND_DOUBLE:
		return Instruction{Op: ORDER, Arg: 2}, false, false
	case smarts.BOND_TRIPLE:
		return Instruction{Op: ORDER, Arg: 3}, false, false
	case smarts.BOND_QUADRUPLE:
		return Instruction{Op: ORDER, Arg: 4}, false, false
	case smarts.BOND_AROMATIC:
		return Instruction{Op: BAROM}, false, false
	case smarts.BOND_RING:
		return Instruction{Op: BRING}, false, false
	default:
		// Any, up, down and anything unknown
		return Instruction{}, true, true
	}
}

// Emits code against symbolic labels, which are bound to addresses once
// everything has been emitted.
type assembler struct {
	code []Instruction
	// Maps label identifiers to addresses
	labels []uint
	// Maps label identifiers to names (empty for internal labels)
	names []string
}

// Allocate a fresh (unbound) label.
func (p *assembler) label(name string) uint {
	p.labels = append(p.labels, UNBOUND)
	p.names = append(p.names, name)
	//
	return uint(len(p.labels) - 1)
}

// Bind a label to the next instruction emitted.
func (p *assembler) bind(label uint) {
	if p.labels[label] != UNBOUND {
		panic(fmt.Sprintf("label %d already bound", label))
	}
	//
	p.labels[label] = uint(len(p.code))
}

func (p *assembler) emit(insn Instruction) {
	p.code = append(p.code, insn)
}

func (p *assembler) branch(op Opcode, label uint) {
	p.code = append(p.code, Instruction{Op: op, Target: label})
}

// Emit a block which returns 1 unless the body jumps to its fail label.  The
// entry label of the block is returned.
func (p *assembler) block(name string, body func(fail uint)) uint {
	var (
		entry = p.label(name)
		fail  = p.label("")
	)
	//
	p.bind(entry)
	body(fail)
	p.emit(Instruction{Op: RET, Arg: 1})
	p.bind(fail)
	p.emit(Instruction{Op: RET, Arg: 0})
	//
	return entry
}

// Bind every branch to the address of its label, and name every address which
// is the target of some label.  Internal labels are named in order of first use.
func (p *assembler) link() ([]Instruction, map[uint]string) {
	var (
		names    = make(map[uint]string)
		internal = 0
	)
	//
	for i := range p.code {
		p.code[i].Bind(p.labels)
	}
	// Named labels take precedence
	for label, address := range p.labels {
		if address == UNBOUND {
			panic(fmt.Sprintf("label %d never bound", label))
		} else if p.names[label] != "" {
			names[address] = p.names[label]
		}
	}
	//
	for _, insn := range p.code {
		if _, ok := names[insn.Target]; insn.Op.IsBranch() && !ok {
			names[insn.Target] = fmt.Sprintf(".L%d", internal)
			internal++
		}
	}
	//
	return p.code, names
}

func pick[T any](cond bool, ifTrue T, ifFalse T) T {
	if cond {
		return ifTrue
	}
	//
	return ifFalse
}
