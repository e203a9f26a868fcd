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
)

// Opcode identifies an instruction.  Test instructions set the machine's truth
// flag, branch instructions read it.
type Opcode uint8

const (
	// JMP jumps unconditionally.
	JMP Opcode = iota
	// JE jumps if the truth flag is set.
	JE
	// JNE jumps if the truth flag is not set.
	JNE
	// RET terminates execution, returning true if its argument is non-zero.
	RET
	// AROM tests whether an atom is aromatic.
	AROM
	// ALIPH tests whether an atom is aliphatic.
	ALIPH
	// CYCLIC tests whether an atom is in a ring.
	CYCLIC
	// ACYCLIC tests whether an atom is not in a ring.
	ACYCLIC
	// ELEM tests the atomic number of an atom.
	ELEM
	// AROMELEM tests the atomic number of an aromatic atom.
	AROMELEM
	// ALIPHELEM tests the atomic number of an aliphatic atom.
	ALIPHELEM
	// MASS tests the isotope of an atom.
	MASS
	// DEG tests the degree of an atom.
	DEG
	// VAL tests the total valence of an atom.
	VAL
	// CONN tests the connectivity of an atom.
	CONN
	// TOTALH tests the total hydrogen count of an atom.
	TOTALH
	// IMPLH tests the implicit hydrogen count of an atom.
	IMPLH
	// RMEM tests the number of rings an atom is in.
	RMEM
	// RSIZE tests whether an atom is in a ring of a given size.
	RSIZE
	// RCONN tests the ring connectivity of an atom.
	RCONN
	// CHG tests the formal charge of an atom.
	CHG
	// CLASS tests the atom class of an atom.
	CLASS
	// BDEF tests whether a bond is single or aromatic.
	BDEF
	// ORDER tests the order of a bond.
	ORDER
	// BAROM tests whether a bond is aromatic.
	BAROM
	// BRING tests whether a bond is in a ring.
	BRING
)

var mnemonics = []string{
	"jmp", "je", "jne", "ret",
	"arom", "aliph", "cyclic", "acyclic", "elem", "aromelem", "aliphelem", "mass", "deg", "val", "conn",
	"totalh", "implh", "rmem", "rsize", "rconn", "chg", "class",
	"bdef", "order", "barom", "bring",
}

func (op Opcode) String() string {
	if int(op) < len(mnemonics) {
		return mnemonics[op]
	}
	//
	return fmt.Sprintf("op%d", op)
}

// IsBranch checks whether this opcode has a jump target.
func (op Opcode) IsBranch() bool {
	return op == JMP || op == JE || op == JNE
}

// hasArgument checks whether this opcode has an integer argument.
func (op Opcode) hasArgument() bool {
	switch op {
	case RET, ELEM, AROMELEM, ALIPHELEM, MASS, DEG, VAL, CONN, TOTALH, IMPLH, RMEM, RSIZE, RCONN, CHG,
		CLASS, ORDER:
		return true
	default:
		return false
	}
}

// Instruction is a single machine instruction.  For branches, Target holds the
// destination address (or, during assembly, a label identifier).  For tests,
// Arg holds the value being tested against.
type Instruction struct {
	Op     Opcode
	Arg    int
	Target uint
}

// Bind the label of a branch instruction to its address, using the given label
// map.
func (p *Instruction) Bind(labels []uint) {
	if p.Op.IsBranch() {
		p.Target = labels[p.Target]
	}
}

func (p Instruction) String() string {
	switch {
	case p.Op.IsBranch():
		return fmt.Sprintf("%s %d", p.Op, p.Target)
	case p.Op.hasArgument():
		return fmt.Sprintf("%s %d", p.Op, p.Arg)
	default:
		return p.Op.String()
	}
}
