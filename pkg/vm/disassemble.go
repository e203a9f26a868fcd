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
	"io"
)

// Disassemble writes a human-readable listing of this program.  Labelled
// addresses are printed on their own line, and each instruction is prefixed
// by its address.  Branch targets are printed by name.
func (p *Program) Disassemble(w io.Writer) error {
	for pc, insn := range p.code {
		if name, ok := p.names[uint(pc)]; ok {
			if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
				return err
			}
		}
		//
		text := insn.String()
		//
		if insn.Op.IsBranch() {
			text = fmt.Sprintf("%s %s", insn.Op, p.names[insn.Target])
		}
		//
		if _, err := fmt.Fprintf(w, "%4d  %s\n", pc, text); err != nil {
			return err
		}
	}
	// Traversal plan
	for i, b := range p.plan {
		kind := "close"
		//
		if b.grow {
			kind = "grow"
		}
		//
		if _, err := fmt.Fprintf(w, "; bond%d %d-%d %s\n", i, b.source, b.target, kind); err != nil {
			return err
		}
	}
	//
	return nil
}
