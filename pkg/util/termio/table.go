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
package termio

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table accumulates rows of text, and writes them with each column padded to
// its widest cell.  The first column is left aligned, all others right
// aligned.
type Table struct {
	widths []uint
	rows   [][]string
	styles [][]Style
	// Determines whether styles are written
	styled bool
}

// NewTable constructs an empty table with a given header row.
func NewTable(styled bool, header ...string) *Table {
	table := &Table{widths: make([]uint, len(header)), styled: styled}
	table.Add(header...)
	//
	return table
}

// Add a row to this table, returning its index.
func (p *Table) Add(cells ...string) uint {
	if len(cells) != len(p.widths) {
		panic(fmt.Sprintf("expected %d columns, found %d", len(p.widths), len(cells)))
	}
	//
	for i, cell := range cells {
		p.widths[i] = max(p.widths[i], uint(utf8.RuneCountInString(cell)))
	}
	//
	p.rows = append(p.rows, cells)
	p.styles = append(p.styles, make([]Style, len(cells)))
	//
	return uint(len(p.rows) - 1)
}

// Style sets the style used for a given cell.
func (p *Table) Style(row uint, col uint, style Style) {
	p.styles[row][col] = style
}

// Height returns the number of rows in this table, including the header.
func (p *Table) Height() uint {
	return uint(len(p.rows))
}

// Write this table, with a separator line beneath the header.
func (p *Table) Write(w io.Writer) error {
	var builder strings.Builder
	//
	for i, row := range p.rows {
		for j, cell := range row {
			padding := strings.Repeat(" ", int(p.widths[j])-utf8.RuneCountInString(cell))
			//
			if p.styled {
				cell = p.styles[i][j].Apply(cell)
			}
			//
			if j != 0 {
				builder.WriteString("  ")
				builder.WriteString(padding)
				builder.WriteString(cell)
			} else {
				builder.WriteString(cell)
				builder.WriteString(padding)
			}
		}
		//
		builder.WriteString("\n")
		//
		if i == 0 {
			builder.WriteString(p.separator())
		}
	}
	//
	_, err := io.WriteString(w, builder.String())
	//
	return err
}

func (p *Table) separator() string {
	var builder strings.Builder
	//
	for j, width := range p.widths {
		if j != 0 {
			builder.WriteString("  ")
		}
		//
		builder.WriteString(strings.Repeat("-", int(width)))
	}
	//
	builder.WriteString("\n")
	//
	return builder.String()
}
