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
package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timvdm/smartscompiler/pkg/smarts"
	"github.com/timvdm/smartscompiler/pkg/util/source"
)

// ============================================================================
// Atoms
// ============================================================================

func Test_Parser_Atom_00(t *testing.T) {
	checkAtoms(t, "C", "C")
	checkAtoms(t, "c", "c")
	checkAtoms(t, "*", "*")
	checkAtoms(t, "a", "a")
	checkAtoms(t, "A", "A")
	checkAtoms(t, "Cl", "Cl")
	checkAtoms(t, "Br", "Br")
	checkAtoms(t, "CCO", "C", "C", "O")
	checkAtoms(t, "ncs", "n", "c", "s")
}

func Test_Parser_Atom_01(t *testing.T) {
	checkAtoms(t, "[C]", "C")
	checkAtoms(t, "[*]", "*")
	checkAtoms(t, "[Cl]", "Cl")
	checkAtoms(t, "[Na]", "Na")
	checkAtoms(t, "[se]", "se")
	checkAtoms(t, "[as]", "as")
	checkAtoms(t, "[#6]", "#6")
	checkAtoms(t, "[13C]", "13&C")
	checkAtoms(t, "[H]", "#1")
	checkAtoms(t, "[2H]", "2&#1")
	checkAtoms(t, "[H+]", "#1&+")
}

func Test_Parser_Atom_02(t *testing.T) {
	checkAtoms(t, "[CH2]", "C&H2")
	checkAtoms(t, "[CH]", "C&H1")
	checkAtoms(t, "[NH4+]", "N&H4&+")
	checkAtoms(t, "[D]", "D1")
	checkAtoms(t, "[D3]", "D3")
	checkAtoms(t, "[X4]", "X4")
	checkAtoms(t, "[v4]", "v4")
	checkAtoms(t, "[x2]", "x2")
	checkAtoms(t, "[h]", "h1")
	checkAtoms(t, "[h3]", "h3")
}

func Test_Parser_Atom_03(t *testing.T) {
	checkAtoms(t, "[R]", "R")
	checkAtoms(t, "[R0]", "R0")
	checkAtoms(t, "[R2]", "R2")
	checkAtoms(t, "[r]", "R")
	checkAtoms(t, "[r0]", "R0")
	checkAtoms(t, "[r6]", "r6")
}

func Test_Parser_Atom_04(t *testing.T) {
	checkAtoms(t, "[+]", "+")
	checkAtoms(t, "[-]", "-")
	checkAtoms(t, "[++]", "+2")
	checkAtoms(t, "[--]", "-2")
	checkAtoms(t, "[+3]", "+3")
	checkAtoms(t, "[-2]", "-2")
	checkAtoms(t, "[O-]", "O&-")
}

func Test_Parser_Atom_05(t *testing.T) {
	checkAtoms(t, "[C,N]", "C,N")
	checkAtoms(t, "[C,N;!R]", "C,N;!R")
	checkAtoms(t, "[!C]", "!C")
	checkAtoms(t, "[!!C]", "!!C")
	checkAtoms(t, "[C&R,N]", "C&R,N")
	checkAtoms(t, "[CR,N]", "C&R,N")
	checkAtoms(t, "[C!R]", "C&!R")
	checkAtoms(t, "[C,N,O]", "C,N,O")
	checkAtoms(t, "[a;#6,#7]", "a;#6,#7")
}

func Test_Parser_Atom_06(t *testing.T) {
	p := checkAtoms(t, "[C@@H]", "C&@@&H1")
	assert.True(t, p.Chiral)
	assert.True(t, p.Atoms[0].Chiral)
	//
	p = checkAtoms(t, "C[C@H](N)O", "C", "C&@&H1", "N", "O")
	assert.True(t, p.Chiral)
	assert.False(t, p.Atoms[0].Chiral)
	assert.True(t, p.Atoms[1].Chiral)
	//
	p = checkAtoms(t, "CC", "C", "C")
	assert.False(t, p.Chiral)
}

func Test_Parser_Atom_07(t *testing.T) {
	p := checkAtoms(t, "[CH3:2]", "C&H3")
	assert.Equal(t, 2, p.Atoms[0].Class)
	//
	p = checkAtoms(t, "[*:12]C", "*", "C")
	assert.Equal(t, 12, p.Atoms[0].Class)
	assert.Equal(t, 0, p.Atoms[1].Class)
}

func Test_Parser_Atom_08(t *testing.T) {
	p := checkAtoms(t, "C[N+]", "C", "N&+")
	assert.Equal(t, smarts.AtomLeaf{Kind: smarts.ATOM_ALIPHATIC_ELEMENT, Value: 7}, p.Atoms[1].Predicate.Arg(0).Leaf())
	assert.Equal(t, smarts.AtomLeaf{Kind: smarts.ATOM_CHARGE, Value: 1}, p.Atoms[1].Predicate.Arg(1).Leaf())
}

// ============================================================================
// Bonds
// ============================================================================

func Test_Parser_Bond_00(t *testing.T) {
	checkBonds(t, "CC", "0-1 grow []")
	checkBonds(t, "C-C", "0-1 grow [-]")
	checkBonds(t, "C=C", "0-1 grow [=]")
	checkBonds(t, "C#C", "0-1 grow [#]")
	checkBonds(t, "C$C", "0-1 grow [$]")
	checkBonds(t, "c:c", "0-1 grow [:]")
	checkBonds(t, "C~C", "0-1 grow [~]")
	checkBonds(t, "C@C", "0-1 grow [@]")
	checkBonds(t, "C/C=C\\C", "0-1 grow [/]", "1-2 grow [=]", "2-3 grow [\\]")
}

func Test_Parser_Bond_01(t *testing.T) {
	checkBonds(t, "C!@C", "0-1 grow [!@]")
	checkBonds(t, "C-,=C", "0-1 grow [-,=]")
	checkBonds(t, "C-@C", "0-1 grow [-&@]")
	checkBonds(t, "C-&@C", "0-1 grow [-&@]")
	checkBonds(t, "C=;@C", "0-1 grow [=;@]")
	checkBonds(t, "C!~C", "0-1 grow [!~]")
}

func Test_Parser_Bond_02(t *testing.T) {
	checkBonds(t, "CC(C)C", "0-1 grow []", "1-2 grow []", "1-3 grow []")
	checkBonds(t, "C(C)(C)C", "0-1 grow []", "0-2 grow []", "0-3 grow []")
	checkBonds(t, "C(=O)O", "0-1 grow [=]", "0-2 grow []")
	checkBonds(t, "C(C(C))C", "0-1 grow []", "1-2 grow []", "0-3 grow []")
}

func Test_Parser_Bond_03(t *testing.T) {
	checkBonds(t, "C1CC1", "0-1 grow []", "1-2 grow []", "2-0 close []")
	checkBonds(t, "C1CCC12CC2", "0-1 grow []", "1-2 grow []", "2-3 grow []", "3-0 close []",
		"3-4 grow []", "4-5 grow []", "5-3 close []")
	checkBonds(t, "C%10CC%10", "0-1 grow []", "1-2 grow []", "2-0 close []")
	checkBonds(t, "C1CC1C1CC1", "0-1 grow []", "1-2 grow []", "2-0 close []",
		"2-3 grow []", "3-4 grow []", "4-5 grow []", "5-3 close []")
}

func Test_Parser_Bond_04(t *testing.T) {
	// Bond expressions on either side of a ring bond
	checkBonds(t, "C=1CC1", "0-1 grow []", "1-2 grow []", "2-0 close [=]")
	checkBonds(t, "C1CC=1", "0-1 grow []", "1-2 grow []", "2-0 close [=]")
	checkBonds(t, "C=1CC=1", "0-1 grow []", "1-2 grow []", "2-0 close [=]")
	checkBonds(t, "C1CC(C1)C", "0-1 grow []", "1-2 grow []", "2-3 grow []", "3-0 close []", "2-4 grow []")
}

// ============================================================================
// Errors
// ============================================================================

func Test_Parser_Error_00(t *testing.T) {
	checkError(t, "", 0, "expected atom")
	checkError(t, "C(", 2, "expected ')'")
	checkError(t, "C)", 1, "unbalanced ')'")
	checkError(t, "C()", 2, "expected atom")
	checkError(t, "C(1)", 2, "expected atom")
	checkError(t, "C-", 2, "expected atom")
	checkError(t, "(C)", 0, "expected atom")
}

func Test_Parser_Error_01(t *testing.T) {
	checkError(t, "C1CC", 1, "unclosed ring bond")
	checkError(t, "CC2C1CC", 4, "unclosed ring bond")
	checkError(t, "C11", 2, "ring bond connects atom to itself")
	checkError(t, "C1C1", 3, "duplicate bond")
	checkError(t, "C=1CC-1", 5, "conflicting ring bond (= vs -)")
	checkError(t, "C%1CC", 2, "expected two digit ring bond number")
}

func Test_Parser_Error_02(t *testing.T) {
	checkError(t, "[C", 2, "expected ']'")
	checkError(t, "[]", 1, "empty atom")
	checkError(t, "[C&]", 3, "expected atom primitive")
	checkError(t, "[Q]", 1, "unknown element")
	checkError(t, "[#]", 2, "expected atomic number")
	checkError(t, "[C:]", 3, "expected atom class")
	checkError(t, "[k]", 1, "unknown atom primitive")
}

func Test_Parser_Error_03(t *testing.T) {
	checkError(t, "C.C", 1, "disconnected components are not supported")
	checkError(t, "[$(CC)]", 1, "recursive SMARTS is not supported")
	checkError(t, "Q", 0, "atom must be in brackets")
	checkError(t, "C?", 1, "unknown character encountered")
	checkError(t, "C C", 1, "unknown character encountered")
}

func Test_Parser_SourceMap_00(t *testing.T) {
	pattern, srcmap, errs := ParseSource(sourceFile("C[NH2+]Cl"))
	//
	require.Empty(t, errs)
	require.Equal(t, uint(3), pattern.NumAtoms())
	//
	for i, text := range []string{"C", "[NH2+]", "Cl"} {
		assert.Equal(t, text, srcmap.Source().Text(srcmap.Get(uint(i))))
	}
}

// ============================================================================
// Helpers
// ============================================================================

func checkAtoms(t *testing.T, input string, atoms ...string) *smarts.Pattern {
	pattern, errs := Parse(input)
	//
	require.Empty(t, errs, "parsing %s", input)
	require.NoError(t, pattern.Validate())
	require.Equal(t, len(atoms), len(pattern.Atoms), "parsing %s", input)
	//
	for i, atom := range atoms {
		assert.Equal(t, atom, pattern.Atoms[i].Predicate.String(), "parsing %s (atom %d)", input, i)
	}
	//
	return pattern
}

func checkBonds(t *testing.T, input string, bonds ...string) {
	pattern, errs := Parse(input)
	//
	require.Empty(t, errs, "parsing %s", input)
	require.NoError(t, pattern.Validate())
	require.Equal(t, len(bonds), len(pattern.Bonds), "parsing %s", input)
	//
	for i, bond := range bonds {
		b := &pattern.Bonds[i]
		kind := "grow"
		//
		if !b.Grow {
			kind = "close"
		}
		//
		actual := fmt.Sprintf("%d-%d %s [%s]", b.Source, b.Target, kind, b.Predicate.String())
		assert.Equal(t, bond, actual, "parsing %s (bond %d)", input, i)
	}
}

func checkError(t *testing.T, input string, start int, msg string) {
	pattern, errs := Parse(input)
	//
	require.Nil(t, pattern, "parsing %s", input)
	require.Len(t, errs, 1, "parsing %s", input)
	assert.Equal(t, msg, errs[0].Message(), "parsing %s", input)
	//
	span := errs[0].Span()
	assert.Equal(t, start, span.Start(), "parsing %s", input)
}

func sourceFile(text string) *source.File {
	return source.NewSourceFile("test", []byte(text))
}
