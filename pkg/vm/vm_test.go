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
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timvdm/smartscompiler/pkg/matcher"
	"github.com/timvdm/smartscompiler/pkg/molecule"
	"github.com/timvdm/smartscompiler/pkg/smarts"
	"github.com/timvdm/smartscompiler/pkg/smarts/parser"
)

var testMolecules = []string{
	"C", "CCO", "CC(=O)O", "C1CC1", "c1ccccc1", "Cc1ccncc1", "c1ccc2ccccc2c1", "c1cc[nH]c1",
	"[NH4+]", "[13CH3]C#N", "C1CC12CC2", "[CH3:2]C=C", "O=S(=O)(O)c1ccsc1", "[O-]C(=O)C=C",
}

func Test_Disassemble_00(t *testing.T) {
	checkListing(t, "C",
		"atom0:",
		"   0  aliphelem 6",
		"   1  jne .L0",
		"   2  ret 1",
		".L0:",
		"   3  ret 0")
}

func Test_Disassemble_01(t *testing.T) {
	checkListing(t, "[C,N]",
		"atom0:",
		"   0  aliphelem 6",
		"   1  je .L0",
		"   2  aliphelem 7",
		"   3  jne .L1",
		".L0:",
		"   4  ret 1",
		".L1:",
		"   5  ret 0")
}

func Test_Disassemble_02(t *testing.T) {
	checkListing(t, "[!C&R]",
		"atom0:",
		"   0  aliphelem 6",
		"   1  je .L0",
		"   2  cyclic",
		"   3  jne .L0",
		"   4  ret 1",
		".L0:",
		"   5  ret 0")
}

func Test_Disassemble_03(t *testing.T) {
	checkListing(t, "*-O",
		"atom0:",
		"   0  ret 1",
		"   1  ret 0",
		"atom1:",
		"   2  aliphelem 8",
		"   3  jne .L0",
		"   4  ret 1",
		".L0:",
		"   5  ret 0",
		"bond0:",
		"   6  order 1",
		"   7  jne .L1",
		"   8  ret 1",
		".L1:",
		"   9  ret 0",
		"; bond0 0-1 grow")
}

func Test_Disassemble_04(t *testing.T) {
	checkListing(t, "[!*]",
		"atom0:",
		"   0  jmp .L0",
		"   1  ret 1",
		".L0:",
		"   2  ret 0")
}

func Test_Program_00(t *testing.T) {
	pattern, errs := parser.Parse("C1CC1")
	require.Empty(t, errs)
	//
	program := Compile(pattern)
	assert.Equal(t, uint(3), program.NumAtoms())
	assert.Equal(t, uint(3), program.NumBonds())
	assert.False(t, program.IsChiral())
	//
	for i := uint(0); i < pattern.NumBonds(); i++ {
		src1, dst1, grow1 := pattern.Bond(i)
		src2, dst2, grow2 := program.Bond(i)
		assert.Equal(t, []any{src1, dst1, grow1}, []any{src2, dst2, grow2})
	}
}

func Test_Program_01(t *testing.T) {
	pattern, errs := parser.Parse("[C@H](C)(N)O")
	require.Empty(t, errs)
	assert.True(t, Compile(pattern).IsChiral())
}

// Every primitive evaluates the same under the machine and the tree evaluator.
func Test_Program_Atoms_00(t *testing.T) {
	for kind := smarts.ATOM_TRUE; kind <= smarts.ATOM_CLASS; kind++ {
		for value := -1; value <= 8; value++ {
			checkAtomPredicate(t, smarts.NewAtomLeaf(kind, value))
			checkAtomPredicate(t, smarts.Not(smarts.NewAtomLeaf(kind, value)))
		}
	}
}

func Test_Program_Bonds_00(t *testing.T) {
	for kind := smarts.BOND_ANY; kind <= smarts.BOND_DOWN; kind++ {
		checkBondPredicate(t, smarts.NewBondLeaf(kind))
		checkBondPredicate(t, smarts.Not(smarts.NewBondLeaf(kind)))
	}
}

// Random predicate trees evaluate the same under the machine and the tree
// evaluator.
func Test_Program_Random_00(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	//
	for i := 0; i < 500; i++ {
		checkAtomPredicate(t, randomPredicate(rng, 4, randomAtomLeaf))
		checkBondPredicate(t, randomPredicate(rng, 3, randomBondLeaf))
	}
}

// Matching through a program gives the same mappings as matching through the
// pattern it was compiled from.
func Test_Program_Match_00(t *testing.T) {
	patterns := []string{
		"C", "c1ccccc1", "[#6]~[#7,#8]", "[!R]", "[R2]", "[r5]", "*@*", "[x2;!c]",
		"C=O", "[13C]", "[+,-]", "[X4]", "[v4&D2]", "[h2]", "[NH4+]", "C1CC12CC2",
	}
	//
	for _, input := range patterns {
		pattern, errs := parser.Parse(input)
		//
		if len(errs) != 0 {
			// Unsupported syntax
			continue
		}
		//
		program := Compile(pattern)
		//
		for _, smiles := range testMolecules {
			var expected, actual matcher.All
			//
			mol := readMolecule(t, smiles)
			matcher.Match(pattern, mol, &expected)
			matcher.Match(program, mol, &actual)
			assert.Equal(t, expected.Mappings, actual.Mappings, "%s in %s", input, smiles)
		}
	}
}

func checkListing(t *testing.T, input string, lines ...string) {
	var builder strings.Builder
	//
	pattern, errs := parser.Parse(input)
	require.Empty(t, errs, "parsing %s", input)
	require.NoError(t, Compile(pattern).Disassemble(&builder))
	//
	expected := strings.Join(lines, "\n") + "\n"
	assert.Equal(t, expected, builder.String(), "compiling %s", input)
}

func checkAtomPredicate(t *testing.T, predicate smarts.AtomPredicate) {
	pattern := &smarts.Pattern{Atoms: []smarts.PatternAtom{{Predicate: predicate}}}
	program := Compile(pattern)
	//
	for _, smiles := range testMolecules {
		mol := readMolecule(t, smiles)
		//
		for i := uint(0); i < mol.NumAtoms(); i++ {
			atom := mol.Atom(i)
			expected := smarts.Evaluate(&predicate, atom)
			assert.Equal(t, expected, program.MatchAtom(0, atom), "%s on atom %d of %s", predicate.String(), i, smiles)
		}
	}
}

func checkBondPredicate(t *testing.T, predicate smarts.BondPredicate) {
	pattern := &smarts.Pattern{
		Atoms: []smarts.PatternAtom{
			{Predicate: smarts.NewAtomLeaf(smarts.ATOM_TRUE, 0)},
			{Predicate: smarts.NewAtomLeaf(smarts.ATOM_TRUE, 0)},
		},
		Bonds: []smarts.PatternBond{{Predicate: predicate, Source: 0, Target: 1, Grow: true}},
	}
	program := Compile(pattern)
	//
	for _, smiles := range testMolecules {
		mol := readMolecule(t, smiles)
		//
		for i := uint(0); i < mol.NumBonds(); i++ {
			bond := mol.GetBond(i)
			expected := smarts.Evaluate[smarts.Bond](&predicate, bond)
			assert.Equal(t, expected, program.MatchBond(0, bond), "%s on bond %d of %s", predicate.String(), i, smiles)
		}
	}
}

func randomPredicate[L smarts.Leaf](rng *rand.Rand, depth int, leaf func(*rand.Rand) L) smarts.Predicate[L] {
	if depth == 0 {
		return smarts.NewLeaf(leaf(rng))
	}
	//
	switch rng.Intn(5) {
	case 0:
		return smarts.NewLeaf(leaf(rng))
	case 1:
		return smarts.Not(randomPredicate(rng, depth-1, leaf))
	case 2:
		return smarts.And(randomPredicate(rng, depth-1, leaf), randomPredicate(rng, depth-1, leaf))
	case 3:
		return smarts.AndLow(randomPredicate(rng, depth-1, leaf), randomPredicate(rng, depth-1, leaf))
	default:
		return smarts.Or(randomPredicate(rng, depth-1, leaf), randomPredicate(rng, depth-1, leaf))
	}
}

func randomAtomLeaf(rng *rand.Rand) smarts.AtomLeaf {
	var (
		kind     = smarts.AtomKind(rng.Intn(int(smarts.ATOM_CLASS) + 1))
		elements = []int{6, 7, 8, 16}
	)
	//
	switch kind {
	case smarts.ATOM_ATOMIC_NUMBER, smarts.ATOM_AROMATIC_ELEMENT, smarts.ATOM_ALIPHATIC_ELEMENT:
		return smarts.AtomLeaf{Kind: kind, Value: elements[rng.Intn(len(elements))]}
	case smarts.ATOM_ISOTOPE:
		return smarts.AtomLeaf{Kind: kind, Value: 12 + rng.Intn(2)}
	default:
		return smarts.AtomLeaf{Kind: kind, Value: rng.Intn(5) - 1}
	}
}

func randomBondLeaf(rng *rand.Rand) smarts.BondLeaf {
	return smarts.BondLeaf{Kind: smarts.BondKind(rng.Intn(int(smarts.BOND_DOWN) + 1))}
}

func readMolecule(t *testing.T, smiles string) *molecule.Molecule {
	mol, errs := molecule.ParseSmiles(smiles)
	require.Empty(t, errs, "reading %s", smiles)
	//
	return mol
}
