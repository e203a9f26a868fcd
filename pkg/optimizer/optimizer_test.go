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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timvdm/smartscompiler/pkg/matcher"
	"github.com/timvdm/smartscompiler/pkg/molecule"
	"github.com/timvdm/smartscompiler/pkg/smarts/parser"
)

func Test_Optimize_Negation_00(t *testing.T) {
	checkAtom(t, 2, "[!!C]", "C")
	checkAtom(t, 2, "[!!!C]", "!C")
	checkAtom(t, 2, "[!a]", "A")
	checkAtom(t, 2, "[!A]", "a")
	checkAtom(t, 2, "[!R]", "R0")
	checkAtom(t, 2, "[!R0]", "R")
	checkAtom(t, 2, "[!!!a]", "A")
	checkAtom(t, 2, "[!*]", "!*")
	checkAtom(t, 2, "[!*,C]", "C")
}

func Test_Optimize_Constants_00(t *testing.T) {
	checkAtom(t, 1, "[C&*]", "C")
	checkAtom(t, 1, "[*&C]", "C")
	checkAtom(t, 1, "[C,*]", "*")
	checkAtom(t, 1, "[*;C,N]", "C,N")
	checkAtom(t, 1, "[C&!*]", "!*")
	checkAtom(t, 1, "[C,!*]", "C")
	checkAtom(t, 1, "[!*,N;O]", "N;O")
}

func Test_Optimize_Duplicates_00(t *testing.T) {
	checkAtom(t, 1, "[C&C]", "C")
	checkAtom(t, 1, "[C,C]", "C")
	checkAtom(t, 1, "[C,N;C,N]", "C,N")
	checkAtom(t, 1, "[CN]", "C&N")
}

func Test_Optimize_Elements_00(t *testing.T) {
	checkAtom(t, 2, "[#6&A]", "C")
	checkAtom(t, 2, "[A&#6]", "C")
	checkAtom(t, 2, "[#7&a]", "n")
	checkAtom(t, 2, "[C&A]", "C")
	checkAtom(t, 2, "[c&a]", "c")
	checkAtom(t, 2, "[#6&c]", "c")
	checkAtom(t, 2, "[C,A]", "A")
	checkAtom(t, 2, "[c,a]", "a")
	checkAtom(t, 2, "[A,a]", "*")
	checkAtom(t, 2, "[C,c]", "#6")
	checkAtom(t, 2, "[#6;A,a]", "#6")
	checkAtom(t, 2, "[!a&#6]", "C")
}

func Test_Optimize_Level_00(t *testing.T) {
	checkAtom(t, 0, "[!!C]", "!!C")
	checkAtom(t, 0, "[C&*]", "C&*")
	checkAtom(t, 1, "[#6&A]", "#6&A")
	checkAtom(t, 1, "[A,a]", "A,a")
	//
	_, err := Level(3)
	assert.Error(t, err)
	assert.Equal(t, "none", OPTIMISATION_LEVELS[0].String())
	assert.Equal(t, "double-negation,true-elim", (DOUBLE_NEGATION | TRUE_ELIM).String())
}

func Test_Optimize_Bonds_00(t *testing.T) {
	checkBond(t, 2, "C!!=C", "=")
	checkBond(t, 2, "C!~C", "!~")
	checkBond(t, 2, "C=&~C", "=")
	checkBond(t, 2, "C=,~C", "~")
	checkBond(t, 2, "C=,!~C", "=")
	checkBond(t, 2, "C-,:C", "")
	checkBond(t, 2, "C-&-C", "-")
	checkBond(t, 1, "C-,:C", "-,:")
}

func Test_Optimize_Plan_00(t *testing.T) {
	pattern, errs := parser.Parse("[!!C]1[C&*][C,C]1")
	require.Empty(t, errs)
	//
	original := pattern.String()
	optimised := Optimize(pattern, DEFAULT_OPTIMISATION_LEVEL)
	// Input is unchanged
	assert.Equal(t, original, pattern.String())
	// Traversal plan is unchanged
	require.Equal(t, pattern.NumBonds(), optimised.NumBonds())
	//
	for i := uint(0); i < pattern.NumBonds(); i++ {
		src1, dst1, grow1 := pattern.Bond(i)
		src2, dst2, grow2 := optimised.Bond(i)
		assert.Equal(t, []any{src1, dst1, grow1}, []any{src2, dst2, grow2})
	}
	//
	for i := range optimised.Atoms {
		assert.Equal(t, "C", optimised.Atoms[i].Predicate.String())
	}
	//
	require.NoError(t, optimised.Validate())
}

var equivalencePatterns = []string{
	"[!!C]", "[!a]", "[!A]", "[!R]", "[!R0]", "[!*]", "[#6&A]", "[#6&a]", "[C,A]",
	"[c,a]", "[A,a]", "[C,c]", "[#7;A,a]", "[!a&#6]", "[!!!R]", "[C&C,N]", "[*,!*;R]",
	"C!!=C", "C=,~C", "C-,:C", "C-&-C", "c:,-c", "[!a]~[!A]", "[C,c]1~*~*1",
	"[!R0;!!c]@[A,a]", "[!#6&!!R]", "*!~*", "[N,O;!!A]-,=[C,c]",
}

var equivalenceMolecules = []string{
	"C", "CC", "CCO", "C=C", "CC(=O)O", "C1CC1", "c1ccccc1", "Cc1ccncc1",
	"c1ccc2ccccc2c1", "OC1CCCCC1N", "c1cc[nH]c1", "CC#N", "c1ccsc1C=O",
}

func Test_Optimize_Equivalence_00(t *testing.T) {
	for _, input := range equivalencePatterns {
		pattern, errs := parser.Parse(input)
		require.Empty(t, errs, "parsing %s", input)
		//
		for level := range OPTIMISATION_LEVELS {
			optimised := Optimize(pattern, OPTIMISATION_LEVELS[level])
			//
			for _, smiles := range equivalenceMolecules {
				mol, errs := molecule.ParseSmiles(smiles)
				require.Empty(t, errs, "reading %s", smiles)
				//
				var expected, actual matcher.All
				//
				matcher.Match(pattern, mol, &expected)
				matcher.Match(optimised, mol, &actual)
				assert.Equal(t, expected.Mappings, actual.Mappings, "%s (O%d) in %s", input, level, smiles)
			}
		}
	}
}

func checkAtom(t *testing.T, level uint, input string, expected string) {
	opts, err := Level(level)
	require.NoError(t, err)
	//
	pattern, errs := parser.Parse(input)
	require.Empty(t, errs, "parsing %s", input)
	//
	optimised := Optimize(pattern, opts)
	assert.Equal(t, expected, optimised.Atoms[0].Predicate.String(), "optimising %s (O%d)", input, level)
}

func checkBond(t *testing.T, level uint, input string, expected string) {
	opts, err := Level(level)
	require.NoError(t, err)
	//
	pattern, errs := parser.Parse(input)
	require.Empty(t, errs, "parsing %s", input)
	//
	optimised := Optimize(pattern, opts)
	assert.Equal(t, expected, optimised.Bonds[0].Predicate.String(), "optimising %s (O%d)", input, level)
}
