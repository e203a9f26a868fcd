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
package matcher

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timvdm/smartscompiler/pkg/molecule"
	"github.com/timvdm/smartscompiler/pkg/smarts"
	"github.com/timvdm/smartscompiler/pkg/smarts/parser"
)

var propertyPatterns = []string{
	"C", "*", "CC", "C~*", "CO", "C=O", "[#6]~[#8]", "cc", "c:c", "a", "[R]", "[R0]",
	"C1CC1", "C1CCC1", "c1ccccc1", "*1**1", "*1***1", "*@*", "*!@*", "C(C)(C)C",
	"[C,N]~[C,N]", "[!C;R]", "C1CCC12CC2", "[x3]", "*~*~*~*", "[D3]~*", "O=C-*",
}

var propertyMolecules = []string{
	"C", "CC", "CCO", "CC(=O)O", "C1CC1", "C1CC1C", "C12CC1CC2", "C1CCC12CC2",
	"c1ccccc1", "Cc1ccncc1", "c1ccc2ccccc2c1", "C12C3C4C1C5C2C3C45", "CC(C)(C)C",
	"OC1CCCCC1N", "c1cc[nH]c1", "C1CC1.CC", "O=C1CCC(=O)N1",
}

func Test_Match_Property_00(t *testing.T) {
	for _, p := range propertyPatterns {
		for _, m := range propertyMolecules {
			query, graph := compile(t, p, m)
			checkProperties(t, query, graph, p+" in "+m)
		}
	}
}

func Test_Match_Property_01(t *testing.T) {
	// Random molecules
	rng := rand.New(rand.NewSource(1))
	//
	for i := 0; i < 50; i++ {
		graph := randomMolecule(rng, 3+rng.Intn(10))
		//
		for _, p := range propertyPatterns {
			query, errs := parser.Parse(p)
			require.Empty(t, errs)
			checkProperties(t, query, graph, p)
		}
	}
}

func checkProperties(t *testing.T, query Query, graph Graph, msg string) {
	var (
		exists = &Existence{}
		count  = &Count{}
		all    = &All{}
		first  = &First{}
	)
	// Existence vs all
	MatchRecursive(query, graph, all)
	assert.Equal(t, MatchRecursive(query, graph, exists), len(all.Mappings) != 0, msg)
	// Count vs all
	MatchRecursive(query, graph, count)
	assert.Equal(t, uint(len(all.Mappings)), count.Count, msg)
	// Iterative vs recursive, for both single and exhaustive policies
	assert.Equal(t, exists.Matched, MatchIterative(query, graph, exists), msg)
	//
	MatchRecursive(query, graph, first)
	expected := first.Mapping
	MatchIterative(query, graph, first)
	assert.Equal(t, expected, first.Mapping, msg)
	//
	if len(all.Mappings) != 0 {
		assert.Equal(t, all.Mappings[0], first.Mapping, msg)
	}
	//
	iterative := &All{}
	MatchIterative(query, graph, iterative)
	assert.Equal(t, all.Mappings, iterative.Mappings, msg)
	// Every mapping is injective and consistent
	for _, mapping := range all.Mappings {
		checkMapping(t, query, graph, mapping, msg)
	}
}

func checkMapping(t *testing.T, query Query, graph Graph, mapping []uint, msg string) {
	require.Len(t, mapping, int(query.NumAtoms()), msg)
	//
	sorted := slices.Clone(mapping)
	slices.Sort(sorted)
	assert.Len(t, slices.Compact(sorted), len(mapping), "%s: mapping %v not injective", msg, mapping)
	//
	for i, atom := range mapping {
		assert.True(t, query.MatchAtom(uint(i), graph.Atom(atom)), msg)
	}
	//
	for i := uint(0); i < query.NumBonds(); i++ {
		src, dst, _ := query.Bond(i)
		bond, ok := graph.BondBetween(mapping[src], mapping[dst])
		//
		if assert.True(t, ok, msg) {
			assert.True(t, query.MatchBond(i, bond), msg)
		}
	}
}

// Generate a random connected molecule of carbons, nitrogens and oxygens, with
// a few extra (ring forming) bonds.
func randomMolecule(rng *rand.Rand, n int) *molecule.Molecule {
	var (
		builder  = molecule.NewBuilder()
		elements = []int{6, 6, 6, 7, 8}
	)
	//
	for i := 0; i < n; i++ {
		builder.AddAtom(molecule.AtomSpec{Element: elements[rng.Intn(len(elements))]})
		//
		if i > 0 {
			order := 1 + rng.Intn(4)/3
			// Connects to some earlier atom, so never fails
			_, _ = builder.AddBond(uint(rng.Intn(i)), uint(i), order)
		}
	}
	// Ring closures (which may fail if they duplicate a bond)
	for i := 0; i < n/3; i++ {
		src, dst := uint(rng.Intn(n)), uint(rng.Intn(n))
		//
		if src != dst && !builder.HasBond(src, dst) {
			_, _ = builder.AddBond(src, dst, 1)
		}
	}
	//
	return builder.Build()
}

// Check a pattern built directly (rather than parsed), including closure bonds
// given in either direction.
func Test_Match_Property_02(t *testing.T) {
	anyBond := smarts.NewBondLeaf(smarts.BOND_ANY)
	carbon := smarts.PatternAtom{Predicate: smarts.NewAtomLeaf(smarts.ATOM_ATOMIC_NUMBER, 6)}
	triangle := &smarts.Pattern{
		Atoms: []smarts.PatternAtom{carbon, carbon, carbon},
		Bonds: []smarts.PatternBond{
			{Predicate: anyBond, Source: 0, Target: 1, Grow: true},
			{Predicate: anyBond, Source: 0, Target: 2, Grow: true},
			{Predicate: anyBond, Source: 1, Target: 2, Grow: false},
		},
	}
	//
	require.NoError(t, triangle.Validate())
	//
	for _, m := range propertyMolecules {
		_, graph := compile(t, "*", m)
		checkProperties(t, triangle, graph, "triangle in "+m)
	}
	//
	_, graph := compile(t, "*", "C1CC1")
	count := &Count{}
	Match(triangle, graph, count)
	assert.Equal(t, uint(6), count.Count)
}
