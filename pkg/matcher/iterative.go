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
	"github.com/bits-and-blooms/bitset"
)

// Saved search position for a single bond of the query.
type frame struct {
	// Index of the next neighbour to try (growing bonds only)
	cursor uint
	// Graph atom assigned by this bond (growing bonds only)
	assigned uint
	// Indicates whether this bond is being resumed after backtracking
	started bool
}

// MatchIterative matches a query against a graph using an explicit stack of
// frames (one per query bond) in place of recursion.  Neighbours are tried in
// the same order as for MatchRecursive, hence both strategies find the same
// mappings in the same order.  This strategy is intended for single-result
// policies on queries which are not chiral, though it remains correct for
// other policies.
func MatchIterative(query Query, graph Graph, policy Policy) bool {
	policy.Clear()
	//
	if degenerate(query, graph) {
		return false
	}
	//
	s := newSearch(query, graph, policy)
	visited := bitset.New(graph.NumAtoms())
	nbonds := int(query.NumBonds())
	frames := make([]frame, nbonds)
	//
	for seed := uint(0); seed < graph.NumAtoms(); seed++ {
		if !query.MatchAtom(0, graph.Atom(seed)) {
			continue
		}
		//
		s.assignment[0] = seed
		visited.Set(seed)
		//
		if nbonds > 0 {
			frames[0].started = false
		}
		//
		for depth := 0; depth >= 0; {
			if depth == nbonds {
				s.record()
				//
				if s.done() {
					return true
				}
				// Backtrack into the last bond
				depth--
				//
				continue
			}
			//
			f := &frames[depth]
			src, dst, grow := query.Bond(uint(depth))
			//
			if !grow {
				// Closure bonds are checked once, and never resumed.
				if f.started {
					f.started = false
					depth--
				} else if bond, ok := graph.BondBetween(s.assignment[src], s.assignment[dst]); ok &&
					query.MatchBond(uint(depth), bond) {
					f.started = true
					depth = descend(frames, depth)
				} else {
					depth--
				}
				//
				continue
			}
			//
			if f.started {
				// Release the atom assigned last time round
				visited.Clear(f.assigned)
				s.assignment[dst] = UNASSIGNED
			} else {
				f.started = true
				f.cursor = 0
			}
			//
			atom := s.assignment[src]
			found := false
			//
			for f.cursor < graph.NumNeighbours(atom) && !found {
				next, bond := graph.Neighbour(atom, f.cursor)
				f.cursor++
				//
				if !visited.Test(next) && query.MatchAtom(dst, graph.Atom(next)) && query.MatchBond(uint(depth), bond) {
					f.assigned = next
					s.assignment[dst] = next
					visited.Set(next)
					found = true
				}
			}
			//
			if found {
				depth = descend(frames, depth)
			} else {
				f.started = false
				depth--
			}
		}
		//
		s.assignment[0] = UNASSIGNED
		visited.Clear(seed)
	}
	//
	return !policy.IsEmpty()
}

// Move onto the next bond, which is entered afresh.
func descend(frames []frame, depth int) int {
	depth++
	//
	if depth < len(frames) {
		frames[depth].started = false
	}
	//
	return depth
}
