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

// MatchRecursive matches a query against a graph using a depth-first recursive
// search.  This strategy supports every policy and chiral queries.
func MatchRecursive(query Query, graph Graph, policy Policy) bool {
	policy.Clear()
	//
	if degenerate(query, graph) {
		return false
	}
	//
	s := recursive{newSearch(query, graph, policy), bitset.New(graph.NumAtoms())}
	//
	for a := uint(0); a < graph.NumAtoms(); a++ {
		if !query.MatchAtom(0, graph.Atom(a)) {
			continue
		}
		//
		s.assign(0, a)
		s.extend(0)
		s.unassign(0, a)
		//
		if s.done() {
			break
		}
	}
	//
	return !policy.IsEmpty()
}

type recursive struct {
	*search
	visited *bitset.BitSet
}

func (s *recursive) assign(atom uint, target uint) {
	s.assignment[atom] = target
	s.visited.Set(target)
}

func (s *recursive) unassign(atom uint, target uint) {
	s.assignment[atom] = UNASSIGNED
	s.visited.Clear(target)
}

// Extend the current partial mapping using the ith bond onwards.
func (s *recursive) extend(i uint) {
	if i == s.query.NumBonds() {
		s.record()
		return
	}
	//
	src, dst, grow := s.query.Bond(i)
	//
	if !grow {
		bond, ok := s.graph.BondBetween(s.assignment[src], s.assignment[dst])
		//
		if ok && s.query.MatchBond(i, bond) {
			s.extend(i + 1)
		}
		//
		return
	}
	//
	atom := s.assignment[src]
	//
	for k := uint(0); k < s.graph.NumNeighbours(atom); k++ {
		next, bond := s.graph.Neighbour(atom, k)
		//
		if s.visited.Test(next) || !s.query.MatchAtom(dst, s.graph.Atom(next)) || !s.query.MatchBond(i, bond) {
			continue
		}
		//
		s.assign(dst, next)
		s.extend(i + 1)
		s.unassign(dst, next)
		//
		if s.done() {
			return
		}
	}
}
