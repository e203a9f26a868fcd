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
	"fmt"
	"math"

	"github.com/timvdm/smartscompiler/pkg/smarts"
)

// UNASSIGNED marks a pattern atom not (yet) mapped to any graph atom.
const UNASSIGNED = math.MaxUint

// Query is anything which can be matched against a graph.  Atoms are numbered
// from 0, and atom 0 is always assigned first.  Bonds are then processed in
// order: a growing bond maps its target atom onto some unvisited neighbour of
// the graph atom its source is mapped to, whilst a closure bond (grow=false)
// connects two atoms which are both mapped already.
type Query interface {
	// NumAtoms returns the number of atoms in this query.
	NumAtoms() uint
	// NumBonds returns the number of bonds in this query.
	NumBonds() uint
	// MatchAtom checks whether the ith query atom accepts a given atom.
	MatchAtom(i uint, atom smarts.Atom) bool
	// MatchBond checks whether the ith query bond accepts a given bond.
	MatchBond(i uint, bond smarts.Bond) bool
	// Bond returns the source and target atoms of the ith query bond, and
	// whether or not it grows the mapping.
	Bond(i uint) (uint, uint, bool)
	// IsChiral checks whether this query carries stereo specifications.
	IsChiral() bool
}

// Graph is the view of a molecule used for matching.
type Graph = smarts.Graph

// StereoGraph is a graph which can check the stereo specifications of a chiral
// query against a complete mapping.  When a graph does not implement this,
// stereo specifications are ignored.
type StereoGraph interface {
	Graph
	// CheckStereo checks whether a complete mapping satisfies the stereo
	// specifications of the query.
	CheckStereo(query Query, assignment []uint) bool
}

// Strategy selects how the search is carried out.
type Strategy uint8

const (
	// AUTO selects the iterative strategy when possible, and the recursive
	// strategy otherwise.
	AUTO Strategy = iota
	// RECURSIVE selects the general, recursive strategy.
	RECURSIVE
	// ITERATIVE selects the explicit-stack strategy.
	ITERATIVE
)

// ParseStrategy converts a strategy name into a strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "auto":
		return AUTO, nil
	case "recursive":
		return RECURSIVE, nil
	case "iterative":
		return ITERATIVE, nil
	default:
		return AUTO, fmt.Errorf("unknown strategy \"%s\"", name)
	}
}

func (s Strategy) String() string {
	switch s {
	case RECURSIVE:
		return "recursive"
	case ITERATIVE:
		return "iterative"
	default:
		return "auto"
	}
}

// Match a query against a graph, recording mappings in the given policy (which
// is cleared first).  The iterative strategy is used when the policy needs only
// a single result and the query is not chiral, otherwise the recursive strategy
// is used.  This returns true if anything was recorded.
func Match(query Query, graph Graph, policy Policy) bool {
	return MatchWith(AUTO, query, graph, policy)
}

// MatchWith matches a query against a graph using a specific strategy.
func MatchWith(strategy Strategy, query Query, graph Graph, policy Policy) bool {
	switch strategy {
	case RECURSIVE:
		return MatchRecursive(query, graph, policy)
	case ITERATIVE:
		return MatchIterative(query, graph, policy)
	}
	//
	if policy.StopAfterFirst() && !query.IsChiral() {
		return MatchIterative(query, graph, policy)
	}
	//
	return MatchRecursive(query, graph, policy)
}

// State shared by both strategies for a single search.  This never escapes the
// call which created it.
type search struct {
	query  Query
	graph  Graph
	policy Policy
	// Non-nil only for chiral queries on graphs which can check them
	stereo StereoGraph
	// Maps pattern atoms to graph atoms
	assignment []uint
}

func newSearch(query Query, graph Graph, policy Policy) *search {
	var stereo StereoGraph
	//
	if query.IsChiral() {
		stereo, _ = graph.(StereoGraph)
	}
	//
	assignment := make([]uint, query.NumAtoms())
	//
	for i := range assignment {
		assignment[i] = UNASSIGNED
	}
	//
	return &search{query, graph, policy, stereo, assignment}
}

// Record the current (complete) assignment, subject to any stereo check.
func (s *search) record() {
	if s.stereo != nil && !s.stereo.CheckStereo(s.query, s.assignment) {
		return
	}
	//
	s.policy.Record(s.assignment)
}

// Check whether the search can stop.
func (s *search) done() bool {
	return s.policy.StopAfterFirst() && !s.policy.IsEmpty()
}

// Check whether the search is trivially unsatisfiable.
func degenerate(query Query, graph Graph) bool {
	return query.NumAtoms() == 0 || graph.NumAtoms() == 0
}
