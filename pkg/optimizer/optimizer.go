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
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/timvdm/smartscompiler/pkg/smarts"
)

// Optimisation is a set of rewrites which can be applied to the predicates of
// a pattern.  Every rewrite preserves the set of atoms (or bonds) a predicate
// accepts.
type Optimisation uint

// DOUBLE_NEGATION rewrites !!x into x.
const DOUBLE_NEGATION Optimisation = 1

// TRUE_ELIM rewrites x&* into x, and x,* into *.
const TRUE_ELIM Optimisation = 2

// FALSE_ELIM rewrites x&!* into !*, and x,!* into x.
const FALSE_ELIM Optimisation = 4

// DUPLICATE_ELIM rewrites x&x and x,x into x.
const DUPLICATE_ELIM Optimisation = 8

// NEGATION_ELIM replaces negated primitives with their complements, such as !a
// with A or !R with R0.
const NEGATION_ELIM Optimisation = 16

// ELEMENT_CONTRACTION combines element and aromaticity primitives, such as #6&A
// into C or C,A into A.
const ELEMENT_CONTRACTION Optimisation = 32

// OPTIMISATION_LEVELS provides the precanned optimisation levels.  Level 0
// applies no rewrites, level 1 applies the purely logical rewrites, whilst
// level 2 additionally applies the primitive-specific contractions.
var OPTIMISATION_LEVELS = []Optimisation{
	0,
	DOUBLE_NEGATION | TRUE_ELIM | FALSE_ELIM | DUPLICATE_ELIM | NEGATION_ELIM,
	DOUBLE_NEGATION | TRUE_ELIM | FALSE_ELIM | DUPLICATE_ELIM | NEGATION_ELIM | ELEMENT_CONTRACTION,
}

// DEFAULT_OPTIMISATION_LEVEL is the level used when none is given.
var DEFAULT_OPTIMISATION_LEVEL = OPTIMISATION_LEVELS[2]

var optimisationNames = []struct {
	flag Optimisation
	name string
}{
	{DOUBLE_NEGATION, "double-negation"},
	{TRUE_ELIM, "true-elim"},
	{FALSE_ELIM, "false-elim"},
	{DUPLICATE_ELIM, "duplicate-elim"},
	{NEGATION_ELIM, "negation-elim"},
	{ELEMENT_CONTRACTION, "element-contraction"},
}

// Level returns the optimisation for a given level, or an error if no such
// level exists.
func Level(level uint) (Optimisation, error) {
	if level >= uint(len(OPTIMISATION_LEVELS)) {
		return 0, fmt.Errorf("invalid optimisation level %d (max %d)", level, len(OPTIMISATION_LEVELS)-1)
	}
	//
	return OPTIMISATION_LEVELS[level], nil
}

// Has checks whether a given rewrite is enabled.
func (o Optimisation) Has(flag Optimisation) bool {
	return o&flag == flag
}

func (o Optimisation) String() string {
	var names []string
	//
	for _, n := range optimisationNames {
		if o.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	//
	if len(names) == 0 {
		return "none"
	}
	//
	return strings.Join(names, ",")
}

// Optimize applies the enabled rewrites to every atom and bond predicate of a
// pattern, returning a new pattern.  The given pattern is not modified, and the
// traversal plan (i.e. bond order and growth) is left untouched.
func Optimize(pattern *smarts.Pattern, opts Optimisation) *smarts.Pattern {
	var (
		result = pattern.Clone()
		atoms  = newRewriter[smarts.AtomLeaf](opts, atomRules{})
		bonds  = newRewriter[smarts.BondLeaf](opts, bondRules{})
	)
	//
	for i := range result.Atoms {
		result.Atoms[i].Predicate = atoms.rewrite(&result.Atoms[i].Predicate)
	}
	//
	for i := range result.Bonds {
		result.Bonds[i].Predicate = bonds.rewrite(&result.Bonds[i].Predicate)
	}
	//
	if log.IsLevelEnabled(log.DebugLevel) {
		for _, n := range optimisationNames {
			if count := atoms.counts[n.flag] + bonds.counts[n.flag]; count > 0 {
				log.Debugf("optimisation %s applied %d time(s)", n.name, count)
			}
		}
	}
	//
	return result
}
