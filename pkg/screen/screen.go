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
package screen

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/timvdm/smartscompiler/pkg/compiler"
	"github.com/timvdm/smartscompiler/pkg/matcher"
	"github.com/timvdm/smartscompiler/pkg/molecule"
	"github.com/timvdm/smartscompiler/pkg/optimizer"
	"github.com/timvdm/smartscompiler/pkg/util"
	"github.com/timvdm/smartscompiler/pkg/util/source"
)

// Screen matches a fixed set of compiled patterns against many molecules.
type Screen struct {
	names    []string
	queries  []matcher.Query
	mode     string
	strategy matcher.Strategy
	workers  uint
	// Compiler used for the patterns of this screen
	compiler *compiler.Compiler
}

// PatternError reports the syntax errors arising from compiling a given
// pattern.
type PatternError struct {
	Name   string
	Errors []source.SyntaxError
}

// Hit summarises the outcome of matching one pattern against one molecule.
// Which fields are meaningful depends on the mode.
type Hit struct {
	Matched  bool
	Count    uint
	Mappings [][]uint
}

// Result holds the hits for every pattern against one molecule, in pattern
// order, or the errors encountered reading the molecule.
type Result struct {
	Molecule string
	Hits     []Hit
	Errors   []source.SyntaxError
}

// New compiles every pattern of a (valid) configuration, returning a screen or
// the errors for those patterns which did not compile.
func New(config *Config) (*Screen, []PatternError) {
	var (
		errors []PatternError
		names  = make([]string, len(config.Patterns))
		items  = make([]matcher.Query, len(config.Patterns))
	)
	//
	opts, err := optimizer.Level(*config.Level)
	//
	if err != nil {
		panic(err)
	}
	//
	strategy, err := matcher.ParseStrategy(config.Strategy)
	//
	if err != nil {
		panic(err)
	}
	//
	var size uint
	//
	if config.Cache != nil {
		size = *config.Cache
	}
	//
	comp := compiler.NewCompiler(opts, size)
	//
	for i, pattern := range config.Patterns {
		compiled, errs := comp.Compile(pattern.Smarts)
		//
		if len(errs) != 0 {
			errors = append(errors, PatternError{pattern.Name, errs})
			continue
		}
		//
		names[i] = pattern.Name
		items[i] = compiled.Query(config.Bytecode)
	}
	//
	if len(errors) != 0 {
		return nil, errors
	}
	//
	log.Debugf("compiled %d pattern(s), %d distinct", len(items), comp.Len())
	//
	return &Screen{names, items, config.Mode, strategy, config.Workers, comp}, nil
}

// Names returns the names of the patterns in this screen, in order.
func (p *Screen) Names() []string {
	return p.names
}

// Compiler returns the compiler used for the patterns of this screen.
func (p *Screen) Compiler() *compiler.Compiler {
	return p.compiler
}

// Run screens a set of molecules (given as SMILES) in parallel, returning one
// result per molecule in input order.  If the context is cancelled, the error
// is returned along with whatever results were completed.  Molecules which were
// not screened have neither hits nor errors.
func (p *Screen) Run(ctx context.Context, molecules []string) ([]Result, error) {
	stats := util.NewPerfStats()
	//
	results, err := util.ParMap(ctx, p.workers, molecules, p.screen)
	// Molecules not screened due to cancellation have no hits
	for i := range results {
		results[i].Molecule = molecules[i]
	}
	//
	stats.Log(fmt.Sprintf("Screening %d molecule(s) against %d pattern(s)", len(molecules), len(p.queries)))
	//
	return results, err
}

// Screen a single molecule.  Each call uses its own policies, hence this is
// safe to call concurrently.
func (p *Screen) screen(smiles string) Result {
	mol, errs := molecule.ParseSmiles(smiles)
	//
	if len(errs) != 0 {
		log.Debugf("skipping \"%s\": %s", smiles, errs[0].Message())
		return Result{smiles, nil, errs}
	}
	//
	hits := make([]Hit, len(p.queries))
	//
	for i, query := range p.queries {
		// Mode already validated
		policy, _ := matcher.NewPolicy(p.mode)
		matcher.MatchWith(p.strategy, query, mol, policy)
		hits[i] = summarise(policy)
	}
	//
	return Result{smiles, hits, nil}
}

func summarise(policy matcher.Policy) Hit {
	switch p := policy.(type) {
	case *matcher.Existence:
		return Hit{Matched: p.Matched, Count: boolToUint(p.Matched)}
	case *matcher.Count:
		return Hit{Matched: p.Count > 0, Count: p.Count}
	case *matcher.First:
		return Hit{Matched: p.Mapping != nil, Count: boolToUint(p.Mapping != nil), Mappings: singleton(p.Mapping)}
	case *matcher.All:
		return Hit{Matched: len(p.Mappings) > 0, Count: uint(len(p.Mappings)), Mappings: p.Mappings}
	default:
		panic(fmt.Sprintf("unknown policy %T", policy))
	}
}

func boolToUint(b bool) uint {
	if b {
		return 1
	}
	//
	return 0
}

func singleton(mapping []uint) [][]uint {
	if mapping == nil {
		return nil
	}
	//
	return [][]uint{mapping}
}
