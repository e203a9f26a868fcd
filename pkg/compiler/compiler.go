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
package compiler

import (
	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
	"github.com/timvdm/smartscompiler/pkg/matcher"
	"github.com/timvdm/smartscompiler/pkg/optimizer"
	"github.com/timvdm/smartscompiler/pkg/smarts"
	"github.com/timvdm/smartscompiler/pkg/smarts/parser"
	"github.com/timvdm/smartscompiler/pkg/util/source"
	"github.com/timvdm/smartscompiler/pkg/vm"
)

// DEFAULT_CACHE_SIZE is the number of compiled patterns retained by default.
const DEFAULT_CACHE_SIZE = 256

// Compiled represents a successfully compiled pattern, which can be matched
// either directly or via its bytecode.
type Compiled struct {
	// Text the pattern was compiled from.
	Text string
	// Pattern after optimisation.
	Pattern *smarts.Pattern
	// Program compiled from the optimised pattern.
	Program *vm.Program
}

// Query returns the pattern, or its bytecode, as something which can be
// matched.
func (p *Compiled) Query(bytecode bool) matcher.Query {
	if bytecode {
		return p.Program
	}
	//
	return p.Pattern
}

// Compiler turns SMARTS text into compiled patterns, retaining recently
// compiled patterns in a fixed size cache.  A compiler is safe for concurrent
// use.
type Compiler struct {
	opts optimizer.Optimisation
	// Nil when caching is disabled
	cache *lru.Cache[string, *Compiled]
}

// NewCompiler constructs a compiler applying a given optimisation, which caches
// up to size compiled patterns.  A size of zero disables caching.
func NewCompiler(opts optimizer.Optimisation, size uint) *Compiler {
	var cache *lru.Cache[string, *Compiled]
	//
	if size > 0 {
		var err error
		// Can only fail for a non-positive size
		if cache, err = lru.New[string, *Compiled](int(size)); err != nil {
			panic(err)
		}
	}
	//
	return &Compiler{opts, cache}
}

// Optimisation returns the optimisation applied by this compiler.
func (p *Compiler) Optimisation() optimizer.Optimisation {
	return p.opts
}

// Compile some SMARTS text, returning either the compiled pattern or the syntax
// errors encountered.  Failed compilations are not cached.
func (p *Compiler) Compile(text string) (*Compiled, []source.SyntaxError) {
	if p.cache != nil {
		if compiled, ok := p.cache.Get(text); ok {
			log.Debugf("cache hit for \"%s\"", text)
			return compiled, nil
		}
	}
	//
	pattern, errs := parser.Parse(text)
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	pattern = optimizer.Optimize(pattern, p.opts)
	compiled := &Compiled{text, pattern, vm.Compile(pattern)}
	//
	if p.cache != nil {
		p.cache.Add(text, compiled)
	}
	//
	log.Debugf("compiled \"%s\" (%d atoms, %d bonds, %d instructions)", text, pattern.NumAtoms(),
		pattern.NumBonds(), compiled.Program.Len())
	//
	return compiled, nil
}

// Len returns the number of patterns currently cached.
func (p *Compiler) Len() uint {
	if p.cache == nil {
		return 0
	}
	//
	return uint(p.cache.Len())
}

// Purge removes every cached pattern.
func (p *Compiler) Purge() {
	if p.cache != nil {
		p.cache.Purge()
	}
}
