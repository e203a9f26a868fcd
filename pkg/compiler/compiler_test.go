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
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timvdm/smartscompiler/pkg/matcher"
	"github.com/timvdm/smartscompiler/pkg/molecule"
	"github.com/timvdm/smartscompiler/pkg/optimizer"
)

func Test_Compiler_00(t *testing.T) {
	compiler := NewCompiler(optimizer.DEFAULT_OPTIMISATION_LEVEL, 4)
	//
	first, errs := compiler.Compile("[#6&A]O")
	require.Empty(t, errs)
	assert.Equal(t, "C", first.Pattern.Atoms[0].Predicate.String())
	assert.Equal(t, uint(1), compiler.Len())
	// Second compilation hits the cache
	second, errs := compiler.Compile("[#6&A]O")
	require.Empty(t, errs)
	assert.Same(t, first, second)
}

func Test_Compiler_01(t *testing.T) {
	compiler := NewCompiler(0, 2)
	//
	for _, text := range []string{"C", "N", "O"} {
		_, errs := compiler.Compile(text)
		require.Empty(t, errs)
	}
	// Least recently used is evicted
	assert.Equal(t, uint(2), compiler.Len())
	compiler.Purge()
	assert.Equal(t, uint(0), compiler.Len())
}

func Test_Compiler_02(t *testing.T) {
	compiler := NewCompiler(0, 0)
	//
	first, errs := compiler.Compile("CC")
	require.Empty(t, errs)
	second, errs := compiler.Compile("CC")
	require.Empty(t, errs)
	// No caching
	assert.NotSame(t, first, second)
	assert.Equal(t, uint(0), compiler.Len())
	// No optimisation
	compiled, errs := compiler.Compile("[!!C]")
	require.Empty(t, errs)
	assert.Equal(t, "!!C", compiled.Pattern.Atoms[0].Predicate.String())
}

func Test_Compiler_03(t *testing.T) {
	compiler := NewCompiler(optimizer.DEFAULT_OPTIMISATION_LEVEL, 4)
	//
	_, errs := compiler.Compile("C(C")
	require.Len(t, errs, 1)
	assert.Equal(t, "expected ')'", errs[0].Message())
	assert.Equal(t, uint(0), compiler.Len())
}

func Test_Compiler_Concurrent_00(t *testing.T) {
	var (
		compiler = NewCompiler(optimizer.DEFAULT_OPTIMISATION_LEVEL, 8)
		mol, _   = molecule.ParseSmiles("c1ccccc1CCO")
		wg       sync.WaitGroup
		counts   = make([]uint, 64)
	)
	//
	for i := range counts {
		wg.Add(1)
		//
		go func(i int) {
			defer wg.Done()
			// Cycle through more patterns than the cache holds
			compiled, errs := compiler.Compile(fmt.Sprintf("[#6]%s", []string{"", "~*", "~*~*", "1ccccc1"}[i%4]))
			//
			if len(errs) == 0 {
				var count matcher.Count
				//
				matcher.Match(compiled.Query(i%2 == 0), mol, &count)
				counts[i] = count.Count
			}
		}(i)
	}
	//
	wg.Wait()
	//
	for i := 4; i < len(counts); i++ {
		assert.Equal(t, counts[i%4], counts[i], "pattern %d", i%4)
	}
}
