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
package lex

import (
	"cmp"

	"github.com/timvdm/smartscompiler/pkg/util/source"
)

// Token associates a kind with a contiguous run of items in the input.
type Token struct {
	Kind uint
	Span source.Span
}

// Scanner determines how many items at the start of its input it accepts,
// where zero means it does not match.
type Scanner[T any] func(items []T) int

// Rule maps any run of items accepted by a scanner onto a token kind.
type Rule[T any] struct {
	Scanner Scanner[T]
	Kind    uint
}

// Char accepts exactly one given item.
func Char[T comparable](item T) Scanner[T] {
	return func(items []T) int {
		if len(items) > 0 && items[0] == item {
			return 1
		}
		//
		return 0
	}
}

// Range accepts any single item between two bounds (inclusive).
func Range[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return func(items []T) int {
		if len(items) > 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		//
		return 0
	}
}

// Tokenise splits the input into tokens using the first matching rule at each
// position, finishing with an empty token of the given end kind.  This returns
// the tokens produced and the position at which tokenising stopped.  When no
// rule matches some position, tokenising stops there without an end token
// being added (hence the position is less than the length of the input).
func Tokenise[T any](items []T, end uint, rules ...Rule[T]) ([]Token, int) {
	var (
		tokens []Token
		index  int
	)
	//
	for index < len(items) {
		n := 0
		//
		for _, rule := range rules {
			if n = rule.Scanner(items[index:]); n > 0 {
				tokens = append(tokens, Token{rule.Kind, source.NewSpan(index, index+n)})
				break
			}
		}
		//
		if n == 0 {
			return tokens, index
		}
		//
		index += n
	}
	//
	return append(tokens, Token{end, source.NewSpan(index, index)}), index
}
