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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/timvdm/smartscompiler/pkg/util/source"
)

const (
	END uint = iota
	OPEN
	CLOSE
	LETTER
	DIGIT
)

var testRules = []Rule[rune]{
	{Char('('), OPEN},
	{Char(')'), CLOSE},
	{Range('a', 'z'), LETTER},
	{Range('0', '9'), DIGIT},
}

func Test_Tokenise_00(t *testing.T) {
	checkTokens(t, "", 0, Token{END, source.NewSpan(0, 0)})
}

func Test_Tokenise_01(t *testing.T) {
	checkTokens(t, "(a1)", 4,
		Token{OPEN, source.NewSpan(0, 1)},
		Token{LETTER, source.NewSpan(1, 2)},
		Token{DIGIT, source.NewSpan(2, 3)},
		Token{CLOSE, source.NewSpan(3, 4)},
		Token{END, source.NewSpan(4, 4)})
}

func Test_Tokenise_02(t *testing.T) {
	// Stops at the first unknown character, without an end token
	checkTokens(t, "ab?c", 2,
		Token{LETTER, source.NewSpan(0, 1)},
		Token{LETTER, source.NewSpan(1, 2)})
}

func Test_Tokenise_03(t *testing.T) {
	// First matching rule wins
	rules := []Rule[rune]{{Range('0', '9'), DIGIT}, {Char('7'), LETTER}}
	tokens, end := Tokenise([]rune("7"), END, rules...)
	//
	assert.Equal(t, 1, end)
	assert.Equal(t, []Token{{DIGIT, source.NewSpan(0, 1)}, {END, source.NewSpan(1, 1)}}, tokens)
}

func checkTokens(t *testing.T, input string, stop int, expected ...Token) {
	tokens, end := Tokenise([]rune(input), END, testRules...)
	//
	assert.Equal(t, stop, end, "tokenising \"%s\"", input)
	assert.Equal(t, expected, tokens, "tokenising \"%s\"", input)
}
