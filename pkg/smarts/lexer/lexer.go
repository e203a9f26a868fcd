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
package lexer

import (
	"math"
	"slices"
	"strconv"

	"github.com/timvdm/smartscompiler/pkg/util/source"
	"github.com/timvdm/smartscompiler/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// LBRACKET signals "["
const LBRACKET uint = 1

// RBRACKET signals "]"
const RBRACKET uint = 2

// LBRACE signals "("
const LBRACE uint = 3

// RBRACE signals ")"
const RBRACE uint = 4

// UPPER signals an upper case letter
const UPPER uint = 5

// LOWER signals a lower case letter
const LOWER uint = 6

// DIGIT signals a single decimal digit
const DIGIT uint = 7

// PERCENT signals "%", which introduces a two digit ring bond
const PERCENT uint = 8

// STAR signals "*"
const STAR uint = 9

// NOT signals "!"
const NOT uint = 10

// AND signals "&"
const AND uint = 11

// OR signals ","
const OR uint = 12

// AND_LOW signals ";"
const AND_LOW uint = 13

// PLUS signals "+"
const PLUS uint = 14

// MINUS signals "-"
const MINUS uint = 15

// EQUALS signals "="
const EQUALS uint = 16

// HASH signals "#"
const HASH uint = 17

// DOLLAR signals "$"
const DOLLAR uint = 18

// COLON signals ":"
const COLON uint = 19

// TILDE signals "~"
const TILDE uint = 20

// AT signals "@"
const AT uint = 21

// SLASH signals "/"
const SLASH uint = 22

// BACKSLASH signals "\"
const BACKSLASH uint = 23

// DOT signals "."
const DOT uint = 24

// Letters are lexed one at a time, since whether or not two letters form an
// element symbol depends on where they occur.
var rules = []lex.Rule[rune]{
	{Scanner: lex.Char('['), Kind: LBRACKET},
	{Scanner: lex.Char(']'), Kind: RBRACKET},
	{Scanner: lex.Char('('), Kind: LBRACE},
	{Scanner: lex.Char(')'), Kind: RBRACE},
	{Scanner: lex.Range('A', 'Z'), Kind: UPPER},
	{Scanner: lex.Range('a', 'z'), Kind: LOWER},
	{Scanner: lex.Range('0', '9'), Kind: DIGIT},
	{Scanner: lex.Char('%'), Kind: PERCENT},
	{Scanner: lex.Char('*'), Kind: STAR},
	{Scanner: lex.Char('!'), Kind: NOT},
	{Scanner: lex.Char('&'), Kind: AND},
	{Scanner: lex.Char(','), Kind: OR},
	{Scanner: lex.Char(';'), Kind: AND_LOW},
	{Scanner: lex.Char('+'), Kind: PLUS},
	{Scanner: lex.Char('-'), Kind: MINUS},
	{Scanner: lex.Char('='), Kind: EQUALS},
	{Scanner: lex.Char('#'), Kind: HASH},
	{Scanner: lex.Char('$'), Kind: DOLLAR},
	{Scanner: lex.Char(':'), Kind: COLON},
	{Scanner: lex.Char('~'), Kind: TILDE},
	{Scanner: lex.Char('@'), Kind: AT},
	{Scanner: lex.Char('/'), Kind: SLASH},
	{Scanner: lex.Char('\\'), Kind: BACKSLASH},
	{Scanner: lex.Char('.'), Kind: DOT},
}

// Stream is a tokenised SMARTS or SMILES string, along with a position within
// it.  This provides the basic machinery shared by the parsers.
type Stream struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

// NewStream tokenises the contents of a given source file.  If an unknown
// character is encountered then a syntax error is returned.
func NewStream(srcfile *source.File) (*Stream, []source.SyntaxError) {
	var (
		contents    = srcfile.Contents()
		tokens, end = lex.Tokenise(contents, END_OF, rules...)
	)
	// Check whether anything was left (if so this is an error)
	if end < len(contents) {
		err := srcfile.SyntaxError(source.NewSpan(end, end+1), "unknown character encountered")
		//
		return nil, []source.SyntaxError{*err}
	}
	//
	return &Stream{srcfile, tokens, 0}, nil
}

// Source returns the source file being parsed.
func (p *Stream) Source() *source.File {
	return p.srcfile
}

// Done determines whether or not all tokens (except END_OF) have been consumed.
func (p *Stream) Done() bool {
	return p.index+1 >= len(p.tokens)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Stream) Lookahead() lex.Token {
	return p.tokens[p.index]
}

// Peek returns the token n positions after the next token, or END_OF if there
// is no such token.
func (p *Stream) Peek(n int) lex.Token {
	if p.index+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	//
	return p.tokens[p.index+n]
}

// Follows checks whether one of the given token kinds is next.
func (p *Stream) Follows(options ...uint) bool {
	return slices.Contains(options, p.Lookahead().Kind)
}

// FollowsChar checks whether the next token is exactly the given character.
func (p *Stream) FollowsChar(kind uint, char rune) bool {
	return p.PeekChar(0, kind, char)
}

// PeekChar checks whether the token n positions after the next token is exactly
// the given character.
func (p *Stream) PeekChar(n int, kind uint, char rune) bool {
	token := p.Peek(n)
	//
	return token.Kind == kind && p.Char(token) == char
}

// Last returns the most recently consumed token.
func (p *Stream) Last() lex.Token {
	return p.tokens[max(0, p.index-1)]
}

// Expect consumes the next token, which must be of the given kind.
func (p *Stream) Expect(kind uint) lex.Token {
	if p.Lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

// Match consumes the next token if it is of the given kind.
func (p *Stream) Match(kind uint) bool {
	if p.Lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Char returns the (single) character of a given token.
func (p *Stream) Char(token lex.Token) rune {
	if token.Kind == END_OF {
		return 0
	}
	//
	return p.srcfile.Contents()[token.Span.Start()]
}

// Text returns the text of a given token.
func (p *Stream) Text(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

// Number consumes a (possibly empty) sequence of digits, returning the number
// they represent and whether there were any.
func (p *Stream) Number() (int, source.Span, bool) {
	if !p.Follows(DIGIT) {
		return 0, p.Lookahead().Span, false
	}
	//
	span := p.Expect(DIGIT).Span
	//
	for p.Follows(DIGIT) {
		span = span.Join(p.Expect(DIGIT).Span)
	}
	// Overflow is the only possible failure here
	n, err := strconv.Atoi(p.srcfile.Text(span))
	//
	if err != nil {
		n = math.MaxInt
	}
	//
	return n, span, true
}

// SyntaxErrors constructs a single syntax error over the span of a given token.
func (p *Stream) SyntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return p.SpanErrors(token.Span, msg)
}

// SpanErrors constructs a single syntax error over a given span.
func (p *Stream) SpanErrors(span source.Span, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(span, msg)}
}
