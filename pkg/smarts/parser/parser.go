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
package parser

import (
	"fmt"
	"slices"

	"github.com/timvdm/smartscompiler/pkg/smarts"
	"github.com/timvdm/smartscompiler/pkg/smarts/lexer"
	"github.com/timvdm/smartscompiler/pkg/util/collection/stack"
	"github.com/timvdm/smartscompiler/pkg/util/source"
)

// Parse a SMARTS string into a pattern.  Atoms are numbered in the order they
// appear, and bonds are ordered such that the pattern can be matched by
// processing them in order.
func Parse(input string) (*smarts.Pattern, []source.SyntaxError) {
	pattern, _, errs := ParseSource(source.NewSourceFile("smarts", []byte(input)))
	return pattern, errs
}

// ParseSource parses the contents of a given source file into a pattern, and
// additionally returns a mapping from atom indices to the text they came from.
func ParseSource(srcfile *source.File) (*smarts.Pattern, *source.Map[uint], []source.SyntaxError) {
	stream, errs := lexer.NewStream(srcfile)
	//
	if len(errs) != 0 {
		return nil, nil, errs
	}
	//
	parser := &Parser{
		Stream:   stream,
		pattern:  &smarts.Pattern{},
		srcmap:   source.NewSourceMap[uint](srcfile),
		rings:    make(map[int]ringBond),
		branches: stack.NewStack[uint](),
	}
	//
	if errs = parser.parsePattern(); len(errs) != 0 {
		return nil, nil, errs
	}
	//
	return parser.pattern, parser.srcmap, nil
}

// A ring bond which has been opened, but not yet closed.
type ringBond struct {
	atom     uint
	bond     smarts.BondPredicate
	explicit bool
	span     source.Span
}

// Parser is a recursive descent parser for SMARTS.
type Parser struct {
	*lexer.Stream
	pattern *smarts.Pattern
	srcmap  *source.Map[uint]
	// Open ring bonds, indexed by ring bond number
	rings map[int]ringBond
	// Atoms from which enclosing branches start
	branches *stack.Stack[uint]
	// Set when the current atom carries a stereo specification
	chiral bool
	// Set whilst no primitive (other than an isotope) has been parsed in the
	// current bracket atom.
	leading bool
}

func (p *Parser) parsePattern() []source.SyntaxError {
	prev, errs := p.parseAtom()
	// Set immediately after an opening brace
	expectAtom := false
	//
	for len(errs) == 0 && !p.Follows(lexer.END_OF) {
		token := p.Lookahead()
		//
		switch {
		case expectAtom && p.Follows(lexer.LBRACE, lexer.RBRACE):
			return p.SyntaxErrors(token, "expected atom")
		case p.Match(lexer.LBRACE):
			p.branches.Push(prev)
			//
			expectAtom = true
		case p.Follows(lexer.RBRACE):
			if p.branches.IsEmpty() {
				return p.SyntaxErrors(token, "unbalanced ')'")
			}
			//
			p.Expect(lexer.RBRACE)
			prev = p.branches.Pop()
		case p.Follows(lexer.DOT):
			return p.SyntaxErrors(token, "disconnected components are not supported")
		default:
			var next uint
			//
			bond, explicit, errs := p.parseBondExpression()
			//
			switch {
			case len(errs) != 0:
				return errs
			case p.Follows(lexer.DIGIT, lexer.PERCENT) && !expectAtom:
				errs = p.parseRingBond(prev, bond, explicit, token.Span)
			case p.startsAtom():
				if next, errs = p.parseAtom(); len(errs) == 0 {
					p.addBond(prev, next, bond, true)
					prev, expectAtom = next, false
				}
			default:
				return p.SyntaxErrors(p.Lookahead(), "expected atom")
			}
			//
			if len(errs) != 0 {
				return errs
			}
		}
	}
	//
	if len(errs) != 0 {
		return errs
	} else if !p.branches.IsEmpty() {
		return p.SyntaxErrors(p.Lookahead(), "expected ')'")
	}
	// Report the lowest numbered unclosed ring bond (if any)
	if len(p.rings) != 0 {
		numbers := make([]int, 0, len(p.rings))
		//
		for n := range p.rings {
			numbers = append(numbers, n)
		}
		//
		ring := p.rings[slices.Min(numbers)]
		//
		return p.SpanErrors(ring.span, "unclosed ring bond")
	}
	//
	return nil
}

func (p *Parser) startsAtom() bool {
	return p.Follows(lexer.LBRACKET, lexer.UPPER, lexer.LOWER, lexer.STAR)
}

// Parse an atom, returning its index.
func (p *Parser) parseAtom() (uint, []source.SyntaxError) {
	var (
		start = p.Lookahead()
		atom  smarts.PatternAtom
		errs  []source.SyntaxError
	)
	//
	switch start.Kind {
	case lexer.LBRACKET:
		atom, errs = p.parseBracketAtom()
	case lexer.STAR:
		p.Expect(lexer.STAR)
		atom.Predicate = smarts.NewAtomLeaf(smarts.ATOM_TRUE, 0)
	case lexer.UPPER, lexer.LOWER:
		atom.Predicate, errs = p.parseOrganicAtom()
	default:
		return 0, p.SyntaxErrors(start, "expected atom")
	}
	//
	if len(errs) != 0 {
		return 0, errs
	}
	//
	index := p.pattern.NumAtoms()
	p.pattern.Atoms = append(p.pattern.Atoms, atom)
	p.pattern.Chiral = p.pattern.Chiral || atom.Chiral
	p.srcmap.Put(index, start.Span.Join(p.Last().Span))
	//
	return index, nil
}

// Parse an atom from the organic subset, or one of the wildcards "a" and "A".
func (p *Parser) parseOrganicAtom() (smarts.AtomPredicate, []source.SyntaxError) {
	var (
		token = p.Lookahead()
		char  = p.Char(token)
	)
	//
	switch {
	case char == 'C' && p.PeekChar(1, lexer.LOWER, 'l'):
		p.Expect(lexer.UPPER)
		p.Expect(lexer.LOWER)
		//
		return element(17, false), nil
	case char == 'B' && p.PeekChar(1, lexer.LOWER, 'r'):
		p.Expect(lexer.UPPER)
		p.Expect(lexer.LOWER)
		//
		return element(35, false), nil
	case char == 'A':
		p.Expect(lexer.UPPER)
		return smarts.NewAtomLeaf(smarts.ATOM_ALIPHATIC, 0), nil
	case char == 'a':
		p.Expect(lexer.LOWER)
		return smarts.NewAtomLeaf(smarts.ATOM_AROMATIC, 0), nil
	}
	//
	switch char {
	case 'B', 'C', 'N', 'O', 'P', 'S', 'F', 'I':
		p.Expect(lexer.UPPER)
		n, _ := smarts.ElementNumber(string(char))
		//
		return element(n, false), nil
	case 'b', 'c', 'n', 'o', 'p', 's':
		p.Expect(lexer.LOWER)
		n, _ := smarts.ElementNumber(string(char - 'a' + 'A'))
		//
		return element(n, true), nil
	}
	//
	return smarts.AtomPredicate{}, p.SyntaxErrors(token, "atom must be in brackets")
}

func (p *Parser) parseBracketAtom() (smarts.PatternAtom, []source.SyntaxError) {
	var atom smarts.PatternAtom
	//
	p.Expect(lexer.LBRACKET)
	p.chiral, p.leading = false, true
	//
	if p.Follows(lexer.RBRACKET) {
		return atom, p.SyntaxErrors(p.Lookahead(), "empty atom")
	}
	//
	predicate, errs := parseExpression(p, p.parseAtomPrimitive, p.startsAtomPrimitive)
	//
	if len(errs) != 0 {
		return atom, errs
	}
	//
	atom.Predicate = predicate
	atom.Chiral = p.chiral
	// Atom class
	if p.Match(lexer.COLON) {
		n, _, ok := p.Number()
		//
		if !ok {
			return atom, p.SyntaxErrors(p.Lookahead(), "expected atom class")
		}
		//
		atom.Class = n
	}
	//
	if !p.Match(lexer.RBRACKET) {
		return atom, p.SyntaxErrors(p.Lookahead(), "expected ']'")
	}
	//
	return atom, nil
}

func (p *Parser) startsAtomPrimitive() bool {
	return p.Follows(lexer.UPPER, lexer.LOWER, lexer.DIGIT, lexer.HASH, lexer.STAR, lexer.PLUS, lexer.MINUS,
		lexer.AT, lexer.DOLLAR, lexer.NOT)
}

//nolint:gocyclo
func (p *Parser) parseAtomPrimitive() (smarts.AtomPredicate, []source.SyntaxError) {
	var (
		token   = p.Lookahead()
		char    = p.Char(token)
		leading = p.leading
	)
	//
	p.leading = false
	//
	switch token.Kind {
	case lexer.STAR:
		p.Expect(lexer.STAR)
		return smarts.NewAtomLeaf(smarts.ATOM_TRUE, 0), nil
	case lexer.DIGIT:
		n, _, _ := p.Number()
		p.leading = leading
		//
		return smarts.NewAtomLeaf(smarts.ATOM_ISOTOPE, n), nil
	case lexer.HASH:
		p.Expect(lexer.HASH)
		//
		if n, _, ok := p.Number(); ok {
			return smarts.NewAtomLeaf(smarts.ATOM_ATOMIC_NUMBER, n), nil
		}
		//
		return smarts.AtomPredicate{}, p.SyntaxErrors(p.Lookahead(), "expected atomic number")
	case lexer.PLUS, lexer.MINUS:
		return smarts.NewAtomLeaf(smarts.ATOM_CHARGE, p.parseCharge()), nil
	case lexer.AT:
		p.Expect(lexer.AT)
		p.chiral = true
		//
		if p.Match(lexer.AT) {
			return smarts.NewAtomLeaf(smarts.ATOM_CHIRALITY, smarts.CLOCKWISE), nil
		}
		//
		return smarts.NewAtomLeaf(smarts.ATOM_CHIRALITY, smarts.ANTICLOCKWISE), nil
	case lexer.DOLLAR:
		return smarts.AtomPredicate{}, p.SyntaxErrors(token, "recursive SMARTS is not supported")
	case lexer.UPPER:
		return p.parseUpperPrimitive(char, leading)
	case lexer.LOWER:
		return p.parseLowerPrimitive(char)
	}
	//
	return smarts.AtomPredicate{}, p.SyntaxErrors(token, "expected atom primitive")
}

// Parse a primitive starting with an upper case letter.  Two letter element
// symbols take priority, hence "[Cl]" is chlorine and not "C&l".
func (p *Parser) parseUpperPrimitive(char rune, leading bool) (smarts.AtomPredicate, []source.SyntaxError) {
	token := p.Lookahead()
	// Two letter element symbol?
	if next := p.Peek(1); next.Kind == lexer.LOWER {
		symbol := string([]rune{char, p.Char(next)})
		//
		if n, ok := smarts.ElementNumber(symbol); ok && n <= MAX_TWO_LETTER_ELEMENT {
			p.Expect(lexer.UPPER)
			p.Expect(lexer.LOWER)
			//
			return element(n, false), nil
		}
	}
	//
	switch char {
	case 'A':
		p.Expect(lexer.UPPER)
		return smarts.NewAtomLeaf(smarts.ATOM_ALIPHATIC, 0), nil
	case 'D':
		return p.parseCount(smarts.ATOM_DEGREE), nil
	case 'X':
		return p.parseCount(smarts.ATOM_CONNECTIVITY), nil
	case 'H':
		// A lone "[H]" (or "[2H]", "[H+]", etc) denotes a hydrogen atom.
		if next := p.Peek(1).Kind; leading &&
			(next == lexer.RBRACKET || next == lexer.PLUS || next == lexer.MINUS || next == lexer.COLON) {
			p.Expect(lexer.UPPER)
			return smarts.NewAtomLeaf(smarts.ATOM_ATOMIC_NUMBER, 1), nil
		}
		//
		return p.parseCount(smarts.ATOM_TOTAL_H), nil
	case 'R':
		p.Expect(lexer.UPPER)
		//
		n, _, ok := p.Number()
		//
		switch {
		case !ok:
			return smarts.NewAtomLeaf(smarts.ATOM_CYCLIC, 0), nil
		case n == 0:
			return smarts.NewAtomLeaf(smarts.ATOM_ACYCLIC, 0), nil
		default:
			return smarts.NewAtomLeaf(smarts.ATOM_RING_MEMBERSHIP, n), nil
		}
	}
	//
	if n, ok := smarts.ElementNumber(string(char)); ok {
		p.Expect(lexer.UPPER)
		return element(n, false), nil
	}
	//
	return smarts.AtomPredicate{}, p.SyntaxErrors(token, "unknown element")
}

// Parse a primitive starting with a lower case letter.
func (p *Parser) parseLowerPrimitive(char rune) (smarts.AtomPredicate, []source.SyntaxError) {
	token := p.Lookahead()
	// Two letter aromatic element?
	if p.PeekChar(1, lexer.LOWER, 'e') && char == 's' || p.PeekChar(1, lexer.LOWER, 's') && char == 'a' {
		symbol := string([]rune{char - 'a' + 'A', p.Char(p.Peek(1))})
		n, _ := smarts.ElementNumber(symbol)
		//
		p.Expect(lexer.LOWER)
		p.Expect(lexer.LOWER)
		//
		return element(n, true), nil
	}
	//
	switch char {
	case 'a':
		p.Expect(lexer.LOWER)
		return smarts.NewAtomLeaf(smarts.ATOM_AROMATIC, 0), nil
	case 'b', 'c', 'n', 'o', 'p', 's':
		p.Expect(lexer.LOWER)
		n, _ := smarts.ElementNumber(string(char - 'a' + 'A'))
		//
		return element(n, true), nil
	case 'h':
		return p.parseCount(smarts.ATOM_IMPLICIT_H), nil
	case 'v':
		return p.parseCount(smarts.ATOM_VALENCE), nil
	case 'x':
		return p.parseCount(smarts.ATOM_RING_CONNECTIVITY), nil
	case 'r':
		p.Expect(lexer.LOWER)
		//
		n, _, ok := p.Number()
		//
		switch {
		case !ok:
			return smarts.NewAtomLeaf(smarts.ATOM_CYCLIC, 0), nil
		case n == 0:
			return smarts.NewAtomLeaf(smarts.ATOM_ACYCLIC, 0), nil
		default:
			return smarts.NewAtomLeaf(smarts.ATOM_RING_SIZE, n), nil
		}
	}
	//
	return smarts.AtomPredicate{}, p.SyntaxErrors(token, "unknown atom primitive")
}

// Parse a single letter primitive with an optional count, which defaults to 1.
func (p *Parser) parseCount(kind smarts.AtomKind) smarts.AtomPredicate {
	p.Expect(p.Lookahead().Kind)
	//
	if n, _, ok := p.Number(); ok {
		return smarts.NewAtomLeaf(kind, n)
	}
	//
	return smarts.NewAtomLeaf(kind, 1)
}

// Parse a charge, which is either a sign followed by a magnitude, or a
// repeated sign (e.g. "++").
func (p *Parser) parseCharge() int {
	var (
		kind = p.Expect(p.Lookahead().Kind).Kind
		sign = 1
	)
	//
	if kind == lexer.MINUS {
		sign = -1
	}
	//
	if n, _, ok := p.Number(); ok {
		return sign * n
	}
	//
	charge := sign
	//
	for p.Match(kind) {
		charge += sign
	}
	//
	return charge
}

// MAX_TWO_LETTER_ELEMENT is the highest atomic number whose symbol is
// recognised inside brackets, where "[Cn]" would otherwise be ambiguous.
const MAX_TWO_LETTER_ELEMENT = 103

// Parse an optional bond expression, returning the default bond when none is
// given.
func (p *Parser) parseBondExpression() (smarts.BondPredicate, bool, []source.SyntaxError) {
	if !p.startsBondPrimitive() {
		return smarts.NewBondLeaf(smarts.BOND_DEFAULT), false, nil
	}
	//
	bond, errs := parseExpression(p, p.parseBondPrimitive, p.startsBondPrimitive)
	//
	return bond, true, errs
}

func (p *Parser) startsBondPrimitive() bool {
	return p.Follows(lexer.MINUS, lexer.EQUALS, lexer.HASH, lexer.DOLLAR, lexer.COLON, lexer.TILDE, lexer.AT,
		lexer.SLASH, lexer.BACKSLASH, lexer.NOT)
}

func (p *Parser) parseBondPrimitive() (smarts.BondPredicate, []source.SyntaxError) {
	var (
		token = p.Lookahead()
		kind  smarts.BondKind
	)
	//
	switch token.Kind {
	case lexer.MINUS:
		kind = smarts.BOND_SINGLE
	case lexer.EQUALS:
		kind = smarts.BOND_DOUBLE
	case lexer.HASH:
		kind = smarts.BOND_TRIPLE
	case lexer.DOLLAR:
		kind = smarts.BOND_QUADRUPLE
	case lexer.COLON:
		kind = smarts.BOND_AROMATIC
	case lexer.TILDE:
		kind = smarts.BOND_ANY
	case lexer.AT:
		kind = smarts.BOND_RING
	case lexer.SLASH:
		kind = smarts.BOND_UP
	case lexer.BACKSLASH:
		kind = smarts.BOND_DOWN
	default:
		return smarts.BondPredicate{}, p.SyntaxErrors(token, "expected bond primitive")
	}
	//
	p.Expect(token.Kind)
	//
	return smarts.NewBondLeaf(kind), nil
}

// Parse a ring bond number, which either opens or closes a ring.  The span
// covers the bond expression (if any) and the ring bond number.
func (p *Parser) parseRingBond(atom uint, bond smarts.BondPredicate, explicit bool,
	start source.Span) []source.SyntaxError {
	var number int
	//
	if p.Match(lexer.PERCENT) {
		if !p.Follows(lexer.DIGIT) || p.Peek(1).Kind != lexer.DIGIT {
			return p.SyntaxErrors(p.Lookahead(), "expected two digit ring bond number")
		}
		//
		tens := p.Char(p.Expect(lexer.DIGIT))
		units := p.Char(p.Expect(lexer.DIGIT))
		number = int(tens-'0')*10 + int(units-'0')
	} else {
		number = int(p.Char(p.Expect(lexer.DIGIT)) - '0')
	}
	//
	span := start.Join(p.Last().Span)
	open, ok := p.rings[number]
	//
	if !ok {
		p.rings[number] = ringBond{atom, bond, explicit, span}
		return nil
	}
	//
	delete(p.rings, number)
	//
	switch {
	case open.atom == atom:
		return p.SpanErrors(span, "ring bond connects atom to itself")
	case explicit && open.explicit && !bond.Equals(&open.bond):
		return p.SpanErrors(span, fmt.Sprintf("conflicting ring bond (%s vs %s)", open.bond.String(), bond.String()))
	case p.hasBond(atom, open.atom):
		return p.SpanErrors(span, "duplicate bond")
	case !explicit:
		bond = open.bond
	}
	//
	p.addBond(atom, open.atom, bond, false)
	//
	return nil
}

func (p *Parser) addBond(src uint, dst uint, bond smarts.BondPredicate, grow bool) {
	p.pattern.Bonds = append(p.pattern.Bonds, smarts.PatternBond{
		Predicate: bond,
		Source:    src,
		Target:    dst,
		Grow:      grow,
	})
}

func (p *Parser) hasBond(a uint, b uint) bool {
	for _, bond := range p.pattern.Bonds {
		if bond.Source == a && bond.Target == b || bond.Source == b && bond.Target == a {
			return true
		}
	}
	//
	return false
}

func element(n int, aromatic bool) smarts.AtomPredicate {
	if aromatic {
		return smarts.NewAtomLeaf(smarts.ATOM_AROMATIC_ELEMENT, n)
	}
	//
	return smarts.NewAtomLeaf(smarts.ATOM_ALIPHATIC_ELEMENT, n)
}
