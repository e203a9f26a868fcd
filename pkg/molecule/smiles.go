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
package molecule

import (
	"slices"

	"github.com/timvdm/smartscompiler/pkg/smarts"
	"github.com/timvdm/smartscompiler/pkg/smarts/lexer"
	"github.com/timvdm/smartscompiler/pkg/util/collection/stack"
	"github.com/timvdm/smartscompiler/pkg/util/source"
)

// ParseSmiles reads a molecule from a SMILES string.  Stereo specifications are
// accepted but ignored.
func ParseSmiles(input string) (*Molecule, []source.SyntaxError) {
	return ParseSmilesSource(source.NewSourceFile("smiles", []byte(input)))
}

// ParseSmilesSource reads a molecule from the contents of a given source file.
func ParseSmilesSource(srcfile *source.File) (*Molecule, []source.SyntaxError) {
	stream, errs := lexer.NewStream(srcfile)
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	reader := &smilesReader{
		Stream:   stream,
		builder:  NewBuilder(),
		rings:    make(map[int]ringBond),
		branches: stack.NewStack[uint](),
	}
	//
	if errs = reader.readMolecule(); len(errs) != 0 {
		return nil, errs
	}
	//
	return reader.builder.Build(), nil
}

// A ring bond which has been opened, but not yet closed.  An order of 0
// indicates no bond symbol was given.
type ringBond struct {
	atom  uint
	order int
	span  source.Span
}

type smilesReader struct {
	*lexer.Stream
	builder  *Builder
	rings    map[int]ringBond
	branches *stack.Stack[uint]
}

func (p *smilesReader) readMolecule() []source.SyntaxError {
	if p.Follows(lexer.END_OF) {
		return nil
	}
	//
	prev, errs := p.readAtom()
	// Set immediately after an opening brace or dot
	expectAtom := false
	//
	for len(errs) == 0 && !p.Follows(lexer.END_OF) {
		token := p.Lookahead()
		//
		switch {
		case expectAtom && p.Follows(lexer.LBRACE, lexer.RBRACE, lexer.DOT):
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
			if !p.branches.IsEmpty() {
				return p.SyntaxErrors(token, "expected ')'")
			}
			//
			p.Expect(lexer.DOT)
			// The next atom starts a new component
			if prev, errs = p.readAtom(); len(errs) != 0 {
				return errs
			}
		default:
			var next uint
			//
			order := p.readBond()
			//
			switch {
			case p.Follows(lexer.DIGIT, lexer.PERCENT) && !expectAtom:
				errs = p.readRingBond(prev, order, token.Span)
			case p.Follows(lexer.LBRACKET, lexer.UPPER, lexer.LOWER, lexer.STAR):
				if next, errs = p.readAtom(); len(errs) == 0 {
					errs = p.addBond(prev, next, order, token.Span)
					prev, expectAtom = next, false
				}
			default:
				return p.SyntaxErrors(p.Lookahead(), "expected atom")
			}
		}
	}
	//
	if len(errs) != 0 {
		return errs
	} else if !p.branches.IsEmpty() {
		return p.SyntaxErrors(p.Lookahead(), "expected ')'")
	}
	//
	if len(p.rings) != 0 {
		numbers := make([]int, 0, len(p.rings))
		//
		for n := range p.rings {
			numbers = append(numbers, n)
		}
		//
		return p.SpanErrors(p.rings[slices.Min(numbers)].span, "unclosed ring bond")
	}
	//
	return nil
}

// Read an optional bond symbol, returning its order or 0 if there is none.
// Directional bonds are single bonds.
func (p *smilesReader) readBond() int {
	switch {
	case p.Match(lexer.MINUS), p.Match(lexer.SLASH), p.Match(lexer.BACKSLASH):
		return 1
	case p.Match(lexer.EQUALS):
		return 2
	case p.Match(lexer.HASH):
		return 3
	case p.Match(lexer.DOLLAR):
		return 4
	case p.Match(lexer.COLON):
		return smarts.AROMATIC_ORDER
	default:
		return 0
	}
}

func (p *smilesReader) readRingBond(atom uint, order int, start source.Span) []source.SyntaxError {
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
		p.rings[number] = ringBond{atom, order, span}
		return nil
	}
	//
	delete(p.rings, number)
	//
	switch {
	case open.order != 0 && order != 0 && open.order != order:
		return p.SpanErrors(span, "conflicting ring bond")
	case order == 0:
		order = open.order
	}
	//
	return p.addBond(open.atom, atom, order, span)
}

// Add a bond between two atoms, where an order of 0 gives the implicit bond:
// aromatic between two aromatic atoms, and single otherwise.
func (p *smilesReader) addBond(src uint, dst uint, order int, span source.Span) []source.SyntaxError {
	if order == 0 {
		order = 1
		//
		if p.builder.IsAromatic(src) && p.builder.IsAromatic(dst) {
			order = smarts.AROMATIC_ORDER
		}
	}
	//
	if _, err := p.builder.AddBond(src, dst, order); err != nil {
		return p.SpanErrors(span, err.Error())
	}
	//
	return nil
}

func (p *smilesReader) readAtom() (uint, []source.SyntaxError) {
	var (
		token = p.Lookahead()
		spec  AtomSpec
		errs  []source.SyntaxError
	)
	//
	switch token.Kind {
	case lexer.LBRACKET:
		spec, errs = p.readBracketAtom()
	case lexer.STAR:
		p.Expect(lexer.STAR)
	case lexer.UPPER, lexer.LOWER:
		spec, errs = p.readOrganicAtom()
	default:
		return 0, p.SyntaxErrors(token, "expected atom")
	}
	//
	if len(errs) != 0 {
		return 0, errs
	}
	//
	return p.builder.AddAtom(spec), nil
}

func (p *smilesReader) readOrganicAtom() (AtomSpec, []source.SyntaxError) {
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
		return AtomSpec{Element: 17}, nil
	case char == 'B' && p.PeekChar(1, lexer.LOWER, 'r'):
		p.Expect(lexer.UPPER)
		p.Expect(lexer.LOWER)
		//
		return AtomSpec{Element: 35}, nil
	}
	//
	switch char {
	case 'B', 'C', 'N', 'O', 'P', 'S', 'F', 'I':
		p.Expect(lexer.UPPER)
		n, _ := smarts.ElementNumber(string(char))
		//
		return AtomSpec{Element: n}, nil
	case 'b', 'c', 'n', 'o', 'p', 's':
		p.Expect(lexer.LOWER)
		n, _ := smarts.ElementNumber(string(char - 'a' + 'A'))
		//
		return AtomSpec{Element: n, Aromatic: true}, nil
	}
	//
	return AtomSpec{}, p.SyntaxErrors(token, "atom must be in brackets")
}

// Read a bracket atom, which has the form: "[" isotope? symbol chirality?
// hcount? charge? class? "]".
func (p *smilesReader) readBracketAtom() (AtomSpec, []source.SyntaxError) {
	spec := AtomSpec{Bracket: true}
	//
	p.Expect(lexer.LBRACKET)
	// Isotope
	if n, _, ok := p.Number(); ok {
		spec.Mass = n
	}
	// Symbol
	if errs := p.readSymbol(&spec); len(errs) != 0 {
		return spec, errs
	}
	// Chirality (ignored)
	if p.Match(lexer.AT) {
		p.Match(lexer.AT)
	}
	// Hydrogen count
	if p.FollowsChar(lexer.UPPER, 'H') {
		p.Expect(lexer.UPPER)
		//
		if n, _, ok := p.Number(); ok {
			spec.Hydrogens = n
		} else {
			spec.Hydrogens = 1
		}
	}
	// Charge
	if p.Follows(lexer.PLUS, lexer.MINUS) {
		kind := p.Expect(p.Lookahead().Kind).Kind
		sign := 1
		//
		if kind == lexer.MINUS {
			sign = -1
		}
		//
		if n, _, ok := p.Number(); ok {
			spec.Charge = sign * n
		} else {
			spec.Charge = sign
			//
			for p.Match(kind) {
				spec.Charge += sign
			}
		}
	}
	// Atom class
	if p.Match(lexer.COLON) {
		n, _, ok := p.Number()
		//
		if !ok {
			return spec, p.SyntaxErrors(p.Lookahead(), "expected atom class")
		}
		//
		spec.Class = n
	}
	//
	if !p.Match(lexer.RBRACKET) {
		return spec, p.SyntaxErrors(p.Lookahead(), "expected ']'")
	}
	//
	return spec, nil
}

func (p *smilesReader) readSymbol(spec *AtomSpec) []source.SyntaxError {
	var (
		token = p.Lookahead()
		char  = p.Char(token)
		next  = p.Peek(1)
	)
	//
	switch token.Kind {
	case lexer.STAR:
		p.Expect(lexer.STAR)
		return nil
	case lexer.UPPER:
		if next.Kind == lexer.LOWER {
			if n, ok := smarts.ElementNumber(string([]rune{char, p.Char(next)})); ok {
				p.Expect(lexer.UPPER)
				p.Expect(lexer.LOWER)
				spec.Element = n
				//
				return nil
			}
		}
		//
		if n, ok := smarts.ElementNumber(string(char)); ok {
			p.Expect(lexer.UPPER)
			spec.Element = n
			//
			return nil
		}
	case lexer.LOWER:
		upper := char - 'a' + 'A'
		// Two letter aromatic symbols (e.g. "se")
		if next.Kind == lexer.LOWER {
			if n, ok := smarts.ElementNumber(string([]rune{upper, p.Char(next)})); ok && smarts.IsAromaticElement(n) {
				p.Expect(lexer.LOWER)
				p.Expect(lexer.LOWER)
				spec.Element, spec.Aromatic = n, true
				//
				return nil
			}
		}
		//
		if n, ok := smarts.ElementNumber(string(upper)); ok && smarts.IsAromaticElement(n) {
			p.Expect(lexer.LOWER)
			spec.Element, spec.Aromatic = n, true
			//
			return nil
		}
	}
	//
	return p.SyntaxErrors(token, "unknown element")
}
