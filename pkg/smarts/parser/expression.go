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
	"github.com/timvdm/smartscompiler/pkg/smarts"
	"github.com/timvdm/smartscompiler/pkg/smarts/lexer"
	"github.com/timvdm/smartscompiler/pkg/util/source"
)

// Atom and bond expressions share the same grammar, differing only in their
// primitives.  From highest to lowest precedence the operators are: negation
// ("!"), conjunction ("&" or juxtaposition), disjunction (",") and low
// precedence conjunction (";").

func parseExpression[L smarts.Leaf](p *Parser, primitive func() (smarts.Predicate[L], []source.SyntaxError),
	starts func() bool) (smarts.Predicate[L], []source.SyntaxError) {
	//
	lhs, errs := parseDisjunction(p, primitive, starts)
	//
	for len(errs) == 0 && p.Match(lexer.AND_LOW) {
		var rhs smarts.Predicate[L]
		//
		if rhs, errs = parseDisjunction(p, primitive, starts); len(errs) == 0 {
			lhs = smarts.AndLow(lhs, rhs)
		}
	}
	//
	return lhs, errs
}

func parseDisjunction[L smarts.Leaf](p *Parser, primitive func() (smarts.Predicate[L], []source.SyntaxError),
	starts func() bool) (smarts.Predicate[L], []source.SyntaxError) {
	//
	lhs, errs := parseConjunction(p, primitive, starts)
	//
	for len(errs) == 0 && p.Match(lexer.OR) {
		var rhs smarts.Predicate[L]
		//
		if rhs, errs = parseConjunction(p, primitive, starts); len(errs) == 0 {
			lhs = smarts.Or(lhs, rhs)
		}
	}
	//
	return lhs, errs
}

func parseConjunction[L smarts.Leaf](p *Parser, primitive func() (smarts.Predicate[L], []source.SyntaxError),
	starts func() bool) (smarts.Predicate[L], []source.SyntaxError) {
	//
	lhs, errs := parseNegation(p, primitive)
	// Either an explicit "&", or juxtaposition
	for len(errs) == 0 && (p.Match(lexer.AND) || starts()) {
		var rhs smarts.Predicate[L]
		//
		if rhs, errs = parseNegation(p, primitive); len(errs) == 0 {
			lhs = smarts.And(lhs, rhs)
		}
	}
	//
	return lhs, errs
}

func parseNegation[L smarts.Leaf](p *Parser,
	primitive func() (smarts.Predicate[L], []source.SyntaxError)) (smarts.Predicate[L], []source.SyntaxError) {
	if p.Match(lexer.NOT) {
		arg, errs := parseNegation(p, primitive)
		//
		if len(errs) != 0 {
			return arg, errs
		}
		//
		return smarts.Not(arg), nil
	}
	//
	return primitive()
}
