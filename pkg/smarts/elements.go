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
package smarts

// Element symbols indexed by atomic number.  Index 0 is unused.
var elements = []string{
	"",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var symbols map[string]int

func init() {
	symbols = make(map[string]int, len(elements))
	//
	for i, s := range elements[1:] {
		symbols[s] = i + 1
	}
}

// NUM_ELEMENTS is the highest known atomic number.
const NUM_ELEMENTS = 118

// ElementSymbol returns the symbol for a given atomic number, such as "C" for
// 6.
func ElementSymbol(number int) (string, bool) {
	if number <= 0 || number >= len(elements) {
		return "", false
	}
	//
	return elements[number], true
}

// ElementNumber returns the atomic number for a given (capitalised) element
// symbol, such as 6 for "C".
func ElementNumber(symbol string) (int, bool) {
	n, ok := symbols[symbol]
	return n, ok
}

// IsAromaticElement checks whether a given element can be written in lower
// case (i.e. as aromatic) in SMILES or SMARTS.
func IsAromaticElement(number int) bool {
	switch number {
	case 5, 6, 7, 8, 15, 16, 33, 34:
		return true
	default:
		return false
	}
}
