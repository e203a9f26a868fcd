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
package termio

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Colour is one of the eight standard terminal colours.
type Colour uint

const (
	// BLACK terminal colour
	BLACK Colour = iota
	// RED terminal colour
	RED
	// GREEN terminal colour
	GREEN
	// YELLOW terminal colour
	YELLOW
	// BLUE terminal colour
	BLUE
	// MAGENTA terminal colour
	MAGENTA
	// CYAN terminal colour
	CYAN
	// WHITE terminal colour
	WHITE
)

// Style is a combination of text attributes, rendered as a single ANSI escape
// sequence.  The zero style applies no formatting.
type Style struct {
	codes []uint
}

// Bold returns this style with bold text.
func (s Style) Bold() Style {
	return s.with(1)
}

// Underline returns this style with underlined text.
func (s Style) Underline() Style {
	return s.with(4)
}

// Fg returns this style with a given foreground colour.
func (s Style) Fg(col Colour) Style {
	return s.with(30 + uint(col))
}

// Bg returns this style with a given background colour.
func (s Style) Bg(col Colour) Style {
	return s.with(40 + uint(col))
}

// Escape returns the escape sequence which turns this style on.
func (s Style) Escape() string {
	if len(s.codes) == 0 {
		return ""
	}
	//
	codes := make([]string, len(s.codes))
	//
	for i, c := range s.codes {
		codes[i] = strconv.FormatUint(uint64(c), 10)
	}
	//
	return "\033[" + strings.Join(codes, ";") + "m"
}

// Apply wraps some text in this style, resetting the terminal afterwards.
func (s Style) Apply(text string) string {
	if len(s.codes) == 0 {
		return text
	}
	//
	return s.Escape() + text + RESET
}

func (s Style) with(code uint) Style {
	codes := make([]uint, len(s.codes), len(s.codes)+1)
	copy(codes, s.codes)
	//
	return Style{append(codes, code)}
}

// RESET turns off all formatting.
const RESET = "\033[0m"

// IsTerminal checks whether a file (typically stdout) is attached to a
// terminal, and hence whether styles should be used.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
