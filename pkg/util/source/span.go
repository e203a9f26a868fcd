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
package source

import "fmt"

// Span identifies a half-open range [start,end) of rune offsets in some text.
type Span struct {
	start int
	end   int
}

// NewSpan constructs a span, panicking if it is inverted.
func NewSpan(start int, end int) Span {
	if start > end {
		panic(fmt.Sprintf("inverted span [%d,%d)", start, end))
	}
	//
	return Span{start, end}
}

// Start returns the offset of the first rune covered.
func (s Span) Start() int {
	return s.start
}

// End returns the offset one past the last rune covered.
func (s Span) End() int {
	return s.end
}

// Length returns the number of runes covered.
func (s Span) Length() int {
	return s.end - s.start
}

// Join returns the smallest span covering both spans.
func (s Span) Join(other Span) Span {
	return Span{min(s.start, other.start), max(s.end, other.end)}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.start, s.end)
}
