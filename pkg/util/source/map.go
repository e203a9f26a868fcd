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

// Map records where, in a file, the items produced by a parser came from (for
// example, the atoms of a pattern keyed by their index).
type Map[T comparable] struct {
	file  *File
	spans map[T]Span
}

// NewSourceMap constructs an empty map over a given file.
func NewSourceMap[T comparable](file *File) *Map[T] {
	return &Map[T]{file, make(map[T]Span)}
}

// Source returns the file this map refers to.
func (m *Map[T]) Source() *File {
	return m.file
}

// Put records the span of an item, which must not already be present.
func (m *Map[T]) Put(item T, span Span) {
	if _, ok := m.spans[item]; ok {
		panic(fmt.Sprintf("duplicate source map item %v", item))
	}
	//
	m.spans[item] = span
}

// Has checks whether an item has been recorded.
func (m *Map[T]) Has(item T) bool {
	_, ok := m.spans[item]
	return ok
}

// Get returns the span of a recorded item, panicking if it is absent.
func (m *Map[T]) Get(item T) Span {
	span, ok := m.spans[item]
	if !ok {
		panic(fmt.Sprintf("unknown source map item %v", item))
	}
	//
	return span
}

// SyntaxError constructs an error reported against the span of an item.
func (m *Map[T]) SyntaxError(item T, msg string) *SyntaxError {
	return m.file.SyntaxError(m.Get(item), msg)
}
