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
package stack

import "fmt"

// Stack is a last-in first-out sequence.  The SMARTS and SMILES readers push
// the atom preceding each '(' and pop it again at the matching ')'.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// IsEmpty checks whether nothing remains on the stack.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the depth of the stack.
func (s *Stack[T]) Len() uint {
	return uint(len(s.items))
}

// Push places an item on top.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Top returns the item which would be popped next.
func (s *Stack[T]) Top() T {
	return s.items[s.top("top")]
}

// Pop removes and returns the topmost item.
func (s *Stack[T]) Pop() T {
	n := s.top("pop")
	item := s.items[n]
	s.items = s.items[:n]
	//
	return item
}

func (s *Stack[T]) top(op string) int {
	if len(s.items) == 0 {
		panic(fmt.Sprintf("%s of empty stack", op))
	}
	//
	return len(s.items) - 1
}
