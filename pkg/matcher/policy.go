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
package matcher

import (
	"fmt"
	"slices"
)

// Policy determines what is recorded for each complete mapping found during a
// search, and whether or not the search can stop after the first one.
type Policy interface {
	// Clear any previously recorded mappings.
	Clear()
	// Record a complete mapping from pattern atoms to graph atoms.  The given
	// slice is owned by the matcher and must be copied if retained.
	Record(assignment []uint)
	// IsEmpty checks whether nothing has been recorded (yet).
	IsEmpty() bool
	// StopAfterFirst indicates whether the search can terminate as soon as a
	// single mapping has been recorded.
	StopAfterFirst() bool
}

// Existence records only whether or not a match exists.
type Existence struct {
	Matched bool
}

// Clear implementation for Policy interface.
func (p *Existence) Clear() {
	p.Matched = false
}

// Record implementation for Policy interface.
func (p *Existence) Record(assignment []uint) {
	p.Matched = true
}

// IsEmpty implementation for Policy interface.
func (p *Existence) IsEmpty() bool {
	return !p.Matched
}

// StopAfterFirst implementation for Policy interface.
func (p *Existence) StopAfterFirst() bool {
	return true
}

// Count records the number of distinct mappings found.
type Count struct {
	Count uint
}

// Clear implementation for Policy interface.
func (p *Count) Clear() {
	p.Count = 0
}

// Record implementation for Policy interface.
func (p *Count) Record(assignment []uint) {
	p.Count++
}

// IsEmpty implementation for Policy interface.
func (p *Count) IsEmpty() bool {
	return p.Count == 0
}

// StopAfterFirst implementation for Policy interface.
func (p *Count) StopAfterFirst() bool {
	return false
}

// First records the first mapping found.
type First struct {
	Mapping []uint
}

// Clear implementation for Policy interface.
func (p *First) Clear() {
	p.Mapping = nil
}

// Record implementation for Policy interface.
func (p *First) Record(assignment []uint) {
	if p.Mapping == nil {
		p.Mapping = slices.Clone(assignment)
	}
}

// IsEmpty implementation for Policy interface.
func (p *First) IsEmpty() bool {
	return p.Mapping == nil
}

// StopAfterFirst implementation for Policy interface.
func (p *First) StopAfterFirst() bool {
	return true
}

// All records every mapping found, in the order they were found.
type All struct {
	Mappings [][]uint
}

// Clear implementation for Policy interface.
func (p *All) Clear() {
	p.Mappings = nil
}

// Record implementation for Policy interface.
func (p *All) Record(assignment []uint) {
	p.Mappings = append(p.Mappings, slices.Clone(assignment))
}

// IsEmpty implementation for Policy interface.
func (p *All) IsEmpty() bool {
	return len(p.Mappings) == 0
}

// StopAfterFirst implementation for Policy interface.
func (p *All) StopAfterFirst() bool {
	return false
}

// NewPolicy constructs a policy from its name, which should be one of "exists",
// "count", "first" or "all".
func NewPolicy(mode string) (Policy, error) {
	switch mode {
	case "exists":
		return &Existence{}, nil
	case "count":
		return &Count{}, nil
	case "first":
		return &First{}, nil
	case "all":
		return &All{}, nil
	default:
		return nil, fmt.Errorf("unknown match mode \"%s\"", mode)
	}
}
