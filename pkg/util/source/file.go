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

import (
	"fmt"
	"sort"
)

// File holds the text of a SMARTS or SMILES input.  Inputs given on the
// command line use a descriptive label in place of a filename.
type File struct {
	filename string
	contents []rune
	// Offset at which each line begins, computed on first use.
	lines []int
}

// NewSourceFile constructs a file from raw bytes.
func NewSourceFile(filename string, bytes []byte) *File {
	return &File{filename: filename, contents: []rune(string(bytes))}
}

// Filename returns the name (or label) given to this file.
func (f *File) Filename() string {
	return f.filename
}

// Contents returns the decoded runes of this file.
func (f *File) Contents() []rune {
	return f.contents
}

// Text returns the text covered by a span.
func (f *File) Text(span Span) string {
	return string(f.contents[span.start:span.end])
}

// SyntaxError constructs an error reported against a span of this file.
func (f *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{f, span, msg}
}

// FindFirstEnclosingLine returns the line containing the start of a span.
// Spans starting beyond the end of the file belong to the last line.
func (f *File) FindFirstEnclosingLine(span Span) Line {
	if f.lines == nil {
		f.lines = []int{0}
		//
		for i, r := range f.contents {
			if r == '\n' {
				f.lines = append(f.lines, i+1)
			}
		}
	}
	// Index of the last line starting at or before the span.
	n := sort.SearchInts(f.lines, span.start+1) - 1
	n = max(0, n)
	//
	end := len(f.contents)
	if n+1 < len(f.lines) {
		end = f.lines[n+1] - 1
	}
	//
	return Line{f, NewSpan(f.lines[n], end), n + 1}
}

// Line is a single physical line of a file.
type Line struct {
	file   *File
	span   Span
	number int
}

func (l Line) String() string {
	return l.file.Text(l.span)
}

// Number returns the line number, counting from 1.
func (l Line) Number() int {
	return l.number
}

// Start returns the offset of the first rune on this line.
func (l Line) Start() int {
	return l.span.start
}

// Length returns the number of runes on this line, excluding the newline.
func (l Line) Length() int {
	return l.span.Length()
}

// SyntaxError reports a problem with a span of some input.
type SyntaxError struct {
	file *File
	span Span
	msg  string
}

// SourceFile returns the file this error was reported against.
func (e *SyntaxError) SourceFile() *File {
	return e.file
}

// Span returns the offending span.
func (e *SyntaxError) Span() Span {
	return e.span
}

// Message returns the error message without location information.
func (e *SyntaxError) Message() string {
	return e.msg
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d-%d: %s", e.file.filename, e.span.start, e.span.end, e.msg)
}

// FirstEnclosingLine returns the line on which this error starts.
func (e *SyntaxError) FirstEnclosingLine() Line {
	return e.file.FindFirstEnclosingLine(e.span)
}
