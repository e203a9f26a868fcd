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
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timvdm/smartscompiler/pkg/util/source"
)

func Test_Stream_00(t *testing.T) {
	stream := newStream(t, "[NH4+]")
	kinds := []uint{LBRACKET, UPPER, UPPER, DIGIT, PLUS, RBRACKET, END_OF}
	//
	for i, kind := range kinds {
		assert.Equal(t, kind, stream.Peek(i).Kind)
	}
	// Peeking beyond the end gives END_OF
	assert.Equal(t, END_OF, stream.Peek(100).Kind)
}

func Test_Stream_01(t *testing.T) {
	stream := newStream(t, "C123c")
	//
	assert.True(t, stream.FollowsChar(UPPER, 'C'))
	assert.True(t, stream.PeekChar(4, LOWER, 'c'))
	assert.False(t, stream.PeekChar(4, UPPER, 'c'))
	stream.Expect(UPPER)
	//
	n, span, ok := stream.Number()
	assert.True(t, ok)
	assert.Equal(t, 123, n)
	assert.Equal(t, source.NewSpan(1, 4), span)
	assert.Equal(t, "c", stream.Text(stream.Lookahead()))
	//
	_, _, ok = stream.Number()
	assert.False(t, ok)
	assert.True(t, stream.Match(LOWER))
	assert.True(t, stream.Done())
	assert.Equal(t, 'c', stream.Char(stream.Last()))
	assert.Equal(t, rune(0), stream.Char(stream.Lookahead()))
}

func Test_Stream_02(t *testing.T) {
	_, errs := NewStream(source.NewSourceFile("test", []byte("CC>C")))
	//
	require.Len(t, errs, 1)
	assert.Equal(t, "unknown character encountered", errs[0].Message())
	assert.Equal(t, source.NewSpan(2, 3), errs[0].Span())
}

func Test_Stream_03(t *testing.T) {
	stream := newStream(t, "%12")
	//
	assert.True(t, stream.Match(PERCENT))
	assert.Panics(t, func() { stream.Expect(UPPER) })
	assert.Equal(t, DIGIT, stream.Expect(DIGIT).Kind)
}

func newStream(t *testing.T, text string) *Stream {
	stream, errs := NewStream(source.NewSourceFile("test", []byte(text)))
	require.Empty(t, errs)
	//
	return stream
}
