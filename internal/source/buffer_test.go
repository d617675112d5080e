// Copyright 2026 Toney Mathews. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package source_test

import (
	"testing"

	. "github.com/toneymathews/rubocop-graphql/internal/source"
)

func TestPosition(t *testing.T) {
	t.Parallel()

	buf := NewBuffer([]byte("ab\ncd\n\nef"))

	tests := []struct {
		name   string
		offset int
		line   int
		column int
	}{
		{name: "start", offset: 0, line: 1, column: 1},
		{name: "mid line", offset: 1, line: 1, column: 2},
		{name: "newline belongs to its line", offset: 2, line: 1, column: 3},
		{name: "second line", offset: 3, line: 2, column: 1},
		{name: "empty line", offset: 6, line: 3, column: 1},
		{name: "unterminated final line", offset: 8, line: 4, column: 2},
		{name: "clamped past end", offset: 100, line: 4, column: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			line, column := buf.Position(tt.offset)
			if line != tt.line || column != tt.column {
				t.Errorf("Position(%d) = %d:%d, want %d:%d", tt.offset, line, column, tt.line, tt.column)
			}
		})
	}
}

func TestLineBounds(t *testing.T) {
	t.Parallel()

	buf := NewBuffer([]byte("ab\ncd\nef"))

	tests := []struct {
		name   string
		offset int
		start  int
		end    int
	}{
		{name: "first line", offset: 1, start: 0, end: 2},
		{name: "middle line", offset: 4, start: 3, end: 5},
		{name: "unterminated last line", offset: 7, start: 6, end: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := buf.LineStart(tt.offset); got != tt.start {
				t.Errorf("LineStart(%d) = %d, want %d", tt.offset, got, tt.start)
			}

			if got := buf.LineEnd(tt.offset); got != tt.end {
				t.Errorf("LineEnd(%d) = %d, want %d", tt.offset, got, tt.end)
			}
		})
	}
}

func TestIndentation(t *testing.T) {
	t.Parallel()

	buf := NewBuffer([]byte("  two\n\tone\nnone\n"))

	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{name: "spaces", offset: 3, want: "  "},
		{name: "tab", offset: 8, want: "\t"},
		{name: "none", offset: 12, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := string(buf.Indentation(tt.offset)); got != tt.want {
				t.Errorf("Indentation(%d) = %q, want %q", tt.offset, got, tt.want)
			}
		})
	}
}

func TestBlankBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		from, to int
		want     bool
	}{
		{name: "adjacent lines", src: "a\nb\n", from: 1, to: 2, want: false},
		{name: "blank line", src: "a\n\nb\n", from: 1, to: 3, want: true},
		{name: "blank line with spaces", src: "a\n  \nb\n", from: 1, to: 5, want: true},
		{name: "text resets the count", src: "a\nb\nc\n", from: 1, to: 4, want: false},
		{name: "empty span", src: "a\n\nb\n", from: 3, to: 3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := NewBuffer([]byte(tt.src))
			if got := buf.BlankBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("BlankBetween(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestSliceClamps(t *testing.T) {
	t.Parallel()

	buf := NewBuffer([]byte("abc"))

	if got := string(buf.Slice(Range{Start: -2, End: 10})); got != "abc" {
		t.Errorf("Slice() = %q, want %q", got, "abc")
	}

	if got := buf.Slice(Range{Start: 2, End: 1}); len(got) != 0 {
		t.Errorf("Slice() = %q, want empty", got)
	}
}
