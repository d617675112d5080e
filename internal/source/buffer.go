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

// Package source provides read-only views over one source buffer: byte
// ranges, line arithmetic, indentation, and heredoc-aware range expansion.
//
// Every function treats the buffer as immutable. All offsets are byte
// offsets; ranges are half-open.
package source

import (
	"bytes"
	"sort"
)

// A Range is a half-open byte range [Start, End) in a buffer.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range covers no bytes.
func (r Range) Empty() bool { return r.End <= r.Start }

// Contains reports whether offset lies within the range.
func (r Range) Contains(offset int) bool { return offset >= r.Start && offset < r.End }

// A Buffer is an immutable source text with a precomputed line index.
type Buffer struct {
	data  []byte
	lines []int // start offset of each line
}

// NewBuffer wraps src. The caller must not modify src afterwards.
func NewBuffer(src []byte) *Buffer {
	lines := []int{0}
	for i, b := range src {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}

	return &Buffer{data: src, lines: lines}
}

// Bytes returns the underlying text. Callers must not modify it.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Slice returns the text covered by r. The range is clamped to the buffer.
func (b *Buffer) Slice(r Range) []byte {
	start := min(max(r.Start, 0), len(b.data))
	end := min(max(r.End, start), len(b.data))

	return b.data[start:end]
}

// Position converts offset to a 1-based line and column.
func (b *Buffer) Position(offset int) (line, column int) {
	offset = min(max(offset, 0), len(b.data))

	i := sort.Search(len(b.lines), func(i int) bool { return b.lines[i] > offset }) - 1

	return i + 1, offset - b.lines[i] + 1
}

// LineStart returns the offset of the first byte of the line containing offset.
func (b *Buffer) LineStart(offset int) int {
	offset = min(max(offset, 0), len(b.data))

	i := sort.Search(len(b.lines), func(i int) bool { return b.lines[i] > offset }) - 1

	return b.lines[i]
}

// LineEnd returns the offset of the newline terminating the line containing
// offset, or the buffer length for an unterminated final line.
func (b *Buffer) LineEnd(offset int) int {
	start := b.LineStart(offset)
	if i := bytes.IndexByte(b.data[start:], '\n'); i >= 0 {
		return start + i
	}

	return len(b.data)
}

// Indentation returns the leading whitespace of the line containing offset.
func (b *Buffer) Indentation(offset int) []byte {
	start := b.LineStart(offset)

	end := start
	for end < len(b.data) && (b.data[end] == ' ' || b.data[end] == '\t') {
		end++
	}

	return b.data[start:end]
}

// BlankBetween reports whether the text strictly between the two offsets
// contains a blank line, that is two newlines separated only by spaces and
// tabs. It decides whether a preceding annotation is attached to a node.
func (b *Buffer) BlankBetween(from, to int) bool {
	if to <= from {
		return false
	}

	newlines := 0
	for _, c := range b.Slice(Range{Start: from, End: to}) {
		switch c {
		case '\n':
			newlines++
			if newlines > 1 {
				return true
			}
		case ' ', '\t', '\r':
		default:
			newlines = 0
		}
	}

	return false
}
