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

package source

import (
	"bytes"
	"regexp"
)

// Squiggly and dash heredoc openers, optionally quoted. Plain << openers are
// not recognized; at the text level they are ambiguous with the shift
// operator, and schema descriptions use the indented forms.
var heredocOpener = regexp.MustCompile("<<[~-]\\s*([\"'`]?)([A-Za-z_][A-Za-z0-9_]*)")

// ExpandHeredocs extends r to cover the bodies of any heredocs opened inside
// it. A declaration like
//
//	field :name, String, description: <<~DESC
//	  The display name.
//	DESC
//
// references lines past the node's own range; a relocation that missed them
// would truncate the literal. Multiple openers on one line queue their
// bodies in order. The range is never shrunk; an unterminated heredoc
// leaves it unchanged.
func (b *Buffer) ExpandHeredocs(r Range) Range {
	end := r.End
	bodies := r.Start // end of the previous heredoc's terminator line

	for _, m := range heredocOpener.FindAllSubmatchIndex(b.Slice(r), -1) {
		delimiter := b.data[r.Start+m[4] : r.Start+m[5]]

		// A body starts on the line after its opener, or after the
		// previous heredoc's terminator when several queue up.
		search := max(b.LineEnd(r.Start+m[0]), b.LineEnd(bodies))
		if search >= b.Len() {
			break
		}

		terminator := b.heredocEnd(search+1, delimiter)
		if terminator < 0 {
			break
		}

		bodies = terminator
		end = max(end, terminator)
	}

	if end <= r.End {
		return r
	}

	return Range{Start: r.Start, End: end}
}

// heredocEnd scans line by line from offset for a line holding only the
// delimiter and returns the end offset of that line, or -1.
func (b *Buffer) heredocEnd(offset int, delimiter []byte) int {
	for start := offset; start <= b.Len(); {
		end := b.LineEnd(start)
		if bytes.Equal(bytes.TrimSpace(b.data[start:end]), delimiter) {
			return end
		}

		if end >= b.Len() {
			break
		}

		start = end + 1
	}

	return -1
}
