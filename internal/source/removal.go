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

import "bytes"

// RemovalRange widens r to the whole lines it occupies, the trailing
// newline, and any immediately preceding blank lines, so that removing a
// relocated declaration leaves no stray vertical gap. r should already be
// heredoc-expanded.
func (b *Buffer) RemovalRange(r Range) Range {
	start := b.LineStart(r.Start)

	// Absorb preceding blank lines.
	for start > 0 {
		prev := b.LineStart(start - 1)
		if len(bytes.TrimSpace(b.data[prev:start-1])) != 0 {
			break
		}

		start = prev
	}

	end := b.LineEnd(max(r.End-1, r.Start))
	if end < len(b.data) {
		end++ // the terminating newline
	}

	return Range{Start: start, End: end}
}
