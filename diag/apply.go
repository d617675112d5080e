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

package diag

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidEdit is returned by [Apply] for edits that are out of bounds,
// inverted, or overlapping.
var ErrInvalidEdit = errors.New("invalid text edit")

// Apply applies edits to src and returns the result. Edits address the
// original buffer: they are applied back to front so earlier offsets stay
// valid. Inserts at the same offset keep their slice order in the output.
//
// src is not modified. Overlapping edits are rejected with [ErrInvalidEdit];
// callers filter conflicting fixes before applying (see [Overlaps]).
func Apply(src []byte, edits []TextEdit) ([]byte, error) {
	for i, e := range edits {
		if e.Pos < 0 || e.End < e.Pos || e.End > len(src) {
			return nil, fmt.Errorf("%w: edit %d [%d, %d) outside buffer of %d bytes",
				ErrInvalidEdit, i, e.Pos, e.End, len(src))
		}
	}

	ordered := make([]int, len(edits))
	for i := range ordered {
		ordered[i] = i
	}

	// Descending start offset; ties resolved by applying the later edit
	// first, which keeps same-position inserts in slice order.
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := edits[ordered[i]], edits[ordered[j]]
		if a.Pos != b.Pos {
			return a.Pos > b.Pos
		}

		return ordered[i] > ordered[j]
	})

	for i := 1; i < len(ordered); i++ {
		prev, cur := edits[ordered[i-1]], edits[ordered[i]]
		if cur.End > prev.Pos {
			return nil, fmt.Errorf("%w: edits %d and %d overlap", ErrInvalidEdit, ordered[i], ordered[i-1])
		}
	}

	out := make([]byte, len(src))
	copy(out, src)

	for _, i := range ordered {
		e := edits[i]

		patched := make([]byte, 0, len(out)-(e.End-e.Pos)+len(e.NewText))
		patched = append(patched, out[:e.Pos]...)
		patched = append(patched, e.NewText...)
		patched = append(patched, out[e.End:]...)
		out = patched
	}

	return out, nil
}

// Overlaps reports whether any edit in a intersects any edit in b.
// Zero-width inserts at a shared boundary do not count as an intersection.
func Overlaps(a, b []TextEdit) bool {
	for _, x := range a {
		for _, y := range b {
			if x.Pos < y.End && y.Pos < x.End {
				return true
			}
		}
	}

	return false
}
