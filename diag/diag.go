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

// Package diag defines the diagnostics produced by the field-definition
// checker and the text edits that correct them.
//
// All offsets are byte offsets into the original, unmodified source buffer.
// A diagnostic's suggested fixes are computed as a batch against that buffer
// and applied in a single pass; the checker never mutates its input.
package diag

// A TextEdit replaces the bytes in [Pos, End) with NewText.
// Pos == End inserts, an empty NewText removes.
type TextEdit struct {
	Pos     int
	End     int
	NewText []byte
}

// IsInsert reports whether the edit has a zero-width range.
func (e TextEdit) IsInsert() bool { return e.Pos == e.End }

// A SuggestedFix is a self-contained group of edits correcting one
// diagnostic. For relocations, each insert is immediately followed by the
// matching removal of the original occurrence.
type SuggestedFix struct {
	Message   string
	TextEdits []TextEdit
}

// A Diagnostic reports one style offense. Diagnostics without suggested
// fixes are report-only; the planner abstains from fixing when a node cannot
// be located where expected.
type Diagnostic struct {
	File    string
	Pos     int
	End     int
	Line    int
	Column  int
	Message string

	SuggestedFixes []SuggestedFix
}

// HasFix reports whether the diagnostic carries at least one non-empty fix.
func (d *Diagnostic) HasFix() bool {
	for _, fix := range d.SuggestedFixes {
		if len(fix.TextEdits) > 0 {
			return true
		}
	}

	return false
}
