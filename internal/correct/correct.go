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

// Package correct plans the text edits that relocate a declaration next to
// its group. Edits reference the original buffer only: each insert is
// emitted immediately before the matching removal, and the host applies the
// whole batch in one pass.
//
// Planning is defensive. When a node cannot be located where expected the
// planner returns nil and the violation stays report-only, rather than
// risking a corrupting partial edit.
package correct

import (
	"bytes"

	"github.com/toneymathews/rubocop-graphql/diag"
	"github.com/toneymathews/rubocop-graphql/internal/group"
	"github.com/toneymathews/rubocop-graphql/internal/ruby"
	"github.com/toneymathews/rubocop-graphql/internal/schema"
	"github.com/toneymathews/rubocop-graphql/internal/source"
)

// RelocateField moves second directly after first: a copy of second's full
// source, annotation and block included, is inserted after first's range
// preceded by one blank line, and the original occurrence is removed with
// its leading blank lines.
func RelocateField(buf *source.Buffer, first, second *schema.Field, message string) *diag.SuggestedFix {
	edits := relocationEdits(buf, first.Range(), second.Range(), second.Annotation())
	if edits == nil {
		return nil
	}

	return &diag.SuggestedFix{Message: message, TextEdits: edits}
}

// GroupFields gathers an ungrouped same-name run behind its in-place
// prefix: every member past the first adjacency gap is reinserted, in
// source order, after the last member still in place. One batched fix per
// group keeps the offense count at one.
func GroupFields(buf *source.Buffer, g *group.Group, message string) *diag.SuggestedFix {
	prefix := 1
	for prefix < g.Size() && group.Adjacent(g.Fields[prefix-1], g.Fields[prefix]) {
		prefix++
	}

	if prefix == g.Size() {
		return nil // already compliant; nothing to plan
	}

	anchor := g.Fields[prefix-1].Range()

	var edits []diag.TextEdit

	for _, f := range g.Fields[prefix:] {
		relocation := relocationEdits(buf, anchor, f.Range(), f.Annotation())
		if relocation == nil {
			return nil
		}

		edits = append(edits, relocation...)
	}

	return &diag.SuggestedFix{Message: message, TextEdits: edits}
}

// RelocateResolver moves a resolver method directly after its field
// definition, separated by one blank line, re-inserting the method's
// type-signature annotation, when it has one, directly above the relocated
// definition.
func RelocateResolver(buf *source.Buffer, field *schema.Field, m *schema.ResolverMethod, message string) *diag.SuggestedFix {
	edits := relocationEdits(buf, field.Range(), m.Range(), m.Annotation())
	if edits == nil {
		return nil
	}

	return &diag.SuggestedFix{Message: message, TextEdits: edits}
}

// relocationEdits builds the insert-then-remove pair placing the source of
// moved (plus an optional attached annotation) one blank line after anchor,
// or nil when the ranges do not line up safely.
func relocationEdits(buf *source.Buffer, anchor, moved source.Range, annotation *ruby.Node) []diag.TextEdit {
	if anchor.Empty() || moved.Empty() || anchor.End > buf.Len() || moved.End > buf.Len() {
		return nil
	}

	point := buf.LineEnd(anchor.End - 1)
	removal := buf.RemovalRange(moved)

	if removal.Contains(point) || anchor.Start == moved.Start {
		return nil
	}

	indent := buf.Indentation(anchor.Start)

	var text bytes.Buffer
	text.WriteString("\n\n")

	var annotationRemoval *source.Range

	if annotation != nil {
		annRange := buf.ExpandHeredocs(annotation.Range)
		if annRange.Empty() || annRange.End > moved.Start {
			return nil
		}

		text.Write(indent)
		text.Write(buf.Slice(annRange))
		text.WriteByte('\n')

		r := buf.RemovalRange(annRange)
		annotationRemoval = &r
	}

	text.Write(indent)
	text.Write(buf.Slice(moved))

	edits := []diag.TextEdit{
		{Pos: point, End: point, NewText: text.Bytes()},
		{Pos: removal.Start, End: removal.End},
	}

	if annotationRemoval != nil {
		edits = append(edits, diag.TextEdit{Pos: annotationRemoval.Start, End: annotationRemoval.End})
	}

	return edits
}
