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

// Package analyze runs one style's rule set over one container and yields
// diagnostics lazily. Analysis is synchronous and holds no state across
// containers; callers may analyze containers or files in parallel with no
// coordination.
package analyze

import (
	"errors"
	"fmt"
	"iter"

	"github.com/toneymathews/rubocop-graphql/diag"
	"github.com/toneymathews/rubocop-graphql/internal/config"
	"github.com/toneymathews/rubocop-graphql/internal/correct"
	"github.com/toneymathews/rubocop-graphql/internal/group"
	"github.com/toneymathews/rubocop-graphql/internal/schema"
	"github.com/toneymathews/rubocop-graphql/internal/source"
)

// ErrInternal marks an invariant breach inside the checker. It is a defect
// to propagate to the caller, never a user-facing style violation.
var ErrInternal = errors.New("internal invariant breached")

const (
	groupAllMessage  = "Group all field definitions together."
	groupNameMessage = "Group multiple field definitions together."

	resolverMessage     = "Define resolver method after field definition."
	resolverLastMessage = "Define resolver method after last field definition."
)

// Violations yields the container's offenses under the selected style.
// Iteration stops after yielding a non-nil error.
func Violations(c *schema.Container, style config.Style) iter.Seq2[diag.Diagnostic, error] {
	switch style {
	case config.GroupDefinitions:
		return groupDefinitions(c)
	case config.ResolverAfterDefinition:
		return resolverAfterDefinition(c)
	default:
		return func(yield func(diag.Diagnostic, error) bool) {
			yield(diag.Diagnostic{}, fmt.Errorf("%w: style %d", ErrInternal, style))
		}
	}
}

// groupDefinitions enforces one contiguous run of field declarations:
// every field must sit at the slot the leading run assigns it. Each
// deviating field is flagged individually and corrected by relocating it
// after its predecessor in declaration order.
func groupDefinitions(c *schema.Container) iter.Seq2[diag.Diagnostic, error] {
	return func(yield func(diag.Diagnostic, error) bool) {
		fields, want := group.LeadingRun(c)

		for i, f := range fields {
			if f.EffectiveIndex() == want[i] {
				continue
			}

			var fix *diag.SuggestedFix
			if i > 0 {
				fix = correct.RelocateField(c.Buf, fields[i-1], f, groupAllMessage)
			}

			if !yield(newDiagnostic(c.Buf, f.Unit().Range, groupAllMessage, fix), nil) {
				return
			}
		}
	}
}

// resolverAfterDefinition checks, per name group, that duplicate
// declarations are adjacent and that the group's resolver method directly
// follows its last field definition. The two checks are not exclusive: an
// ungrouped run still gets its resolver placement verified.
func resolverAfterDefinition(c *schema.Container) iter.Seq2[diag.Diagnostic, error] {
	return func(yield func(diag.Diagnostic, error) bool) {
		for _, g := range group.ByName(c) {
			if g.Size() == 0 {
				yield(diag.Diagnostic{}, fmt.Errorf("%w: empty group %q", ErrInternal, g.Name))

				return
			}

			if g.Size() > 1 && g.HasUngroupedDefinitions() {
				fix := correct.GroupFields(c.Buf, g, groupNameMessage)

				if !yield(newDiagnostic(c.Buf, g.Last().Unit().Range, groupNameMessage, fix), nil) {
					return
				}
			}

			d, violated, err := resolverPlacement(c, g.Last())
			if err != nil {
				yield(diag.Diagnostic{}, err)

				return
			}

			if violated && !yield(d, nil) {
				return
			}
		}
	}
}

// resolverPlacement verifies the resolver method position for the last
// definition of one field name.
func resolverPlacement(c *schema.Container, f *schema.Field) (diag.Diagnostic, bool, error) {
	if f.HasResolverOverride() {
		return diag.Diagnostic{}, false, nil
	}

	m := c.MethodNamed(f.ResolverMethodName())
	if m == nil {
		return diag.Diagnostic{}, false, nil
	}

	shared := fieldsSharingResolver(c, m.MethodName())
	if len(shared) == 0 {
		return diag.Diagnostic{}, false, fmt.Errorf("%w: no fields share resolver %q", ErrInternal, m.MethodName())
	}

	// Only the last field sharing the resolver triggers the check; this
	// keeps the offense unique and the correction idempotent.
	if shared[len(shared)-1].Unit() != f.Unit() {
		return diag.Diagnostic{}, false, nil
	}

	switch offset := m.EffectiveIndex() - f.EffectiveIndex(); {
	case offset == 1:
		return diag.Diagnostic{}, false, nil
	case offset == 2 && m.Annotation() != nil:
		// The attached type signature occupies the resolver's own slot.
		return diag.Diagnostic{}, false, nil
	}

	message := resolverMessage
	if len(shared) > 1 {
		message = resolverLastMessage
	}

	fix := correct.RelocateResolver(c.Buf, f, m, message)

	return newDiagnostic(c.Buf, m.Node.Range, message, fix), true, nil
}

// fieldsSharingResolver collects the field declarations bound to a resolver
// method: those whose own name equals it, or whose explicit resolver method
// option does. A declaration whose name itself matches makes the name group
// the exclusive binding; override matches seen elsewhere are dropped.
func fieldsSharingResolver(c *schema.Container, resolverName string) []*schema.Field {
	fields := c.Fields()

	var shared []*schema.Field

	for _, f := range fields {
		if f.Name == resolverName {
			var named []*schema.Field
			for _, g := range fields {
				if g.Name == resolverName {
					named = append(named, g)
				}
			}

			return named
		}

		if f.ResolverMethodName() == resolverName {
			shared = append(shared, f)
		}
	}

	return shared
}

func newDiagnostic(buf *source.Buffer, r source.Range, message string, fix *diag.SuggestedFix) diag.Diagnostic {
	line, column := buf.Position(r.Start)

	d := diag.Diagnostic{
		Pos:     r.Start,
		End:     r.End,
		Line:    line,
		Column:  column,
		Message: message,
	}

	if fix != nil {
		d.SuggestedFixes = []diag.SuggestedFix{*fix}
	}

	return d
}
