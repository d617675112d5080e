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

package schema

import (
	"github.com/toneymathews/rubocop-graphql/internal/ruby"
	"github.com/toneymathews/rubocop-graphql/internal/source"
)

// A Field is one field declaration: a bare `field :name, ...` send or the
// same send wrapped in an attached block of argument sub-declarations. The
// block, when present, is part of the same syntactic unit and is never
// split from the send during correction.
type Field struct {
	// Node is the field send itself.
	Node *ruby.Node
	// Wrapper is the attached block, or nil for a bare declaration.
	Wrapper *ruby.Node
	// Name is the declared field name.
	Name string
	// Kwargs maps keyword-argument names to their value nodes.
	Kwargs map[string]*ruby.Node

	container *Container
}

// IsFieldDefinition recognizes a bare field send and a field send with an
// attached block; every other node shape is rejected without error.
func IsFieldDefinition(n *ruby.Node) bool {
	return fieldSend(n) != nil
}

// FieldNode maps a declaration to the canonical node to compare: the block's
// first child when wrapped, otherwise the node itself.
func FieldNode(n *ruby.Node) *ruby.Node {
	if n.Kind == ruby.Block && n.Call != nil {
		return n.Call
	}

	return n
}

func fieldSend(n *ruby.Node) *ruby.Node {
	send := FieldNode(n)
	if send == nil || send.Kind != ruby.Send || send.Recv != nil || send.Name != "field" {
		return nil
	}

	return send
}

// NewField builds the typed view over a raw declaration node. It returns
// nil when the node does not carry a symbol name, which keeps dynamic
// declarations out of the analysis.
func NewField(c *Container, n *ruby.Node) *Field {
	send := fieldSend(n)
	if send == nil || len(send.Args) == 0 || send.Args[0].Kind != ruby.Sym {
		return nil
	}

	f := &Field{
		Node:      send,
		Name:      send.Args[0].Name,
		Kwargs:    make(map[string]*ruby.Node),
		container: c,
	}

	if n.Kind == ruby.Block {
		f.Wrapper = n
	}

	for _, arg := range send.Args {
		if arg.Kind == ruby.Pair && arg.Name != "" {
			f.Kwargs[arg.Name] = arg.Value
		}
	}

	return f
}

// Unit returns the syntactic unit occupying the field's body slot: the
// wrapping block when present, otherwise the send.
func (f *Field) Unit() *ruby.Node {
	if f.Wrapper != nil {
		return f.Wrapper
	}

	return f.Node
}

// EffectiveIndex returns the sibling index used for adjacency comparison.
func (f *Field) EffectiveIndex() int { return f.Unit().EffectiveIndex() }

// Annotation returns the attached type-signature node, or nil.
func (f *Field) Annotation() *ruby.Node { return f.container.annotationBefore(f.Unit()) }

// Range returns the unit's source range, heredoc-expanded so trailing
// multi-line literals travel with the declaration.
func (f *Field) Range() source.Range {
	return f.container.Buf.ExpandHeredocs(f.Unit().Range)
}

// HasResolverOverride reports whether the declaration resolves through an
// explicit resolver:, method:, or hash_key: option. Overridden fields
// expect no same-named resolver method, so placement checks skip them.
func (f *Field) HasResolverOverride() bool {
	for _, key := range []string{"resolver", "method", "hash_key"} {
		if _, ok := f.Kwargs[key]; ok {
			return true
		}
	}

	return false
}

// ResolverMethodName derives the method name expected to resolve the field:
// the method: or hash_key: value when given, the field name otherwise.
func (f *Field) ResolverMethodName() string {
	for _, key := range []string{"method", "hash_key"} {
		if name := symbolText(f.Kwargs[key]); name != "" {
			return name
		}
	}

	return f.Name
}

// symbolText extracts a method name from a symbol or string literal node.
func symbolText(n *ruby.Node) string {
	if n == nil {
		return ""
	}

	switch n.Kind {
	case ruby.Sym:
		return n.Name
	case ruby.Str:
		return trimQuotes(n.Name)
	default:
		return ""
	}
}

func trimQuotes(s string) string {
	if len(s) >= 2 {
		if c := s[0]; (c == '"' || c == '\'') && s[len(s)-1] == c {
			return s[1 : len(s)-1]
		}
	}

	return s
}

// A ResolverMethod is a plain method definition implementing the runtime
// value for a same-named field.
type ResolverMethod struct {
	Node *ruby.Node

	container *Container
}

// MethodName returns the defined method's name.
func (m *ResolverMethod) MethodName() string { return m.Node.Name }

// EffectiveIndex returns the definition's sibling index.
func (m *ResolverMethod) EffectiveIndex() int { return m.Node.EffectiveIndex() }

// Annotation returns the attached type-signature node, or nil.
func (m *ResolverMethod) Annotation() *ruby.Node { return m.container.annotationBefore(m.Node) }

// Range returns the definition's source range, heredoc-expanded.
func (m *ResolverMethod) Range() source.Range {
	return m.container.Buf.ExpandHeredocs(m.Node.Range)
}
