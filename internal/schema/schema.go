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

// Package schema builds typed views over raw declaration nodes: field
// definitions, resolver methods, and the containers holding them. Views are
// pure reads; nothing here mutates the tree or the source buffer.
package schema

import (
	"github.com/toneymathews/rubocop-graphql/internal/ruby"
	"github.com/toneymathews/rubocop-graphql/internal/source"
)

// A Container is a class-like scope with an ordered body of declarations.
// Containers are built fresh per analysis and never cached across calls.
type Container struct {
	Node *ruby.Node
	Buf  *source.Buffer
}

// Containers collects every class and module in the tree, depth first in
// source order.
func Containers(root *ruby.Node, buf *source.Buffer) []*Container {
	var out []*Container

	var walk func(n *ruby.Node)
	walk = func(n *ruby.Node) {
		if n == nil {
			return
		}

		if n.Kind == ruby.Class || n.Kind == ruby.Module {
			out = append(out, &Container{Node: n, Buf: buf})
		}

		for _, stmt := range n.Body {
			walk(stmt)
		}
	}
	walk(root)

	return out
}

// Body returns the container's direct child statements.
func (c *Container) Body() []*ruby.Node { return c.Node.Body }

// Fields returns the container's field declarations in source order.
// Statements that do not match a recognized declaration shape are skipped
// silently, never treated as errors.
func (c *Container) Fields() []*Field {
	var out []*Field

	for _, stmt := range c.Node.Body {
		if !IsFieldDefinition(stmt) {
			continue
		}

		if f := NewField(c, stmt); f != nil {
			out = append(out, f)
		}
	}

	return out
}

// MethodNamed returns the first method definition with the given name, or
// nil when the container defines none.
func (c *Container) MethodNamed(name string) *ResolverMethod {
	for _, stmt := range c.Node.Body {
		if stmt.Kind == ruby.Def && stmt.Name == name {
			return &ResolverMethod{Node: stmt, container: c}
		}
	}

	return nil
}

// annotationBefore returns the type-signature annotation attached to unit:
// the immediately preceding sibling, of annotation shape, with no blank
// line in between. Attached annotations share their unit's slot as far as
// adjacency is concerned.
func (c *Container) annotationBefore(unit *ruby.Node) *ruby.Node {
	prev := unit.PrecedingSibling()
	if prev == nil || !IsAnnotation(prev) {
		return nil
	}

	if c.Buf.BlankBetween(prev.Range.End, unit.Range.Start) {
		return nil
	}

	return prev
}

// IsAnnotation recognizes a Sorbet type signature: a bare sig call carrying
// a block.
func IsAnnotation(n *ruby.Node) bool {
	switch n.Kind {
	case ruby.Block:
		return n.Call != nil && n.Call.Name == "sig" && n.Call.Recv == nil
	case ruby.Send:
		return n.Name == "sig" && n.Recv == nil
	default:
		return false
	}
}
