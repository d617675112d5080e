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

// Package ruby models the slice of the Ruby syntax tree the checker reasons
// about: class-like containers, call-style declarations, blocks, method
// definitions, and their literal arguments.
//
// The tree is produced by an external parser (see internal/rubyparse) and is
// read-only from then on: analyses derive index maps over it but never
// mutate it. Comments and blank lines occupy no sibling slot.
package ruby

import "github.com/toneymathews/rubocop-graphql/internal/source"

// Kind discriminates the node shapes the checker recognizes. Anything else
// is Other and is carried only for sibling arithmetic and source ranges.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	Unknown Kind = iota // unknown
	Class               // class
	Module              // module
	Send                // send
	Block               // block
	Def                 // def
	Pair                // pair
	Sym                 // sym
	Str                 // str
	Const               // const
	Other               // other
)

// A Node is one syntax node. Only the fields matching its Kind are set:
//
//   - Class, Module: Name (constant path), Body
//   - Send: Name (method name), Recv, Args
//   - Block: Call (the wrapped Send), Body; Range spans call and block
//   - Def: Name (method name), Body
//   - Pair: Name (keyword), Value
//   - Sym, Str, Const: Name (symbol, literal or constant text)
type Node struct {
	Kind  Kind
	Name  string
	Range source.Range

	Recv  *Node
	Args  []*Node
	Call  *Node
	Value *Node
	Body  []*Node

	parent       *Node
	siblingIndex int
}

// Parent returns the enclosing node, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// SiblingIndex returns the node's 0-based position among its parent's body
// statements, or -1 for nodes that are not body statements.
func (n *Node) SiblingIndex() int { return n.siblingIndex }

// EffectiveIndex returns the sibling index used for adjacency comparison:
// a Send wrapped by an attached Block collapses onto the block's slot, since
// the two form one syntactic unit.
func (n *Node) EffectiveIndex() int {
	if p := n.parent; p != nil && p.Kind == Block && p.Call == n {
		return p.siblingIndex
	}

	return n.siblingIndex
}

// PrecedingSibling returns the body statement directly before n, or nil.
func (n *Node) PrecedingSibling() *Node {
	if n.parent == nil || n.siblingIndex <= 0 {
		return nil
	}

	return n.parent.Body[n.siblingIndex-1]
}

// Link assigns parent pointers and sibling indices throughout the tree.
// The parser calls it once after construction; afterwards the tree is
// immutable.
func Link(root *Node) {
	link(root, nil, -1)
}

func link(n *Node, parent *Node, index int) {
	if n == nil {
		return
	}

	n.parent = parent
	n.siblingIndex = index

	link(n.Recv, n, -1)
	link(n.Call, n, -1)
	link(n.Value, n, -1)

	for _, arg := range n.Args {
		link(arg, n, -1)
	}

	for i, stmt := range n.Body {
		link(stmt, n, i)
	}
}
