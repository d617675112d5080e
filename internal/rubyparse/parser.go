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

// Package rubyparse adapts the Tree-sitter Ruby grammar to the node model in
// internal/ruby. It is the external-parser collaborator: everything past
// this package works on the converted tree and never touches raw source
// except through byte ranges.
package rubyparse

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsruby "github.com/smacker/go-tree-sitter/ruby"

	"github.com/toneymathews/rubocop-graphql/internal/ruby"
	"github.com/toneymathews/rubocop-graphql/internal/source"
)

// A Parser converts Ruby source into a linked [ruby.Node] tree.
// It is not safe for concurrent use; create one per goroutine.
type Parser struct {
	ts *sitter.Parser
}

// New returns a parser configured for the Ruby grammar.
func New() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(tsruby.GetLanguage())

	return &Parser{ts: p}
}

// Parse parses src and returns the program root. Tree-sitter is error
// tolerant: unparseable stretches come back as plain statements that the
// checker ignores, so only a failed parse run is an error.
func (p *Parser) Parse(ctx context.Context, src []byte) (*ruby.Node, error) {
	tree, err := p.ts.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("rubyparse: %w", err)
	}
	defer tree.Close()

	c := &converter{src: src}

	root := &ruby.Node{
		Kind:  ruby.Other,
		Range: nodeRange(tree.RootNode()),
		Body:  c.body(tree.RootNode()),
	}

	ruby.Link(root)

	return root, nil
}

type converter struct {
	src []byte
}

func (c *converter) text(n *sitter.Node) string {
	return string(c.src[n.StartByte():n.EndByte()])
}

func nodeRange(n *sitter.Node) source.Range {
	return source.Range{Start: int(n.StartByte()), End: int(n.EndByte())}
}

// node converts one syntax node, or returns nil for nodes that occupy no
// slot (comments).
func (c *converter) node(n *sitter.Node) *ruby.Node {
	switch n.Type() {
	case "comment":
		return nil

	case "class":
		return c.container(ruby.Class, n)

	case "module":
		return c.container(ruby.Module, n)

	case "call":
		return c.call(n)

	case "method":
		return &ruby.Node{
			Kind:  ruby.Def,
			Name:  childText(c, n, "name"),
			Range: nodeRange(n),
		}

	case "simple_symbol":
		return &ruby.Node{Kind: ruby.Sym, Name: strings.TrimPrefix(c.text(n), ":"), Range: nodeRange(n)}

	case "string", "heredoc_beginning":
		return &ruby.Node{Kind: ruby.Str, Name: c.text(n), Range: nodeRange(n)}

	case "constant", "scope_resolution":
		return &ruby.Node{Kind: ruby.Const, Name: c.text(n), Range: nodeRange(n)}

	case "pair":
		return c.pair(n)

	default:
		return &ruby.Node{Kind: ruby.Other, Range: nodeRange(n)}
	}
}

func (c *converter) container(kind ruby.Kind, n *sitter.Node) *ruby.Node {
	name := ""
	if id := n.ChildByFieldName("name"); id != nil {
		name = c.text(id)
	}

	return &ruby.Node{
		Kind:  kind,
		Name:  name,
		Range: nodeRange(n),
		Body:  c.containerBody(n),
	}
}

// call converts a method call. A call carrying a block becomes a Block node
// wrapping the Send, matching the one-slot-per-unit sibling model: the block
// occupies the body slot and the send is its first child.
func (c *converter) call(n *sitter.Node) *ruby.Node {
	send := &ruby.Node{Kind: ruby.Send, Range: nodeRange(n)}

	if m := n.ChildByFieldName("method"); m != nil {
		send.Name = c.text(m)
		send.Range.End = int(m.EndByte())
	}

	if recv := n.ChildByFieldName("receiver"); recv != nil {
		send.Recv = c.node(recv)
	}

	if args := n.ChildByFieldName("arguments"); args != nil {
		send.Range.End = int(args.EndByte())

		for i := 0; i < int(args.NamedChildCount()); i++ {
			if arg := c.node(args.NamedChild(i)); arg != nil {
				send.Args = append(send.Args, arg)
			}
		}
	}

	block := n.ChildByFieldName("block")
	if block == nil {
		send.Range = nodeRange(n)

		return send
	}

	return &ruby.Node{
		Kind:  ruby.Block,
		Name:  send.Name,
		Range: nodeRange(n),
		Call:  send,
		Body:  c.blockBody(block),
	}
}

func (c *converter) pair(n *sitter.Node) *ruby.Node {
	p := &ruby.Node{Kind: ruby.Pair, Range: nodeRange(n)}

	if key := n.ChildByFieldName("key"); key != nil {
		p.Name = strings.Trim(c.text(key), ":")
	}

	if value := n.ChildByFieldName("value"); value != nil {
		p.Value = c.node(value)
	}

	return p
}

// containerBody returns a class or module body as one node per statement.
func (c *converter) containerBody(n *sitter.Node) []*ruby.Node {
	if b := n.ChildByFieldName("body"); b != nil {
		return c.body(b)
	}

	// Older grammar revisions splice statements directly into the
	// class node after the name and superclass.
	skip := map[source.Range]bool{}
	for _, field := range []string{"name", "superclass"} {
		if f := n.ChildByFieldName(field); f != nil {
			skip[nodeRange(f)] = true
		}
	}

	var out []*ruby.Node

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if skip[nodeRange(child)] || child.Type() == "superclass" {
			continue
		}

		if child.Type() == "body_statement" {
			return append(out, c.body(child)...)
		}

		out = c.appendStatement(out, child)
	}

	return out
}

func (c *converter) blockBody(block *sitter.Node) []*ruby.Node {
	var out []*ruby.Node

	for i := 0; i < int(block.NamedChildCount()); i++ {
		child := block.NamedChild(i)
		if child.Type() == "block_parameters" {
			continue
		}

		// do blocks nest statements in body_statement, brace blocks in
		// block_body.
		if child.Type() == "body_statement" || child.Type() == "block_body" {
			return append(out, c.body(child)...)
		}

		out = c.appendStatement(out, child)
	}

	return out
}

// body converts the named children of a statement sequence.
func (c *converter) body(n *sitter.Node) []*ruby.Node {
	var out []*ruby.Node

	for i := 0; i < int(n.NamedChildCount()); i++ {
		out = c.appendStatement(out, n.NamedChild(i))
	}

	return out
}

// appendStatement converts one statement-position node. Heredoc bodies do
// not occupy a slot: the grammar emits them as trailing siblings of the
// statement that opened them, so their range folds into that statement.
func (c *converter) appendStatement(out []*ruby.Node, child *sitter.Node) []*ruby.Node {
	if child.Type() == "heredoc_body" {
		if len(out) > 0 && int(child.EndByte()) > out[len(out)-1].Range.End {
			out[len(out)-1].Range.End = int(child.EndByte())
		}

		return out
	}

	if stmt := c.node(child); stmt != nil {
		return append(out, stmt)
	}

	return out
}

func childText(c *converter, n *sitter.Node, field string) string {
	if f := n.ChildByFieldName(field); f != nil {
		return c.text(f)
	}

	return ""
}
