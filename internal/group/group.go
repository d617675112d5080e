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

// Package group partitions a container's field declarations into logical
// groups and decides adjacency over effective sibling indices. Grouping is
// computed fresh per container; nothing is cached across calls.
package group

import "github.com/toneymathews/rubocop-graphql/internal/schema"

// A Group is the set of declarations treated as one logical unit: all
// fields sharing one name within a container, ordered by sibling index.
// Groups are never empty.
type Group struct {
	Name   string
	Fields []*schema.Field
}

// Size returns the number of members.
func (g *Group) Size() int { return len(g.Fields) }

// First returns the member earliest in source order, the canonical anchor
// for corrections.
func (g *Group) First() *schema.Field { return g.Fields[0] }

// Last returns the member latest in source order, the anchor for offense
// reporting.
func (g *Group) Last() *schema.Field { return g.Fields[len(g.Fields)-1] }

// ByName buckets the container's field declarations by name, preserving
// first-occurrence order between groups and source order within each.
func ByName(c *schema.Container) []*Group {
	var (
		order  []*Group
		byName = make(map[string]*Group)
	)

	for _, f := range c.Fields() {
		g, ok := byName[f.Name]
		if !ok {
			g = &Group{Name: f.Name}
			byName[f.Name] = g
			order = append(order, g)
		}

		g.Fields = append(g.Fields, f)
	}

	return order
}

// HasUngroupedDefinitions reports whether any consecutive pair of members
// sits more than one effective slot apart. An attached annotation does not
// occupy a slot of its own: a gap of exactly two is tolerated when the
// interposed sibling is the second member's annotation.
func (g *Group) HasUngroupedDefinitions() bool {
	for i := 1; i < len(g.Fields); i++ {
		if !Adjacent(g.Fields[i-1], g.Fields[i]) {
			return true
		}
	}

	return false
}

// Adjacent reports whether second directly follows first in the effective
// index space.
func Adjacent(first, second *schema.Field) bool {
	switch second.EffectiveIndex() - first.EffectiveIndex() {
	case 1:
		return true
	case 2:
		return second.Annotation() != nil
	default:
		return false
	}
}

// LeadingRun returns the container's fields together with the index every
// field would occupy if the whole run were contiguous from the first field
// declaration onward: first.EffectiveIndex() + position. Fields deviating
// from their slot are flagged individually by the caller.
func LeadingRun(c *schema.Container) (fields []*schema.Field, want []int) {
	fields = c.Fields()
	if len(fields) == 0 {
		return nil, nil
	}

	want = make([]int, len(fields))
	for i := range fields {
		want[i] = fields[0].EffectiveIndex() + i
	}

	return fields, want
}
