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

package group_test

import (
	"testing"

	. "github.com/toneymathews/rubocop-graphql/internal/group"
	"github.com/toneymathews/rubocop-graphql/internal/testsource"
)

func TestByName(t *testing.T) {
	t.Parallel()

	c, _ := testsource.ParseContainer(t, `
field :name, String, null: true
field :age, Integer, null: true
field :name, Name, null: true
`)

	groups := ByName(c)
	if len(groups) != 2 {
		t.Fatalf("ByName() returned %d groups, want 2", len(groups))
	}

	if groups[0].Name != "name" || groups[1].Name != "age" {
		t.Errorf("group order = %q, %q; want first-occurrence order", groups[0].Name, groups[1].Name)
	}

	if groups[0].Size() != 2 {
		t.Errorf("Size() = %d, want 2", groups[0].Size())
	}

	if first, last := groups[0].First(), groups[0].Last(); first.EffectiveIndex() >= last.EffectiveIndex() {
		t.Errorf("First() at %d not before Last() at %d", first.EffectiveIndex(), last.EffectiveIndex())
	}
}

func TestHasUngroupedDefinitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want bool
	}{
		{
			name: "contiguous duplicates",
			body: `
field :name, String, null: true
field :name, Name, null: true
`,
			want: false,
		},
		{
			name: "separated duplicates",
			body: `
field :name, String, null: true
field :age, Integer, null: true
field :name, Name, null: true
`,
			want: true,
		},
		{
			name: "annotation between duplicates",
			body: `
field :name, String, null: true
sig { returns(Name) }
field :name, Name, null: true
`,
			want: false,
		},
		{
			name: "detached annotation between duplicates",
			body: `
field :name, String, null: true
sig { returns(Name) }

field :name, Name, null: true
`,
			want: true,
		},
		{
			name: "single member",
			body: `
field :name, String, null: true
`,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := testsource.ParseContainer(t, tt.body)

			groups := ByName(c)
			if len(groups) == 0 {
				t.Fatal("no groups")
			}

			if got := groups[0].HasUngroupedDefinitions(); got != tt.want {
				t.Errorf("HasUngroupedDefinitions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLeadingRun(t *testing.T) {
	t.Parallel()

	c, _ := testsource.ParseContainer(t, `
field :name, String, null: true
field :age, Integer, null: true

def name
  object.full_name
end

field :email, String, null: true
`)

	fields, want := LeadingRun(c)
	if len(fields) != 3 {
		t.Fatalf("LeadingRun() returned %d fields, want 3", len(fields))
	}

	for i, f := range fields[:2] {
		if f.EffectiveIndex() != want[i] {
			t.Errorf("field %d at index %d, want %d", i, f.EffectiveIndex(), want[i])
		}
	}

	if fields[2].EffectiveIndex() == want[2] {
		t.Errorf("field 2 at index %d unexpectedly matches its slot", fields[2].EffectiveIndex())
	}
}

func TestLeadingRunEmpty(t *testing.T) {
	t.Parallel()

	c, _ := testsource.ParseContainer(t, `
def name
  object.full_name
end
`)

	if fields, want := LeadingRun(c); fields != nil || want != nil {
		t.Errorf("LeadingRun() = %v, %v; want nil, nil", fields, want)
	}
}
