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

package ruby_test

import (
	"testing"

	. "github.com/toneymathews/rubocop-graphql/internal/ruby"
)

func TestLink(t *testing.T) {
	t.Parallel()

	first := &Node{Kind: Send, Name: "field"}
	second := &Node{Kind: Def, Name: "name"}
	class := &Node{Kind: Class, Name: "UserType", Body: []*Node{first, second}}

	Link(class)

	if got := first.Parent(); got != class {
		t.Errorf("Parent() = %v, want the class", got)
	}

	if got := first.SiblingIndex(); got != 0 {
		t.Errorf("SiblingIndex() = %d, want 0", got)
	}

	if got := second.SiblingIndex(); got != 1 {
		t.Errorf("SiblingIndex() = %d, want 1", got)
	}

	if got := second.PrecedingSibling(); got != first {
		t.Errorf("PrecedingSibling() = %v, want the field send", got)
	}

	if got := first.PrecedingSibling(); got != nil {
		t.Errorf("PrecedingSibling() = %v, want nil", got)
	}

	if got := class.SiblingIndex(); got != -1 {
		t.Errorf("SiblingIndex() = %d, want -1 at the root", got)
	}
}

func TestEffectiveIndex(t *testing.T) {
	t.Parallel()

	plain := &Node{Kind: Send, Name: "field"}
	call := &Node{Kind: Send, Name: "field"}
	block := &Node{Kind: Block, Call: call}
	class := &Node{Kind: Class, Name: "UserType", Body: []*Node{plain, block}}

	Link(class)

	if got := plain.EffectiveIndex(); got != 0 {
		t.Errorf("EffectiveIndex() = %d, want 0", got)
	}

	if got := block.EffectiveIndex(); got != 1 {
		t.Errorf("EffectiveIndex() = %d, want 1", got)
	}

	// The wrapped call shares the block's slot.
	if got := call.EffectiveIndex(); got != 1 {
		t.Errorf("EffectiveIndex() = %d, want 1", got)
	}

	if got := call.SiblingIndex(); got != -1 {
		t.Errorf("SiblingIndex() = %d, want -1 for a wrapped call", got)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{kind: Unknown, want: "unknown"},
		{kind: Class, want: "class"},
		{kind: Send, want: "send"},
		{kind: Other, want: "other"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
