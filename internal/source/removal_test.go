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

package source_test

import (
	"strings"
	"testing"

	. "github.com/toneymathews/rubocop-graphql/internal/source"
)

func TestRemovalRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		span string // the text covered by the input range
		want string // the text the removal range should cover
	}{
		{
			name: "widens to whole line",
			src:  "a\n  field :x\nb\n",
			span: "field :x",
			want: "  field :x\n",
		},
		{
			name: "absorbs preceding blank line",
			src:  "a\n\n  field :x\nb\n",
			span: "field :x",
			want: "\n  field :x\n",
		},
		{
			name: "absorbs blank line holding spaces",
			src:  "a\n   \n  field :x\nb\n",
			span: "field :x",
			want: "   \n  field :x\n",
		},
		{
			name: "multiple blank lines",
			src:  "a\n\n\nfield :x\nb\n",
			span: "field :x",
			want: "\n\nfield :x\n",
		},
		{
			name: "unterminated final line",
			src:  "a\nfield :x",
			span: "field :x",
			want: "field :x",
		},
		{
			name: "multi-line span",
			src:  "a\nfield :x do\n  null true\nend\nb\n",
			span: "field :x do\n  null true\nend",
			want: "field :x do\n  null true\nend\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := NewBuffer([]byte(tt.src))

			start := strings.Index(tt.src, tt.span)
			if start < 0 {
				t.Fatalf("span %q not in %q", tt.span, tt.src)
			}

			got := buf.RemovalRange(Range{Start: start, End: start + len(tt.span)})
			if text := string(buf.Slice(got)); text != tt.want {
				t.Errorf("RemovalRange() covers %q, want %q", text, tt.want)
			}
		})
	}
}
