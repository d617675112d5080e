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

package analyzer_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/toneymathews/rubocop-graphql/analyzer"
	"github.com/toneymathews/rubocop-graphql/diag"
)

const ungrouped = `class UserType < BaseType
  field :first_name, String, null: true

  def first_name
    object.contact_data.first_name
  end

  field :last_name, String, null: true
end
`

func TestAnalyzeSource(t *testing.T) {
	t.Parallel()

	a := New(WithStyle(GroupDefinitions))

	diags, err := a.AnalyzeSource(t.Context(), "user_type.rb", []byte(ungrouped))
	if err != nil {
		t.Fatalf("AnalyzeSource() error = %v", err)
	}

	if len(diags) != 1 {
		t.Fatalf("AnalyzeSource() returned %d diagnostics, want 1", len(diags))
	}

	d := diags[0]
	if d.Message != "Group all field definitions together." {
		t.Errorf("Message = %q", d.Message)
	}

	if !d.HasFix() {
		t.Fatal("diagnostic carries no fix")
	}

	fixed, err := diag.Apply([]byte(ungrouped), d.SuggestedFixes[0].TextEdits)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	rest, err := a.AnalyzeSource(t.Context(), "user_type.rb", fixed)
	if err != nil {
		t.Fatalf("AnalyzeSource() error = %v", err)
	}

	if len(rest) != 0 {
		t.Errorf("fixed source still has %d diagnostics", len(rest))
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "user_type.rb"), []byte(ungrouped), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer

	a := New(
		WithStyle(GroupDefinitions),
		WithFix(true),
		WithColor(false),
		WithOutput(&out),
	)

	summary, err := a.Check(t.Context(), dir)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	if summary.Files != 1 || summary.Offenses != 1 || summary.Corrected != 1 {
		t.Errorf("Check() = %+v, want 1 file, 1 offense, 1 corrected", summary)
	}

	if !summary.Clean() {
		t.Error("Clean() = false after fixing")
	}
}

func TestStyleString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style Style
		want  string
	}{
		{style: GroupDefinitions, want: "group_definitions"},
		{style: ResolverAfterDefinition, want: "define_resolver_after_definition"},
	}

	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNilOptionIgnored(t *testing.T) {
	t.Parallel()

	a := New(Options{nil, WithStyle(ResolverAfterDefinition)})

	if _, err := a.AnalyzeSource(t.Context(), "empty.rb", []byte("")); err != nil {
		t.Errorf("AnalyzeSource() error = %v", err)
	}
}
