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

// Package testsource assembles Ruby schema snippets for tests.
package testsource

import (
	"context"
	"strings"
	"testing"

	"github.com/toneymathews/rubocop-graphql/internal/rubyparse"
	"github.com/toneymathews/rubocop-graphql/internal/schema"
	"github.com/toneymathews/rubocop-graphql/internal/source"
)

// Wrap embeds a class body fragment in a type class, indenting every
// non-blank line by two spaces.
func Wrap(body string) string {
	var sb strings.Builder

	sb.WriteString("class UserType < BaseType\n")

	for _, line := range strings.Split(strings.Trim(body, "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			sb.WriteString("  ")
			sb.WriteString(line)
		}

		sb.WriteByte('\n')
	}

	sb.WriteString("end\n")

	return sb.String()
}

// Parse parses full Ruby source and returns its first container.
func Parse(tb testing.TB, src string) (*schema.Container, *source.Buffer) {
	tb.Helper()

	root, err := rubyparse.New().Parse(context.Background(), []byte(src))
	if err != nil {
		tb.Fatalf("Parse: %v", err)
	}

	buf := source.NewBuffer([]byte(src))

	containers := schema.Containers(root, buf)
	if len(containers) == 0 {
		tb.Fatalf("Parse: no class or module in %q", src)
	}

	return containers[0], buf
}

// ParseContainer wraps a class body fragment and parses it.
func ParseContainer(tb testing.TB, body string) (*schema.Container, *source.Buffer) {
	tb.Helper()

	return Parse(tb, Wrap(body))
}
