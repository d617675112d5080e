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

package analyzer

import (
	"context"

	"github.com/toneymathews/rubocop-graphql/diag"
	"github.com/toneymathews/rubocop-graphql/internal/config"
	"github.com/toneymathews/rubocop-graphql/internal/run"
)

// Style selects which field definition layout the analyzer enforces.
type Style uint8

const (
	// GroupDefinitions requires all field definitions of a type to form one
	// contiguous block.
	GroupDefinitions Style = iota

	// ResolverAfterDefinition requires each resolver method to directly
	// follow the definition of its field, with same-named definitions
	// grouped together.
	ResolverAfterDefinition
)

// Analyzer checks GraphQL type classes for field definition style
// violations and can rewrite them in place.
type Analyzer struct {
	options *run.Options
}

// New creates an analyzer. It allows for programmatic configuration using
// [Option], which is useful for integrating the analyzer into other tools;
// without options it enforces [GroupDefinitions] and reports without
// fixing.
func New(opts ...Option) *Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	return &Analyzer{options: r}
}

// Summary aggregates one Check invocation.
type Summary struct {
	// Files is the number of Ruby files inspected.
	Files int

	// Offenses is the number of style violations found.
	Offenses int

	// Corrected is the number of violations rewritten, always zero unless
	// fixing is enabled.
	Corrected int
}

// Clean reports whether no offense remains uncorrected.
func (s Summary) Clean() bool { return s.Offenses == s.Corrected }

// Check inspects every Ruby file reachable from the given paths, writing
// findings to the configured output. With fixing enabled, corrected files
// are rewritten in place.
func (a *Analyzer) Check(ctx context.Context, paths ...string) (Summary, error) {
	s, err := a.options.Run(ctx, paths)
	if err != nil {
		return Summary{}, err
	}

	return Summary{Files: s.Files, Offenses: s.Offenses, Corrected: s.Corrected}, nil
}

// AnalyzeSource analyzes a single source buffer without touching the file
// system and returns its diagnostics in position order. Suggested fixes
// apply to the given buffer via [diag.Apply].
func (a *Analyzer) AnalyzeSource(ctx context.Context, filename string, src []byte) ([]diag.Diagnostic, error) {
	return run.AnalyzeSource(ctx, filename, src, a.options.Style)
}

func (s Style) internal() config.Style {
	if s == ResolverAfterDefinition {
		return config.ResolverAfterDefinition
	}

	return config.GroupDefinitions
}

// String returns the configuration file spelling of the style.
func (s Style) String() string { return s.internal().String() }
