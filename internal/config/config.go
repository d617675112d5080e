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

// Package config holds the enforced style, behavior flags, and the
// configuration file format of the checker.
package config

import (
	"errors"
	"fmt"
)

// Style selects which of the two rule sets is active for an invocation.
// The two styles are mutually exclusive per run and never combined.
type Style uint8

//go:generate go tool stringer -type Style -linecomment
const (
	// GroupDefinitions requires every field declaration to continue the
	// container's leading run of fields, regardless of name.
	GroupDefinitions Style = iota // group_definitions

	// ResolverAfterDefinition requires same-named declarations to be
	// adjacent and a field's resolver method to directly follow it.
	ResolverAfterDefinition // define_resolver_after_definition
)

// ErrUnknownStyle is returned for style names outside the two rule sets.
var ErrUnknownStyle = errors.New("unknown enforced style")

// ParseStyle maps a configuration string to its Style.
func ParseStyle(s string) (Style, error) {
	for _, style := range []Style{GroupDefinitions, ResolverAfterDefinition} {
		if s == style.String() {
			return style, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// Behavior represents the host-side behavior options.
type Behavior uint8

const (
	// ApplyFixes rewrites files with the planned corrections instead of
	// reporting only.
	ApplyFixes Behavior = 1 << iota

	// Verbose enables per-file progress logging.
	Verbose

	// NoColor disables colored diagnostic output.
	NoColor
)

// DefaultBehavior returns the report-only defaults.
func DefaultBehavior() BitMask[Behavior] { return NewBitMask[Behavior]() }
