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

package run

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/toneymathews/rubocop-graphql/internal/config"
)

// Options carries one invocation's settings. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// Style selects the rule set applied to every file.
	Style config.Style

	// Behavior toggles fixing, verbosity and color.
	Behavior config.BitMask[config.Behavior]

	// MaxPasses bounds the fix-reanalyze loop per file.
	MaxPasses int

	// Include and Exclude are glob patterns matched against slash-separated
	// relative paths during discovery.
	Include []string
	Exclude []string

	Logger *zap.Logger
	Out    io.Writer
}

// DefaultOptions returns the settings used when no configuration file or
// flags override them.
func DefaultOptions() *Options {
	file := config.DefaultFile()

	return &Options{
		Style:     file.Style,
		Behavior:  config.DefaultBehavior(),
		MaxPasses: file.MaxPasses,
		Include:   file.Include,
		Exclude:   file.Exclude,
		Logger:    zap.NewNop(),
		Out:       os.Stdout,
	}
}

// ApplyFile overlays configuration file settings onto the options.
func (o *Options) ApplyFile(f *config.File) {
	o.Style = f.Style

	if len(f.Include) > 0 {
		o.Include = f.Include
	}

	if len(f.Exclude) > 0 {
		o.Exclude = f.Exclude
	}

	if f.MaxPasses > 0 {
		o.MaxPasses = f.MaxPasses
	}

	if f.Autocorrect {
		o.Behavior.Enable(config.ApplyFixes)
	}
}
