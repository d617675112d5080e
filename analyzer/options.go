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
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/toneymathews/rubocop-graphql/internal/config"
	"github.com/toneymathews/rubocop-graphql/internal/run"
)

// Option configures specific behavior of a [New] analyzer.
type Option interface {
	apply(r *run.Options)
	LogField() zap.Field
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// MarshalLogObject implements [zapcore.ObjectMarshaler].
func (o Options) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			enc.AddString("nil", "<nil>")

		case Options:
			if err := opt.MarshalLogObject(enc); err != nil {
				return err
			}

		default:
			opt.LogField().AddTo(enc)
		}
	}

	return nil
}

// LogField is for structured logging of the whole option list.
func (o Options) LogField() zap.Field {
	return zap.Object("options", o)
}

// WithStyle is an [Option] to select the enforced field definition layout.
func WithStyle(style Style) Option { return styleOption{style: style} }

type styleOption struct{ style Style }

func (o styleOption) apply(r *run.Options) {
	r.Style = o.style.internal()
}

func (o styleOption) LogField() zap.Field {
	return zap.Stringer("style", o.style)
}

// WithFix is an [Option] to configure rewriting offending files in place.
func WithFix(fix bool) Option { return fixOption{fix: fix} }

type fixOption struct{ fix bool }

func (o fixOption) apply(r *run.Options) {
	r.Behavior.Set(config.ApplyFixes, o.fix)
}

func (o fixOption) LogField() zap.Field {
	return zap.Bool("fix", o.fix)
}

// WithMaxPasses is an [Option] to bound the fix-reanalyze loop per file.
func WithMaxPasses(maxPasses int) Option { return maxPassesOption{maxPasses: maxPasses} }

type maxPassesOption struct{ maxPasses int }

func (o maxPassesOption) apply(r *run.Options) {
	r.MaxPasses = o.maxPasses
}

func (o maxPassesOption) LogField() zap.Field {
	return zap.Int("maxPasses", o.maxPasses)
}

// WithVerbose is an [Option] to configure reporting of clean files.
func WithVerbose(verbose bool) Option { return verboseOption{verbose: verbose} }

type verboseOption struct{ verbose bool }

func (o verboseOption) apply(r *run.Options) {
	r.Behavior.Set(config.Verbose, o.verbose)
}

func (o verboseOption) LogField() zap.Field {
	return zap.Bool("verbose", o.verbose)
}

// WithColor is an [Option] to configure colored output.
func WithColor(colored bool) Option { return colorOption{colored: colored} }

type colorOption struct{ colored bool }

func (o colorOption) apply(r *run.Options) {
	r.Behavior.Set(config.NoColor, !o.colored)
}

func (o colorOption) LogField() zap.Field {
	return zap.Bool("color", o.colored)
}

// WithPatterns is an [Option] to set the include and exclude globs used
// during file discovery. Nil slices leave the defaults untouched.
func WithPatterns(include, exclude []string) Option {
	return patternsOption{include: include, exclude: exclude}
}

type patternsOption struct{ include, exclude []string }

func (o patternsOption) apply(r *run.Options) {
	if o.include != nil {
		r.Include = o.include
	}

	if o.exclude != nil {
		r.Exclude = o.exclude
	}
}

func (o patternsOption) LogField() zap.Field {
	return zap.Strings("include", o.include)
}

// WithLogger is an [Option] to supply the logger used for progress and
// debug output.
func WithLogger(logger *zap.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *zap.Logger }

func (o loggerOption) apply(r *run.Options) {
	if o.logger != nil {
		r.Logger = o.logger
	}
}

func (o loggerOption) LogField() zap.Field {
	return zap.Bool("logger", o.logger != nil)
}

// WithOutput is an [Option] to redirect findings away from standard output.
func WithOutput(out io.Writer) Option { return outputOption{out: out} }

type outputOption struct{ out io.Writer }

func (o outputOption) apply(r *run.Options) {
	if o.out != nil {
		r.Out = o.out
	}
}

func (o outputOption) LogField() zap.Field {
	return zap.Bool("output", o.out != nil)
}
