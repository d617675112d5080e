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

// Package run hosts the checker: it discovers Ruby files, analyzes them in
// parallel, applies accepted fixes until the source converges, and reports
// the results.
package run

import (
	"context"
	"os"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/toneymathews/rubocop-graphql/diag"
	"github.com/toneymathews/rubocop-graphql/internal/analyze"
	"github.com/toneymathews/rubocop-graphql/internal/config"
	"github.com/toneymathews/rubocop-graphql/internal/rubyparse"
	"github.com/toneymathews/rubocop-graphql/internal/schema"
	"github.com/toneymathews/rubocop-graphql/internal/source"
)

// Reported is one diagnostic plus its outcome.
type Reported struct {
	diag.Diagnostic

	Corrected bool
}

// FileResult holds one file's reported diagnostics in position order.
type FileResult struct {
	Path    string
	Fixed   bool
	Reports []Reported
}

// Summary aggregates a whole invocation.
type Summary struct {
	Files     int
	Offenses  int
	Corrected int
}

// Clean reports whether no offense remains uncorrected.
func (s Summary) Clean() bool { return s.Offenses == s.Corrected }

// Run checks every Ruby file reachable from the given paths and prints the
// findings. With fixing enabled, corrected files are rewritten in place.
func (o *Options) Run(ctx context.Context, paths []string) (Summary, error) {
	files, err := o.Discover(paths)
	if err != nil {
		return Summary{}, err
	}

	o.Logger.Debug("discovered files", zap.Int("count", len(files)))

	results := make([]FileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range files {
		g.Go(func() error {
			result, err := o.checkFile(ctx, path)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := Summary{Files: len(files)}

	printer := o.newPrinter()

	for _, result := range results {
		printer.file(result)

		for _, r := range result.Reports {
			summary.Offenses++
			if r.Corrected {
				summary.Corrected++
			}
		}
	}

	printer.summary(summary)

	return summary, nil
}

// AnalyzeSource parses one buffer and returns its diagnostics sorted by
// position, with file and line information filled in.
func AnalyzeSource(ctx context.Context, filename string, src []byte, style config.Style) ([]diag.Diagnostic, error) {
	root, err := rubyparse.New().Parse(ctx, src)
	if err != nil {
		return nil, err
	}

	buf := source.NewBuffer(src)

	var diags []diag.Diagnostic

	for _, c := range schema.Containers(root, buf) {
		for d, err := range analyze.Violations(c, style) {
			if err != nil {
				return nil, err
			}

			d.File = filename
			diags = append(diags, d)
		}
	}

	sort.Slice(diags, func(i, j int) bool { return diags[i].Pos < diags[j].Pos })

	return diags, nil
}

// checkFile analyzes one file and, in fix mode, drives it to convergence.
func (o *Options) checkFile(ctx context.Context, path string) (FileResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, err
	}

	diags, err := AnalyzeSource(ctx, path, src, o.Style)
	if err != nil {
		return FileResult{}, err
	}

	result := FileResult{Path: path}

	if !o.Behavior.Enabled(config.ApplyFixes) {
		for _, d := range diags {
			result.Reports = append(result.Reports, Reported{Diagnostic: d})
		}

		return result, nil
	}

	fixed, reports, err := o.fix(ctx, path, src, diags)
	if err != nil {
		return FileResult{}, err
	}

	result.Reports = reports

	if len(fixed) > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return FileResult{}, err
		}

		if err := os.WriteFile(path, fixed, info.Mode().Perm()); err != nil {
			return FileResult{}, err
		}

		result.Fixed = true

		o.Logger.Debug("rewrote file", zap.String("path", path))
	}

	return result, nil
}

// fix applies suggested fixes pass by pass until the file is clean, no fix
// is acceptable, or the pass budget runs out. Within a pass, a fix whose
// edits overlap an already accepted fix is deferred; every pass reanalyzes
// the rewritten source, so deferred fixes reappear with fresh offsets. The
// returned source is nil when nothing was applied; the reports carry every
// corrected offense plus whatever the final analysis still flags.
func (o *Options) fix(ctx context.Context, path string, src []byte, first []diag.Diagnostic) ([]byte, []Reported, error) {
	var reports []Reported

	current := src
	diags := first
	applied := false

	for pass := range o.MaxPasses {
		var edits []diag.TextEdit

		accepted := 0

		for _, d := range diags {
			if !d.HasFix() {
				continue
			}

			fix := d.SuggestedFixes[0]
			if diag.Overlaps(edits, fix.TextEdits) {
				continue
			}

			edits = append(edits, fix.TextEdits...)
			accepted++

			reports = append(reports, Reported{Diagnostic: d, Corrected: true})
		}

		if accepted == 0 {
			break
		}

		next, err := diag.Apply(current, edits)
		if err != nil {
			return nil, nil, err
		}

		o.Logger.Debug("applied fixes",
			zap.String("path", path), zap.Int("pass", pass+1), zap.Int("fixes", accepted))

		current = next
		applied = true

		diags, err = AnalyzeSource(ctx, path, current, o.Style)
		if err != nil {
			return nil, nil, err
		}

		if len(diags) == 0 {
			break
		}
	}

	for _, d := range diags {
		reports = append(reports, Reported{Diagnostic: d})
	}

	sort.SliceStable(reports, func(i, j int) bool { return reports[i].Pos < reports[j].Pos })

	if !applied {
		return nil, reports, nil
	}

	return current, reports, nil
}
