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
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/toneymathews/rubocop-graphql/internal/config"
)

// printer renders findings in a clang-style path:line:column format.
type printer struct {
	out     io.Writer
	verbose bool

	path      *color.Color
	offense   *color.Color
	corrected *color.Color
}

func (o *Options) newPrinter() *printer {
	p := &printer{
		out:       o.Out,
		verbose:   o.Behavior.Enabled(config.Verbose),
		path:      color.New(color.Bold),
		offense:   color.New(color.FgRed),
		corrected: color.New(color.FgGreen),
	}

	if o.Behavior.Enabled(config.NoColor) {
		p.path.DisableColor()
		p.offense.DisableColor()
		p.corrected.DisableColor()
	}

	return p
}

func (p *printer) file(result FileResult) {
	if p.verbose && len(result.Reports) == 0 {
		fmt.Fprintf(p.out, "%s: no offenses\n", p.path.Sprint(result.Path))
	}

	for _, r := range result.Reports {
		marker := p.offense.Sprint("C")
		if r.Corrected {
			marker = p.corrected.Sprint("[Corrected]")
		}

		fmt.Fprintf(p.out, "%s:%d:%d: %s %s\n",
			p.path.Sprint(r.File), r.Line, r.Column, marker, r.Message)
	}
}

func (p *printer) summary(s Summary) {
	if s.Offenses == 0 {
		fmt.Fprintf(p.out, "%d files inspected, no offenses detected\n", s.Files)

		return
	}

	fmt.Fprintf(p.out, "%d files inspected, %d offenses detected, %d offenses corrected\n",
		s.Files, s.Offenses, s.Corrected)
}
