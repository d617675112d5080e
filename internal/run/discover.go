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
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// skippedDirs are never descended into during discovery.
var skippedDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	"tmp":          true,
	"log":          true,
}

// Discover resolves the given paths to the sorted set of Ruby files to
// check. Files named explicitly are taken as-is; directories are walked
// recursively with the include and exclude patterns applied.
func (o *Options) Discover(paths []string) ([]string, error) {
	seen := make(map[string]bool)

	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			add(path)

			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			name := d.Name()

			if d.IsDir() {
				if p != path && (skippedDirs[name] || strings.HasPrefix(name, ".")) {
					return filepath.SkipDir
				}

				return nil
			}

			rel, err := filepath.Rel(path, p)
			if err != nil {
				return err
			}

			if o.selected(filepath.ToSlash(rel)) {
				add(p)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)

	return files, nil
}

// selected reports whether a slash-separated relative path passes the
// include and exclude patterns. Patterns use path.Match syntax, with a
// leading "**/" component also matching the bare file name.
func (o *Options) selected(rel string) bool {
	if !matchAny(o.Include, rel) {
		return false
	}

	return !matchAny(o.Exclude, rel)
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, rel); err == nil && ok {
			return true
		}

		if rest, found := strings.CutPrefix(pattern, "**/"); found {
			if ok, err := filepath.Match(rest, filepath.Base(rel)); err == nil && ok {
				return true
			}
		}
	}

	return false
}
