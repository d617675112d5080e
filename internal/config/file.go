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

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file discovered upward from the working
// directory.
const FileName = ".gqlcop.yml"

// A File is the on-disk configuration.
type File struct {
	Style       Style    `yaml:"style"`
	Include     []string `yaml:"include"`
	Exclude     []string `yaml:"exclude"`
	Autocorrect bool     `yaml:"autocorrect"`
	MaxPasses   int      `yaml:"max_passes"`
}

// DefaultFile returns the configuration used when no file is present.
func DefaultFile() *File {
	return &File{
		Style:     GroupDefinitions,
		Include:   []string{"**/*.rb"},
		MaxPasses: 10,
	}
}

// Load reads and validates a configuration file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	f := DefaultFile()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if f.MaxPasses <= 0 {
		f.MaxPasses = DefaultFile().MaxPasses
	}

	return f, nil
}

// Discover walks from dir toward the filesystem root looking for a
// configuration file and returns its path, or "" when none exists.
func Discover(dir string) string {
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}

		dir = parent
	}
}

// UnmarshalYAML decodes a style name.
func (s *Style) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}

	style, err := ParseStyle(name)
	if err != nil {
		return err
	}

	*s = style

	return nil
}

// MarshalYAML encodes the style name.
func (s Style) MarshalYAML() (any, error) { return s.String(), nil }
