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

package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/toneymathews/rubocop-graphql/internal/config"
	"github.com/toneymathews/rubocop-graphql/internal/run"
)

// errOffensesFound signals a nonzero exit without an error message.
var errOffensesFound = errors.New("offenses found")

func init() {
	rootCmd.Flags().String("style", "", "enforced style (group_definitions|define_resolver_after_definition)")
	rootCmd.Flags().BoolP("fix", "a", false, "rewrite offending files in place")
	rootCmd.Flags().String("config", "", "configuration file (default: nearest "+config.FileName+")")
	rootCmd.Flags().Int("max-passes", 0, "limit fix passes per file (default from configuration)")
	rootCmd.Flags().Bool("no-color", false, "disable colored output")
	rootCmd.Flags().Bool("verbose", false, "report clean files too")
	rootCmd.Flags().Bool("debug", false, "enable debug logging")
}

func runCheck(cmd *cobra.Command, args []string) error {
	options, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	summary, err := options.Run(cmd.Context(), paths)
	if err != nil {
		return err
	}

	if !summary.Clean() {
		return errOffensesFound
	}

	return nil
}

// buildOptions layers settings in precedence order: defaults, then the
// configuration file, then explicit flags.
func buildOptions(cmd *cobra.Command) (*run.Options, error) {
	options := run.DefaultOptions()
	options.Out = cmd.OutOrStdout()

	file, err := loadConfigFile(cmd)
	if err != nil {
		return nil, err
	}

	if file != nil {
		options.ApplyFile(file)
	}

	flags := cmd.Flags()

	if flags.Changed("style") {
		name, err := flags.GetString("style")
		if err != nil {
			return nil, err
		}

		style, err := config.ParseStyle(name)
		if err != nil {
			return nil, err
		}

		options.Style = style
	}

	if fix, err := flags.GetBool("fix"); err != nil {
		return nil, err
	} else if fix {
		options.Behavior.Enable(config.ApplyFixes)
	}

	if flags.Changed("max-passes") {
		passes, err := flags.GetInt("max-passes")
		if err != nil {
			return nil, err
		}

		options.MaxPasses = passes
	}

	if noColor, err := flags.GetBool("no-color"); err != nil {
		return nil, err
	} else if noColor {
		options.Behavior.Enable(config.NoColor)
	}

	if verbose, err := flags.GetBool("verbose"); err != nil {
		return nil, err
	} else if verbose {
		options.Behavior.Enable(config.Verbose)
	}

	if debug, err := flags.GetBool("debug"); err != nil {
		return nil, err
	} else if debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}

		options.Logger = logger
	}

	return options, nil
}

// loadConfigFile loads the file named by --config, or discovers the
// nearest one above the working directory. A nil file means defaults.
func loadConfigFile(cmd *cobra.Command) (*config.File, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	if path != "" {
		return config.Load(path)
	}

	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	if found := config.Discover(dir); found != "" {
		return config.Load(found)
	}

	return nil, nil
}
