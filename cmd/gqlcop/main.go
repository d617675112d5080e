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

// Gqlcop checks the layout of GraphQL field definitions in Ruby schema
// classes and can rewrite offending files in place.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gqlcop [flags] [path ...]",
	Short: "Check GraphQL field definition layout in Ruby schemas",
	Long: `Gqlcop enforces a consistent layout for graphql-ruby field definitions:
either all definitions grouped together, or each resolver method placed
directly after the field it resolves. With --fix, offending files are
rewritten in place.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runCheck,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errOffensesFound) {
			fmt.Fprintln(os.Stderr, "gqlcop:", err)
		}

		os.Exit(1)
	}
}
