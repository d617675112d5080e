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

// Package analyzer checks the layout of GraphQL field definitions in Ruby
// schema classes.
//
// # Overview
//
// GraphQL type classes written with graphql-ruby declare their fields with
// the field class method and optionally back them with resolver methods.
// The analyzer enforces one of two layouts and can rewrite files to comply.
//
// # Styles
//
// With [GroupDefinitions], all field definitions form one block:
//
//	class UserType < BaseType
//	  field :first_name, String, null: true
//	  field :last_name, String, null: true
//
//	  def first_name
//	    object.contact_data.first_name
//	  end
//	end
//
// With [ResolverAfterDefinition], each resolver method directly follows
// its field definition:
//
//	class UserType < BaseType
//	  field :first_name, String, null: true
//
//	  def first_name
//	    object.contact_data.first_name
//	  end
//
//	  field :last_name, String, null: true
//	end
//
// # Corrections
//
// Every violation carries a suggested fix that relocates the offending
// definition or resolver, preserving attached sig annotation blocks and
// heredoc argument bodies.
package analyzer
