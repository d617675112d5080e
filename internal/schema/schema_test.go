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

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/toneymathews/rubocop-graphql/internal/schema"
	"github.com/toneymathews/rubocop-graphql/internal/testsource"
)

func TestFields(t *testing.T) {
	t.Parallel()

	c, _ := testsource.ParseContainer(t, `
field :first_name, String, null: true
field :posts do
  argument :hidden, Boolean, required: false
end
object.field :not_bare
field
helper :something
`)

	fields := c.Fields()
	require.Len(t, fields, 2)

	assert.Equal(t, "first_name", fields[0].Name)
	assert.Nil(t, fields[0].Wrapper)
	assert.Equal(t, 0, fields[0].EffectiveIndex())

	assert.Equal(t, "posts", fields[1].Name)
	assert.NotNil(t, fields[1].Wrapper)
	assert.Equal(t, 1, fields[1].EffectiveIndex())
}

func TestKwargs(t *testing.T) {
	t.Parallel()

	c, _ := testsource.ParseContainer(t, `
field :name, String, null: true, method: :display_name
`)

	fields := c.Fields()
	require.Len(t, fields, 1)

	f := fields[0]
	assert.Contains(t, f.Kwargs, "null")
	assert.Contains(t, f.Kwargs, "method")
	assert.True(t, f.HasResolverOverride())
	assert.Equal(t, "display_name", f.ResolverMethodName())
}

func TestResolverMethodName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		override bool
		want     string
	}{
		{
			name: "defaults to the field name",
			body: "field :age, Integer, null: true",
			want: "age",
		},
		{
			name:     "method option",
			body:     "field :age, Integer, method: :years",
			override: true,
			want:     "years",
		},
		{
			name:     "hash_key option",
			body:     `field :age, Integer, hash_key: "years"`,
			override: true,
			want:     "years",
		},
		{
			name:     "resolver option keeps the field name",
			body:     "field :age, Integer, resolver: AgeResolver",
			override: true,
			want:     "age",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := testsource.ParseContainer(t, tt.body)

			fields := c.Fields()
			require.Len(t, fields, 1)

			assert.Equal(t, tt.override, fields[0].HasResolverOverride())
			assert.Equal(t, tt.want, fields[0].ResolverMethodName())
		})
	}
}

func TestMethodNamed(t *testing.T) {
	t.Parallel()

	c, _ := testsource.ParseContainer(t, `
field :first_name, String, null: true

def first_name
  object.contact_data.first_name
end
`)

	m := c.MethodNamed("first_name")
	require.NotNil(t, m)
	assert.Equal(t, "first_name", m.MethodName())
	assert.Equal(t, 1, m.EffectiveIndex())

	assert.Nil(t, c.MethodNamed("last_name"))
}

func TestAnnotation(t *testing.T) {
	t.Parallel()

	t.Run("attached", func(t *testing.T) {
		t.Parallel()

		c, _ := testsource.ParseContainer(t, `
field :first_name, String, null: true

sig { returns(String) }
def first_name
  object.contact_data.first_name
end
`)

		m := c.MethodNamed("first_name")
		require.NotNil(t, m)
		assert.NotNil(t, m.Annotation())
		assert.Equal(t, 2, m.EffectiveIndex())
	})

	t.Run("detached by a blank line", func(t *testing.T) {
		t.Parallel()

		c, _ := testsource.ParseContainer(t, `
sig { returns(String) }

def first_name
  object.contact_data.first_name
end
`)

		m := c.MethodNamed("first_name")
		require.NotNil(t, m)
		assert.Nil(t, m.Annotation())
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		c, _ := testsource.ParseContainer(t, `
def first_name
  object.contact_data.first_name
end
`)

		m := c.MethodNamed("first_name")
		require.NotNil(t, m)
		assert.Nil(t, m.Annotation())
	})
}

func TestFieldRangeCoversHeredoc(t *testing.T) {
	t.Parallel()

	c, buf := testsource.ParseContainer(t, `
field :bio, String, description: <<~DESC
  Long text.
DESC
field :age, Integer, null: true
`)

	fields := c.Fields()
	require.Len(t, fields, 2)

	bio := fields[0].Range()
	age := fields[1].Range()

	assert.Contains(t, string(buf.Slice(bio)), "Long text.")
	assert.Less(t, bio.End, age.Start)
}

func TestContainersNested(t *testing.T) {
	t.Parallel()

	c, buf := testsource.ParseContainer(t, `
field :outer, String, null: true

class InnerType < BaseType
  field :inner, String, null: true
end
`)

	containers := Containers(c.Node, buf)
	require.Len(t, containers, 2)

	assert.Len(t, containers[0].Fields(), 1)
	assert.Len(t, containers[1].Fields(), 1)
	assert.Equal(t, "inner", containers[1].Fields()[0].Name)
}
