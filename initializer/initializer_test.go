// Copyright 2025 The Rivaas Authors
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

package initializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccdd.dev/ccdd/errcode"
)

func TestParse_Positional(t *testing.T) {
	t.Parallel()

	elems, err := Parse("{1, 2, 3}")
	require.NoError(t, err)
	require.Len(t, elems, 3)
	for i, want := range []string{"1", "2", "3"} {
		assert.Equal(t, DesignatorNone, elems[i].Designator)
		assert.Equal(t, want, elems[i].Value)
	}
}

func TestParse_FieldDesignators(t *testing.T) {
	t.Parallel()

	elems, err := Parse("{.x = 1, .y = 2}")
	require.NoError(t, err)
	require.Len(t, elems, 2)
	assert.Equal(t, DesignatorField, elems[0].Designator)
	assert.Equal(t, "x", elems[0].Field)
	assert.Equal(t, "1", elems[0].Value)
	assert.Equal(t, "y", elems[1].Field)
	assert.Equal(t, "2", elems[1].Value)
}

func TestParse_IndexDesignators(t *testing.T) {
	t.Parallel()

	elems, err := Parse("{[2] = 5, [4] = 6}")
	require.NoError(t, err)
	require.Len(t, elems, 2)
	assert.Equal(t, DesignatorIndex, elems[0].Designator)
	assert.Equal(t, "2", elems[0].Index)
	assert.Equal(t, "5", elems[0].Value)
	assert.Equal(t, "4", elems[1].Index)
}

func TestParse_Nested(t *testing.T) {
	t.Parallel()

	elems, err := Parse("{.outer = {1, 2}, .flat = 3}")
	require.NoError(t, err)
	require.Len(t, elems, 2)

	outer := elems[0]
	assert.Equal(t, "outer", outer.Field)
	require.Len(t, outer.Nested, 2)
	assert.Equal(t, "1", outer.Nested[0].Value)
	assert.Equal(t, "2", outer.Nested[1].Value)
	assert.Empty(t, outer.Value)

	assert.Equal(t, "3", elems[1].Value)
}

func TestParse_CommaInsideNestedBracesDoesNotSplit(t *testing.T) {
	t.Parallel()

	elems, err := Parse("{{1, 2}, {3, 4}}")
	require.NoError(t, err)
	require.Len(t, elems, 2)
	require.Len(t, elems[0].Nested, 2)
	require.Len(t, elems[1].Nested, 2)
}

func TestParse_CommaInsideStringLiteralDoesNotSplit(t *testing.T) {
	t.Parallel()

	elems, err := Parse(`{"a, b", "c"}`)
	require.NoError(t, err)
	require.Len(t, elems, 2)
	assert.Equal(t, `"a, b"`, elems[0].Value)
	assert.Equal(t, `"c"`, elems[1].Value)
}

func TestParse_TrailingCommaIgnored(t *testing.T) {
	t.Parallel()

	elems, err := Parse("{1, 2,}")
	require.NoError(t, err)
	require.Len(t, elems, 2)
}

func TestParse_EmptyInitializer(t *testing.T) {
	t.Parallel()

	elems, err := Parse("{}")
	require.NoError(t, err)
	assert.Empty(t, elems)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{name: "missing outer braces", in: "1, 2"},
		{name: "missing closing brace", in: "{1, 2"},
		{name: "too short to be braced", in: "{"},
		{name: "unbalanced nested braces", in: "{1, {2, 3}"},
		{name: "field designator missing equals", in: "{.x 1}"},
		{name: "index designator missing closing bracket", in: "{[2 = 5}"},
		{name: "nested value opens but never closes", in: "{.x = {1, 2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.in)
			require.Error(t, err)
			assert.Equal(t, errcode.EINVAL, errcode.From(err))
			assert.ErrorIs(t, err, errcode.ErrUnbalancedBraces)
		})
	}
}
