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

package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccdd.dev/ccdd/internal/model"
)

func testSpec() *model.Spec {
	return &model.Spec{
		Components: &model.Components{
			Schemas: map[string]*model.SchemaRef{
				"Pet": {
					InlineType: "object",
					TypeUnion:  []string{"object"},
					Properties: map[string]*model.SchemaRef{
						"name": {InlineType: "string", TypeUnion: []string{"string"}},
					},
					PropertyOrder: []string{"name"},
					Required:      []string{"name"},
				},
				"Status": {
					InlineType: "string",
					TypeUnion:  []string{"string"},
					Enum:       []model.Any{model.StringAny("active"), model.StringAny("retired")},
				},
			},
		},
	}
}

func TestWriteTests_StructRoundTrip(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	err := WriteTests(testSpec(), Options{Basename: "pet"}, "pet", &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `#include "pet.h"`)
	assert.Contains(t, out, "static void test_Pet(void) {")
	assert.Contains(t, out, "Pet_default(&a);")
	assert.Contains(t, out, "assert(Pet_to_json(&a, &json) == 0);")
	assert.Contains(t, out, "assert(Pet_from_json(json, &b) == 0);")
	assert.Contains(t, out, "assert(Pet_eq(&a, &b));")
	assert.Contains(t, out, "Pet_cleanup(&a);")
	assert.Contains(t, out, "Pet_cleanup(&b);")
}

func TestWriteTests_EnumUnknownRouting(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	err := WriteTests(testSpec(), Options{Basename: "pet"}, "pet", &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "static void test_Status_enum(void) {")
	assert.Contains(t, out, `assert(Status_from_str("__not_a_real_value__", &v) == 0);`)
	assert.Contains(t, out, "assert(v == Status_UNKNOWN);")
}

func TestWriteTests_MainCallsEveryCase(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	err := WriteTests(testSpec(), Options{Basename: "pet"}, "pet", &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "int main(void) {")
	assert.Contains(t, out, "test_Pet();")
	assert.Contains(t, out, "test_Status_enum();")
	assert.Contains(t, out, `printf("all tests passed\n");`)
}
