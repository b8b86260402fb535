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

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_AssemblesSpec(t *testing.T) {
	t.Parallel()

	spec := NewSpec().
		WithInfo(Info{Title: "Pets API", Version: "1.0.0"}).
		WithServer(Server{URL: "https://api.example.com"}).
		WithSchema("Pet", &SchemaRef{InlineType: "object"}).
		WithPath("/pets", &PathItem{
			Operations: map[string]*Operation{
				"GET": {OperationID: "listPets"},
			},
		}).
		Build()

	assert.Equal(t, "Pets API", spec.Info.Title)
	require.Len(t, spec.Servers, 1)
	assert.Equal(t, "https://api.example.com", spec.Servers[0].URL)

	require.Contains(t, spec.Components.Schemas, "Pet")
	assert.Equal(t, "object", spec.Components.Schemas["Pet"].InlineType)

	require.Contains(t, spec.Paths, "/pets")
	assert.Equal(t, "/pets", spec.Paths["/pets"].Route)
	assert.Equal(t, "listPets", spec.Paths["/pets"].Operations["GET"].OperationID)
}

func TestBuilder_EmptySpecHasInitializedMaps(t *testing.T) {
	t.Parallel()

	spec := NewSpec().Build()

	assert.NotNil(t, spec.Paths)
	assert.NotNil(t, spec.Webhooks)
	assert.NotNil(t, spec.Components)
	assert.NotNil(t, spec.DefinedSchemaIDs)
	assert.NotNil(t, spec.DefinedAnchors)
	assert.NotNil(t, spec.DefinedDynamicAnchors)
}

func TestBuilder_WithSchemaMultipleCallsAccumulate(t *testing.T) {
	t.Parallel()

	spec := NewSpec().
		WithSchema("Pet", &SchemaRef{InlineType: "object"}).
		WithSchema("Owner", &SchemaRef{InlineType: "object"}).
		Build()

	assert.Len(t, spec.Components.Schemas, 2)
}
