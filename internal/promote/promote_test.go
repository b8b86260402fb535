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

package promote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccdd.dev/ccdd/internal/model"
)

func newComponents() *model.Components {
	return &model.Components{}
}

func TestPromoter_RequestBody(t *testing.T) {
	t.Parallel()

	comp := newComponents()
	p := New(comp)
	schema := &model.SchemaRef{InlineType: "object"}

	ref := p.RequestBody("createPet", schema)
	require.Equal(t, "#/components/schemas/Inline_createPet_Request", ref.Ref)
	assert.Equal(t, "Inline_createPet_Request", ref.RefName)
	assert.Same(t, schema, comp.Schemas["Inline_createPet_Request"])
}

func TestPromoter_RequestBody_AlreadyRefIsUntouched(t *testing.T) {
	t.Parallel()

	comp := newComponents()
	p := New(comp)
	schema := &model.SchemaRef{Ref: "#/components/schemas/Pet"}

	got := p.RequestBody("createPet", schema)
	assert.Same(t, schema, got)
	assert.Empty(t, comp.Schemas)
}

func TestPromoter_RequestBody_NilSchema(t *testing.T) {
	t.Parallel()

	p := New(newComponents())
	assert.Nil(t, p.RequestBody("createPet", nil))
}

func TestPromoter_Response(t *testing.T) {
	t.Parallel()

	comp := newComponents()
	p := New(comp)

	ref := p.Response("listPets", "200", &model.SchemaRef{InlineType: "object"})
	assert.Equal(t, "Inline_listPets_Response_200", ref.RefName)

	defaultRef := p.Response("listPets", "", &model.SchemaRef{InlineType: "object"})
	assert.Equal(t, "Inline_listPets_Response_default", defaultRef.RefName)
}

func TestPromoter_Parameter(t *testing.T) {
	t.Parallel()

	comp := newComponents()
	p := New(comp)
	ref := p.Parameter("listPets", "filter", &model.SchemaRef{InlineType: "object"})
	assert.Equal(t, "Inline_listPets_filter", ref.RefName)
}

func TestPromoter_Property_OnlyObjectsAndObjectArraysPromote(t *testing.T) {
	t.Parallel()

	comp := newComponents()
	p := New(comp)

	t.Run("object property is promoted", func(t *testing.T) {
		ref := p.Property("Pet", "owner", &model.SchemaRef{InlineType: "object"})
		assert.Equal(t, "Pet_owner", ref.RefName)
	})

	t.Run("array of objects is promoted", func(t *testing.T) {
		ref := p.Property("Pet", "tags", &model.SchemaRef{
			IsArray: true,
			Items:   &model.SchemaRef{InlineType: "object"},
		})
		assert.Equal(t, "Pet_tags", ref.RefName)
	})

	t.Run("scalar property is left alone", func(t *testing.T) {
		schema := &model.SchemaRef{InlineType: "string"}
		got := p.Property("Pet", "name", schema)
		assert.Same(t, schema, got)
	})

	t.Run("array of scalars is left alone", func(t *testing.T) {
		schema := &model.SchemaRef{IsArray: true, Items: &model.SchemaRef{InlineType: "string"}}
		got := p.Property("Pet", "aliases", schema)
		assert.Same(t, schema, got)
	})
}

// TestPromoter_CollisionSuffixing exercises the collision-suffix ladder: the
// second and third schemas hoisted under the same synthesized base name get
// "_1", "_2", ... rather than overwriting the first.
func TestPromoter_CollisionSuffixing(t *testing.T) {
	t.Parallel()

	comp := newComponents()
	p := New(comp)

	first := p.RequestBody("createPet", &model.SchemaRef{InlineType: "object"})
	second := p.RequestBody("createPet", &model.SchemaRef{InlineType: "object"})
	third := p.RequestBody("createPet", &model.SchemaRef{InlineType: "object"})

	assert.Equal(t, "Inline_createPet_Request", first.RefName)
	assert.Equal(t, "Inline_createPet_Request_1", second.RefName)
	assert.Equal(t, "Inline_createPet_Request_2", third.RefName)
	assert.Len(t, comp.Schemas, 3)
}

// TestPromoter_CollisionAgainstPreexistingComponent ensures a base name that
// already exists in components.Schemas (e.g. a named schema the document
// itself declared) is treated as taken from the very first promotion.
func TestPromoter_CollisionAgainstPreexistingComponent(t *testing.T) {
	t.Parallel()

	comp := newComponents()
	comp.Schemas = map[string]*model.SchemaRef{
		"Inline_createPet_Request": {InlineType: "object"},
	}
	p := New(comp)

	ref := p.RequestBody("createPet", &model.SchemaRef{InlineType: "object"})
	assert.Equal(t, "Inline_createPet_Request_1", ref.RefName)
}
