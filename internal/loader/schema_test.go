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

package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccdd.dev/ccdd/internal/model"
)

func newTestLoader() *Loader {
	return &Loader{spec: &model.Spec{
		DefinedSchemaIDs:      map[string]string{},
		DefinedAnchors:        map[string]string{},
		DefinedDynamicAnchors: map[string]string{},
	}}
}

func TestParseSchema_BooleanAndNilNodes(t *testing.T) {
	t.Parallel()
	l := newTestLoader()

	s, err := l.ParseSchema(true, "https://example.com", "")
	require.NoError(t, err)
	assert.True(t, s.SchemaIsBoolean)
	assert.True(t, s.SchemaIsBooleanSet)
	assert.True(t, s.SchemaIsBooleanV)

	s, err = l.ParseSchema(nil, "https://example.com", "")
	require.NoError(t, err)
	assert.False(t, s.SchemaIsBoolean)

	_, err = l.ParseSchema(42, "https://example.com", "")
	require.Error(t, err)
}

func TestParseSchema_RefAndDynamicRef(t *testing.T) {
	t.Parallel()
	l := newTestLoader()

	s, err := l.ParseSchema(map[string]any{"$ref": "#/components/schemas/Pet"}, "base", "")
	require.NoError(t, err)
	assert.Equal(t, "#/components/schemas/Pet", s.Ref)
	assert.False(t, s.RefIsDynamic)

	s, err = l.ParseSchema(map[string]any{"$dynamicRef": "#item"}, "base", "")
	require.NoError(t, err)
	assert.Equal(t, "#item", s.Ref)
	assert.True(t, s.RefIsDynamic)
}

func TestParseSchema_IDAnchorBookkeeping(t *testing.T) {
	t.Parallel()
	l := newTestLoader()

	_, err := l.ParseSchema(map[string]any{
		"$id":            "https://example.com/node",
		"$anchor":        "myAnchor",
		"$dynamicAnchor": "myDynamicAnchor",
	}, "base", "/components/schemas/Pet")
	require.NoError(t, err)

	assert.Equal(t, "/components/schemas/Pet", l.spec.DefinedSchemaIDs["https://example.com/node"])
	assert.Equal(t, "/components/schemas/Pet", l.spec.DefinedAnchors["myAnchor"])
	assert.Equal(t, "/components/schemas/Pet", l.spec.DefinedDynamicAnchors["myDynamicAnchor"])
}

func TestParseSchema_TypeUnionAndArray(t *testing.T) {
	t.Parallel()
	l := newTestLoader()

	s, err := l.ParseSchema(map[string]any{"type": "string"}, "base", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"string"}, s.TypeUnion)
	assert.Equal(t, "string", s.InlineType)
	assert.False(t, s.IsArray)

	s, err = l.ParseSchema(map[string]any{"type": []any{"string", "null"}}, "base", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"string", "null"}, s.TypeUnion)
	assert.Empty(t, s.InlineType)

	s, err = l.ParseSchema(map[string]any{"type": "array", "items": map[string]any{"type": "string"}}, "base", "")
	require.NoError(t, err)
	assert.True(t, s.IsArray)
	require.NotNil(t, s.Items)
	assert.Equal(t, "string", s.ItemsInlineType)
}

func TestParseSchema_Bounds(t *testing.T) {
	t.Parallel()
	l := newTestLoader()

	t.Run("3.0 boolean exclusive flag", func(t *testing.T) {
		t.Parallel()
		s, err := l.ParseSchema(map[string]any{
			"minimum": 1.0, "exclusiveMinimum": true,
			"maximum": 10.0, "exclusiveMaximum": false,
		}, "base", "")
		require.NoError(t, err)
		require.NotNil(t, s.Min)
		assert.Equal(t, 1.0, s.Min.Value)
		assert.True(t, s.Min.Exclusive)
		require.NotNil(t, s.Max)
		assert.False(t, s.Max.Exclusive)
	})

	t.Run("3.1 numeric exclusive form", func(t *testing.T) {
		t.Parallel()
		s, err := l.ParseSchema(map[string]any{"exclusiveMinimum": 1.0, "exclusiveMaximum": 10.0}, "base", "")
		require.NoError(t, err)
		require.NotNil(t, s.Min)
		assert.Equal(t, 1.0, s.Min.Value)
		assert.True(t, s.Min.Exclusive)
		require.NotNil(t, s.Max)
		assert.Equal(t, 10.0, s.Max.Value)
		assert.True(t, s.Max.Exclusive)
	})
}

func TestParseSchema_Properties(t *testing.T) {
	t.Parallel()
	l := newTestLoader()

	s, err := l.ParseSchema(map[string]any{
		"properties": map[string]any{
			"zeta":  map[string]any{"type": "string"},
			"alpha": map[string]any{"type": "integer"},
		},
		"required": []any{"alpha"},
	}, "base", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, s.PropertyOrder)
	assert.Equal(t, []string{"alpha"}, s.Required)
	require.Contains(t, s.Properties, "alpha")
	require.Contains(t, s.Properties, "zeta")
}

func TestParseSchema_AdditionalProperties(t *testing.T) {
	t.Parallel()
	l := newTestLoader()

	t.Run("boolean false disallows", func(t *testing.T) {
		t.Parallel()
		s, err := l.ParseSchema(map[string]any{"additionalProperties": false}, "base", "")
		require.NoError(t, err)
		require.NotNil(t, s.AdditionalProps)
		require.NotNil(t, s.AdditionalProps.Allow)
		assert.False(t, *s.AdditionalProps.Allow)
	})

	t.Run("schema form sets Schema", func(t *testing.T) {
		t.Parallel()
		s, err := l.ParseSchema(map[string]any{
			"additionalProperties": map[string]any{"type": "string"},
		}, "base", "")
		require.NoError(t, err)
		require.NotNil(t, s.AdditionalProps)
		require.NotNil(t, s.AdditionalProps.Schema)
		assert.Equal(t, "string", s.AdditionalProps.Schema.InlineType)
	})
}

func TestParseSchema_PatternPropertiesAndComposition(t *testing.T) {
	t.Parallel()
	l := newTestLoader()

	s, err := l.ParseSchema(map[string]any{
		"patternProperties": map[string]any{"^x-": map[string]any{"type": "string"}},
		"allOf":             []any{map[string]any{"type": "object"}},
		"oneOf":             []any{map[string]any{"type": "string"}, map[string]any{"type": "integer"}},
		"anyOf":             []any{map[string]any{"type": "boolean"}},
		"not":               map[string]any{"type": "null"},
	}, "base", "")
	require.NoError(t, err)
	require.Contains(t, s.PatternProperties, "^x-")
	require.Len(t, s.AllOf, 1)
	require.Len(t, s.OneOf, 2)
	require.Len(t, s.AnyOf, 1)
	require.NotNil(t, s.Not)
	assert.Equal(t, "null", s.Not.InlineType)
}

func TestParseSchema_EnumConstDefaultExample(t *testing.T) {
	t.Parallel()
	l := newTestLoader()

	s, err := l.ParseSchema(map[string]any{
		"enum":    []any{"a", "b", nil},
		"const":   "fixed",
		"default": 3.0,
		"example": true,
	}, "base", "")
	require.NoError(t, err)
	require.Len(t, s.Enum, 3)
	require.NotNil(t, s.Const)
	require.NotNil(t, s.Default)
	require.NotNil(t, s.Example)
}

func TestParseSchema_ExternalDocsDiscriminatorXML(t *testing.T) {
	t.Parallel()
	l := newTestLoader()

	s, err := l.ParseSchema(map[string]any{
		"externalDocs": map[string]any{"description": "docs", "url": "https://example.com/docs"},
		"discriminator": map[string]any{
			"propertyName": "kind",
			"mapping":      map[string]any{"dog": "#/components/schemas/Dog"},
		},
		"xml": map[string]any{"name": "pet", "attribute": true},
	}, "base", "")
	require.NoError(t, err)
	require.NotNil(t, s.ExternalDocs)
	assert.Equal(t, "https://example.com/docs", s.ExternalDocs.URL)
	require.NotNil(t, s.Discriminator)
	assert.Equal(t, "kind", s.Discriminator.PropertyName)
	assert.Equal(t, "#/components/schemas/Dog", s.Discriminator.Mapping["dog"])
	require.NotNil(t, s.XML)
	assert.Equal(t, "pet", s.XML.Name)
	assert.True(t, s.XML.Attribute)
}

func TestParseSchema_UnknownKeysPreservedAsExtraJSON(t *testing.T) {
	t.Parallel()
	l := newTestLoader()

	s, err := l.ParseSchema(map[string]any{
		"type":        "string",
		"x-custom":    "value",
		"x-something": 1.0,
	}, "base", "")
	require.NoError(t, err)
	require.NotNil(t, s.SchemaExtraJSON)
	assert.Contains(t, string(s.SchemaExtraJSON), "x-custom")
	assert.Contains(t, string(s.SchemaExtraJSON), "x-something")
	assert.NotContains(t, string(s.SchemaExtraJSON), `"type"`)
}

func TestSortedKeys(t *testing.T) {
	t.Parallel()
	got := sortedKeys(map[string]any{"z": 1, "a": 2, "m": 3})
	assert.Equal(t, []string{"a", "m", "z"}, got)
}

func TestTypeUnion(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"string"}, typeUnion("string"))
	assert.Equal(t, []string{"string", "null"}, typeUnion([]any{"string", "null"}))
	assert.Nil(t, typeUnion(42))
}
