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
)

func TestWantsSchemaConformance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		openAPIVersion    string
		jsonSchemaDialect string
		want              bool
	}{
		{name: "explicit dialect always wants conformance", openAPIVersion: "3.0.3", jsonSchemaDialect: "https://spec.openapis.org/oas/3.1/dialect/base", want: true},
		{name: "3.0.x with no dialect skips", openAPIVersion: "3.0.3", want: false},
		{name: "3.1.x with no dialect still conforms", openAPIVersion: "3.1.0", want: true},
		{name: "3.2.x with no dialect still conforms", openAPIVersion: "3.2.0", want: true},
		{name: "short version string doesn't panic", openAPIVersion: "3", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wantsSchemaConformance(tt.openAPIVersion, tt.jsonSchemaDialect))
		})
	}
}

func TestSchemaConformance_Check(t *testing.T) {
	t.Parallel()

	t.Run("empty schema map is a no-op", func(t *testing.T) {
		t.Parallel()
		c := newSchemaConformance()
		assert.NoError(t, c.check("https://example.com/spec.json", nil))
	})

	t.Run("valid schemas compile cleanly", func(t *testing.T) {
		t.Parallel()
		c := newSchemaConformance()
		schemas := map[string]any{
			"Pet": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "integer"},
					"name": map[string]any{"type": "string"},
				},
			},
		}
		assert.NoError(t, c.check("https://example.com/spec.json", schemas))
	})

	t.Run("sibling refs between components resolve", func(t *testing.T) {
		t.Parallel()
		c := newSchemaConformance()
		schemas := map[string]any{
			"Pet": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"owner": map[string]any{"$ref": "#/components/schemas/Owner"},
				},
			},
			"Owner": map[string]any{"type": "object"},
		}
		assert.NoError(t, c.check("https://example.com/spec.json", schemas))
	})

	t.Run("malformed schema reports a conformance error", func(t *testing.T) {
		t.Parallel()
		c := newSchemaConformance()
		schemas := map[string]any{
			"Bad": map[string]any{"type": 42},
		}
		err := c.check("https://example.com/spec.json", schemas)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "components.schemas.Bad")
	})

	t.Run("empty selfURI falls back to a synthetic base", func(t *testing.T) {
		t.Parallel()
		c := newSchemaConformance()
		schemas := map[string]any{"Pet": map[string]any{"type": "object"}}
		assert.NoError(t, c.check("", schemas))
	})
}
