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

package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccdd.dev/ccdd/internal/model"
)

func TestComponentName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{name: "simple component ref", ref: "#/components/schemas/Pet", want: "Pet"},
		{name: "nested pointer still names the component", ref: "#/components/schemas/Pet/properties/id", want: "Pet"},
		{name: "cross-document ref", ref: "other.json#/components/schemas/Pet", want: "Pet"},
		{name: "escaped name unescaped", ref: "#/components/schemas/Pet~1Kind", want: "Pet/Kind"},
		{name: "no components marker", ref: "#/definitions/Pet", want: ""},
		{name: "components with no name segment", ref: "#/components/schemas", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, componentName(tt.ref))
		})
	}
}

// TestResolveSpec_SelfReferentialComponent covers the cyclic-forward-
// declaration shape: a component schema whose property refers back to
// itself (a linked-list-style "next" pointer). ResolveSpec must not loop
// forever and must still fill in RefName.
func TestResolveSpec_SelfReferentialComponent(t *testing.T) {
	t.Parallel()

	node := &model.SchemaRef{InlineType: "object"}
	next := &model.SchemaRef{Ref: "#/components/schemas/Node"}
	node.Properties = map[string]*model.SchemaRef{"next": next}

	s := &model.Spec{
		SelfURI:    "https://example.com/spec.json",
		Components: &model.Components{Schemas: map[string]*model.SchemaRef{"Node": node}},
	}
	r := New(newReg(s))

	require.NoError(t, ResolveSpec(r, s))
	assert.Equal(t, "Node", next.RefName)
}

// TestResolveSpec_MutuallyRecursiveComponents covers two components whose
// properties reference each other (A -> B -> A), the other common cyclic
// forward-declaration shape the emitter's forward-declaration pass depends
// on RefName being filled in for.
func TestResolveSpec_MutuallyRecursiveComponents(t *testing.T) {
	t.Parallel()

	a := &model.SchemaRef{InlineType: "object", Properties: map[string]*model.SchemaRef{
		"b": {Ref: "#/components/schemas/B"},
	}}
	b := &model.SchemaRef{InlineType: "object", Properties: map[string]*model.SchemaRef{
		"a": {Ref: "#/components/schemas/A"},
	}}

	s := &model.Spec{
		SelfURI:    "https://example.com/spec.json",
		Components: &model.Components{Schemas: map[string]*model.SchemaRef{"A": a, "B": b}},
	}
	r := New(newReg(s))

	require.NoError(t, ResolveSpec(r, s))
	assert.Equal(t, "B", a.Properties["b"].RefName)
	assert.Equal(t, "A", b.Properties["a"].RefName)
}

func TestResolveSpec_WalksOperationsAndResponses(t *testing.T) {
	t.Parallel()

	petRef := &model.SchemaRef{Ref: "#/components/schemas/Pet"}
	pet := &model.SchemaRef{InlineType: "object"}

	op := &model.Operation{
		OperationID: "getPet",
		Parameters:  []model.Parameter{{Name: "id", Schema: &model.SchemaRef{Ref: "#/components/schemas/Pet"}}},
		RequestBody: petRef,
		Responses: []model.Response{
			{Code: "200", Schema: &model.SchemaRef{Ref: "#/components/schemas/Pet"},
				Headers: []model.Header{{Name: "X-Trace", Schema: &model.SchemaRef{Ref: "#/components/schemas/Pet"}}}},
		},
	}
	item := &model.PathItem{Operations: map[string]*model.Operation{"GET": op}}

	s := &model.Spec{
		SelfURI:    "https://example.com/spec.json",
		Components: &model.Components{Schemas: map[string]*model.SchemaRef{"Pet": pet}},
		Paths:      map[string]*model.PathItem{"/pets/{id}": item},
	}
	r := New(newReg(s))

	require.NoError(t, ResolveSpec(r, s))
	assert.Equal(t, "Pet", op.Parameters[0].Schema.RefName)
	assert.Equal(t, "Pet", petRef.RefName)
	assert.Equal(t, "Pet", op.Responses[0].Schema.RefName)
	assert.Equal(t, "Pet", op.Responses[0].Headers[0].Schema.RefName)
}

func TestResolveSpec_WalksAdditionalOperationsAndWebhooks(t *testing.T) {
	t.Parallel()

	pet := &model.SchemaRef{InlineType: "object"}
	queryOp := &model.Operation{OperationID: "queryPets", Method: "QUERY", IsAdditional: true,
		RequestBody: &model.SchemaRef{Ref: "#/components/schemas/Pet"}}
	item := &model.PathItem{AdditionalOperations: []*model.Operation{queryOp}}

	hookOp := &model.Operation{OperationID: "petCreated",
		RequestBody: &model.SchemaRef{Ref: "#/components/schemas/Pet"}}
	hook := &model.PathItem{Operations: map[string]*model.Operation{"POST": hookOp}}

	s := &model.Spec{
		SelfURI:    "https://example.com/spec.json",
		Components: &model.Components{Schemas: map[string]*model.SchemaRef{"Pet": pet}},
		Paths:      map[string]*model.PathItem{"/pets": item},
		Webhooks:   map[string]*model.PathItem{"petCreated": hook},
	}
	r := New(newReg(s))

	require.NoError(t, ResolveSpec(r, s))
	assert.Equal(t, "Pet", queryOp.RequestBody.RefName)
	assert.Equal(t, "Pet", hookOp.RequestBody.RefName)
}

func TestResolveSpec_UnresolvableRefPropagatesError(t *testing.T) {
	t.Parallel()

	bad := &model.SchemaRef{Ref: "#/components/schemas/Missing"}
	s := &model.Spec{
		SelfURI:    "https://example.com/spec.json",
		Components: &model.Components{Schemas: map[string]*model.SchemaRef{"Bad": bad}},
	}
	r := New(newReg(s))

	err := ResolveSpec(r, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "components/schemas/Bad")
}

func TestResolveSpec_NestedCompositionKeywords(t *testing.T) {
	t.Parallel()

	leaf := &model.SchemaRef{InlineType: "object"}
	composed := &model.SchemaRef{
		InlineType: "object",
		AllOf:      []*model.SchemaRef{{Ref: "#/components/schemas/Leaf"}},
		OneOf:      []*model.SchemaRef{{Ref: "#/components/schemas/Leaf"}},
		AnyOf:      []*model.SchemaRef{{Ref: "#/components/schemas/Leaf"}},
		Not:        &model.SchemaRef{Ref: "#/components/schemas/Leaf"},
		Items:           &model.SchemaRef{Ref: "#/components/schemas/Leaf"},
		AdditionalProps: &model.Additional{Schema: &model.SchemaRef{Ref: "#/components/schemas/Leaf"}},
		PatternProperties: map[string]*model.SchemaRef{
			"^x-": {Ref: "#/components/schemas/Leaf"},
		},
	}

	s := &model.Spec{
		SelfURI: "https://example.com/spec.json",
		Components: &model.Components{Schemas: map[string]*model.SchemaRef{
			"Leaf": leaf, "Composed": composed,
		}},
	}
	r := New(newReg(s))

	require.NoError(t, ResolveSpec(r, s))
	assert.Equal(t, "Leaf", composed.AllOf[0].RefName)
	assert.Equal(t, "Leaf", composed.OneOf[0].RefName)
	assert.Equal(t, "Leaf", composed.AnyOf[0].RefName)
	assert.Equal(t, "Leaf", composed.Not.RefName)
	assert.Equal(t, "Leaf", composed.Items.RefName)
	assert.Equal(t, "Leaf", composed.AdditionalProps.Schema.RefName)
	assert.Equal(t, "Leaf", composed.PatternProperties["^x-"].RefName)
}
