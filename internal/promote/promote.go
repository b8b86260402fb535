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

// Package promote implements Inline Promotion (§4.G): anonymous inline
// object/array schemas (a request/response body schema, or a property
// whose value is itself an object literal rather than a $ref) are hoisted
// into named components so the code emitter has a name to hang a C struct
// off of. Names are synthesized from the owning operationId, collision
// suffixed _1, _2, ... Grounded on the teacher's internal/build name
// synthesis (operationId/method-and-path derivation in builder.go), here
// repurposed for schema-name synthesis rather than operationId synthesis.
package promote

import (
	"fmt"

	"ccdd.dev/ccdd/internal/model"
)

// Promoter hoists inline schemas into a Components.Schemas map, assigning
// each a synthesized, collision-free name.
type Promoter struct {
	components *model.Components
	used       map[string]int // base name -> next collision suffix to try
}

// New returns a Promoter that registers hoisted schemas into components.
func New(components *model.Components) *Promoter {
	if components.Schemas == nil {
		components.Schemas = make(map[string]*model.SchemaRef)
	}
	for name := range components.Schemas {
		_ = name // pre-seed collision tracking lazily in reserve()
	}
	return &Promoter{components: components, used: make(map[string]int)}
}

// reserve returns a free name starting from base, recording it as used.
func (p *Promoter) reserve(base string) string {
	if _, exists := p.components.Schemas[base]; !exists {
		if n, tracked := p.used[base]; !tracked || n == 0 {
			p.used[base] = 1
			return base
		}
	}
	for {
		n := p.used[base]
		if n == 0 {
			n = 1
		}
		candidate := fmt.Sprintf("%s_%d", base, n)
		p.used[base] = n + 1
		if _, exists := p.components.Schemas[candidate]; !exists {
			return candidate
		}
	}
}

// RequestBody promotes an operation's inline request body schema, if it is
// anonymous (no Ref), to a named component
// "Inline_<operationID>_Request", and rewrites schema in place to a $ref.
func (p *Promoter) RequestBody(operationID string, schema *model.SchemaRef) *model.SchemaRef {
	if schema == nil || schema.Ref != "" {
		return schema
	}
	name := p.reserve(fmt.Sprintf("Inline_%s_Request", operationID))
	p.components.Schemas[name] = schema
	return &model.SchemaRef{Ref: "#/components/schemas/" + name, RefName: name}
}

// Response promotes an operation's inline response body schema for a given
// status code to "Inline_<operationID>_Response_<code>".
func (p *Promoter) Response(operationID, code string, schema *model.SchemaRef) *model.SchemaRef {
	if schema == nil || schema.Ref != "" {
		return schema
	}
	name := p.reserve(fmt.Sprintf("Inline_%s_Response_%s", operationID, sanitizeCode(code)))
	p.components.Schemas[name] = schema
	return &model.SchemaRef{Ref: "#/components/schemas/" + name, RefName: name}
}

// Property promotes an anonymous inline object/array property schema
// nested under an already-named owner, producing "<owner>_<property>", so
// nested inline objects get names derived from their lexical position
// rather than colliding on a single suffix counter. The loader calls
// RequestBody, Response and Parameter; it does not call Property.
func (p *Promoter) Property(owner, property string, schema *model.SchemaRef) *model.SchemaRef {
	if schema == nil || schema.Ref != "" {
		return schema
	}
	if schema.Kind() != model.KindObject && !(schema.IsArray && schema.Items != nil && schema.Items.Kind() == model.KindObject) {
		return schema
	}
	name := p.reserve(fmt.Sprintf("%s_%s", owner, property))
	p.components.Schemas[name] = schema
	return &model.SchemaRef{Ref: "#/components/schemas/" + name, RefName: name}
}

// Parameter promotes an anonymous inline parameter schema to
// "Inline_<operationID>_<paramName>".
func (p *Promoter) Parameter(operationID, paramName string, schema *model.SchemaRef) *model.SchemaRef {
	if schema == nil || schema.Ref != "" {
		return schema
	}
	name := p.reserve(fmt.Sprintf("Inline_%s_%s", operationID, paramName))
	p.components.Schemas[name] = schema
	return &model.SchemaRef{Ref: "#/components/schemas/" + name, RefName: name}
}

func sanitizeCode(code string) string {
	if code == "" {
		return "default"
	}
	return code
}
