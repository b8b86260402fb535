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

// Builder provides a fluent fixture-construction API, for tests and
// fixture-generating tools that want a Spec without round-tripping
// through the Loader's JSON front end. Grounded on the teacher's fluent
// route-registration chain (register-then-return-self), repurposed here
// from "register HTTP routes" to "assemble a Spec's fields in place".
type Builder struct {
	spec *Spec
}

// NewSpec starts a Builder around an empty, already-Loader-shaped Spec.
func NewSpec() *Builder {
	return &Builder{spec: &Spec{
		Paths:                 make(map[string]*PathItem),
		Webhooks:              make(map[string]*PathItem),
		Components:            &Components{},
		DefinedSchemaIDs:      make(map[string]string),
		DefinedAnchors:        make(map[string]string),
		DefinedDynamicAnchors: make(map[string]string),
	}}
}

// WithInfo sets the Spec's Info block and returns b for chaining.
func (b *Builder) WithInfo(info Info) *Builder {
	b.spec.Info = info
	return b
}

// WithServer appends a server entry.
func (b *Builder) WithServer(s Server) *Builder {
	b.spec.Servers = append(b.spec.Servers, s)
	return b
}

// WithSchema registers a named component schema.
func (b *Builder) WithSchema(name string, s *SchemaRef) *Builder {
	if b.spec.Components.Schemas == nil {
		b.spec.Components.Schemas = make(map[string]*SchemaRef)
	}
	b.spec.Components.Schemas[name] = s
	return b
}

// WithPath registers a path item under route and sets its Route field to
// the same key, as the Loader does when it builds each path item.
func (b *Builder) WithPath(route string, item *PathItem) *Builder {
	item.Route = route
	b.spec.Paths[route] = item
	return b
}

// Build returns the assembled Spec.
func (b *Builder) Build() *Spec {
	return b.spec
}
