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

package export

import (
	"encoding/json"

	"ccdd.dev/ccdd/internal/model"
)

// schemaDocument is a standalone JSON Schema document (as opposed to the
// OpenAPI envelope SpecDoc produces): a $defs map of named schemas, with
// no `openapi`/`paths` wrapper. This is what the reverse, C-header
// direction (cmd/code2schema) emits, since a header has no operations to
// project.
type schemaDocument struct {
	Schema string                    `json:"$schema"`
	Defs   map[string]*SchemaDoc `json:"$defs"`
}

// WriteSchemaDocument projects a set of named component schemas straight
// to a JSON Schema document, bypassing the OpenAPI SpecDoc envelope
// Write/WriteYAML build. encoding/json sorts map keys on marshal, so
// output order is deterministic by name without this module needing its
// own ordered-map type here.
func WriteSchemaDocument(schemas map[string]*model.SchemaRef) ([]byte, error) {
	defs := make(map[string]*SchemaDoc, len(schemas))
	for name, s := range schemas {
		defs[name] = fromSchema(s)
	}
	doc := schemaDocument{
		Schema: "https://json-schema.org/draft/2020-12/schema",
		Defs:   defs,
	}
	return json.MarshalIndent(doc, "", "  ")
}
