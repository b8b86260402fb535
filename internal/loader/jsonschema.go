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
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"ccdd.dev/ccdd/errcode"
)

// schemaConformance checks that components.schemas is itself structurally
// sound JSON Schema (2020-12 dialect) before flattenAllOf/checkUniqueness
// and the rest of this package's hand-written OpenAPI invariant checks run
// against it. Grounded on openapi/validate.Engine's compiler wrapper;
// unlike that engine (which validates a document against the official
// OpenAPI meta-schema), this compiles the document's own component
// schemas against the JSON Schema meta-schema santhosh-tekuri/jsonschema
// ships internally, so no meta-schema JSON needs to be embedded here.
//
// Only run for documents declaring the 2020-12 dialect (OpenAPI 3.1+):
// 3.0.x schemas are draft-04-flavored (e.g. boolean exclusiveMinimum) and
// would spuriously fail 2020-12 conformance, which this module's loader
// already validates by hand for that dialect instead.
type schemaConformance struct {
	compiler *jsonschema.Compiler
}

func newSchemaConformance() *schemaConformance {
	c := jsonschema.NewCompiler()
	c.AssertFormat()
	c.AssertContent()
	return &schemaConformance{compiler: c}
}

// check compiles every schema in schemas as one combined resource (so
// sibling "#/components/schemas/X" $refs between them resolve), reporting
// the first conformance error found, if any. schemas is already decoded
// JSON (as every caller in this package works with map[string]any, not
// raw bytes), matching AddResource's documented signature.
func (c *schemaConformance) check(selfURI string, schemas map[string]any) error {
	if len(schemas) == 0 {
		return nil
	}

	base := selfURI
	if base == "" {
		base = "components.json"
	}
	doc := map[string]any{"components": map[string]any{"schemas": schemas}}
	if err := c.compiler.AddResource(base, doc); err != nil {
		return errcode.Wrap(errcode.EINVAL, err)
	}

	for _, name := range sortedKeys(schemas) {
		ptr := base + "#/components/schemas/" + name
		if _, err := c.compiler.Compile(ptr); err != nil {
			return errcode.Wrap(errcode.EINVAL, fmt.Errorf("components.schemas.%s: %w", name, err))
		}
	}
	return nil
}

// wantsSchemaConformance reports whether a document declaring
// openAPIVersion/jsonSchemaDialect uses the 2020-12 JSON Schema dialect
// (OpenAPI 3.1+), as opposed to 3.0.x's draft-04-flavored schema object.
func wantsSchemaConformance(openAPIVersion, jsonSchemaDialect string) bool {
	if jsonSchemaDialect != "" {
		return true
	}
	return !(len(openAPIVersion) >= 3 && openAPIVersion[:3] == "3.0")
}
