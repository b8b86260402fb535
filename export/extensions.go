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

// Package export implements the Writer (§4.I): it projects a model.Spec
// back out as canonical OpenAPI 3.2 JSON (and, via gopkg.in/yaml.v3, YAML),
// downleveling 3.2-only constructs with a recorded diag.Warning when asked
// to target an older OpenAPI version.
package export

import (
	"encoding/json"
	"maps"
	"strings"
)

// reservesOAIPrefix reports whether target's dialect reserves the
// "x-oai-"/"x-oas-" extension key prefixes for its own future use. 3.0 has
// no such reservation; both 3.1 and 3.2 carry it forward unchanged, so the
// ladder collapses to a single false case rather than three.
func reservesOAIPrefix(target TargetVersion) bool {
	switch target {
	case Target30:
		return false
	case Target31, Target32:
		return true
	default:
		// Unrecognized target (e.g. "" for sub-documents not pinned to a
		// version, see fromInfo/fromExternalDocs): reserve, the safer default.
		return true
	}
}

// validateExtensionKey validates that an extension key starts with "x-".
// Keys starting with "x-oai-" or "x-oas-" are reserved from 3.1 onward.
func validateExtensionKey(key string, target TargetVersion) error {
	if !strings.HasPrefix(key, "x-") {
		return &InvalidExtensionKeyError{Key: key}
	}
	if reservesOAIPrefix(target) && (strings.HasPrefix(key, "x-oai-") || strings.HasPrefix(key, "x-oas-")) {
		return &ReservedExtensionKeyError{Key: key}
	}

	return nil
}

// InvalidExtensionKeyError indicates an extension key doesn't start with "x-".
type InvalidExtensionKeyError struct {
	Key string
}

func (e *InvalidExtensionKeyError) Error() string {
	return "extension key must start with 'x-': " + e.Key
}

// Unwrap returns nil as InvalidExtensionKeyError is a leaf error type.
// This allows errors.Is() and errors.As() to work correctly.
func (e *InvalidExtensionKeyError) Unwrap() error {
	return nil
}

// ReservedExtensionKeyError indicates an extension key uses a reserved prefix.
type ReservedExtensionKeyError struct {
	Key string
}

func (e *ReservedExtensionKeyError) Error() string {
	return "extension key uses reserved prefix (x-oai- or x-oas-): " + e.Key
}

// Unwrap returns nil as ReservedExtensionKeyError is a leaf error type.
// This allows errors.Is() and errors.As() to work correctly.
func (e *ReservedExtensionKeyError) Unwrap() error {
	return nil
}

// copyExtensions copies extensions from model to export type with validation.
//
// Invalid extension keys (those that don't start with "x-" or use prefixes
// reserved from 3.1 onward, see reservesOAIPrefix) are silently filtered
// out rather than causing an error. This allows projection to proceed even
// if some extensions are invalid.
//
// Returns nil if the input map is empty or all keys are filtered out.
func copyExtensions(in map[string]any, target TargetVersion) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		if err := validateExtensionKey(k, target); err != nil {
			// Skip invalid keys - validation should happen at API level
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

// marshalWithExtensions marshals a struct with extensions inlined.
// This is a helper for custom MarshalJSON implementations.
//
// IMPORTANT: When calling this function, the caller MUST use a type alias
// to avoid infinite recursion. For example:
//
//	func (s *MyStruct) MarshalJSON() ([]byte, error) {
//	    type myStruct MyStruct  // Type alias prevents recursion
//	    return marshalWithExtensions(myStruct(*s), s.Extensions)
//	}
//
// Without the type alias, json.Marshal would recursively call MarshalJSON
// on the same type, causing infinite recursion. The type alias creates a
// new type that doesn't have the MarshalJSON method, allowing standard
// JSON marshaling to proceed.
func marshalWithExtensions(v any, extensions map[string]any) ([]byte, error) {
	// Marshal the base struct
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	if len(extensions) == 0 {
		return data, nil
	}

	// Parse the JSON into a map
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	// Merge extensions into the map
	maps.Copy(m, extensions)

	// Marshal back to JSON
	return json.Marshal(m)
}
