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
	"strings"

	"gopkg.in/yaml.v3"

	"ccdd.dev/ccdd/diag"
	"ccdd.dev/ccdd/internal/model"
)

// TargetVersion is an OpenAPI document version the Writer can project to.
// Only 3.2.x is lossless; older targets downlevel 3.2-only constructs and
// record a diag.Warning for each dropped or rewritten construct.
type TargetVersion string

const (
	Target32 TargetVersion = "3.2.0"
	Target31 TargetVersion = "3.1.1"
	Target30 TargetVersion = "3.0.4"
)

// Write projects spec to canonical OpenAPI JSON for the given target
// version, downleveling as needed, and returns the warnings recorded
// while doing so alongside the encoded document.
func Write(spec *model.Spec, target TargetVersion) ([]byte, diag.Warnings, error) {
	doc, warnings := project(spec, target)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, warnings, err
	}
	return data, warnings, nil
}

// WriteYAML is Write's YAML-encoded counterpart.
func WriteYAML(spec *model.Spec, target TargetVersion) ([]byte, diag.Warnings, error) {
	doc, warnings := project(spec, target)
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, warnings, err
	}
	return data, warnings, nil
}

// project converts spec into its canonical SpecDoc and, for anything
// older than 3.2, downlevels constructs that version can't express.
func project(spec *model.Spec, target TargetVersion) (*SpecDoc, diag.Warnings) {
	doc := fromSpec(spec, target)
	var warnings diag.Warnings
	if target == Target32 {
		return doc, warnings
	}
	warnings = append(warnings, downlevel(doc, target)...)
	return doc, warnings
}

// downlevel mutates doc in place to fit target, returning one Warning per
// dropped or rewritten construct. It never reports an error: downleveling
// is always possible, only ever lossy.
func downlevel(doc *SpecDoc, target TargetVersion) diag.Warnings {
	var warnings diag.Warnings

	if len(doc.Webhooks) > 0 && target == Target30 {
		warnings = append(warnings, diag.NewWarning(diag.WarnDownlevelWebhooks, "#/webhooks",
			"webhooks are not representable in OpenAPI 3.0 and were dropped"))
		doc.Webhooks = nil
	}

	if doc.Info != nil && doc.Info.Summary != "" && target == Target30 {
		warnings = append(warnings, diag.NewWarning(diag.WarnDownlevelInfoSummary, "#/info/summary",
			"info.summary is not representable in OpenAPI 3.0 and was dropped"))
		doc.Info.Summary = ""
	}
	if doc.Info != nil && doc.Info.License != nil && doc.Info.License.Identifier != "" && target == Target30 {
		warnings = append(warnings, diag.NewWarning(diag.WarnDownlevelLicenseIdentifier, "#/info/license/identifier",
			"license.identifier is not representable in OpenAPI 3.0 and was dropped"))
		doc.Info.License.Identifier = ""
	}

	if doc.Components != nil {
		for name, sc := range doc.Components.SecuritySchemes {
			downlevelSecurityScheme(name, sc, target, &warnings)
		}
		for name, s := range doc.Components.Schemas {
			downlevelSchema("#/components/schemas/"+name, s, target, &warnings)
		}
		if len(doc.Components.PathItems) > 0 && target != Target31 {
			// 3.0 has no reusable path items component at all; 3.1/3.2 do.
			warnings = append(warnings, diag.NewWarning(diag.WarnDownlevelPathItems, "#/components/pathItems",
				"components.pathItems is not representable in OpenAPI 3.0 and was dropped"))
			doc.Components.PathItems = nil
		}
	}

	for route, item := range doc.Paths {
		downlevelPathItem(route, item, target, &warnings)
	}
	for name, item := range doc.Webhooks {
		downlevelPathItem("#/webhooks/"+name, item, target, &warnings)
	}

	return warnings
}

func downlevelSecurityScheme(name string, sc *SecuritySchemeDoc, target TargetVersion, warnings *diag.Warnings) {
	if sc == nil {
		return
	}
	path := "#/components/securitySchemes/" + name
	if sc.Type == "mutualTLS" && target != Target31 {
		*warnings = append(*warnings, diag.NewWarning(diag.WarnDownlevelMutualTLS, path,
			"mutualTLS is only representable in OpenAPI 3.1+ and was dropped"))
		sc.Type = ""
	}
	if sc.Flows != nil && sc.Flows.DeviceAuthorization != nil {
		*warnings = append(*warnings, diag.NewWarning(diag.WarnDownlevelDeviceAuthorization, path+"/flows/deviceAuthorization",
			"the deviceAuthorization OAuth flow is a 3.2-only addition and was dropped"))
		sc.Flows.DeviceAuthorization = nil
	}
}

func downlevelPathItem(path string, item *PathItemDoc, target TargetVersion, warnings *diag.Warnings) {
	if item == nil {
		return
	}
	if item.Ref != "" && target == Target30 {
		*warnings = append(*warnings, diag.NewWarning(diag.WarnDownlevelPathItems, path,
			"referenced path items are not representable in OpenAPI 3.0; the $ref was left unexpanded"))
	}
	if item.Query != nil {
		*warnings = append(*warnings, diag.NewWarning(diag.WarnDownlevelPathItems, path+"/query",
			"the QUERY HTTP method is a 3.2-only addition and was dropped"))
		item.Query = nil
	}
	ops := []*OperationDoc{item.Get, item.Put, item.Post, item.Delete, item.Options, item.Head, item.Patch, item.Trace}
	for _, op := range ops {
		downlevelOperation(path, op, target, warnings)
	}
}

func downlevelOperation(path string, op *OperationDoc, target TargetVersion, warnings *diag.Warnings) {
	if op == nil {
		return
	}
	if op.RequestBody != nil {
		for mt, media := range op.RequestBody.Content {
			downlevelSchema(path+"/requestBody/content/"+mt, media.Schema, target, warnings)
			downlevelExamples(path+"/requestBody/content/"+mt, media, warnings)
		}
	}
	for code, resp := range op.Responses {
		for mt, media := range resp.Content {
			downlevelSchema(path+"/responses/"+code+"/content/"+mt, media.Schema, target, warnings)
			downlevelExamples(path+"/responses/"+code+"/content/"+mt, media, warnings)
		}
	}
	for i := range op.Parameters {
		downlevelSchema(path+"/parameters/"+op.Parameters[i].Name, op.Parameters[i].Schema, target, warnings)
	}
}

// downlevelExamples collapses a 3.1+ `examples` map down to a single
// `example` value, the only form 3.0 understands.
func downlevelExamples(path string, media *MediaTypeDoc, warnings *diag.Warnings) {
	if media == nil || len(media.Examples) == 0 {
		return
	}
	*warnings = append(*warnings, diag.NewWarning(diag.WarnDownlevelMultipleExamples, path,
		"multiple named examples were collapsed to a single example value"))
	for _, ex := range media.Examples {
		if ex != nil {
			media.Example = ex.Value
			break
		}
	}
	media.Examples = nil
}

// downlevelSchema recursively strips 2020-12-only keywords this SchemaDoc
// tree uses that the target OpenAPI version's embedded JSON Schema dialect
// doesn't support.
func downlevelSchema(path string, s *SchemaDoc, target TargetVersion, warnings *diag.Warnings) {
	if s == nil {
		return
	}
	if target == Target30 {
		if s.Const != nil {
			downlevelConstToEnum(path, s, warnings)
		}
		if len(s.PatternProperties) > 0 {
			*warnings = append(*warnings, diag.NewWarning(diag.WarnDownlevelPatternProperties, path,
				"patternProperties is not representable in OpenAPI 3.0's JSON Schema subset and was dropped"))
			s.PatternProperties = nil
		}
		if s.ContentEncoding != "" {
			*warnings = append(*warnings, diag.NewWarning(diag.WarnDownlevelContentEncoding, path,
				"contentEncoding is not representable in OpenAPI 3.0 and was dropped"))
			s.ContentEncoding = ""
		}
		if s.ContentMediaType != "" {
			*warnings = append(*warnings, diag.NewWarning(diag.WarnDownlevelContentMediaType, path,
				"contentMediaType is not representable in OpenAPI 3.0 and was dropped"))
			s.ContentMediaType = ""
		}
		if s.DynamicRef != "" {
			s.Ref = s.DynamicRef
			s.DynamicRef = ""
		}
		downlevelExclusiveBounds(s)
	}

	for _, sub := range s.Properties {
		downlevelSchema(path+"/properties", sub, target, warnings)
	}
	if schema, ok := s.AdditionalProperties.(*SchemaDoc); ok {
		downlevelSchema(path+"/additionalProperties", schema, target, warnings)
	}
	for pat, sub := range s.PatternProperties {
		downlevelSchema(path+"/patternProperties/"+pat, sub, target, warnings)
	}
	downlevelSchema(path+"/items", s.Items, target, warnings)
	downlevelSchema(path+"/not", s.Not, target, warnings)
	for i := range s.AllOf {
		downlevelSchema(path+"/allOf", s.AllOf[i], target, warnings)
	}
	for i := range s.OneOf {
		downlevelSchema(path+"/oneOf", s.OneOf[i], target, warnings)
	}
	for i := range s.AnyOf {
		downlevelSchema(path+"/anyOf", s.AnyOf[i], target, warnings)
	}
}

// downlevelConstToEnum rewrites `const: X` as `enum: [X]`, the 3.0-era
// idiom for a single fixed value, flagging a conflict if an enum already
// exists that doesn't consist solely of that same value.
func downlevelConstToEnum(path string, s *SchemaDoc, warnings *diag.Warnings) {
	if len(s.Enum) > 0 && !(len(s.Enum) == 1 && equalJSON(s.Enum[0], s.Const)) {
		*warnings = append(*warnings, diag.NewWarning(diag.WarnDownlevelConstToEnumConflict, path,
			"const conflicted with an existing enum; enum was replaced with the const value"))
	} else {
		*warnings = append(*warnings, diag.NewWarning(diag.WarnDownlevelConstToEnum, path,
			"const was rewritten as a single-member enum for OpenAPI 3.0"))
	}
	s.Enum = []any{s.Const}
	s.Const = nil
}

func equalJSON(a, b any) bool {
	aj, aerr := json.Marshal(a)
	bj, berr := json.Marshal(b)
	return aerr == nil && berr == nil && string(aj) == string(bj)
}

// downlevelExclusiveBounds rewrites 3.1's numeric exclusiveMinimum/Maximum
// back into 3.0's boolean-flag-alongside-minimum/maximum encoding.
func downlevelExclusiveBounds(s *SchemaDoc) {
	if (s.ExclusiveMinimum != nil || s.ExclusiveMaximum != nil) && s.Extra == nil {
		s.Extra = make(map[string]any, 2)
	}
	if s.ExclusiveMinimum != nil {
		s.Minimum = s.ExclusiveMinimum
		s.ExclusiveMinimum = nil
		s.Extra["exclusiveMinimum"] = true
	}
	if s.ExclusiveMaximum != nil {
		s.Maximum = s.ExclusiveMaximum
		s.ExclusiveMaximum = nil
		s.Extra["exclusiveMaximum"] = true
	}
}

// ParseTargetVersion maps a version string prefix (as found in an
// `openapi:` field or CLI flag) to the nearest supported TargetVersion.
func ParseTargetVersion(v string) TargetVersion {
	switch {
	case strings.HasPrefix(v, "3.0"):
		return Target30
	case strings.HasPrefix(v, "3.1"):
		return Target31
	default:
		return Target32
	}
}
