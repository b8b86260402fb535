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

// Package loader implements the Loader (§4.F): materializes a model.Spec
// from raw OpenAPI/JSON-Schema-document JSON, registering it with the
// Document Registry as it goes and normalizing input per the spec's
// invariants (license fields, server URLs, reserved headers, path
// templates, operationId/parameter uniqueness, allOf flattening).
//
// Grounded on the teacher's internal/build.Builder (validate-then-build
// traversal and name synthesis) and, for allOf merging, on
// team-telnyx-telnyx-mock's use of imdario/mergo for JSON-Schema
// composition.
package loader

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/imdario/mergo"

	"ccdd.dev/ccdd/diag"
	"ccdd.dev/ccdd/errcode"
	"ccdd.dev/ccdd/internal/model"
	"ccdd.dev/ccdd/internal/promote"
	"ccdd.dev/ccdd/internal/registry"
	"ccdd.dev/ccdd/internal/resolve"
	"ccdd.dev/ccdd/security"
)

// Loader materializes model.Spec values from JSON and registers them.
type Loader struct {
	reg      *registry.Registry
	spec     *model.Spec // the Spec currently being populated, for $id/$anchor bookkeeping during ParseSchema
	warnings diag.Warnings
	promoter *promote.Promoter
	resolver *resolve.Resolver
	security security.Config
}

// New returns a Loader that registers loaded documents into reg and
// resolves $ref/$dynamicRef values against it once a document loads. The
// Loader performs no optional security-scheme validation until
// WithSecurityConfig is used to opt in.
func New(reg *registry.Registry) *Loader {
	return &Loader{reg: reg, resolver: resolve.New(reg)}
}

// WithSecurityConfig enables the Loader's opt-in security-scheme checks
// (see package security) and returns l for chaining.
func (l *Loader) WithSecurityConfig(cfg security.Config) *Loader {
	l.security = cfg
	return l
}

// Warnings returns the diagnostics accumulated by the most recent Load call.
func (l *Loader) Warnings() diag.Warnings { return l.warnings }

// Load parses raw as an OpenAPI document, builds a model.Spec, validates
// and normalizes it per the spec's invariants, and registers it with the
// Document Registry. documentURI is the retrieval URI (used as the base
// URI when the document declares no `$self`).
func (l *Loader) Load(raw []byte, documentURI string) (*model.Spec, error) {
	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, errcode.Wrap(errcode.EINVAL, fmt.Errorf("parsing document: %w", err))
	}

	if _, hasOpenAPI := root["openapi"]; !hasOpenAPI {
		return l.loadSchemaDocument(raw, root, documentURI)
	}

	s := &model.Spec{
		DocumentURI:           documentURI,
		DefinedSchemaIDs:      make(map[string]string),
		DefinedAnchors:        make(map[string]string),
		DefinedDynamicAnchors: make(map[string]string),
	}
	l.spec = s
	l.warnings = nil

	s.OpenAPIVersion, _ = str(root, "openapi")
	s.SelfURI, _ = str(root, "$self")
	s.JSONSchemaDialect, _ = str(root, "jsonSchemaDialect")

	// a. info
	if err := l.loadInfo(s, root); err != nil {
		return nil, err
	}
	// b. externalDocs
	if ed, ok := root["externalDocs"].(map[string]any); ok {
		s.ExternalDocs = &model.ExternalDocs{}
		s.ExternalDocs.Description, _ = str(ed, "description")
		s.ExternalDocs.URL, _ = str(ed, "url")
	}
	// c. tags
	if tags, ok := root["tags"].([]any); ok {
		for _, t := range tags {
			tm, ok := t.(map[string]any)
			if !ok {
				continue
			}
			tag := model.Tag{}
			tag.Name, _ = str(tm, "name")
			tag.Summary, _ = str(tm, "summary")
			tag.Description, _ = str(tm, "description")
			s.Tags = append(s.Tags, tag)
		}
	}
	// d. servers
	if err := l.loadServers(s, root); err != nil {
		return nil, err
	}
	// e. components (schemas/etc, parsed before paths so refs within paths resolve)
	s.Components = &model.Components{
		Schemas: make(map[string]*model.SchemaRef),
	}
	l.promoter = promote.New(s.Components)
	if err := l.loadComponents(s, root); err != nil {
		return nil, err
	}
	// f. paths
	if err := l.loadPaths(s, root, "paths", &s.Paths); err != nil {
		return nil, err
	}
	// g. webhooks
	if err := l.loadPaths(s, root, "webhooks", &s.Webhooks); err != nil {
		return nil, err
	}
	// h. security
	s.Security = loadSecurityRequirements(root["security"])
	// i. uniqueness invariants
	if err := l.checkUniqueness(s); err != nil {
		return nil, err
	}
	// j. extensions
	s.Extensions = extractExtensions(root, rootKnownKeys)

	l.reg.Register(s, raw)
	if err := resolve.ResolveSpec(l.resolver, s); err != nil {
		return nil, errcode.Wrap(errcode.EINVAL, err)
	}
	return s, nil
}

func (l *Loader) loadInfo(s *model.Spec, root map[string]any) error {
	info, ok := root["info"].(map[string]any)
	if !ok {
		return errcode.Wrap(errcode.EINVAL, errcode.ErrTitleRequired)
	}
	s.Info.Title, _ = str(info, "title")
	if s.Info.Title == "" {
		return errcode.Wrap(errcode.EINVAL, errcode.ErrTitleRequired)
	}
	s.Info.Version, _ = str(info, "version")
	if s.Info.Version == "" {
		return errcode.Wrap(errcode.EINVAL, errcode.ErrVersionRequired)
	}
	s.Info.Summary, _ = str(info, "summary")
	s.Info.Description, _ = str(info, "description")
	s.Info.TermsOfService, _ = str(info, "termsOfService")

	if c, ok := info["contact"].(map[string]any); ok {
		s.Info.Contact = &model.Contact{}
		s.Info.Contact.Name, _ = str(c, "name")
		s.Info.Contact.URL, _ = str(c, "url")
		s.Info.Contact.Email, _ = str(c, "email")
	}
	if lic, ok := info["license"].(map[string]any); ok {
		license := &model.License{}
		license.Name, _ = str(lic, "name")
		license.Identifier, _ = str(lic, "identifier")
		license.URL, _ = str(lic, "url")
		if license.Name == "" {
			return errcode.Wrap(errcode.EINVAL, errcode.ErrLicenseNameRequired)
		}
		if license.Identifier != "" && license.URL != "" {
			return errcode.Wrap(errcode.EINVAL, errcode.ErrLicenseMutuallyExclusive)
		}
		s.Info.License = license
	}
	return nil
}

func (l *Loader) loadServers(s *model.Spec, root map[string]any) error {
	servers, ok := root["servers"].([]any)
	if !ok {
		return nil
	}
	for _, sv := range servers {
		sm, ok := sv.(map[string]any)
		if !ok {
			continue
		}
		srv := model.Server{}
		srv.URL, _ = str(sm, "url")
		if containsQueryOrFragment(srv.URL) {
			return errcode.Wrap(errcode.EINVAL, errcode.ErrServerURLHasQueryOrFragment)
		}
		srv.Description, _ = str(sm, "description")
		if vars, ok := sm["variables"].(map[string]any); ok {
			srv.Variables = make(map[string]*model.ServerVariable, len(vars))
			for name, v := range vars {
				vm, ok := v.(map[string]any)
				if !ok {
					continue
				}
				sv := &model.ServerVariable{}
				sv.Default, _ = str(vm, "default")
				sv.Description, _ = str(vm, "description")
				if enum, ok := vm["enum"].([]any); ok {
					sv.Enum = toStrings(enum)
				}
				srv.Variables[name] = sv
			}
		}
		s.Servers = append(s.Servers, srv)
	}
	return nil
}

func containsQueryOrFragment(url string) bool {
	for _, c := range url {
		if c == '?' || c == '#' {
			return true
		}
	}
	return false
}

func (l *Loader) loadComponents(s *model.Spec, root map[string]any) error {
	comp, ok := root["components"].(map[string]any)
	if !ok {
		return nil
	}
	if schemas, ok := comp["schemas"].(map[string]any); ok {
		if wantsSchemaConformance(s.OpenAPIVersion, s.JSONSchemaDialect) {
			if err := newSchemaConformance().check(s.SelfURI, schemas); err != nil {
				return err
			}
		}
		for _, name := range sortedKeys(schemas) {
			sub, err := l.ParseSchema(schemas[name], s.SelfURI, "/components/schemas/"+name)
			if err != nil {
				return fmt.Errorf("components.schemas.%s: %w", name, err)
			}
			sub.RefName = name
			s.Components.Schemas[name] = sub
		}
		if err := l.flattenAllOf(s.Components.Schemas); err != nil {
			return err
		}
	}
	if secSchemes, ok := comp["securitySchemes"].(map[string]any); ok {
		s.Components.SecuritySchemes = make(map[string]*model.SecurityScheme, len(secSchemes))
		for name, v := range secSchemes {
			sm, ok := v.(map[string]any)
			if !ok {
				continue
			}
			scheme, err := parseSecurityScheme(sm)
			if err != nil {
				return fmt.Errorf("components.securitySchemes.%s: %w", name, err)
			}
			exampleToken, _ := str(sm, "x-example-token")
			if err := security.ValidateScheme(l.security, scheme, exampleToken); err != nil {
				return fmt.Errorf("components.securitySchemes.%s: %w", name, errcode.Wrap(errcode.EINVAL, err))
			}
			s.Components.SecuritySchemes[name] = scheme
		}
	}
	return nil
}

// flattenAllOf merges allOf members' properties and required lists into
// their owning schema via mergo, per the spec's deliberate flattening (no
// runtime polymorphism). Rejects a discriminator on a non-outermost allOf.
func (l *Loader) flattenAllOf(schemas map[string]*model.SchemaRef) error {
	for name, s := range schemas {
		if err := mergeAllOf(s, true); err != nil {
			return fmt.Errorf("components.schemas.%s: %w", name, err)
		}
	}
	return nil
}

func mergeAllOf(s *model.SchemaRef, outermost bool) error {
	if s == nil || len(s.AllOf) == 0 {
		return nil
	}
	merged := &model.SchemaRef{Properties: map[string]*model.SchemaRef{}}
	for _, member := range s.AllOf {
		// allOf members sit one level below s, so they are never outermost.
		if member.Discriminator != nil {
			return errcode.Wrap(errcode.EINVAL, errcode.ErrAllOfDiscriminatorAtOutermost)
		}
		if err := mergo.Merge(merged, member, mergo.WithAppendSlice); err != nil {
			return err
		}
		for k, v := range member.Properties {
			merged.Properties[k] = v
		}
		merged.Required = append(merged.Required, member.Required...)
	}
	if err := mergo.Merge(merged, s, mergo.WithOverride); err != nil {
		return err
	}
	for k, v := range s.Properties {
		merged.Properties[k] = v
	}
	merged.Required = dedupeStrings(append(merged.Required, s.Required...))
	merged.AllOf = nil
	*s = *merged
	return nil
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

var reservedHeaders = map[string]bool{"accept": true, "content-type": true, "authorization": true}

func (l *Loader) loadPaths(s *model.Spec, root map[string]any, key string, dst *map[string]*model.PathItem) error {
	paths, ok := root[key].(map[string]any)
	if !ok {
		return nil
	}
	*dst = make(map[string]*model.PathItem, len(paths))
	var routes []string
	for route := range paths {
		routes = append(routes, route)
	}
	sort.Strings(routes)
	if err := CheckSiblingTemplates(routes); err != nil {
		return err
	}

	for _, route := range routes {
		pm, ok := paths[route].(map[string]any)
		if !ok {
			continue
		}
		pathVars, err := PathVariables(route)
		if err != nil {
			return fmt.Errorf("%s %s: %w", key, route, err)
		}

		item := &model.PathItem{Route: route, Operations: make(map[string]*model.Operation)}
		item.Ref, _ = str(pm, "$ref")
		item.Summary, _ = str(pm, "summary")
		item.Description, _ = str(pm, "description")
		if params, ok := pm["parameters"].([]any); ok {
			item.Parameters, err = l.loadParameters(s, params, "")
			if err != nil {
				return err
			}
		}

		for _, verb := range model.StandardVerbs {
			opRaw, ok := pm[httpVerbKey(verb)]
			if !ok {
				continue
			}
			om, ok := opRaw.(map[string]any)
			if !ok {
				continue
			}
			op, err := l.loadOperation(s, verb, om, item.Parameters, pathVars)
			if err != nil {
				return fmt.Errorf("%s %s %s: %w", key, route, verb, err)
			}
			item.Operations[verb] = op
		}

		*dst = addPathItem(*dst, route, item)
	}
	return nil
}

func addPathItem(m map[string]*model.PathItem, route string, item *model.PathItem) map[string]*model.PathItem {
	m[route] = item
	return m
}

func httpVerbKey(verb string) string {
	switch verb {
	case "GET":
		return "get"
	case "PUT":
		return "put"
	case "POST":
		return "post"
	case "DELETE":
		return "delete"
	case "OPTIONS":
		return "options"
	case "HEAD":
		return "head"
	case "PATCH":
		return "patch"
	case "TRACE":
		return "trace"
	default:
		return ""
	}
}

func (l *Loader) loadOperation(s *model.Spec, verb string, om map[string]any, pathParams []model.Parameter, pathVars []string) (*model.Operation, error) {
	op := &model.Operation{Verb: verb}
	op.OperationID, _ = str(om, "operationId")
	op.Summary, _ = str(om, "summary")
	op.Description, _ = str(om, "description")
	op.Deprecated, _ = om["deprecated"].(bool)
	if tags, ok := om["tags"].([]any); ok {
		op.Tags = toStrings(tags)
	}

	var err error
	opParams, err := l.loadParameters(s, om["parameters"], op.OperationID)
	if err != nil {
		return nil, err
	}
	op.Parameters, err = mergeParameters(pathParams, opParams)
	if err != nil {
		return nil, err
	}
	if err := checkQueryStyleConflict(op.Parameters); err != nil {
		return nil, err
	}
	if err := requirePathParams(op.Parameters, pathVars); err != nil {
		return nil, err
	}

	if rb, ok := om["requestBody"].(map[string]any); ok {
		content, _ := rb["content"].(map[string]any)
		for mt := range content {
			op.RequestBodyMediaTypes = append(op.RequestBodyMediaTypes, mt)
		}
		sort.Strings(op.RequestBodyMediaTypes)
		op.RequestBodyRequired, _ = rb["required"].(bool)
		if len(op.RequestBodyMediaTypes) > 0 {
			mt := content[op.RequestBodyMediaTypes[0]].(map[string]any)
			if schemaRaw, ok := mt["schema"]; ok {
				sub, err := l.ParseSchema(schemaRaw, s.SelfURI, "")
				if err != nil {
					return nil, err
				}
				op.RequestBody = l.promoter.RequestBody(operationIDOrAnon(op.OperationID), sub)
				if op.RequestBodyMediaTypes[0] == "multipart/form-data" {
					op.RequestBody.MultipartFields = deriveMultipartFields(op.RequestBody)
				}
			}
		}
	}

	if resp, ok := om["responses"].(map[string]any); ok {
		for _, code := range sortedKeys(resp) {
			rm, ok := resp[code].(map[string]any)
			if !ok {
				continue
			}
			r := model.Response{Code: code}
			r.Description, _ = str(rm, "description")
			if content, ok := rm["content"].(map[string]any); ok {
				for mt := range content {
					r.ContentMediaTypes = append(r.ContentMediaTypes, mt)
				}
				sort.Strings(r.ContentMediaTypes)
				if len(r.ContentMediaTypes) > 0 {
					mm := content[r.ContentMediaTypes[0]].(map[string]any)
					if schemaRaw, ok := mm["schema"]; ok {
						sub, err := l.ParseSchema(schemaRaw, s.SelfURI, "")
						if err != nil {
							return nil, err
						}
						r.Schema = l.promoter.Response(operationIDOrAnon(op.OperationID), code, sub)
					}
				}
			}
			if headers, ok := rm["headers"].(map[string]any); ok {
				for _, hname := range sortedKeys(headers) {
					if equalFoldContentType(hname) {
						l.warn(diag.WarnNormalizedContentTypeHeader, "#/headers/"+hname, "response header named Content-Type was dropped")
						continue
					}
					hm, ok := headers[hname].(map[string]any)
					if !ok {
						continue
					}
					h := model.Header{Name: hname}
					h.Description, _ = str(hm, "description")
					h.Required, _ = hm["required"].(bool)
					if schemaRaw, ok := hm["schema"]; ok {
						sub, err := l.ParseSchema(schemaRaw, s.SelfURI, "")
						if err != nil {
							return nil, err
						}
						h.Schema = sub
					}
					r.Headers = append(r.Headers, h)
				}
			}
			op.Responses = append(op.Responses, r)
		}
	}

	op.Security = loadSecurityRequirements(om["security"])
	return op, nil
}

func equalFoldContentType(name string) bool {
	return len(name) == len("Content-Type") && foldEqual(name, "Content-Type")
}

func foldEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

func operationIDOrAnon(id string) string {
	if id == "" {
		return "Anonymous"
	}
	return id
}

func (l *Loader) loadParameters(s *model.Spec, raw any, operationID string) ([]model.Parameter, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, nil
	}
	params := make([]model.Parameter, 0, len(list))
	for _, p := range list {
		pm, ok := p.(map[string]any)
		if !ok {
			continue
		}
		name, _ := str(pm, "name")
		in, _ := str(pm, "in")
		if in == "header" && reservedHeaders[lowerASCII(name)] {
			l.warn(diag.WarnNormalizedReservedHeader, "#/parameters/"+name, "reserved header parameter was dropped")
			continue
		}
		param := model.Parameter{Name: name, In: in}
		param.Description, _ = str(pm, "description")
		param.Required, _ = pm["required"].(bool)
		param.Deprecated, _ = pm["deprecated"].(bool)
		param.AllowEmptyValue, _ = pm["allowEmptyValue"].(bool)
		param.Style, _ = str(pm, "style")
		if explode, ok := pm["explode"].(bool); ok {
			param.Explode, param.ExplodeSet = explode, true
		}
		param.AllowReserved, _ = pm["allowReserved"].(bool)
		if schemaRaw, ok := pm["schema"]; ok {
			sub, err := l.ParseSchema(schemaRaw, s.SelfURI, "")
			if err != nil {
				return nil, err
			}
			if l.promoter != nil {
				sub = l.promoter.Parameter(operationIDOrAnon(operationID), name, sub)
			}
			param.Schema = sub
		}
		params = append(params, param)
	}
	return params, nil
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// mergeParameters merges path-level parameters with operation-level ones;
// an operation-level {name,in} pair that repeats a path-level (or an
// earlier operation-level) pair is rejected with ErrDuplicateParameter.
func mergeParameters(pathParams, opParams []model.Parameter) ([]model.Parameter, error) {
	key := func(p model.Parameter) string { return p.In + "\x00" + p.Name }
	byKey := make(map[string]model.Parameter, len(pathParams)+len(opParams))
	var order []string
	for _, p := range pathParams {
		k := key(p)
		if _, exists := byKey[k]; !exists {
			order = append(order, k)
		}
		byKey[k] = p
	}
	for _, p := range opParams {
		k := key(p)
		if _, exists := byKey[k]; !exists {
			order = append(order, k)
		} else {
			return nil, fmt.Errorf("%w: {%s,%s}", errcode.ErrDuplicateParameter, p.Name, p.In)
		}
		byKey[k] = p
	}
	out := make([]model.Parameter, 0, len(order))
	for _, k := range order {
		out = append(out, byKey[k])
	}
	return out, nil
}

func checkQueryStyleConflict(params []model.Parameter) error {
	hasQuery, hasQueryStr := false, false
	for _, p := range params {
		switch p.In {
		case model.InQuery:
			hasQuery = true
		case model.InQueryStr:
			hasQueryStr = true
		}
	}
	if hasQuery && hasQueryStr {
		return errcode.Wrap(errcode.EINVAL, errcode.ErrQueryStyleConflict)
	}
	return nil
}

func requirePathParams(params []model.Parameter, pathVars []string) error {
	byName := make(map[string]model.Parameter, len(params))
	for _, p := range params {
		if p.In == model.InPath {
			byName[p.Name] = p
		}
	}
	for _, v := range pathVars {
		p, ok := byName[v]
		if !ok {
			return fmt.Errorf("%w: %q", errcode.ErrPathParamUndeclared, v)
		}
		if !p.Required {
			return fmt.Errorf("%w: %q", errcode.ErrPathParamNotRequired, v)
		}
	}
	return nil
}

// deriveMultipartFields collapses a multipart/form-data request body's
// object schema into the emit-time MultipartField shorthand: one entry per
// top-level property, flagging string/binary-format properties (file
// uploads) with IsBinary so the Code Emitter can generate a byte-buffer
// field instead of a JSON string field for them.
func deriveMultipartFields(schema *model.SchemaRef) []model.MultipartField {
	if schema == nil || len(schema.Properties) == 0 {
		return nil
	}
	order := schema.PropertyOrder
	if len(order) == 0 {
		order = sortedKeys(toAnyMap(schema.Properties))
	}
	fields := make([]model.MultipartField, 0, len(order))
	for _, name := range order {
		prop, ok := schema.Properties[name]
		if !ok {
			continue
		}
		fields = append(fields, model.MultipartField{
			Name:     name,
			Type:     prop.Kind().String(),
			IsBinary: prop.Format == "binary",
		})
	}
	return fields
}

func toAnyMap(m map[string]*model.SchemaRef) map[string]any {
	out := make(map[string]any, len(m))
	for k := range m {
		out[k] = nil
	}
	return out
}

func (l *Loader) checkUniqueness(s *model.Spec) error {
	seen := make(map[string]bool)
	check := func(paths map[string]*model.PathItem) error {
		for _, item := range paths {
			for _, op := range item.Operations {
				if op.OperationID == "" {
					continue
				}
				if seen[op.OperationID] {
					return fmt.Errorf("%w: %q", errcode.ErrDuplicateOperationID, op.OperationID)
				}
				seen[op.OperationID] = true
			}
		}
		return nil
	}
	if err := check(s.Paths); err != nil {
		return err
	}
	return check(s.Webhooks)
}

func (l *Loader) warn(code diag.WarningCode, path, msg string) {
	l.warnings = append(l.warnings, diag.NewWarning(code, path, msg))
}

func loadSecurityRequirements(raw any) []model.SecurityRequirement {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]model.SecurityRequirement, 0, len(list))
	for _, r := range list {
		rm, ok := r.(map[string]any)
		if !ok {
			continue
		}
		req := make(model.SecurityRequirement, len(rm))
		for name, scopes := range rm {
			if list, ok := scopes.([]any); ok {
				req[name] = toStrings(list)
			} else {
				req[name] = nil
			}
		}
		out = append(out, req)
	}
	return out
}

var rootKnownKeys = map[string]bool{
	"openapi": true, "$self": true, "jsonSchemaDialect": true, "info": true, "externalDocs": true,
	"tags": true, "servers": true, "components": true, "paths": true, "webhooks": true, "security": true,
}

func extractExtensions(m map[string]any, known map[string]bool) map[string]any {
	var out map[string]any
	for k, v := range m {
		if known[k] || len(k) < 2 || k[0:2] != "x-" {
			continue
		}
		if out == nil {
			out = make(map[string]any)
		}
		out[k] = v
	}
	return out
}

// loadSchemaDocument handles the reverse direction's input: a standalone
// JSON Schema document with no `openapi` key.
func (l *Loader) loadSchemaDocument(raw []byte, root map[string]any, documentURI string) (*model.Spec, error) {
	s := &model.Spec{
		DocumentURI:           documentURI,
		IsSchemaDocument:      true,
		SchemaRootJSON:        json.RawMessage(raw),
		DefinedSchemaIDs:      make(map[string]string),
		DefinedAnchors:        make(map[string]string),
		DefinedDynamicAnchors: make(map[string]string),
	}
	s.SelfURI, _ = str(root, "$id")
	l.spec = s
	l.warnings = nil

	schema, err := l.ParseSchema(root, s.SelfURI, "")
	if err != nil {
		return nil, err
	}
	s.Components = &model.Components{Schemas: map[string]*model.SchemaRef{"": schema}}
	l.reg.Register(s, raw)
	if err := resolve.ResolveSpec(l.resolver, s); err != nil {
		return nil, errcode.Wrap(errcode.EINVAL, err)
	}
	return s, nil
}

func parseSecurityScheme(sm map[string]any) (*model.SecurityScheme, error) {
	scheme := &model.SecurityScheme{}
	scheme.Type, _ = str(sm, "type")
	scheme.Description, _ = str(sm, "description")
	scheme.Name, _ = str(sm, "name")
	scheme.In, _ = str(sm, "in")
	scheme.Scheme, _ = str(sm, "scheme")
	scheme.BearerFormat, _ = str(sm, "bearerFormat")
	scheme.OpenIDConnectURL, _ = str(sm, "openIdConnectUrl")

	switch scheme.Type {
	case "apiKey":
		if scheme.Name == "" || scheme.In == "" {
			return nil, errcode.Wrap(errcode.EINVAL, errcode.ErrSecuritySchemeInvalid)
		}
	case "http":
		if scheme.Scheme == "" {
			return nil, errcode.Wrap(errcode.EINVAL, errcode.ErrSecuritySchemeInvalid)
		}
	case "openIdConnect":
		if scheme.OpenIDConnectURL == "" {
			return nil, errcode.Wrap(errcode.EINVAL, errcode.ErrSecuritySchemeInvalid)
		}
	case "oauth2":
		flowsRaw, ok := sm["flows"].(map[string]any)
		if !ok {
			return nil, errcode.Wrap(errcode.EINVAL, errcode.ErrSecuritySchemeInvalid)
		}
		flows, err := parseOAuthFlows(flowsRaw)
		if err != nil {
			return nil, err
		}
		scheme.Flows = flows
	case "mutualTLS":
		// no extra required fields
	}
	return scheme, nil
}

func parseOAuthFlows(m map[string]any) (*model.OAuthFlows, error) {
	flows := &model.OAuthFlows{}
	parseOne := func(key string, needsAuthURL, needsTokenURL, needsDeviceURL bool) (*model.OAuthFlow, error) {
		fm, ok := m[key].(map[string]any)
		if !ok {
			return nil, nil
		}
		f := &model.OAuthFlow{}
		f.AuthorizationURL, _ = str(fm, "authorizationUrl")
		f.TokenURL, _ = str(fm, "tokenUrl")
		f.RefreshURL, _ = str(fm, "refreshUrl")
		f.DeviceAuthorizationURL, _ = str(fm, "deviceAuthorizationUrl")
		if scopes, ok := fm["scopes"].(map[string]any); ok {
			f.Scopes = make(map[string]string, len(scopes))
			for k, v := range scopes {
				if sv, ok := v.(string); ok {
					f.Scopes[k] = sv
				}
			}
		} else {
			f.Scopes = map[string]string{}
		}
		if needsAuthURL && f.AuthorizationURL == "" {
			return nil, errcode.Wrap(errcode.EINVAL, errcode.ErrOAuthFlowMissingURL)
		}
		if needsTokenURL && f.TokenURL == "" {
			return nil, errcode.Wrap(errcode.EINVAL, errcode.ErrOAuthFlowMissingURL)
		}
		if needsDeviceURL && f.DeviceAuthorizationURL == "" {
			return nil, errcode.Wrap(errcode.EINVAL, errcode.ErrOAuthFlowMissingURL)
		}
		return f, nil
	}
	var err error
	if flows.Implicit, err = parseOne("implicit", true, false, false); err != nil {
		return nil, err
	}
	if flows.Password, err = parseOne("password", false, true, false); err != nil {
		return nil, err
	}
	if flows.ClientCredentials, err = parseOne("clientCredentials", false, true, false); err != nil {
		return nil, err
	}
	if flows.AuthorizationCode, err = parseOne("authorizationCode", true, true, false); err != nil {
		return nil, err
	}
	if flows.DeviceAuthorization, err = parseOne("deviceAuthorization", false, true, true); err != nil {
		return nil, err
	}
	return flows, nil
}
