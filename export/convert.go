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

// fromSpec projects s into its canonical JSON form. targetVersion becomes
// the document's `openapi` field and gates which extension key prefixes
// are reserved (see copyExtensions); info, contact, license and
// externalDocs extensions are filtered with an empty target instead.
// fromSchema does not take it — schema projection doesn't change shape
// across 3.0/3.1/3.2, only the envelope around it does.
func fromSpec(s *model.Spec, targetVersion TargetVersion) *SpecDoc {
	doc := &SpecDoc{
		OpenAPI:           string(targetVersion),
		Self:              s.SelfURI,
		JSONSchemaDialect: s.JSONSchemaDialect,
		Info:              fromInfo(&s.Info),
		ExternalDocs:      fromExternalDocs(s.ExternalDocs),
		Extensions:        copyExtensions(s.Extensions, targetVersion),
	}
	for _, srv := range s.Servers {
		doc.Servers = append(doc.Servers, fromServer(srv, targetVersion))
	}
	for _, t := range s.Tags {
		doc.Tags = append(doc.Tags, fromTag(t, targetVersion))
	}
	if len(s.Paths) > 0 {
		doc.Paths = make(map[string]*PathItemDoc, len(s.Paths))
		for route, item := range s.Paths {
			doc.Paths[route] = fromPathItem(item, targetVersion)
		}
	}
	if len(s.Webhooks) > 0 {
		doc.Webhooks = make(map[string]*PathItemDoc, len(s.Webhooks))
		for name, item := range s.Webhooks {
			doc.Webhooks[name] = fromPathItem(item, targetVersion)
		}
	}
	for _, req := range s.Security {
		doc.Security = append(doc.Security, SecurityRequirementDoc(req))
	}
	if s.Components != nil {
		doc.Components = fromComponents(s.Components, targetVersion)
	}
	return doc
}

func fromInfo(i *model.Info) *InfoDoc {
	if i == nil {
		return nil
	}
	doc := &InfoDoc{
		Title:          i.Title,
		Summary:        i.Summary,
		Description:    i.Description,
		TermsOfService: i.TermsOfService,
		Version:        i.Version,
		Extensions:     copyExtensions(i.Extensions, ""),
	}
	if i.Contact != nil {
		doc.Contact = &ContactDoc{
			Name: i.Contact.Name, URL: i.Contact.URL, Email: i.Contact.Email,
			Extensions: copyExtensions(i.Contact.Extensions, ""),
		}
	}
	if i.License != nil {
		doc.License = &LicenseDoc{
			Name: i.License.Name, Identifier: i.License.Identifier, URL: i.License.URL,
			Extensions: copyExtensions(i.License.Extensions, ""),
		}
	}
	return doc
}

func fromServer(s model.Server, targetVersion TargetVersion) ServerDoc {
	doc := ServerDoc{URL: s.URL, Description: s.Description, Extensions: copyExtensions(s.Extensions, targetVersion)}
	if len(s.Variables) > 0 {
		doc.Variables = make(map[string]*ServerVarDoc, len(s.Variables))
		for name, v := range s.Variables {
			doc.Variables[name] = &ServerVarDoc{
				Enum: v.Enum, Default: v.Default, Description: v.Description,
				Extensions: copyExtensions(v.Extensions, targetVersion),
			}
		}
	}
	return doc
}

func fromTag(t model.Tag, targetVersion TargetVersion) TagDoc {
	return TagDoc{
		Name: t.Name, Summary: t.Summary, Description: t.Description,
		ExternalDocs: fromExternalDocs(t.ExternalDocs),
		Extensions:   copyExtensions(t.Extensions, targetVersion),
	}
}

func fromExternalDocs(e *model.ExternalDocs) *ExternalDocsDoc {
	if e == nil {
		return nil
	}
	return &ExternalDocsDoc{Description: e.Description, URL: e.URL, Extensions: copyExtensions(e.Extensions, "")}
}

func fromPathItem(p *model.PathItem, targetVersion TargetVersion) *PathItemDoc {
	if p == nil {
		return nil
	}
	doc := &PathItemDoc{
		Ref: p.Ref, Summary: p.Summary, Description: p.Description,
		Extensions: copyExtensions(p.Extensions, targetVersion),
	}
	for _, srv := range p.Servers {
		doc.Servers = append(doc.Servers, fromServer(srv, targetVersion))
	}
	for _, prm := range p.Parameters {
		doc.Parameters = append(doc.Parameters, fromParameter(prm, targetVersion))
	}
	for verb, op := range p.Operations {
		opDoc := fromOperation(op, targetVersion)
		switch verb {
		case "GET":
			doc.Get = opDoc
		case "PUT":
			doc.Put = opDoc
		case "POST":
			doc.Post = opDoc
		case "DELETE":
			doc.Delete = opDoc
		case "OPTIONS":
			doc.Options = opDoc
		case "HEAD":
			doc.Head = opDoc
		case "PATCH":
			doc.Patch = opDoc
		case "TRACE":
			doc.Trace = opDoc
		case "QUERY":
			doc.Query = opDoc
		}
	}
	for _, op := range p.AdditionalOperations {
		if doc.AdditionalMethods == nil {
			doc.AdditionalMethods = make(map[string]*OperationDoc)
		}
		doc.AdditionalMethods[op.Method] = fromOperation(op, targetVersion)
	}
	return doc
}

func fromOperation(o *model.Operation, targetVersion TargetVersion) *OperationDoc {
	if o == nil {
		return nil
	}
	doc := &OperationDoc{
		Tags: o.Tags, Summary: o.Summary, Description: o.Description,
		OperationID:  o.OperationID,
		ExternalDocs: fromExternalDocs(o.ExternalDocs),
		Deprecated:   o.Deprecated,
		Extensions:   copyExtensions(o.Extensions, targetVersion),
	}
	for _, prm := range o.Parameters {
		doc.Parameters = append(doc.Parameters, fromParameter(prm, targetVersion))
	}
	if o.RequestBody != nil {
		doc.RequestBody = &RequestBodyDoc{
			Required: o.RequestBodyRequired,
			Content:  mediaTypeMap(o.RequestBody, o.RequestBodyMediaTypes, targetVersion),
		}
	}
	if len(o.Responses) > 0 {
		doc.Responses = make(map[string]*ResponseDoc, len(o.Responses))
		for _, r := range o.Responses {
			doc.Responses[r.Code] = fromResponse(r, targetVersion)
		}
	} else {
		doc.Responses = map[string]*ResponseDoc{}
	}
	for _, req := range o.Security {
		doc.Security = append(doc.Security, SecurityRequirementDoc(req))
	}
	for _, srv := range o.Servers {
		doc.Servers = append(doc.Servers, fromServer(srv, targetVersion))
	}
	if len(o.Callbacks) > 0 {
		doc.Callbacks = make(map[string]*CallbackDoc, len(o.Callbacks))
		for name, cb := range o.Callbacks {
			doc.Callbacks[name] = fromCallback(cb, targetVersion)
		}
	}
	return doc
}

func fromCallback(c *model.Callback, targetVersion TargetVersion) *CallbackDoc {
	if c == nil {
		return nil
	}
	doc := &CallbackDoc{Extensions: copyExtensions(c.Extensions, targetVersion)}
	if len(c.PathItems) > 0 {
		doc.PathItems = make(map[string]*PathItemDoc, len(c.PathItems))
		for expr, item := range c.PathItems {
			doc.PathItems[expr] = fromPathItem(item, targetVersion)
		}
	}
	return doc
}

// mediaTypeMap builds a single-schema content map shared across every
// declared media type, since the Loader (§4.F) only keeps one schema per
// request/response body (the first media type's) rather than one per type.
func mediaTypeMap(schema *model.SchemaRef, mediaTypes []string, targetVersion TargetVersion) map[string]*MediaTypeDoc {
	out := make(map[string]*MediaTypeDoc, len(mediaTypes))
	schemaDoc := fromSchema(schema)
	for _, mt := range mediaTypes {
		out[mt] = &MediaTypeDoc{Schema: schemaDoc}
	}
	return out
}

func fromResponse(r model.Response, targetVersion TargetVersion) *ResponseDoc {
	doc := &ResponseDoc{Description: r.Description, Extensions: copyExtensions(r.Extensions, targetVersion)}
	if r.Schema != nil {
		doc.Content = mediaTypeMap(r.Schema, r.ContentMediaTypes, targetVersion)
	}
	for name, l := range r.Links {
		if doc.Links == nil {
			doc.Links = make(map[string]*LinkDoc, len(r.Links))
		}
		doc.Links[name] = fromLink(l, targetVersion)
	}
	for _, h := range r.Headers {
		if doc.Headers == nil {
			doc.Headers = make(map[string]*HeaderDoc, len(r.Headers))
		}
		doc.Headers[h.Name] = fromHeader(h, targetVersion)
	}
	return doc
}

func fromLink(l *model.Link, targetVersion TargetVersion) *LinkDoc {
	if l == nil {
		return nil
	}
	doc := &LinkDoc{
		OperationRef: l.OperationRef, OperationID: l.OperationID,
		Description: l.Description,
		Extensions:  copyExtensions(l.Extensions, targetVersion),
	}
	if len(l.Parameters) > 0 {
		doc.Parameters = make(map[string]any, len(l.Parameters))
		for name, v := range l.Parameters {
			if v != nil {
				doc.Parameters[name] = anyToJSON(*v)
			}
		}
	}
	if l.RequestBody != nil {
		doc.RequestBody = anyToJSON(*l.RequestBody)
	}
	if l.Server != nil {
		srv := fromServer(*l.Server, targetVersion)
		doc.Server = &srv
	}
	return doc
}

func fromHeader(h model.Header, targetVersion TargetVersion) *HeaderDoc {
	return &HeaderDoc{
		Description: h.Description, Required: h.Required, Deprecated: h.Deprecated,
		Style: h.Style, Explode: h.Explode, Schema: fromSchema(h.Schema),
		Extensions: copyExtensions(h.Extensions, targetVersion),
	}
}

func fromParameter(p model.Parameter, targetVersion TargetVersion) ParameterDoc {
	return ParameterDoc{
		Ref: p.Ref, Name: p.Name, In: p.In, Description: p.Description,
		Required: p.Required, Deprecated: p.Deprecated, AllowEmptyValue: p.AllowEmptyValue,
		Style: p.Style, Explode: p.Explode, AllowReserved: p.AllowReserved,
		Schema:     fromSchema(p.Schema),
		Extensions: copyExtensions(p.Extensions, targetVersion),
	}
}

func fromComponents(c *model.Components, targetVersion TargetVersion) *ComponentsDoc {
	doc := &ComponentsDoc{Extensions: copyExtensions(c.Extensions, targetVersion)}
	if len(c.Schemas) > 0 {
		doc.Schemas = make(map[string]*SchemaDoc, len(c.Schemas))
		for name, s := range c.Schemas {
			doc.Schemas[name] = fromSchema(s)
		}
	}
	if len(c.SecuritySchemes) > 0 {
		doc.SecuritySchemes = make(map[string]*SecuritySchemeDoc, len(c.SecuritySchemes))
		for name, sc := range c.SecuritySchemes {
			doc.SecuritySchemes[name] = fromSecurityScheme(sc, targetVersion)
		}
	}
	return doc
}

func fromSecurityScheme(sc *model.SecurityScheme, targetVersion TargetVersion) *SecuritySchemeDoc {
	doc := &SecuritySchemeDoc{
		Type: sc.Type, Description: sc.Description, Name: sc.Name, In: sc.In,
		Scheme: sc.Scheme, BearerFormat: sc.BearerFormat,
		OpenIDConnectURL: sc.OpenIDConnectURL, DeviceAuthorizationURL: sc.DeviceAuthorizationURL,
		Extensions: copyExtensions(sc.Extensions, targetVersion),
	}
	if sc.Flows != nil {
		doc.Flows = &OAuthFlowsDoc{
			Implicit:            fromOAuthFlow(sc.Flows.Implicit),
			Password:            fromOAuthFlow(sc.Flows.Password),
			ClientCredentials:   fromOAuthFlow(sc.Flows.ClientCredentials),
			AuthorizationCode:   fromOAuthFlow(sc.Flows.AuthorizationCode),
			DeviceAuthorization: fromOAuthFlow(sc.Flows.DeviceAuthorization),
			Extensions:          copyExtensions(sc.Flows.Extensions, targetVersion),
		}
	}
	return doc
}

func fromOAuthFlow(f *model.OAuthFlow) *OAuthFlowDoc {
	if f == nil {
		return nil
	}
	return &OAuthFlowDoc{
		AuthorizationURL: f.AuthorizationURL, TokenURL: f.TokenURL, RefreshURL: f.RefreshURL,
		DeviceAuthorizationURL: f.DeviceAuthorizationURL, Scopes: f.Scopes,
		Extensions: copyExtensions(f.Extensions, ""),
	}
}

// fromSchema projects a model.SchemaRef into its canonical JSON Schema
// form, recursing into every nested schema position.
func fromSchema(s *model.SchemaRef) *SchemaDoc {
	if s == nil {
		return nil
	}
	if s.SchemaIsBoolean {
		return BooleanSchemaDoc(s.SchemaIsBooleanV)
	}
	doc := &SchemaDoc{
		Format: s.Format, ContentMediaType: s.ContentMediaType, ContentEncoding: s.ContentEncoding,
		ContentSchema: fromSchema(s.ContentSchema),
		MultipleOf:    s.MultipleOf,
		MinLength:     s.MinLen, MaxLength: s.MaxLen, Pattern: s.Pattern,
		MinItems: s.MinItems, MaxItems: s.MaxItems, UniqueItems: s.UniqueItems,
		Items:         fromSchema(s.Items),
		MinProperties: s.MinProperties, MaxProperties: s.MaxProperties,
		Required: s.Required,
		Title:    s.Title, Summary: s.Summary, Description: s.Description,
		Deprecated: s.Deprecated, ReadOnly: s.ReadOnly, WriteOnly: s.WriteOnly,
		ExternalDocs: fromExternalDocs(s.ExternalDocs),
	}
	if s.RefIsDynamic {
		doc.DynamicRef = s.Ref
	} else {
		doc.Ref = s.Ref
	}
	if len(s.TypeUnion) == 1 {
		doc.Type = s.TypeUnion[0]
	} else if len(s.TypeUnion) > 1 {
		doc.Type = s.TypeUnion
	}
	if s.Min != nil {
		v := s.Min.Value
		if s.Min.Exclusive {
			doc.ExclusiveMinimum = &v
		} else {
			doc.Minimum = &v
		}
	}
	if s.Max != nil {
		v := s.Max.Value
		if s.Max.Exclusive {
			doc.ExclusiveMaximum = &v
		} else {
			doc.Maximum = &v
		}
	}
	if len(s.Properties) > 0 {
		doc.Properties = make(map[string]*SchemaDoc, len(s.Properties))
		for name, prop := range s.Properties {
			doc.Properties[name] = fromSchema(prop)
		}
	}
	if s.AdditionalProps != nil {
		if s.AdditionalProps.Allow != nil {
			doc.AdditionalProperties = *s.AdditionalProps.Allow
		} else if s.AdditionalProps.Schema != nil {
			doc.AdditionalProperties = fromSchema(s.AdditionalProps.Schema)
		}
	}
	if len(s.PatternProperties) > 0 {
		doc.PatternProperties = make(map[string]*SchemaDoc, len(s.PatternProperties))
		for pat, sub := range s.PatternProperties {
			doc.PatternProperties[pat] = fromSchema(sub)
		}
	}
	for _, m := range s.AllOf {
		doc.AllOf = append(doc.AllOf, fromSchema(m))
	}
	for _, m := range s.OneOf {
		doc.OneOf = append(doc.OneOf, fromSchema(m))
	}
	for _, m := range s.AnyOf {
		doc.AnyOf = append(doc.AnyOf, fromSchema(m))
	}
	doc.Not = fromSchema(s.Not)
	for _, v := range s.Enum {
		doc.Enum = append(doc.Enum, anyToJSON(v))
	}
	if s.Const != nil {
		doc.Const = anyToJSON(*s.Const)
	}
	if s.Default != nil {
		doc.Default = anyToJSON(*s.Default)
	}
	if s.Example != nil {
		doc.Example = anyToJSON(*s.Example)
	}
	for _, ex := range s.Examples {
		doc.Examples = append(doc.Examples, anyToJSON(ex))
	}
	if s.Discriminator != nil {
		doc.Discriminator = &DiscriminatorDoc{PropertyName: s.Discriminator.PropertyName, Mapping: s.Discriminator.Mapping}
	}
	if s.XML != nil {
		doc.XML = &XMLDoc{Name: s.XML.Name, Namespace: s.XML.Namespace, Prefix: s.XML.Prefix, Attribute: s.XML.Attribute, Wrapped: s.XML.Wrapped}
	}
	if len(s.SchemaExtraJSON) > 0 {
		var extra map[string]any
		if err := json.Unmarshal(s.SchemaExtraJSON, &extra); err == nil {
			doc.Extra = extra
		}
	}
	return doc
}

// anyToJSON converts a model.Any back into a plain Go value suitable for
// encoding/json to marshal (float64/bool/string/nil, or a decoded fragment).
func anyToJSON(a model.Any) any {
	switch a.Kind {
	case model.AnyBool:
		return a.Bool
	case model.AnyNumber:
		return a.Number
	case model.AnyString:
		return a.Str
	case model.AnyFragment:
		var v any
		if err := json.Unmarshal(a.Fragment, &v); err == nil {
			return v
		}
		return json.RawMessage(a.Fragment)
	default:
		return nil
	}
}
