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

import "encoding/json"

// SpecDoc is the canonical OpenAPI 3.2 JSON projection of a model.Spec.
// Unlike the teacher's per-target-version type family (SpecV30/SpecV31),
// this writer always projects the single 3.2 dialect this module's IR
// fully supports; targeting an older version is a downleveling pass (see
// downlevel) applied to a *SpecDoc* after conversion, not a separate type.
type SpecDoc struct {
	OpenAPI           string                   `json:"openapi"`
	Self              string                   `json:"$self,omitempty"`
	JSONSchemaDialect string                   `json:"jsonSchemaDialect,omitempty"`
	Info              *InfoDoc                 `json:"info"`
	Servers           []ServerDoc              `json:"servers,omitempty"`
	Paths             map[string]*PathItemDoc  `json:"paths,omitempty"`
	Webhooks          map[string]*PathItemDoc  `json:"webhooks,omitempty"`
	Components        *ComponentsDoc           `json:"components,omitempty"`
	Tags              []TagDoc                 `json:"tags,omitempty"`
	Security          []SecurityRequirementDoc `json:"security,omitempty"`
	ExternalDocs      *ExternalDocsDoc         `json:"externalDocs,omitempty"`
	Extensions        map[string]any           `json:"-"`
}

type InfoDoc struct {
	Title          string         `json:"title"`
	Summary        string         `json:"summary,omitempty"`
	Description    string         `json:"description,omitempty"`
	TermsOfService string         `json:"termsOfService,omitempty"`
	Version        string         `json:"version"`
	Contact        *ContactDoc    `json:"contact,omitempty"`
	License        *LicenseDoc    `json:"license,omitempty"`
	Extensions     map[string]any `json:"-"`
}

type ContactDoc struct {
	Name       string         `json:"name,omitempty"`
	URL        string         `json:"url,omitempty"`
	Email      string         `json:"email,omitempty"`
	Extensions map[string]any `json:"-"`
}

type LicenseDoc struct {
	Name       string         `json:"name"`
	Identifier string         `json:"identifier,omitempty"`
	URL        string         `json:"url,omitempty"`
	Extensions map[string]any `json:"-"`
}

type ServerDoc struct {
	URL         string                     `json:"url"`
	Description string                     `json:"description,omitempty"`
	Variables   map[string]*ServerVarDoc `json:"variables,omitempty"`
	Extensions  map[string]any             `json:"-"`
}

type ServerVarDoc struct {
	Enum        []string       `json:"enum,omitempty"`
	Default     string         `json:"default"`
	Description string         `json:"description,omitempty"`
	Extensions  map[string]any `json:"-"`
}

// PathItemDoc covers every standard verb this IR supports, including the
// 3.2-only QUERY method in its own Query field; AdditionalMethods carries
// the path item's additional (nonstandard) operations.
type PathItemDoc struct {
	Ref                string                   `json:"$ref,omitempty"`
	Summary            string                   `json:"summary,omitempty"`
	Description        string                   `json:"description,omitempty"`
	Get                *OperationDoc            `json:"get,omitempty"`
	Put                *OperationDoc            `json:"put,omitempty"`
	Post               *OperationDoc            `json:"post,omitempty"`
	Delete             *OperationDoc            `json:"delete,omitempty"`
	Options            *OperationDoc            `json:"options,omitempty"`
	Head               *OperationDoc            `json:"head,omitempty"`
	Patch              *OperationDoc            `json:"patch,omitempty"`
	Trace              *OperationDoc            `json:"trace,omitempty"`
	Query              *OperationDoc            `json:"query,omitempty"`
	AdditionalMethods  map[string]*OperationDoc `json:"additionalOperations,omitempty"`
	Servers            []ServerDoc              `json:"servers,omitempty"`
	Parameters         []ParameterDoc           `json:"parameters,omitempty"`
	Extensions         map[string]any           `json:"-"`
}

type OperationDoc struct {
	Tags         []string                 `json:"tags,omitempty"`
	Summary      string                   `json:"summary,omitempty"`
	Description  string                   `json:"description,omitempty"`
	OperationID  string                   `json:"operationId,omitempty"`
	ExternalDocs *ExternalDocsDoc         `json:"externalDocs,omitempty"`
	Parameters   []ParameterDoc           `json:"parameters,omitempty"`
	RequestBody  *RequestBodyDoc          `json:"requestBody,omitempty"`
	Responses    map[string]*ResponseDoc  `json:"responses"`
	Callbacks    map[string]*CallbackDoc  `json:"callbacks,omitempty"`
	Deprecated   bool                     `json:"deprecated,omitempty"`
	Security     []SecurityRequirementDoc `json:"security,omitempty"`
	Servers      []ServerDoc              `json:"servers,omitempty"`
	Extensions   map[string]any           `json:"-"`
}

type ParameterDoc struct {
	Ref             string                   `json:"$ref,omitempty"`
	Name            string                   `json:"name"`
	In              string                   `json:"in"`
	Description     string                   `json:"description,omitempty"`
	Required        bool                     `json:"required,omitempty"`
	Deprecated      bool                     `json:"deprecated,omitempty"`
	AllowEmptyValue bool                     `json:"allowEmptyValue,omitempty"`
	Style           string                   `json:"style,omitempty"`
	Explode         bool                     `json:"explode,omitempty"`
	AllowReserved   bool                     `json:"allowReserved,omitempty"`
	Schema          *SchemaDoc               `json:"schema,omitempty"`
	Content         map[string]*MediaTypeDoc `json:"content,omitempty"`
	Extensions      map[string]any           `json:"-"`
}

type ExampleDoc struct {
	Summary       string         `json:"summary,omitempty"`
	Description   string         `json:"description,omitempty"`
	Value         any            `json:"value,omitempty"`
	ExternalValue string         `json:"externalValue,omitempty"`
	Extensions    map[string]any `json:"-"`
}

type RequestBodyDoc struct {
	Description string                   `json:"description,omitempty"`
	Required    bool                     `json:"required,omitempty"`
	Content     map[string]*MediaTypeDoc `json:"content"`
	Extensions  map[string]any           `json:"-"`
}

type ResponseDoc struct {
	Description string                   `json:"description"`
	Content     map[string]*MediaTypeDoc `json:"content,omitempty"`
	Headers     map[string]*HeaderDoc    `json:"headers,omitempty"`
	Links       map[string]*LinkDoc      `json:"links,omitempty"`
	Extensions  map[string]any           `json:"-"`
}

type HeaderDoc struct {
	Description string                   `json:"description,omitempty"`
	Required    bool                     `json:"required,omitempty"`
	Deprecated  bool                     `json:"deprecated,omitempty"`
	Style       string                   `json:"style,omitempty"`
	Explode     bool                     `json:"explode,omitempty"`
	Schema      *SchemaDoc               `json:"schema,omitempty"`
	Content     map[string]*MediaTypeDoc `json:"content,omitempty"`
	Extensions  map[string]any           `json:"-"`
}

type MediaTypeDoc struct {
	Schema     *SchemaDoc              `json:"schema,omitempty"`
	Example    any                     `json:"example,omitempty"`
	Examples   map[string]*ExampleDoc  `json:"examples,omitempty"`
	Encoding   map[string]*EncodingDoc `json:"encoding,omitempty"`
	Extensions map[string]any          `json:"-"`
}

type EncodingDoc struct {
	ContentType   string                `json:"contentType,omitempty"`
	Headers       map[string]*HeaderDoc `json:"headers,omitempty"`
	Style         string                `json:"style,omitempty"`
	Explode       bool                  `json:"explode,omitempty"`
	AllowReserved bool                  `json:"allowReserved,omitempty"`
	Extensions    map[string]any        `json:"-"`
}

type CallbackDoc struct {
	PathItems  map[string]*PathItemDoc `json:"-"`
	Extensions map[string]any          `json:"-"`
}

type LinkDoc struct {
	OperationRef string         `json:"operationRef,omitempty"`
	OperationID  string         `json:"operationId,omitempty"`
	Parameters   map[string]any `json:"parameters,omitempty"`
	RequestBody  any            `json:"requestBody,omitempty"`
	Description  string         `json:"description,omitempty"`
	Server       *ServerDoc     `json:"server,omitempty"`
	Extensions   map[string]any `json:"-"`
}

type ComponentsDoc struct {
	Schemas         map[string]*SchemaDoc         `json:"schemas,omitempty"`
	Responses       map[string]*ResponseDoc       `json:"responses,omitempty"`
	Parameters      map[string]*ParameterDoc      `json:"parameters,omitempty"`
	Examples        map[string]*ExampleDoc        `json:"examples,omitempty"`
	RequestBodies   map[string]*RequestBodyDoc    `json:"requestBodies,omitempty"`
	Headers         map[string]*HeaderDoc         `json:"headers,omitempty"`
	SecuritySchemes map[string]*SecuritySchemeDoc `json:"securitySchemes,omitempty"`
	Links           map[string]*LinkDoc           `json:"links,omitempty"`
	Callbacks       map[string]*CallbackDoc       `json:"callbacks,omitempty"`
	PathItems       map[string]*PathItemDoc       `json:"pathItems,omitempty"`
	Extensions      map[string]any                `json:"-"`
}

type SecuritySchemeDoc struct {
	Type                   string         `json:"type"`
	Description            string         `json:"description,omitempty"`
	Name                   string         `json:"name,omitempty"`
	In                     string         `json:"in,omitempty"`
	Scheme                 string         `json:"scheme,omitempty"`
	BearerFormat           string         `json:"bearerFormat,omitempty"`
	Flows                  *OAuthFlowsDoc `json:"flows,omitempty"`
	OpenIDConnectURL       string         `json:"openIdConnectUrl,omitempty"`
	DeviceAuthorizationURL string         `json:"deviceAuthorizationUrl,omitempty"`
	Extensions             map[string]any `json:"-"`
}

type OAuthFlowsDoc struct {
	Implicit            *OAuthFlowDoc  `json:"implicit,omitempty"`
	Password            *OAuthFlowDoc  `json:"password,omitempty"`
	ClientCredentials   *OAuthFlowDoc  `json:"clientCredentials,omitempty"`
	AuthorizationCode   *OAuthFlowDoc  `json:"authorizationCode,omitempty"`
	DeviceAuthorization *OAuthFlowDoc  `json:"deviceAuthorization,omitempty"`
	Extensions          map[string]any `json:"-"`
}

type OAuthFlowDoc struct {
	AuthorizationURL       string            `json:"authorizationUrl,omitempty"`
	TokenURL               string            `json:"tokenUrl,omitempty"`
	RefreshURL             string            `json:"refreshUrl,omitempty"`
	DeviceAuthorizationURL string            `json:"deviceAuthorizationUrl,omitempty"`
	Scopes                 map[string]string `json:"scopes"`
	Extensions             map[string]any    `json:"-"`
}

type SecurityRequirementDoc map[string][]string

type TagDoc struct {
	Name         string           `json:"name"`
	Summary      string           `json:"summary,omitempty"`
	Description  string           `json:"description,omitempty"`
	ExternalDocs *ExternalDocsDoc `json:"externalDocs,omitempty"`
	Extensions   map[string]any   `json:"-"`
}

type ExternalDocsDoc struct {
	Description string         `json:"description,omitempty"`
	URL         string         `json:"url"`
	Extensions  map[string]any `json:"-"`
}

func (s *SpecDoc) MarshalJSON() ([]byte, error) {
	type specDoc SpecDoc
	return marshalWithExtensions(specDoc(*s), s.Extensions)
}

func (i *InfoDoc) MarshalJSON() ([]byte, error) {
	type infoDoc InfoDoc
	return marshalWithExtensions(infoDoc(*i), i.Extensions)
}

func (c *ContactDoc) MarshalJSON() ([]byte, error) {
	type contactDoc ContactDoc
	return marshalWithExtensions(contactDoc(*c), c.Extensions)
}

func (l *LicenseDoc) MarshalJSON() ([]byte, error) {
	type licenseDoc LicenseDoc
	return marshalWithExtensions(licenseDoc(*l), l.Extensions)
}

func (s *ServerDoc) MarshalJSON() ([]byte, error) {
	type serverDoc ServerDoc
	return marshalWithExtensions(serverDoc(*s), s.Extensions)
}

func (s *ServerVarDoc) MarshalJSON() ([]byte, error) {
	type serverVarDoc ServerVarDoc
	return marshalWithExtensions(serverVarDoc(*s), s.Extensions)
}

func (p *PathItemDoc) MarshalJSON() ([]byte, error) {
	type pathItemDoc PathItemDoc
	return marshalWithExtensions(pathItemDoc(*p), p.Extensions)
}

func (o *OperationDoc) MarshalJSON() ([]byte, error) {
	type operationDoc OperationDoc
	return marshalWithExtensions(operationDoc(*o), o.Extensions)
}

func (p *ParameterDoc) MarshalJSON() ([]byte, error) {
	type parameterDoc ParameterDoc
	return marshalWithExtensions(parameterDoc(*p), p.Extensions)
}

func (e *ExampleDoc) MarshalJSON() ([]byte, error) {
	type exampleDoc ExampleDoc
	return marshalWithExtensions(exampleDoc(*e), e.Extensions)
}

func (r *RequestBodyDoc) MarshalJSON() ([]byte, error) {
	type requestBodyDoc RequestBodyDoc
	return marshalWithExtensions(requestBodyDoc(*r), r.Extensions)
}

func (r *ResponseDoc) MarshalJSON() ([]byte, error) {
	type responseDoc ResponseDoc
	return marshalWithExtensions(responseDoc(*r), r.Extensions)
}

func (h *HeaderDoc) MarshalJSON() ([]byte, error) {
	type headerDoc HeaderDoc
	return marshalWithExtensions(headerDoc(*h), h.Extensions)
}

func (m *MediaTypeDoc) MarshalJSON() ([]byte, error) {
	type mediaTypeDoc MediaTypeDoc
	return marshalWithExtensions(mediaTypeDoc(*m), m.Extensions)
}

func (e *EncodingDoc) MarshalJSON() ([]byte, error) {
	type encodingDoc EncodingDoc
	return marshalWithExtensions(encodingDoc(*e), e.Extensions)
}

// MarshalJSON implements json.Marshaler for CallbackDoc: path expressions
// become the top-level keys, same shape as OpenAPI's callback object.
func (c *CallbackDoc) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(c.PathItems)+len(c.Extensions))
	for k, v := range c.PathItems {
		m[k] = v
	}
	for k, v := range c.Extensions {
		m[k] = v
	}
	return json.Marshal(m)
}

func (l *LinkDoc) MarshalJSON() ([]byte, error) {
	type linkDoc LinkDoc
	return marshalWithExtensions(linkDoc(*l), l.Extensions)
}

func (c *ComponentsDoc) MarshalJSON() ([]byte, error) {
	type componentsDoc ComponentsDoc
	return marshalWithExtensions(componentsDoc(*c), c.Extensions)
}

func (s *SecuritySchemeDoc) MarshalJSON() ([]byte, error) {
	type securitySchemeDoc SecuritySchemeDoc
	return marshalWithExtensions(securitySchemeDoc(*s), s.Extensions)
}

func (o *OAuthFlowsDoc) MarshalJSON() ([]byte, error) {
	type oauthFlowsDoc OAuthFlowsDoc
	return marshalWithExtensions(oauthFlowsDoc(*o), o.Extensions)
}

func (o *OAuthFlowDoc) MarshalJSON() ([]byte, error) {
	type oauthFlowDoc OAuthFlowDoc
	return marshalWithExtensions(oauthFlowDoc(*o), o.Extensions)
}

func (t *TagDoc) MarshalJSON() ([]byte, error) {
	type tagDoc TagDoc
	return marshalWithExtensions(tagDoc(*t), t.Extensions)
}

func (e *ExternalDocsDoc) MarshalJSON() ([]byte, error) {
	type externalDocsDoc ExternalDocsDoc
	return marshalWithExtensions(externalDocsDoc(*e), e.Extensions)
}
