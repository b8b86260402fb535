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

import "encoding/json"

// Spec is the document root: a single loaded/merged OpenAPI document plus
// everything the Loader (§4.F) recorded while materializing it. The model
// supports the full 3.0.x/3.1.x/3.2.x keyword surface; the Writer (§4.I)
// projects a single canonical 3.2 JSON representation back out, and the
// Code Emitter (§4.J) walks Components.Schemas once they have been lowered
// to StructFields.
type Spec struct {
	OpenAPIVersion    string
	SelfURI           string // `$self`, if declared
	DocumentURI       string // retrieval URI this document was loaded from
	JSONSchemaDialect string

	Info         Info
	ExternalDocs *ExternalDocs
	Tags         []Tag
	Servers      []Server
	Paths        map[string]*PathItem
	Webhooks     map[string]*PathItem
	Security     []SecurityRequirement
	Components   *Components

	// RawSchemas holds schema-document bodies kept verbatim because they
	// could not be (or need not be) lowered to SchemaRef: a bare JSON
	// Schema boolean document, or an unreferenced sibling schema file.
	RawSchemas map[string]json.RawMessage

	// IsSchemaDocument is true when this Spec was loaded as a standalone
	// JSON Schema document rather than a full OpenAPI document (the
	// reverse, C→JSON-Schema direction produces these).
	IsSchemaDocument bool
	SchemaRootJSON   json.RawMessage

	Extensions map[string]any

	// Reference-resolution bookkeeping populated by the Loader (§4.F) and
	// consulted by the Reference Resolver (§4.H): every $id, $anchor and
	// $dynamicAnchor declared anywhere in this document, keyed by the
	// fragment/URI they register, valued by a JSON pointer path into this
	// Spec's tree (e.g. "#/components/schemas/Pet/properties/id").
	DefinedSchemaIDs      map[string]string
	DefinedAnchors        map[string]string
	DefinedDynamicAnchors map[string]string
}

// Info provides metadata about the API.
type Info struct {
	Title          string
	Summary        string // 3.1+ only
	Description    string
	TermsOfService string
	Version        string
	Contact        *Contact
	License        *License
	Extensions     map[string]any
}

// Contact provides contact information for the API.
type Contact struct {
	Name       string
	URL        string
	Email      string
	Extensions map[string]any
}

// License provides license information for the API. name is REQUIRED;
// identifier and url are mutually exclusive (enforced by the Loader).
type License struct {
	Name       string
	Identifier string
	URL        string
	Extensions map[string]any
}

// Server represents a server URL and its variable substitutions. url must
// not contain a query string or fragment (enforced by the Loader).
type Server struct {
	URL         string
	Description string
	Variables   map[string]*ServerVariable
	Extensions  map[string]any
}

// ServerVariable represents a variable for server URL template substitution.
type ServerVariable struct {
	Enum        []string
	Default     string
	Description string
	Extensions  map[string]any
}

// PathItem is the spec's "Path / Webhook" type: a route's operations plus
// path-level parameters and server overrides. Ref is set when this item is
// itself a `$ref` (3.1+ reusable path items).
type PathItem struct {
	Route       string // the path template key, e.g. "/pets/{petId}"
	Ref         string
	Summary     string
	Description string
	Servers     []Server
	Parameters  []Parameter

	Operations           map[string]*Operation // keyed by uppercase HTTP verb
	AdditionalOperations []*Operation          // QUERY and other nonstandard verbs

	Extensions map[string]any
}

// StandardVerbs lists the HTTP methods a PathItem carries as a fixed slot
// rather than in AdditionalOperations.
var StandardVerbs = []string{"GET", "PUT", "POST", "DELETE", "OPTIONS", "HEAD", "PATCH", "TRACE"}

// Operation describes a single API operation on a path.
type Operation struct {
	Verb        string // one of the spec's verb enum, or "" when Method is set
	Method      string // nonstandard verb, e.g. QUERY
	OperationID string
	Summary     string
	Description string
	Deprecated  bool
	Tags        []string

	ExternalDocs *ExternalDocs
	Parameters   []Parameter

	RequestBody            *SchemaRef
	RequestBodyMediaTypes  []string
	RequestBodyRequired    bool

	Responses []Response
	Callbacks map[string]*Callback

	Security []SecurityRequirement
	Servers  []Server

	// IsAdditional marks operations reached through AdditionalOperations
	// rather than a standard-verb slot (nonstandard HTTP methods).
	IsAdditional bool

	Extensions map[string]any
}

// ParameterIn enumerates where a Parameter is carried.
const (
	InPath       = "path"
	InQuery      = "query"
	InQueryStr   = "querystring"
	InHeader     = "header"
	InCookie     = "cookie"
)

// Parameter describes a single operation or path-level parameter.
type Parameter struct {
	Ref  string
	Name string
	In   string

	Description     string
	Required        bool
	Deprecated      bool
	AllowEmptyValue bool

	Style         string // form|simple|matrix|label|spaceDelimited|pipeDelimited|deepObject|cookie
	Explode       bool
	ExplodeSet    bool
	AllowReserved bool

	Schema *SchemaRef

	ContentType       string
	ContentMediaTypes []string
	Examples          []Example
	ExampleLocation   string // object|media

	Extensions map[string]any
}

// Example represents an example value with optional description.
type Example struct {
	Ref           string
	Name          string
	Summary       string
	Description   string
	Value         *Any
	ExternalValue string
	Extensions    map[string]any
}

// Response describes a single response from an API operation.
type Response struct {
	Code              string // HTTP status code, or "2XX"/.../"default"
	Ref               string
	Description       string
	Headers           []Header
	ContentMediaTypes []string
	Content           map[string]*MediaType
	Links             map[string]*Link
	Schema            *SchemaRef
	Extensions        map[string]any
}

// Header represents a response header. Content-Type is silently dropped by
// the Loader per the spec invariant; that filtering happens before Header
// values reach this type.
type Header struct {
	Name            string
	Ref             string
	Description     string
	Required        bool
	Deprecated      bool
	AllowEmptyValue bool
	Style           string
	Explode         bool
	Schema          *SchemaRef
	Example         *Any
	Examples        []Example
	Content         map[string]*MediaType
	Extensions      map[string]any
}

// MediaType provides a schema and examples for a specific content type.
type MediaType struct {
	Schema     *SchemaRef
	Example    *Any
	Examples   []Example
	Encoding   map[string]*Encoding
	Extensions map[string]any
}

// Encoding describes encoding for a single schema property within a MediaType.
type Encoding struct {
	ContentType   string
	Headers       []Header
	Style         string
	Explode       bool
	AllowReserved bool
	Extensions    map[string]any
}

// Link represents a possible design-time link for a response.
type Link struct {
	Ref          string
	OperationRef string
	OperationID  string
	Parameters   map[string]*Any
	RequestBody  *Any
	Description  string
	Server       *Server
	Extensions   map[string]any
}

// Callback represents a callback definition keyed by a runtime expression.
type Callback struct {
	Ref        string
	PathItems  map[string]*PathItem
	Extensions map[string]any
}

// Components holds reusable, named objects referenced by `$ref`.
type Components struct {
	Schemas         map[string]*SchemaRef
	Responses       map[string]*Response
	Parameters      map[string]*Parameter
	Examples        map[string]*Example
	RequestBodies   map[string]*SchemaRef
	Headers         map[string]*Header
	SecuritySchemes map[string]*SecurityScheme
	Links           map[string]*Link
	Callbacks       map[string]*Callback
	PathItems       map[string]*PathItem // 3.1+ only

	// StructComponents mirrors Schemas once the Loader/Inline-Promotion
	// passes have lowered a component to its emit-time shape (§4.G).
	StructComponents map[string]*StructFields

	Extensions map[string]any
}

// SecurityScheme defines a security scheme.
type SecurityScheme struct {
	Ref              string
	Type             string // apiKey|http|oauth2|openIdConnect|mutualTLS
	Description      string
	Name             string
	In               string
	Scheme           string
	BearerFormat     string
	Flows            *OAuthFlows
	OpenIDConnectURL string
	DeviceAuthorizationURL string // deviceAuthorization flow, 3.2
	Extensions       map[string]any
}

// OAuthFlows configures the supported OAuth2 flows.
type OAuthFlows struct {
	Implicit              *OAuthFlow
	Password              *OAuthFlow
	ClientCredentials     *OAuthFlow
	AuthorizationCode     *OAuthFlow
	DeviceAuthorization    *OAuthFlow // 3.2
	Extensions            map[string]any
}

// OAuthFlow contains configuration details for a supported OAuth flow.
type OAuthFlow struct {
	AuthorizationURL       string
	TokenURL               string
	RefreshURL             string
	DeviceAuthorizationURL string
	Scopes                 map[string]string
	Extensions             map[string]any
}

// SecurityRequirement lists required security schemes, each mapped to its
// required scope list (empty for non-oauth2/openIdConnect schemes).
type SecurityRequirement map[string][]string

// Tag adds metadata to an operation grouping.
type Tag struct {
	Name         string
	Summary      string
	Description  string
	ExternalDocs *ExternalDocs
	Extensions   map[string]any
}

// ExternalDocs provides external documentation links.
type ExternalDocs struct {
	Description string
	URL         string
	Extensions  map[string]any
}
