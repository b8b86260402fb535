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

// Package resolve implements the Reference Resolver (§4.H): three-level
// $ref lookup (split into base URI + fragment, resolve the base relative
// to the containing Spec, look the base up in the Document Registry, then
// dispatch the fragment), plus $dynamicRef/$dynamicAnchor "outermost scope
// wins" resolution.
//
// lestrrat/go-jsref, go-jsschema, go-jsval and go-jspointer (used by
// team-telnyx-telnyx-mock for exactly this job) are GOPATH-only packages
// with no tagged module-compatible release, so this package reimplements
// their $ref and JSON-pointer resolution directly (a Resolver over a
// registry.Registry, with no Pool type and no context parameter) rather
// than vendor a fake module — see DESIGN.md.
package resolve

import (
	"net/url"
	"strconv"
	"strings"

	"ccdd.dev/ccdd/errcode"
	"ccdd.dev/ccdd/internal/model"
	"ccdd.dev/ccdd/internal/registry"
)

// Scope is one level of $dynamicAnchor resolution scope: the base URI of a
// document entered while resolving a reference chain, pushed as the
// resolver descends into $ref/$dynamicRef targets and popped on return.
type Scope struct {
	BaseURI string
	Spec    *model.Spec
}

// Resolver resolves $ref / $dynamicRef values against a Registry.
type Resolver struct {
	reg *registry.Registry
}

// New returns a Resolver backed by reg.
func New(reg *registry.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Result is what a successful resolution yields: exactly one of its
// pointer fields is set, according to the component kind the ref landed
// on — callers for Components.<kind> refs check that field for nil.
type Result struct {
	Schema *model.SchemaRef

	Response  *model.Response
	Parameter *model.Parameter
	Example   *model.Example
	Header    *model.Header
	PathItem  *model.PathItem

	// FragmentPath is the raw JSON-pointer fragment that produced this
	// result, non-empty when the ref descended into a component's
	// sub-field (e.g. "/components/schemas/Pet/properties/id") rather
	// than landing on the component itself.
	FragmentPath string
}

// Resolve resolves ref (a URI or JSON pointer, possibly relative) as seen
// from a node in the Spec owner (relative refs resolve against
// owner.SelfURI), against scopes for $dynamicRef outermost-wins semantics (pass nil
// for a plain $ref).
func (r *Resolver) Resolve(ref string, owner *model.Spec, dynamic bool, scopes []Scope) (Result, error) {
	baseURI, fragment := splitRef(ref)

	if dynamic {
		if res, ok := r.resolveDynamic(fragment, scopes); ok {
			return res, nil
		}
		if baseURI == "" {
			return Result{}, errcode.Wrap(errcode.EINVAL, errcode.ErrDynamicRefNoAnchor)
		}
	}

	if baseURI == "" {
		baseURI = owner.SelfURI
	} else {
		baseURI = resolveRelative(owner.SelfURI, baseURI)
	}

	target, ok := r.reg.Lookup(baseURI)
	if !ok {
		return Result{}, errcode.Wrap(errcode.EINVAL, errcode.ErrBaseURIUnregistered)
	}

	return resolveFragment(target, fragment)
}

// resolveDynamic implements "outermost scope wins": walk scopes from the
// outermost (index 0, the root document entered) inward, and return the
// first one whose Spec declares a $dynamicAnchor matching fragment.
func (r *Resolver) resolveDynamic(fragment string, scopes []Scope) (Result, bool) {
	anchor := strings.TrimPrefix(fragment, "#")
	for _, sc := range scopes {
		if sc.Spec == nil {
			continue
		}
		if ptr, ok := sc.Spec.DefinedDynamicAnchors[anchor]; ok {
			res, err := resolveFragment(sc.Spec, "#"+ptr)
			if err == nil {
				return res, true
			}
		}
	}
	return Result{}, false
}

func splitRef(ref string) (baseURI, fragment string) {
	if i := strings.IndexByte(ref, '#'); i >= 0 {
		return ref[:i], ref[i:]
	}
	return ref, ""
}

func resolveRelative(base, ref string) string {
	if base == "" {
		return ref
	}
	bu, err := url.Parse(base)
	if err != nil {
		return ref
	}
	ru, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return bu.ResolveReference(ru).String()
}

// resolveFragment dispatches a fragment against target per the spec's
// three forms: empty (root schema document), "#anchorName" / "#id-uri"
// (an $anchor or $id registered anywhere in the document), and
// "#/components/<kind>/<name>[/...]" (a JSON-pointer into components,
// possibly descending into a component's sub-fields, which resolves to an
// opaque SchemaRef fragment rather than a named component).
func resolveFragment(target *model.Spec, fragment string) (Result, error) {
	if fragment == "" || fragment == "#" {
		if target.IsSchemaDocument {
			// The root schema itself; callers reconstruct a SchemaRef from
			// SchemaRootJSON via the loader, so this case is only reached
			// with already-populated Components.Schemas[""].
			if target.Components != nil {
				if s, ok := target.Components.Schemas[""]; ok {
					return Result{Schema: s}, nil
				}
			}
		}
		return Result{}, errcode.Wrap(errcode.EINVAL, errcode.ErrRefNotFound)
	}

	body := strings.TrimPrefix(fragment, "#")

	if !strings.HasPrefix(body, "/") {
		// $anchor or $id lookup.
		if ptr, ok := target.DefinedAnchors[body]; ok {
			return resolvePointer(target, ptr)
		}
		if ptr, ok := target.DefinedSchemaIDs[body]; ok {
			return resolvePointer(target, ptr)
		}
		return Result{}, errcode.Wrap(errcode.EINVAL, errcode.ErrRefNotFound)
	}

	return resolvePointer(target, body)
}

// resolvePointer navigates an RFC 6901 JSON pointer against target's
// components. Pointers landing exactly on a named component return that
// component typed; pointers descending further (e.g. into /properties/id)
// return an opaque Schema result with FragmentPath set, since no other
// component references that interior node by name.
func resolvePointer(target *model.Spec, pointer string) (Result, error) {
	segs := splitPointer(pointer)
	if len(segs) == 0 {
		return Result{}, errcode.Wrap(errcode.EINVAL, errcode.ErrRefNotFound)
	}

	if segs[0] == "components" && len(segs) >= 3 && target.Components != nil {
		kind, name := segs[1], segs[2]
		rest := segs[3:]
		switch kind {
		case "schemas":
			s, ok := target.Components.Schemas[name]
			if !ok {
				return Result{}, errcode.Wrap(errcode.EINVAL, errcode.ErrRefNotFound)
			}
			if len(rest) == 0 {
				return Result{Schema: s}, nil
			}
			sub, err := descendSchema(s, rest)
			if err != nil {
				return Result{}, err
			}
			return Result{Schema: sub, FragmentPath: pointer}, nil
		case "responses":
			if v, ok := target.Components.Responses[name]; ok && len(rest) == 0 {
				return Result{Response: v}, nil
			}
		case "parameters":
			if v, ok := target.Components.Parameters[name]; ok && len(rest) == 0 {
				return Result{Parameter: v}, nil
			}
		case "examples":
			if v, ok := target.Components.Examples[name]; ok && len(rest) == 0 {
				return Result{Example: v}, nil
			}
		case "headers":
			if v, ok := target.Components.Headers[name]; ok && len(rest) == 0 {
				return Result{Header: v}, nil
			}
		case "pathItems":
			if v, ok := target.Components.PathItems[name]; ok && len(rest) == 0 {
				return Result{PathItem: v}, nil
			}
		}
		return Result{}, errcode.Wrap(errcode.EINVAL, errcode.ErrRefNotFound)
	}

	if segs[0] == "paths" && len(segs) >= 2 && target.Paths != nil {
		route := unescapePointerSegment(segs[1])
		if pi, ok := target.Paths[route]; ok {
			return Result{PathItem: pi}, nil
		}
	}

	return Result{}, errcode.Wrap(errcode.EINVAL, errcode.ErrRefNotFound)
}

// descendSchema walks further JSON-pointer segments into an already-found
// component schema (e.g. "properties"/"id"), for refs that point inside a
// component's shape rather than at the component itself.
func descendSchema(s *model.SchemaRef, segs []string) (*model.SchemaRef, error) {
	cur := s
	for i := 0; i < len(segs); i++ {
		switch segs[i] {
		case "properties":
			if i+1 >= len(segs) || cur == nil {
				return nil, errcode.Wrap(errcode.EINVAL, errcode.ErrRefNotFound)
			}
			i++
			next, ok := cur.Properties[unescapePointerSegment(segs[i])]
			if !ok {
				return nil, errcode.Wrap(errcode.EINVAL, errcode.ErrRefNotFound)
			}
			cur = next
		case "items":
			if cur == nil || cur.Items == nil {
				return nil, errcode.Wrap(errcode.EINVAL, errcode.ErrRefNotFound)
			}
			cur = cur.Items
		default:
			if n, err := strconv.Atoi(segs[i]); err == nil {
				if cur == nil || n < 0 || n >= len(cur.AllOf) {
					return nil, errcode.Wrap(errcode.EINVAL, errcode.ErrRefNotFound)
				}
				cur = cur.AllOf[n]
				continue
			}
			return nil, errcode.Wrap(errcode.EINVAL, errcode.ErrRefNotFound)
		}
	}
	return cur, nil
}

func splitPointer(p string) []string {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func unescapePointerSegment(s string) string {
	s = strings.ReplaceAll(s, "~1", "/")
	s = strings.ReplaceAll(s, "~0", "~")
	if unescaped, err := url.PathUnescape(s); err == nil {
		return unescaped
	}
	return s
}
