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

package resolve

import (
	"fmt"
	"strings"

	"ccdd.dev/ccdd/errcode"
	"ccdd.dev/ccdd/internal/model"
)

// ResolveSpec walks every schema position reachable from s (components,
// paths, webhooks) and, for each node carrying a $ref, resolves it against
// r and fills in RefName with the target's local component name. It does
// not inline the target's fields into the referencing node — the Code
// Emitter and Writer consult RefName to emit a named-type reference rather
// than a copy, matching how the rest of this IR keeps $ref a distinct
// reference kind rather than flattening it away.
func ResolveSpec(r *Resolver, s *model.Spec) error {
	if s.Components != nil {
		for name, sub := range s.Components.Schemas {
			if err := resolveSchema(r, s, sub); err != nil {
				return fmt.Errorf("components/schemas/%s: %w", name, err)
			}
		}
		for name, sub := range s.Components.RequestBodies {
			if err := resolveSchema(r, s, sub); err != nil {
				return fmt.Errorf("components/requestBodies/%s: %w", name, err)
			}
		}
		for name, p := range s.Components.Parameters {
			if err := resolveSchema(r, s, p.Schema); err != nil {
				return fmt.Errorf("components/parameters/%s: %w", name, err)
			}
		}
		for name, h := range s.Components.Headers {
			if err := resolveSchema(r, s, h.Schema); err != nil {
				return fmt.Errorf("components/headers/%s: %w", name, err)
			}
		}
		for name, resp := range s.Components.Responses {
			if err := resolveResponse(r, s, resp); err != nil {
				return fmt.Errorf("components/responses/%s: %w", name, err)
			}
		}
	}
	for route, item := range s.Paths {
		if err := resolvePathItem(r, s, item); err != nil {
			return fmt.Errorf("paths%s: %w", route, err)
		}
	}
	for name, item := range s.Webhooks {
		if err := resolvePathItem(r, s, item); err != nil {
			return fmt.Errorf("webhooks/%s: %w", name, err)
		}
	}
	return nil
}

func resolvePathItem(r *Resolver, owner *model.Spec, item *model.PathItem) error {
	if item == nil {
		return nil
	}
	for i := range item.Parameters {
		if err := resolveSchema(r, owner, item.Parameters[i].Schema); err != nil {
			return err
		}
	}
	ops := item.Operations
	all := make([]*model.Operation, 0, len(ops)+len(item.AdditionalOperations))
	for _, op := range ops {
		all = append(all, op)
	}
	all = append(all, item.AdditionalOperations...)
	for _, op := range all {
		if err := resolveOperation(r, owner, op); err != nil {
			return err
		}
	}
	return nil
}

func resolveOperation(r *Resolver, owner *model.Spec, op *model.Operation) error {
	if op == nil {
		return nil
	}
	for i := range op.Parameters {
		if err := resolveSchema(r, owner, op.Parameters[i].Schema); err != nil {
			return fmt.Errorf("parameters/%s: %w", op.Parameters[i].Name, err)
		}
	}
	if err := resolveSchema(r, owner, op.RequestBody); err != nil {
		return fmt.Errorf("requestBody: %w", err)
	}
	for i := range op.Responses {
		if err := resolveResponse(r, owner, &op.Responses[i]); err != nil {
			return fmt.Errorf("responses/%s: %w", op.Responses[i].Code, err)
		}
	}
	return nil
}

func resolveResponse(r *Resolver, owner *model.Spec, resp *model.Response) error {
	if resp == nil {
		return nil
	}
	if err := resolveSchema(r, owner, resp.Schema); err != nil {
		return err
	}
	for i := range resp.Headers {
		if err := resolveSchema(r, owner, resp.Headers[i].Schema); err != nil {
			return fmt.Errorf("headers/%s: %w", resp.Headers[i].Name, err)
		}
	}
	return nil
}

// resolveSchema resolves s.Ref if present and recurses into every nested
// schema position. Schemas with no $ref at this node are still walked, in
// case a nested property/item/composition member carries one.
func resolveSchema(r *Resolver, owner *model.Spec, s *model.SchemaRef) error {
	if s == nil {
		return nil
	}
	if s.Ref != "" && s.RefName == "" {
		res, err := r.Resolve(s.Ref, owner, s.RefIsDynamic, nil)
		if err != nil {
			return errcode.Wrap(errcode.EINVAL, fmt.Errorf("resolving $ref %q: %w", s.Ref, err))
		}
		if res.Schema == nil {
			return errcode.Wrap(errcode.EINVAL, fmt.Errorf("$ref %q does not resolve to a schema", s.Ref))
		}
		s.RefName = componentName(s.Ref)
	}
	for _, sub := range s.Properties {
		if err := resolveSchema(r, owner, sub); err != nil {
			return err
		}
	}
	if err := resolveSchema(r, owner, s.Items); err != nil {
		return err
	}
	if err := resolveSchema(r, owner, s.ContentSchema); err != nil {
		return err
	}
	if s.AdditionalProps != nil {
		if err := resolveSchema(r, owner, s.AdditionalProps.Schema); err != nil {
			return err
		}
	}
	for _, sub := range s.PatternProperties {
		if err := resolveSchema(r, owner, sub); err != nil {
			return err
		}
	}
	for _, list := range [][]*model.SchemaRef{s.AllOf, s.OneOf, s.AnyOf} {
		for _, sub := range list {
			if err := resolveSchema(r, owner, sub); err != nil {
				return err
			}
		}
	}
	return resolveSchema(r, owner, s.Not)
}

// componentName extracts the local component key from a `#/components/<kind>/<name>[...]`
// style ref, the common case this compiler produces for same-document refs;
// a cross-document ref with such a pointer fragment yields the same name.
// $anchor-style refs and pointers outside /components/ yield "" — RefName stays unset and
// the Code Emitter falls back to inlining the resolved shape at the call site.
func componentName(ref string) string {
	const marker = "/components/"
	i := strings.Index(ref, marker)
	if i < 0 {
		return ""
	}
	rest := ref[i+len(marker):]
	parts := strings.SplitN(rest, "/", 3)
	if len(parts) < 2 {
		return ""
	}
	return unescapePointerSegment(parts[1])
}
