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
	"regexp"
	"strings"

	"ccdd.dev/ccdd/errcode"
)

var validParameterNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// PathVariables returns the ordered {name} path template variables in
// route, validating brace pairing and parameter name shape and rejecting
// a variable name that appears twice.
func PathVariables(route string) ([]string, error) {
	if route == "" {
		return nil, fmt.Errorf("%w: empty path", errcode.ErrPathParamUndeclared)
	}
	if !strings.HasPrefix(route, "/") {
		return nil, fmt.Errorf("path must start with '/': %q", route)
	}

	var vars []string
	seen := make(map[string]bool)
	for _, seg := range strings.Split(route, "/") {
		if seg == "" || !strings.ContainsAny(seg, "{}") {
			continue
		}
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
			return nil, fmt.Errorf("mismatched braces in path segment %q", seg)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(seg, "{"), "}")
		if name == "" || strings.ContainsAny(name, "{}/") || !validParameterNamePattern.MatchString(name) {
			return nil, fmt.Errorf("invalid path parameter name in segment %q", seg)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate path parameter %q in %q", name, route)
		}
		seen[name] = true
		vars = append(vars, name)
	}
	return vars, nil
}

// templateShape replaces every {var} segment with a placeholder so two
// routes that differ only in variable names compare equal, the check the
// spec requires ("no two sibling templates may differ only in variable
// names").
func templateShape(route string) string {
	segs := strings.Split(route, "/")
	for i, s := range segs {
		if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
			segs[i] = "{}"
		}
	}
	return strings.Join(segs, "/")
}

// CheckSiblingTemplates verifies that no two of routes collide once their
// path variable names are erased.
func CheckSiblingTemplates(routes []string) error {
	shapes := make(map[string]string, len(routes))
	for _, r := range routes {
		shape := templateShape(r)
		if other, exists := shapes[shape]; exists && other != r {
			return fmt.Errorf("%w: %q and %q", errcode.ErrPathTemplateMismatch, other, r)
		}
		shapes[shape] = r
	}
	return nil
}
