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

// Package security validates model.SecurityScheme/OAuthFlows values beyond
// the structural required-field checks the Loader already performs, and
// optionally sanity-checks an example bearer token against its declared
// bearerFormat.
//
// The JWT check never verifies a signature and never fetches a key: it only
// confirms an example token shaped like a JWT (three dot-separated,
// base64url segments) actually parses as one, to catch a spec author
// pasting a non-JWT example under bearerFormat: JWT. Grounded on
// coregx-fursy's middleware/jwt.go, which uses the same
// github.com/golang-jwt/jwt/v5 parser for an analogous "does this look like
// a well-formed token" check, minus everything that package does for actual
// request authentication (signature verification, claim validation,
// algorithm confusion defenses) — none of which applies to a static example
// value in a spec document.
package security

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"ccdd.dev/ccdd/errcode"
	"ccdd.dev/ccdd/internal/model"
)

// Config controls opt-in security validation. The zero value performs no
// extra checks beyond what the Loader already enforces structurally.
type Config struct {
	// ValidateExampleBearerTokens, when true, parses any example value
	// given for an http/bearer scheme with bearerFormat: JWT and rejects
	// one that doesn't decode as a three-segment JWT. Off by default: it
	// requires no network or key material, but still costs a parse per
	// scheme and most specs don't carry example tokens at all.
	ValidateExampleBearerTokens bool
}

// ValidateScheme runs the Config's opt-in checks against scheme. example is
// the scheme's associated example bearer token, if the spec document
// supplied one via an x-example extension or a parameter/header example;
// pass "" when none is available.
func ValidateScheme(cfg Config, scheme *model.SecurityScheme, example string) error {
	if scheme == nil {
		return nil
	}
	if cfg.ValidateExampleBearerTokens && isBearerJWT(scheme) && example != "" {
		if err := ValidateExampleBearerToken(example); err != nil {
			return fmt.Errorf("security scheme %q: %w", scheme.Name, err)
		}
	}
	return nil
}

func isBearerJWT(scheme *model.SecurityScheme) bool {
	return scheme.Type == "http" && scheme.Scheme == "bearer" && scheme.BearerFormat == "JWT"
}

// ValidateExampleBearerToken confirms token decodes as a JWT without
// verifying its signature: it rejects the "none" algorithm outright (an
// example token is never a license to accept unsigned tokens at runtime)
// and otherwise only checks the token parses into header+claims+signature.
func ValidateExampleBearerToken(token string) error {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return errcode.Wrap(errcode.EINVAL, fmt.Errorf("example bearer token is not a well-formed JWT: %w", err))
	}
	if parsed.Method.Alg() == "none" {
		return errcode.Wrap(errcode.EINVAL, fmt.Errorf("example bearer token uses the forbidden \"none\" algorithm"))
	}
	return nil
}
