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

package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccdd.dev/ccdd/errcode"
	"ccdd.dev/ccdd/internal/model"
)

// wellFormedJWT is the canonical jwt.io example token: header {"alg":"HS256","typ":"JWT"},
// signed with a throwaway secret never used for verification here.
const wellFormedJWT = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
	"eyJzdWIiOiIxMjM0NTY3ODkwIiwibmFtZSI6IkpvaG4gRG9lIiwiaWF0IjoxNTE2MjM5MDIyfQ." +
	"SflKxwRJSMeKKF2QT4fwpMeJf36POk6yJV_adQssw5c"

// noneAlgJWT carries alg:"none" and an empty signature segment.
const noneAlgJWT = "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." +
	"eyJzdWIiOiIxMjM0NTY3ODkwIn0."

func TestValidateExampleBearerToken(t *testing.T) {
	t.Parallel()

	t.Run("well-formed JWT accepted", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, ValidateExampleBearerToken(wellFormedJWT))
	})

	t.Run("none algorithm rejected", func(t *testing.T) {
		t.Parallel()
		err := ValidateExampleBearerToken(noneAlgJWT)
		require.Error(t, err)
		assert.Equal(t, errcode.EINVAL, errcode.From(err))
		assert.Contains(t, err.Error(), "forbidden")
	})

	t.Run("non-JWT string rejected", func(t *testing.T) {
		t.Parallel()
		err := ValidateExampleBearerToken("not-a-jwt-at-all")
		require.Error(t, err)
		assert.Equal(t, errcode.EINVAL, errcode.From(err))
		assert.Contains(t, err.Error(), "not a well-formed JWT")
	})

	t.Run("two segments is not a JWT", func(t *testing.T) {
		t.Parallel()
		err := ValidateExampleBearerToken("eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0")
		require.Error(t, err)
		assert.Equal(t, errcode.EINVAL, errcode.From(err))
	})
}

func TestValidateScheme(t *testing.T) {
	t.Parallel()

	bearerJWTScheme := &model.SecurityScheme{Name: "bearerAuth", Type: "http", Scheme: "bearer", BearerFormat: "JWT"}
	bearerOpaqueScheme := &model.SecurityScheme{Name: "bearerAuth", Type: "http", Scheme: "bearer"}
	apiKeyScheme := &model.SecurityScheme{Name: "apiKeyAuth", Type: "apiKey", In: "header"}

	tests := []struct {
		name    string
		cfg     Config
		scheme  *model.SecurityScheme
		example string
		wantErr bool
	}{
		{name: "nil scheme never errors", cfg: Config{ValidateExampleBearerTokens: true}, scheme: nil, example: noneAlgJWT},
		{name: "validation off skips bad example", cfg: Config{}, scheme: bearerJWTScheme, example: noneAlgJWT, wantErr: false},
		{name: "validation on, no example, skips", cfg: Config{ValidateExampleBearerTokens: true}, scheme: bearerJWTScheme, example: "", wantErr: false},
		{name: "validation on, not JWT bearerFormat, skips", cfg: Config{ValidateExampleBearerTokens: true}, scheme: bearerOpaqueScheme, example: "whatever", wantErr: false},
		{name: "validation on, non-bearer scheme type, skips", cfg: Config{ValidateExampleBearerTokens: true}, scheme: apiKeyScheme, example: "whatever", wantErr: false},
		{name: "validation on, well-formed JWT example, passes", cfg: Config{ValidateExampleBearerTokens: true}, scheme: bearerJWTScheme, example: wellFormedJWT, wantErr: false},
		{name: "validation on, none-alg JWT example, rejected", cfg: Config{ValidateExampleBearerTokens: true}, scheme: bearerJWTScheme, example: noneAlgJWT, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateScheme(tt.cfg, tt.scheme, tt.example)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
