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

package ctok

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHeader = `
#ifndef PET_H
#define PET_H

struct Owner;

enum Status {
	Status_UNKNOWN = 0,
	Status_ACTIVE,
	Status_RETIRED
};

struct Pet {
	char *name;
	int name_set;
	long age;
	struct Owner *owner;
	enum Status status;
	char **nicknames;
	size_t n_nicknames;
};

#endif
`

func TestParse_RecognizesStructAndEnum(t *testing.T) {
	t.Parallel()

	p, err := Parse(strings.NewReader(sampleHeader))
	require.NoError(t, err)

	require.Len(t, p.Enums, 1)
	assert.Equal(t, "Status", p.Enums[0].Name)
	assert.Equal(t, []string{"Status_UNKNOWN", "Status_ACTIVE", "Status_RETIRED"}, p.Enums[0].Members)

	require.Len(t, p.Structs, 1)
	pet := p.Structs[0]
	assert.Equal(t, "Pet", pet.Name)
}

func TestParse_ForwardDeclarationSkipped(t *testing.T) {
	t.Parallel()

	p, err := Parse(strings.NewReader(sampleHeader))
	require.NoError(t, err)

	for _, sd := range p.Structs {
		assert.NotEqual(t, "Owner", sd.Name)
	}
}

func TestParse_PresenceFlagFoldsIntoField(t *testing.T) {
	t.Parallel()

	p, err := Parse(strings.NewReader(sampleHeader))
	require.NoError(t, err)
	require.Len(t, p.Structs, 1)

	fields := p.Structs[0].Fields
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	// The _set flag must fold into the preceding "name" field rather
	// than surviving as its own bogus field.
	_, hasSetField := byName["name_set"]
	assert.False(t, hasSetField)

	name, ok := byName["name"]
	require.True(t, ok)
	assert.True(t, name.Optional)
	assert.Equal(t, "char", name.BaseIdent)

	age, ok := byName["age"]
	require.True(t, ok)
	assert.False(t, age.Optional)
}

func TestParse_CountFieldConsumedNotEmitted(t *testing.T) {
	t.Parallel()

	p, err := Parse(strings.NewReader(sampleHeader))
	require.NoError(t, err)
	require.Len(t, p.Structs, 1)

	for _, f := range p.Structs[0].Fields {
		assert.NotEqual(t, "n_nicknames", f.Name)
	}
}

func TestParse_ClassifiesStructAndEnumRefsAndArrays(t *testing.T) {
	t.Parallel()

	p, err := Parse(strings.NewReader(sampleHeader))
	require.NoError(t, err)
	require.Len(t, p.Structs, 1)

	byName := make(map[string]Field)
	for _, f := range p.Structs[0].Fields {
		byName[f.Name] = f
	}

	owner := byName["owner"]
	assert.True(t, owner.IsStruct)
	assert.Equal(t, "Owner", owner.BaseIdent)
	assert.Equal(t, 1, owner.Stars)

	status := byName["status"]
	assert.True(t, status.IsEnum)
	assert.Equal(t, "Status", status.BaseIdent)
	assert.Equal(t, 0, status.Stars)

	nicknames := byName["nicknames"]
	assert.Equal(t, "char", nicknames.BaseIdent)
	assert.Equal(t, 2, nicknames.Stars)
}
