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

// Package cmdutil holds the small amount of plumbing shared by every
// cmd/ entry point: sniffing a JSON-or-YAML input file and running it
// through the Loader. None of this is spec surface on its own; it
// exists so schema2code/code2schema/schema2tests/to_docs_json don't
// each duplicate the same dozen lines.
package cmdutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"ccdd.dev/ccdd/errcode"
	"ccdd.dev/ccdd/internal/loader"
	"ccdd.dev/ccdd/internal/model"
	"ccdd.dev/ccdd/internal/registry"
)

// ReadDocument reads path and returns it as JSON bytes, choosing the
// decoder by file extension — the front-end sniff SPEC_FULL.md's
// dependency table describes for gopkg.in/yaml.v3: a .yaml/.yml file is
// decoded as YAML and re-encoded as JSON; any other file is returned as
// read.
func ReadDocument(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errcode.Wrap(errcode.EIO, err)
	}
	if !isYAMLExt(path) {
		return raw, nil
	}
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errcode.Wrap(errcode.EINVAL, fmt.Errorf("parsing %s: %w", path, err))
	}
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, errcode.Wrap(errcode.EINVAL, err)
	}
	return jsonBytes, nil
}

func isYAMLExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// LoadSpec reads path (JSON or YAML) and loads it into a fresh
// registry, returning the resolved Spec. Warnings collected along the
// way are printed to stderr, not returned.
func LoadSpec(path string) (*model.Spec, error) {
	raw, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	reg := registry.New()
	l := loader.New(reg)
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	spec, err := l.Load(raw, "file://"+abs)
	if err != nil {
		return nil, err
	}
	for _, w := range l.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s: %s: %s\n", w.Code(), w.Path(), w.Message())
	}
	return spec, nil
}
