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

// Command schema2tests generates a C test suite for a schema2code
// output: `schema2tests <schema.json> <header.h> <out.h>`.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"ccdd.dev/ccdd/codegen"
	"ccdd.dev/ccdd/errcode"
	"ccdd.dev/ccdd/internal/cmdutil"
)

func main() {
	flag.Parse()
	if flag.NArg() != 3 {
		log.Fatalf("usage: schema2tests <schema.json> <header.h> <out.h>")
	}
	schemaPath, headerPath, outPath := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	spec, err := cmdutil.LoadSpec(schemaPath)
	if err != nil {
		log.Printf("load: %v", err)
		os.Exit(int(errcode.From(err)))
	}

	base := strings.TrimSuffix(filepath.Base(headerPath), filepath.Ext(headerPath))

	out, err := os.Create(outPath)
	if err != nil {
		log.Printf("create %s: %v", outPath, err)
		os.Exit(int(errcode.EIO))
	}
	defer out.Close()

	if err := codegen.WriteTests(spec, codegen.Options{Basename: base}, base, out); err != nil {
		log.Printf("write tests: %v", err)
		os.Exit(int(errcode.From(err)))
	}
}
