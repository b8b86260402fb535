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

// Command code2schema runs the reverse direction: `code2schema <header.h>
// <out.json>` reads a C header's struct/enum declarations and writes
// the equivalent JSON Schema document.
package main

import (
	"flag"
	"log"
	"os"

	"ccdd.dev/ccdd/errcode"
	"ccdd.dev/ccdd/export"
	"ccdd.dev/ccdd/internal/ctok"
)

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatalf("usage: code2schema <header.h> <out.json>")
	}
	headerPath, outPath := flag.Arg(0), flag.Arg(1)

	f, err := os.Open(headerPath)
	if err != nil {
		log.Printf("open: %v", err)
		os.Exit(int(errcode.EIO))
	}
	defer f.Close()

	parsed, err := ctok.Parse(f)
	if err != nil {
		log.Printf("parse: %v", err)
		os.Exit(int(errcode.From(err)))
	}

	schemas, _ := ctok.ToSchemas(parsed)
	if len(schemas) == 0 {
		log.Printf("no struct or enum declarations recognized in %s", headerPath)
		os.Exit(int(errcode.EINVAL))
	}

	data, err := export.WriteSchemaDocument(schemas)
	if err != nil {
		log.Printf("write: %v", err)
		os.Exit(int(errcode.From(err)))
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Printf("write %s: %v", outPath, err)
		os.Exit(int(errcode.EIO))
	}
}
