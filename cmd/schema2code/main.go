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

// Command schema2code turns a JSON Schema / OpenAPI document into a C
// header/source pair: `schema2code <schema.json> <basename>` emits
// <basename>.h and <basename>.c next to it.
package main

import (
	"flag"
	"log"
	"os"

	"ccdd.dev/ccdd/codegen"
	"ccdd.dev/ccdd/errcode"
	"ccdd.dev/ccdd/internal/cmdutil"
)

func main() {
	enumGuard := flag.String("guard-enum", "", "macro guarding emitted enum blocks")
	jsonGuard := flag.String("guard-json", "", "macro guarding emitted JSON (de)serialization blocks")
	utilsGuard := flag.String("guard-utils", "", "macro guarding emitted lifecycle/utility blocks")
	cmake := flag.Bool("cmake", false, "also emit CMakeLists.txt in the current directory")
	flag.Parse()

	if flag.NArg() != 2 {
		log.Fatalf("usage: schema2code <schema.json> <basename>")
	}
	schemaPath, basename := flag.Arg(0), flag.Arg(1)

	spec, err := cmdutil.LoadSpec(schemaPath)
	if err != nil {
		log.Printf("load: %v", err)
		os.Exit(int(errcode.From(err)))
	}

	opts := codegen.Options{
		Basename:   basename,
		EnumGuard:  *enumGuard,
		JSONGuard:  *jsonGuard,
		UtilsGuard: *utilsGuard,
	}

	headerFile, err := os.Create(basename + ".h")
	if err != nil {
		log.Printf("create header: %v", err)
		os.Exit(int(errcode.EIO))
	}
	defer headerFile.Close()

	sourceFile, err := os.Create(basename + ".c")
	if err != nil {
		log.Printf("create source: %v", err)
		os.Exit(int(errcode.EIO))
	}
	defer sourceFile.Close()

	if err := codegen.Emit(spec, opts, headerFile, sourceFile); err != nil {
		log.Printf("emit: %v", err)
		os.Exit(int(errcode.From(err)))
	}

	if *cmake {
		cmakeFile, err := os.Create("CMakeLists.txt")
		if err != nil {
			log.Printf("create CMakeLists.txt: %v", err)
			os.Exit(int(errcode.EIO))
		}
		defer cmakeFile.Close()
		if err := codegen.WriteCMakeLists(cmakeFile, basename, nil); err != nil {
			log.Printf("emit CMakeLists.txt: %v", err)
			os.Exit(int(errcode.From(err)))
		}
	}
}
