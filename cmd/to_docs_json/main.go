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

// Command to_docs_json emits per-operation code snippets as JSON, for a
// documentation tool to render: `to_docs_json [-i spec] [--no-imports]
// [--no-wrapping]`.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"golang.org/x/time/rate"

	"ccdd.dev/ccdd/errcode"
	"ccdd.dev/ccdd/export"
	"ccdd.dev/ccdd/internal/cmdutil"
	"ccdd.dev/ccdd/internal/model"
)

// snippet is one operation's documentation-ready code example.
type snippet struct {
	OperationID string `json:"operationId"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Summary     string `json:"summary,omitempty"`
	Code        string `json:"code"`
}

func main() {
	specPath := flag.String("i", "openapi.json", "input OpenAPI/JSON-Schema document")
	noImports := flag.Bool("no-imports", false, "omit the #include line from each snippet")
	noWrapping := flag.Bool("no-wrapping", false, "emit the bare call expression instead of a full statement")
	remoteRefs := flag.Bool("remote-refs", false, "rate-limit snippet emission as if resolving remote $refs (no network traffic is ever sent; see spec's Non-goals)")
	rateFlag := flag.Float64("rate", 5, "requests/sec cap applied only when --remote-refs is set")
	uiPath := flag.String("ui-path", "/docs", "UI mount path recorded in the output's ui config")
	flag.Parse()

	spec, err := cmdutil.LoadSpec(*specPath)
	if err != nil {
		log.Printf("load: %v", err)
		os.Exit(int(errcode.From(err)))
	}

	var limiter *rate.Limiter
	if *remoteRefs {
		limiter = rate.NewLimiter(rate.Limit(*rateFlag), 1)
	}

	snippets := buildSnippets(spec, *noImports, *noWrapping, limiter)

	out := struct {
		UI       export.UIConfig `json:"ui"`
		Snippets []snippet       `json:"snippets"`
	}{
		UI:       export.UIConfig{SpecPath: *specPath, UIPath: *uiPath, Title: spec.Info.Title},
		Snippets: snippets,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Printf("marshal: %v", err)
		os.Exit(int(errcode.EINVAL))
	}
	fmt.Println(string(data))
}

func buildSnippets(spec *model.Spec, noImports, noWrapping bool, limiter *rate.Limiter) []snippet {
	var routes []string
	for route := range spec.Paths {
		routes = append(routes, route)
	}
	sort.Strings(routes)

	var out []snippet
	for _, route := range routes {
		item := spec.Paths[route]
		ops := make([]*model.Operation, 0, len(item.Operations)+len(item.AdditionalOperations))
		for _, verb := range model.StandardVerbs {
			if op, ok := item.Operations[verb]; ok {
				ops = append(ops, op)
			}
		}
		ops = append(ops, item.AdditionalOperations...)

		for _, op := range ops {
			if limiter != nil {
				_ = limiter.Wait(context.Background())
			}
			out = append(out, snippet{
				OperationID: op.OperationID,
				Method:      verbOf(op),
				Path:        route,
				Summary:     op.Summary,
				Code:        codeFor(op, noImports, noWrapping),
			})
		}
	}
	return out
}

func verbOf(op *model.Operation) string {
	if op.Method != "" {
		return op.Method
	}
	return op.Verb
}

// codeFor renders the call a generated SDK client makes for op, in the
// shape schema2code's emitted lifecycle/HTTP functions expect.
func codeFor(op *model.Operation, noImports, noWrapping bool) string {
	call := fmt.Sprintf("%s(client, &req, &resp)", op.OperationID)
	if !noWrapping {
		call = fmt.Sprintf("int rc = %s;\nif (rc != 0) { /* handle error */ }", call)
	}
	if noImports {
		return call
	}
	return "#include \"client.h\"\n" + call
}
