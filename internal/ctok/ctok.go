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

// Package ctok implements the reverse, C-header-to-JSON-Schema direction's
// tokenizer (spec.md §1 calls this an external collaborator, "a
// straightforward delegation to a single well-defined library" — here
// that library is the standard library's own text/scanner, rather than
// a hand-rolled lexer). It recognizes exactly the subset of C that
// codegen itself emits: top-level `struct Name { ... };` and
// `enum Name { ... };` declarations, forward declarations, and the
// §4.J field-type table's small set of declared shapes. It is not a
// general C parser; anything outside that subset (function bodies,
// macros, typedefs) is skipped.
package ctok

import (
	"bufio"
	"io"
	"strings"
	"text/scanner"

	"ccdd.dev/ccdd/errcode"
)

// EnumDecl is a parsed `enum Name { A, B, ... };` declaration.
type EnumDecl struct {
	Name    string
	Members []string
}

// Field is one member of a parsed struct: its declared C type, broken
// down enough to invert §4.J's type-mapping table.
type Field struct {
	Name      string
	BaseIdent string // "int"/"long"/"double"/"char"/<struct ref name>/<enum ref name>
	IsStruct  bool
	IsEnum    bool
	Stars     int // pointer depth, disambiguates scalar vs array per cFieldType's table
	Optional  bool
}

// StructDecl is a parsed `struct Name { ... };` declaration.
type StructDecl struct {
	Name   string
	Fields []Field
}

// Parsed holds every top-level declaration recognized in a header, in
// the order encountered.
type Parsed struct {
	Structs []StructDecl
	Enums   []EnumDecl
}

// Parse tokenizes r (a C header) and recognizes its struct/enum
// declarations.
func Parse(r io.Reader) (*Parsed, error) {
	stripped, err := stripDirectives(r)
	if err != nil {
		return nil, errcode.Wrap(errcode.EIO, err)
	}

	var s scanner.Scanner
	s.Init(strings.NewReader(stripped))
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings | scanner.ScanChars | scanner.ScanComments | scanner.SkipComments
	s.Error = func(*scanner.Scanner, string) {} // malformed tokens outside our subset are simply skipped

	p := &Parsed{}
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		switch s.TokenText() {
		case "struct":
			if sd, ok := parseStruct(&s); ok {
				p.Structs = append(p.Structs, sd)
			}
		case "enum":
			if ed, ok := parseEnum(&s); ok {
				p.Enums = append(p.Enums, ed)
			}
		}
	}
	return p, nil
}

// stripDirectives removes preprocessor lines (#include, #ifdef, ...) so
// the scanner never has to special-case '#'; this module's own emitted
// headers only use directives for include guards and optional guard
// macros, neither of which carries schema information.
func stripDirectives(r io.Reader) (string, error) {
	var b strings.Builder
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// parseStruct expects the scanner positioned just after the "struct"
// keyword. It returns ok=false for forward declarations (no body).
func parseStruct(s *scanner.Scanner) (StructDecl, bool) {
	if s.Scan() != scanner.Ident {
		return StructDecl{}, false
	}
	name := s.TokenText()

	s.Scan()
	switch s.TokenText() {
	case ";":
		return StructDecl{}, false // forward declaration
	case "{":
		// fall through to body parsing
	default:
		return StructDecl{}, false
	}

	sd := StructDecl{Name: name}
	counts := map[string]bool{}
	var buf []string
	for {
		tok := s.Scan()
		if tok == scanner.EOF {
			return sd, true
		}
		text := s.TokenText()
		switch text {
		case "}":
			// consume trailing ';'
			if s.Peek() == ';' {
				s.Scan()
			}
			return sd, true
		case ";":
			if f, kind, ref, ok := classifyField(buf); ok {
				switch kind {
				case fieldKindCount:
					counts[ref] = true
				case fieldKindPresence:
					for i := range sd.Fields {
						if sd.Fields[i].Name == ref {
							sd.Fields[i].Optional = true
						}
					}
				default:
					sd.Fields = append(sd.Fields, f)
				}
			}
			buf = buf[:0]
		default:
			buf = append(buf, text)
		}
	}
}

// parseEnum expects the scanner positioned just after the "enum"
// keyword.
func parseEnum(s *scanner.Scanner) (EnumDecl, bool) {
	if s.Scan() != scanner.Ident {
		return EnumDecl{}, false
	}
	name := s.TokenText()

	if s.Scan(); s.TokenText() != "{" {
		return EnumDecl{}, false
	}

	ed := EnumDecl{Name: name}
	expectMember := true
	for {
		tok := s.Scan()
		if tok == scanner.EOF {
			return ed, true
		}
		text := s.TokenText()
		switch {
		case text == "}":
			if s.Peek() == ';' {
				s.Scan()
			}
			return ed, true
		case text == ",":
			expectMember = true
		case text == "=":
			// skip the explicit value token (e.g. "=0")
			s.Scan()
			expectMember = false
		case expectMember && tok == scanner.Ident:
			ed.Members = append(ed.Members, text)
			expectMember = false
		}
	}
}

// fieldKind distinguishes classifyField's three possible outcomes: an
// ordinary field, a `size_t n_<x>` count-field marker, or a synthesized
// `int <field>_set;` presence flag that folds back into an already-seen
// field rather than becoming a property of its own.
type fieldKind int

const (
	fieldKindField fieldKind = iota
	fieldKindCount
	fieldKindPresence
)

// classifyField turns the raw token run preceding a ';' inside a struct
// body into a Field (kind == fieldKindField), a count-field marker
// (kind == fieldKindCount, ref == the counted field's name), a presence
// flag (kind == fieldKindPresence, ref == the flagged field's name), or
// rejects it (ok=false) when it can't be recognized.
func classifyField(tokens []string) (f Field, kind fieldKind, ref string, ok bool) {
	if len(tokens) < 2 {
		return Field{}, fieldKindField, "", false
	}
	name := tokens[len(tokens)-1]
	typeTokens := tokens[:len(tokens)-1]

	if strings.HasSuffix(name, "_set") && len(typeTokens) == 1 && typeTokens[0] == "int" {
		return Field{}, fieldKindPresence, strings.TrimSuffix(name, "_set"), true
	}

	var filtered []string
	stars := 0
	for _, t := range typeTokens {
		switch t {
		case "const":
			continue
		case "*":
			stars++
		default:
			filtered = append(filtered, t)
		}
	}

	if len(filtered) == 1 && filtered[0] == "size_t" && strings.HasPrefix(name, "n_") {
		return Field{}, fieldKindCount, strings.TrimPrefix(name, "n_"), true
	}

	switch {
	case len(filtered) == 2 && filtered[0] == "struct":
		return Field{Name: name, BaseIdent: filtered[1], IsStruct: true, Stars: stars}, fieldKindField, "", true
	case len(filtered) == 2 && filtered[0] == "enum":
		return Field{Name: name, BaseIdent: filtered[1], IsEnum: true, Stars: stars}, fieldKindField, "", true
	case len(filtered) == 1:
		return Field{Name: name, BaseIdent: filtered[0], Stars: stars}, fieldKindField, "", true
	default:
		return Field{}, fieldKindField, "", false
	}
}
