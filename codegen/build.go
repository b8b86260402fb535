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

package codegen

import (
	"io"
	"strings"
)

// WriteCMakeLists emits the client SDK build's CMakeLists.txt, per §4.J's
// "Build target": conditionally links WinHTTP+crypt32 on Windows and
// libcurl+OpenSSL elsewhere, finds Parson, and registers install/export
// rules. It is deliberately not parametric over build system beyond these
// two transport targets, matching the spec's own scope limit.
func WriteCMakeLists(w io.Writer, project string, extraSources []string) error {
	c := &checkedWriter{w: w}
	sources := append([]string{project + ".c"}, extraSources...)

	c.printf("cmake_minimum_required(VERSION 3.16)\n")
	c.printf("project(%s C)\n\n", project)
	c.raw("set(CMAKE_C_STANDARD 11)\n")
	c.raw("set(CMAKE_C_STANDARD_REQUIRED ON)\n\n")
	c.raw("find_package(parson REQUIRED)\n\n")

	c.printf("add_library(%s\n", project)
	for _, s := range sources {
		c.printf("\t%s\n", s)
	}
	c.raw(")\n\n")

	c.printf("target_link_libraries(%s PUBLIC parson::parson)\n\n", project)

	c.raw("if (WIN32)\n")
	c.printf("\ttarget_link_libraries(%s PUBLIC winhttp crypt32)\n", project)
	c.raw("else()\n")
	c.raw("\tfind_package(CURL REQUIRED)\n")
	c.raw("\tfind_package(OpenSSL REQUIRED)\n")
	c.printf("\ttarget_link_libraries(%s PUBLIC CURL::libcurl OpenSSL::SSL OpenSSL::Crypto)\n", project)
	c.raw("endif()\n\n")

	c.printf("install(TARGETS %s EXPORT %sTargets\n", project, exportName(project))
	c.raw("\tARCHIVE DESTINATION lib\n\tLIBRARY DESTINATION lib\n\tRUNTIME DESTINATION bin)\n")
	c.printf("install(FILES %s.h DESTINATION include)\n", project)
	c.printf("install(EXPORT %sTargets FILE %sConfig.cmake DESTINATION lib/cmake/%s)\n",
		exportName(project), exportName(project), project)

	return c.err
}

func exportName(project string) string {
	parts := strings.Split(project, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}
