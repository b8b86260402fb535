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
	"fmt"
	"io"

	"ccdd.dev/ccdd/errcode"
)

// checkedWriter mirrors the generated C code's own CHECK_IO discipline
// (§7: "every write is checked; first failure short-circuits") at the Go
// layer emitting that C code: once a Write fails, every subsequent
// printf becomes a no-op and the recorded error stays in the err field.
type checkedWriter struct {
	w   io.Writer
	err error
}

func (c *checkedWriter) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	if _, err := fmt.Fprintf(c.w, format, args...); err != nil {
		c.err = errcode.Wrap(errcode.EIO, err)
	}
}

func (c *checkedWriter) raw(s string) {
	if c.err != nil {
		return
	}
	if _, err := io.WriteString(c.w, s); err != nil {
		c.err = errcode.Wrap(errcode.EIO, err)
	}
}

func (c *checkedWriter) ifdef(guard string) {
	if guard != "" {
		c.printf("#ifdef %s\n", guard)
	}
}

func (c *checkedWriter) endif(guard string) {
	if guard != "" {
		c.printf("#endif /* %s */\n", guard)
	}
}
