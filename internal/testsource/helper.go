// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package testsource provides utilities for parsing component sources in tests.
//
// It is designed to simplify testing of the kdulint substrate by handling common
// boilerplate code for wrapping fragments into component files and locating nodes.
package testsource

import (
	"bytes"
	"go/token"
	"testing"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/inspector"
	"fillmore-labs.com/kdulint/internal/parser"
)

const filename = "test.kdu"

// Parse parses a complete component source and fails the test on parse errors.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed component file.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// ParseLenient parses a component source, returning parse errors with the file.
func ParseLenient(tb testing.TB, src string) (*ast.File, error) {
	tb.Helper()

	return parser.ParseFile(token.NewFileSet(), filename, []byte(src))
}

// Script parses a script fragment wrapped in a `<script>` block.
func Script(tb testing.TB, src string) *ast.File {
	tb.Helper()

	_, f := Parse(tb, wrapSource("<script>\n", src, "\n</script>\n"))

	return f
}

// Setup parses a script fragment wrapped in a `<script setup lang="ts">` block.
func Setup(tb testing.TB, src string) *ast.File {
	tb.Helper()

	_, f := Parse(tb, wrapSource("<script setup lang=\"ts\">\n", src, "\n</script>\n"))

	return f
}

// Template parses a markup fragment wrapped in a `<template>` block.
func Template(tb testing.TB, src string) *ast.File {
	tb.Helper()

	_, f := Parse(tb, wrapSource("<template>", src, "</template>\n"))

	return f
}

func wrapSource(header, src, suffix string) string {
	var srcFile bytes.Buffer
	srcFile.Grow(len(header) + len(src) + len(suffix))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return srcFile.String()
}

// Inspector builds the node arena of a parsed file.
func Inspector(f *ast.File) *inspector.Inspector {
	return inspector.New(f.Document, f.Program)
}

// Find returns the first node of kind k in document order whose source text is text.
func Find(tb testing.TB, f *ast.File, k ast.Kind, text string) ast.Node {
	tb.Helper()

	for _, root := range []ast.Node{f.Document, f.Program} {
		for n := range ast.Preorder(root) {
			if n.Kind() == k && f.Text(n) == text {
				return n
			}
		}
	}

	tb.Fatalf("Can't find %s %q", k, text)

	return nil
}

// Identifier returns the n-th (zero based) identifier named name in document order.
func Identifier(tb testing.TB, f *ast.File, name string, n int) *ast.Identifier {
	tb.Helper()

	for _, root := range []ast.Node{f.Document, f.Program} {
		for node := range ast.Preorder(root) {
			if id, ok := node.(*ast.Identifier); ok && id.Name == name {
				if n == 0 {
					return id
				}
				n--
			}
		}
	}

	tb.Fatalf("Can't find identifier %q", name)

	return nil
}
