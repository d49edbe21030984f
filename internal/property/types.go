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

package property

import (
	"slices"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
)

// typeDecls indexes the interfaces and type aliases declared at the top
// level of a file.
type typeDecls map[string]ast.Node

func declsOf(f *ast.File) typeDecls {
	decls := make(typeDecls)

	if f == nil {
		return decls
	}

	for _, stmt := range f.Program.Body {
		if exp, ok := stmt.(*ast.ExportNamedDeclaration); ok && exp.Declaration != nil {
			stmt = exp.Declaration
		}

		switch d := stmt.(type) {
		case *ast.TSInterfaceDeclaration:
			decls[d.ID.Name] = d
		case *ast.TSTypeAliasDeclaration:
			decls[d.ID.Name] = d
		}
	}

	return decls
}

func typeName(n ast.Node) (string, bool) {
	ref, ok := n.(*ast.TSTypeReference)
	if !ok {
		return "", false
	}

	id, ok := ref.TypeName.(*ast.Identifier)
	if !ok {
		return "", false
	}

	return id.Name, true
}

// members resolves a type to its member signatures. It reports false when
// part of the type cannot be resolved within the file.
func (decls typeDecls) members(n ast.Node, seen map[string]bool) ([]ast.Node, bool) {
	switch t := n.(type) {
	case *ast.TSTypeLiteral:
		return t.Members, true

	case *ast.TSIntersectionType:
		var all []ast.Node

		for _, part := range t.Types {
			m, ok := decls.members(part, seen)
			if !ok {
				return nil, false
			}

			all = append(all, m...)
		}

		return all, true

	case *ast.TSTypeReference:
		name, ok := typeName(t)
		if !ok || seen[name] {
			return nil, false
		}

		seen[name] = true
		defer delete(seen, name)

		switch d := decls[name].(type) {
		case *ast.TSInterfaceDeclaration:
			var all []ast.Node

			for _, ext := range d.Extends {
				m, ok := decls.members(ext, seen)
				if !ok {
					return nil, false
				}

				all = append(all, m...)
			}

			return append(all, d.Body.Body...), true

		case *ast.TSTypeAliasDeclaration:
			return decls.members(d.TypeAnnotation, seen)
		}
	}

	return nil, false
}

// typeProps extracts props from a defineProps type argument.
func typeProps(f *ast.File, typ ast.Node) []*Property {
	decls := declsOf(f)

	members, ok := decls.members(typ, make(map[string]bool))
	if !ok {
		return []*Property{unknown(FormType, typ)}
	}

	props := make([]*Property, 0, len(members))

	for _, m := range members {
		var (
			key       ast.Node
			computed  bool
			optional  bool
			signature ast.Node
		)

		switch s := m.(type) {
		case *ast.TSPropertySignature:
			key, computed, optional, signature = s.Key, s.Computed, s.Optional, s.TypeAnnotation
		case *ast.TSMethodSignature:
			key, computed, optional, signature = s.Key, s.Computed, s.Optional, nil
		default:
			continue
		}

		name, ok := astutil.KeyName(key, computed)
		if !ok {
			props = append(props, unknown(FormType, m))

			continue
		}

		p := known(FormType, name, m, key)
		p.Type = signature
		p.Required = !optional

		if signature != nil {
			p.Types = runtimeTypes(decls, signature, nil)
		} else {
			p.Types = []string{"Function"}
		}

		props = append(props, p)
	}

	return props
}

// typeEmits extracts event names from a defineEmits type argument: call
// signatures `(e: 'change', id: number): void`, property signatures
// `change: [id: number]` and a single function type.
func typeEmits(f *ast.File, typ ast.Node) []*Property {
	if fn, ok := typ.(*ast.TSFunctionType); ok {
		return signatureEmits(fn, fn.Params)
	}

	decls := declsOf(f)

	members, ok := decls.members(typ, make(map[string]bool))
	if !ok {
		return []*Property{unknown(FormType, typ)}
	}

	var emits []*Property

	for _, m := range members {
		switch s := m.(type) {
		case *ast.TSCallSignature:
			emits = append(emits, signatureEmits(s, s.Params)...)

		case *ast.TSPropertySignature:
			if name, ok := astutil.KeyName(s.Key, s.Computed); ok {
				p := known(FormType, name, s, s.Key)
				p.Type = s.TypeAnnotation
				emits = append(emits, p)
			} else {
				emits = append(emits, unknown(FormType, s))
			}
		}
	}

	return emits
}

func signatureEmits(sig ast.Node, params []ast.Node) []*Property {
	if len(params) == 0 {
		return []*Property{unknown(FormType, sig)}
	}

	id, ok := params[0].(*ast.Identifier)
	if !ok || id.TypeAnnotation == nil {
		return []*Property{unknown(FormType, sig)}
	}

	var literals []ast.Node

	switch t := id.TypeAnnotation.(type) {
	case *ast.TSUnionType:
		literals = t.Types
	default:
		literals = []ast.Node{t}
	}

	emits := make([]*Property, 0, len(literals))

	for _, l := range literals {
		lit, ok := l.(*ast.TSLiteralType)
		if !ok {
			emits = append(emits, unknown(FormType, l))

			continue
		}

		name, ok := astutil.StringValue(lit.Literal)
		if !ok {
			emits = append(emits, unknown(FormType, l))

			continue
		}

		p := known(FormType, name, sig, lit)
		p.Type = id.TypeAnnotation
		emits = append(emits, p)
	}

	return emits
}

var keywordTypes = map[string]string{
	"string": "String", "number": "Number", "boolean": "Boolean", "bigint": "BigInt",
	"symbol": "Symbol", "object": "Object",
}

var referenceTypes = map[string]string{
	"Array": "Array", "ReadonlyArray": "Array", "Function": "Function",
	"Record": "Object", "Partial": "Object", "Required": "Object", "Readonly": "Object",
	"Pick": "Object", "Omit": "Object", "Object": "Object",
	"String": "String", "Number": "Number", "Boolean": "Boolean",
}

// runtimeTypes infers the runtime constructors of a type annotation. An
// empty result means any type.
//
//nolint:gocyclo,cyclop
func runtimeTypes(decls typeDecls, n ast.Node, seen map[string]bool) []string {
	var types []string

	add := func(names ...string) {
		for _, name := range names {
			if !slices.Contains(types, name) {
				types = append(types, name)
			}
		}
	}

	switch t := n.(type) {
	case *ast.TSKeywordType:
		if name, ok := keywordTypes[t.Keyword]; ok {
			add(name)
		}

	case *ast.TSLiteralType:
		switch lit := t.Literal.(type) {
		case *ast.Literal:
			switch lit.LitKind {
			case ast.LiteralString:
				add("String")
			case ast.LiteralNumber:
				add("Number")
			case ast.LiteralBoolean:
				add("Boolean")
			}

		case *ast.TemplateLiteral:
			add("String")

		case *ast.UnaryExpression:
			add("Number")
		}

	case *ast.TSArrayType, *ast.TSTupleType:
		add("Array")

	case *ast.TSFunctionType:
		add("Function")

	case *ast.TSTypeLiteral, *ast.TSMappedType, *ast.TSIntersectionType:
		add("Object")

	case *ast.TSUnionType:
		for _, part := range t.Types {
			sub := runtimeTypes(decls, part, seen)
			if len(sub) == 0 && !isNullish(part) {
				return nil
			}

			add(sub...)
		}

	case *ast.TSTypeReference:
		name, ok := typeName(t)
		if !ok {
			return nil
		}

		if rt, ok := referenceTypes[name]; ok {
			add(rt)

			break
		}

		switch d := decls[name].(type) {
		case *ast.TSInterfaceDeclaration:
			add("Object")

		case *ast.TSTypeAliasDeclaration:
			if seen == nil {
				seen = make(map[string]bool)
			}

			if seen[name] {
				return nil
			}

			seen[name] = true
			add(runtimeTypes(decls, d.TypeAnnotation, seen)...)

		default:
			add(name)
		}
	}

	return types
}

func isNullish(n ast.Node) bool {
	k, ok := n.(*ast.TSKeywordType)

	return ok && (k.Keyword == "null" || k.Keyword == "undefined" || k.Keyword == "void")
}
