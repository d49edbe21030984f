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

package parser

import "fillmore-labs.com/kdulint/internal/ast"

var keywordTypes = map[string]bool{
	"string": true, "number": true, "boolean": true, "any": true, "unknown": true, "never": true,
	"void": true, "undefined": true, "null": true, "object": true, "symbol": true, "bigint": true,
	"this": true, "intrinsic": true,
}

// parseType parses a TypeScript type.
func (p *scriptParser) parseType() ast.Node {
	p.inType++
	defer func() { p.inType-- }()

	start := p.cur().from

	if t := p.cur(); t.punct("(") || t.punct("<") || t.is(ast.TokenKeyword, "new") ||
		t.is(ast.TokenIdentifier, "abstract") && p.peek(1).is(ast.TokenKeyword, "new") {
		var fn ast.Node
		if p.try(func() bool {
			fn = p.parseFunctionType(start)

			return fn != nil
		}) {
			return fn
		}
	}

	check := p.parseUnionType()

	if p.noCondTy || !p.isWord("extends") || p.cur().nl {
		return check
	}

	p.next()

	noCond := p.noCondTy
	p.noCondTy = true
	ext := p.parseUnionType()
	p.noCondTy = noCond

	p.expect("?")
	trueType := p.parseType()
	p.expect(":")
	falseType := p.parseType()

	return &ast.TSConditionalType{
		Span: p.span(start), CheckType: check, ExtendsType: ext, TrueType: trueType, FalseType: falseType,
	}
}

func (p *scriptParser) parseFunctionType(start int) ast.Node {
	fn := &ast.TSFunctionType{}

	p.eatWord("abstract")

	if p.eatWord("new") {
		fn.Constructor = true
	}

	if p.isPunct("<") {
		fn.TypeParameters = p.parseTypeParams()
	}

	if !p.isPunct("(") {
		return nil
	}

	fn.Params = p.parseParams()

	if !p.eat("=>") {
		return nil
	}

	fn.ReturnType = p.parseReturnType()
	fn.Span = p.span(start)

	return fn
}

// parseReturnType parses a return type, skipping type predicates.
func (p *scriptParser) parseReturnType() ast.Node {
	if p.isWord("asserts") && (p.peek(1).kind == ast.TokenIdentifier || p.peek(1).is(ast.TokenKeyword, "this")) {
		p.next()

		if !p.peek(1).is(ast.TokenIdentifier, "is") {
			p.next()

			return nil
		}
	}

	if t := p.cur(); (t.kind == ast.TokenIdentifier || t.is(ast.TokenKeyword, "this")) &&
		p.peek(1).is(ast.TokenIdentifier, "is") && !p.peek(1).nl {
		p.next()
		p.next()
	}

	return p.parseType()
}

func (p *scriptParser) parseUnionType() ast.Node {
	start := p.cur().from
	leading := p.eat("|")

	first := p.parseIntersectionType()
	if !p.isPunct("|") {
		if leading {
			return &ast.TSUnionType{Span: p.span(start), Types: []ast.Node{first}}
		}

		return first
	}

	types := []ast.Node{first}
	for p.eat("|") {
		types = append(types, p.parseIntersectionType())
	}

	return &ast.TSUnionType{Span: p.span(start), Types: types}
}

func (p *scriptParser) parseIntersectionType() ast.Node {
	start := p.cur().from
	p.eat("&")

	first := p.parseTypeOperator()
	if !p.isPunct("&") {
		return first
	}

	types := []ast.Node{first}
	for p.eat("&") {
		types = append(types, p.parseTypeOperator())
	}

	return &ast.TSIntersectionType{Span: p.span(start), Types: types}
}

func (p *scriptParser) parseTypeOperator() ast.Node {
	t := p.cur()
	if t.kind == ast.TokenIdentifier && (t.val == "keyof" || t.val == "unique" || t.val == "readonly" || t.val == "infer") &&
		!p.peek(1).punct(")") && !p.peek(1).punct(",") && !p.peek(1).punct(">") && !p.peek(1).punct(";") {
		p.next()

		typ := p.parseTypeOperator()

		return &ast.TSTypeOperator{Span: p.span(t.from), Operator: t.val, TypeAnnotation: typ}
	}

	return p.parsePostfixType()
}

func (p *scriptParser) parsePostfixType() ast.Node {
	start := p.cur().from
	typ := p.parsePrimaryType()

	for p.isPunct("[") && !p.cur().nl {
		p.next()

		if p.eat("]") {
			typ = &ast.TSArrayType{Span: p.span(start), ElementType: typ}

			continue
		}

		index := p.parseType()
		p.expect("]")
		typ = &ast.TSIndexedAccessType{Span: p.span(start), ObjectType: typ, IndexType: index}
	}

	return typ
}

//nolint:gocyclo,cyclop,funlen
func (p *scriptParser) parsePrimaryType() ast.Node {
	t := p.cur()
	start := t.from

	switch t.kind {
	case ast.TokenPunctuator:
		switch t.val {
		case "(":
			p.next()
			typ := p.parseType()
			p.expect(")")

			return typ

		case "{":
			if p.isMappedType() {
				return p.parseMappedType()
			}

			members := p.parseTypeMembers()

			return &ast.TSTypeLiteral{Span: p.span(start), Members: members}

		case "[":
			return p.parseTupleType()

		case "-":
			if nt := p.peek(1); nt.kind == ast.TokenNumeric {
				p.next()
				p.next()

				arg := &ast.Literal{Span: p.span(nt.from), LitKind: ast.LiteralNumber, Value: nt.val, Raw: nt.val}
				lit := &ast.UnaryExpression{Span: p.span(start), Operator: "-", Argument: arg}

				return &ast.TSLiteralType{Span: p.span(start), Literal: lit}
			}
		}

	case ast.TokenString:
		p.next()
		lit := &ast.Literal{Span: p.span(start), LitKind: ast.LiteralString, Value: t.cooked, Raw: t.val}

		return &ast.TSLiteralType{Span: p.span(start), Literal: lit}

	case ast.TokenNumeric:
		p.next()
		lit := &ast.Literal{Span: p.span(start), LitKind: ast.LiteralNumber, Value: t.val, Raw: t.val}

		return &ast.TSLiteralType{Span: p.span(start), Literal: lit}

	case ast.TokenTemplate:
		if t.part == tmplFull || t.part == tmplHead {
			return p.parseTemplateType()
		}

	case ast.TokenKeyword:
		switch t.val {
		case "true", "false":
			p.next()
			lit := &ast.Literal{Span: p.span(start), LitKind: ast.LiteralBoolean, Value: t.val, Raw: t.val}

			return &ast.TSLiteralType{Span: p.span(start), Literal: lit}

		case "null", "this", "void":
			p.next()

			return &ast.TSKeywordType{Span: p.span(start), Keyword: t.val}

		case "typeof":
			p.next()

			q := &ast.TSTypeQuery{ExprName: p.parseEntityName()}
			if p.isPunct("<") && !p.cur().nl {
				q.TypeArguments = p.parseTypeArgs()
			}

			q.Span = p.span(start)

			return q

		case "import":
			p.next()
			p.expect("(")
			p.parseType()
			p.expect(")")

			var name ast.Node = &ast.Identifier{Span: p.span(start), Name: "import"}
			for p.eat(".") {
				right, _ := p.identName()
				name = &ast.TSQualifiedName{Span: p.span(start), Left: name, Right: right}
			}

			ref := &ast.TSTypeReference{TypeName: name}
			if p.isPunct("<") {
				ref.TypeArguments = p.parseTypeArgs()
			}

			ref.Span = p.span(start)

			return ref

		case "const":
			p.next() // `as const`

			return &ast.TSTypeReference{Span: p.span(start), TypeName: &ast.Identifier{Span: p.span(start), Name: "const"}}
		}

	case ast.TokenIdentifier:
		if keywordTypes[t.val] && !p.peek(1).punct(".") {
			p.next()

			return &ast.TSKeywordType{Span: p.span(start), Keyword: t.val}
		}

		ref := &ast.TSTypeReference{TypeName: p.parseEntityName()}
		if p.isPunct("<") && !p.cur().nl {
			ref.TypeArguments = p.parseTypeArgs()
		}

		ref.Span = p.span(start)

		return ref
	}

	p.unexpected()

	return nil
}

// parseEntityName parses `A.B.C`.
func (p *scriptParser) parseEntityName() ast.Node {
	start := p.cur().from

	var name ast.Node
	if id, ok := p.identName(); ok {
		name = id
	} else {
		p.unexpected()

		return nil
	}

	for p.isPunct(".") {
		p.next()

		right, ok := p.identName()
		if !ok {
			p.unexpected()

			break
		}

		name = &ast.TSQualifiedName{Span: p.span(start), Left: name, Right: right}
	}

	return name
}

func (p *scriptParser) parseTemplateType() ast.Node {
	start := p.cur().from

	t := p.next()

	lit := &ast.TemplateLiteral{}
	lit.Quasis = append(lit.Quasis, p.quasi(t))

	for t.part == tmplHead || t.part == tmplMiddle {
		lit.Expressions = append(lit.Expressions, p.parseType())

		nt := p.cur()
		if nt.kind != ast.TokenTemplate || nt.part != tmplMiddle && nt.part != tmplTail {
			p.errorf(nt.from, "unterminated template literal type")

			break
		}

		t = p.next()
		lit.Quasis = append(lit.Quasis, p.quasi(t))
	}

	lit.Span = p.span(start)

	return &ast.TSLiteralType{Span: p.span(start), Literal: lit}
}

func (p *scriptParser) parseTupleType() ast.Node {
	start := p.next().from

	var elems []ast.Node
	for !p.isPunct("]") && !p.eof() {
		s := p.cur().from

		switch {
		case p.eat("..."):
			if p.cur().kind == ast.TokenIdentifier && p.peek(1).punct(":") {
				p.next()
				p.next()
			}

			typ := p.parseType()
			elems = append(elems, &ast.TSRestType{Span: p.span(s), TypeAnnotation: typ})

		case p.cur().kind == ast.TokenIdentifier && (p.peek(1).punct(":") || p.peek(1).punct("?") && p.peek(2).punct(":")):
			label := p.ident()
			optional := p.eat("?")
			p.expect(":")

			typ := p.parseType()
			elems = append(elems, &ast.TSNamedTupleMember{Span: p.span(s), Label: label, ElementType: typ, Optional: optional})

		default:
			typ := p.parseType()
			p.eat("?")

			elems = append(elems, typ)
		}

		if !p.isPunct("]") && !p.expect(",") {
			break
		}
	}

	p.expect("]")

	return &ast.TSTupleType{Span: p.span(start), ElementTypes: elems}
}

func (p *scriptParser) isMappedType() bool {
	i := 1
	if t := p.peek(i); t.punct("+") || t.punct("-") {
		i++
	}

	if p.peek(i).is(ast.TokenIdentifier, "readonly") {
		i++
	}

	return p.peek(i).punct("[") && p.peek(i+1).kind == ast.TokenIdentifier && p.peek(i+2).is(ast.TokenKeyword, "in")
}

func (p *scriptParser) parseMappedType() ast.Node {
	start := p.next().from // {

	m := &ast.TSMappedType{}
	if p.eat("+") || p.eat("-") || p.isWord("readonly") {
		p.eatWord("readonly")

		m.Readonly = true
	}

	p.expect("[")

	ps := p.cur().from
	name := p.ident()
	p.eatWord("in")
	constraint := p.parseType()
	m.TypeParameter = &ast.TSTypeParameter{Span: p.span(ps), Name: name, Constraint: constraint}

	if p.eatWord("as") {
		m.NameType = p.parseType()
	}

	p.expect("]")

	if p.eat("+") || p.eat("-") || p.isPunct("?") {
		p.expect("?")

		m.Optional = true
	}

	if p.eat(":") {
		m.TypeAnnotation = p.parseType()
	}

	p.eat(";")
	p.expect("}")
	m.Span = p.span(start)

	return m
}

// parseTypeMembers parses the braces of a type literal or interface body.
//
//nolint:gocyclo,cyclop,funlen
func (p *scriptParser) parseTypeMembers() []ast.Node {
	p.expect("{")

	var members []ast.Node
	for !p.isPunct("}") && !p.eof() {
		before := p.i
		s := p.cur().from

		readonly := false
		if p.isWord("readonly") && startsKey(p.peek(1)) && !p.peek(1).nl {
			p.next()

			readonly = true
		}

		switch {
		case p.isPunct("(") || p.isPunct("<"):
			sig := &ast.TSCallSignature{}
			if p.isPunct("<") {
				sig.TypeParameters = p.parseTypeParams()
			}

			sig.Params = p.parseParams()
			if p.eat(":") {
				sig.ReturnType = p.parseReturnType()
			}

			sig.Span = p.span(s)
			members = append(members, sig)

		case p.isWord("new") && (p.peek(1).punct("(") || p.peek(1).punct("<")):
			p.next()

			sig := &ast.TSCallSignature{}
			if p.isPunct("<") {
				sig.TypeParameters = p.parseTypeParams()
			}

			sig.Params = p.parseParams()
			if p.eat(":") {
				sig.ReturnType = p.parseType()
			}

			sig.Span = p.span(s)
			members = append(members, sig)

		case p.isPunct("[") && p.peek(1).kind == ast.TokenIdentifier && p.peek(2).punct(":"):
			sig := p.parseIndexSignature(s)
			sig.Readonly = readonly
			members = append(members, sig)

		default:
			key, computed := p.parsePropertyKey()
			optional := p.eat("?")

			if p.isPunct("(") || p.isPunct("<") {
				sig := &ast.TSMethodSignature{Key: key, Computed: computed, Optional: optional}
				if p.isPunct("<") {
					sig.TypeParameters = p.parseTypeParams()
				}

				sig.Params = p.parseParams()
				if p.eat(":") {
					sig.ReturnType = p.parseReturnType()
				}

				sig.Span = p.span(s)
				members = append(members, sig)
			} else {
				sig := &ast.TSPropertySignature{Key: key, Computed: computed, Optional: optional, Readonly: readonly}
				if p.eat(":") {
					sig.TypeAnnotation = p.parseType()
				}

				sig.Span = p.span(s)
				members = append(members, sig)
			}
		}

		if !p.eat(";") && !p.eat(",") && !p.isPunct("}") && !p.cur().nl {
			p.errorf(p.cur().from, "expected \";\"")
		}

		if p.i == before {
			p.next()
		}
	}

	p.expect("}")

	return members
}

func (p *scriptParser) parseIndexSignature(start int) *ast.TSIndexSignature {
	p.next() // [

	param := p.ident()
	if p.eat(":") && param != nil {
		param.TypeAnnotation = p.parseType()
	}

	p.expect("]")

	sig := &ast.TSIndexSignature{Params: []ast.Node{param}}
	if p.eat(":") {
		sig.TypeAnnotation = p.parseType()
	}

	sig.Span = p.span(start)

	return sig
}

// parseTypeParams parses `<T extends C = D, ...>`.
func (p *scriptParser) parseTypeParams() *ast.TSTypeParameterDeclaration {
	start := p.next().from // <

	decl := &ast.TSTypeParameterDeclaration{}
	for !p.isPunct(">") && !p.eof() {
		s := p.cur().from

		p.eatWord("const")
		p.eatWord("in")
		p.eatWord("out")

		tp := &ast.TSTypeParameter{Name: p.ident()}
		if tp.Name == nil {
			break
		}

		if p.eatWord("extends") {
			tp.Constraint = p.parseType()
		}

		if p.eat("=") {
			tp.Default = p.parseType()
		}

		tp.Span = p.span(s)
		decl.Params = append(decl.Params, tp)

		if !p.isPunct(">") && !p.expect(",") {
			break
		}
	}

	p.expectClose()
	decl.Span = p.span(start)

	return decl
}

// parseTypeArgs parses `<A, B>`. It returns nil when the list is malformed.
func (p *scriptParser) parseTypeArgs() *ast.TSTypeParameterInstantiation {
	start := p.next().from // <

	inst := &ast.TSTypeParameterInstantiation{}
	for !p.isPunct(">") && !p.eof() {
		typ := p.parseType()
		if typ == nil {
			return nil
		}

		inst.Params = append(inst.Params, typ)

		if !p.isPunct(">") && !p.eat(",") {
			return nil
		}
	}

	if !p.expectClose() {
		return nil
	}

	inst.Span = p.span(start)

	return inst
}

func (p *scriptParser) parseInterface(start int) ast.Node {
	p.next() // interface

	decl := &ast.TSInterfaceDeclaration{ID: p.ident()}
	if p.isPunct("<") {
		decl.TypeParameters = p.parseTypeParams()
	}

	if p.eatWord("extends") {
		for {
			decl.Extends = append(decl.Extends, p.parsePrimaryType())

			if !p.eat(",") {
				break
			}
		}
	}

	bs := p.cur().from
	members := p.parseTypeMembers()
	decl.Body = &ast.TSInterfaceBody{Span: p.span(bs), Body: members}
	decl.Span = p.span(start)

	return decl
}

func (p *scriptParser) parseTypeAlias(start int) ast.Node {
	p.next() // type

	decl := &ast.TSTypeAliasDeclaration{ID: p.ident()}
	if p.isPunct("<") {
		decl.TypeParameters = p.parseTypeParams()
	}

	p.expect("=")
	decl.TypeAnnotation = p.parseType()
	p.semicolon()
	decl.Span = p.span(start)

	return decl
}
