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

func (p *scriptParser) parseProgram(start, end int) *ast.Program {
	body := p.parseStatements("")
	p.prologue(body)

	return &ast.Program{Span: ast.Span{From: p.pos(start), To: p.pos(end)}, Body: body}
}

// parseStatements parses statements until the closing punctuator or end of input.
func (p *scriptParser) parseStatements(closing string) []ast.Node {
	var list []ast.Node
	for !p.eof() && (closing == "" || !p.isPunct(closing)) {
		before := p.i

		if s := p.parseStatement(); s != nil {
			list = append(list, s)
		}

		if p.i == before {
			p.next()
		}
	}

	return list
}

// prologue marks leading string literal statements as directives.
func (p *scriptParser) prologue(body []ast.Node) {
	for _, s := range body {
		es, ok := s.(*ast.ExpressionStatement)
		if !ok {
			return
		}

		lit, ok := es.Expression.(*ast.Literal)
		if !ok || lit.LitKind != ast.LiteralString || len(lit.Raw) < 2 {
			return
		}

		es.Directive = lit.Raw[1 : len(lit.Raw)-1]
	}
}

func (p *scriptParser) parseBlock() *ast.BlockStatement {
	start := p.cur().from
	if !p.expect("{") {
		return &ast.BlockStatement{Span: p.span(start)}
	}

	body := p.parseStatements("}")
	p.expect("}")

	return &ast.BlockStatement{Span: p.span(start), Body: body}
}

// isLetDeclaration distinguishes `let x` from `let` used as an identifier.
func (p *scriptParser) isLetDeclaration() bool {
	if !p.isWord("let") {
		return false
	}

	nt := p.peek(1)

	return nt.kind == ast.TokenIdentifier || nt.punct("[") || nt.punct("{")
}

//nolint:gocyclo,cyclop,funlen,maintidx
func (p *scriptParser) parseStatement() ast.Node {
	t := p.cur()
	start := t.from

	switch t.kind {
	case ast.TokenPunctuator:
		switch t.val {
		case "{":
			return p.parseBlock()
		case ";":
			p.next()

			return &ast.EmptyStatement{Span: p.span(start)}
		case "@":
			p.parseDecorators()

			return p.parseStatement()
		}

	case ast.TokenKeyword:
		switch t.val {
		case "var", "const":
			if t.val == "const" && p.peek(1).is(ast.TokenKeyword, "enum") {
				p.next()

				return p.parseEnum(start)
			}

			decl := p.parseVar(start)
			p.semicolon()
			decl.Span = p.span(start)

			return decl

		case "function":
			return p.parseFunctionDeclaration(start, false)

		case "class":
			c := p.parseClass()

			return &ast.ClassDeclaration{Span: p.span(start), Class: c}

		case "if":
			return p.parseIf()

		case "for":
			return p.parseFor()

		case "while":
			p.next()
			test := p.parseParenExpression()
			body := p.parseStatement()

			return &ast.WhileStatement{Span: p.span(start), Test: test, Body: body}

		case "do":
			p.next()
			body := p.parseStatement()

			if !p.eatWord("while") {
				p.errorf(p.cur().from, "expected \"while\"")
			}

			test := p.parseParenExpression()
			p.eat(";")

			return &ast.DoWhileStatement{Span: p.span(start), Body: body, Test: test}

		case "return":
			p.next()

			r := &ast.ReturnStatement{}
			if t := p.cur(); !t.nl && startsExpression(t) {
				r.Argument = p.parseExpression()
			}

			p.semicolon()
			r.Span = p.span(start)

			return r

		case "break", "continue":
			p.next()

			var label *ast.Identifier
			if t := p.cur(); !t.nl && t.kind == ast.TokenIdentifier {
				label = p.ident()
			}

			p.semicolon()

			if t.val == "break" {
				return &ast.BreakStatement{Span: p.span(start), Label: label}
			}

			return &ast.ContinueStatement{Span: p.span(start), Label: label}

		case "throw":
			p.next()

			if p.cur().nl {
				p.errorf(p.cur().from, "illegal newline after throw")
			}

			arg := p.parseExpression()
			p.semicolon()

			return &ast.ThrowStatement{Span: p.span(start), Argument: arg}

		case "try":
			return p.parseTry()

		case "switch":
			return p.parseSwitch()

		case "debugger":
			p.next()
			p.semicolon()

			return &ast.DebuggerStatement{Span: p.span(start)}

		case "import":
			if nt := p.peek(1); !nt.punct("(") && !nt.punct(".") {
				return p.parseImport()
			}

		case "export":
			return p.parseExport()

		case "enum":
			return p.parseEnum(start)

		case "with":
			p.errorf(start, "with statements are not allowed in modules")
		}

	case ast.TokenIdentifier:
		nt := p.peek(1)

		switch {
		case p.isLetDeclaration():
			decl := p.parseVar(start)
			p.semicolon()
			decl.Span = p.span(start)

			return decl

		case t.val == "async" && nt.is(ast.TokenKeyword, "function") && !nt.nl:
			p.next()

			return p.parseFunctionDeclaration(start, true)

		case nt.punct(":") && !reservedBindings[t.val]:
			label := p.ident()
			p.next()
			body := p.parseStatement()

			return &ast.LabeledStatement{Span: p.span(start), Label: label, Body: body}

		case !p.ts || nt.nl:

		case t.val == "interface" && nt.kind == ast.TokenIdentifier:
			return p.parseInterface(start)

		case t.val == "type" && nt.kind == ast.TokenIdentifier && (p.peek(2).punct("=") || p.peek(2).punct("<")):
			return p.parseTypeAlias(start)

		case t.val == "abstract" && nt.is(ast.TokenKeyword, "class"):
			p.next()
			c := p.parseClass()

			return &ast.ClassDeclaration{Span: p.span(start), Class: c}

		case t.val == "declare":
			p.next()

			s := p.parseStatement()
			markDeclare(s)

			return s

		case (t.val == "namespace" || t.val == "module" || t.val == "global") &&
			(nt.kind == ast.TokenIdentifier || nt.kind == ast.TokenString || nt.punct("{")):
			p.next()

			if !p.isPunct("{") {
				p.next()
			}

			for p.eat(".") {
				p.identName()
			}

			return p.parseBlock()
		}
	}

	e := p.parseExpression()
	p.semicolon()

	return &ast.ExpressionStatement{Span: p.span(start), Expression: e}
}

func markDeclare(n ast.Node) {
	switch n := n.(type) {
	case *ast.VariableDeclaration:
		n.Declare = true
	case *ast.TSInterfaceDeclaration:
		n.Declare = true
	case *ast.TSTypeAliasDeclaration:
		n.Declare = true
	}
}

func (p *scriptParser) parseParenExpression() ast.Node {
	p.expect("(")
	e := p.parseExpressionIn()
	p.expect(")")

	return e
}

// parseVar parses a declaration without its terminating semicolon.
func (p *scriptParser) parseVar(start int) *ast.VariableDeclaration {
	decl := &ast.VariableDeclaration{DeclKind: p.next().val}

	for {
		s := p.cur().from

		id := p.parseBindingTarget()
		if p.ts && p.isPunct("!") {
			p.next()
		}

		if p.ts && p.eat(":") {
			setTypeAnnotation(id, p.parseType())
		}

		d := &ast.VariableDeclarator{ID: id}
		if p.eat("=") {
			d.Init = p.parseAssign()
		}

		d.Span = p.span(s)
		decl.Declarations = append(decl.Declarations, d)

		if !p.eat(",") {
			break
		}
	}

	decl.Span = p.span(start)

	return decl
}

func (p *scriptParser) parseFunctionDeclaration(start int, async bool) ast.Node {
	p.next() // function

	f := ast.Func{Async: async, Generator: p.eat("*")}
	if p.isIdent() {
		f.ID = p.ident()
	}

	if p.ts && p.isPunct("<") {
		f.TypeParameters = p.parseTypeParams()
	}

	p.parseFuncRest(&f)

	return &ast.FunctionDeclaration{Span: p.span(start), Func: f}
}

func (p *scriptParser) parseIf() ast.Node {
	start := p.next().from
	test := p.parseParenExpression()
	cons := p.parseStatement()

	s := &ast.IfStatement{Test: test, Consequent: cons}
	if p.eatWord("else") {
		s.Alternate = p.parseStatement()
	}

	s.Span = p.span(start)

	return s
}

func (p *scriptParser) parseFor() ast.Node {
	start := p.next().from

	await := false
	if p.cur().val == "await" && p.cur().kind == ast.TokenIdentifier {
		p.next()

		await = true
	}

	p.expect("(")

	var init ast.Node

	noIn := p.noIn
	p.noIn = true

	switch {
	case p.isPunct(";"):
	case p.isWord("var"), p.isWord("const"), p.isLetDeclaration():
		init = p.parseVar(p.cur().from)
	default:
		init = p.parseExpression()
	}

	p.noIn = noIn

	if init != nil && (p.isWord("of") || p.isWord("in")) {
		isOf := p.next().val == "of"

		left := init
		if _, ok := init.(*ast.VariableDeclaration); !ok {
			left = p.toPattern(init)
		}

		var right ast.Node
		if isOf {
			right = p.parseAssignIn()
		} else {
			right = p.parseExpressionIn()
		}

		p.expect(")")
		body := p.parseStatement()

		if isOf {
			return &ast.ForOfStatement{Span: p.span(start), Left: left, Right: right, Body: body, Await: await}
		}

		return &ast.ForInStatement{Span: p.span(start), Left: left, Right: right, Body: body}
	}

	s := &ast.ForStatement{Init: init}

	p.expect(";")

	if !p.isPunct(";") {
		s.Test = p.parseExpressionIn()
	}

	p.expect(";")

	if !p.isPunct(")") {
		s.Update = p.parseExpressionIn()
	}

	p.expect(")")
	s.Body = p.parseStatement()
	s.Span = p.span(start)

	return s
}

func (p *scriptParser) parseTry() ast.Node {
	start := p.next().from

	s := &ast.TryStatement{Block: p.parseBlock()}

	if p.isWord("catch") {
		cs := p.next().from

		c := &ast.CatchClause{}
		if p.eat("(") {
			c.Param = p.parseBindingTarget()
			if p.ts && p.eat(":") {
				setTypeAnnotation(c.Param, p.parseType())
			}

			p.expect(")")
		}

		c.Body = p.parseBlock()
		c.Span = p.span(cs)
		s.Handler = c
	}

	if p.eatWord("finally") {
		s.Finalizer = p.parseBlock()
	}

	if s.Handler == nil && s.Finalizer == nil {
		p.errorf(p.cur().from, "missing catch or finally after try")
	}

	s.Span = p.span(start)

	return s
}

func (p *scriptParser) parseSwitch() ast.Node {
	start := p.next().from

	s := &ast.SwitchStatement{Discriminant: p.parseParenExpression()}
	p.expect("{")

	for !p.isPunct("}") && !p.eof() {
		cs := p.cur().from

		c := &ast.SwitchCase{}

		switch {
		case p.eatWord("case"):
			c.Test = p.parseExpressionIn()
		case p.eatWord("default"):
		default:
			p.unexpected()
			p.next()

			continue
		}

		p.expect(":")

		for !p.isPunct("}") && !p.isWord("case") && !p.isWord("default") && !p.eof() {
			before := p.i

			if st := p.parseStatement(); st != nil {
				c.Consequent = append(c.Consequent, st)
			}

			if p.i == before {
				p.next()
			}
		}

		c.Span = p.span(cs)
		s.Cases = append(s.Cases, c)
	}

	p.expect("}")
	s.Span = p.span(start)

	return s
}

// moduleName parses an identifier or string used as an import or export name.
func (p *scriptParser) moduleName() ast.Node {
	if t := p.cur(); t.kind == ast.TokenString {
		p.next()

		return &ast.Literal{Span: p.span(t.from), LitKind: ast.LiteralString, Value: t.cooked, Raw: t.val}
	}

	id, ok := p.identName()
	if !ok {
		p.unexpected()

		return nil
	}

	return id
}

func (p *scriptParser) parseSource() *ast.Literal {
	t := p.cur()
	if t.kind != ast.TokenString {
		p.errorf(t.from, "expected module specifier")

		return nil
	}

	p.next()

	lit := &ast.Literal{Span: p.span(t.from), LitKind: ast.LiteralString, Value: t.cooked, Raw: t.val}

	if (p.isWord("with") || p.isWord("assert")) && p.peek(1).punct("{") && !p.cur().nl {
		p.next()
		p.parseObject()
	}

	return lit
}

func (p *scriptParser) expectWord(word string) {
	if !p.eatWord(word) {
		p.errorf(p.cur().from, "expected %q", word)
	}
}

//nolint:gocyclo,cyclop,funlen
func (p *scriptParser) parseImport() ast.Node {
	start := p.next().from

	decl := &ast.ImportDeclaration{}
	if p.ts && p.isWord("type") {
		if nt := p.peek(1); nt.punct("{") || nt.punct("*") || nt.kind == ast.TokenIdentifier && nt.val != "from" {
			p.next()

			decl.TypeOnly = true
		}
	}

	if p.cur().kind != ast.TokenString {
		if p.isIdent() {
			local := p.ident()
			decl.Specifiers = append(decl.Specifiers, &ast.ImportDefaultSpecifier{Span: local.Span, Local: local})

			p.eat(",")
		}

		switch {
		case p.isPunct("*"):
			s := p.next().from
			p.expectWord("as")
			local := p.ident()
			decl.Specifiers = append(decl.Specifiers, &ast.ImportNamespaceSpecifier{Span: p.span(s), Local: local})

		case p.eat("{"):
			for !p.isPunct("}") && !p.eof() {
				s := p.cur().from

				spec := &ast.ImportSpecifier{}
				if p.ts && p.isWord("type") && (p.peek(1).kind == ast.TokenIdentifier || p.peek(1).kind == ast.TokenKeyword) &&
					!p.peek(1).is(ast.TokenIdentifier, "as") {
					p.next()

					spec.TypeOnly = true
				}

				spec.Imported = p.moduleName()
				if p.eatWord("as") {
					spec.Local = p.ident()
				} else if id, ok := spec.Imported.(*ast.Identifier); ok {
					spec.Local = id
				}

				spec.Span = p.span(s)
				decl.Specifiers = append(decl.Specifiers, spec)

				if !p.isPunct("}") && !p.expect(",") {
					break
				}
			}

			p.expect("}")
		}

		p.expectWord("from")
	}

	decl.Source = p.parseSource()
	p.semicolon()
	decl.Span = p.span(start)

	return decl
}

//nolint:gocyclo,cyclop,funlen
func (p *scriptParser) parseExport() ast.Node {
	start := p.next().from

	switch {
	case p.isWord("default"):
		p.next()

		var decl ast.Node

		ds := p.cur().from

		switch t := p.cur(); {
		case t.is(ast.TokenKeyword, "function"):
			decl = p.parseFunctionDeclaration(ds, false)
		case t.is(ast.TokenIdentifier, "async") && p.peek(1).is(ast.TokenKeyword, "function"):
			p.next()
			decl = p.parseFunctionDeclaration(ds, true)
		case t.is(ast.TokenKeyword, "class"):
			c := p.parseClass()
			decl = &ast.ClassDeclaration{Span: p.span(ds), Class: c}
		case p.ts && t.is(ast.TokenIdentifier, "interface"):
			decl = p.parseInterface(ds)
		default:
			decl = p.parseAssignIn()
			p.semicolon()
		}

		return &ast.ExportDefaultDeclaration{Span: p.span(start), Declaration: decl}

	case p.isPunct("*"):
		p.next()

		d := &ast.ExportAllDeclaration{}
		if p.eatWord("as") {
			d.Exported = p.moduleName()
		}

		p.expectWord("from")
		d.Source = p.parseSource()
		p.semicolon()
		d.Span = p.span(start)

		return d

	case p.isPunct("{"), p.ts && p.isWord("type") && p.peek(1).punct("{"):
		d := &ast.ExportNamedDeclaration{}
		if !p.isPunct("{") {
			p.next()

			d.TypeOnly = true
		}

		p.next()

		for !p.isPunct("}") && !p.eof() {
			s := p.cur().from

			if p.ts && p.isWord("type") && p.peek(1).kind == ast.TokenIdentifier && !p.peek(1).is(ast.TokenIdentifier, "as") {
				p.next()
			}

			spec := &ast.ExportSpecifier{Local: p.moduleName()}
			if p.eatWord("as") {
				spec.Exported = p.moduleName()
			} else {
				spec.Exported = spec.Local
			}

			spec.Span = p.span(s)
			d.Specifiers = append(d.Specifiers, spec)

			if !p.isPunct("}") && !p.expect(",") {
				break
			}
		}

		p.expect("}")

		if p.eatWord("from") {
			d.Source = p.parseSource()
		}

		p.semicolon()
		d.Span = p.span(start)

		return d

	case p.ts && p.isPunct("="):
		p.next()
		e := p.parseExpression()
		p.semicolon()

		return &ast.ExpressionStatement{Span: p.span(start), Expression: e}
	}

	decl := p.parseStatement()

	return &ast.ExportNamedDeclaration{Span: p.span(start), Declaration: decl}
}

// parseEnum lowers an enum to a constant object binding.
func (p *scriptParser) parseEnum(start int) ast.Node {
	p.next() // enum

	id := p.ident()

	os := p.cur().from
	p.expect("{")

	obj := &ast.ObjectExpression{}
	for !p.isPunct("}") && !p.eof() {
		s := p.cur().from

		key := p.moduleName()
		prop := &ast.Property{Key: key}

		if p.eat("=") {
			prop.Value = p.parseAssignIn()
		} else {
			prop.Value = &ast.Literal{Span: p.span(s), LitKind: ast.LiteralNumber, Value: "0", Raw: ""}
		}

		prop.Span = p.span(s)
		obj.Properties = append(obj.Properties, prop)

		if !p.isPunct("}") && !p.expect(",") {
			break
		}
	}

	p.expect("}")
	obj.Span = p.span(os)

	d := &ast.VariableDeclarator{Span: p.span(start), ID: id, Init: obj}

	return &ast.VariableDeclaration{Span: p.span(start), DeclKind: "const", Declarations: []*ast.VariableDeclarator{d}}
}
