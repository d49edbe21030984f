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

import (
	"strings"

	"fillmore-labs.com/kdulint/internal/ast"
)

func (p *scriptParser) parseExpression() ast.Node {
	start := p.cur().from

	e := p.parseAssign()
	if !p.isPunct(",") {
		return e
	}

	list := []ast.Node{e}
	for p.eat(",") {
		list = append(list, p.parseAssign())
	}

	return &ast.SequenceExpression{Span: p.span(start), Expressions: list}
}

// parseExpressionIn parses an expression with 'in' re-enabled, inside brackets.
func (p *scriptParser) parseExpressionIn() ast.Node {
	noIn := p.noIn
	p.noIn = false
	defer func() { p.noIn = noIn }()

	return p.parseExpression()
}

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true, "**=": true,
	"<<=": true, ">>=": true, ">>>=": true, "&=": true, "|=": true, "^=": true,
	"&&=": true, "||=": true, "??=": true,
}

func (p *scriptParser) assignOp() (string, int) {
	t := p.cur()
	if t.kind != ast.TokenPunctuator {
		return "", 0
	}

	if t.val == ">" {
		if op, n := p.binaryOp(); assignOps[op] {
			return op, n
		}

		return "", 0
	}

	if assignOps[t.val] {
		return t.val, 1
	}

	return "", 0
}

func (p *scriptParser) parseAssign() ast.Node {
	start := p.cur().from

	if arrow := p.parseArrow(); arrow != nil {
		return arrow
	}

	if p.inGen && p.isWord("yield") {
		return p.parseYield()
	}

	left := p.parseConditional()

	op, n := p.assignOp()
	if op == "" {
		return left
	}

	for range n {
		p.next()
	}

	if op == "=" {
		left = p.toPattern(left)
	} else if !isSimpleTarget(left) {
		p.errorf(p.cur().from, "invalid left-hand side in assignment")
	}

	right := p.parseAssign()

	return &ast.AssignmentExpression{Span: p.span(start), Operator: op, Left: left, Right: right}
}

func isSimpleTarget(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	case *ast.TSAsExpression:
		return isSimpleTarget(n.Expression)
	case *ast.TSNonNullExpression:
		return isSimpleTarget(n.Expression)
	case *ast.TSSatisfiesExpression:
		return isSimpleTarget(n.Expression)
	default:
		return false
	}
}

func (p *scriptParser) parseYield() ast.Node {
	start := p.next().from

	y := &ast.YieldExpression{}
	if p.isPunct("*") && !p.cur().nl {
		p.next()
		y.Delegate = true
	}

	if t := p.cur(); !t.nl && !y.Delegate && startsExpression(t) || y.Delegate {
		y.Argument = p.parseAssign()
	}

	y.Span = p.span(start)

	return y
}

// startsExpression reports whether t can begin an expression.
func startsExpression(t tok) bool {
	switch t.kind {
	case tokEOF:
		return false
	case ast.TokenPunctuator:
		switch t.val {
		case ")", "]", "}", ",", ";", ":", "=>", "?", "?.", "=":
			return false
		}

		return true
	case ast.TokenKeyword:
		return t.val != "in" && t.val != "instanceof"
	default:
		return true
	}
}

// parseArrow recognizes arrow functions. Only the head is parsed
// speculatively; the body is parsed after the arrow has been seen.
func (p *scriptParser) parseArrow() ast.Node {
	t := p.cur()
	start := t.from

	switch {
	case t.kind == ast.TokenIdentifier && !reservedBindings[t.val] && p.peek(1).punct("=>") && !p.peek(1).nl:
		param := p.ident()
		p.next()

		return p.arrowBody(start, ast.Func{Params: []ast.Node{param}})

	case t.val == "async" && t.kind == ast.TokenIdentifier && !p.peek(1).nl &&
		p.peek(1).kind == ast.TokenIdentifier && p.peek(2).punct("=>"):
		p.next()
		param := p.ident()
		p.next()

		return p.arrowBody(start, ast.Func{Params: []ast.Node{param}, Async: true})

	case t.punct("("), p.ts && t.punct("<"),
		t.val == "async" && t.kind == ast.TokenIdentifier && !p.peek(1).nl && (p.peek(1).punct("(") || p.ts && p.peek(1).punct("<")):
		var f ast.Func
		if !p.try(func() bool { return p.arrowHead(&f) }) {
			return nil
		}

		return p.arrowBody(start, f)
	}

	return nil
}

func (p *scriptParser) arrowHead(f *ast.Func) bool {
	if p.cur().val == "async" && p.cur().kind == ast.TokenIdentifier {
		p.next()
		f.Async = true
	}

	if p.ts && p.isPunct("<") {
		f.TypeParameters = p.parseTypeParams()
	}

	if !p.isPunct("(") {
		return false
	}

	f.Params = p.parseParams()

	if p.ts && p.isPunct(":") {
		p.next()
		f.ReturnType = p.parseReturnType()
	}

	return p.isPunct("=>") && !p.cur().nl && p.next().val == "=>"
}

func (p *scriptParser) arrowBody(start int, f ast.Func) ast.Node {
	inFunc, inAsync, inGen, noIn := p.inFunc, p.inAsync, p.inGen, p.noIn
	p.inFunc, p.inAsync, p.inGen = true, f.Async, false

	if p.isPunct("{") {
		p.noIn = false
		f.Body = p.parseBlock()
	} else {
		f.Body = p.parseAssign()
	}

	p.inFunc, p.inAsync, p.inGen, p.noIn = inFunc, inAsync, inGen, noIn

	return &ast.ArrowFunctionExpression{Span: p.span(start), Func: f}
}

func (p *scriptParser) parseConditional() ast.Node {
	start := p.cur().from

	test := p.parseBinary(0)
	if !p.isPunct("?") {
		return test
	}

	p.next()

	noIn := p.noIn
	p.noIn = false
	cons := p.parseAssign()
	p.noIn = noIn

	p.expect(":")
	alt := p.parseAssign()

	return &ast.ConditionalExpression{Span: p.span(start), Test: test, Consequent: cons, Alternate: alt}
}

var binaryPrec = map[string]int{
	"??": 1, "||": 2, "&&": 3, "|": 4, "^": 5, "&": 6,
	"==": 7, "!=": 7, "===": 7, "!==": 7,
	"<": 8, ">": 8, "<=": 8, ">=": 8, "instanceof": 8, "in": 8,
	"<<": 9, ">>": 9, ">>>": 9,
	"+": 10, "-": 10,
	"*": 11, "/": 11, "%": 11,
	"**": 12,
}

const relationalPrec = 8

func (p *scriptParser) parseBinary(minPrec int) ast.Node {
	start := p.cur().from
	left := p.parseUnary()

	for {
		if p.ts && relationalPrec > minPrec && !p.cur().nl && p.cur().kind == ast.TokenIdentifier &&
			(p.cur().val == "as" || p.cur().val == "satisfies") {
			word := p.next().val
			typ := p.parseType()

			if word == "as" {
				left = &ast.TSAsExpression{Span: p.span(start), Expression: left, TypeAnnotation: typ}
			} else {
				left = &ast.TSSatisfiesExpression{Span: p.span(start), Expression: left, TypeAnnotation: typ}
			}

			continue
		}

		op, n := p.binaryOp()

		prec, ok := binaryPrec[op]
		if !ok || prec <= minPrec || op == "in" && p.noIn {
			return left
		}

		for range n {
			p.next()
		}

		var right ast.Node
		if op == "**" {
			right = p.parseBinary(prec - 1)
		} else {
			right = p.parseBinary(prec)
		}

		switch op {
		case "&&", "||", "??":
			left = &ast.LogicalExpression{Span: p.span(start), Operator: op, Left: left, Right: right}
		default:
			left = &ast.BinaryExpression{Span: p.span(start), Operator: op, Left: left, Right: right}
		}
	}
}

func (p *scriptParser) parseUnary() ast.Node {
	t := p.cur()
	start := t.from

	switch {
	case t.kind == ast.TokenPunctuator && (t.val == "!" || t.val == "~" || t.val == "+" || t.val == "-"),
		t.kind == ast.TokenKeyword && (t.val == "typeof" || t.val == "void" || t.val == "delete"):
		p.next()
		arg := p.parseUnary()

		return &ast.UnaryExpression{Span: p.span(start), Operator: t.val, Argument: arg}

	case t.punct("++"), t.punct("--"):
		p.next()
		arg := p.parseUnary()
		if !isSimpleTarget(arg) {
			p.errorf(start, "invalid operand for %s", t.val)
		}

		return &ast.UpdateExpression{Span: p.span(start), Operator: t.val, Prefix: true, Argument: arg}

	case t.kind == ast.TokenIdentifier && t.val == "await" && (p.inAsync || !p.inFunc) && startsExpression(p.peek(1)):
		p.next()
		arg := p.parseUnary()

		return &ast.AwaitExpression{Span: p.span(start), Argument: arg}
	}

	return p.parsePostfix()
}

func (p *scriptParser) parsePostfix() ast.Node {
	start := p.cur().from
	e := p.parseLHS()

	if t := p.cur(); (t.punct("++") || t.punct("--")) && !t.nl {
		p.next()
		if !isSimpleTarget(e) {
			p.errorf(start, "invalid operand for %s", t.val)
		}

		return &ast.UpdateExpression{Span: p.span(start), Operator: t.val, Argument: e}
	}

	return e
}

func (p *scriptParser) parseLHS() ast.Node {
	start := p.cur().from

	var e ast.Node
	if p.isWord("new") {
		e = p.parseNew()
	} else {
		e = p.parsePrimary()
	}

	return p.parseChain(start, e, true)
}

func (p *scriptParser) parseNew() ast.Node {
	start := p.next().from

	if p.eat(".") {
		meta := &ast.Identifier{Span: ast.Span{From: p.pos(start), To: p.pos(start + 3)}, Name: "new"}
		prop, _ := p.identName()

		return &ast.MetaProperty{Span: p.span(start), Meta: meta, Property: prop}
	}

	calleeStart := p.cur().from

	var callee ast.Node
	if p.isWord("new") {
		callee = p.parseNew()
	} else {
		callee = p.parsePrimary()
	}

	callee = p.parseChain(calleeStart, callee, false)

	n := &ast.NewExpression{Callee: callee}
	if p.ts && p.isPunct("<") {
		p.try(func() bool {
			n.TypeArguments = p.parseTypeArgs()

			return n.TypeArguments != nil
		})
	}

	if p.isPunct("(") {
		n.Arguments = p.parseArgs()
	}

	n.Span = p.span(start)

	return n
}

//nolint:gocyclo,cyclop,funlen
func (p *scriptParser) parseChain(start int, e ast.Node, allowCall bool) ast.Node {
	chained := false

	for {
		t := p.cur()

		switch {
		case t.punct("."):
			p.next()
			prop := p.memberName()
			e = &ast.MemberExpression{Span: p.span(start), Object: e, Property: prop}

		case t.punct("?.") && allowCall:
			p.next()

			chained = true

			switch {
			case p.isPunct("("):
				args := p.parseArgs()
				e = &ast.CallExpression{Span: p.span(start), Callee: e, Arguments: args, Optional: true}

			case p.isPunct("["):
				p.next()
				prop := p.parseExpressionIn()
				p.expect("]")
				e = &ast.MemberExpression{Span: p.span(start), Object: e, Property: prop, Computed: true, Optional: true}

			default:
				prop := p.memberName()
				e = &ast.MemberExpression{Span: p.span(start), Object: e, Property: prop, Optional: true}
			}

		case t.punct("["):
			p.next()
			prop := p.parseExpressionIn()
			p.expect("]")
			e = &ast.MemberExpression{Span: p.span(start), Object: e, Property: prop, Computed: true}

		case t.punct("(") && allowCall:
			args := p.parseArgs()
			e = &ast.CallExpression{Span: p.span(start), Callee: e, Arguments: args}

		case t.kind == ast.TokenTemplate && (t.part == tmplFull || t.part == tmplHead):
			quasi := p.parseTemplate()
			e = &ast.TaggedTemplateExpression{Span: p.span(start), Tag: e, Quasi: quasi}

		case p.ts && t.punct("!") && !t.nl:
			p.next()
			e = &ast.TSNonNullExpression{Span: p.span(start), Expression: e}

		case p.ts && t.punct("<") && allowCall:
			var targs *ast.TSTypeParameterInstantiation
			if !p.try(func() bool {
				targs = p.parseTypeArgs()

				return targs != nil && (p.isPunct("(") || p.cur().kind == ast.TokenTemplate)
			}) {
				return p.endChain(start, e, chained)
			}

			if p.isPunct("(") {
				args := p.parseArgs()
				e = &ast.CallExpression{Span: p.span(start), Callee: e, Arguments: args, TypeArguments: targs}
			} else {
				quasi := p.parseTemplate()
				e = &ast.TaggedTemplateExpression{Span: p.span(start), Tag: e, Quasi: quasi, TypeArguments: targs}
			}

		default:
			return p.endChain(start, e, chained)
		}
	}
}

func (p *scriptParser) endChain(start int, e ast.Node, chained bool) ast.Node {
	if !chained {
		return e
	}

	return &ast.ChainExpression{Span: p.span(start), Expression: e}
}

func (p *scriptParser) memberName() ast.Node {
	t := p.cur()
	if t.kind == ast.TokenPrivateName {
		p.next()

		return &ast.PrivateIdentifier{Span: p.span(t.from), Name: t.val}
	}

	id, ok := p.identName()
	if !ok {
		p.unexpected()

		return nil
	}

	return id
}

func (p *scriptParser) parseArgs() []ast.Node {
	p.expect("(")

	noIn := p.noIn
	p.noIn = false

	var args []ast.Node
	for !p.isPunct(")") && !p.eof() {
		start := p.cur().from
		if p.eat("...") {
			arg := p.parseAssign()
			args = append(args, &ast.SpreadElement{Span: p.span(start), Argument: arg})
		} else {
			args = append(args, p.parseAssign())
		}

		if !p.isPunct(")") && !p.expect(",") {
			break
		}
	}

	p.noIn = noIn
	p.expect(")")

	return args
}

//nolint:gocyclo,cyclop,funlen
func (p *scriptParser) parsePrimary() ast.Node {
	t := p.cur()
	start := t.from

	switch t.kind {
	case ast.TokenIdentifier:
		if t.val == "async" && p.peek(1).is(ast.TokenKeyword, "function") && !p.peek(1).nl {
			p.next()

			return p.parseFunctionExpression(start, true)
		}

		p.next()

		return &ast.Identifier{Span: p.span(start), Name: t.val}

	case ast.TokenKeyword:
		switch t.val {
		case "this":
			p.next()

			return &ast.ThisExpression{Span: p.span(start)}

		case "super":
			p.next()

			return &ast.Super{Span: p.span(start)}

		case "null":
			p.next()

			return &ast.Literal{Span: p.span(start), LitKind: ast.LiteralNull, Value: "null", Raw: "null"}

		case "true", "false":
			p.next()

			return &ast.Literal{Span: p.span(start), LitKind: ast.LiteralBoolean, Value: t.val, Raw: t.val}

		case "function":
			return p.parseFunctionExpression(start, false)

		case "class":
			c := p.parseClass()

			return &ast.ClassExpression{Span: p.span(start), Class: c}

		case "new":
			return p.parseNew()

		case "import":
			p.next()

			if p.eat(".") {
				meta := &ast.Identifier{Span: p.span(start), Name: "import"}
				prop, _ := p.identName()

				return &ast.MetaProperty{Span: p.span(start), Meta: meta, Property: prop}
			}

			p.expect("(")
			source := p.parseAssign()
			if p.eat(",") && !p.isPunct(")") {
				p.parseAssign() // import attributes
				p.eat(",")
			}
			p.expect(")")

			return &ast.ImportExpression{Span: p.span(start), Source: source}
		}

	case ast.TokenString:
		p.next()

		return &ast.Literal{Span: p.span(start), LitKind: ast.LiteralString, Value: t.cooked, Raw: t.val}

	case ast.TokenNumeric:
		p.next()

		kind := ast.LiteralNumber
		if strings.HasSuffix(t.val, "n") {
			kind = ast.LiteralBigInt
		}

		return &ast.Literal{Span: p.span(start), LitKind: kind, Value: t.val, Raw: t.val}

	case ast.TokenRegExp:
		p.next()

		return &ast.Literal{Span: p.span(start), LitKind: ast.LiteralRegExp, Value: t.val, Raw: t.val}

	case ast.TokenTemplate:
		if t.part == tmplFull || t.part == tmplHead {
			return p.parseTemplate()
		}

	case ast.TokenPrivateName:
		p.next()

		return &ast.PrivateIdentifier{Span: p.span(start), Name: t.val}

	case ast.TokenPunctuator:
		switch t.val {
		case "(":
			p.next()
			e := p.parseExpressionIn()
			p.expect(")")

			return e

		case "[":
			return p.parseArray()

		case "{":
			return p.parseObject()

		case "@":
			p.parseDecorators()

			if p.isWord("class") {
				c := p.parseClass()

				return &ast.ClassExpression{Span: p.span(start), Class: c}
			}
		}
	}

	p.unexpected()
	if !p.eof() && !p.isPunct("}") && !p.isPunct(")") && !p.isPunct("]") {
		p.next()
	}

	return nil
}

func (p *scriptParser) parseDecorators() {
	for p.eat("@") {
		p.parseLHS()
	}
}

func (p *scriptParser) parseTemplate() *ast.TemplateLiteral {
	t := p.next()
	start := t.from

	lit := &ast.TemplateLiteral{}
	lit.Quasis = append(lit.Quasis, p.quasi(t))

	for t.part == tmplHead || t.part == tmplMiddle {
		lit.Expressions = append(lit.Expressions, p.parseExpressionIn())

		nt := p.cur()
		if nt.kind != ast.TokenTemplate || nt.part != tmplMiddle && nt.part != tmplTail {
			p.errorf(nt.from, "unterminated template substitution")

			break
		}

		t = p.next()
		lit.Quasis = append(lit.Quasis, p.quasi(t))
	}

	lit.Span = p.span(start)

	return lit
}

func (p *scriptParser) quasi(t tok) *ast.TemplateElement {
	from, to := t.from+1, t.to

	switch t.part {
	case tmplFull, tmplTail:
		if strings.HasSuffix(t.val, "`") && len(t.val) > 1 {
			to--
		}
	default:
		to -= 2
	}

	to = max(from, to)
	raw := t.val[1 : 1+to-from]

	return &ast.TemplateElement{
		Span:   ast.Span{From: p.pos(from), To: p.pos(to)},
		Raw:    raw,
		Cooked: t.cooked,
		Tail:   t.part == tmplFull || t.part == tmplTail,
	}
}

func (p *scriptParser) parseArray() ast.Node {
	start := p.next().from

	var elems []ast.Node
	for !p.isPunct("]") && !p.eof() {
		if p.eat(",") {
			elems = append(elems, nil)

			continue
		}

		s := p.cur().from
		if p.eat("...") {
			arg := p.parseAssignIn()
			elems = append(elems, &ast.SpreadElement{Span: p.span(s), Argument: arg})
		} else {
			elems = append(elems, p.parseAssignIn())
		}

		if !p.isPunct("]") && !p.expect(",") {
			break
		}
	}

	p.expect("]")

	return &ast.ArrayExpression{Span: p.span(start), Elements: elems}
}

func (p *scriptParser) parseAssignIn() ast.Node {
	noIn := p.noIn
	p.noIn = false
	defer func() { p.noIn = noIn }()

	return p.parseAssign()
}

func (p *scriptParser) parseObject() ast.Node {
	start := p.next().from

	var props []ast.Node
	for !p.isPunct("}") && !p.eof() {
		s := p.cur().from
		if p.eat("...") {
			arg := p.parseAssignIn()
			props = append(props, &ast.SpreadElement{Span: p.span(s), Argument: arg})
		} else {
			before := p.i
			props = append(props, p.parseProperty())

			if p.i == before {
				p.next()
			}
		}

		if !p.isPunct("}") && !p.expect(",") {
			break
		}
	}

	p.expect("}")

	return &ast.ObjectExpression{Span: p.span(start), Properties: props}
}

// startsKey reports whether t can begin a property key.
func startsKey(t tok) bool {
	switch t.kind {
	case ast.TokenIdentifier, ast.TokenKeyword, ast.TokenString, ast.TokenNumeric, ast.TokenPrivateName:
		return true
	case ast.TokenPunctuator:
		return t.val == "[" || t.val == "*"
	default:
		return false
	}
}

func (p *scriptParser) parsePropertyKey() (key ast.Node, computed bool) {
	t := p.cur()

	switch t.kind {
	case ast.TokenString:
		p.next()

		return &ast.Literal{Span: p.span(t.from), LitKind: ast.LiteralString, Value: t.cooked, Raw: t.val}, false

	case ast.TokenNumeric:
		p.next()

		return &ast.Literal{Span: p.span(t.from), LitKind: ast.LiteralNumber, Value: t.val, Raw: t.val}, false

	case ast.TokenPrivateName:
		p.next()

		return &ast.PrivateIdentifier{Span: p.span(t.from), Name: t.val}, false

	case ast.TokenPunctuator:
		if t.val == "[" {
			p.next()
			key := p.parseAssignIn()
			p.expect("]")

			return key, true
		}
	}

	id, ok := p.identName()
	if !ok {
		p.unexpected()

		return nil, false
	}

	return id, false
}

func (p *scriptParser) parseProperty() ast.Node {
	start := p.cur().from

	kind := ast.PropertyInit
	async, gen := false, false

	if t := p.cur(); t.kind == ast.TokenIdentifier && (t.val == "get" || t.val == "set" || t.val == "async") &&
		startsKey(p.peek(1)) && !(t.val == "async" && p.peek(1).nl) {
		p.next()

		switch t.val {
		case "get":
			kind = ast.PropertyGet
		case "set":
			kind = ast.PropertySet
		default:
			async = true
		}
	}

	if p.eat("*") {
		gen = true
	}

	key, computed := p.parsePropertyKey()

	if p.isPunct("(") || p.ts && p.isPunct("<") || kind != ast.PropertyInit || async || gen {
		fn := p.parseMethod(async, gen)

		return &ast.Property{
			Span: p.span(start), Key: key, Value: fn, PropKind: kind,
			Computed: computed, Method: kind == ast.PropertyInit,
		}
	}

	if p.eat(":") {
		value := p.parseAssignIn()

		return &ast.Property{Span: p.span(start), Key: key, Value: value, Computed: computed}
	}

	id, ok := key.(*ast.Identifier)
	if !ok || computed {
		p.unexpected()

		return &ast.Property{Span: p.span(start), Key: key, Computed: computed}
	}

	if p.isPunct("=") {
		// Only valid when the object is reinterpreted as a pattern.
		p.next()
		def := p.parseAssignIn()
		value := &ast.AssignmentPattern{Span: p.span(start), Left: id, Right: def}

		return &ast.Property{Span: p.span(start), Key: id, Value: value, Shorthand: true}
	}

	return &ast.Property{Span: p.span(start), Key: id, Value: id, Shorthand: true}
}

// parseMethod parses the parameter list and body of a method; the function
// expression starts at the parameter list.
func (p *scriptParser) parseMethod(async, gen bool) *ast.FunctionExpression {
	start := p.cur().from

	f := ast.Func{Async: async, Generator: gen}
	if p.ts && p.isPunct("<") {
		f.TypeParameters = p.parseTypeParams()
	}

	p.parseFuncRest(&f)

	return &ast.FunctionExpression{Span: p.span(start), Func: f}
}

// parseFuncRest parses parameters, return type and body.
func (p *scriptParser) parseFuncRest(f *ast.Func) {
	inAsync, inGen := p.inAsync, p.inGen
	p.inAsync, p.inGen = f.Async, f.Generator
	f.Params = p.parseParams()
	p.inAsync, p.inGen = inAsync, inGen

	if p.ts && p.isPunct(":") {
		p.next()
		f.ReturnType = p.parseReturnType()
	}

	switch {
	case p.isPunct("{"):
		f.Body = p.parseFunctionBody(f.Async, f.Generator)
	case p.ts:
		p.semicolon() // overload or abstract signature
	default:
		p.expect("{")
	}
}

func (p *scriptParser) parseFunctionBody(async, gen bool) *ast.BlockStatement {
	inFunc, inAsync, inGen, noIn := p.inFunc, p.inAsync, p.inGen, p.noIn
	p.inFunc, p.inAsync, p.inGen, p.noIn = true, async, gen, false

	body := p.parseBlock()

	p.inFunc, p.inAsync, p.inGen, p.noIn = inFunc, inAsync, inGen, noIn

	return body
}

func (p *scriptParser) parseFunctionExpression(start int, async bool) ast.Node {
	p.next() // function

	f := ast.Func{Async: async, Generator: p.eat("*")}
	if p.isIdent() {
		f.ID = p.ident()
	}

	if p.ts && p.isPunct("<") {
		f.TypeParameters = p.parseTypeParams()
	}

	p.parseFuncRest(&f)

	return &ast.FunctionExpression{Span: p.span(start), Func: f}
}

func (p *scriptParser) parseClass() ast.Class {
	p.next() // class

	var c ast.Class
	if p.isIdent() && !p.isWord("extends") && !p.isWord("implements") {
		c.ID = p.ident()
	}

	if p.ts && p.isPunct("<") {
		p.parseTypeParams()
	}

	if p.eatWord("extends") {
		start := p.cur().from
		c.SuperClass = p.parseChain(start, p.parsePrimary(), true)

		if p.ts && p.isPunct("<") {
			p.parseTypeArgs()
		}
	}

	if p.ts && p.eatWord("implements") {
		for {
			p.parseType()

			if !p.eat(",") {
				break
			}
		}
	}

	c.Body = p.parseClassBody()

	return c
}

var classModifiers = map[string]bool{
	"public": true, "private": true, "protected": true, "readonly": true, "abstract": true,
	"override": true, "declare": true, "accessor": true,
}

// isModifier reports whether the current word is used as a member modifier
// rather than as a member name.
func (p *scriptParser) isModifier() bool {
	nt := p.peek(1)
	if nt.nl && !nt.punct("[") {
		return false
	}

	return startsKey(nt) || nt.punct("{") || nt.punct("#")
}

//nolint:gocyclo,cyclop,funlen
func (p *scriptParser) parseClassBody() *ast.ClassBody {
	start := p.cur().from
	if !p.expect("{") {
		return &ast.ClassBody{Span: p.span(start)}
	}

	body := &ast.ClassBody{}
	for !p.isPunct("}") && !p.eof() {
		if p.eat(";") {
			continue
		}

		before := p.i
		s := p.cur().from

		p.parseDecorators()

		static := false
		for t := p.cur(); t.kind == ast.TokenIdentifier || t.kind == ast.TokenKeyword; t = p.cur() {
			if t.val == "static" && (p.isModifier() || p.peek(1).punct("{")) {
				p.next()

				static = true

				continue
			}

			if p.ts && classModifiers[t.val] && p.isModifier() {
				p.next()

				continue
			}

			break
		}

		if static && p.isPunct("{") {
			p.next()

			var stmts []ast.Node
			for !p.isPunct("}") && !p.eof() {
				stmts = append(stmts, p.parseStatement())
			}

			p.expect("}")
			body.Body = append(body.Body, &ast.StaticBlock{Span: p.span(s), Body: stmts})

			continue
		}

		if p.ts && p.isPunct("[") && p.peek(1).kind == ast.TokenIdentifier && p.peek(2).punct(":") {
			p.parseIndexSignature(s)
			p.semicolon()

			continue
		}

		kind := ast.MethodMethod
		async, gen := false, false

		if t := p.cur(); t.kind == ast.TokenIdentifier && (t.val == "get" || t.val == "set" || t.val == "async") &&
			startsKey(p.peek(1)) && !p.peek(1).nl {
			p.next()

			switch t.val {
			case "get":
				kind = ast.MethodGet
			case "set":
				kind = ast.MethodSet
			default:
				async = true
			}
		}

		if p.eat("*") {
			gen = true
		}

		key, computed := p.parsePropertyKey()

		if p.ts && (p.isPunct("?") || p.isPunct("!")) {
			p.next()
		}

		if p.isPunct("(") || p.ts && p.isPunct("<") {
			fn := p.parseMethod(async, gen)
			if id, ok := key.(*ast.Identifier); ok && !computed && !static && id.Name == "constructor" {
				kind = ast.MethodConstructor
			}

			body.Body = append(body.Body, &ast.MethodDefinition{
				Span: p.span(s), Key: key, Value: fn, MethKind: kind, Computed: computed, Static: static,
			})
		} else {
			field := &ast.PropertyDefinition{Key: key, Computed: computed, Static: static}
			if p.ts && p.eat(":") {
				field.TypeAnnotation = p.parseType()
			}

			if p.eat("=") {
				inFunc := p.inFunc
				p.inFunc = true
				field.Value = p.parseAssignIn()
				p.inFunc = inFunc
			}

			p.semicolon()

			field.Span = p.span(s)
			body.Body = append(body.Body, field)
		}

		if p.i == before {
			p.next()
		}
	}

	p.expect("}")
	body.Span = p.span(start)

	return body
}
