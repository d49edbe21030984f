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

// parseBindingTarget parses an identifier, object pattern or array pattern.
func (p *scriptParser) parseBindingTarget() ast.Node {
	switch {
	case p.isPunct("{"):
		return p.parseObjectPattern()
	case p.isPunct("["):
		return p.parseArrayPattern()
	default:
		if id := p.ident(); id != nil {
			return id
		}

		return nil
	}
}

// parseBindingElement parses a binding target with optional type annotation and default.
func (p *scriptParser) parseBindingElement() ast.Node {
	start := p.cur().from

	target := p.parseBindingTarget()

	if p.ts && p.isPunct("?") {
		p.next()

		if id, ok := target.(*ast.Identifier); ok {
			id.Optional = true
		}
	}

	if p.ts && p.eat(":") {
		setTypeAnnotation(target, p.parseType())
	}

	if p.eat("=") {
		def := p.parseAssignIn()

		return &ast.AssignmentPattern{Span: p.span(start), Left: target, Right: def}
	}

	return target
}

func (p *scriptParser) parseRest() ast.Node {
	start := p.next().from // ...

	arg := p.parseBindingTarget()

	rest := &ast.RestElement{Argument: arg}
	if p.ts && p.eat(":") {
		rest.TypeAnnotation = p.parseType()
	}

	rest.Span = p.span(start)

	return rest
}

var paramModifiers = map[string]bool{
	"public": true, "private": true, "protected": true, "readonly": true, "override": true,
}

// parseParams parses a parenthesized parameter list.
func (p *scriptParser) parseParams() []ast.Node {
	p.expect("(")
	params := p.parseParamList(")")
	p.expect(")")

	return params
}

// parseParamList parses parameters up to the closing punctuator, which is not consumed.
func (p *scriptParser) parseParamList(closing string) []ast.Node {
	var params []ast.Node
	for !p.isPunct(closing) && !p.eof() {
		p.parseDecorators()

		for p.ts && p.cur().kind == ast.TokenIdentifier && paramModifiers[p.cur().val] &&
			(p.peek(1).kind == ast.TokenIdentifier || p.peek(1).punct("{") || p.peek(1).punct("[")) {
			p.next()
		}

		switch {
		case p.isPunct("..."):
			params = append(params, p.parseRest())

		case p.ts && p.isWord("this"):
			t := p.next()
			this := &ast.Identifier{Span: p.span(t.from), Name: "this"}

			if p.eat(":") {
				this.TypeAnnotation = p.parseType()
			}

			params = append(params, this)

		default:
			before := p.i
			params = append(params, p.parseBindingElement())

			if p.i == before {
				return params
			}
		}

		if p.isPunct(closing) || p.eof() || !p.expect(",") {
			break
		}
	}

	return params
}

func (p *scriptParser) parseObjectPattern() ast.Node {
	start := p.next().from

	var props []ast.Node
	for !p.isPunct("}") && !p.eof() {
		if p.isPunct("...") {
			props = append(props, p.parseRest())
		} else {
			s := p.cur().from
			key, computed := p.parsePropertyKey()

			switch {
			case p.eat(":"):
				value := p.parseBindingElement()
				props = append(props, &ast.Property{Span: p.span(s), Key: key, Value: value, Computed: computed})

			default:
				id, ok := key.(*ast.Identifier)
				if !ok || computed {
					p.unexpected()

					return &ast.ObjectPattern{Span: p.span(start), Properties: props}
				}

				var value ast.Node = id
				if p.eat("=") {
					def := p.parseAssignIn()
					value = &ast.AssignmentPattern{Span: p.span(s), Left: id, Right: def}
				}

				props = append(props, &ast.Property{Span: p.span(s), Key: id, Value: value, Shorthand: true})
			}
		}

		if !p.isPunct("}") && !p.expect(",") {
			break
		}
	}

	p.expect("}")

	return &ast.ObjectPattern{Span: p.span(start), Properties: props}
}

func (p *scriptParser) parseArrayPattern() ast.Node {
	start := p.next().from

	var elems []ast.Node
	for !p.isPunct("]") && !p.eof() {
		if p.eat(",") {
			elems = append(elems, nil)

			continue
		}

		if p.isPunct("...") {
			elems = append(elems, p.parseRest())
		} else {
			elems = append(elems, p.parseBindingElement())
		}

		if !p.isPunct("]") && !p.expect(",") {
			break
		}
	}

	p.expect("]")

	return &ast.ArrayPattern{Span: p.span(start), Elements: elems}
}

func setTypeAnnotation(target, typ ast.Node) {
	switch t := target.(type) {
	case *ast.Identifier:
		t.TypeAnnotation = typ
	case *ast.ObjectPattern:
		t.TypeAnnotation = typ
	case *ast.ArrayPattern:
		t.TypeAnnotation = typ
	case *ast.RestElement:
		t.TypeAnnotation = typ
	}
}

// toPattern reinterprets an expression as an assignment target.
func (p *scriptParser) toPattern(n ast.Node) ast.Node {
	switch n := n.(type) {
	case *ast.ObjectExpression:
		props := make([]ast.Node, 0, len(n.Properties))
		for _, prop := range n.Properties {
			switch prop := prop.(type) {
			case *ast.SpreadElement:
				props = append(props, &ast.RestElement{Span: prop.Span, Argument: p.toPattern(prop.Argument)})
			case *ast.Property:
				if !prop.Shorthand {
					prop.Value = p.toPattern(prop.Value)
				}

				props = append(props, prop)
			}
		}

		return &ast.ObjectPattern{Span: n.Span, Properties: props}

	case *ast.ArrayExpression:
		elems := make([]ast.Node, len(n.Elements))
		for i, e := range n.Elements {
			if s, ok := e.(*ast.SpreadElement); ok {
				elems[i] = &ast.RestElement{Span: s.Span, Argument: p.toPattern(s.Argument)}

				continue
			}

			if e != nil {
				elems[i] = p.toPattern(e)
			}
		}

		return &ast.ArrayPattern{Span: n.Span, Elements: elems}

	case *ast.AssignmentExpression:
		if n.Operator == "=" {
			return &ast.AssignmentPattern{Span: n.Span, Left: p.toPattern(n.Left), Right: n.Right}
		}

	case *ast.AssignmentPattern, *ast.ObjectPattern, *ast.ArrayPattern:
		return n

	default:
		if isSimpleTarget(n) {
			return n
		}
	}

	if n != nil {
		p.errorf(p.file.Offset(n.Pos()), "invalid assignment target")
	}

	return n
}
