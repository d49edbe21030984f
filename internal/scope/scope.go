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

// Package scope computes lexical scopes, declarations and references of a script tree.
package scope

import (
	"go/token"
	"iter"

	"fillmore-labs.com/kdulint/internal/ast"
)

// Type classifies scopes.
type Type uint8

//go:generate go tool stringer -type Type -linecomment
const (
	TypeModule     Type = iota // module
	TypeExpression             // expression
	TypeFunction               // function
	TypeBlock                  // block
	TypeFor                    // for
	TypeSwitch                 // switch
	TypeCatch                  // catch
	TypeClass                  // class
)

// IsFunction reports whether scopes of this type bind `this`.
func (t Type) IsFunction() bool {
	return t == TypeFunction || t == TypeModule || t == TypeExpression
}

// DefKind classifies variable definitions.
type DefKind uint8

//go:generate go tool stringer -type DefKind -trimprefix Def
const (
	DefVar DefKind = iota
	DefLet
	DefConst
	DefParameter
	DefFunctionName
	DefClassName
	DefImportBinding
	DefCatchClause
)

// Definition is one declaration of a variable.
type Definition struct {
	Kind   DefKind
	Name   *ast.Identifier
	Node   ast.Node // declarator, function, class, import specifier or catch clause
	Parent ast.Node // enclosing declaration, when there is one
}

// Variable is a named binding in a scope.
type Variable struct {
	Name        string
	Scope       *Scope
	Defs        []Definition
	Identifiers []*ast.Identifier
	References  []*Reference
}

// Reference is an identifier occurrence in expression position.
type Reference struct {
	Identifier *ast.Identifier
	From       *Scope
	Mode       ast.ReferenceMode
	Init       bool     // initializer of a declaration
	WriteExpr  ast.Node // assigned value, when known
	Resolved   *Variable
}

func (r *Reference) IsRead() bool { return r.Mode.IsRead() }

func (r *Reference) IsWrite() bool { return r.Mode.IsWrite() }

// Scope is a lexical scope.
type Scope struct {
	Type       Type
	Block      ast.Node
	Upper      *Scope
	Children   []*Scope
	Variables  []*Variable
	References []*Reference
	Through    []*Reference // references not resolved in this scope

	set map[string]*Variable
}

// Set returns the variable declared in this scope under name.
func (s *Scope) Set(name string) (*Variable, bool) {
	v, ok := s.set[name]

	return v, ok
}

// Lookup resolves name in s and its enclosing scopes.
func (s *Scope) Lookup(name string) *Variable {
	for sc := s; sc != nil; sc = sc.Upper {
		if v, ok := sc.set[name]; ok {
			return v
		}
	}

	return nil
}

// FunctionScope returns the innermost scope binding `this`.
func (s *Scope) FunctionScope() *Scope {
	sc := s
	for !sc.Type.IsFunction() {
		sc = sc.Upper
	}

	return sc
}

func (s *Scope) contains(pos token.Pos) bool {
	return s.Block.Pos() <= pos && pos < s.Block.End()
}

func (s *Scope) declare(name *ast.Identifier, def Definition) *Variable {
	v, ok := s.set[name.Name]
	if !ok {
		v = &Variable{Name: name.Name, Scope: s}
		s.set[name.Name] = v
		s.Variables = append(s.Variables, v)
	}

	v.Defs = append(v.Defs, def)
	v.Identifiers = append(v.Identifiers, name)

	return v
}

// Manager holds the scopes of an analyzed tree.
type Manager struct {
	root   *Scope
	scopes map[ast.Node]*Scope
	vars   map[*ast.Identifier]*Variable
	refs   map[*ast.Identifier]*Reference
}

// Module returns the root scope.
func (m *Manager) Module() *Scope { return m.root }

// Acquire returns the scope created by node n, or nil.
func (m *Manager) Acquire(n ast.Node) *Scope { return m.scopes[n] }

// Innermost returns the innermost scope containing n.
func (m *Manager) Innermost(n ast.Node) *Scope {
	pos := n.Pos()

	s := m.root
outer:
	for {
		for _, c := range s.Children {
			if c.contains(pos) {
				s = c

				continue outer
			}
		}

		return s
	}
}

// VariableOf returns the variable declared by id.
func (m *Manager) VariableOf(id *ast.Identifier) (*Variable, bool) {
	v, ok := m.vars[id]

	return v, ok
}

// ReferenceOf returns the reference made by id.
func (m *Manager) ReferenceOf(id *ast.Identifier) (*Reference, bool) {
	r, ok := m.refs[id]

	return r, ok
}

// Scopes iterates over all scopes in pre-order.
func (m *Manager) Scopes() iter.Seq[*Scope] {
	return func(yield func(*Scope) bool) {
		var walk func(s *Scope) bool
		walk = func(s *Scope) bool {
			if !yield(s) {
				return false
			}

			for _, c := range s.Children {
				if !walk(c) {
					return false
				}
			}

			return true
		}

		walk(m.root)
	}
}

// References iterates over all references in source order per scope.
func (m *Manager) References() iter.Seq[*Reference] {
	return func(yield func(*Reference) bool) {
		for s := range m.Scopes() {
			for _, r := range s.References {
				if !yield(r) {
					return
				}
			}
		}
	}
}
