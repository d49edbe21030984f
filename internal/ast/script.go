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

package ast

// Program is the merged module body of all script blocks of a file.
type Program struct {
	Span
	Body []Node
}

// Identifier is a name in script or template expressions.
type Identifier struct {
	Span
	Name           string
	Optional       bool // TypeScript `x?: T` parameter
	TypeAnnotation Node
}

// PrivateIdentifier is a `#name` class member key.
type PrivateIdentifier struct {
	Span
	Name string
}

// LiteralKind discriminates [Literal] values.
type LiteralKind uint8

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBigInt
	LiteralBoolean
	LiteralNull
	LiteralRegExp
)

// Literal is a primitive literal. Value holds the cooked string value for
// strings and the raw text otherwise.
type Literal struct {
	Span
	LitKind LiteralKind
	Value   string
	Raw     string
}

// TemplateLiteral is a backtick string.
type TemplateLiteral struct {
	Span
	Quasis      []*TemplateElement
	Expressions []Node
}

// TemplateElement is a static chunk of a [TemplateLiteral].
type TemplateElement struct {
	Span
	Raw    string
	Cooked string
	Tail   bool
}

// TaggedTemplateExpression is tag`...`.
type TaggedTemplateExpression struct {
	Span
	Tag           Node
	Quasi         *TemplateLiteral
	TypeArguments *TSTypeParameterInstantiation
}

// ThisExpression is `this`.
type ThisExpression struct{ Span }

// Super is `super`.
type Super struct{ Span }

// ArrayExpression is an array literal. Holes are nil elements.
type ArrayExpression struct {
	Span
	Elements []Node
}

// ObjectExpression is an object literal.
type ObjectExpression struct {
	Span
	Properties []Node // *Property | *SpreadElement
}

// PropertyKind is the accessor kind of a [Property].
type PropertyKind uint8

const (
	PropertyInit PropertyKind = iota
	PropertyGet
	PropertySet
)

// Property is an object literal member or an object pattern entry.
type Property struct {
	Span
	Key       Node
	Value     Node
	PropKind  PropertyKind
	Computed  bool
	Shorthand bool
	Method    bool
}

// SpreadElement is `...expr` in arrays, objects and arguments.
type SpreadElement struct {
	Span
	Argument Node
}

// Func holds the parts shared by function declarations, expressions and arrows.
type Func struct {
	ID             *Identifier
	Params         []Node
	Body           Node // *BlockStatement, or an expression for concise arrows
	Async          bool
	Generator      bool
	TypeParameters *TSTypeParameterDeclaration
	ReturnType     Node
}

// FunctionExpression is `function () {}`.
type FunctionExpression struct {
	Span
	Func
}

// ArrowFunctionExpression is `() => {}`.
type ArrowFunctionExpression struct {
	Span
	Func
}

// FunctionDeclaration is a function statement.
type FunctionDeclaration struct {
	Span
	Func
}

// Concise reports whether an arrow function has an expression body.
func (f *Func) Concise() bool {
	_, ok := f.Body.(*BlockStatement)
	return !ok
}

// AsFunc returns the shared function parts of a function-like node.
func AsFunc(n Node) (*Func, bool) {
	switch n := n.(type) {
	case *FunctionExpression:
		return &n.Func, true
	case *ArrowFunctionExpression:
		return &n.Func, true
	case *FunctionDeclaration:
		return &n.Func, true
	default:
		return nil, false
	}
}

// Class holds the parts shared by class declarations and expressions.
type Class struct {
	ID         *Identifier
	SuperClass Node
	Body       *ClassBody
}

// ClassExpression is an anonymous or named class expression.
type ClassExpression struct {
	Span
	Class
}

// ClassDeclaration is a class statement.
type ClassDeclaration struct {
	Span
	Class
}

// ClassBody lists class members.
type ClassBody struct {
	Span
	Body []Node
}

// MethodKind is the kind of a [MethodDefinition].
type MethodKind uint8

const (
	MethodMethod MethodKind = iota
	MethodGet
	MethodSet
	MethodConstructor
)

// MethodDefinition is a class method.
type MethodDefinition struct {
	Span
	Key      Node
	Value    *FunctionExpression
	MethKind MethodKind
	Computed bool
	Static   bool
}

// PropertyDefinition is a class field.
type PropertyDefinition struct {
	Span
	Key            Node
	Value          Node
	Computed       bool
	Static         bool
	TypeAnnotation Node
}

// StaticBlock is `static { ... }` inside a class body.
type StaticBlock struct {
	Span
	Body []Node
}

// UnaryExpression is a prefix operator like `!x`, `typeof x` or `delete x.y`.
type UnaryExpression struct {
	Span
	Operator string
	Argument Node
}

// UpdateExpression is `++x`, `x--` and friends.
type UpdateExpression struct {
	Span
	Operator string
	Prefix   bool
	Argument Node
}

// BinaryExpression is a binary arithmetic, relational or bitwise expression.
type BinaryExpression struct {
	Span
	Operator string
	Left     Node
	Right    Node
}

// LogicalExpression is `&&`, `||` or `??`.
type LogicalExpression struct {
	Span
	Operator string
	Left     Node
	Right    Node
}

// AssignmentExpression is `=` or a compound assignment.
type AssignmentExpression struct {
	Span
	Operator string
	Left     Node
	Right    Node
}

// ConditionalExpression is `test ? a : b`.
type ConditionalExpression struct {
	Span
	Test       Node
	Consequent Node
	Alternate  Node
}

// CallExpression is a function call.
type CallExpression struct {
	Span
	Callee        Node
	Arguments     []Node
	Optional      bool
	TypeArguments *TSTypeParameterInstantiation
}

// NewExpression is `new C(...)`.
type NewExpression struct {
	Span
	Callee        Node
	Arguments     []Node
	TypeArguments *TSTypeParameterInstantiation
}

// MemberExpression is `a.b`, `a[b]` or `a?.b`.
type MemberExpression struct {
	Span
	Object   Node
	Property Node
	Computed bool
	Optional bool
}

// ChainExpression wraps an optional chain.
type ChainExpression struct {
	Span
	Expression Node
}

// SequenceExpression is `a, b`.
type SequenceExpression struct {
	Span
	Expressions []Node
}

// AwaitExpression is `await x`.
type AwaitExpression struct {
	Span
	Argument Node
}

// YieldExpression is `yield x` or `yield* x`.
type YieldExpression struct {
	Span
	Argument Node
	Delegate bool
}

// MetaProperty is `new.target` or `import.meta`.
type MetaProperty struct {
	Span
	Meta     *Identifier
	Property *Identifier
}

// ImportExpression is a dynamic `import(source)`.
type ImportExpression struct {
	Span
	Source Node
}

// ObjectPattern is a destructuring `{a, b: c, ...rest}`.
type ObjectPattern struct {
	Span
	Properties     []Node // *Property | *RestElement
	TypeAnnotation Node
}

// ArrayPattern is a destructuring `[a, , b, ...rest]`. Holes are nil.
type ArrayPattern struct {
	Span
	Elements       []Node
	TypeAnnotation Node
}

// RestElement is `...x` in patterns and parameter lists.
type RestElement struct {
	Span
	Argument       Node
	TypeAnnotation Node
}

// AssignmentPattern is a pattern with a default value.
type AssignmentPattern struct {
	Span
	Left  Node
	Right Node
}

// ExpressionStatement is an expression in statement position. Directive holds
// the raw prologue string like "use strict".
type ExpressionStatement struct {
	Span
	Expression Node
	Directive  string
}

// BlockStatement is `{ ... }`.
type BlockStatement struct {
	Span
	Body []Node
}

// EmptyStatement is a lone `;`.
type EmptyStatement struct{ Span }

// VariableDeclaration is a var, let or const declaration.
type VariableDeclaration struct {
	Span
	DeclKind     string // "var", "let" or "const"
	Declarations []*VariableDeclarator
	Declare      bool
}

// VariableDeclarator is one binding of a [VariableDeclaration].
type VariableDeclarator struct {
	Span
	ID   Node
	Init Node
}

// ReturnStatement is `return x`.
type ReturnStatement struct {
	Span
	Argument Node
}

// IfStatement is `if (test) a else b`.
type IfStatement struct {
	Span
	Test       Node
	Consequent Node
	Alternate  Node
}

// ForStatement is a C-style for loop.
type ForStatement struct {
	Span
	Init   Node
	Test   Node
	Update Node
	Body   Node
}

// ForInStatement is `for (a in b)`.
type ForInStatement struct {
	Span
	Left  Node
	Right Node
	Body  Node
}

// ForOfStatement is `for (a of b)`.
type ForOfStatement struct {
	Span
	Left  Node
	Right Node
	Body  Node
	Await bool
}

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	Span
	Test Node
	Body Node
}

// DoWhileStatement is `do body while (test)`.
type DoWhileStatement struct {
	Span
	Body Node
	Test Node
}

// BreakStatement is `break label`.
type BreakStatement struct {
	Span
	Label *Identifier
}

// ContinueStatement is `continue label`.
type ContinueStatement struct {
	Span
	Label *Identifier
}

// ThrowStatement is `throw x`.
type ThrowStatement struct {
	Span
	Argument Node
}

// TryStatement is try/catch/finally.
type TryStatement struct {
	Span
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

// CatchClause is the catch part of a [TryStatement].
type CatchClause struct {
	Span
	Param Node
	Body  *BlockStatement
}

// SwitchStatement is `switch (x) { ... }`.
type SwitchStatement struct {
	Span
	Discriminant Node
	Cases        []*SwitchCase
}

// SwitchCase is a case or default clause. Test is nil for default.
type SwitchCase struct {
	Span
	Test       Node
	Consequent []Node
}

// LabeledStatement is `label: body`.
type LabeledStatement struct {
	Span
	Label *Identifier
	Body  Node
}

// DebuggerStatement is `debugger`.
type DebuggerStatement struct{ Span }

// ImportDeclaration is a static import.
type ImportDeclaration struct {
	Span
	Specifiers []Node // *ImportSpecifier | *ImportDefaultSpecifier | *ImportNamespaceSpecifier
	Source     *Literal
	TypeOnly   bool
}

// ImportSpecifier is `{ imported as local }`.
type ImportSpecifier struct {
	Span
	Imported Node // *Identifier | *Literal
	Local    *Identifier
	TypeOnly bool
}

// ImportDefaultSpecifier is `import local from ...`.
type ImportDefaultSpecifier struct {
	Span
	Local *Identifier
}

// ImportNamespaceSpecifier is `import * as local from ...`.
type ImportNamespaceSpecifier struct {
	Span
	Local *Identifier
}

// ExportDefaultDeclaration is `export default x`.
type ExportDefaultDeclaration struct {
	Span
	Declaration Node
}

// ExportNamedDeclaration is `export const x`, `export { a as b }` or a re-export.
type ExportNamedDeclaration struct {
	Span
	Declaration Node
	Specifiers  []*ExportSpecifier
	Source      *Literal
	TypeOnly    bool
}

// ExportSpecifier is `local as exported`.
type ExportSpecifier struct {
	Span
	Local    Node // *Identifier | *Literal
	Exported Node // *Identifier | *Literal
}

// ExportAllDeclaration is `export * from ...`.
type ExportAllDeclaration struct {
	Span
	Exported Node
	Source   *Literal
}

func (*Program) Kind() Kind                  { return KindProgram }
func (*Identifier) Kind() Kind               { return KindIdentifier }
func (*PrivateIdentifier) Kind() Kind        { return KindPrivateIdentifier }
func (*Literal) Kind() Kind                  { return KindLiteral }
func (*TemplateLiteral) Kind() Kind          { return KindTemplateLiteral }
func (*TemplateElement) Kind() Kind          { return KindTemplateElement }
func (*TaggedTemplateExpression) Kind() Kind { return KindTaggedTemplateExpression }
func (*ThisExpression) Kind() Kind           { return KindThisExpression }
func (*Super) Kind() Kind                    { return KindSuper }
func (*ArrayExpression) Kind() Kind          { return KindArrayExpression }
func (*ObjectExpression) Kind() Kind         { return KindObjectExpression }
func (*Property) Kind() Kind                 { return KindProperty }
func (*SpreadElement) Kind() Kind            { return KindSpreadElement }
func (*FunctionExpression) Kind() Kind       { return KindFunctionExpression }
func (*ArrowFunctionExpression) Kind() Kind  { return KindArrowFunctionExpression }
func (*ClassExpression) Kind() Kind          { return KindClassExpression }
func (*ClassBody) Kind() Kind                { return KindClassBody }
func (*MethodDefinition) Kind() Kind         { return KindMethodDefinition }
func (*PropertyDefinition) Kind() Kind       { return KindPropertyDefinition }
func (*StaticBlock) Kind() Kind              { return KindStaticBlock }
func (*UnaryExpression) Kind() Kind          { return KindUnaryExpression }
func (*UpdateExpression) Kind() Kind         { return KindUpdateExpression }
func (*BinaryExpression) Kind() Kind         { return KindBinaryExpression }
func (*LogicalExpression) Kind() Kind        { return KindLogicalExpression }
func (*AssignmentExpression) Kind() Kind     { return KindAssignmentExpression }
func (*ConditionalExpression) Kind() Kind    { return KindConditionalExpression }
func (*CallExpression) Kind() Kind           { return KindCallExpression }
func (*NewExpression) Kind() Kind            { return KindNewExpression }
func (*MemberExpression) Kind() Kind         { return KindMemberExpression }
func (*ChainExpression) Kind() Kind          { return KindChainExpression }
func (*SequenceExpression) Kind() Kind       { return KindSequenceExpression }
func (*AwaitExpression) Kind() Kind          { return KindAwaitExpression }
func (*YieldExpression) Kind() Kind          { return KindYieldExpression }
func (*MetaProperty) Kind() Kind             { return KindMetaProperty }
func (*ImportExpression) Kind() Kind         { return KindImportExpression }
func (*ObjectPattern) Kind() Kind            { return KindObjectPattern }
func (*ArrayPattern) Kind() Kind             { return KindArrayPattern }
func (*RestElement) Kind() Kind              { return KindRestElement }
func (*AssignmentPattern) Kind() Kind        { return KindAssignmentPattern }
func (*ExpressionStatement) Kind() Kind      { return KindExpressionStatement }
func (*BlockStatement) Kind() Kind           { return KindBlockStatement }
func (*EmptyStatement) Kind() Kind           { return KindEmptyStatement }
func (*VariableDeclaration) Kind() Kind      { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() Kind       { return KindVariableDeclarator }
func (*FunctionDeclaration) Kind() Kind      { return KindFunctionDeclaration }
func (*ClassDeclaration) Kind() Kind         { return KindClassDeclaration }
func (*ReturnStatement) Kind() Kind          { return KindReturnStatement }
func (*IfStatement) Kind() Kind              { return KindIfStatement }
func (*ForStatement) Kind() Kind             { return KindForStatement }
func (*ForInStatement) Kind() Kind           { return KindForInStatement }
func (*ForOfStatement) Kind() Kind           { return KindForOfStatement }
func (*WhileStatement) Kind() Kind           { return KindWhileStatement }
func (*DoWhileStatement) Kind() Kind         { return KindDoWhileStatement }
func (*BreakStatement) Kind() Kind           { return KindBreakStatement }
func (*ContinueStatement) Kind() Kind        { return KindContinueStatement }
func (*ThrowStatement) Kind() Kind           { return KindThrowStatement }
func (*TryStatement) Kind() Kind             { return KindTryStatement }
func (*CatchClause) Kind() Kind              { return KindCatchClause }
func (*SwitchStatement) Kind() Kind          { return KindSwitchStatement }
func (*SwitchCase) Kind() Kind               { return KindSwitchCase }
func (*LabeledStatement) Kind() Kind         { return KindLabeledStatement }
func (*DebuggerStatement) Kind() Kind        { return KindDebuggerStatement }
func (*ImportDeclaration) Kind() Kind        { return KindImportDeclaration }
func (*ImportSpecifier) Kind() Kind          { return KindImportSpecifier }
func (*ImportDefaultSpecifier) Kind() Kind   { return KindImportDefaultSpecifier }
func (*ImportNamespaceSpecifier) Kind() Kind { return KindImportNamespaceSpecifier }
func (*ExportDefaultDeclaration) Kind() Kind { return KindExportDefaultDeclaration }
func (*ExportNamedDeclaration) Kind() Kind   { return KindExportNamedDeclaration }
func (*ExportSpecifier) Kind() Kind          { return KindExportSpecifier }
func (*ExportAllDeclaration) Kind() Kind     { return KindExportAllDeclaration }
