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

import "iter"

// Children yields the direct children of n in source order. Nil children
// and array holes are skipped. The key of a shorthand property is the same
// node as (or part of) its value and is yielded only once.
func Children(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		eachChild(n, yield)
	}
}

// Inspect traverses the tree rooted at n in depth-first source order,
// calling f for each node. If f returns false, the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	for c := range Children(n) {
		Inspect(c, f)
	}
}

// Preorder yields all nodes of the tree rooted at n in depth-first source order.
func Preorder(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		preorder(n, yield)
	}
}

func preorder(n Node, yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}

	for c := range Children(n) {
		if !preorder(c, yield) {
			return false
		}
	}

	return true
}

func list[N Node](yield func(Node) bool, nodes []N) bool {
	for _, c := range nodes {
		if !one(yield, c) {
			return false
		}
	}

	return true
}

func one(yield func(Node) bool, n Node) bool {
	if isNil(n) {
		return true
	}

	return yield(n)
}

// isNil catches typed nil pointers stored in optional fields.
func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Identifier:
		return n == nil
	case *Literal:
		return n == nil
	case *BlockStatement:
		return n == nil
	case *CatchClause:
		return n == nil
	case *ClassBody:
		return n == nil
	case *FunctionExpression:
		return n == nil
	case *TemplateLiteral:
		return n == nil
	case *TSTypeParameterInstantiation:
		return n == nil
	case *TSTypeParameterDeclaration:
		return n == nil
	case *TSTypeParameter:
		return n == nil
	case *TSInterfaceBody:
		return n == nil
	case *StartTag:
		return n == nil
	case *EndTag:
		return n == nil
	case *AttrName:
		return n == nil
	case *AttrValue:
		return n == nil
	case *DirectiveKey:
		return n == nil
	case *ExpressionContainer:
		return n == nil
	default:
		return false
	}
}

func funcChildren(yield func(Node) bool, f *Func) bool {
	return one(yield, f.ID) &&
		one(yield, f.TypeParameters) &&
		list(yield, f.Params) &&
		one(yield, f.ReturnType) &&
		one(yield, f.Body)
}

func classChildren(yield func(Node) bool, c *Class) bool {
	return one(yield, c.ID) && one(yield, c.SuperClass) && one(yield, c.Body)
}

//nolint:gocyclo,cyclop,funlen,maintidx
func eachChild(n Node, yield func(Node) bool) bool {
	switch n := n.(type) {
	// Template nodes.
	case *DocumentFragment:
		return list(yield, n.Children)
	case *Element:
		return one(yield, n.StartTag) && list(yield, n.Children) && one(yield, n.EndTag)
	case *StartTag:
		return list(yield, n.Attributes)
	case *Attribute:
		return one(yield, n.Key) && one(yield, n.Value)
	case *Directive:
		return one(yield, n.Key) && one(yield, n.Value)
	case *DirectiveKey:
		return one(yield, n.Name) && one(yield, n.Argument) && list(yield, n.Modifiers)
	case *ExpressionContainer:
		return one(yield, n.Expression)
	case *ForExpression:
		return list(yield, n.Left) && one(yield, n.Right)
	case *OnExpression:
		return list(yield, n.Body)
	case *SlotScopeExpression:
		return list(yield, n.Params)
	case *FilterSequenceExpression:
		return one(yield, n.Expression) && list(yield, n.Filters)
	case *Filter:
		return one(yield, n.Callee) && list(yield, n.Arguments)

	// Script expressions and patterns.
	case *Program:
		return list(yield, n.Body)
	case *Identifier:
		return one(yield, n.TypeAnnotation)
	case *TemplateLiteral:
		for i, q := range n.Quasis {
			if !yield(q) {
				return false
			}

			if i < len(n.Expressions) && !one(yield, n.Expressions[i]) {
				return false
			}
		}

		return true
	case *TaggedTemplateExpression:
		return one(yield, n.Tag) && one(yield, n.TypeArguments) && one(yield, n.Quasi)
	case *ArrayExpression:
		return list(yield, n.Elements)
	case *ObjectExpression:
		return list(yield, n.Properties)
	case *Property:
		if !n.Shorthand && !one(yield, n.Key) {
			return false
		}

		return one(yield, n.Value)
	case *SpreadElement:
		return one(yield, n.Argument)
	case *FunctionExpression:
		return funcChildren(yield, &n.Func)
	case *ArrowFunctionExpression:
		return funcChildren(yield, &n.Func)
	case *FunctionDeclaration:
		return funcChildren(yield, &n.Func)
	case *ClassExpression:
		return classChildren(yield, &n.Class)
	case *ClassDeclaration:
		return classChildren(yield, &n.Class)
	case *ClassBody:
		return list(yield, n.Body)
	case *MethodDefinition:
		return one(yield, n.Key) && one(yield, n.Value)
	case *PropertyDefinition:
		return one(yield, n.Key) && one(yield, n.TypeAnnotation) && one(yield, n.Value)
	case *StaticBlock:
		return list(yield, n.Body)
	case *UnaryExpression:
		return one(yield, n.Argument)
	case *UpdateExpression:
		return one(yield, n.Argument)
	case *BinaryExpression:
		return one(yield, n.Left) && one(yield, n.Right)
	case *LogicalExpression:
		return one(yield, n.Left) && one(yield, n.Right)
	case *AssignmentExpression:
		return one(yield, n.Left) && one(yield, n.Right)
	case *ConditionalExpression:
		return one(yield, n.Test) && one(yield, n.Consequent) && one(yield, n.Alternate)
	case *CallExpression:
		return one(yield, n.Callee) && one(yield, n.TypeArguments) && list(yield, n.Arguments)
	case *NewExpression:
		return one(yield, n.Callee) && one(yield, n.TypeArguments) && list(yield, n.Arguments)
	case *MemberExpression:
		return one(yield, n.Object) && one(yield, n.Property)
	case *ChainExpression:
		return one(yield, n.Expression)
	case *SequenceExpression:
		return list(yield, n.Expressions)
	case *AwaitExpression:
		return one(yield, n.Argument)
	case *YieldExpression:
		return one(yield, n.Argument)
	case *MetaProperty:
		return one(yield, n.Meta) && one(yield, n.Property)
	case *ImportExpression:
		return one(yield, n.Source)
	case *ObjectPattern:
		return list(yield, n.Properties) && one(yield, n.TypeAnnotation)
	case *ArrayPattern:
		return list(yield, n.Elements) && one(yield, n.TypeAnnotation)
	case *RestElement:
		return one(yield, n.Argument) && one(yield, n.TypeAnnotation)
	case *AssignmentPattern:
		return one(yield, n.Left) && one(yield, n.Right)

	// Statements and module declarations.
	case *ExpressionStatement:
		return one(yield, n.Expression)
	case *BlockStatement:
		return list(yield, n.Body)
	case *VariableDeclaration:
		return list(yield, n.Declarations)
	case *VariableDeclarator:
		return one(yield, n.ID) && one(yield, n.Init)
	case *ReturnStatement:
		return one(yield, n.Argument)
	case *IfStatement:
		return one(yield, n.Test) && one(yield, n.Consequent) && one(yield, n.Alternate)
	case *ForStatement:
		return one(yield, n.Init) && one(yield, n.Test) && one(yield, n.Update) && one(yield, n.Body)
	case *ForInStatement:
		return one(yield, n.Left) && one(yield, n.Right) && one(yield, n.Body)
	case *ForOfStatement:
		return one(yield, n.Left) && one(yield, n.Right) && one(yield, n.Body)
	case *WhileStatement:
		return one(yield, n.Test) && one(yield, n.Body)
	case *DoWhileStatement:
		return one(yield, n.Body) && one(yield, n.Test)
	case *BreakStatement:
		return one(yield, n.Label)
	case *ContinueStatement:
		return one(yield, n.Label)
	case *ThrowStatement:
		return one(yield, n.Argument)
	case *TryStatement:
		return one(yield, n.Block) && one(yield, n.Handler) && one(yield, n.Finalizer)
	case *CatchClause:
		return one(yield, n.Param) && one(yield, n.Body)
	case *SwitchStatement:
		return one(yield, n.Discriminant) && list(yield, n.Cases)
	case *SwitchCase:
		return one(yield, n.Test) && list(yield, n.Consequent)
	case *LabeledStatement:
		return one(yield, n.Label) && one(yield, n.Body)
	case *ImportDeclaration:
		return list(yield, n.Specifiers) && one(yield, n.Source)
	case *ImportSpecifier:
		if n.Imported != Node(n.Local) && !one(yield, n.Imported) {
			return false
		}

		return one(yield, n.Local)
	case *ImportDefaultSpecifier:
		return one(yield, n.Local)
	case *ImportNamespaceSpecifier:
		return one(yield, n.Local)
	case *ExportDefaultDeclaration:
		return one(yield, n.Declaration)
	case *ExportNamedDeclaration:
		return one(yield, n.Declaration) && list(yield, n.Specifiers) && one(yield, n.Source)
	case *ExportSpecifier:
		if !one(yield, n.Local) {
			return false
		}

		if n.Exported == n.Local {
			return true
		}

		return one(yield, n.Exported)
	case *ExportAllDeclaration:
		return one(yield, n.Exported) && one(yield, n.Source)

	// TypeScript.
	case *TSAsExpression:
		return one(yield, n.Expression) && one(yield, n.TypeAnnotation)
	case *TSSatisfiesExpression:
		return one(yield, n.Expression) && one(yield, n.TypeAnnotation)
	case *TSNonNullExpression:
		return one(yield, n.Expression)
	case *TSTypeParameterInstantiation:
		return list(yield, n.Params)
	case *TSTypeParameterDeclaration:
		return list(yield, n.Params)
	case *TSTypeParameter:
		return one(yield, n.Name) && one(yield, n.Constraint) && one(yield, n.Default)
	case *TSInterfaceDeclaration:
		return one(yield, n.ID) && one(yield, n.TypeParameters) && list(yield, n.Extends) && one(yield, n.Body)
	case *TSInterfaceBody:
		return list(yield, n.Body)
	case *TSTypeAliasDeclaration:
		return one(yield, n.ID) && one(yield, n.TypeParameters) && one(yield, n.TypeAnnotation)
	case *TSTypeLiteral:
		return list(yield, n.Members)
	case *TSPropertySignature:
		return one(yield, n.Key) && one(yield, n.TypeAnnotation)
	case *TSMethodSignature:
		return one(yield, n.Key) && one(yield, n.TypeParameters) && list(yield, n.Params) && one(yield, n.ReturnType)
	case *TSCallSignature:
		return one(yield, n.TypeParameters) && list(yield, n.Params) && one(yield, n.ReturnType)
	case *TSIndexSignature:
		return list(yield, n.Params) && one(yield, n.TypeAnnotation)
	case *TSMappedType:
		return one(yield, n.TypeParameter) && one(yield, n.NameType) && one(yield, n.TypeAnnotation)
	case *TSTypeReference:
		return one(yield, n.TypeName) && one(yield, n.TypeArguments)
	case *TSQualifiedName:
		return one(yield, n.Left) && one(yield, n.Right)
	case *TSUnionType:
		return list(yield, n.Types)
	case *TSIntersectionType:
		return list(yield, n.Types)
	case *TSLiteralType:
		return one(yield, n.Literal)
	case *TSArrayType:
		return one(yield, n.ElementType)
	case *TSTupleType:
		return list(yield, n.ElementTypes)
	case *TSNamedTupleMember:
		return one(yield, n.Label) && one(yield, n.ElementType)
	case *TSRestType:
		return one(yield, n.TypeAnnotation)
	case *TSFunctionType:
		return one(yield, n.TypeParameters) && list(yield, n.Params) && one(yield, n.ReturnType)
	case *TSTypeOperator:
		return one(yield, n.TypeAnnotation)
	case *TSIndexedAccessType:
		return one(yield, n.ObjectType) && one(yield, n.IndexType)
	case *TSTypeQuery:
		return one(yield, n.ExprName) && one(yield, n.TypeArguments)
	case *TSConditionalType:
		return one(yield, n.CheckType) && one(yield, n.ExtendsType) && one(yield, n.TrueType) && one(yield, n.FalseType)

	default: // leaves
		return true
	}
}
