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

import "go/token"

// Node is implemented by every template and script tree node.
type Node interface {
	Pos() token.Pos // position of the first character belonging to the node
	End() token.Pos // position of the first character immediately after the node
	Kind() Kind
}

// Span is the source range of a node. It is embedded in every node type.
type Span struct {
	From, To token.Pos
}

// Pos implements [Node].
func (s Span) Pos() token.Pos { return s.From }

// End implements [Node].
func (s Span) End() token.Pos { return s.To }

// Kind discriminates node types.
type Kind uint8

//go:generate go tool stringer -type Kind -trimprefix Kind
const (
	KindInvalid Kind = iota

	// Template nodes.
	KindDocumentFragment
	KindElement
	KindStartTag
	KindEndTag
	KindAttribute
	KindDirective
	KindDirectiveKey
	KindAttrName
	KindAttrValue
	KindExpressionContainer
	KindText
	KindForExpression
	KindOnExpression
	KindSlotScopeExpression
	KindFilterSequenceExpression
	KindFilter

	// Script expressions and patterns.
	KindProgram
	KindIdentifier
	KindPrivateIdentifier
	KindLiteral
	KindTemplateLiteral
	KindTemplateElement
	KindTaggedTemplateExpression
	KindThisExpression
	KindSuper
	KindArrayExpression
	KindObjectExpression
	KindProperty
	KindSpreadElement
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassExpression
	KindClassBody
	KindMethodDefinition
	KindPropertyDefinition
	KindStaticBlock
	KindUnaryExpression
	KindUpdateExpression
	KindBinaryExpression
	KindLogicalExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindCallExpression
	KindNewExpression
	KindMemberExpression
	KindChainExpression
	KindSequenceExpression
	KindAwaitExpression
	KindYieldExpression
	KindMetaProperty
	KindImportExpression
	KindObjectPattern
	KindArrayPattern
	KindRestElement
	KindAssignmentPattern

	// Script statements and module declarations.
	KindExpressionStatement
	KindBlockStatement
	KindEmptyStatement
	KindVariableDeclaration
	KindVariableDeclarator
	KindFunctionDeclaration
	KindClassDeclaration
	KindReturnStatement
	KindIfStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindWhileStatement
	KindDoWhileStatement
	KindBreakStatement
	KindContinueStatement
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindSwitchStatement
	KindSwitchCase
	KindLabeledStatement
	KindDebuggerStatement
	KindImportDeclaration
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier
	KindExportDefaultDeclaration
	KindExportNamedDeclaration
	KindExportSpecifier
	KindExportAllDeclaration

	// TypeScript.
	KindTSAsExpression
	KindTSSatisfiesExpression
	KindTSNonNullExpression
	KindTSTypeParameterInstantiation
	KindTSTypeParameterDeclaration
	KindTSTypeParameter
	KindTSInterfaceDeclaration
	KindTSInterfaceBody
	KindTSTypeAliasDeclaration
	KindTSTypeLiteral
	KindTSPropertySignature
	KindTSMethodSignature
	KindTSCallSignature
	KindTSIndexSignature
	KindTSMappedType
	KindTSTypeReference
	KindTSQualifiedName
	KindTSUnionType
	KindTSIntersectionType
	KindTSLiteralType
	KindTSKeywordType
	KindTSArrayType
	KindTSTupleType
	KindTSNamedTupleMember
	KindTSRestType
	KindTSFunctionType
	KindTSTypeOperator
	KindTSIndexedAccessType
	KindTSTypeQuery
	KindTSConditionalType

	kindCount // must be last
)

// IsTemplate reports whether k is a template node kind.
func (k Kind) IsTemplate() bool {
	return k >= KindDocumentFragment && k <= KindFilter
}

// IsTypeScript reports whether k is a TypeScript-only node kind.
func (k Kind) IsTypeScript() bool {
	return k >= KindTSAsExpression && k < kindCount
}
