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

// TSAsExpression is `expr as T`.
type TSAsExpression struct {
	Span
	Expression     Node
	TypeAnnotation Node
}

// TSSatisfiesExpression is `expr satisfies T`.
type TSSatisfiesExpression struct {
	Span
	Expression     Node
	TypeAnnotation Node
}

// TSNonNullExpression is `expr!`.
type TSNonNullExpression struct {
	Span
	Expression Node
}

// TSTypeParameterInstantiation is the `<A, B>` argument list of a call or type reference.
type TSTypeParameterInstantiation struct {
	Span
	Params []Node
}

// TSTypeParameterDeclaration is the `<T extends X = Y>` list of a generic declaration.
type TSTypeParameterDeclaration struct {
	Span
	Params []*TSTypeParameter
}

// TSTypeParameter is one generic parameter.
type TSTypeParameter struct {
	Span
	Name       *Identifier
	Constraint Node
	Default    Node
}

// TSInterfaceDeclaration is `interface X extends Y { ... }`.
type TSInterfaceDeclaration struct {
	Span
	ID             *Identifier
	TypeParameters *TSTypeParameterDeclaration
	Extends        []Node
	Body           *TSInterfaceBody
	Declare        bool
}

// TSInterfaceBody lists interface members.
type TSInterfaceBody struct {
	Span
	Body []Node
}

// TSTypeAliasDeclaration is `type X = T`.
type TSTypeAliasDeclaration struct {
	Span
	ID             *Identifier
	TypeParameters *TSTypeParameterDeclaration
	TypeAnnotation Node
	Declare        bool
}

// TSTypeLiteral is `{ a: A; b(): B }`.
type TSTypeLiteral struct {
	Span
	Members []Node
}

// TSPropertySignature is `key?: T` inside a type literal or interface.
type TSPropertySignature struct {
	Span
	Key            Node
	Computed       bool
	Optional       bool
	Readonly       bool
	TypeAnnotation Node
}

// TSMethodSignature is `key(params): R` inside a type literal or interface.
type TSMethodSignature struct {
	Span
	Key            Node
	Computed       bool
	Optional       bool
	TypeParameters *TSTypeParameterDeclaration
	Params         []Node
	ReturnType     Node
}

// TSCallSignature is `(params): R` inside a type literal or interface.
type TSCallSignature struct {
	Span
	TypeParameters *TSTypeParameterDeclaration
	Params         []Node
	ReturnType     Node
}

// TSIndexSignature is `[key: K]: T`.
type TSIndexSignature struct {
	Span
	Params         []Node
	TypeAnnotation Node
	Readonly       bool
}

// TSMappedType is `{ [K in T]: V }`.
type TSMappedType struct {
	Span
	TypeParameter  *TSTypeParameter
	NameType       Node
	TypeAnnotation Node
	Optional       bool
	Readonly       bool
}

// TSTypeReference is a named type with optional type arguments.
type TSTypeReference struct {
	Span
	TypeName      Node // *Identifier | *TSQualifiedName
	TypeArguments *TSTypeParameterInstantiation
}

// TSQualifiedName is `A.B`.
type TSQualifiedName struct {
	Span
	Left  Node
	Right *Identifier
}

// TSUnionType is `A | B`.
type TSUnionType struct {
	Span
	Types []Node
}

// TSIntersectionType is `A & B`.
type TSIntersectionType struct {
	Span
	Types []Node
}

// TSLiteralType is a literal used as a type.
type TSLiteralType struct {
	Span
	Literal Node // *Literal | *TemplateLiteral | *UnaryExpression
}

// TSKeywordType is a predefined type like string, number or unknown.
type TSKeywordType struct {
	Span
	Keyword string
}

// TSArrayType is `T[]`.
type TSArrayType struct {
	Span
	ElementType Node
}

// TSTupleType is `[A, B]`.
type TSTupleType struct {
	Span
	ElementTypes []Node
}

// TSNamedTupleMember is `name?: T` inside a tuple type.
type TSNamedTupleMember struct {
	Span
	Label       *Identifier
	ElementType Node
	Optional    bool
}

// TSRestType is `...T` inside a tuple type.
type TSRestType struct {
	Span
	TypeAnnotation Node
}

// TSFunctionType is `(params) => R` or `new (params) => R`.
type TSFunctionType struct {
	Span
	TypeParameters *TSTypeParameterDeclaration
	Params         []Node
	ReturnType     Node
	Constructor    bool
}

// TSTypeOperator is `keyof T`, `unique T` or `readonly T`.
type TSTypeOperator struct {
	Span
	Operator       string
	TypeAnnotation Node
}

// TSIndexedAccessType is `T[K]`.
type TSIndexedAccessType struct {
	Span
	ObjectType Node
	IndexType  Node
}

// TSTypeQuery is `typeof x`.
type TSTypeQuery struct {
	Span
	ExprName      Node
	TypeArguments *TSTypeParameterInstantiation
}

// TSConditionalType is `C extends E ? T : F`.
type TSConditionalType struct {
	Span
	CheckType   Node
	ExtendsType Node
	TrueType    Node
	FalseType   Node
}

func (*TSAsExpression) Kind() Kind               { return KindTSAsExpression }
func (*TSSatisfiesExpression) Kind() Kind        { return KindTSSatisfiesExpression }
func (*TSNonNullExpression) Kind() Kind          { return KindTSNonNullExpression }
func (*TSTypeParameterInstantiation) Kind() Kind { return KindTSTypeParameterInstantiation }
func (*TSTypeParameterDeclaration) Kind() Kind   { return KindTSTypeParameterDeclaration }
func (*TSTypeParameter) Kind() Kind              { return KindTSTypeParameter }
func (*TSInterfaceDeclaration) Kind() Kind       { return KindTSInterfaceDeclaration }
func (*TSInterfaceBody) Kind() Kind              { return KindTSInterfaceBody }
func (*TSTypeAliasDeclaration) Kind() Kind       { return KindTSTypeAliasDeclaration }
func (*TSTypeLiteral) Kind() Kind                { return KindTSTypeLiteral }
func (*TSPropertySignature) Kind() Kind          { return KindTSPropertySignature }
func (*TSMethodSignature) Kind() Kind            { return KindTSMethodSignature }
func (*TSCallSignature) Kind() Kind              { return KindTSCallSignature }
func (*TSIndexSignature) Kind() Kind             { return KindTSIndexSignature }
func (*TSMappedType) Kind() Kind                 { return KindTSMappedType }
func (*TSTypeReference) Kind() Kind              { return KindTSTypeReference }
func (*TSQualifiedName) Kind() Kind              { return KindTSQualifiedName }
func (*TSUnionType) Kind() Kind                  { return KindTSUnionType }
func (*TSIntersectionType) Kind() Kind           { return KindTSIntersectionType }
func (*TSLiteralType) Kind() Kind                { return KindTSLiteralType }
func (*TSKeywordType) Kind() Kind                { return KindTSKeywordType }
func (*TSArrayType) Kind() Kind                  { return KindTSArrayType }
func (*TSTupleType) Kind() Kind                  { return KindTSTupleType }
func (*TSNamedTupleMember) Kind() Kind           { return KindTSNamedTupleMember }
func (*TSRestType) Kind() Kind                   { return KindTSRestType }
func (*TSFunctionType) Kind() Kind               { return KindTSFunctionType }
func (*TSTypeOperator) Kind() Kind               { return KindTSTypeOperator }
func (*TSIndexedAccessType) Kind() Kind          { return KindTSIndexedAccessType }
func (*TSTypeQuery) Kind() Kind                  { return KindTSTypeQuery }
func (*TSConditionalType) Kind() Kind            { return KindTSConditionalType }
