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

// Namespace is the markup namespace of an [Element].
type Namespace uint8

const (
	// NamespaceHTML is the default namespace.
	NamespaceHTML Namespace = iota
	// NamespaceSVG is used inside <svg> elements.
	NamespaceSVG
	// NamespaceMathML is used inside <math> elements.
	NamespaceMathML
)

// DocumentFragment is the root of a component file. It owns the top-level
// blocks (template, script, style and custom blocks) in document order.
type DocumentFragment struct {
	Span
	Children []Node // *Element | *Text
}

// Element is a markup element.
//
// Variables introduced by k-for or scope directives are owned by the element
// and visible in its own directives and its descendants only.
type Element struct {
	Span
	Name      string // lower-cased for HTML elements
	RawName   string // as written in source
	Namespace Namespace
	StartTag  *StartTag
	EndTag    *EndTag // nil for void, self-closing and unclosed elements
	Children  []Node  // *Element | *Text | *ExpressionContainer
	Variables []*Variable
}

// StartTag holds the ordered attribute list of an [Element].
type StartTag struct {
	Span
	Attributes  []Node // *Attribute | *Directive
	SelfClosing bool
}

// EndTag is the closing tag of an [Element].
type EndTag struct {
	Span
}

// Attribute is a static key/value pair.
type Attribute struct {
	Span
	Key   *AttrName
	Value *AttrValue // nil when the attribute has no value
}

// Directive is a dynamic binding like k-bind:foo, :foo, @click or #default.
type Directive struct {
	Span
	Key   *DirectiveKey
	Value *ExpressionContainer // nil when the directive has no value
}

// DirectiveKey is the parsed name of a [Directive].
//
// For `:foo.prop` the name is "bind" (raw ":"), the argument "foo" and the
// modifiers ["prop"].
type DirectiveKey struct {
	Span
	Name      *AttrName
	Argument  Node // *AttrName | *ExpressionContainer | nil
	Modifiers []*AttrName
}

// AttrName is an identifier within markup: an attribute key, directive name,
// argument or modifier.
type AttrName struct {
	Span
	Name    string
	RawName string
}

// AttrValue is the literal value of a static attribute with entities decoded.
type AttrValue struct {
	Span
	Value string
}

// ExpressionContainer wraps a template expression together with the
// references of its free identifiers.
type ExpressionContainer struct {
	Span
	Expression Node // nil for empty or unparsable values
	References []*Reference
}

// Text is a run of character data.
type Text struct {
	Span
	Value string
}

// ForExpression is the value of a k-for directive: `(item, index) in items`.
type ForExpression struct {
	Span
	Left  []Node // binding patterns
	Right Node
	Of    bool
}

// OnExpression is a k-on handler written as a statement list.
type OnExpression struct {
	Span
	Body []Node
}

// SlotScopeExpression is the parameter list of a k-slot or slot-scope directive.
type SlotScopeExpression struct {
	Span
	Params []Node
}

// FilterSequenceExpression is an expression piped through filters: `a | f(b)`.
type FilterSequenceExpression struct {
	Span
	Expression Node
	Filters    []*Filter
}

// Filter is one stage of a [FilterSequenceExpression].
type Filter struct {
	Span
	Callee    *Identifier
	Arguments []Node
}

// VariableKind is the directive kind that introduced a template [Variable].
type VariableKind uint8

const (
	// VariableFor is introduced by k-for.
	VariableFor VariableKind = iota
	// VariableScope is introduced by k-slot, slot-scope or scope.
	VariableScope
)

func (k VariableKind) String() string {
	if k == VariableScope {
		return "scope"
	}

	return "for"
}

// Variable is a template-scope binding owned by the [Element] that declares it.
type Variable struct {
	ID         *Identifier
	Kind       VariableKind
	References []*Reference
}

// ReferenceMode describes how a reference accesses its binding.
type ReferenceMode uint8

const (
	// Read marks a read access.
	Read ReferenceMode = 1 << iota
	// Write marks a write access.
	Write

	// ReadWrite marks compound accesses like `x += 1`.
	ReadWrite = Read | Write
)

// IsRead reports whether the reference reads its binding.
func (m ReferenceMode) IsRead() bool { return m&Read != 0 }

// IsWrite reports whether the reference writes its binding.
func (m ReferenceMode) IsWrite() bool { return m&Write != 0 }

func (m ReferenceMode) String() string {
	switch m {
	case Read:
		return "r"
	case Write:
		return "w"
	case ReadWrite:
		return "rw"
	default:
		return "-"
	}
}

// Reference is an identifier occurrence in a template expression. A nil
// Variable means the identifier refers to the script scope.
type Reference struct {
	ID       *Identifier
	Mode     ReferenceMode
	Variable *Variable
}

func (*DocumentFragment) Kind() Kind         { return KindDocumentFragment }
func (*Element) Kind() Kind                  { return KindElement }
func (*StartTag) Kind() Kind                 { return KindStartTag }
func (*EndTag) Kind() Kind                   { return KindEndTag }
func (*Attribute) Kind() Kind                { return KindAttribute }
func (*Directive) Kind() Kind                { return KindDirective }
func (*DirectiveKey) Kind() Kind             { return KindDirectiveKey }
func (*AttrName) Kind() Kind                 { return KindAttrName }
func (*AttrValue) Kind() Kind                { return KindAttrValue }
func (*ExpressionContainer) Kind() Kind      { return KindExpressionContainer }
func (*Text) Kind() Kind                     { return KindText }
func (*ForExpression) Kind() Kind            { return KindForExpression }
func (*OnExpression) Kind() Kind             { return KindOnExpression }
func (*SlotScopeExpression) Kind() Kind      { return KindSlotScopeExpression }
func (*FilterSequenceExpression) Kind() Kind { return KindFilterSequenceExpression }
func (*Filter) Kind() Kind                   { return KindFilter }

// Attr returns the static attribute with the given name, or nil.
func (e *Element) Attr(name string) *Attribute {
	if e.StartTag == nil {
		return nil
	}

	for _, a := range e.StartTag.Attributes {
		if attr, ok := a.(*Attribute); ok && attr.Key.Name == name {
			return attr
		}
	}

	return nil
}

// AttrValueOf returns the value of a static attribute and whether it is present.
func (e *Element) AttrValueOf(name string) (string, bool) {
	attr := e.Attr(name)
	if attr == nil {
		return "", false
	}

	if attr.Value == nil {
		return "", true
	}

	return attr.Value.Value, true
}

// Directive returns the first directive with the given name and static
// argument. An empty argument matches directives without argument only.
func (e *Element) Directive(name, argument string) *Directive {
	if e.StartTag == nil {
		return nil
	}

	for _, a := range e.StartTag.Attributes {
		d, ok := a.(*Directive)
		if !ok || d.Key.Name.Name != name {
			continue
		}

		switch arg := d.Key.Argument.(type) {
		case nil:
			if argument == "" {
				return d
			}

		case *AttrName:
			if arg.Name == argument {
				return d
			}
		}
	}

	return nil
}

// HasDirective reports whether the element carries a directive with the given name.
func (e *Element) HasDirective(name string) bool {
	if e.StartTag == nil {
		return false
	}

	for _, a := range e.StartTag.Attributes {
		if d, ok := a.(*Directive); ok && d.Key.Name.Name == name {
			return true
		}
	}

	return false
}

// ElementChildren returns the element children, skipping text and mustaches.
func (e *Element) ElementChildren() []*Element {
	var children []*Element

	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			children = append(children, el)
		}
	}

	return children
}

// ArgumentName returns the static argument of a directive key, if any.
func (k *DirectiveKey) ArgumentName() (string, bool) {
	if arg, ok := k.Argument.(*AttrName); ok {
		return arg.RawName, true
	}

	return "", false
}

// HasModifier reports whether the directive key carries the given modifier.
func (k *DirectiveKey) HasModifier(name string) bool {
	for _, m := range k.Modifiers {
		if m.Name == name {
			return true
		}
	}

	return false
}
