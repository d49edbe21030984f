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

package astutil

import (
	"golang.org/x/net/html/atom"

	"fillmore-labs.com/kdulint/internal/ast"
)

var htmlElements = atomSet(
	atom.A, atom.Abbr, atom.Address, atom.Area, atom.Article, atom.Aside, atom.Audio,
	atom.B, atom.Base, atom.Bdi, atom.Bdo, atom.Blockquote, atom.Body, atom.Br, atom.Button,
	atom.Canvas, atom.Caption, atom.Cite, atom.Code, atom.Col, atom.Colgroup,
	atom.Data, atom.Datalist, atom.Dd, atom.Del, atom.Details, atom.Dfn, atom.Dialog, atom.Div, atom.Dl, atom.Dt,
	atom.Em, atom.Embed, atom.Fieldset, atom.Figcaption, atom.Figure, atom.Footer, atom.Form,
	atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Head, atom.Header, atom.Hgroup, atom.Hr, atom.Html,
	atom.I, atom.Iframe, atom.Img, atom.Input, atom.Ins, atom.Kbd, atom.Label, atom.Legend, atom.Li, atom.Link,
	atom.Main, atom.Map, atom.Mark, atom.Math, atom.Menu, atom.Meta, atom.Meter, atom.Nav, atom.Noscript,
	atom.Object, atom.Ol, atom.Optgroup, atom.Option, atom.Output, atom.P, atom.Param, atom.Picture, atom.Pre,
	atom.Progress, atom.Q, atom.Rp, atom.Rt, atom.Ruby, atom.S, atom.Samp, atom.Script, atom.Search, atom.Section,
	atom.Select, atom.Slot, atom.Small, atom.Source, atom.Span, atom.Strong, atom.Style, atom.Sub, atom.Summary,
	atom.Sup, atom.Svg, atom.Table, atom.Tbody, atom.Td, atom.Template, atom.Textarea, atom.Tfoot, atom.Th,
	atom.Thead, atom.Time, atom.Title, atom.Tr, atom.Track, atom.U, atom.Ul, atom.Var, atom.Video, atom.Wbr,
)

var voidElements = atomSet(
	atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img, atom.Input,
	atom.Link, atom.Meta, atom.Param, atom.Source, atom.Track, atom.Wbr,
)

var optionalEndElements = atomSet(
	atom.Li, atom.Dt, atom.Dd, atom.P, atom.Rt, atom.Rp, atom.Optgroup, atom.Option,
	atom.Colgroup, atom.Caption, atom.Thead, atom.Tbody, atom.Tfoot, atom.Tr, atom.Td, atom.Th,
)

var svgElements = map[string]bool{
	"a": true, "animate": true, "animateMotion": true, "animateTransform": true, "circle": true,
	"clipPath": true, "defs": true, "desc": true, "ellipse": true, "feBlend": true, "feColorMatrix": true,
	"feComposite": true, "feFlood": true, "feGaussianBlur": true, "feImage": true, "feMerge": true,
	"feMergeNode": true, "feOffset": true, "filter": true, "foreignObject": true, "g": true, "image": true,
	"line": true, "linearGradient": true, "marker": true, "mask": true, "metadata": true, "mpath": true,
	"path": true, "pattern": true, "polygon": true, "polyline": true, "radialGradient": true, "rect": true,
	"script": true, "set": true, "stop": true, "style": true, "svg": true, "switch": true, "symbol": true,
	"text": true, "textPath": true, "title": true, "tspan": true, "use": true, "view": true,
}

var builtinComponents = map[string]bool{
	"component": true, "transition": true, "transition-group": true, "keep-alive": true, "slot": true,
	"teleport": true, "suspense": true, "template": true,
	"Component": true, "Transition": true, "TransitionGroup": true, "KeepAlive": true, "Slot": true,
	"Teleport": true, "Suspense": true,
}

func atomSet(atoms ...atom.Atom) map[atom.Atom]bool {
	s := make(map[atom.Atom]bool, len(atoms))
	for _, a := range atoms {
		s[a] = true
	}

	return s
}

// IsHTMLElementName reports whether name is a well-known HTML element name.
// The comparison is case-sensitive.
func IsHTMLElementName(name string) bool {
	return htmlElements[atom.Lookup([]byte(name))]
}

// IsVoidElementName reports whether the HTML element name has no content.
func IsVoidElementName(name string) bool {
	return voidElements[atom.Lookup([]byte(name))]
}

// HasOptionalEndTag reports whether an unclosed element of this name is closed implicitly.
func HasOptionalEndTag(name string) bool {
	return optionalEndElements[atom.Lookup([]byte(name))]
}

// IsSVGElementName reports whether name is a well-known SVG element name.
func IsSVGElementName(name string) bool { return svgElements[name] }

// IsBuiltinComponent reports whether name is a framework built-in element.
func IsBuiltinComponent(name string) bool { return builtinComponents[name] }

// IsCustomComponent reports whether el is a component rather than a plain
// HTML or SVG element.
func IsCustomComponent(el *ast.Element) bool {
	switch el.Namespace {
	case ast.NamespaceHTML:
		if !IsHTMLElementName(el.RawName) {
			return true
		}

	case ast.NamespaceSVG:
		if !IsSVGElementName(el.RawName) {
			return true
		}
	}

	if el.Attr("is") != nil || el.Directive("bind", "is") != nil || el.HasDirective("is") {
		return true
	}

	return false
}
