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

package property

import (
	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
	"fillmore-labs.com/kdulint/internal/component"
)

// Props returns the props of a descriptor in declaration order.
func Props(f *ast.File, d *component.Descriptor) []*Property {
	if d == nil {
		return nil
	}

	if d.Type != component.TypeSetupScript {
		if p := d.Option("props"); p != nil {
			return runtimeProps(p.Value)
		}

		return nil
	}

	var props []*Property

	for _, m := range d.MacrosNamed("defineProps") {
		props = append(props, macroProps(f, m)...)
	}

	for _, m := range d.MacrosNamed("defineModel") {
		props = append(props, modelProp(m))
	}

	return props
}

// Emits returns the declared events of a descriptor in declaration order.
func Emits(f *ast.File, d *component.Descriptor) []*Property {
	if d == nil {
		return nil
	}

	if d.Type != component.TypeSetupScript {
		if p := d.Option("emits"); p != nil {
			return runtimeNames(p.Value)
		}

		return nil
	}

	var emits []*Property

	for _, m := range d.MacrosNamed("defineEmits") {
		switch {
		case len(m.Call.Arguments) > 0:
			emits = append(emits, runtimeNames(m.Call.Arguments[0])...)

		case m.Call.TypeArguments != nil && len(m.Call.TypeArguments.Params) > 0:
			emits = append(emits, typeEmits(f, m.Call.TypeArguments.Params[0])...)
		}
	}

	for _, m := range d.MacrosNamed("defineModel") {
		model := modelProp(m)
		emit := &Property{Name: "update:" + model.Name, Known: model.Known, Form: FormBinding, Node: m.Call, Key: model.Key}
		emits = append(emits, emit)
	}

	return emits
}

// Computed returns the computed properties of a descriptor. For script
// setup these are the top-level bindings initialized by computed().
func Computed(d *component.Descriptor) []*Property {
	if d == nil {
		return nil
	}

	if d.Type != component.TypeSetupScript {
		if p := d.Option("computed"); p != nil {
			return runtimeNames(p.Value)
		}

		return nil
	}

	prog, _ := d.Node.(*ast.Program)
	if prog == nil {
		return nil
	}

	var computed []*Property

	for _, stmt := range prog.Body {
		v, ok := stmt.(*ast.VariableDeclaration)
		if !ok || !d.Contains(stmt.Pos()) {
			continue
		}

		for _, decl := range v.Declarations {
			call, ok := astutil.Unwrap(decl.Init).(*ast.CallExpression)
			if !ok || astutil.CalleeName(call.Callee) != "computed" {
				continue
			}

			if id, ok := decl.ID.(*ast.Identifier); ok {
				p := known(FormBinding, id.Name, decl, id)
				p.Value = call
				computed = append(computed, p)
			}
		}
	}

	return computed
}

// Components returns the entries of the components option.
func Components(d *component.Descriptor) []*Registered {
	if d == nil {
		return nil
	}

	p := d.Option("components")
	if p == nil {
		return nil
	}

	obj, ok := astutil.ObjectOf(p.Value)
	if !ok {
		return nil
	}

	var components []*Registered
	for name, c := range astutil.Properties(obj) {
		components = append(components, &Registered{Name: name, Node: c, Value: c.Value})
	}

	return components
}

// runtimeProps handles `props: [...]` and `props: {...}`.
func runtimeProps(n ast.Node) []*Property {
	switch v := astutil.Unwrap(n).(type) {
	case *ast.ArrayExpression:
		return arrayNames(v)

	case *ast.ObjectExpression:
		props := make([]*Property, 0, len(v.Properties))

		for _, entry := range v.Properties {
			prop, ok := entry.(*ast.Property)
			if !ok {
				props = append(props, unknown(FormObject, entry))

				continue
			}

			name, ok := astutil.PropertyName(prop)
			if !ok {
				props = append(props, unknown(FormObject, entry))

				continue
			}

			p := known(FormObject, name, prop, prop.Key)
			p.Value = prop.Value
			objectOptions(p, prop.Value)
			props = append(props, p)
		}

		return props
	}

	return nil
}

// objectOptions fills type, default and required from a prop option value.
func objectOptions(p *Property, value ast.Node) {
	opts, ok := astutil.ObjectOf(value)
	if !ok {
		p.Type = value
		p.Types = constructorNames(value)

		return
	}

	if t := astutil.FindProperty(opts, "type"); t != nil {
		p.Type = t.Value
		p.Types = constructorNames(t.Value)
	}

	if def := astutil.FindProperty(opts, "default"); def != nil {
		p.Default = def.Value
	}

	if req := astutil.FindProperty(opts, "required"); req != nil {
		if lit, ok := req.Value.(*ast.Literal); ok && lit.LitKind == ast.LiteralBoolean {
			p.Required = lit.Value == "true"
		}
	}
}

// constructorNames returns `String` for `String` and `[String, Number]`.
func constructorNames(n ast.Node) []string {
	switch v := astutil.Unwrap(n).(type) {
	case *ast.Identifier:
		return []string{v.Name}

	case *ast.ArrayExpression:
		var names []string

		for _, e := range v.Elements {
			if id, ok := astutil.Unwrap(e).(*ast.Identifier); ok {
				names = append(names, id.Name)
			}
		}

		return names
	}

	return nil
}

// runtimeNames handles name lists like emits, where object values carry
// validators rather than options.
func runtimeNames(n ast.Node) []*Property {
	switch v := astutil.Unwrap(n).(type) {
	case *ast.ArrayExpression:
		return arrayNames(v)

	case *ast.ObjectExpression:
		names := make([]*Property, 0, len(v.Properties))

		for _, entry := range v.Properties {
			prop, ok := entry.(*ast.Property)
			if !ok {
				names = append(names, unknown(FormObject, entry))

				continue
			}

			name, ok := astutil.PropertyName(prop)
			if !ok {
				names = append(names, unknown(FormObject, entry))

				continue
			}

			p := known(FormObject, name, prop, prop.Key)
			p.Value = prop.Value
			names = append(names, p)
		}

		return names
	}

	return nil
}

func arrayNames(arr *ast.ArrayExpression) []*Property {
	names := make([]*Property, 0, len(arr.Elements))

	for _, e := range arr.Elements {
		if e == nil {
			continue
		}

		if name, ok := astutil.StringValue(e); ok {
			names = append(names, known(FormArray, name, e, e))
		} else {
			names = append(names, unknown(FormArray, e))
		}
	}

	return names
}

// macroProps extracts the props of one defineProps call, applying
// withDefaults and destructuring defaults.
func macroProps(f *ast.File, m *component.Macro) []*Property {
	var props []*Property

	switch {
	case len(m.Call.Arguments) > 0:
		props = runtimeProps(m.Call.Arguments[0])

	case m.Call.TypeArguments != nil && len(m.Call.TypeArguments.Params) > 0:
		props = typeProps(f, m.Call.TypeArguments.Params[0])
	}

	defaults := make(map[string]ast.Node)

	if m.Wrapper != nil && len(m.Wrapper.Arguments) > 1 {
		if obj, ok := astutil.ObjectOf(m.Wrapper.Arguments[1]); ok {
			for name, p := range astutil.Properties(obj) {
				defaults[name] = p.Value
			}
		}
	}

	if pattern, ok := m.Target.(*ast.ObjectPattern); ok {
		for _, entry := range pattern.Properties {
			prop, ok := entry.(*ast.Property)
			if !ok {
				continue
			}

			if def, ok := prop.Value.(*ast.AssignmentPattern); ok {
				if name, ok := astutil.PropertyName(prop); ok {
					defaults[name] = def.Right
				}
			}
		}
	}

	for _, p := range props {
		if def, ok := defaults[p.Name]; ok && p.Known {
			p.Default = def
		}
	}

	return props
}

// modelProp returns the prop declared by defineModel: `modelValue` or the
// name given as first argument.
func modelProp(m *component.Macro) *Property {
	p := known(FormBinding, "modelValue", m.Call, nil)
	p.Value = m.Call

	args := m.Call.Arguments
	if len(args) > 0 {
		if _, isObj := astutil.ObjectOf(args[0]); !isObj {
			name, ok := astutil.StringValue(args[0])
			p.Name, p.Known, p.Key = name, ok, args[0]
			args = args[1:]
		}
	}

	if len(args) > 0 {
		if opts, ok := astutil.ObjectOf(args[0]); ok {
			objectOptions(p, opts)
		}
	}

	if m.Call.TypeArguments != nil && len(m.Call.TypeArguments.Params) > 0 && p.Type == nil {
		p.Type = m.Call.TypeArguments.Params[0]
		p.Types = runtimeTypes(nil, p.Type, nil)
	}

	return p
}
