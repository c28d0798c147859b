// Package apidef loads API namespace definitions from their JSON schema
// format into the treema schema model. A namespace file declares named types
// and functions:
//
//	{
//	  "namespace": "arrays",
//	  "types": [
//	    {"id": "Item", "type": "object",
//	     "properties": {"val": {"type": "integer"}}}
//	  ],
//	  "functions": [
//	    {"name": "integerArray", "type": "function", "parameters": [
//	      {"name": "nums", "type": "array", "items": {"type": "integer"}}
//	    ]}
//	  ]
//	}
//
// Properties declare their shape with one of "$ref", "enum", "type",
// "choices", or a fixed integer "value", plus an "optional" flag. The loader
// resolves nothing eagerly; refs are looked up at decode time through the
// namespace registry.
package apidef

import (
	"fmt"

	treema "github.com/reoring/treema"
	"github.com/reoring/treema/source/json"
)

// LoadNamespaceJSON parses raw JSON and loads the namespace it defines.
func LoadNamespaceJSON(data []byte) (*treema.Namespace, error) {
	n, err := json.Parse(data)
	if err != nil {
		return nil, err
	}
	return LoadNamespace(n)
}

// LoadNamespace loads a namespace definition from an already-parsed node.
func LoadNamespace(n *treema.Node) (*treema.Namespace, error) {
	if n == nil || n.Type != treema.ObjectType {
		return nil, fmt.Errorf("apidef: namespace definition must be an object")
	}
	nameNode, ok := n.Get("namespace")
	if !ok {
		return nil, fmt.Errorf("apidef: missing \"namespace\" key")
	}
	name, ok := nameNode.AsString()
	if !ok {
		return nil, fmt.Errorf("apidef: \"namespace\" must be a string")
	}
	ns := treema.NewNamespace(name)

	if types, ok := n.Get("types"); ok {
		if types.Type != treema.ArrayType {
			return nil, fmt.Errorf("apidef: %s: \"types\" must be an array", name)
		}
		for _, t := range types.Elems {
			rt, err := parseType(name, t)
			if err != nil {
				return nil, err
			}
			if err := ns.Types.Register(rt); err != nil {
				return nil, err
			}
		}
	}

	if fns, ok := n.Get("functions"); ok {
		if fns.Type != treema.ArrayType {
			return nil, fmt.Errorf("apidef: %s: \"functions\" must be an array", name)
		}
		for _, f := range fns.Elems {
			fn, err := parseFunction(name, f)
			if err != nil {
				return nil, err
			}
			if err := ns.AddFunction(fn); err != nil {
				return nil, err
			}
		}
	}
	return ns, nil
}

func parseType(scope string, n *treema.Node) (*treema.RecordType, error) {
	if n.Type != treema.ObjectType {
		return nil, fmt.Errorf("apidef: %s: type definition must be an object", scope)
	}
	idNode, ok := n.Get("id")
	if !ok {
		return nil, fmt.Errorf("apidef: %s: type has no \"id\"", scope)
	}
	id, ok := idNode.AsString()
	if !ok {
		return nil, fmt.Errorf("apidef: %s: type \"id\" must be a string", scope)
	}
	return parseRecordBody(scope+"."+id, id, n)
}

// parseRecordBody reads "properties" and "additionalProperties" into a
// record type. Property order follows the definition file.
func parseRecordBody(scope, name string, n *treema.Node) (*treema.RecordType, error) {
	rt := &treema.RecordType{Name: name}
	props, hasProps := n.Get("properties")
	if hasProps {
		if props.Type != treema.ObjectType {
			return nil, fmt.Errorf("apidef: %s: \"properties\" must be an object", scope)
		}
		for i, key := range props.Keys {
			f, err := parseProperty(scope+"."+key, key, props.Values[i])
			if err != nil {
				return nil, err
			}
			rt.Fields = append(rt.Fields, *f)
		}
	}
	if ap, ok := n.Get("additionalProperties"); ok {
		spec, err := parseShape(scope+".additionalProperties", ap)
		if err != nil {
			return nil, err
		}
		rt.Additional = spec
	} else if !hasProps {
		return nil, fmt.Errorf("apidef: %s has no properties", scope)
	}
	return rt, nil
}

// parseProperty reads a named property or parameter declaration.
func parseProperty(scope, name string, n *treema.Node) (*treema.FieldSpec, error) {
	if n.Type != treema.ObjectType {
		return nil, fmt.Errorf("apidef: %s: property must be an object", scope)
	}
	f := &treema.FieldSpec{Name: name}
	if optNode, ok := n.Get("optional"); ok {
		b, ok := optNode.AsBool()
		if !ok {
			return nil, fmt.Errorf("apidef: %s: \"optional\" must be a boolean", scope)
		}
		f.Optional = b
	}
	if valNode, ok := n.Get("value"); ok {
		v, ok := valNode.AsInt()
		if !ok {
			return nil, fmt.Errorf("apidef: %s: only integer \"value\" properties are supported", scope)
		}
		f.FixedInt = &v
		f.Type = &treema.TypeSpec{Kind: treema.KindInt}
		return f, nil
	}
	spec, err := parseShape(scope, n)
	if err != nil {
		return nil, err
	}
	f.Type = spec
	return f, nil
}

// parseShape reads the shape portion of a property: $ref, enum, type, or
// choices, in that order of precedence.
func parseShape(scope string, n *treema.Node) (*treema.TypeSpec, error) {
	if refNode, ok := n.Get("$ref"); ok {
		ref, ok := refNode.AsString()
		if !ok {
			return nil, fmt.Errorf("apidef: %s: \"$ref\" must be a string", scope)
		}
		return &treema.TypeSpec{Kind: treema.KindRef, Ref: ref}, nil
	}
	if enumNode, ok := n.Get("enum"); ok {
		if enumNode.Type != treema.ArrayType {
			return nil, fmt.Errorf("apidef: %s: \"enum\" must be an array", scope)
		}
		members := make([]string, 0, len(enumNode.Elems))
		for _, m := range enumNode.Elems {
			s, ok := m.AsString()
			if !ok {
				return nil, fmt.Errorf("apidef: %s: enum members must be strings", scope)
			}
			members = append(members, s)
		}
		return &treema.TypeSpec{Kind: treema.KindEnum, Enum: members}, nil
	}
	if typeNode, ok := n.Get("type"); ok {
		name, ok := typeNode.AsString()
		if !ok {
			return nil, fmt.Errorf("apidef: %s: \"type\" must be a string", scope)
		}
		switch name {
		case "string":
			return &treema.TypeSpec{Kind: treema.KindString}, nil
		case "any":
			return &treema.TypeSpec{Kind: treema.KindAny}, nil
		case "boolean":
			return &treema.TypeSpec{Kind: treema.KindBool}, nil
		case "integer":
			return &treema.TypeSpec{Kind: treema.KindInt}, nil
		case "number":
			return &treema.TypeSpec{Kind: treema.KindDouble}, nil
		case "array":
			items, ok := n.Get("items")
			if !ok {
				return nil, fmt.Errorf("apidef: %s: array has no \"items\"", scope)
			}
			elem, err := parseShape(scope+".items", items)
			if err != nil {
				return nil, err
			}
			return &treema.TypeSpec{Kind: treema.KindArray, Elem: elem}, nil
		case "object":
			rt, err := parseRecordBody(scope, scope, n)
			if err != nil {
				return nil, err
			}
			return &treema.TypeSpec{Kind: treema.KindObject, Record: rt}, nil
		default:
			return nil, fmt.Errorf("apidef: %s: type %q not recognized", scope, name)
		}
	}
	if choicesNode, ok := n.Get("choices"); ok {
		if choicesNode.Type != treema.ArrayType || len(choicesNode.Elems) == 0 {
			return nil, fmt.Errorf("apidef: %s: \"choices\" must be a non-empty array", scope)
		}
		alts := make([]*treema.TypeSpec, 0, len(choicesNode.Elems))
		for i, c := range choicesNode.Elems {
			alt, err := parseShape(fmt.Sprintf("%s.choices[%d]", scope, i), c)
			if err != nil {
				return nil, err
			}
			alts = append(alts, alt)
		}
		return &treema.TypeSpec{Kind: treema.KindChoices, Choices: alts}, nil
	}
	return nil, fmt.Errorf("apidef: %s: property has no type, $ref, choices, or value", scope)
}

func parseFunction(scope string, n *treema.Node) (*treema.Function, error) {
	if n.Type != treema.ObjectType {
		return nil, fmt.Errorf("apidef: %s: function definition must be an object", scope)
	}
	nameNode, ok := n.Get("name")
	if !ok {
		return nil, fmt.Errorf("apidef: %s: function has no \"name\"", scope)
	}
	name, ok := nameNode.AsString()
	if !ok {
		return nil, fmt.Errorf("apidef: %s: function \"name\" must be a string", scope)
	}
	fscope := scope + "." + name
	fn := &treema.Function{Name: name}
	params, ok := n.Get("parameters")
	if !ok {
		return fn, nil
	}
	if params.Type != treema.ArrayType {
		return nil, fmt.Errorf("apidef: %s: \"parameters\" must be an array", fscope)
	}
	for _, p := range params.Elems {
		pname := ""
		if pn, ok := p.Get("name"); ok {
			pname, _ = pn.AsString()
		}
		if tn, ok := p.Get("type"); ok {
			if s, _ := tn.AsString(); s == "function" {
				cb, err := parseCallback(fscope+"."+pname, p)
				if err != nil {
					return nil, err
				}
				if fn.Callback != nil {
					return nil, fmt.Errorf("apidef: %s has more than one callback", fscope)
				}
				fn.Callback = cb
				continue
			}
		}
		f, err := parseProperty(fscope+"."+pname, pname, p)
		if err != nil {
			return nil, err
		}
		fn.Params = append(fn.Params, *f)
	}
	return fn, nil
}

// parseCallback reads a callback parameter; at most one parameter is
// allowed, matching the result convention.
func parseCallback(scope string, n *treema.Node) (*treema.Callback, error) {
	params, ok := n.Get("parameters")
	if !ok {
		return &treema.Callback{}, nil
	}
	if params.Type != treema.ArrayType {
		return nil, fmt.Errorf("apidef: %s: callback \"parameters\" must be an array", scope)
	}
	switch len(params.Elems) {
	case 0:
		return &treema.Callback{}, nil
	case 1:
		p := params.Elems[0]
		pname := ""
		if pn, ok := p.Get("name"); ok {
			pname, _ = pn.AsString()
		}
		f, err := parseProperty(scope+"."+pname, pname, p)
		if err != nil {
			return nil, err
		}
		return &treema.Callback{Param: f}, nil
	default:
		return nil, fmt.Errorf("apidef: %s: callbacks can have at most a single parameter", scope)
	}
}
