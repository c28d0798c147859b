package treema

// Encode converts the record back into an object node with one entry per
// populated field, in declaration order, followed by any captured
// additionalProperties keys in input order. Encoding a well-formed record
// has no failure mode.
func (r *Record) Encode() *Node {
	obj := NewObject()
	for i := range r.Type.Fields {
		f := &r.Type.Fields[i]
		v, ok := r.values[f.Name]
		if !ok {
			if f.FixedInt != nil {
				obj.Set(f.Name, FromInt(*f.FixedInt))
			}
			continue
		}
		obj.Set(f.Name, encodeValue(f.Type, v))
	}
	for _, k := range r.extraKeys {
		obj.Set(k, encodeValue(r.Type.Additional, r.extra[k]))
	}
	return obj
}

// encodeValue renders one runtime value. ts may be nil for fixed-value
// fields, which are always integers.
func encodeValue(ts *TypeSpec, v any) *Node {
	switch x := v.(type) {
	case bool:
		return FromBool(x)
	case int64:
		return FromInt(x)
	case float64:
		return FromDouble(x)
	case string:
		return FromString(x)
	case *Record:
		return x.Encode()
	case *Node:
		return x.Clone()
	case Choice:
		return encodeValue(x.Spec, x.Value)
	case []bool:
		arr := NewArray()
		for _, e := range x {
			arr.Append(FromBool(e))
		}
		return arr
	case []int64:
		arr := NewArray()
		for _, e := range x {
			arr.Append(FromInt(e))
		}
		return arr
	case []float64:
		arr := NewArray()
		for _, e := range x {
			arr.Append(FromDouble(e))
		}
		return arr
	case []string:
		arr := NewArray()
		for _, e := range x {
			arr.Append(FromString(e))
		}
		return arr
	case []*Record:
		arr := NewArray()
		for _, e := range x {
			arr.Append(e.Encode())
		}
		return arr
	case []*Node:
		arr := NewArray()
		for _, e := range x {
			arr.Append(e.Clone())
		}
		return arr
	case []any:
		var elem *TypeSpec
		if ts != nil {
			elem = ts.Elem
		}
		arr := NewArray()
		for _, e := range x {
			arr.Append(encodeValue(elem, e))
		}
		return arr
	}
	return Null()
}
