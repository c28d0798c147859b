package treema

import (
	"fmt"
	"strings"
)

// Decode validates an object node against the record type and converts it
// into a freshly allocated Record. Decode is all-or-nothing: when any issue
// is found the returned record is nil and the error is an Issues value
// listing every mismatch (or only the first under FailFast).
func (rt *RecordType) Decode(n *Node, opts ...DecodeOpt) (*Record, error) {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	d := &decoder{opt: opt}
	rec, iss := d.record(rt, rt.registry, n)
	if len(iss) > 0 {
		return nil, iss
	}
	return rec, nil
}

type decoder struct {
	opt   DecodeOpt
	depth int
}

func (d *decoder) failed(iss Issues) bool {
	return d.opt.FailFast && len(iss) > 0
}

// record decodes an object node into a record of type rt. Issue paths are
// relative to the record root.
func (d *decoder) record(rt *RecordType, reg *Registry, n *Node) (*Record, Issues) {
	if n == nil || n.Type != ObjectType {
		return nil, Issues{Root().Issue(CodeInvalidType, "expected object",
			"expected", "object", "got", nodeTypeName(n))}
	}
	if rt.registry != nil {
		reg = rt.registry
	}
	d.depth++
	defer func() { d.depth-- }()
	if d.opt.MaxDepth > 0 && d.depth > d.opt.MaxDepth {
		return nil, Issues{Root().Issue(CodeMaxDepth, "max depth exceeded",
			"max", d.opt.MaxDepth)}
	}

	rec := NewRecord(rt)
	var iss Issues
	for i := range rt.Fields {
		f := &rt.Fields[i]
		base := Root().Field(f.Name)
		val, exists := n.Get(f.Name)
		if !exists {
			if f.FixedInt != nil {
				rec.values[f.Name] = *f.FixedInt
				continue
			}
			if !f.Optional {
				iss = AppendIssues(iss, IssueAt(base, CodeRequired,
					"required property missing", map[string]any{"field": f.Name}))
				if d.failed(iss) {
					return nil, iss
				}
			}
			continue
		}
		if f.FixedInt != nil {
			got, ok := val.AsInt()
			if !ok || got != *f.FixedInt {
				iss = AppendIssues(iss, IssueAt(base, CodeInvalidValue,
					fmt.Sprintf("expected constant %d", *f.FixedInt),
					map[string]any{"expected": *f.FixedInt, "got": val.ToAny()}))
				if d.failed(iss) {
					return nil, iss
				}
				continue
			}
			rec.values[f.Name] = got
			continue
		}
		v, vi := d.value(f.Type, reg, val)
		if len(vi) > 0 {
			iss = AppendIssues(iss, vi.Rebase(base.Pointer())...)
			if d.failed(iss) {
				return nil, iss
			}
			continue
		}
		rec.values[f.Name] = v
	}

	// undeclared keys, in input order
	for i, k := range n.Keys {
		if _, known := rt.FieldByName(k); known {
			continue
		}
		base := Root().Field(k)
		if rt.Additional != nil {
			v, vi := d.value(rt.Additional, reg, n.Values[i])
			if len(vi) > 0 {
				iss = AppendIssues(iss, vi.Rebase(base.Pointer())...)
				if d.failed(iss) {
					return nil, iss
				}
				continue
			}
			if rec.extra == nil {
				rec.extra = map[string]any{}
			}
			rec.extraKeys = append(rec.extraKeys, k)
			rec.extra[k] = v
			continue
		}
		if d.opt.Unknown == UnknownStrict {
			iss = AppendIssues(iss, IssueAt(base, CodeUnknownKey, "unknown key",
				map[string]any{"got": k, "candidates": rt.fieldNames()}))
			if d.failed(iss) {
				return nil, iss
			}
		}
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return rec, nil
}

// value decodes one node against a declared shape. Issue paths are relative
// to the node itself; callers rebase them.
func (d *decoder) value(ts *TypeSpec, reg *Registry, n *Node) (any, Issues) {
	// A present null never conforms to a typed slot; only any accepts it.
	if n.IsNull() && ts.Kind != KindAny {
		return nil, Issues{Root().Issue(CodeInvalidType, "unexpected null",
			"expected", ts.Kind.String(), "got", "null")}
	}
	switch ts.Kind {
	case KindBool:
		if v, ok := n.AsBool(); ok {
			return v, nil
		}
	case KindInt:
		if v, ok := n.AsInt(); ok {
			return v, nil
		}
	case KindDouble:
		if v, ok := n.AsDouble(); ok {
			return v, nil
		}
	case KindString:
		if v, ok := n.AsString(); ok {
			return v, nil
		}
	case KindEnum:
		v, ok := n.AsString()
		if !ok {
			break
		}
		for _, m := range ts.Enum {
			if m == v {
				return v, nil
			}
		}
		return nil, Issues{Root().Issue(CodeInvalidEnum, "not a member of the enum",
			"got", v, "candidates", ts.Enum)}
	case KindObject:
		rec, iss := d.record(ts.Record, reg, n)
		if len(iss) > 0 {
			return nil, iss
		}
		return rec, nil
	case KindRef:
		rt, ok := reg.Lookup(ts.Ref)
		if !ok {
			return nil, Issues{Root().Issue(CodeUnresolvedRef, "unresolved type reference",
				"ref", ts.Ref)}
		}
		rec, iss := d.record(rt, reg, n)
		if len(iss) > 0 {
			return nil, iss
		}
		return rec, nil
	case KindAny:
		return n.Clone(), nil
	case KindChoices:
		for _, alt := range ts.Choices {
			if !shapeMatches(alt, reg, n) {
				continue
			}
			v, iss := d.value(alt, reg, n)
			if len(iss) > 0 {
				return nil, iss
			}
			return Choice{Spec: alt, Value: v}, nil
		}
		return nil, Issues{Root().Issue(CodeInvalidType, "matches no alternative",
			"expected", choiceNames(ts), "got", nodeTypeName(n))}
	case KindArray:
		if n.Type != ArrayType {
			break
		}
		return d.array(ts.Elem, reg, n)
	}
	return nil, Issues{Root().Issue(CodeInvalidType, "expected "+ts.Kind.String(),
		"expected", ts.Kind.String(), "got", nodeTypeName(n))}
}

func (d *decoder) array(elem *TypeSpec, reg *Registry, n *Node) (any, Issues) {
	var iss Issues
	decodeAt := func(i int) (any, bool) {
		v, vi := d.value(elem, reg, n.Elems[i])
		if len(vi) > 0 {
			iss = AppendIssues(iss, vi.Rebase(Root().Index(i).Pointer())...)
			return nil, false
		}
		return v, true
	}
	var out any
	switch elem.Kind {
	case KindBool:
		vs := make([]bool, 0, len(n.Elems))
		for i := range n.Elems {
			if v, ok := decodeAt(i); ok {
				vs = append(vs, v.(bool))
			} else if d.failed(iss) {
				return nil, iss
			}
		}
		out = vs
	case KindInt:
		vs := make([]int64, 0, len(n.Elems))
		for i := range n.Elems {
			if v, ok := decodeAt(i); ok {
				vs = append(vs, v.(int64))
			} else if d.failed(iss) {
				return nil, iss
			}
		}
		out = vs
	case KindDouble:
		vs := make([]float64, 0, len(n.Elems))
		for i := range n.Elems {
			if v, ok := decodeAt(i); ok {
				vs = append(vs, v.(float64))
			} else if d.failed(iss) {
				return nil, iss
			}
		}
		out = vs
	case KindString, KindEnum:
		vs := make([]string, 0, len(n.Elems))
		for i := range n.Elems {
			if v, ok := decodeAt(i); ok {
				vs = append(vs, v.(string))
			} else if d.failed(iss) {
				return nil, iss
			}
		}
		out = vs
	case KindObject, KindRef:
		vs := make([]*Record, 0, len(n.Elems))
		for i := range n.Elems {
			if v, ok := decodeAt(i); ok {
				vs = append(vs, v.(*Record))
			} else if d.failed(iss) {
				return nil, iss
			}
		}
		out = vs
	case KindAny:
		vs := make([]*Node, 0, len(n.Elems))
		for i := range n.Elems {
			if v, ok := decodeAt(i); ok {
				vs = append(vs, v.(*Node))
			} else if d.failed(iss) {
				return nil, iss
			}
		}
		out = vs
	default:
		vs := make([]any, 0, len(n.Elems))
		for i := range n.Elems {
			if v, ok := decodeAt(i); ok {
				vs = append(vs, v)
			} else if d.failed(iss) {
				return nil, iss
			}
		}
		out = vs
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// shapeMatches performs the tag-level check used to select a choices
// alternative before committing to a full decode.
func shapeMatches(ts *TypeSpec, reg *Registry, n *Node) bool {
	switch ts.Kind {
	case KindBool:
		return n.Type == BoolType
	case KindInt:
		return n.Type == IntType
	case KindDouble:
		return n.Type == DoubleType
	case KindString, KindEnum:
		return n.Type == StringType
	case KindObject, KindRef:
		return n.Type == ObjectType
	case KindArray:
		return n.Type == ArrayType
	case KindAny:
		return true
	case KindChoices:
		for _, alt := range ts.Choices {
			if shapeMatches(alt, reg, n) {
				return true
			}
		}
	}
	return false
}

func choiceNames(ts *TypeSpec) string {
	names := make([]string, len(ts.Choices))
	for i, alt := range ts.Choices {
		names[i] = alt.Kind.String()
	}
	return strings.Join(names, " or ")
}

func nodeTypeName(n *Node) string {
	if n == nil {
		return "nothing"
	}
	return n.Type.String()
}
