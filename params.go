package treema

import "strconv"

// ParamsType returns the anonymous record type describing the function's
// positional parameters as named fields.
func (f *Function) ParamsType() *RecordType {
	return &RecordType{
		Name:     f.Name + ".params",
		Fields:   f.Params,
		registry: f.registry,
	}
}

// CreateParams decodes a positional argument list against the declared
// parameters: element i maps to parameter i. Trailing optional parameters
// may be omitted, and a null element in an optional slot counts as omitted
// (the caller convention for skipped arguments). Like Decode, failure yields
// a nil record and an Issues error.
func (f *Function) CreateParams(n *Node, opts ...DecodeOpt) (*Record, error) {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if n == nil || n.Type != ArrayType {
		return nil, Issues{Root().Issue(CodeInvalidType, "expected array",
			"expected", "array", "got", nodeTypeName(n))}
	}
	if len(n.Elems) > len(f.Params) {
		return nil, Issues{Root().Issue(CodeTooLong, "too many arguments",
			"max", len(f.Params), "got", len(n.Elems))}
	}

	d := &decoder{opt: opt}
	rec := NewRecord(f.ParamsType())
	var iss Issues
	for i := range f.Params {
		p := &f.Params[i]
		base := At("/" + strconv.Itoa(i))
		if i >= len(n.Elems) || n.Elems[i].IsNull() {
			omitted := i >= len(n.Elems)
			if !omitted && p.Type.Kind == KindAny {
				// any slots keep an explicit null
				rec.values[p.Name] = n.Elems[i].Clone()
				continue
			}
			if !p.Optional {
				iss = AppendIssues(iss, IssueAt(base, CodeRequired,
					"required argument missing", map[string]any{"param": p.Name}))
				if opt.FailFast {
					return nil, iss
				}
			}
			continue
		}
		v, vi := d.value(p.Type, f.registry, n.Elems[i])
		if len(vi) > 0 {
			iss = AppendIssues(iss, vi.Rebase(base.Pointer())...)
			if opt.FailFast {
				return nil, iss
			}
			continue
		}
		rec.values[p.Name] = v
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return rec, nil
}
