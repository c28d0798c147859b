package treema

import "fmt"

// Record is a decoded instance of a RecordType. Fields are populated once,
// either by Decode or field-by-field via Set, then queried or re-encoded.
// A Record exclusively owns its nested records and any-slot nodes.
type Record struct {
	Type *RecordType

	values map[string]any

	// Undeclared keys captured via the record's Additional shape.
	extraKeys []string
	extra     map[string]any
}

// NewRecord returns an empty record of the given type.
func NewRecord(rt *RecordType) *Record {
	return &Record{Type: rt, values: map[string]any{}}
}

// Choice holds the matched alternative of a choices field together with its
// decoded value.
type Choice struct {
	Spec  *TypeSpec // the alternative that matched
	Value any
}

// Kind reports the kind of the matched alternative.
func (c Choice) Kind() Kind {
	if c.Spec == nil {
		return KindAny
	}
	return c.Spec.Kind
}

// Has reports whether the named field is populated.
func (r *Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Bool returns a boolean field.
func (r *Record) Bool(name string) (bool, bool) {
	v, ok := r.values[name].(bool)
	return v, ok
}

// Int returns an integer field.
func (r *Record) Int(name string) (int64, bool) {
	v, ok := r.values[name].(int64)
	return v, ok
}

// Double returns a double field.
func (r *Record) Double(name string) (float64, bool) {
	v, ok := r.values[name].(float64)
	return v, ok
}

// String returns a string or enum field.
func (r *Record) String(name string) (string, bool) {
	v, ok := r.values[name].(string)
	return v, ok
}

// Record returns a nested record field.
func (r *Record) Record(name string) (*Record, bool) {
	v, ok := r.values[name].(*Record)
	return v, ok
}

// Records returns an array-of-record field.
func (r *Record) Records(name string) ([]*Record, bool) {
	v, ok := r.values[name].([]*Record)
	return v, ok
}

// Bools returns an array-of-boolean field.
func (r *Record) Bools(name string) ([]bool, bool) {
	v, ok := r.values[name].([]bool)
	return v, ok
}

// Ints returns an array-of-integer field.
func (r *Record) Ints(name string) ([]int64, bool) {
	v, ok := r.values[name].([]int64)
	return v, ok
}

// Doubles returns an array-of-double field.
func (r *Record) Doubles(name string) ([]float64, bool) {
	v, ok := r.values[name].([]float64)
	return v, ok
}

// Strings returns an array-of-string (or array-of-enum) field.
func (r *Record) Strings(name string) ([]string, bool) {
	v, ok := r.values[name].([]string)
	return v, ok
}

// Any returns the node held by an any field.
func (r *Record) Any(name string) (*Node, bool) {
	v, ok := r.values[name].(*Node)
	return v, ok
}

// Anys returns an array-of-any field.
func (r *Record) Anys(name string) ([]*Node, bool) {
	v, ok := r.values[name].([]*Node)
	return v, ok
}

// Choice returns a choices field.
func (r *Record) Choice(name string) (Choice, bool) {
	v, ok := r.values[name].(Choice)
	return v, ok
}

// ExtraKeys returns undeclared keys captured via additionalProperties, in
// input order.
func (r *Record) ExtraKeys() []string {
	return append([]string(nil), r.extraKeys...)
}

// Extra returns the captured value for an undeclared key.
func (r *Record) Extra(key string) (any, bool) {
	v, ok := r.extra[key]
	return v, ok
}

// Set populates a declared field, validating the Go value against the
// declared shape. Supported values follow the decode representations:
// bool, int/int64, float64, string, *Record, *Node, Choice, and slices
// thereof.
func (r *Record) Set(name string, value any) error {
	f, ok := r.Type.FieldByName(name)
	if !ok {
		return fmt.Errorf("treema: record %s has no field %q", r.Type.Name, name)
	}
	v, ok := conformValue(f.Type, r.Type.registry, value)
	if !ok {
		return fmt.Errorf("treema: field %s.%s does not accept %T", r.Type.Name, name, value)
	}
	if r.values == nil {
		r.values = map[string]any{}
	}
	r.values[name] = v
	return nil
}

// MustSet is Set that panics on error, for fixture construction.
func (r *Record) MustSet(name string, value any) *Record {
	if err := r.Set(name, value); err != nil {
		panic(err)
	}
	return r
}

// conformValue normalizes a caller-supplied Go value to the runtime
// representation for the given shape, reporting whether it conforms.
func conformValue(ts *TypeSpec, reg *Registry, value any) (any, bool) {
	switch ts.Kind {
	case KindBool:
		v, ok := value.(bool)
		return v, ok
	case KindInt:
		switch v := value.(type) {
		case int:
			return int64(v), true
		case int64:
			return v, true
		}
		return nil, false
	case KindDouble:
		v, ok := value.(float64)
		return v, ok
	case KindString:
		v, ok := value.(string)
		return v, ok
	case KindEnum:
		v, ok := value.(string)
		if !ok {
			return nil, false
		}
		for _, m := range ts.Enum {
			if m == v {
				return v, true
			}
		}
		return nil, false
	case KindObject, KindRef:
		v, ok := value.(*Record)
		return v, ok
	case KindAny:
		v, ok := value.(*Node)
		return v, ok
	case KindChoices:
		if c, ok := value.(Choice); ok {
			return c, true
		}
		// Match a raw value against the alternatives in declared order.
		for _, alt := range ts.Choices {
			if v, ok := conformValue(alt, reg, value); ok {
				return Choice{Spec: alt, Value: v}, true
			}
		}
		return nil, false
	case KindArray:
		return conformArray(ts.Elem, reg, value)
	}
	return nil, false
}

func conformArray(elem *TypeSpec, reg *Registry, value any) (any, bool) {
	switch elem.Kind {
	case KindBool:
		v, ok := value.([]bool)
		return v, ok
	case KindInt:
		switch v := value.(type) {
		case []int64:
			return v, true
		case []int:
			out := make([]int64, len(v))
			for i, e := range v {
				out[i] = int64(e)
			}
			return out, true
		}
		return nil, false
	case KindDouble:
		v, ok := value.([]float64)
		return v, ok
	case KindString, KindEnum:
		v, ok := value.([]string)
		if !ok {
			return nil, false
		}
		if elem.Kind == KindEnum {
			for _, s := range v {
				if _, ok := conformValue(elem, reg, s); !ok {
					return nil, false
				}
			}
		}
		return v, true
	case KindObject, KindRef:
		v, ok := value.([]*Record)
		return v, ok
	case KindAny:
		v, ok := value.([]*Node)
		return v, ok
	default:
		v, ok := value.([]any)
		if !ok {
			return nil, false
		}
		out := make([]any, len(v))
		for i, e := range v {
			ev, ok := conformValue(elem, reg, e)
			if !ok {
				return nil, false
			}
			out[i] = ev
		}
		return out, true
	}
}
