package treema

import "fmt"

// CreateResult wraps a return value into a node for transmission back to a
// caller: scalars become scalar nodes, slices become array nodes in input
// order, and records (or slices of records) encode via Encode. A *Node is
// passed through by deep copy so ownership stays exclusive.
func CreateResult(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case float64:
		return FromDouble(x), nil
	case string:
		return FromString(x), nil
	case *Record:
		return x.Encode(), nil
	case *Node:
		return x.Clone(), nil
	case []bool:
		arr := NewArray()
		for _, e := range x {
			arr.Append(FromBool(e))
		}
		return arr, nil
	case []int:
		arr := NewArray()
		for _, e := range x {
			arr.Append(FromInt(int64(e)))
		}
		return arr, nil
	case []int64:
		arr := NewArray()
		for _, e := range x {
			arr.Append(FromInt(e))
		}
		return arr, nil
	case []float64:
		arr := NewArray()
		for _, e := range x {
			arr.Append(FromDouble(e))
		}
		return arr, nil
	case []string:
		arr := NewArray()
		for _, e := range x {
			arr.Append(FromString(e))
		}
		return arr, nil
	case []*Record:
		arr := NewArray()
		for _, e := range x {
			arr.Append(e.Encode())
		}
		return arr, nil
	case []*Node:
		arr := NewArray()
		for _, e := range x {
			arr.Append(e.Clone())
		}
		return arr, nil
	case []any:
		arr := NewArray()
		for _, e := range x {
			en, err := CreateResult(e)
			if err != nil {
				return nil, err
			}
			arr.Append(en)
		}
		return arr, nil
	}
	return nil, fmt.Errorf("treema: cannot wrap %T as a result", v)
}

// MustCreateResult is CreateResult that panics on error, for values whose
// type is statically known to be supported.
func MustCreateResult(v any) *Node {
	n, err := CreateResult(v)
	if err != nil {
		panic(err)
	}
	return n
}
