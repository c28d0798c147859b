package treema

// Equal reports structural equality: object keys compare order-independently,
// array elements in order, scalars by exact tag and payload. An integer node
// never equals a double node even when the values coincide numerically.
func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.Type != other.Type {
		return false
	}
	switch n.Type {
	case NullType:
		return true
	case BoolType:
		return n.Bool == other.Bool
	case IntType:
		return n.Int == other.Int
	case DoubleType:
		return n.Double == other.Double
	case StringType:
		return n.Str == other.Str
	case ArrayType:
		if len(n.Elems) != len(other.Elems) {
			return false
		}
		for i, e := range n.Elems {
			if !e.Equal(other.Elems[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(n.Keys) != len(other.Keys) {
			return false
		}
		for i, k := range n.Keys {
			ov, ok := other.Get(k)
			if !ok || !n.Values[i].Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// ToAny converts the tree into plain Go values: map[string]any for objects
// (key order is lost), []any for arrays, and bool/int64/float64/string/nil
// for scalars. Used for rule evaluation environments.
func (n *Node) ToAny() any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case NullType:
		return nil
	case BoolType:
		return n.Bool
	case IntType:
		return n.Int
	case DoubleType:
		return n.Double
	case StringType:
		return n.Str
	case ArrayType:
		out := make([]any, len(n.Elems))
		for i, e := range n.Elems {
			out[i] = e.ToAny()
		}
		return out
	case ObjectType:
		out := make(map[string]any, len(n.Keys))
		for i, k := range n.Keys {
			out[k] = n.Values[i].ToAny()
		}
		return out
	}
	return nil
}

// FromAny builds a node from plain Go values. Map keys are inserted in an
// unspecified order; callers needing deterministic key order should build
// objects explicitly. Unsupported types yield a null node.
func FromAny(v any) *Node {
	switch x := v.(type) {
	case nil:
		return Null()
	case bool:
		return FromBool(x)
	case int:
		return FromInt(int64(x))
	case int64:
		return FromInt(x)
	case float64:
		return FromDouble(x)
	case string:
		return FromString(x)
	case []any:
		arr := NewArray()
		for _, e := range x {
			arr.Append(FromAny(e))
		}
		return arr
	case map[string]any:
		obj := NewObject()
		for k, e := range x {
			obj.Set(k, FromAny(e))
		}
		return obj
	}
	return Null()
}
