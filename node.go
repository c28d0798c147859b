package treema

import "strconv"

// Type identifies the variant held by a Node.
type Type int

const (
	InvalidType Type = iota
	NullType
	BoolType
	IntType
	DoubleType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "boolean"
	case IntType:
		return "integer"
	case DoubleType:
		return "number"
	case StringType:
		return "string"
	case ArrayType:
		return "array"
	case ObjectType:
		return "object"
	}
	return "invalid"
}

// Node is the untyped interchange value: a tagged variant over null, boolean,
// integer, double, string, array, and object. Object keys keep insertion
// order; integers and doubles are distinct variants and never compare equal.
type Node struct {
	Type Type

	Bool   bool
	Int    int64
	Double float64
	Str    string

	// ArrayType payload.
	Elems []*Node

	// ObjectType payload; Keys and Values are parallel and ordered.
	Keys   []string
	Values []*Node
}

// Null returns a null node.
func Null() *Node { return &Node{Type: NullType} }

// FromBool returns a boolean node.
func FromBool(v bool) *Node { return &Node{Type: BoolType, Bool: v} }

// FromInt returns an integer node.
func FromInt(v int64) *Node { return &Node{Type: IntType, Int: v} }

// FromDouble returns a double node.
func FromDouble(v float64) *Node { return &Node{Type: DoubleType, Double: v} }

// FromString returns a string node.
func FromString(v string) *Node { return &Node{Type: StringType, Str: v} }

// NewArray returns an array node over the given elements.
func NewArray(elems ...*Node) *Node {
	return &Node{Type: ArrayType, Elems: elems}
}

// NewObject returns an empty object node.
func NewObject() *Node { return &Node{Type: ObjectType} }

// Set stores value under key, replacing an existing entry in place or
// appending a new one. It returns the receiver for chaining and panics when
// the receiver is not an object.
func (n *Node) Set(key string, value *Node) *Node {
	if n.Type != ObjectType {
		panic("treema: Set on " + n.Type.String() + " node")
	}
	for i, k := range n.Keys {
		if k == key {
			n.Values[i] = value
			return n
		}
	}
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, value)
	return n
}

// Get looks up an object entry by key.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Type != ObjectType {
		return nil, false
	}
	for i, k := range n.Keys {
		if k == key {
			return n.Values[i], true
		}
	}
	return nil, false
}

// Append adds elements to an array node and returns the receiver.
func (n *Node) Append(elems ...*Node) *Node {
	if n.Type != ArrayType {
		panic("treema: Append on " + n.Type.String() + " node")
	}
	n.Elems = append(n.Elems, elems...)
	return n
}

// Len reports the number of entries of an array or object node.
func (n *Node) Len() int {
	switch n.Type {
	case ArrayType:
		return len(n.Elems)
	case ObjectType:
		return len(n.Keys)
	}
	return 0
}

// Index returns the i-th element of an array node, or nil when out of range.
func (n *Node) Index(i int) *Node {
	if n == nil || n.Type != ArrayType || i < 0 || i >= len(n.Elems) {
		return nil
	}
	return n.Elems[i]
}

// AsBool returns the boolean payload when the node is a boolean.
func (n *Node) AsBool() (bool, bool) {
	if n == nil || n.Type != BoolType {
		return false, false
	}
	return n.Bool, true
}

// AsInt returns the integer payload when the node is an integer.
func (n *Node) AsInt() (int64, bool) {
	if n == nil || n.Type != IntType {
		return 0, false
	}
	return n.Int, true
}

// AsDouble returns the double payload when the node is a double.
func (n *Node) AsDouble() (float64, bool) {
	if n == nil || n.Type != DoubleType {
		return 0, false
	}
	return n.Double, true
}

// AsString returns the string payload when the node is a string.
func (n *Node) AsString() (string, bool) {
	if n == nil || n.Type != StringType {
		return "", false
	}
	return n.Str, true
}

// IsNull reports whether the node is a null node.
func (n *Node) IsNull() bool { return n != nil && n.Type == NullType }

// Clone returns a deep copy sharing no state with the receiver.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dst := &Node{
		Type:   n.Type,
		Bool:   n.Bool,
		Int:    n.Int,
		Double: n.Double,
		Str:    n.Str,
	}
	if n.Elems != nil {
		dst.Elems = make([]*Node, len(n.Elems))
		for i, e := range n.Elems {
			dst.Elems[i] = e.Clone()
		}
	}
	if n.Keys != nil {
		dst.Keys = append([]string(nil), n.Keys...)
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// String renders a compact debug form; it is not a wire format.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Type {
	case NullType:
		return "null"
	case BoolType:
		return strconv.FormatBool(n.Bool)
	case IntType:
		return strconv.FormatInt(n.Int, 10)
	case DoubleType:
		return strconv.FormatFloat(n.Double, 'g', -1, 64)
	case StringType:
		return strconv.Quote(n.Str)
	case ArrayType:
		s := "["
		for i, e := range n.Elems {
			if i > 0 {
				s += ","
			}
			s += e.String()
		}
		return s + "]"
	case ObjectType:
		s := "{"
		for i, k := range n.Keys {
			if i > 0 {
				s += ","
			}
			s += strconv.Quote(k) + ":" + n.Values[i].String()
		}
		return s + "}"
	}
	return "<invalid>"
}
