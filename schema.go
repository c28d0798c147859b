package treema

import "fmt"

// Kind identifies the semantic type of a value slot.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindDouble
	KindString
	KindEnum
	KindObject
	KindRef
	KindArray
	KindChoices
	KindAny
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindDouble:
		return "number"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindRef:
		return "ref"
	case KindArray:
		return "array"
	case KindChoices:
		return "choices"
	case KindAny:
		return "any"
	}
	return "invalid"
}

// TypeSpec describes the declared shape of one value slot.
type TypeSpec struct {
	Kind Kind

	Enum    []string    // KindEnum: allowed members, in declaration order.
	Elem    *TypeSpec   // KindArray: element shape.
	Record  *RecordType // KindObject: inline record.
	Ref     string      // KindRef: record name resolved via the registry.
	Choices []*TypeSpec // KindChoices: alternatives, in declaration order.
}

// FieldSpec declares one named field of a record or one positional parameter
// of a function. Fields are required unless marked Optional, mirroring the
// schema convention where "optional" is the explicit flag.
type FieldSpec struct {
	Name     string
	Type     *TypeSpec
	Optional bool
	// FixedInt pins the field to a constant integer. Encode always emits it;
	// decode rejects a conflicting value.
	FixedInt *int64
}

// RecordType is a named, fixed-shape aggregate. Field order is declaration
// order and drives encode output.
type RecordType struct {
	Name   string
	Fields []FieldSpec
	// Additional, when set, collects undeclared keys whose values conform to
	// the given shape (the additionalProperties convention).
	Additional *TypeSpec

	registry *Registry
}

// FieldByName looks up a declared field.
func (rt *RecordType) FieldByName(name string) (*FieldSpec, bool) {
	for i := range rt.Fields {
		if rt.Fields[i].Name == name {
			return &rt.Fields[i], true
		}
	}
	return nil, false
}

// fieldNames returns declared field names in order, for diagnostics.
func (rt *RecordType) fieldNames() []string {
	out := make([]string, len(rt.Fields))
	for i := range rt.Fields {
		out[i] = rt.Fields[i].Name
	}
	return out
}

// Registry resolves Ref type specs to named record types. A RecordType
// registered here resolves its refs (and those of nested records) through it.
type Registry struct {
	types map[string]*RecordType
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: map[string]*RecordType{}}
}

// Register adds a record type and binds it to the registry for ref
// resolution. Re-registering a name is an error.
func (r *Registry) Register(rt *RecordType) error {
	if rt.Name == "" {
		return fmt.Errorf("treema: cannot register unnamed record type")
	}
	if _, exists := r.types[rt.Name]; exists {
		return fmt.Errorf("treema: record type %q already registered", rt.Name)
	}
	r.types[rt.Name] = rt
	r.order = append(r.order, rt.Name)
	rt.registry = r
	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(rt *RecordType) {
	if err := r.Register(rt); err != nil {
		panic(err)
	}
}

// Lookup returns the record type registered under name.
func (r *Registry) Lookup(name string) (*RecordType, bool) {
	if r == nil {
		return nil, false
	}
	rt, ok := r.types[name]
	return rt, ok
}

// Names returns registered type names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Callback is the result convention of a function: at most one parameter
// describing the value handed back to the caller.
type Callback struct {
	Param *FieldSpec
}

// Function declares a callable API surface: ordered positional parameters
// and an optional callback.
type Function struct {
	Name     string
	Params   []FieldSpec
	Callback *Callback

	registry *Registry
}

// Namespace groups the record types and functions of one API definition.
type Namespace struct {
	Name      string
	Types     *Registry
	Functions map[string]*Function
	funcOrder []string
}

// NewNamespace returns an empty namespace with a fresh registry.
func NewNamespace(name string) *Namespace {
	return &Namespace{
		Name:      name,
		Types:     NewRegistry(),
		Functions: map[string]*Function{},
	}
}

// AddFunction registers a function and binds it to the namespace registry.
func (ns *Namespace) AddFunction(fn *Function) error {
	if fn.Name == "" {
		return fmt.Errorf("treema: cannot add unnamed function")
	}
	if _, exists := ns.Functions[fn.Name]; exists {
		return fmt.Errorf("treema: function %q already defined", fn.Name)
	}
	ns.Functions[fn.Name] = fn
	ns.funcOrder = append(ns.funcOrder, fn.Name)
	fn.registry = ns.Types
	return nil
}

// FunctionNames returns function names in definition order.
func (ns *Namespace) FunctionNames() []string {
	return append([]string(nil), ns.funcOrder...)
}

// Bind attaches a registry to a standalone function so its ref parameters
// resolve. Functions added to a Namespace are bound automatically.
func (f *Function) Bind(r *Registry) *Function {
	f.registry = r
	return f
}
