package dsl

import (
	"fmt"

	treema "github.com/reoring/treema"
)

// RecordBuilder accumulates field declarations for a record type. Fields are
// required unless Optional() is chained after Field.
type RecordBuilder struct {
	rt  *treema.RecordType
	err error
}

// Record starts building a record type with the given name.
func Record(name string) *RecordBuilder {
	return &RecordBuilder{rt: &treema.RecordType{Name: name}}
}

// Field appends a declared field.
func (b *RecordBuilder) Field(name string, ts *treema.TypeSpec) *RecordBuilder {
	if b.err != nil {
		return b
	}
	if _, dup := b.rt.FieldByName(name); dup {
		b.err = fmt.Errorf("dsl: duplicate field %q on %s", name, b.rt.Name)
		return b
	}
	b.rt.Fields = append(b.rt.Fields, treema.FieldSpec{Name: name, Type: ts})
	return b
}

// Optional marks the most recently added field as optional.
func (b *RecordBuilder) Optional() *RecordBuilder {
	if b.err == nil && len(b.rt.Fields) > 0 {
		b.rt.Fields[len(b.rt.Fields)-1].Optional = true
	}
	return b
}

// Fixed appends a constant-integer field ("value" properties).
func (b *RecordBuilder) Fixed(name string, v int64) *RecordBuilder {
	b.Field(name, Int())
	if b.err == nil {
		b.rt.Fields[len(b.rt.Fields)-1].FixedInt = &v
	}
	return b
}

// Additional declares the shape collecting undeclared keys.
func (b *RecordBuilder) Additional(ts *treema.TypeSpec) *RecordBuilder {
	if b.err == nil {
		b.rt.Additional = ts
	}
	return b
}

// Build finalizes the record type.
func (b *RecordBuilder) Build() (*treema.RecordType, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.rt, nil
}

// MustBuild is Build that panics on error.
func (b *RecordBuilder) MustBuild() *treema.RecordType {
	rt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return rt
}

// FunctionBuilder accumulates positional parameter declarations.
type FunctionBuilder struct {
	fn  *treema.Function
	err error
}

// Function starts building a function signature with the given name.
func Function(name string) *FunctionBuilder {
	return &FunctionBuilder{fn: &treema.Function{Name: name}}
}

// Param appends a positional parameter.
func (b *FunctionBuilder) Param(name string, ts *treema.TypeSpec) *FunctionBuilder {
	if b.err != nil {
		return b
	}
	for i := range b.fn.Params {
		if b.fn.Params[i].Name == name {
			b.err = fmt.Errorf("dsl: duplicate parameter %q on %s", name, b.fn.Name)
			return b
		}
	}
	b.fn.Params = append(b.fn.Params, treema.FieldSpec{Name: name, Type: ts})
	return b
}

// Optional marks the most recently added parameter as optional.
func (b *FunctionBuilder) Optional() *FunctionBuilder {
	if b.err == nil && len(b.fn.Params) > 0 {
		b.fn.Params[len(b.fn.Params)-1].Optional = true
	}
	return b
}

// Callback declares the function's result convention: a single named value
// handed back to the caller.
func (b *FunctionBuilder) Callback(name string, ts *treema.TypeSpec) *FunctionBuilder {
	if b.err != nil {
		return b
	}
	if b.fn.Callback != nil {
		b.err = fmt.Errorf("dsl: %s has more than one callback", b.fn.Name)
		return b
	}
	b.fn.Callback = &treema.Callback{Param: &treema.FieldSpec{Name: name, Type: ts}}
	return b
}

// Build finalizes the function.
func (b *FunctionBuilder) Build() (*treema.Function, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.fn, nil
}

// MustBuild is Build that panics on error.
func (b *FunctionBuilder) MustBuild() *treema.Function {
	fn, err := b.Build()
	if err != nil {
		panic(err)
	}
	return fn
}
