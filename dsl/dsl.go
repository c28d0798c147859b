// Package dsl provides fluent builders for treema schema types.
//
// Entry points
//   - Record(name): record builder; chain Field/Optional/Fixed/Additional then
//     MustBuild()/Build.
//   - Function(name): function builder; chain Param/Optional/Callback.
//   - Type constructors: Bool/Int/Double/String/Enum/Array/Ref/Any/Choices/
//     ObjectOf produce the shape passed to Field and Param.
//
// Example
//
//	item := dsl.Record("Item").
//	    Field("val", dsl.Int()).
//	    MustBuild()
//
//	basic := dsl.Record("BasicArrayType").
//	    Field("strings", dsl.Array(dsl.String())).
//	    Field("integers", dsl.Array(dsl.Int())).
//	    MustBuild()
package dsl

import treema "github.com/reoring/treema"

// Bool declares a boolean slot.
func Bool() *treema.TypeSpec { return &treema.TypeSpec{Kind: treema.KindBool} }

// Int declares an integer slot.
func Int() *treema.TypeSpec { return &treema.TypeSpec{Kind: treema.KindInt} }

// Double declares a double slot.
func Double() *treema.TypeSpec { return &treema.TypeSpec{Kind: treema.KindDouble} }

// String declares a string slot.
func String() *treema.TypeSpec { return &treema.TypeSpec{Kind: treema.KindString} }

// Enum declares a string-enum slot over the given members.
func Enum(members ...string) *treema.TypeSpec {
	return &treema.TypeSpec{Kind: treema.KindEnum, Enum: members}
}

// Array declares an ordered sequence of elem.
func Array(elem *treema.TypeSpec) *treema.TypeSpec {
	return &treema.TypeSpec{Kind: treema.KindArray, Elem: elem}
}

// Ref declares an exclusively-owned nested record resolved by name through
// the registry the record is registered in.
func Ref(name string) *treema.TypeSpec {
	return &treema.TypeSpec{Kind: treema.KindRef, Ref: name}
}

// ObjectOf declares an inline nested record.
func ObjectOf(rt *treema.RecordType) *treema.TypeSpec {
	return &treema.TypeSpec{Kind: treema.KindObject, Record: rt}
}

// Any declares a type-erased slot holding one arbitrary node.
func Any() *treema.TypeSpec { return &treema.TypeSpec{Kind: treema.KindAny} }

// Choices declares a one-of slot over the given alternatives, matched in
// declaration order.
func Choices(alts ...*treema.TypeSpec) *treema.TypeSpec {
	return &treema.TypeSpec{Kind: treema.KindChoices, Choices: alts}
}
