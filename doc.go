// Package treema provides:
//
// - A tagged value tree (Node) with ordered object keys and structural equality
// - A runtime schema model (records, enums, choices, refs, arrays, any slots)
// - All-or-nothing structural decode into typed Records, with a stable error
//   model via Issues (JSON Pointer, code, message)
// - Order-preserving encode back to the value tree, positional parameter
//   decoding and result wrapping for function-call conventions
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the DSL under dsl/, input sources under source/, schema-file loading
//   under apidef/, diagnostics under diag/, and the CLI under cmd/treema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	item := dsl.Record("Item").
//	    Field("val", dsl.Int()).
//	    MustBuild()
//
//	node, err := json.Parse(data)
//	rec, err := item.Decode(node)
//	out := rec.Encode()
package treema
