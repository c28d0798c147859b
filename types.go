package treema

// UnknownPolicy controls how undeclared object keys are handled on decode.
type UnknownPolicy int

const (
	UnknownIgnore UnknownPolicy = iota // Skip undeclared keys (default).
	UnknownStrict                      // Reject undeclared keys with an error.
)

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	Unknown  UnknownPolicy
	FailFast bool // Stop at the first issue instead of collecting all.
	MaxDepth int  // Maximum nesting depth; 0 means no limit.
}
