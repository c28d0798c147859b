// Package engine builds value trees from token streams, enforcing duplicate
// key and nesting depth limits along the way. This package is internal and
// not part of the public API.
package engine

import (
	"io"
	"strconv"
	"strings"

	treema "github.com/reoring/treema"
)

// Kind identifies a token in the input stream.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token describes one token. Number holds the literal text so the builder
// can keep the integer/double distinction.
type Token struct {
	Kind   Kind
	Str    string
	Number string
	Bool   bool
	Offset int64 // byte offset when known, -1 otherwise
}

// TokenSource yields tokens until io.EOF.
type TokenSource interface {
	NextToken() (Token, error)
}

// Options controls enforcement during tree building.
type Options struct {
	MaxDepth int // 0 means no limit
}

// BuildNode consumes one complete value from the source and returns its
// tree. Trailing tokens after the value are an error.
func BuildNode(src TokenSource, opt Options) (*treema.Node, error) {
	b := &builder{src: src, opt: opt}
	tok, err := src.NextToken()
	if err != nil {
		if err == io.EOF {
			return nil, treema.Issues{treema.Root().Issue(treema.CodeParseError, "empty input")}
		}
		return nil, wrapErr(err)
	}
	n, err := b.value(tok, treema.Root())
	if err != nil {
		return nil, err
	}
	if _, err := src.NextToken(); err != io.EOF {
		if err != nil {
			return nil, wrapErr(err)
		}
		return nil, treema.Issues{treema.Root().Issue(treema.CodeParseError, "trailing content after value")}
	}
	return n, nil
}

type builder struct {
	src   TokenSource
	opt   Options
	depth int
}

func (b *builder) push(at treema.PathRef) error {
	b.depth++
	if b.opt.MaxDepth > 0 && b.depth > b.opt.MaxDepth {
		return treema.Issues{at.Issue(treema.CodeMaxDepth, "max depth exceeded", "max", b.opt.MaxDepth)}
	}
	return nil
}

func (b *builder) value(tok Token, at treema.PathRef) (*treema.Node, error) {
	switch tok.Kind {
	case KindNull:
		return treema.Null(), nil
	case KindBool:
		return treema.FromBool(tok.Bool), nil
	case KindString:
		return treema.FromString(tok.Str), nil
	case KindNumber:
		return numberNode(tok.Number, at)
	case KindBeginArray:
		if err := b.push(at); err != nil {
			return nil, err
		}
		defer func() { b.depth-- }()
		arr := treema.NewArray()
		for i := 0; ; i++ {
			et, err := b.src.NextToken()
			if err != nil {
				return nil, wrapErr(err)
			}
			if et.Kind == KindEndArray {
				return arr, nil
			}
			en, err := b.value(et, at.Index(i))
			if err != nil {
				return nil, err
			}
			arr.Append(en)
		}
	case KindBeginObject:
		if err := b.push(at); err != nil {
			return nil, err
		}
		defer func() { b.depth-- }()
		obj := treema.NewObject()
		seen := map[string]struct{}{}
		for {
			kt, err := b.src.NextToken()
			if err != nil {
				return nil, wrapErr(err)
			}
			if kt.Kind == KindEndObject {
				return obj, nil
			}
			if kt.Kind != KindKey {
				return nil, treema.Issues{at.Issue(treema.CodeParseError, "expected object key")}
			}
			if _, dup := seen[kt.Str]; dup {
				return nil, treema.Issues{at.Field(kt.Str).Issue(treema.CodeDuplicateKey, "duplicate key", "key", kt.Str)}
			}
			seen[kt.Str] = struct{}{}
			vt, err := b.src.NextToken()
			if err != nil {
				return nil, wrapErr(err)
			}
			vn, err := b.value(vt, at.Field(kt.Str))
			if err != nil {
				return nil, err
			}
			obj.Set(kt.Str, vn)
		}
	}
	return nil, treema.Issues{at.Issue(treema.CodeParseError, "unexpected token")}
}

// numberNode keeps the integer/double distinction by inspecting the literal:
// a fraction or exponent makes it a double.
func numberNode(text string, at treema.PathRef) (*treema.Node, error) {
	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, treema.Issues{at.Issue(treema.CodeParseError, "invalid number "+text)}
		}
		return treema.FromDouble(f), nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// out of int64 range; fall back to double
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			return nil, treema.Issues{at.Issue(treema.CodeParseError, "invalid number "+text)}
		}
		return treema.FromDouble(f), nil
	}
	return treema.FromInt(i), nil
}

func wrapErr(err error) error {
	if err == io.EOF {
		return treema.Issues{treema.Root().Issue(treema.CodeParseError, "unexpected end of input")}
	}
	if iss, ok := treema.AsIssues(err); ok {
		return iss
	}
	return treema.Issues{treema.Issue{Path: "/", Code: treema.CodeParseError, Message: err.Error(), Cause: err}}
}
