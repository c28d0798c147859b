// Package json converts JSON documents to and from treema value trees. The
// decoder preserves object key order and keeps the integer/double
// distinction by inspecting number literals.
package json

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	treema "github.com/reoring/treema"
	eng "github.com/reoring/treema/internal/engine"
)

// Parse decodes one JSON value into a node.
func Parse(data []byte, opts ...treema.DecodeOpt) (*treema.Node, error) {
	return ParseReader(bytes.NewReader(data), opts...)
}

// ParseReader decodes one JSON value from r into a node.
func ParseReader(r io.Reader, opts ...treema.DecodeOpt) (*treema.Node, error) {
	var opt treema.DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return eng.BuildNode(newSource(r), eng.Options{MaxDepth: opt.MaxDepth})
}

// ---- engine.TokenSource over a go-json decoder ----

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type source struct {
	dec   *j.Decoder
	stack []frame
}

func newSource(r io.Reader) *source {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// afterValue flips the top object frame back to expecting a key once a value
// token has been consumed.
func (s *source) afterValue() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return eng.Token{Kind: eng.KindBeginObject, Offset: s.dec.InputOffset()}, nil
		case '}':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.afterValue()
			return eng.Token{Kind: eng.KindEndObject, Offset: s.dec.InputOffset()}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return eng.Token{Kind: eng.KindBeginArray, Offset: s.dec.InputOffset()}, nil
		case ']':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.afterValue()
			return eng.Token{Kind: eng.KindEndArray, Offset: s.dec.InputOffset()}, nil
		}
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return eng.Token{Kind: eng.KindKey, Str: v, Offset: s.dec.InputOffset()}, nil
			}
		}
		s.afterValue()
		return eng.Token{Kind: eng.KindString, Str: v, Offset: s.dec.InputOffset()}, nil
	case bool:
		s.afterValue()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: s.dec.InputOffset()}, nil
	case j.Number:
		s.afterValue()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: s.dec.InputOffset()}, nil
	case float64:
		s.afterValue()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: s.dec.InputOffset()}, nil
	case nil:
		s.afterValue()
		return eng.Token{Kind: eng.KindNull, Offset: s.dec.InputOffset()}, nil
	}
	s.afterValue()
	return eng.Token{Kind: eng.KindNull, Offset: s.dec.InputOffset()}, nil
}

// ---- encoding ----

// Encode renders the node as compact JSON, emitting object keys in node
// order.
func Encode(n *treema.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := write(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func write(buf *bytes.Buffer, n *treema.Node) error {
	switch n.Type {
	case treema.NullType:
		buf.WriteString("null")
	case treema.BoolType:
		buf.WriteString(strconv.FormatBool(n.Bool))
	case treema.IntType:
		buf.WriteString(strconv.FormatInt(n.Int, 10))
	case treema.DoubleType:
		b, err := j.Marshal(n.Double)
		if err != nil {
			return err
		}
		buf.Write(b)
		// An integral double marshals without a fraction or exponent and
		// would reparse as an integer; keep the literal a double.
		if !bytes.ContainsAny(b, ".eE") {
			buf.WriteString(".0")
		}
	case treema.StringType:
		b, err := j.Marshal(n.Str)
		if err != nil {
			return err
		}
		buf.Write(b)
	case treema.ArrayType:
		buf.WriteByte('[')
		for i, e := range n.Elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := write(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case treema.ObjectType:
		buf.WriteByte('{')
		for i, k := range n.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := j.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := write(buf, n.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return treema.Issues{treema.Root().Issue(treema.CodeParseError, "invalid node")}
	}
	return nil
}
