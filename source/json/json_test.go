package json_test

import (
	"testing"

	treema "github.com/reoring/treema"
	"github.com/reoring/treema/source/json"
)

func TestParse_KeyOrderPreserved(t *testing.T) {
	n, err := json.Parse([]byte(`{"z":1,"a":2,"m":3}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{"z", "a", "m"}
	if len(n.Keys) != 3 {
		t.Fatalf("want 3 keys got %v", n.Keys)
	}
	for i, k := range want {
		if n.Keys[i] != k {
			t.Fatalf("key %d want %s got %s", i, k, n.Keys[i])
		}
	}
}

func TestParse_NumberKinds(t *testing.T) {
	n, err := json.Parse([]byte(`{"i":6,"d":6.0,"e":1e3,"neg":-2}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	i, _ := n.Get("i")
	if i.Type != treema.IntType || i.Int != 6 {
		t.Fatalf("i want int 6 got %s", i)
	}
	d, _ := n.Get("d")
	if d.Type != treema.DoubleType || d.Double != 6.0 {
		t.Fatalf("d want double 6.0 got %s", d)
	}
	e, _ := n.Get("e")
	if e.Type != treema.DoubleType || e.Double != 1000 {
		t.Fatalf("e want double 1000 got %s", e)
	}
	neg, _ := n.Get("neg")
	if neg.Type != treema.IntType || neg.Int != -2 {
		t.Fatalf("neg want int -2 got %s", neg)
	}
}

func TestParse_DuplicateKey(t *testing.T) {
	_, err := json.Parse([]byte(`{"a":1,"a":2}`))
	iss, ok := treema.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != treema.CodeDuplicateKey || iss[0].Path != "/a" {
		t.Fatalf("want duplicate_key at /a, got %v", err)
	}
}

func TestParse_TrailingContent(t *testing.T) {
	_, err := json.Parse([]byte(`{"a":1} 2`))
	iss, _ := treema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != treema.CodeParseError {
		t.Fatalf("want parse_error, got %v", err)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := json.Parse([]byte(``))
	if iss, _ := treema.AsIssues(err); len(iss) != 1 || iss[0].Code != treema.CodeParseError {
		t.Fatalf("want parse_error, got %v", err)
	}
}

func TestParse_MaxDepth(t *testing.T) {
	doc := []byte(`{"a":{"b":{"c":1}}}`)
	if _, err := json.Parse(doc); err != nil {
		t.Fatalf("unexpected err without limit: %v", err)
	}
	_, err := json.Parse(doc, treema.DecodeOpt{MaxDepth: 2})
	iss, _ := treema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != treema.CodeMaxDepth {
		t.Fatalf("want max_depth, got %v", err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	docs := []string{
		`{"z":1,"a":[true,null,"s",6.5],"nested":{"k":"v"}}`,
		`[1,2,3]`,
		`{"d":6.0,"neg":-2.0,"exp":1e21}`,
		`"it's \"quoted\""`,
		`null`,
	}
	for _, doc := range docs {
		n, err := json.Parse([]byte(doc))
		if err != nil {
			t.Fatalf("parse %s: %v", doc, err)
		}
		out, err := json.Encode(n)
		if err != nil {
			t.Fatalf("encode %s: %v", doc, err)
		}
		n2, err := json.Parse(out)
		if err != nil {
			t.Fatalf("reparse %s: %v", out, err)
		}
		if !n.Equal(n2) {
			t.Fatalf("round trip of %s lost structure: %s", doc, out)
		}
	}
}

func TestEncode_IntegralDoubleStaysDouble(t *testing.T) {
	out, err := json.Encode(treema.FromDouble(6.0))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if string(out) != "6.0" {
		t.Fatalf("integral double want literal 6.0 got %s", out)
	}
	n, err := json.Parse(out)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if n.Type != treema.DoubleType {
		t.Fatalf("reparsed kind want double got %v", n.Type)
	}
	if treema.FromInt(6).Equal(n) {
		t.Fatalf("double 6.0 must not collapse into integer 6")
	}
}

func TestEncode_KeyOrder(t *testing.T) {
	n := treema.NewObject().
		Set("z", treema.FromInt(1)).
		Set("a", treema.FromInt(2))
	out, err := json.Encode(n)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if string(out) != `{"z":1,"a":2}` {
		t.Fatalf("want node order preserved, got %s", out)
	}
}
