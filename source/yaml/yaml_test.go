package yaml_test

import (
	"testing"

	treema "github.com/reoring/treema"
	"github.com/reoring/treema/source/yaml"
)

const sampleDoc = `
zebra: 1
alpha:
  - true
  - null
  - "6"
  - 6
  - 6.5
name: value
`

func TestParse_MappingOrderAndScalars(t *testing.T) {
	n, err := yaml.Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(n.Keys) != 3 || n.Keys[0] != "zebra" || n.Keys[1] != "alpha" || n.Keys[2] != "name" {
		t.Fatalf("mapping order lost: %v", n.Keys)
	}
	alpha, _ := n.Get("alpha")
	if alpha.Type != treema.ArrayType || alpha.Len() != 5 {
		t.Fatalf("alpha want 5-element array got %s", alpha)
	}
	wantTypes := []treema.Type{
		treema.BoolType, treema.NullType, treema.StringType,
		treema.IntType, treema.DoubleType,
	}
	for i, wt := range wantTypes {
		if got := alpha.Index(i).Type; got != wt {
			t.Fatalf("alpha[%d] want %v got %v", i, wt, got)
		}
	}
	// a quoted "6" stays a string, an unquoted 6 is an integer
	if alpha.Index(2).Str != "6" || alpha.Index(3).Int != 6 {
		t.Fatalf("quoted/unquoted number distinction lost")
	}
}

func TestParse_DuplicateKey(t *testing.T) {
	_, err := yaml.Parse([]byte("a: 1\na: 2\n"))
	iss, _ := treema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != treema.CodeDuplicateKey || iss[0].Path != "/a" {
		t.Fatalf("want duplicate_key at /a, got %v", err)
	}
}

func TestParse_Anchors(t *testing.T) {
	doc := `
base: &b
  val: 1
copy: *b
`
	n, err := yaml.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	cp, _ := n.Get("copy")
	if v, ok := cp.Get("val"); !ok || v.Int != 1 {
		t.Fatalf("alias must resolve to its anchor, got %s", cp)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	n := treema.NewObject().
		Set("z", treema.FromInt(1)).
		Set("list", treema.NewArray(
			treema.FromBool(true),
			treema.FromString("text"),
			treema.FromDouble(2.5),
			treema.Null())).
		Set("nested", treema.NewObject().Set("k", treema.FromString("v")))

	out, err := yaml.Encode(n)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	n2, err := yaml.Parse(out)
	if err != nil {
		t.Fatalf("reparse failed: %v\n%s", err, out)
	}
	if !n.Equal(n2) {
		t.Fatalf("round trip lost structure:\n%s", out)
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := yaml.Parse([]byte(""))
	if iss, _ := treema.AsIssues(err); len(iss) != 1 || iss[0].Code != treema.CodeParseError {
		t.Fatalf("want parse_error on empty input, got %v", err)
	}
}
