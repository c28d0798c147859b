package treema_test

import (
	"testing"

	treema "github.com/reoring/treema"
	"github.com/reoring/treema/dsl"
)

func TestCreateResult_Scalar(t *testing.T) {
	n, err := treema.CreateResult(5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !treema.FromInt(5).Equal(n) {
		t.Fatalf("want int node 5, got %s", n)
	}
}

func TestCreateResult_IntSlice(t *testing.T) {
	n, err := treema.CreateResult([]int{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := treema.NewArray(
		treema.FromInt(1), treema.FromInt(2), treema.FromInt(3))
	if !want.Equal(n) {
		t.Fatalf("want %s got %s", want, n)
	}
}

func TestCreateResult_RecordSlice(t *testing.T) {
	rt := dsl.Record("Item").Field("val", dsl.Int()).MustBuild()
	recs := []*treema.Record{
		treema.NewRecord(rt).MustSet("val", 1),
		treema.NewRecord(rt).MustSet("val", 2),
	}
	n, err := treema.CreateResult(recs)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := treema.NewArray(itemValue(1), itemValue(2))
	if !want.Equal(n) {
		t.Fatalf("want %s got %s", want, n)
	}
}

func TestCreateResult_NodePassthroughCopies(t *testing.T) {
	src := treema.NewObject().Set("k", treema.FromString("v"))
	n, err := treema.CreateResult(src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	src.Set("k", treema.FromString("mutated"))
	if v, _ := n.Get("k"); v.Str != "v" {
		t.Fatalf("result must be detached from the source node")
	}
}

func TestCreateResult_Nil(t *testing.T) {
	n, err := treema.CreateResult(nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !n.IsNull() {
		t.Fatalf("nil result want null node, got %s", n)
	}
}

func TestCreateResult_Unsupported(t *testing.T) {
	if _, err := treema.CreateResult(struct{ X int }{1}); err == nil {
		t.Fatalf("unsupported Go type must be rejected")
	}
	if _, err := treema.CreateResult([]any{1, struct{}{}}); err == nil {
		t.Fatalf("unsupported element inside []any must be rejected")
	}
}
