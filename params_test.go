package treema_test

import (
	"testing"

	treema "github.com/reoring/treema"
	"github.com/reoring/treema/dsl"
)

func TestCreateParams_IntegerArray(t *testing.T) {
	fn := dsl.Function("integerArray").
		Param("nums", dsl.Array(dsl.Int())).
		MustBuild()
	args := treema.NewArray(treema.NewArray(
		treema.FromInt(2), treema.FromInt(4), treema.FromInt(8)))
	params, err := fn.CreateParams(args)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got, ok := params.Ints("nums")
	if !ok || len(got) != 3 || got[0] != 2 || got[1] != 4 || got[2] != 8 {
		t.Fatalf("nums want [2 4 8] got %v", got)
	}
}

func TestCreateParams_AnyArray(t *testing.T) {
	fn := dsl.Function("anyArray").
		Param("anys", dsl.Array(dsl.Any())).
		MustBuild()
	args := treema.NewArray(treema.NewArray(
		treema.FromInt(1),
		treema.FromString("test"),
		treema.NewObject().Set("val", treema.FromInt(2))))
	params, err := fn.CreateParams(args)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	anys, ok := params.Anys("anys")
	if !ok || len(anys) != 3 {
		t.Fatalf("anys want 3 nodes got %v", anys)
	}
	if v, ok := anys[0].AsInt(); !ok || v != 1 {
		t.Fatalf("anys[0] want int 1, got %s", anys[0])
	}
	if v, ok := anys[1].AsString(); !ok || v != "test" {
		t.Fatalf("anys[1] want string test, got %s", anys[1])
	}
	if val, ok := anys[2].Get("val"); !ok {
		t.Fatalf("anys[2] must keep its object shape")
	} else if n, _ := val.AsInt(); n != 2 {
		t.Fatalf("anys[2].val want 2 got %d", n)
	}
}

func TestCreateParams_RefArray(t *testing.T) {
	reg := treema.NewRegistry()
	reg.MustRegister(dsl.Record("Item").Field("val", dsl.Int()).MustBuild())
	fn := dsl.Function("refArray").
		Param("refs", dsl.Array(dsl.Ref("Item"))).
		MustBuild().
		Bind(reg)

	args := treema.NewArray(treema.NewArray(itemValue(1), itemValue(2)))
	params, err := fn.CreateParams(args)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	refs, ok := params.Records("refs")
	if !ok || len(refs) != 2 {
		t.Fatalf("refs want 2 records got %v", refs)
	}
	if v, _ := refs[1].Int("val"); v != 2 {
		t.Fatalf("refs[1].val want=2 got=%d", v)
	}
}

func takesIntegers() *treema.Function {
	return dsl.Function("takesIntegers").
		Param("nums", dsl.Choices(dsl.Int(), dsl.Array(dsl.Int()))).
		MustBuild()
}

func TestCreateParams_ChoiceScalarOrArray(t *testing.T) {
	fn := takesIntegers()

	// a bool matches neither alternative
	if _, err := fn.CreateParams(treema.NewArray(treema.FromBool(true))); err == nil {
		t.Fatalf("bool must not satisfy an int-or-int-array parameter")
	}

	params, err := fn.CreateParams(treema.NewArray(treema.FromInt(6)))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	c, _ := params.Choice("nums")
	if c.Kind() != treema.KindInt || c.Value.(int64) != 6 {
		t.Fatalf("nums want int 6, got %+v", c)
	}

	params, err = fn.CreateParams(treema.NewArray(
		treema.NewArray(treema.FromInt(6), treema.FromInt(8))))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	c, _ = params.Choice("nums")
	if c.Kind() != treema.KindArray {
		t.Fatalf("nums want array alternative, got %v", c.Kind())
	}
	if got := c.Value.([]int64); len(got) != 2 || got[0] != 6 || got[1] != 8 {
		t.Fatalf("nums want [6 8] got %v", got)
	}
}

func TestCreateParams_MultipleOptionalSlots(t *testing.T) {
	fn := dsl.Function("takesOptionalEnums").
		Param("first", dsl.Enum("one", "two", "three")).Optional().
		Param("second", dsl.Enum("one", "two", "three")).Optional().
		MustBuild()

	// both present
	params, err := fn.CreateParams(treema.NewArray(
		treema.FromString("one"), treema.FromString("two")))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v, _ := params.String("first"); v != "one" {
		t.Fatalf("first want=one got=%s", v)
	}
	if v, _ := params.String("second"); v != "two" {
		t.Fatalf("second want=two got=%s", v)
	}

	// trailing slot omitted
	params, err = fn.CreateParams(treema.NewArray(treema.FromString("three")))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if params.Has("second") {
		t.Fatalf("omitted trailing slot must stay unset")
	}

	// leading slot skipped with an explicit null
	params, err = fn.CreateParams(treema.NewArray(
		treema.Null(), treema.FromString("two")))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if params.Has("first") {
		t.Fatalf("null in an optional slot must count as omitted")
	}
	if v, _ := params.String("second"); v != "two" {
		t.Fatalf("second want=two got=%s", v)
	}

	// invalid member still fails
	if _, err := fn.CreateParams(treema.NewArray(treema.FromString("four"))); err == nil {
		t.Fatalf("invalid enum member must fail")
	}
}

func TestCreateParams_RequiredAndSurplus(t *testing.T) {
	fn := dsl.Function("f").
		Param("a", dsl.Int()).
		Param("b", dsl.String()).Optional().
		MustBuild()

	// required slot left null
	_, err := fn.CreateParams(treema.NewArray(treema.Null()))
	iss, _ := treema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != treema.CodeRequired || iss[0].Path != "/0" {
		t.Fatalf("want required at /0, got %v", err)
	}

	// required slot omitted entirely
	_, err = fn.CreateParams(treema.NewArray())
	if iss, _ := treema.AsIssues(err); len(iss) != 1 || iss[0].Code != treema.CodeRequired {
		t.Fatalf("want required, got %v", err)
	}

	// more arguments than parameters
	_, err = fn.CreateParams(treema.NewArray(
		treema.FromInt(1), treema.FromString("x"), treema.FromInt(9)))
	if iss, _ := treema.AsIssues(err); len(iss) != 1 || iss[0].Code != treema.CodeTooLong {
		t.Fatalf("want too_long, got %v", err)
	}

	// non-array input
	_, err = fn.CreateParams(treema.NewObject())
	if iss, _ := treema.AsIssues(err); len(iss) != 1 || iss[0].Code != treema.CodeInvalidType {
		t.Fatalf("want invalid_type, got %v", err)
	}
}

func TestCreateParams_ElementIssuePath(t *testing.T) {
	fn := dsl.Function("f").
		Param("a", dsl.Int()).
		Param("items", dsl.Array(dsl.Int())).
		MustBuild()
	_, err := fn.CreateParams(treema.NewArray(
		treema.FromInt(1),
		treema.NewArray(treema.FromInt(2), treema.FromString("bad"))))
	iss, _ := treema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/1/1" || iss[0].Code != treema.CodeInvalidType {
		t.Fatalf("want invalid_type at /1/1, got %v", err)
	}
}
