package diag_test

import (
	"bytes"
	"strings"
	"testing"

	treema "github.com/reoring/treema"
	"github.com/reoring/treema/diag"
)

func TestFormat_PlainLine(t *testing.T) {
	var buf bytes.Buffer
	p := diag.NewPrinter(&buf).Color(false)
	got := p.Format(treema.Issue{
		Path:    "/name",
		Code:    treema.CodeRequired,
		Message: "required field missing",
	})
	want := "required at /name: required field missing"
	if got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestFormat_FallsBackToTranslatedMessage(t *testing.T) {
	p := diag.NewPrinter(&bytes.Buffer{}).Color(false)
	got := p.Format(treema.Issue{Path: "/a", Code: treema.CodeInvalidType})
	if !strings.HasPrefix(got, "invalid_type at /a: ") || strings.HasSuffix(got, ": ") {
		t.Fatalf("empty messages must fall back to the dictionary, got %q", got)
	}
}

func TestFormat_Suggestion(t *testing.T) {
	p := diag.NewPrinter(&bytes.Buffer{}).Color(false)
	got := p.Format(treema.Issue{
		Path:    "/strngs",
		Code:    treema.CodeUnknownKey,
		Message: "unknown key",
		Params: map[string]any{
			"got":        "strngs",
			"candidates": []string{"strings", "integers"},
		},
	})
	if !strings.Contains(got, "did you mean strings?") {
		t.Fatalf("want a suggestion for strngs, got %q", got)
	}
}

func TestFormat_HintWithoutSuggestion(t *testing.T) {
	p := diag.NewPrinter(&bytes.Buffer{}).Color(false)
	got := p.Format(treema.Issue{
		Path:    "/n",
		Code:    treema.CodeInvalidType,
		Message: "expected integer",
		Hint:    "numbers with a fraction are doubles",
	})
	if !strings.Contains(got, "(numbers with a fraction are doubles)") {
		t.Fatalf("hint not rendered: %q", got)
	}
}

func TestPrint_OneLinePerIssue(t *testing.T) {
	var buf bytes.Buffer
	diag.NewPrinter(&buf).Color(false).Print(treema.Issues{
		{Path: "/a", Code: treema.CodeRequired, Message: "m1"},
		{Path: "/b", Code: treema.CodeInvalidType, Message: "m2"},
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines got %d:\n%s", len(lines), buf.String())
	}
}

func TestSuggest(t *testing.T) {
	if s, ok := diag.Suggest("strngs", []string{"strings", "integers"}); !ok || s != "strings" {
		t.Fatalf("want strings, got %q %v", s, ok)
	}
	if s, ok := diag.Suggest("thre", []string{"one", "two", "three"}); !ok || s != "three" {
		t.Fatalf("want three, got %q %v", s, ok)
	}
	// nothing close enough
	if _, ok := diag.Suggest("zzzzzz", []string{"one", "two"}); ok {
		t.Fatalf("distant candidates must be rejected")
	}
	if _, ok := diag.Suggest("x", nil); ok {
		t.Fatalf("no candidates means no suggestion")
	}
}
