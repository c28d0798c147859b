// Package diag renders Issues for humans: one line per issue with the code,
// JSON Pointer path, and message, colorized when writing to a terminal, plus
// "did you mean" suggestions computed from issue metadata.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	treema "github.com/reoring/treema"
	"github.com/reoring/treema/i18n"
)

// Printer writes formatted issues to a destination.
type Printer struct {
	w        io.Writer
	useColor bool
}

// NewPrinter returns a Printer that colorizes output when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	p := &Printer{w: w}
	if f, ok := w.(*os.File); ok {
		p.useColor = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return p
}

// Color overrides terminal detection.
func (p *Printer) Color(on bool) *Printer {
	p.useColor = on
	return p
}

// Print writes one line per issue.
func (p *Printer) Print(iss treema.Issues) {
	for _, it := range iss {
		fmt.Fprintln(p.w, p.Format(it))
	}
}

// Format renders a single issue.
func (p *Printer) Format(it treema.Issue) string {
	code := it.Code
	if p.useColor {
		code = color.New(color.FgRed, color.Bold).Sprint(code)
	}
	msg := it.Message
	if msg == "" {
		msg = i18n.T(it.Code, nil)
	}
	line := fmt.Sprintf("%s at %s: %s", code, it.Path, msg)
	if s, ok := suggestion(it); ok {
		if p.useColor {
			s = color.New(color.FgYellow).Sprint(s)
		}
		line += " (did you mean " + s + "?)"
	} else if it.Hint != "" {
		line += " (" + it.Hint + ")"
	}
	return line
}

// suggestion proposes the nearest candidate for unknown keys and enum
// mismatches, when the issue carries "got" and "candidates" params.
func suggestion(it treema.Issue) (string, bool) {
	if it.Code != treema.CodeUnknownKey && it.Code != treema.CodeInvalidEnum {
		return "", false
	}
	got, _ := it.Params["got"].(string)
	if got == "" {
		return "", false
	}
	return Suggest(got, candidateList(it.Params["candidates"]))
}

func candidateList(v any) []string {
	switch x := v.(type) {
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Suggest returns the candidate closest to got by Levenshtein distance,
// rejecting matches that differ in more than half their length.
func Suggest(got string, candidates []string) (string, bool) {
	dmp := diffpatch.New()
	best, bestDist := "", -1
	for _, c := range candidates {
		if c == got {
			continue
		}
		diffs := dmp.DiffMain(got, c, false)
		dist := dmp.DiffLevenshtein(diffs)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = c, dist
		}
	}
	if best == "" {
		return "", false
	}
	limit := len(got)
	if len(best) > limit {
		limit = len(best)
	}
	if bestDist > limit/2 {
		return "", false
	}
	return best, true
}
