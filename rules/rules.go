// Package rules layers business validation over structural decode: compiled
// boolean expressions evaluated against a decoded record's fields. Rules run
// after Decode succeeds; a false result or evaluation error surfaces as an
// Issue with code business_rule.
package rules

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	treema "github.com/reoring/treema"
	"github.com/reoring/treema/i18n"
)

// Rule is a named, compiled boolean expression. Field names of the record
// are in scope as variables; nested records appear as maps.
type Rule struct {
	name string
	src  string
	prog *vm.Program
}

// Compile compiles src into a rule. The expression must evaluate to a
// boolean.
func Compile(name, src string) (*Rule, error) {
	prog, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("rules: compile %s: %w", name, err)
	}
	return &Rule{name: name, src: src, prog: prog}, nil
}

// MustCompile is Compile that panics on error.
func MustCompile(name, src string) *Rule {
	r, err := Compile(name, src)
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the rule name.
func (r *Rule) Name() string { return r.name }

// Apply evaluates the rule against a decoded record.
func (r *Rule) Apply(rec *treema.Record) treema.Issues {
	env := Env(rec)
	out, err := expr.Run(r.prog, env)
	if err != nil {
		return treema.Issues{{
			Path: "/", Code: treema.CodeBusinessRule, Rule: r.name,
			Message: i18n.T(treema.CodeBusinessRule, nil), Cause: err,
		}}
	}
	if ok, _ := out.(bool); !ok {
		return treema.Issues{{
			Path: "/", Code: treema.CodeBusinessRule, Rule: r.name,
			Message: i18n.T(treema.CodeBusinessRule, nil), Hint: r.src,
		}}
	}
	return nil
}

// Apply runs every rule against the record and collects all issues.
func Apply(rec *treema.Record, rs ...*Rule) treema.Issues {
	var iss treema.Issues
	for _, r := range rs {
		iss = treema.AppendIssues(iss, r.Apply(rec)...)
	}
	if len(iss) == 0 {
		return nil
	}
	return iss
}

// Env exposes a decoded record as an expression environment: field values by
// name, nested records as maps, any slots as plain values.
func Env(rec *treema.Record) map[string]any {
	m, _ := rec.Encode().ToAny().(map[string]any)
	if m == nil {
		m = map[string]any{}
	}
	return m
}
