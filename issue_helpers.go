package treema

// IssueAt builds an Issue at p, carrying a params map for i18n and
// diagnostics. Decode paths use it where PathRef.Issue's variadic key/value
// form would obscure the call site.
func IssueAt(p PathRef, code, msg string, params map[string]any) Issue {
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}
