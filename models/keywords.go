package models

import "strings"

// SplitKeywords decodes a comma-separated keyword string. Items are trimmed and
// empty items dropped.
func SplitKeywords(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if kw := strings.TrimSpace(part); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// JoinKeywords encodes keywords as "a, b, c".
func JoinKeywords(keywords []string) string {
	return strings.Join(keywords, ", ")
}

// All lists every model managed by the ORM, in migration order.
func All() []any {
	return []any{&Project{}, &BlogPost{}, &Research{}, &Message{}}
}
