package helper

import "strings"

// MatchesSearch reports whether term occurs (case-insensitive) in any of the
// given fields. An empty term matches everything — the admin list views apply
// the filter on every keystroke, including the empty one.
func MatchesSearch(term string, fields ...string) bool {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// LikePattern builds the ILIKE pattern for the same substring search in SQL.
func LikePattern(term string) string {
	return "%" + strings.TrimSpace(term) + "%"
}
