package repositories

import "strings"

// EscapeLike escapes LIKE wildcards in user-supplied search terms so they
// match literally. Queries using the result must add `ESCAPE '\'`.
func EscapeLike(term string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	)
	return r.Replace(term)
}

// ContainsPattern builds a case-folded substring LIKE pattern for term.
func ContainsPattern(term string) string {
	return "%" + strings.ToLower(EscapeLike(term)) + "%"
}
