package postgres

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards in user-supplied text so it matches
// literally. Postgres uses backslash as the default LIKE escape.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
