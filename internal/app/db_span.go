package app

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxSpanStatementBytes caps db.statement on postgres spans. The match
// listing with a team filter is the longest query and fits well within it.
const maxSpanStatementBytes = 512

var sqlWhitespace = regexp.MustCompile(`\s+`)

// spanStatement collapses whitespace in a repository query so it reads on one
// line in a trace, cutting it on a rune boundary when it is too long.
func spanStatement(query string) string {
	query = sqlWhitespace.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(query) <= maxSpanStatementBytes {
		return query
	}

	cut := maxSpanStatementBytes
	for cut > 0 && !utf8.RuneStart(query[cut]) {
		cut--
	}
	return query[:cut] + "..."
}
