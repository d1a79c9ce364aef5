package search

import (
	"regexp"
	"strings"
)

// Highlight wraps every case-insensitive whole-word match of each query term
// in [highlight]...[/highlight] markers. Non-matching text, case and
// whitespace are left untouched. Each query word is applied in its own pass,
// so adjacent matches of different words are individually wrapped.
func Highlight(text, query string) string {
	highlighted := text
	for _, word := range strings.Fields(strings.ToLower(query)) {
		pattern, err := regexp.Compile(`(?i)\b(` + regexp.QuoteMeta(word) + `)\b`)
		if err != nil {
			continue
		}
		highlighted = pattern.ReplaceAllString(highlighted, "[highlight]$1[/highlight]")
	}
	return highlighted
}
