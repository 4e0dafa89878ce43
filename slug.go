package postpack

import (
	"regexp"
	"strings"
)

var slugInvalidRe = regexp.MustCompile(`[^a-z0-9\-_.]+`)

// Slug derives an archive-safe name from title. Runs of characters outside
// [a-z0-9-_.] collapse to a single "-" and surrounding dashes are trimmed.
// Returns fallback when nothing remains.
func Slug(title, fallback string) string {
	s := slugInvalidRe.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return fallback
	}
	return s
}

// Shorten collapses whitespace in text and truncates it at a word boundary
// so the result, including placeholder, fits within width runes.
func Shorten(text string, width int, placeholder string) string {
	words := strings.Fields(text)
	joined := strings.Join(words, " ")
	if len([]rune(joined)) <= width {
		return joined
	}

	budget := width - len([]rune(placeholder))
	var b strings.Builder
	n := 0
	for _, w := range words {
		wl := len([]rune(w))
		sep := 0
		if n > 0 {
			sep = 1
		}
		if n+sep+wl > budget {
			break
		}
		if sep == 1 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
		n += sep + wl
	}

	// First word alone exceeds the budget: cut it.
	if n == 0 && budget > 0 {
		b.WriteString(string([]rune(words[0])[:budget]))
	}
	return b.String() + placeholder
}
