package postpack

import "strings"

// Keyword is a token with its occurrence count.
type Keyword struct {
	Token     string
	Frequency int
}

// KeywordSet is a ranked list of keywords, most frequent first, ties in
// order of first occurrence.
type KeywordSet []Keyword

// Tokens returns the keyword tokens in rank order.
func (s KeywordSet) Tokens() []string {
	tokens := make([]string, len(s))
	for i, k := range s {
		tokens[i] = k.Token
	}
	return tokens
}

// Hashtags renders the set as "#token" entries joined by sep.
func (s KeywordSet) Hashtags(sep HashtagSeparator) string {
	return FormatHashtags(s.Tokens(), sep)
}

// FormatHashtags renders tokens as hashtags joined by sep.
func FormatHashtags(tokens []string, sep HashtagSeparator) string {
	tags := make([]string, len(tokens))
	for i, t := range tokens {
		tags[i] = "#" + t
	}
	return strings.Join(tags, sep.Join())
}

// KeywordExtractor ranks the keywords of a text.
type KeywordExtractor interface {
	Extract(text string) KeywordSet
}
