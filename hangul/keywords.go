// Package hangul ranks Korean keywords in extracted text.
package hangul

import (
	"regexp"
	"sort"

	"github.com/fwojciec/postpack"
)

// DefaultLimit is the number of keywords kept when no limit is configured.
const DefaultLimit = 12

// tokenRe matches runs of two or more precomposed Hangul syllables.
var tokenRe = regexp.MustCompile(`[\x{AC00}-\x{D7A3}]{2,}`)

// Ensure Extractor implements postpack.KeywordExtractor at compile time.
var _ postpack.KeywordExtractor = (*Extractor)(nil)

// Extractor counts Hangul tokens and returns the most frequent ones.
type Extractor struct {
	stopwords postpack.StopwordSet
	limit     int
}

// NewExtractor creates an Extractor that skips stopwords and keeps at most
// limit keywords.
func NewExtractor(stopwords postpack.StopwordSet, limit int) *Extractor {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Extractor{stopwords: stopwords, limit: limit}
}

// Tokenize returns the Hangul runs of text that are not stopwords, in order.
func (e *Extractor) Tokenize(text string) []string {
	var tokens []string
	for _, t := range tokenRe.FindAllString(text, -1) {
		if e.stopwords.Contains(t) {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// Extract ranks tokens by frequency, breaking ties by first occurrence.
func (e *Extractor) Extract(text string) postpack.KeywordSet {
	index := make(map[string]int)
	var ks postpack.KeywordSet
	for _, t := range e.Tokenize(text) {
		if i, ok := index[t]; ok {
			ks[i].Frequency++
			continue
		}
		index[t] = len(ks)
		ks = append(ks, postpack.Keyword{Token: t, Frequency: 1})
	}

	// ks is in first-occurrence order, so a stable sort keeps ties ordered.
	sort.SliceStable(ks, func(i, j int) bool {
		return ks[i].Frequency > ks[j].Frequency
	})

	if len(ks) > e.limit {
		ks = ks[:e.limit]
	}
	return ks
}
