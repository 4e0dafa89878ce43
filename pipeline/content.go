// Package pipeline orchestrates one run: fetch a page, extract its
// content, process its images, compose the post and package it.
package pipeline

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/postpack"
)

// SummaryPlaceholder ends an auto-generated summary.
const SummaryPlaceholder = "…"

// UntitledTitle is used when neither metadata nor the source URL name the page.
const UntitledTitle = "untitled"

// ContentExtractor derives title, summary and body from markup by running
// text strategies in priority order. The first strategy whose output
// exceeds its own threshold wins; later strategies are not attempted.
type ContentExtractor struct {
	Strategies []postpack.TextExtractor
	Metadata   postpack.MetadataExtractor

	// SummaryWidth bounds the auto-generated summary in runes.
	SummaryWidth int
}

// Extract never fails: strategy errors are recorded as attempts and an
// empty result degrades to the placeholder body.
func (e *ContentExtractor) Extract(doc postpack.RawDocument) *postpack.ExtractedContent {
	content := &postpack.ExtractedContent{}

	for _, s := range e.Strategies {
		text, attempt := runStrategy(s, doc.HTML)
		content.Attempts = append(content.Attempts, attempt)
		if attempt.Outcome == postpack.OutcomeAccepted {
			content.Body = text
			content.Strategy = s.Name()
			break
		}
	}

	var meta postpack.Metadata
	if e.Metadata != nil {
		if m, err := e.Metadata.ExtractMetadata(doc.HTML); err == nil && m != nil {
			meta = *m
		}
	}

	content.Title = meta.Title
	if content.Title == "" {
		content.Title = hostName(doc.URL)
	}
	if content.Title == "" {
		content.Title = UntitledTitle
	}

	content.Summary = meta.Description
	if content.Summary == "" && content.Body != "" {
		content.Summary = postpack.Shorten(content.Body, e.summaryWidth(), SummaryPlaceholder)
	}

	if content.Body == "" {
		content.Body = postpack.PlaceholderBody
	}
	return content
}

func (e *ContentExtractor) summaryWidth() int {
	if e.SummaryWidth > 0 {
		return e.SummaryWidth
	}
	return 120
}

// runStrategy runs one strategy and classifies the result. A panic inside
// a third-party extractor is reported as an error outcome.
func runStrategy(s postpack.TextExtractor, html string) (text string, attempt postpack.StrategyAttempt) {
	attempt.Strategy = s.Name()
	defer func() {
		if r := recover(); r != nil {
			text = ""
			attempt.Outcome = postpack.OutcomeError
			attempt.Err = postpack.Errorf(postpack.EEXTRACT, "%s panicked: %v", s.Name(), r)
		}
	}()

	text, err := s.ExtractText(html)
	if err != nil {
		attempt.Outcome = postpack.OutcomeError
		attempt.Err = err
		return "", attempt
	}

	text = strings.TrimSpace(text)
	attempt.Length = utf8.RuneCountInString(text)
	if attempt.Length <= s.MinLength() {
		attempt.Outcome = postpack.OutcomeTooShort
		attempt.Err = postpack.Errorf(postpack.EEXTRACT, "%s produced %d characters, need more than %d", s.Name(), attempt.Length, s.MinLength())
		return "", attempt
	}

	attempt.Outcome = postpack.OutcomeAccepted
	return text, attempt
}

// hostName returns the host of rawURL, or rawURL itself when it has none.
func hostName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return strings.TrimSpace(rawURL)
	}
	return u.Host
}
