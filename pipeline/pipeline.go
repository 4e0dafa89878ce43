package pipeline

import (
	"context"
	"net/url"

	"github.com/fwojciec/postpack"
)

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressFetched ProgressType = iota
	ProgressExtracted
	ProgressCandidates
	ProgressImageAccepted
	ProgressImageSkipped
	ProgressArchived
)

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type ProgressType
	URL  string
	// Count is the number of accepted images so far for image events,
	// the candidate count for ProgressCandidates.
	Count   int
	Outcome *postpack.ImageOutcome
	// Err is set on ProgressCandidates when the page could not be scanned.
	Err error
}

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Result holds everything a run produced.
type Result struct {
	Content    *postpack.ExtractedContent
	Candidates []postpack.ImageCandidate
	Outcomes   []postpack.ImageOutcome
	Images     []postpack.ProcessedImage
	Post       *postpack.Post
	Slug       string
	TextName   string
	Archive    *postpack.Archive
	// ScanErr records why image candidates could not be collected. The
	// run continues without images.
	ScanErr error
}

// ImagePaths returns the local paths of the processed images in order.
func (r *Result) ImagePaths() []string {
	paths := make([]string, len(r.Images))
	for i, img := range r.Images {
		paths[i] = img.Path
	}
	return paths
}

// Pipeline turns one page into a post package. Steps run sequentially.
type Pipeline struct {
	Fetcher   postpack.Fetcher
	Content   *ContentExtractor
	Images    postpack.ImageCollector
	Processor postpack.ImageProcessor
	Keywords  postpack.KeywordExtractor
	Archiver  postpack.Archiver
	Config    postpack.Config
}

// Run processes pageURL. Only a failed page fetch, invalid input or a
// failed archive write return an error; extraction and per-image failures
// degrade the result instead.
func (p *Pipeline) Run(ctx context.Context, pageURL string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}
	if err := p.Config.Validate(); err != nil {
		return nil, err
	}
	if err := validatePageURL(pageURL); err != nil {
		return nil, err
	}

	html, err := p.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		if postpack.ErrorCode(err) == postpack.EFETCH {
			return nil, err
		}
		return nil, postpack.Errorf(postpack.EFETCH, "fetch %s: %v", pageURL, err)
	}
	progress(ProgressEvent{Type: ProgressFetched, URL: pageURL})

	doc := postpack.RawDocument{URL: pageURL, HTML: html}
	result := &Result{
		Content: p.Content.Extract(doc),
	}
	progress(ProgressEvent{Type: ProgressExtracted, URL: pageURL})

	if p.Config.MaxImages > 0 {
		// A page we cannot scan for images still yields a post.
		cands, err := p.Images.Collect(html, pageURL, p.Config.CandidateLimit())
		if err != nil {
			result.ScanErr = err
		} else {
			result.Candidates = cands
		}
		progress(ProgressEvent{Type: ProgressCandidates, URL: pageURL, Count: len(result.Candidates), Err: result.ScanErr})
		p.processImages(ctx, result, progress)
	}

	post, err := postpack.Compose(postpack.ComposeInput{
		Title:     result.Content.Title,
		Summary:   result.Content.Summary,
		Body:      result.Content.Body,
		SourceURL: pageURL,
		Images:    result.Images,
		Interval:  p.Config.ParagraphInterval,
	}, p.Keywords, p.Config.HashtagSeparator)
	if err != nil {
		return nil, err
	}
	result.Post = post
	result.Slug = postpack.Slug(result.Content.Title, p.Config.DefaultSlug)
	result.TextName = result.Slug + "." + p.Config.TextExt

	archive, err := p.Archiver.Archive(result.TextName, []byte(post.Render()), result.ImagePaths())
	if err != nil {
		if postpack.ErrorCode(err) == postpack.EARCHIVE {
			return nil, err
		}
		return nil, postpack.Errorf(postpack.EARCHIVE, "package %s: %v", result.TextName, err)
	}
	result.Archive = archive
	progress(ProgressEvent{Type: ProgressArchived, URL: pageURL, Count: len(result.Images)})

	return result, nil
}

// processImages feeds candidates to the processor until MaxImages succeed
// or candidates run out.
func (p *Pipeline) processImages(ctx context.Context, result *Result, progress ProgressFunc) {
	for _, cand := range result.Candidates {
		if len(result.Images) >= p.Config.MaxImages {
			return
		}
		if ctx.Err() != nil {
			return
		}

		outcome := p.Processor.Process(ctx, cand)
		result.Outcomes = append(result.Outcomes, outcome)

		typ := ProgressImageSkipped
		if outcome.OK() {
			result.Images = append(result.Images, *outcome.Image)
			typ = ProgressImageAccepted
		}
		progress(ProgressEvent{Type: typ, URL: cand.URL, Count: len(result.Images), Outcome: &outcome})
	}
}

func validatePageURL(pageURL string) error {
	u, err := url.Parse(pageURL)
	if err != nil {
		return postpack.Errorf(postpack.EINVALID, "invalid URL %q: %v", pageURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return postpack.Errorf(postpack.EINVALID, "URL %q must use http or https", pageURL)
	}
	if u.Host == "" {
		return postpack.Errorf(postpack.EINVALID, "URL %q has no host", pageURL)
	}
	return nil
}
