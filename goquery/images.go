package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/postpack"
)

// sourceAttrs lists image source attributes in order of preference.
// srcset is handled separately.
var sourceAttrs = []string{"src", "data-src", "data-original", "data-lazy"}

// Ensure ImageCollector implements postpack.ImageCollector at compile time.
var _ postpack.ImageCollector = (*ImageCollector)(nil)

// ImageCollector discovers image URLs in social preview tags and img
// elements.
type ImageCollector struct{}

// NewImageCollector creates a new ImageCollector.
func NewImageCollector() *ImageCollector {
	return &ImageCollector{}
}

// Collect returns absolute, deduplicated image candidates. og:image values
// come first, then img elements in document order. Candidates sharing a
// URL once query and fragment are stripped keep only the first occurrence.
func (c *ImageCollector) Collect(rawHTML string, baseURL string, limit int) ([]postpack.ImageCandidate, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, postpack.Errorf(postpack.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, postpack.Errorf(postpack.EINVALID, "failed to parse HTML: %v", err)
	}

	var found []string
	doc.Find(`meta[property="og:image"]`).Each(func(_ int, s *goquery.Selection) {
		if content := strings.TrimSpace(s.AttrOr("content", "")); content != "" {
			found = append(found, content)
		}
	})
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if src := imageSource(s); src != "" {
			found = append(found, src)
		}
	})

	seen := make(map[uint64]struct{})
	var candidates []postpack.ImageCandidate
	for _, raw := range found {
		cand, ok := resolveCandidate(base, raw)
		if !ok {
			continue
		}
		h := xxhash.Sum64String(cand.Key)
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		candidates = append(candidates, cand)
		if limit > 0 && len(candidates) == limit {
			break
		}
	}
	return candidates, nil
}

// imageSource returns the first populated source attribute of an img
// element, falling back to the first URL of its srcset.
func imageSource(s *goquery.Selection) string {
	for _, attr := range sourceAttrs {
		if v := strings.TrimSpace(s.AttrOr(attr, "")); v != "" {
			return v
		}
	}
	srcset := strings.TrimSpace(s.AttrOr("srcset", ""))
	if srcset == "" {
		return ""
	}
	first := strings.Fields(strings.Split(srcset, ",")[0])
	if len(first) == 0 {
		return ""
	}
	return first[0]
}

// resolveCandidate makes raw absolute against base and derives its
// deduplication key.
func resolveCandidate(base *url.URL, raw string) (postpack.ImageCandidate, bool) {
	if isInlineURI(raw) {
		return postpack.ImageCandidate{}, false
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return postpack.ImageCandidate{}, false
	}
	resolved := base.ResolveReference(ref)

	key := *resolved
	key.RawQuery = ""
	key.ForceQuery = false
	key.Fragment = ""
	key.RawFragment = ""

	return postpack.ImageCandidate{
		URL: resolved.String(),
		Key: key.String(),
	}, true
}

// isInlineURI reports whether raw embeds data or script rather than
// pointing at a fetchable image.
func isInlineURI(raw string) bool {
	raw = strings.ToLower(raw)
	return strings.HasPrefix(raw, "data:") || strings.HasPrefix(raw, "javascript:")
}
