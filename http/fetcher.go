// Package http provides an HTTP-based implementation of postpack.Fetcher
// for static pages and the images they reference.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/postpack"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// MaxBodySize caps how much of a response body is read.
const MaxBodySize = 20 << 20

// Ensure Fetcher implements postpack.Fetcher at compile time.
var _ postpack.Fetcher = (*Fetcher)(nil)

// Fetcher performs single GET requests. It does not retry and does not
// execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   postpack.DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit limits requests to rps per host. Zero or negative
// disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = NewDomainLimiter(rps)
		}
	}
}

// WithLimiter sets the limiter consulted before each request.
func WithLimiter(l postpack.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: postpack.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at rawURL and decodes it to UTF-8 using the
// declared or sniffed character set.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	body, contentType, err := f.get(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return decode(body, contentType)
}

// FetchBytes retrieves the raw body at rawURL.
func (f *Fetcher) FetchBytes(ctx context.Context, rawURL string) ([]byte, error) {
	body, _, err := f.get(ctx, rawURL)
	return body, err
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, "", postpack.Errorf(postpack.EFETCH, "invalid URL %q: %v", rawURL, err)
	}
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return nil, "", postpack.Errorf(postpack.EFETCH, "wait for %s: %v", u.Host, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", postpack.Errorf(postpack.EFETCH, "build request for %s: %v", rawURL, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", postpack.Errorf(postpack.EFETCH, "%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", postpack.Errorf(postpack.EFETCH, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, "", postpack.Errorf(postpack.EFETCH, "read %s: %v", rawURL, err)
	}

	return body, resp.Header.Get("Content-Type"), nil
}

// decode converts body to UTF-8. A declared charset or BOM wins; otherwise
// valid UTF-8 is kept as is before falling back to the sniffed encoding.
func decode(body []byte, contentType string) (string, error) {
	enc, name, certain := charset.DetermineEncoding(body, contentType)
	if name == "utf-8" || (!certain && utf8.Valid(body)) {
		return strings.TrimPrefix(string(body), "\uFEFF"), nil
	}
	out, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", postpack.Errorf(postpack.EFETCH, "decode %s: %v", name, err)
	}
	return string(out), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
