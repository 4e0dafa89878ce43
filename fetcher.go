package postpack

import "context"

// Fetcher retrieves pages and image bytes over the network.
// Implementations apply a timeout and do not retry.
type Fetcher interface {
	// Fetch returns the markup at url decoded to UTF-8.
	Fetch(ctx context.Context, url string) (html string, err error)

	// FetchBytes returns the raw body at url.
	FetchBytes(ctx context.Context, url string) ([]byte, error)

	// Close releases resources.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
