package mock

import (
	"context"

	"github.com/fwojciec/postpack"
)

var _ postpack.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of postpack.Fetcher.
type Fetcher struct {
	FetchFn      func(ctx context.Context, url string) (string, error)
	FetchBytesFn func(ctx context.Context, url string) ([]byte, error)
	CloseFn      func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	return f.FetchBytesFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}


var _ postpack.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of postpack.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
