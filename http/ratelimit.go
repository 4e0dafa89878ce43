package http

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/postpack"
	"golang.org/x/time/rate"
)

var _ postpack.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests per host with one token bucket each.
// A page and its inline images usually share a host, while images served
// from a CDN get their own budget. Hosts are compared case-insensitively
// and without port.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// NewDomainLimiter allows rps requests per second per host with a burst
// of 1. Zero or negative rps never blocks.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   limit,
		burst:   1,
	}
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.bucket(hostKey(domain)).Wait(ctx)
}

func (d *DomainLimiter) bucket(key string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buckets[key]
	if !ok {
		b = rate.NewLimiter(d.limit, d.burst)
		d.buckets[key] = b
	}
	return b
}

// hostKey strips any port and lower-cases the host.
func hostKey(domain string) string {
	if h, _, err := net.SplitHostPort(domain); err == nil {
		domain = h
	}
	return strings.ToLower(domain)
}
