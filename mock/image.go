package mock

import (
	"context"

	"github.com/fwojciec/postpack"
)

var _ postpack.ImageCollector = (*ImageCollector)(nil)

// ImageCollector is a mock implementation of postpack.ImageCollector.
type ImageCollector struct {
	CollectFn func(html string, baseURL string, limit int) ([]postpack.ImageCandidate, error)
}

func (c *ImageCollector) Collect(html string, baseURL string, limit int) ([]postpack.ImageCandidate, error) {
	return c.CollectFn(html, baseURL, limit)
}

var _ postpack.ImageProcessor = (*ImageProcessor)(nil)

// ImageProcessor is a mock implementation of postpack.ImageProcessor.
type ImageProcessor struct {
	ProcessFn func(ctx context.Context, candidate postpack.ImageCandidate) postpack.ImageOutcome
}

func (p *ImageProcessor) Process(ctx context.Context, candidate postpack.ImageCandidate) postpack.ImageOutcome {
	return p.ProcessFn(ctx, candidate)
}

var _ postpack.ImageStore = (*ImageStore)(nil)

// ImageStore is a mock implementation of postpack.ImageStore.
type ImageStore struct {
	SaveFn func(data []byte) (string, error)
}

func (s *ImageStore) Save(data []byte) (string, error) {
	return s.SaveFn(data)
}
