// Package image validates and normalizes downloaded images: it rejects
// small images, resizes to the target width with golang.org/x/image/draw,
// adds a white border and re-encodes as JPEG.
package image

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"

	// Register decoders for the formats pages commonly serve.
	_ "image/gif"
	_ "image/png"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/postpack"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Ensure Processor implements postpack.ImageProcessor at compile time.
var _ postpack.ImageProcessor = (*Processor)(nil)

// Processor turns one candidate URL into a ProcessedImage. A Processor is
// scoped to one run: it remembers the digests of accepted sources so the
// same picture served under two URLs is kept once, unless
// Config.SkipDuplicateImages is off.
type Processor struct {
	fetcher postpack.Fetcher
	store   postpack.ImageStore
	config  postpack.Config

	seen map[uint64]struct{}
}

// NewProcessor creates a Processor that downloads through fetcher and
// persists through store.
func NewProcessor(fetcher postpack.Fetcher, store postpack.ImageStore, config postpack.Config) *Processor {
	return &Processor{
		fetcher: fetcher,
		store:   store,
		config:  config,
		seen:    make(map[uint64]struct{}),
	}
}

// Process fetches, validates, transforms and stores one candidate. Every
// failure is returned as a skip outcome.
func (p *Processor) Process(ctx context.Context, c postpack.ImageCandidate) postpack.ImageOutcome {
	data, err := p.fetcher.FetchBytes(ctx, c.URL)
	if err != nil {
		return postpack.Skipped(c, postpack.SkipFetch, err)
	}

	digest := xxhash.Sum64(data)
	if _, dup := p.seen[digest]; dup && p.config.SkipDuplicateImages {
		return postpack.Skipped(c, postpack.SkipDuplicate, postpack.Errorf(postpack.EIMAGE, "same image already accepted"))
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return postpack.Skipped(c, postpack.SkipDecode, postpack.Errorf(postpack.EIMAGE, "decode: %v", err))
	}

	b := src.Bounds()
	if b.Dx() < p.config.MinImageWidth || b.Dy() < p.config.MinImageHeight {
		return postpack.Skipped(c, postpack.SkipTooSmall, postpack.Errorf(postpack.EIMAGE,
			"%s image %dx%d below minimum %dx%d", format, b.Dx(), b.Dy(), p.config.MinImageWidth, p.config.MinImageHeight))
	}

	out := Frame(Resize(src, p.config.TargetWidth), p.config.BorderWidth)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: p.config.JPEGQuality}); err != nil {
		return postpack.Skipped(c, postpack.SkipEncode, postpack.Errorf(postpack.EIMAGE, "encode: %v", err))
	}

	path, err := p.store.Save(buf.Bytes())
	if err != nil {
		return postpack.Skipped(c, postpack.SkipStore, err)
	}
	p.seen[digest] = struct{}{}

	ob := out.Bounds()
	return postpack.ImageOutcome{
		Candidate: c,
		Image: &postpack.ProcessedImage{
			Path:      path,
			Width:     ob.Dx(),
			Height:    ob.Dy(),
			SourceURL: c.URL,
			Digest:    digest,
		},
	}
}

// Resize scales src to width, preserving the aspect ratio. The height is
// truncated from the scaled value. src is returned unchanged when it
// already has the target width.
func Resize(src image.Image, width int) image.Image {
	b := src.Bounds()
	if width <= 0 || b.Dx() == width {
		return src
	}
	scale := float64(width) / float64(b.Dx())
	height := int(float64(b.Dy()) * scale)
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// Frame composites src onto white and surrounds it with a border of the
// given width on all four sides.
func Frame(src image.Image, border int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*border, b.Dy()+2*border))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	inner := image.Rect(border, border, border+b.Dx(), border+b.Dy())
	draw.Draw(dst, inner, src, b.Min, draw.Over)
	return dst
}
