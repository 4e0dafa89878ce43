package main

import (
	"context"
	"io"
	"log/slog"
	"net/url"

	"github.com/fwojciec/postpack"
	"github.com/fwojciec/postpack/fs"
	"github.com/fwojciec/postpack/goquery"
	"github.com/fwojciec/postpack/hangul"
	pphttp "github.com/fwojciec/postpack/http"
	ppimage "github.com/fwojciec/postpack/image"
	"github.com/fwojciec/postpack/pipeline"
	"github.com/fwojciec/postpack/readability"
	ppslog "github.com/fwojciec/postpack/slog"
	"github.com/fwojciec/postpack/trafilatura"
	"github.com/fwojciec/postpack/zip"
	"github.com/google/uuid"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher    postpack.Fetcher
	Images     *fs.ImageStore
	KeepImages bool
	Pipeline   *pipeline.Pipeline
}

// NewDependencies wires the services for one run.
func NewDependencies(ctx context.Context, cli *CLI, cfg postpack.Config, stdout, stderr io.Writer) (*Dependencies, error) {
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	images, err := fs.NewImageStore(cli.Outdir)
	if err != nil {
		return nil, err
	}

	var fetcher postpack.Fetcher = pphttp.NewFetcher(
		pphttp.WithTimeout(cfg.FetchTimeout),
		pphttp.WithUserAgent(cfg.UserAgent),
		pphttp.WithRateLimit(cli.Rate),
	)
	fetcher = ppslog.NewLoggingFetcher(fetcher, logger)

	// A malformed URL is rejected by the pipeline; readability only needs
	// it to resolve relative links.
	pageURL, _ := url.Parse(cli.URL)

	content := &pipeline.ContentExtractor{
		Strategies: ppslog.WrapTextExtractors([]postpack.TextExtractor{
			trafilatura.NewExtractor(),
			readability.NewExtractor(pageURL),
			goquery.NewStructuralExtractor(),
		}, logger),
		Metadata:     goquery.NewMetadataExtractor(),
		SummaryWidth: cfg.SummaryWidth,
	}

	processor := ppimage.NewProcessor(fetcher, images, cfg)

	return &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		Logger:     logger,
		Fetcher:    fetcher,
		Images:     images,
		KeepImages: cli.KeepImages,
		Pipeline: &pipeline.Pipeline{
			Fetcher:   fetcher,
			Content:   content,
			Images:    goquery.NewImageCollector(),
			Processor: ppslog.NewLoggingImageProcessor(processor, logger),
			Keywords:  hangul.NewExtractor(cfg.Stopwords, cfg.KeywordLimit),
			Archiver:  ppslog.NewLoggingArchiver(zip.NewArchiver(), logger),
			Config:    cfg,
		},
	}, nil
}

// Close releases the fetcher and removes processed images unless they
// were asked to be kept.
func (d *Dependencies) Close() error {
	err := d.Fetcher.Close()
	if !d.KeepImages {
		if rerr := d.Images.Remove(); rerr != nil && err == nil {
			err = rerr
		}
	} else {
		d.Logger.Info("images kept", "dir", d.Images.Dir())
	}
	return err
}
