package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/postpack"
	"github.com/fwojciec/postpack/fs"
	"github.com/fwojciec/postpack/pipeline"
)

// PackCmd turns one page into a post archive and a post text file.
type PackCmd struct {
	URL    string
	Outdir string
	Now    func() time.Time
}

// Run executes the pack command. Nothing is written to Outdir unless the
// whole run succeeds.
func (c *PackCmd) Run(deps *Dependencies) error {
	progress := func(e pipeline.ProgressEvent) {
		// Skipped images are logged by the processor decorator.
		if e.Type == pipeline.ProgressCandidates {
			if e.Err != nil {
				deps.Logger.Warn("image scan failed", "url", e.URL, "err", e.Err)
			}
			fmt.Fprintf(deps.Stdout, "Found %d image candidates\n", e.Count)
		}
	}

	result, err := deps.Pipeline.Run(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postpack.ErrorMessage(err))
		return err
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	zipPath := filepath.Join(c.Outdir, fs.ArchiveName(result.Slug, now()))
	textPath := filepath.Join(c.Outdir, result.TextName)

	if err := fs.WriteFile(zipPath, result.Archive.Data); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postpack.ErrorMessage(err))
		return err
	}
	if err := fs.WriteFile(textPath, []byte(result.Post.Render())); err != nil {
		_ = os.Remove(zipPath)
		fmt.Fprintf(deps.Stderr, "error: %s\n", postpack.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Title: %s\n", result.Content.Title)
	fmt.Fprintf(deps.Stdout, "Body: %s\n", strategyLabel(result.Content))
	fmt.Fprintf(deps.Stdout, "Images: %d included, %d skipped\n", len(result.Images), len(result.Outcomes)-len(result.Images))
	fmt.Fprintf(deps.Stdout, "Saved %s\n", textPath)
	fmt.Fprintf(deps.Stdout, "Saved %s\n", zipPath)
	return nil
}

func strategyLabel(content *postpack.ExtractedContent) string {
	if content.Strategy == "" {
		return "placeholder (no strategy produced enough text)"
	}
	return content.Strategy
}
