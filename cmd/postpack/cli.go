package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/postpack"
	"gopkg.in/yaml.v3"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL            string          `arg:"" help:"Page URL to turn into a post"`
	MaxImages      int             `name:"max-images" short:"n" default:"8" help:"Maximum images to include (0 skips images)"`
	Width          int             `short:"w" default:"1280" help:"Image width in pixels: 960, 1200, 1280 or 1440"`
	Interval       int             `short:"i" default:"3" help:"Insert an image after every N paragraphs"`
	Hashtags       string          `default:"comma" enum:"comma,space" help:"Hashtag separator (comma or space)"`
	Outdir         string          `short:"o" default:"./output" help:"Directory for the archive and post text"`
	Timeout        time.Duration   `short:"t" default:"15s" help:"Timeout per request"`
	Rate           float64         `default:"0" help:"Requests per second per host (0 disables limiting)"`
	KeepImages     bool            `name:"keep-images" help:"Keep processed images in the output directory"`
	KeepDuplicates bool            `name:"keep-duplicates" help:"Keep byte-identical images served under different URLs"`
	Verbose        bool            `short:"v" help:"Log each step to stderr"`
	Config         kong.ConfigFlag `short:"c" help:"YAML file with flag defaults"`
}

// PostConfig maps the parsed flags onto a postpack.Config.
func (c *CLI) PostConfig() postpack.Config {
	cfg := postpack.DefaultConfig()
	cfg.MaxImages = c.MaxImages
	cfg.TargetWidth = c.Width
	cfg.ParagraphInterval = c.Interval
	cfg.HashtagSeparator = postpack.HashtagSeparator(c.Hashtags)
	cfg.SkipDuplicateImages = !c.KeepDuplicates
	if c.Timeout > 0 {
		cfg.FetchTimeout = c.Timeout
	}
	return cfg
}

// LoadYAMLConfig reads flag defaults from YAML. Keys are flag names with
// either hyphens or underscores; explicit flags still win.
func LoadYAMLConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return kong.ResolverFunc(func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		keys := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, key := range keys {
			if v, ok := values[key]; ok && v != nil {
				return fmt.Sprint(v), nil
			}
		}
		return nil, nil
	}), nil
}
