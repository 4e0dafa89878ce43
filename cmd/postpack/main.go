package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/postpack"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Now stamps archive names. Set before calling Run().
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Now: time.Now,
	}
}

// Run executes the CLI with the given arguments. Failures are reported on
// stderr as "error: <message>" and returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("postpack"),
		kong.Description("Turn a web page into a blog post draft packaged with its images"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(LoadYAMLConfig),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	cfg := cli.PostConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", postpack.ErrorMessage(err))
		return err
	}

	deps, err := NewDependencies(ctx, cli, cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", postpack.ErrorMessage(err))
		return err
	}
	defer deps.Close()

	cmd := &PackCmd{
		URL:    cli.URL,
		Outdir: cli.Outdir,
		Now:    m.Now,
	}
	return cmd.Run(deps)
}
