package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/kavinduUdhara/fbdocs"
	"github.com/kavinduUdhara/fbdocs/fs"
	fbgoquery "github.com/kavinduUdhara/fbdocs/goquery"
	"github.com/kavinduUdhara/fbdocs/htmltomarkdown"
	fbhttp "github.com/kavinduUdhara/fbdocs/http"
	fbhuh "github.com/kavinduUdhara/fbdocs/huh"
	"github.com/kavinduUdhara/fbdocs/readability"
	fbslog "github.com/kavinduUdhara/fbdocs/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("fbdocs"),
		kong.Description("Extract Firebase documentation pages to Markdown with language filtering"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
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

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	if !strings.HasPrefix(cli.URL, "http://") && !strings.HasPrefix(cli.URL, "https://") {
		return fbdocs.Errorf(fbdocs.EINVALID, "URL must start with http:// or https://")
	}
	if len(cli.Languages) > 0 && cli.Interactive {
		return fbdocs.Errorf(fbdocs.EINVALID, "cannot use both --languages and --interactive")
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = fbhttp.DefaultFetchTimeout
	}

	var extractor fbdocs.Extractor
	if cli.Generic {
		extractor = readability.NewExtractor()
	} else {
		extractor = fbgoquery.NewExtractor()
	}

	fetcher := fbslog.NewLoggingFetcher(fbhttp.NewFetcher(fbhttp.WithTimeout(timeout)), logger)
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Fetcher:   fetcher,
		Extractor: fbslog.NewLoggingExtractor(extractor, logger),
		Converter: htmltomarkdown.NewConverter(),
		Writer:    fs.NewWriter(cli.Output),
		Picker:    fbhuh.NewPicker(),
	}

	cmd := &ExtractCmd{
		URL:         cli.URL,
		Languages:   cli.Languages,
		Interactive: cli.Interactive,
		OutputDir:   cli.Output,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Languages   []string      `short:"l" help:"Programming languages to include (e.g. swift,web,kotlin). Aliases like js or ios are accepted."`
	Interactive bool          `short:"i" help:"Select languages interactively after fetching"`
	Output      string        `short:"o" default:"." help:"Output directory for the Markdown file"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Fetch timeout"`
	Generic     bool          `help:"Use generic article extraction instead of the Firebase docs layout"`
	Verbose     bool          `short:"v" help:"Enable info-level logging"`
	URL         string        `arg:"" required:"" help:"Documentation URL to extract"`
}
