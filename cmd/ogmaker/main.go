package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	ogmaker "github.com/aaronkwhite/open-graph-maker"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := "generate"
	if len(args) > 0 {
		switch args[0] {
		case "generate", "serve", "version", "help":
			cmd, args = args[0], args[1:]
		}
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	switch cmd {
	case "generate":
		return runGenerate(args, stdout, stderr, logger)
	case "serve":
		return runServe(args, stdout, stderr, logger)
	case "version":
		fmt.Fprintf(stdout, "ogmaker %s\n", version)
	case "help":
		printUsage(stdout)
	}
	return 0
}

func runGenerate(args []string, stdout, stderr io.Writer, logger *slog.Logger) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stdout) }
	limit := fs.Int("limit", 0, "Limit the number of images to generate")
	fs.IntVar(limit, "l", 0, "Limit the number of images to generate (shorthand)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		return unexpectedArgs(fs, stdout, stderr)
	}
	n := ogmaker.NoLimit
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "limit" || f.Name == "l" {
			n = *limit
		}
	})

	app := ogmaker.New(ogmaker.ConfigFromEnv(), ogmaker.WithLogger(logger))
	defer app.Close()

	summary, err := app.Generate(n)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Generated %d images out of %d items\n", len(summary.Generated), summary.Attempted)
	return 0
}

func runServe(args []string, stdout, stderr io.Writer, logger *slog.Logger) int {
	cfg := ogmaker.ConfigFromEnv()
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stdout) }
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		return unexpectedArgs(fs, stdout, stderr)
	}

	app := ogmaker.New(cfg, ogmaker.WithLogger(logger))
	defer app.Close()

	if err := app.Serve(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// unexpectedArgs reports leftover positional arguments and returns exit code 2.
func unexpectedArgs(fs *flag.FlagSet, stdout, stderr io.Writer) int {
	fmt.Fprintf(stderr, "Unknown argument: %s\n\n", fs.Arg(0))
	printUsage(stdout)
	return 2
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `ogmaker - Generate Open Graph preview images from a JSON data file

Usage:
  ogmaker [generate] [--limit N]
  ogmaker serve [--addr ADDR]
  ogmaker version
  ogmaker help

Options:
  -l, --limit N   Limit the number of images to generate
  -h, --help      Show this help message

Environment:
  OG_DATA          JSON input file (default data.json)
  OG_TEMPLATE      Background template (default open-graph-maker-template.png)
  OG_FONT_DISPLAY  Title font (default fonts/SofiaSansCondensed-ExtraBoldItalic.ttf)
  OG_FONT_TAGLINE  Tagline font (default fonts/Inter-MediumItalic.otf)
  OG_FONT_BODY     Description font (default fonts/Inter-Regular.otf)
  OG_OUTPUT_DIR    Output directory (default output)
  OG_DATABASE      Manifest database (default data/ogmaker.db)
  OG_ADDR          Preview server address (default :3000)
  OG_SITE_URL      Base URL used in og:image tags (default http://localhost:3000)`)
}
