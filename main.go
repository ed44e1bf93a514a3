package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/badele/readability/internal/analyzer"
	"github.com/badele/readability/internal/config"
	"github.com/badele/readability/internal/exporter"
	vlog "github.com/badele/readability/internal/log"
	"github.com/badele/readability/internal/source"
	"github.com/badele/readability/internal/syllable"
	"github.com/badele/readability/internal/types"
)

const sampleText = "The quick brown fox jumps over the lazy dog. " +
	"This is a simple sentence to demonstrate the algorithm. " +
	"Extraordinary complications arise from miscellaneous circumstances. " +
	"The complexity of this text should be relatively moderate."

type CLI struct {
	Sources []string `arg:"" optional:"" name:"source" help:"Text files or glob patterns (\"docs/**/*.md\"). Reads stdin (pipe) when omitted."`

	JSON   bool `name:"json" short:"j" help:"Display metrics in JSON format"`
	Table  bool `short:"t" help:"Display metrics in table format"`
	Panel  bool `short:"p" help:"Display metrics in a framed panel"`
	Styled bool `short:"s" help:"Display metrics with colours"`
	Width  int  `short:"w" help:"Panel width (default from config, 60)"`

	Encoding           string `short:"e" help:"Source encoding: utf8, cp437, cp850, iso-8859-1"`
	Markdown           bool   `short:"m" help:"Strip Markdown markup before analysis"`
	CorrectedSyllables bool   `name:"corrected-syllables" help:"Do not subtract multi-vowel runs a second time when counting syllables"`
	Sample             bool   `help:"Analyze a built-in sample text"`

	Config string `short:"c" help:"Config file (default: nearest .readability.yml)"`
	Debug  bool   `short:"d" help:"Enable debug logging on stderr"`
}

func main() {
	stdinIsPipe := false
	if stat, err := os.Stdin.Stat(); err == nil {
		stdinIsPipe = (stat.Mode() & os.ModeCharDevice) == 0
	}

	os.Exit(run(os.Args[1:], os.Stdin, stdinIsPipe, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdinIsPipe bool, stdout, stderr io.Writer) int {
	var cli CLI
	exited := false
	parser, err := kong.New(&cli,
		kong.Name("readability"),
		kong.Description("Compute word, sentence and syllable counts and readability indices of English text."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if exited {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := vlog.New(cli.Debug, stderr)
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(cli.Config, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	applyFlags(&cli, cfg)

	if !source.IsSupportedEncoding(cfg.Encoding) {
		fmt.Fprintf(stderr, "Error: unsupported encoding: %s\n", cfg.Encoding)
		return 1
	}

	mode, err := syllable.ParseMode(cfg.Syllables)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	a := analyzer.New(
		analyzer.WithReader(source.NewFileReader(cfg.Encoding, logger)),
		analyzer.WithMarkdown(cfg.Markdown),
		analyzer.WithSyllableMode(mode),
	)

	logger.Debug("settings",
		zap.String("encoding", cfg.Encoding),
		zap.Bool("markdown", cfg.Markdown),
		zap.String("format", cfg.Format),
		zap.Stringer("syllables", mode),
	)

	var results []types.SourceMetrics

	switch {
	case cli.Sample:
		results = append(results, types.SourceMetrics{Source: "sample", Metrics: a.Analyze(sampleText)})

	case len(cli.Sources) > 0 || (!stdinIsPipe && len(cfg.Include) > 0):
		patterns := cli.Sources
		if len(patterns) == 0 {
			patterns = cfg.Include
		}
		results, err = analyzeFiles(context.Background(), a, patterns, logger)
		if err != nil {
			reportReadError(stderr, err)
			return 1
		}

	case stdinIsPipe:
		text, err := source.ReadAll(stdin, "stdin", cfg.Encoding)
		if err != nil {
			reportReadError(stderr, err)
			return 1
		}
		results = append(results, types.SourceMetrics{Source: "stdin", Metrics: a.Analyze(text)})

	default:
		_ = kctx.PrintUsage(false)
		return 1
	}

	opts := exporter.Options{Format: cfg.Format, PanelWidth: cfg.Panel.Width}
	if err := exporter.Export(results, opts, stdout); err != nil {
		fmt.Fprintf(stderr, "Error displaying results: %v\n", err)
		return 1
	}

	return 0
}

func loadConfig(path string, logger *zap.Logger) (*config.Config, error) {
	if path == "" {
		found, err := config.Discover(".")
		if err != nil {
			return nil, err
		}
		if found == "" {
			logger.Debug("no config file found, using defaults")
			return config.Defaults(), nil
		}
		path = found
	}

	logger.Debug("config", zap.String("path", path))
	return config.Load(path)
}

// applyFlags overrides config values with the flags that were set.
func applyFlags(cli *CLI, cfg *config.Config) {
	if cli.Encoding != "" {
		cfg.Encoding = cli.Encoding
	}
	if cli.Markdown {
		cfg.Markdown = true
	}
	if cli.CorrectedSyllables {
		cfg.Syllables = syllable.ModeCorrected.String()
	}
	if cli.Width > 0 {
		cfg.Panel.Width = cli.Width
	}

	switch {
	case cli.JSON:
		cfg.Format = "json"
	case cli.Table:
		cfg.Format = "table"
	case cli.Panel:
		cfg.Format = "panel"
	case cli.Styled:
		cfg.Format = "styled"
	}
}

func analyzeFiles(ctx context.Context, a *analyzer.Analyzer, patterns []string, logger *zap.Logger) ([]types.SourceMetrics, error) {
	paths, err := source.Expand(patterns)
	if err != nil {
		return nil, err
	}

	results := make([]types.SourceMetrics, 0, len(paths))
	for _, path := range paths {
		logger.Debug("analyzing", zap.String("path", path))

		m, err := a.AnalyzeSource(ctx, path)
		if err != nil {
			return nil, err
		}
		results = append(results, types.SourceMetrics{Source: path, Metrics: m})
	}
	return results, nil
}

func reportReadError(stderr io.Writer, err error) {
	var ioErr *source.IOError
	switch {
	case errors.Is(err, source.ErrNotFound):
		fmt.Fprintf(stderr, "Error: %v\n", err)
	case errors.As(err, &ioErr):
		fmt.Fprintf(stderr, "Error reading file: %v\n", ioErr)
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
}
