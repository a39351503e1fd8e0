// Command insights profiles a CSV file: summary statistics, schema,
// missingness (including placeholder tokens such as "??" or "N/A") and
// diagnostic plots. It can also serve the same analysis over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/zttzhu/dataset-insights/internal/app"
	"github.com/zttzhu/dataset-insights/internal/config"
	apperrors "github.com/zttzhu/dataset-insights/internal/errors"
	"github.com/zttzhu/dataset-insights/internal/exporter"
	"github.com/zttzhu/dataset-insights/internal/infrastructure"
	"github.com/zttzhu/dataset-insights/internal/plots"
	"github.com/zttzhu/dataset-insights/internal/services"
	"github.com/zttzhu/dataset-insights/pkg/contracts"
	"github.com/zttzhu/dataset-insights/pkg/contracts/domain"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usage = `dataset-insights: instant orientation for any CSV dataset.

Usage:
  insights analyze CSV_PATH [--outdir DIR] [--config FILE] [--max-examples N] [--xlsx=BOOL]
  insights serve [--addr ADDR] [--config FILE]
  insights version
  insights help
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	switch args[0] {
	case "analyze":
		return runAnalyze(args[1:], stdout, stderr)
	case "serve":
		return runServe(args[1:], stderr)
	case "version", "--version", "-v":
		fmt.Fprintln(stdout, contracts.GetFullVersionString())
		return exitOK
	case "help", "--help", "-h":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n%s", args[0], usage)
		return exitUsage
	}
}

// setup loads configuration and installs the process logger.
func setup(configPath string, stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging, stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func runAnalyze(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outDir := fs.String("outdir", "", "directory to write output files (default from config: reports)")
	configPath := fs.String("config", "", "path to a YAML config file")
	maxExamples := fs.Int("max-examples", -1, "placeholder examples kept per column (default from config: 5)")
	writeXLSX := fs.Bool("xlsx", true, "also write report.xlsx")

	// CSV_PATH may come before or after the flags.
	var csvPath string
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		csvPath, args = args[0], args[1:]
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if csvPath == "" && fs.NArg() > 0 {
		csvPath = fs.Arg(0)
	}
	if csvPath == "" {
		fmt.Fprintf(stderr, "Error: missing argument CSV_PATH\n\n%s", usage)
		return exitUsage
	}

	cfg, logger, err := setup(*configPath, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", apperrors.UserMessage(err))
		return exitError
	}
	defer infrastructure.CloseLogFile()

	opts := services.AnalyzeOptions{
		OutDir:      cfg.Analysis.OutDir,
		MaxExamples: cfg.Analysis.MaxExamples,
		WriteXLSX:   cfg.Analysis.WriteXLSX,
		Source:      services.SourceCLI,
		Plots: plots.Config{
			HistogramBins:       cfg.Analysis.HistogramBins,
			MaxHistogramColumns: cfg.Analysis.MaxHistogramColumns,
			HistogramsPerRow:    plots.DefaultConfig().HistogramsPerRow,
		},
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "outdir":
			opts.OutDir = *outDir
		case "max-examples":
			opts.MaxExamples = *maxExamples
		case "xlsx":
			opts.WriteXLSX = *writeXLSX
		}
	})
	if opts.MaxExamples < 0 || opts.MaxExamples > 100 {
		fmt.Fprintln(stderr, "Error: --max-examples must be between 0 and 100")
		return exitUsage
	}

	providers, err := infrastructure.InitializeOTel(infrastructure.NewOTelConfig(cfg.Telemetry, contracts.Version), logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", apperrors.UserMessage(err))
		return exitError
	}
	defer func() { _ = providers.Shutdown(context.Background()) }()

	metrics, err := infrastructure.NewAnalysisMetrics(providers.Meter)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", apperrors.UserMessage(err))
		return exitError
	}
	service := services.NewAnalysisService(logger, providers.Tracer, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(stdout, "Loading %s ...\n", csvPath)
	result, err := service.AnalyzeFile(ctx, csvPath, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", apperrors.UserMessage(err))
		return exitError
	}

	printResult(stdout, result, opts.OutDir)
	return exitOK
}

// printResult writes the console summary of a finished run.
func printResult(w io.Writer, result *domain.AnalysisResult, outDir string) {
	fmt.Fprintf(w, "  %s rows x %d columns\n", exporter.FormatCount(result.Rows), result.Columns)

	fmt.Fprintln(w, "\nWriting reports ...")
	for _, a := range result.Artifacts {
		if !a.Kind.IsPlot() {
			printArtifact(w, a)
		}
	}

	fmt.Fprintln(w, "\nGenerating plots ...")
	if len(result.Summary.NumericSummary) == 0 {
		fmt.Fprintln(w, "  Warning: no numeric columns found - skipping histogram and heatmap.")
	}
	for _, a := range result.Artifacts {
		if a.Kind.IsPlot() {
			printArtifact(w, a)
		}
	}

	fmt.Fprintf(w, "\nDone. %d/%d columns have missing data (%s total missing values).\n",
		result.ColumnsWithMissing(), result.Columns, exporter.FormatCount(result.TotalMissing()))

	abs, err := filepath.Abs(outDir)
	if err != nil {
		abs = outDir
	}
	fmt.Fprintf(w, "Output written to: %s/\n", abs)
}

func printArtifact(w io.Writer, a domain.Artifact) {
	if a.Skipped {
		fmt.Fprintf(w, "  Skipped: %s (%s)\n", a.File, a.Reason)
		return
	}
	fmt.Fprintf(w, "  %s\n", a.Path)
}

func runServe(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", "", "listen address (default from config: :8080)")
	configPath := fs.String("config", "", "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, logger, err := setup(*configPath, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", apperrors.UserMessage(err))
		return exitError
	}
	defer infrastructure.CloseLogFile()
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	application, err := app.NewApplication(cfg, logger, nil)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", apperrors.UserMessage(err))
		return exitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting server",
		slog.String("addr", cfg.Server.Addr),
		slog.String("version", contracts.GetVersionString()))
	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", apperrors.UserMessage(err))
		return exitError
	}
	logger.Info("server stopped")
	return exitOK
}
