package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"github.com/zttzhu/dataset-insights/internal/dataprocessing"
	"github.com/zttzhu/dataset-insights/internal/exporter"
	"github.com/zttzhu/dataset-insights/internal/infrastructure"
	"github.com/zttzhu/dataset-insights/internal/missingness"
	"github.com/zttzhu/dataset-insights/internal/plots"
	"github.com/zttzhu/dataset-insights/internal/validation"
	"github.com/zttzhu/dataset-insights/pkg/contracts/domain"
)

// Run sources recorded on metrics.
const (
	SourceCLI  = "cli"
	SourceHTTP = "http"
)

// Skip reasons reported for artifacts that are not produced.
const (
	reasonNoNumeric    = "no numeric columns"
	reasonFewerThanTwo = "fewer than 2 numeric columns"
)

// AnalyzeOptions controls a single analysis run.
type AnalyzeOptions struct {
	// OutDir receives the report files and the plots/ directory. Empty means
	// compute only, write nothing.
	OutDir      string
	MaxExamples int
	WriteXLSX   bool
	Plots       plots.Config
	Source      string
}

// AnalysisService runs the load, missingness pass, statistics and artifact
// steps for one CSV at a time. It holds no per-run state and is safe for
// concurrent use.
type AnalysisService struct {
	summarizer *dataprocessing.Summarizer
	validator  *validation.FileValidator
	tracer     trace.Tracer
	metrics    *infrastructure.AnalysisMetrics
	logger     *slog.Logger
}

// NewAnalysisService creates an analysis service. tracer and metrics may be
// nil.
func NewAnalysisService(logger *slog.Logger, tracer trace.Tracer, metrics *infrastructure.AnalysisMetrics) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = tracenoop.NewTracerProvider().Tracer("")
	}
	logger = infrastructure.WithComponent(logger, "analysis")

	return &AnalysisService{
		summarizer: dataprocessing.NewSummarizer(logger, dataprocessing.DefaultSummarizerConfig()),
		validator:  validation.NewFileValidator(logger),
		tracer:     tracer,
		metrics:    metrics,
		logger:     logger,
	}
}

// AnalyzeFile analyzes the CSV at path.
func (s *AnalysisService) AnalyzeFile(ctx context.Context, path string, opts AnalyzeOptions) (*domain.AnalysisResult, error) {
	return s.analyze(ctx, filepath.Base(path), func() (*dataprocessing.Dataset, error) {
		if err := s.validator.ValidateInputFile(path); err != nil {
			return nil, err
		}
		return dataprocessing.LoadCSV(path)
	}, opts)
}

// AnalyzeReader analyzes CSV content read from r. name is reported as the
// result's file name.
func (s *AnalysisService) AnalyzeReader(ctx context.Context, name string, r io.Reader, opts AnalyzeOptions) (*domain.AnalysisResult, error) {
	return s.analyze(ctx, name, func() (*dataprocessing.Dataset, error) {
		return dataprocessing.ReadCSV(r)
	}, opts)
}

func (s *AnalysisService) analyze(ctx context.Context, name string, load func() (*dataprocessing.Dataset, error), opts AnalyzeOptions) (result *domain.AnalysisResult, err error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	start := time.Now()
	runID := uuid.NewString()
	flagged := 0

	ctx, span := s.tracer.Start(ctx, "analyze", trace.WithAttributes(
		attribute.String("run_id", runID),
		attribute.String("file_name", name),
	))
	defer func() {
		if err != nil {
			infrastructure.RecordError(ctx, err)
			s.logger.ErrorContext(ctx, "Analysis failed",
				slog.String("run_id", runID),
				slog.String("file", name),
				slog.String("error", err.Error()))
		}
		s.metrics.RecordRun(ctx, opts.Source, time.Since(start), flagged, err)
		span.End()
	}()

	s.logger.InfoContext(ctx, "Analysis started",
		slog.String("run_id", runID),
		slog.String("file", name))

	ds, err := s.load(ctx, load)
	if err != nil {
		return nil, err
	}

	mask, audit := s.missingnessPass(ctx, ds, opts.MaxExamples)
	flagged = audit.Total()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result = s.statistics(ctx, ds, mask)
	result.RunID = runID
	result.FileName = name
	result.PlaceholderAudit = audit.ToDomain()
	result.GeneratedAt = start.UTC()

	if opts.OutDir != "" {
		if err := s.validator.ValidateOutputDirectory(opts.OutDir); err != nil {
			return nil, err
		}
		if err := s.writeReports(ctx, result, opts); err != nil {
			return nil, err
		}
		if err := s.renderPlots(ctx, ds, mask, result, opts); err != nil {
			return nil, err
		}
	}

	s.logger.InfoContext(ctx, "Analysis complete",
		slog.String("run_id", runID),
		slog.Int("rows", result.Rows),
		slog.Int("columns", result.Columns),
		slog.Int("cells_flagged", flagged),
		slog.Int("total_missing", result.TotalMissing()),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

func (s *AnalysisService) load(ctx context.Context, load func() (*dataprocessing.Dataset, error)) (*dataprocessing.Dataset, error) {
	ctx, span := s.tracer.Start(ctx, "load")
	defer span.End()

	ds, err := load()
	if err != nil {
		infrastructure.RecordError(ctx, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("rows", ds.Len()),
		attribute.Int("columns", ds.NumColumns()))
	s.logger.DebugContext(ctx, "Dataset loaded",
		slog.Int("rows", ds.Len()),
		slog.Int("columns", ds.NumColumns()))
	return ds, nil
}

func (s *AnalysisService) missingnessPass(ctx context.Context, ds *dataprocessing.Dataset, maxExamples int) (*missingness.Mask, missingness.Audit) {
	ctx, span := s.tracer.Start(ctx, "missingness_pass")
	defer span.End()

	mask, audit := missingness.PassWithAudit(ds, maxExamples)

	infrastructure.AddSpanEvent(ctx, "placeholders_flagged",
		attribute.Int("cells", audit.Total()),
		attribute.Int("columns", len(audit)))
	for _, col := range audit.Columns() {
		s.logger.DebugContext(ctx, "Placeholders reclassified as missing",
			slog.String("column", col),
			slog.Int("count", audit[col].Count))
	}
	return mask, audit
}

func (s *AnalysisService) statistics(ctx context.Context, ds *dataprocessing.Dataset, mask *missingness.Mask) *domain.AnalysisResult {
	ctx, span := s.tracer.Start(ctx, "statistics")
	defer span.End()

	return &domain.AnalysisResult{
		Rows:        ds.Len(),
		Columns:     ds.NumColumns(),
		Summary:     s.summarizer.Summary(ctx, ds, mask),
		Schema:      s.summarizer.Schema(ctx, ds, mask),
		Missingness: missingness.Summarize(ds.Columns(), mask),
		Correlation: s.summarizer.Correlation(ctx, ds, mask),
	}
}

// reportStep writes one report file. An empty path from write means the
// report was skipped for reason.
type reportStep struct {
	kind   domain.ArtifactKind
	file   string
	reason string
	write  func() (string, error)
}

func (s *AnalysisService) writeReports(ctx context.Context, result *domain.AnalysisResult, opts AnalyzeOptions) error {
	ctx, span := s.tracer.Start(ctx, "reports")
	defer span.End()

	w := exporter.NewReportWriter(opts.OutDir, s.logger)
	steps := []reportStep{
		{domain.ArtifactSummaryMarkdown, exporter.SummaryMarkdownFile, "", func() (string, error) {
			return w.WriteSummaryMarkdown(result.Summary)
		}},
		{domain.ArtifactSummaryStatistics, exporter.SummaryStatisticsFile, reasonNoNumeric, func() (string, error) {
			return w.WriteSummaryStatistics(result.Summary)
		}},
		{domain.ArtifactSchema, exporter.SchemaFile, "", func() (string, error) {
			return w.WriteSchema(result.Schema)
		}},
		{domain.ArtifactMissingness, exporter.MissingnessFile, "", func() (string, error) {
			return w.WriteMissingness(result.Missingness)
		}},
		{domain.ArtifactCorrelation, exporter.CorrelationFile, reasonFewerThanTwo, func() (string, error) {
			return w.WriteCorrelation(result.Correlation)
		}},
		{domain.ArtifactPlaceholderAudit, exporter.PlaceholderAuditFile, "", func() (string, error) {
			return w.WritePlaceholderAudit(result.PlaceholderAudit)
		}},
	}
	if opts.WriteXLSX {
		steps = append(steps, reportStep{domain.ArtifactWorkbook, exporter.WorkbookFile, "", func() (string, error) {
			return w.WriteWorkbook(result)
		}})
	}

	for _, step := range steps {
		path, err := step.write()
		if err != nil {
			infrastructure.RecordError(ctx, err)
			return err
		}
		result.Artifacts = append(result.Artifacts, artifact(step.kind, step.file, path, step.reason))
	}
	return nil
}

// renderPlots draws the three charts concurrently. Each goroutine only reads
// the dataset, mask and result, and owns one artifact slot.
func (s *AnalysisService) renderPlots(ctx context.Context, ds *dataprocessing.Dataset, mask *missingness.Mask, result *domain.AnalysisResult, opts AnalyzeOptions) error {
	ctx, span := s.tracer.Start(ctx, "plots")
	defer span.End()

	r := plots.NewRenderer(opts.OutDir, opts.Plots)
	slots := make([]domain.Artifact, 3)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var series []plots.Series
		for _, col := range ds.NumericColumns() {
			series = append(series, plots.Series{
				Name:   ds.Columns()[col],
				Values: dataprocessing.PresentFloats(ds, mask, col),
			})
		}
		path, err := r.Histograms(series)
		if err != nil {
			return fmt.Errorf("render histogram: %w", err)
		}
		slots[0] = artifact(domain.ArtifactHistogram, plots.HistogramFile, path, reasonNoNumeric)
		return gctx.Err()
	})
	g.Go(func() error {
		path, err := r.Heatmap(result.Correlation)
		if err != nil {
			return fmt.Errorf("render heatmap: %w", err)
		}
		slots[1] = artifact(domain.ArtifactHeatmap, plots.HeatmapFile, path, reasonFewerThanTwo)
		return gctx.Err()
	})
	g.Go(func() error {
		path, err := r.MissingnessBar(result.Missingness)
		if err != nil {
			return fmt.Errorf("render missingness bar: %w", err)
		}
		slots[2] = artifact(domain.ArtifactMissingnessBar, plots.MissingnessBarFile, path, "")
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		infrastructure.RecordError(ctx, err)
		return err
	}

	result.Artifacts = append(result.Artifacts, slots...)
	return nil
}

// artifact records a written file, or a skip when path is empty.
func artifact(kind domain.ArtifactKind, file, path, reason string) domain.Artifact {
	if path == "" {
		return domain.Artifact{Kind: kind, File: file, Skipped: true, Reason: reason}
	}
	return domain.Artifact{Kind: kind, File: file, Path: path}
}
