package dataprocessing

import (
	"context"
	"log/slog"
	"math"

	"github.com/zttzhu/dataset-insights/internal/missingness"
	"github.com/zttzhu/dataset-insights/pkg/contracts/domain"
)

// Summarizer computes the summary, schema and correlation views of a loaded
// dataset. Cells flagged in the mask are treated as missing throughout.
type Summarizer struct {
	logger       *slog.Logger
	sampleValues int
}

// SummarizerConfig holds configuration options for the Summarizer.
type SummarizerConfig struct {
	SampleValues int // Present values listed per column in the schema
}

// NewSummarizer creates a new summarizer with the given configuration.
func NewSummarizer(logger *slog.Logger, config SummarizerConfig) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	if config.SampleValues <= 0 {
		config.SampleValues = 3
	}
	return &Summarizer{
		logger:       logger,
		sampleValues: config.SampleValues,
	}
}

// DefaultSummarizerConfig returns the configuration used by the CLI.
func DefaultSummarizerConfig() SummarizerConfig {
	return SummarizerConfig{SampleValues: 3}
}

// Summary returns the shape, per-column dtypes and descriptive statistics for
// every numeric column.
func (s *Summarizer) Summary(ctx context.Context, ds *Dataset, mask *missingness.Mask) domain.Summary {
	columns := ds.Columns()
	summary := domain.Summary{
		Shape:          domain.Shape{Rows: ds.Len(), Columns: len(columns)},
		DTypes:         make([]domain.ColumnType, len(columns)),
		NumericSummary: []domain.NumericSummary{},
	}

	for i, name := range columns {
		summary.DTypes[i] = domain.ColumnType{Column: name, DType: ds.DType(i)}
	}

	for _, col := range ds.NumericColumns() {
		d := DescribeValues(PresentFloats(ds, mask, col))
		summary.NumericSummary = append(summary.NumericSummary, domain.NumericSummary{
			Column: columns[col],
			Count:  d.Count,
			Mean:   domain.Float(d.Mean),
			Std:    domain.Float(d.Std),
			Min:    domain.Float(d.Min),
			P25:    domain.Float(d.P25),
			P50:    domain.Float(d.P50),
			P75:    domain.Float(d.P75),
			Max:    domain.Float(d.Max),
		})
	}

	s.logger.DebugContext(ctx, "computed summary",
		slog.Int("rows", summary.Shape.Rows),
		slog.Int("numeric_columns", len(summary.NumericSummary)))
	return summary
}

// Schema returns per-column metadata in file order.
func (s *Summarizer) Schema(ctx context.Context, ds *Dataset, mask *missingness.Mask) []domain.ColumnSchema {
	columns := ds.Columns()
	schema := make([]domain.ColumnSchema, 0, len(columns))

	for col, name := range columns {
		entry := domain.ColumnSchema{
			Column:       name,
			DType:        ds.DType(col),
			SampleValues: []any{},
		}
		seen := make(map[any]struct{})
		for row := 0; row < ds.Len(); row++ {
			if isMasked(ds, mask, row, col) {
				entry.MissingCount++
				continue
			}
			v := ds.Value(row, col)
			if v == nil {
				entry.MissingCount++
				continue
			}
			seen[v] = struct{}{}
			if len(entry.SampleValues) < s.sampleValues {
				entry.SampleValues = append(entry.SampleValues, sampleValue(v))
			}
		}
		entry.UniqueCount = len(seen)
		schema = append(schema, entry)
	}

	s.logger.DebugContext(ctx, "computed schema", slog.Int("columns", len(schema)))
	return schema
}

// Correlation returns the Pearson correlation matrix over numeric columns
// using pairwise complete observations. It returns nil when there are fewer
// than two numeric columns.
func (s *Summarizer) Correlation(ctx context.Context, ds *Dataset, mask *missingness.Mask) *domain.CorrelationMatrix {
	numeric := ds.NumericColumns()
	if len(numeric) < 2 {
		s.logger.DebugContext(ctx, "skipping correlation",
			slog.Int("numeric_columns", len(numeric)))
		return nil
	}

	names := ds.Columns()
	values := make([][]float64, len(numeric))
	matrix := &domain.CorrelationMatrix{
		Columns: make([]string, len(numeric)),
		Values:  make([][]domain.Float, len(numeric)),
	}
	for i, col := range numeric {
		matrix.Columns[i] = names[col]
		values[i] = maskedFloats(ds, mask, col)
		matrix.Values[i] = make([]domain.Float, len(numeric))
	}

	for i := range numeric {
		for j := i; j < len(numeric); j++ {
			r := domain.Float(PairwiseCorrelation(values[i], values[j]))
			if i == j && !math.IsNaN(float64(r)) {
				r = 1
			}
			matrix.Values[i][j] = r
			matrix.Values[j][i] = r
		}
	}
	return matrix
}

// sampleValue wraps floats so infinities still encode as JSON.
func sampleValue(v any) any {
	if f, ok := v.(float64); ok {
		return domain.Float(f)
	}
	return v
}
