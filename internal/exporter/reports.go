package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zttzhu/dataset-insights/pkg/contracts/domain"
)

// Output file names, relative to the report directory.
const (
	SummaryMarkdownFile   = "summary.md"
	SummaryStatisticsFile = "summary_statistics.csv"
	SchemaFile            = "schema.json"
	MissingnessFile       = "missingness.csv"
	CorrelationFile       = "correlation.csv"
	PlaceholderAuditFile  = "placeholder_audit.json"
	WorkbookFile          = "report.xlsx"
)

var summaryStatisticsHeaders = []string{"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// ReportWriter writes the text, CSV and JSON reports of one analysis run into
// a single output directory.
type ReportWriter struct {
	outDir string
	csv    *CSVWriter
	logger *slog.Logger
}

// NewReportWriter creates a report writer for outDir.
func NewReportWriter(outDir string, logger *slog.Logger) *ReportWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportWriter{
		outDir: outDir,
		csv:    NewCSVWriter(outDir),
		logger: logger,
	}
}

// OutDir returns the directory reports are written to.
func (w *ReportWriter) OutDir() string {
	return w.outDir
}

// WriteSummaryMarkdown writes the dataset overview.
func (w *ReportWriter) WriteSummaryMarkdown(summary domain.Summary) (string, error) {
	var b strings.Builder
	b.WriteString("# Dataset Summary\n\n")
	fmt.Fprintf(&b, "**Rows:** %d  \n", summary.Shape.Rows)
	fmt.Fprintf(&b, "**Columns:** %d\n\n", summary.Shape.Columns)
	b.WriteString("## Column Overview\n\n")
	b.WriteString("| Column | Type |\n")
	b.WriteString("|--------|------|\n")
	for _, ct := range summary.DTypes {
		fmt.Fprintf(&b, "| `%s` | %s |\n", ct.Column, ct.DType)
	}

	if len(summary.NumericSummary) > 0 {
		fmt.Fprintf(&b, "\nDetailed numeric statistics are in [%s](%s).\n", SummaryStatisticsFile, SummaryStatisticsFile)
	} else {
		b.WriteString("\n_No numeric columns found._\n")
	}

	return w.writeFile(SummaryMarkdownFile, []byte(b.String()))
}

// WriteSummaryStatistics writes one row of descriptive statistics per numeric
// column. It writes nothing and returns an empty path when there are no
// numeric columns.
func (w *ReportWriter) WriteSummaryStatistics(summary domain.Summary) (string, error) {
	if len(summary.NumericSummary) == 0 {
		return "", nil
	}

	records := make([][]string, 0, len(summary.NumericSummary))
	for _, s := range summary.NumericSummary {
		records = append(records, []string{
			s.Column,
			formatInt(s.Count),
			formatFloat(float64(s.Mean)),
			formatFloat(float64(s.Std)),
			formatFloat(float64(s.Min)),
			formatFloat(float64(s.P25)),
			formatFloat(float64(s.P50)),
			formatFloat(float64(s.P75)),
			formatFloat(float64(s.Max)),
		})
	}

	return w.writeCSV(SummaryStatisticsFile, summaryStatisticsHeaders, records)
}

// WriteSchema writes the column schema as indented JSON.
func (w *ReportWriter) WriteSchema(schema []domain.ColumnSchema) (string, error) {
	if schema == nil {
		schema = []domain.ColumnSchema{}
	}
	data, err := marshalIndent(schema)
	if err != nil {
		return "", fmt.Errorf("encode schema: %w", err)
	}
	return w.writeFile(SchemaFile, data)
}

// WriteMissingness writes the missingness table in the order given.
func (w *ReportWriter) WriteMissingness(rows []domain.ColumnMissingness) (string, error) {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.Column, formatInt(r.MissingCount), formatFloat(r.MissingPct)})
	}
	return w.writeCSV(MissingnessFile, []string{"column", "missing_count", "missing_pct"}, records)
}

// WriteCorrelation writes the correlation matrix with column names as both
// header and first field. A nil matrix writes nothing.
func (w *ReportWriter) WriteCorrelation(matrix *domain.CorrelationMatrix) (string, error) {
	if matrix == nil {
		return "", nil
	}

	headers := append([]string{""}, matrix.Columns...)
	records := make([][]string, len(matrix.Columns))
	for i, name := range matrix.Columns {
		row := make([]string, 0, len(matrix.Columns)+1)
		row = append(row, name)
		for _, v := range matrix.Values[i] {
			row = append(row, formatFloat(float64(v)))
		}
		records[i] = row
	}
	return w.writeCSV(CorrelationFile, headers, records)
}

// WritePlaceholderAudit writes what the placeholder pass flagged, keyed by
// column.
func (w *ReportWriter) WritePlaceholderAudit(audit map[string]domain.PlaceholderAudit) (string, error) {
	if audit == nil {
		audit = map[string]domain.PlaceholderAudit{}
	}
	data, err := marshalIndent(audit)
	if err != nil {
		return "", fmt.Errorf("encode placeholder audit: %w", err)
	}
	return w.writeFile(PlaceholderAuditFile, data)
}

func (w *ReportWriter) writeCSV(name string, headers []string, records [][]string) (string, error) {
	path, err := w.csv.WriteCSV(name, WriteOptions{Headers: headers, Records: records})
	if err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	w.logger.Debug("wrote report", slog.String("file", name), slog.Int("rows", len(records)))
	return path, nil
}

func (w *ReportWriter) writeFile(name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.outDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(w.outDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	w.logger.Debug("wrote report", slog.String("file", name), slog.Int("bytes", len(data)))
	return path, nil
}

// marshalIndent encodes v with two-space indentation and without escaping
// HTML characters.
func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// compactJSON strips the indentation marshalIndent adds.
func compactJSON(data []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return string(data)
	}
	return buf.String()
}
