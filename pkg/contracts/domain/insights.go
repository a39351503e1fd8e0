package domain

import (
	"encoding/json"
	"math"
	"time"
)

// Float is a float64 that encodes NaN and infinities as JSON null.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler. null decodes to NaN.
func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Float(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// Shape is the size of a dataset.
type Shape struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// ColumnType pairs a column with its inferred dtype.
type ColumnType struct {
	Column string `json:"column"`
	DType  string `json:"dtype"`
}

// NumericSummary holds descriptive statistics for one numeric column,
// computed over present values only.
type NumericSummary struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
	Mean   Float  `json:"mean"`
	Std    Float  `json:"std"`
	Min    Float  `json:"min"`
	P25    Float  `json:"25%"`
	P50    Float  `json:"50%"`
	P75    Float  `json:"75%"`
	Max    Float  `json:"max"`
}

// Summary is the dataset overview behind summary.md and
// summary_statistics.csv.
type Summary struct {
	Shape          Shape            `json:"shape"`
	DTypes         []ColumnType     `json:"dtypes"`
	NumericSummary []NumericSummary `json:"numeric_summary"`
}

// ColumnSchema is one entry of schema.json.
type ColumnSchema struct {
	Column       string `json:"column"`
	DType        string `json:"dtype"`
	UniqueCount  int    `json:"unique_count"`
	MissingCount int    `json:"missing_count"`
	SampleValues []any  `json:"sample_values"`
}

// ColumnMissingness is one row of the missingness audit table.
type ColumnMissingness struct {
	Column       string  `json:"column"`
	MissingCount int     `json:"missing_count"`
	MissingPct   float64 `json:"missing_pct"`
}

// PlaceholderAudit lists what the placeholder pass flagged in one column.
type PlaceholderAudit struct {
	Count    int      `json:"count"`
	Examples []string `json:"examples"`
}

// CorrelationMatrix is a square Pearson correlation matrix over numeric
// columns. Values[i][j] is the correlation of Columns[i] with Columns[j].
type CorrelationMatrix struct {
	Columns []string  `json:"columns"`
	Values  [][]Float `json:"values"`
}

// ArtifactKind names an output file produced by an analysis run.
type ArtifactKind string

const (
	ArtifactSummaryMarkdown   ArtifactKind = "summary_md"
	ArtifactSummaryStatistics ArtifactKind = "summary_statistics_csv"
	ArtifactSchema            ArtifactKind = "schema_json"
	ArtifactMissingness       ArtifactKind = "missingness_csv"
	ArtifactCorrelation       ArtifactKind = "correlation_csv"
	ArtifactPlaceholderAudit  ArtifactKind = "placeholder_audit_json"
	ArtifactWorkbook          ArtifactKind = "report_xlsx"
	ArtifactHistogram         ArtifactKind = "distribution_histogram_png"
	ArtifactHeatmap           ArtifactKind = "correlation_heatmap_png"
	ArtifactMissingnessBar    ArtifactKind = "missingness_bar_png"
)

// IsPlot reports whether the artifact is a rendered chart.
func (k ArtifactKind) IsPlot() bool {
	switch k {
	case ArtifactHistogram, ArtifactHeatmap, ArtifactMissingnessBar:
		return true
	}
	return false
}

// Artifact records one file written, or deliberately skipped, by a run.
// File is the base name; Path is set only when the file was written.
type Artifact struct {
	Kind    ArtifactKind `json:"kind"`
	File    string       `json:"file"`
	Path    string       `json:"path,omitempty"`
	Skipped bool         `json:"skipped,omitempty"`
	Reason  string       `json:"reason,omitempty"`
}

// AnalysisResult is everything one analysis run computed.
type AnalysisResult struct {
	RunID            string                      `json:"run_id"`
	FileName         string                      `json:"file_name"`
	Rows             int                         `json:"rows"`
	Columns          int                         `json:"columns"`
	Summary          Summary                     `json:"summary"`
	Schema           []ColumnSchema              `json:"schema"`
	Missingness      []ColumnMissingness         `json:"missingness"`
	PlaceholderAudit map[string]PlaceholderAudit `json:"placeholder_audit"`
	Correlation      *CorrelationMatrix          `json:"correlation,omitempty"`
	Artifacts        []Artifact                  `json:"artifacts,omitempty"`
	GeneratedAt      time.Time                   `json:"generated_at"`
}

// ColumnsWithMissing returns how many columns have at least one missing cell.
func (r *AnalysisResult) ColumnsWithMissing() int {
	n := 0
	for _, m := range r.Missingness {
		if m.MissingCount > 0 {
			n++
		}
	}
	return n
}

// TotalMissing returns the number of missing cells across all columns.
func (r *AnalysisResult) TotalMissing() int {
	n := 0
	for _, m := range r.Missingness {
		n += m.MissingCount
	}
	return n
}
