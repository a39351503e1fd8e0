package exporter

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/zttzhu/dataset-insights/pkg/contracts/domain"
)

// Workbook sheet names.
const (
	SheetSummary     = "Summary"
	SheetSchema      = "Schema"
	SheetMissingness = "Missingness"
	SheetPlaceholder = "Placeholders"
)

// WriteWorkbook writes the summary statistics, schema, missingness table and
// placeholder audit of result as sheets of one xlsx workbook.
func (w *ReportWriter) WriteWorkbook(result *domain.AnalysisResult) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, SheetSummary); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeSummarySheet(f, result); err != nil {
		return "", err
	}
	if err := writeSchemaSheet(f, result.Schema); err != nil {
		return "", err
	}
	if err := writeMissingnessSheet(f, result.Missingness); err != nil {
		return "", err
	}
	if err := writePlaceholderSheet(f, result.PlaceholderAudit); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.outDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(w.outDir, WorkbookFile)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

func writeSummarySheet(f *excelize.File, result *domain.AnalysisResult) error {
	rows := [][]interface{}{
		{"File", result.FileName},
		{"Rows", result.Summary.Shape.Rows},
		{"Columns", result.Summary.Shape.Columns},
		{},
		toInterfaces(summaryStatisticsHeaders),
	}
	for _, s := range result.Summary.NumericSummary {
		rows = append(rows, []interface{}{
			s.Column, s.Count,
			cellFloat(s.Mean), cellFloat(s.Std), cellFloat(s.Min),
			cellFloat(s.P25), cellFloat(s.P50), cellFloat(s.P75), cellFloat(s.Max),
		})
	}
	return setRows(f, SheetSummary, rows)
}

func writeSchemaSheet(f *excelize.File, schema []domain.ColumnSchema) error {
	if _, err := f.NewSheet(SheetSchema); err != nil {
		return fmt.Errorf("create sheet %s: %w", SheetSchema, err)
	}
	rows := [][]interface{}{{"column", "dtype", "unique_count", "missing_count", "sample_values"}}
	for _, c := range schema {
		samples, err := marshalIndent(c.SampleValues)
		if err != nil {
			return fmt.Errorf("encode sample values for %s: %w", c.Column, err)
		}
		rows = append(rows, []interface{}{c.Column, c.DType, c.UniqueCount, c.MissingCount, compactJSON(samples)})
	}
	return setRows(f, SheetSchema, rows)
}

func writeMissingnessSheet(f *excelize.File, missing []domain.ColumnMissingness) error {
	if _, err := f.NewSheet(SheetMissingness); err != nil {
		return fmt.Errorf("create sheet %s: %w", SheetMissingness, err)
	}
	rows := [][]interface{}{{"column", "missing_count", "missing_pct"}}
	for _, m := range missing {
		rows = append(rows, []interface{}{m.Column, m.MissingCount, m.MissingPct})
	}
	return setRows(f, SheetMissingness, rows)
}

func writePlaceholderSheet(f *excelize.File, audit map[string]domain.PlaceholderAudit) error {
	if _, err := f.NewSheet(SheetPlaceholder); err != nil {
		return fmt.Errorf("create sheet %s: %w", SheetPlaceholder, err)
	}
	rows := [][]interface{}{{"column", "count", "examples"}}
	for _, name := range sortedKeys(audit) {
		entry := audit[name]
		row := []interface{}{name, entry.Count}
		for _, ex := range entry.Examples {
			row = append(row, ex)
		}
		rows = append(rows, row)
	}
	return setRows(f, SheetPlaceholder, rows)
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// cellFloat leaves NaN and infinite statistics as blank cells.
func cellFloat(v domain.Float) interface{} {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
