// Package exporter writes the reports of an analysis run.
//
// CSVWriter is the low-level CSV writer, with an optional UTF-8 BOM for
// Excel. ReportWriter builds on it to produce every report file inside one
// output directory:
//
//	w := exporter.NewReportWriter("reports", logger)
//	w.WriteSummaryMarkdown(summary)     // summary.md
//	w.WriteSummaryStatistics(summary)   // summary_statistics.csv, skipped without numeric columns
//	w.WriteSchema(schema)               // schema.json
//	w.WriteMissingness(table)           // missingness.csv
//	w.WriteCorrelation(matrix)          // correlation.csv, skipped when matrix is nil
//	w.WritePlaceholderAudit(audit)      // placeholder_audit.json
//	w.WriteWorkbook(result)             // report.xlsx
//
// Floats are written in their shortest form with NaN as an empty cell.
package exporter
