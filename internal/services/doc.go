// Package services implements the business logic layer of dataset-insights.
// It sits between the entry points (the CLI and the HTTP handlers) and the
// processing packages, so both surfaces run exactly the same analysis.
//
// # Analysis pipeline
//
// AnalysisService runs one CSV through these steps, each under its own span:
//
//	load              dataprocessing.LoadCSV / ReadCSV
//	missingness_pass  missingness.PassWithAudit
//	statistics        dataprocessing.Summarizer, missingness.Summarize
//	reports           exporter.ReportWriter
//	plots             plots.Renderer, three charts rendered concurrently
//
// The reports and plots steps run only when AnalyzeOptions.OutDir is set.
// Artifacts that cannot be produced, such as a heatmap for a dataset with
// one numeric column, are recorded as skipped with a reason.
//
// # Errors
//
// Failures are returned as *errors.AppError values from the layer that
// detected them. The service logs and counts the failure, then returns it
// unchanged so callers can map it to an exit code or HTTP status.
package services
