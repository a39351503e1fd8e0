// Package dataprocessing loads CSV files into typed tables and computes the
// descriptive views reported for them.
//
// # Loading
//
// LoadCSV and ReadCSV parse a whole file into memory. Bytes that are not
// valid UTF-8 are decoded as ISO-8859-1, and a leading byte order mark is
// dropped. Column types are detected from the data (int, float, bool,
// otherwise text). Cells matching FirstPassNullTokens exactly become null.
//
//	ds, err := dataprocessing.LoadCSV("data.csv")
//	if err != nil {
//	    return err
//	}
//	mask := missingness.Pass(ds)
//
// # Statistics
//
// Summarizer produces the summary, schema and correlation views. Each honours
// the missingness mask: a flagged cell counts as missing and is excluded from
// every statistic.
//
//	s := dataprocessing.NewSummarizer(logger, dataprocessing.DefaultSummarizerConfig())
//	summary := s.Summary(ctx, ds, mask)
//	schema := s.Schema(ctx, ds, mask)
//	corr := s.Correlation(ctx, ds, mask) // nil with fewer than two numeric columns
//
// # Error Handling
//
// Loader errors are *errors.AppError values: NOT_FOUND for a missing file,
// PARSING for malformed CSV, EMPTY_INPUT for a file without data rows.
package dataprocessing
