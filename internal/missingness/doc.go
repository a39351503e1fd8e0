// Package missingness decides which cells of a loaded dataset should be treated
// as missing.
//
// Loading already marks cells that exactly match a known null token (empty
// string, "NA", "??" and so on). This package runs the second pass: every cell
// that is still present and holds text is reduced to a canonical form and
// compared against a fixed placeholder vocabulary. The result is a Mask, one
// boolean per cell, that downstream statistics, reports and plots use to skip
// absent values.
//
// Canonicalization trims whitespace, lowercases, and strips the wrapper
// punctuation characters ? ! . * - _ ~ # from both edges until none remain:
//
//	Normalize("  ??Missing  ")  // "missing"
//	Normalize("---n/a---")      // "n/a"
//	Normalize("lost_and_found") // "lost_and_found"
//
// A canonical form is a placeholder when it is empty (the cell was made only of
// wrapper punctuation) or equals a vocabulary entry exactly. Substrings never
// match, so free text such as "customer_missing_reason" stays present.
//
// The pass never mutates the table and never fails: values that are not
// strings are simply left as present.
package missingness
