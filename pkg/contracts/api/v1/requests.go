// Package api contains the request and response contracts of the
// dataset-insights HTTP API. Version v1 is the current stable API version.
package api

import (
	"github.com/zttzhu/dataset-insights/pkg/contracts/domain"
)

// MultipartFileField is the form field carrying the uploaded CSV.
const MultipartFileField = "file"

// AnalyzeRequest holds the query parameters of POST /api/v1/analyze.
type AnalyzeRequest struct {
	MaxExamples int `json:"max_examples" query:"max_examples" validate:"min=0,max=100"`
}

// AnalyzeResponse is the body of a successful analysis.
type AnalyzeResponse = domain.AnalysisResult
