package http

import (
	"context"
	"io"

	"github.com/zttzhu/dataset-insights/internal/services"
	"github.com/zttzhu/dataset-insights/pkg/contracts/domain"
)

// AnalysisServiceInterface defines the analysis operations the handlers need
type AnalysisServiceInterface interface {
	AnalyzeReader(ctx context.Context, name string, r io.Reader, opts services.AnalyzeOptions) (*domain.AnalysisResult, error)
}
