package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	apierrors "github.com/zttzhu/dataset-insights/internal/errors"
	"github.com/zttzhu/dataset-insights/internal/services"
	"github.com/zttzhu/dataset-insights/internal/validation"
	api "github.com/zttzhu/dataset-insights/pkg/contracts/api/v1"
)

// multipartMemory is how much of an upload is buffered in memory before the
// rest spills to a temporary file.
const multipartMemory = 8 << 20

// AnalysisHandler handles CSV analysis requests
type AnalysisHandler struct {
	service            AnalysisServiceInterface
	defaultMaxExamples int
	logger             *slog.Logger
}

// NewAnalysisHandler creates a new analysis handler. defaultMaxExamples is
// used when the request does not set max_examples.
func NewAnalysisHandler(service AnalysisServiceInterface, defaultMaxExamples int, logger *slog.Logger) *AnalysisHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisHandler{
		service:            service,
		defaultMaxExamples: defaultMaxExamples,
		logger:             logger.With(slog.String("handler", "analysis")),
	}
}

// Analyze handles POST /api/v1/analyze. The CSV arrives as the multipart
// field "file"; the response is the full analysis result.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, apiErr := h.parseRequest(r)
	if apiErr != nil {
		h.renderError(w, r, apiErr)
		return
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		h.renderError(w, r, uploadError(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(api.MultipartFileField)
	if err != nil {
		h.renderError(w, r, uploadError(err))
		return
	}
	defer file.Close()

	name := validation.UploadName(header.Filename)
	h.logger.InfoContext(ctx, "Analysis requested",
		slog.String("file", name),
		slog.Int64("size", header.Size),
		slog.Int("max_examples", req.MaxExamples))

	result, err := h.service.AnalyzeReader(ctx, name, file, services.AnalyzeOptions{
		MaxExamples: req.MaxExamples,
		Source:      services.SourceHTTP,
	})
	if err != nil {
		h.renderError(w, r, apierrors.FromAppError(err))
		return
	}

	render.JSON(w, r, result)
}

func (h *AnalysisHandler) parseRequest(r *http.Request) (api.AnalyzeRequest, *apierrors.APIError) {
	req := api.AnalyzeRequest{MaxExamples: h.defaultMaxExamples}

	if raw := r.URL.Query().Get("max_examples"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, apierrors.ErrValidation("max_examples", "must be an integer")
		}
		req.MaxExamples = n
	}

	if err := validation.Struct(req); err != nil {
		return req, apierrors.FromAppError(err)
	}
	return req, nil
}

func (h *AnalysisHandler) renderError(w http.ResponseWriter, r *http.Request, apiErr *apierrors.APIError) {
	level := slog.LevelWarn
	if apiErr.StatusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(r.Context(), level, "Analysis request failed",
		slog.Int("status", apiErr.StatusCode),
		slog.String("error_code", apiErr.ErrorCode),
		slog.String("message", apiErr.Message))

	if err := render.Render(w, r, apierrors.NewErrorResponse(apiErr)); err != nil {
		apierrors.WriteError(w, apiErr)
	}
}

// uploadError maps multipart parsing failures to API errors.
func uploadError(err error) *apierrors.APIError {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return apierrors.ErrPayloadTooLarge
	case errors.Is(err, http.ErrMissingFile):
		return apierrors.MissingParameter(api.MultipartFileField)
	default:
		return apierrors.NewWithDetails(http.StatusBadRequest, "INVALID_REQUEST", "Expected a multipart/form-data upload", err.Error())
	}
}
