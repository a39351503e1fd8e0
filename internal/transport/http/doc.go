// Package http implements the HTTP handlers of the dataset-insights API.
// Handlers only deal with HTTP concerns: they parse the request, call the
// service layer and render the result or an errors.APIError as JSON with
// go-chi/render.
//
// # Endpoints
//
//	POST /api/v1/analyze  multipart field "file", optional ?max_examples=N
//	GET  /api/health      liveness and version
//	GET  /api/version     build information
//
// Service errors are *errors.AppError values and are mapped with
// errors.FromAppError, so an empty upload answers 422 EMPTY_INPUT and an
// unparsable one 400 PARSING_FAILED.
package http
