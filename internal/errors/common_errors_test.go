package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{name: "parsing error type", errType: ErrTypeParsing, expected: "PARSING"},
		{name: "storage error type", errType: ErrTypeStorage, expected: "STORAGE"},
		{name: "validation error type", errType: ErrTypeValidation, expected: "VALIDATION"},
		{name: "not found error type", errType: ErrTypeNotFound, expected: "NOT_FOUND"},
		{name: "config error type", errType: ErrTypeConfig, expected: "CONFIG"},
		{name: "empty input error type", errType: ErrTypeEmptyInput, expected: "EMPTY_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
		wantUser    string
	}{
		{
			name:        "error without cause",
			appError:    &AppError{Type: ErrTypeEmptyInput, Message: "CSV is empty or has no data rows."},
			wantMessage: "[EMPTY_INPUT] CSV is empty or has no data rows.",
			wantUser:    "CSV is empty or has no data rows.",
		},
		{
			name:        "error with cause",
			appError:    &AppError{Type: ErrTypeParsing, Message: "Failed to parse CSV", Cause: errors.New("wrong number of fields")},
			wantMessage: "[PARSING] Failed to parse CSV: wrong number of fields",
			wantUser:    "Failed to parse CSV: wrong number of fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
			assert.Equal(t, tt.wantUser, tt.appError.UserMessage())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("write report", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrTypeNotFound, Message: "missing"}

	got := err.WithContext("path", "data.csv").WithContext("attempt", 1)

	require.Same(t, err, got)
	assert.Equal(t, "data.csv", err.Context["path"])
	assert.Equal(t, 1, err.Context["attempt"])
}

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name      string
		err       *AppError
		wantType  ErrorType
		wantMsg   string
		wantCause error
	}{
		{name: "parsing", err: NewParsingError("bad csv", cause), wantType: ErrTypeParsing, wantMsg: "bad csv", wantCause: cause},
		{name: "storage", err: NewStorageError("write failed", cause), wantType: ErrTypeStorage, wantMsg: "write failed", wantCause: cause},
		{name: "validation", err: NewAppValidationError("max_examples must be >= 0"), wantType: ErrTypeValidation, wantMsg: "max_examples must be >= 0"},
		{name: "not found", err: NewNotFoundError("file data.csv"), wantType: ErrTypeNotFound, wantMsg: "file data.csv not found"},
		{name: "config", err: NewConfigError("invalid config", cause), wantType: ErrTypeConfig, wantMsg: "invalid config", wantCause: cause},
		{name: "empty input", err: NewEmptyInputError("no rows"), wantType: ErrTypeEmptyInput, wantMsg: "no rows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantMsg, tt.err.Message)
			assert.Equal(t, tt.wantCause, tt.err.Cause)
			assert.NotNil(t, tt.err.Context)
		})
	}
}

func TestIsType(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", NewEmptyInputError("no rows"))

	assert.True(t, IsType(wrapped, ErrTypeEmptyInput))
	assert.False(t, IsType(wrapped, ErrTypeParsing))
	assert.False(t, IsType(errors.New("plain"), ErrTypeEmptyInput))
	assert.False(t, IsType(nil, ErrTypeEmptyInput))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "File not found: x.csv", UserMessage(fmt.Errorf("run: %w", NewAppError(ErrTypeNotFound, "File not found: x.csv", nil))))
	assert.Equal(t, "plain failure", UserMessage(errors.New("plain failure")))
}
