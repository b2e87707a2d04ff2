package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeConflict   ErrorType = "CONFLICT"
	ErrorTypeInternal   ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidPeriod     ErrorCode = "INVALID_PERIOD"
	ErrCodeInvalidDateRange  ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeInvalidComparison ErrorCode = "INVALID_COMPARISON"

	ErrCodeUnknownKPI    ErrorCode = "UNKNOWN_KPI"
	ErrCodeBoardNotFound ErrorCode = "BOARD_NOT_FOUND"
	ErrCodeDuplicateKPI  ErrorCode = "DUPLICATE_KPI_ON_BOARD"
	ErrCodeInvalidBoard  ErrorCode = "INVALID_BOARD"

	ErrCodeExportFailed      ErrorCode = "EXPORT_FAILED"
	ErrCodeUnknownExportKind ErrorCode = "UNKNOWN_EXPORT_KIND"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrBoardNotFound = NewNotFoundError("Board not found", ErrCodeBoardNotFound)
	ErrUnknownKPI    = NewNotFoundError("Unknown KPI identifier", ErrCodeUnknownKPI)

	ErrInvalidPeriod     = NewValidationError("invalid period, must be one of week, month, quarter, year, custom", ErrCodeInvalidPeriod)
	ErrInvalidDateRange  = NewValidationError("custom period requires start_date and end_date with start_date before end_date", ErrCodeInvalidDateRange)
	ErrInvalidComparison = NewValidationError("compare_with must be previous or year-ago", ErrCodeInvalidComparison)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
