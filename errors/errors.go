package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the application error type carried across layers.
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Webhook authentication errors. Rejection happens at the boundary; an
// authentication failure never starts a pipeline run.
func ErrMissingSignature() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_AUTH_MISSING_SIGNATURE,
		Message:  "Missing signature header",
	}
}

func ErrInvalidSignature() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_INVALID_SIGNATURE,
		Message:  "Invalid signature",
	}
}

// Transcript provider errors
func ErrTranscriptFetchFailed(meetingID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_FETCH_FAILED,
		Message:  "Failed to fetch transcript",
	}.WithDetail("meeting_id", meetingID)
}

// Summarization errors
func ErrSummarizationFailed(meetingID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_SUMMARIZATION_FAILED,
		Message:  "Failed to summarize transcript",
	}.WithDetail("meeting_id", meetingID)
}

func ErrModelResponseInvalid(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_MODEL_RESPONSE_INVALID,
		Message:  "Model response is not the expected JSON shape",
	}
}

func ErrTokenExchangeFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_TOKEN_EXCHANGE_FAILED,
		Message:  "Failed to obtain model access token",
	}
}

// Destination errors. A single destination failure is logged and never
// aborts sibling destination writes.
func ErrDestinationWriteFailed(destination, meetingID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_DESTINATION_WRITE_FAILED,
		Message:  fmt.Sprintf("Destination write failed: %s", destination),
	}.WithDetail("destination", destination).
		WithDetail("meeting_id", meetingID)
}

func ErrDestinationCheckFailed(destination, meetingID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_DESTINATION_CHECK_FAILED,
		Message:  fmt.Sprintf("Destination duplicate check failed: %s", destination),
	}.WithDetail("destination", destination).
		WithDetail("meeting_id", meetingID)
}

func ErrProcessingFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_PROCESSING_FAILED,
		Message:  "Processing failed",
	}
}

// HTTPStatusOK represents a successful HTTP response.
func HTTPStatusOK(message string) AppError {
	return AppError{
		HTTPCode: http.StatusOK,
		Code:     ErrorCode_HTTP_OK,
		Message:  message,
	}
}
