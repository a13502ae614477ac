// Package errors provides unified error handling for the fusion engine.
// It implements structured error types with error codes, HTTP status mapping,
// and retryable detection following RFC 7807 and Google AIP-193.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Fusion Error Constructors ---

// InvalidTurn creates a new AppError for a diarization turn with non-positive duration.
func InvalidTurn(index int, start, end float64) *AppError {
	return &AppError{
		Code: ErrCodeInvalidTurn, Message: fmt.Sprintf("Diarization turn %d has non-positive duration [%.3f, %.3f).", index, start, end),
		HTTPStatus: http.StatusUnprocessableEntity, Retryable: false,
		Details: map[string]any{"turn": index, "start": start, "end": end},
	}
}

// InvalidSegment creates a new AppError for a transcript segment with non-positive duration.
func InvalidSegment(index int, start, end float64) *AppError {
	return &AppError{
		Code: ErrCodeInvalidSegment, Message: fmt.Sprintf("Transcript segment %d has non-positive duration [%.3f, %.3f).", index, start, end),
		HTTPStatus: http.StatusUnprocessableEntity, Retryable: false,
		Details: map[string]any{"segment": index, "start": start, "end": end},
	}
}

// UnknownSpeaker creates a new AppError for a profile assignment to a speaker
// index absent from the transcript.
func UnknownSpeaker(speakerIndex int) *AppError {
	return &AppError{
		Code: ErrCodeUnknownSpeaker, Message: fmt.Sprintf("Speaker %d does not appear in this transcript.", speakerIndex),
		HTTPStatus: http.StatusNotFound, Retryable: false,
		Details: map[string]any{"speaker_index": speakerIndex},
	}
}

// TranscriptionFailed creates a new AppError for a failed transcription call.
func TranscriptionFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeTranscriptionFailed, Message: "Transcription failed for this recording.",
		HTTPStatus: http.StatusBadGateway, Retryable: false, Cause: cause,
	}
}

// DiarizationUnavailable creates a new AppError signalling that no diarization
// backend can serve requests. Callers handle this by substituting the
// single-speaker fallback, not by failing the recording.
func DiarizationUnavailable(reason string) *AppError {
	return &AppError{
		Code: ErrCodeDiarizationUnavailable, Message: "Speaker diarization is unavailable.",
		HTTPStatus: http.StatusServiceUnavailable, Retryable: true,
		Details: map[string]any{"reason": reason},
	}
}

// DiarizationFailed creates a new AppError for a diarization failure on a
// specific input. This is fatal to the recording and must never be silently
// downgraded to the fallback path.
func DiarizationFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeDiarizationFailed, Message: "Speaker diarization failed for this recording.",
		HTTPStatus: http.StatusBadGateway, Retryable: false, Cause: cause,
	}
}

// --- Generic Constructors ---

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"field": field},
	}
}

// InvalidFormat creates a new AppError for an invalid field format.
func InvalidFormat(field, expectedFormat string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidFormat, Message: fmt.Sprintf("Invalid format for %s. Expected: %s", field, expectedFormat),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"field": field, "expected_format": expectedFormat},
	}
}

// ProviderNotRegistered creates a new AppError for a backend name that has
// no registered factory.
func ProviderNotRegistered(name string, registered []string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("No backend named %q is registered.", name),
		HTTPStatus: http.StatusNotFound, Retryable: false,
		Details: map[string]any{"provider": name, "registered": registered},
	}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound, Retryable: false, Details: details,
	}
}

// ServiceUnavailable creates a new AppError for a service that is temporarily unavailable.
func ServiceUnavailable(service string) *AppError {
	return &AppError{
		Code: ErrCodeServiceUnavailable, Message: fmt.Sprintf("The %s is temporarily unavailable. Please try again.", service),
		HTTPStatus: http.StatusServiceUnavailable, Retryable: true,
		Details: map[string]any{"service": service},
	}
}

// Timeout creates a new AppError for a request that timed out.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: "The request took too long. Please try again.",
		HTTPStatus: http.StatusGatewayTimeout, Retryable: true,
		Details: map[string]any{"operation": operation},
	}
}

// Internal creates a new AppError for an internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}

// ExternalServiceError creates a new AppError for an error from an external service.
func ExternalServiceError(service string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeExternalService, Message: fmt.Sprintf("The %s service encountered an error.", service),
		HTTPStatus: http.StatusBadGateway, Retryable: true,
		Details: map[string]any{"service": service}, Cause: cause,
	}
}
