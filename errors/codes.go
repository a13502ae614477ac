package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Fusion input errors (fatal to the recording, never retryable)
const (
	// ErrCodeInvalidTurn indicates a diarization turn with non-positive duration.
	ErrCodeInvalidTurn ErrorCode = "INVALID_TURN"
	// ErrCodeInvalidSegment indicates a transcript segment with non-positive duration.
	ErrCodeInvalidSegment ErrorCode = "INVALID_SEGMENT"
)

// Collaborator errors
const (
	// ErrCodeTranscriptionFailed indicates the transcription backend failed for this recording.
	ErrCodeTranscriptionFailed ErrorCode = "TRANSCRIPTION_FAILED"
	// ErrCodeDiarizationUnavailable indicates no diarization backend is usable;
	// callers substitute the single-speaker fallback rather than failing.
	ErrCodeDiarizationUnavailable ErrorCode = "DIARIZATION_UNAVAILABLE"
	// ErrCodeDiarizationFailed indicates the diarization backend failed on this
	// specific input. Unlike unavailability this is fatal and must be surfaced.
	ErrCodeDiarizationFailed ErrorCode = "DIARIZATION_FAILED"
)

// Identity errors
const (
	// ErrCodeUnknownSpeaker indicates a profile assignment references a speaker
	// index that does not appear in the transcript.
	ErrCodeUnknownSpeaker ErrorCode = "UNKNOWN_SPEAKER"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Generic errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeServiceUnavailable indicates a service is temporarily unavailable.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeExternalService indicates an error from an external service.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
)

// Fusion itself never retries: it is deterministic and a retry would reproduce
// the same result. Retryable here is advice for the caller's own retry policy
// (e.g. re-invoking a model backend), not for anything inside this module.
var retryableCodes = map[ErrorCode]bool{
	ErrCodeServiceUnavailable:     true,
	ErrCodeTimeout:                true,
	ErrCodeExternalService:        true,
	ErrCodeDiarizationUnavailable: true,
	ErrCodeTranscriptionFailed:    false,
	ErrCodeDiarizationFailed:      false,
	ErrCodeInvalidTurn:            false,
	ErrCodeInvalidSegment:         false,
	ErrCodeUnknownSpeaker:         false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
