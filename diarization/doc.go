// Package diarization defines the diarization collaborator contract: the
// provider interface and common types for speaker-diarization backends.
//
// Backends distinguish two failure conditions with different downstream
// behavior: unavailability (no model loaded, feature disabled, timeout
// reaching the backend) is signalled with the DIARIZATION_UNAVAILABLE code
// and triggers the caller's single-speaker fallback; a failure on a specific
// input is DIARIZATION_FAILED and is fatal to that recording. Silently
// falling back on a genuine failure would mask a model defect behind a
// falsely-confident degraded transcript.
//
// # Backends
//
//   - diarization/pyannote: Pyannote-based speaker diarization
package diarization
