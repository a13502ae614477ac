// Package transcription defines the transcription collaborator contract:
// the provider interface and common types for speech-to-text backends.
//
// Transcription output is the segment side of fusion; backends do not
// participate in speaker attribution beyond supplying time-aligned segments
// with per-segment confidence.
//
// # Backends
//
//   - transcription/whisper: faster-whisper HTTP sidecar
package transcription
