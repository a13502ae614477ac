// Package engine orchestrates one recording through the pipeline:
// transcription, diarization, and segment-speaker fusion.
//
// The two model collaborators are injected as interfaces so the degraded
// path is an explicit, testable branch: a diarizer that is absent,
// reports itself unavailable, or returns DIARIZATION_UNAVAILABLE sends the
// recording through the single-speaker fallback; a DIARIZATION_FAILED
// result is fatal to the recording and surfaced unchanged.
//
// The engine itself performs no model work and keeps no per-recording
// state; recordings may be processed concurrently on one Engine.
package engine
