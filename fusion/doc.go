// Package fusion aligns transcription segments with diarization turns to
// produce a speaker-attributed transcript.
//
// Each transcript segment is attributed to at most one speaker turn: the
// turn with the greatest temporal overlap wins, ties go to the earliest
// starting turn, and the confidence score is the winning overlap divided
// by the segment duration. Segments with no overlapping turn keep a nil
// speaker index and a confidence of exactly zero.
//
// Fusion is a pure function of its inputs: it never reorders, merges,
// drops, or retimes segments, and it retains no reference to the
// transcript it returns. Multiple recordings may be fused concurrently
// without coordination.
//
// When diarization is unavailable, FuseDegraded substitutes a single
// speaker-0 turn spanning the whole recording and marks the result
// degraded. The 1.0 confidence it reports means "fully contained in the
// only known turn", not model certainty; callers surfacing confidence
// must surface the Degraded flag with it.
package fusion
