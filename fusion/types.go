package fusion

import "sort"

// TranscriptSegment is a contiguous span of transcribed text produced by the
// transcription collaborator. Times are seconds relative to recording start,
// as a half-open interval [Start, End). Immutable once created.
type TranscriptSegment struct {
	// Text is the transcribed text for this span.
	Text string `json:"text"`
	// Start is the segment start time in seconds.
	Start float64 `json:"start"`
	// End is the segment end time in seconds. Must exceed Start.
	End float64 `json:"end"`
	// SourceConfidence is the transcription model's own confidence in [0,1].
	SourceConfidence float64 `json:"source_confidence"`
}

// Duration returns the segment length in seconds.
func (s TranscriptSegment) Duration() float64 {
	return s.End - s.Start
}

// SpeakerTurn is a contiguous span attributed to one speaker by the
// diarization collaborator (or synthesized by the fallback path). Turns for a
// given speaker need not be contiguous.
type SpeakerTurn struct {
	// SpeakerIndex is the opaque zero-based speaker identity.
	SpeakerIndex int `json:"speaker_index"`
	// Start is the turn start time in seconds.
	Start float64 `json:"start"`
	// End is the turn end time in seconds. Must exceed Start.
	End float64 `json:"end"`
}

// FusedSegment is a transcript segment with a speaker attribution. Created
// exclusively by Fuse, one per input segment, in input order, with the input
// timing copied verbatim.
type FusedSegment struct {
	// Text is the transcribed text for this span.
	Text string `json:"text"`
	// Start is the segment start time in seconds.
	Start float64 `json:"start"`
	// End is the segment end time in seconds.
	End float64 `json:"end"`
	// SpeakerIndex identifies the attributed speaker. Nil means no
	// diarization turn overlapped this segment.
	SpeakerIndex *int `json:"speaker_index"`
	// Confidence is the overlap ratio with the winning turn, in [0,1].
	// Exactly 0.0 if and only if SpeakerIndex is nil.
	Confidence float64 `json:"confidence"`
}

// Duration returns the segment length in seconds.
func (s FusedSegment) Duration() float64 {
	return s.End - s.Start
}

// Attributed reports whether the segment was attributed to a speaker.
func (s FusedSegment) Attributed() bool {
	return s.SpeakerIndex != nil
}

// DiarizedTranscript is the speaker-attributed transcript for one recording.
// Segments are sorted non-decreasing by Start, matching transcription order.
// The caller owns the value; fusion retains no reference to it.
type DiarizedTranscript struct {
	// Segments is the ordered fused segment list, 1:1 with the input.
	Segments []FusedSegment `json:"segments"`
	// SpeakerCount is the number of distinct speakers among the turns.
	SpeakerCount int `json:"speaker_count"`
	// TotalDuration is the recording length in seconds.
	TotalDuration float64 `json:"total_duration"`
	// Degraded is true iff the turns came from the single-speaker fallback.
	Degraded bool `json:"degraded"`
}

// SpeakerIndices returns the sorted distinct speaker indices attributed in
// the transcript. Unattributed segments do not contribute.
func (t *DiarizedTranscript) SpeakerIndices() []int {
	seen := make(map[int]struct{})
	for _, s := range t.Segments {
		if s.SpeakerIndex != nil {
			seen[*s.SpeakerIndex] = struct{}{}
		}
	}
	indices := make([]int, 0, len(seen))
	for idx := range seen {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices
}
