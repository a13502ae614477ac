package transcription

import "github.com/kbukum/fusionkit/fusion"

// TranscriptionRequest holds parameters for a transcription call.
type TranscriptionRequest struct {
	// AudioPath is the path to the audio file to transcribe.
	AudioPath string `json:"audio_path"`
	// Language is the expected language of the audio (e.g. "en").
	Language string `json:"language,omitempty"`
	// Model is the transcription model to use.
	Model string `json:"model,omitempty"`
}

// TranscriptionResponse holds the result of a transcription call.
type TranscriptionResponse struct {
	// Text is the full transcription text.
	Text string `json:"text"`
	// Segments contains time-aligned transcript segments.
	Segments []Segment `json:"segments,omitempty"`
	// Duration is the audio duration in seconds.
	Duration float64 `json:"duration,omitempty"`
	// Language is the detected or specified language.
	Language string `json:"language,omitempty"`
}

// Segment represents a time-aligned portion of a transcript.
type Segment struct {
	// Start is the segment start time in seconds.
	Start float64 `json:"start"`
	// End is the segment end time in seconds.
	End float64 `json:"end"`
	// Text is the transcribed text for this segment.
	Text string `json:"text"`
	// Confidence is the model's confidence for this segment in [0,1].
	Confidence float64 `json:"confidence"`
}

// FusionSegments converts the response segments into fusion input, dropping
// any segment with non-positive duration: fusing a zero-duration segment is
// disallowed, so they are filtered here at the collaborator boundary.
// Returns the kept segments and the number dropped.
func (r *TranscriptionResponse) FusionSegments() ([]fusion.TranscriptSegment, int) {
	segments := make([]fusion.TranscriptSegment, 0, len(r.Segments))
	dropped := 0
	for _, seg := range r.Segments {
		if seg.End <= seg.Start {
			dropped++
			continue
		}
		segments = append(segments, fusion.TranscriptSegment{
			Text:             seg.Text,
			Start:            seg.Start,
			End:              seg.End,
			SourceConfidence: seg.Confidence,
		})
	}
	return segments, dropped
}
