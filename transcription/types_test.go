package transcription

import "testing"

func TestFusionSegments_FiltersZeroDuration(t *testing.T) {
	resp := &TranscriptionResponse{
		Segments: []Segment{
			{Start: 0, End: 2, Text: "keep me", Confidence: 0.9},
			{Start: 2, End: 2, Text: "drop me", Confidence: 0.5},
			{Start: 3, End: 2.5, Text: "drop me too", Confidence: 0.5},
			{Start: 3, End: 5, Text: "keep me as well", Confidence: 0.8},
		},
	}

	segments, dropped := resp.FusionSegments()
	if len(segments) != 2 {
		t.Fatalf("kept %d segments, want 2", len(segments))
	}
	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
	if segments[0].Text != "keep me" || segments[1].Text != "keep me as well" {
		t.Errorf("segments = %+v", segments)
	}
	if segments[0].SourceConfidence != 0.9 {
		t.Errorf("source confidence = %v", segments[0].SourceConfidence)
	}
}

func TestFusionSegments_Empty(t *testing.T) {
	resp := &TranscriptionResponse{}
	segments, dropped := resp.FusionSegments()
	if len(segments) != 0 || dropped != 0 {
		t.Errorf("segments = %v, dropped = %d", segments, dropped)
	}
}
