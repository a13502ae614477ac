package fusion

import (
	"testing"
)

func TestFuseDegraded_AllSegmentsToSpeakerZero(t *testing.T) {
	segments := []TranscriptSegment{
		{Text: "first", Start: 0, End: 4},
		{Text: "second", Start: 4, End: 8.5},
		{Text: "third", Start: 9, End: 12},
	}

	transcript, err := FuseDegraded(segments, 12.0)
	if err != nil {
		t.Fatalf("FuseDegraded: %v", err)
	}
	if !transcript.Degraded {
		t.Error("Degraded must be true under fallback")
	}
	if transcript.SpeakerCount != 1 {
		t.Errorf("SpeakerCount = %d, want 1", transcript.SpeakerCount)
	}
	if transcript.TotalDuration != 12.0 {
		t.Errorf("TotalDuration = %v, want 12", transcript.TotalDuration)
	}
	for i, seg := range transcript.Segments {
		if seg.SpeakerIndex == nil || *seg.SpeakerIndex != 0 {
			t.Errorf("segment %d: speaker = %v, want 0", i, seg.SpeakerIndex)
		}
		if seg.Confidence != 1.0 {
			t.Errorf("segment %d: confidence = %v, want 1.0 (full containment)", i, seg.Confidence)
		}
	}
}

func TestFuseDegraded_ExtendsToCoverSegments(t *testing.T) {
	// A reported duration shorter than the transcript still yields full
	// containment.
	segments := []TranscriptSegment{{Text: "runs long", Start: 0, End: 20}}

	transcript, err := FuseDegraded(segments, 10.0)
	if err != nil {
		t.Fatalf("FuseDegraded: %v", err)
	}
	if transcript.Segments[0].Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", transcript.Segments[0].Confidence)
	}
	if transcript.TotalDuration != 20 {
		t.Errorf("TotalDuration = %v, want 20", transcript.TotalDuration)
	}
}

func TestFuseDegraded_EmptyRecording(t *testing.T) {
	transcript, err := FuseDegraded(nil, 0)
	if err != nil {
		t.Fatalf("FuseDegraded: %v", err)
	}
	if !transcript.Degraded {
		t.Error("Degraded must be true")
	}
	if len(transcript.Segments) != 0 {
		t.Errorf("len = %d", len(transcript.Segments))
	}
}

func TestFallbackTurns(t *testing.T) {
	turns := FallbackTurns(42.5)
	if len(turns) != 1 {
		t.Fatalf("len = %d, want 1", len(turns))
	}
	turn := turns[0]
	if turn.SpeakerIndex != 0 || turn.Start != 0 || turn.End != 42.5 {
		t.Errorf("turn = %+v", turn)
	}
}
