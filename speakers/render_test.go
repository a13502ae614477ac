package speakers

import (
	"testing"

	"github.com/kbukum/fusionkit/fusion"
	"github.com/kbukum/fusionkit/util"
)

func TestRenderLines(t *testing.T) {
	transcript := transcriptOf(
		fusion.FusedSegment{Text: "good morning", Start: 0, End: 62.4, SpeakerIndex: util.Ptr(0), Confidence: 1},
		fusion.FusedSegment{Text: "morning", Start: 62.4, End: 65, SpeakerIndex: util.Ptr(1), Confidence: 0.8},
		fusion.FusedSegment{Text: "(inaudible)", Start: 65, End: 66, SpeakerIndex: nil, Confidence: 0},
	)
	reg := NewRegistry(transcript)
	if err := reg.Assign(0, "Alice", "", ""); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	lines := RenderLines(transcript, reg)
	want := []string{
		"Alice: [00:00-01:02] good morning",
		"Speaker 2: [01:02-01:05] morning",
		"Unknown: [01:05-01:06] (inaudible)",
	}
	if len(lines) != len(want) {
		t.Fatalf("len = %d, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{59.9, "00:59"},
		{60, "01:00"},
		{125.2, "02:05"},
		{3723, "62:03"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := formatClock(tc.seconds); got != tc.want {
				t.Errorf("formatClock(%v) = %q, want %q", tc.seconds, got, tc.want)
			}
		})
	}
}

func TestRenderTranscript(t *testing.T) {
	transcript := transcriptOf(
		fusion.FusedSegment{Text: "a", Start: 0, End: 1, SpeakerIndex: util.Ptr(0), Confidence: 1},
		fusion.FusedSegment{Text: "b", Start: 1, End: 2, SpeakerIndex: util.Ptr(0), Confidence: 1},
	)
	reg := NewRegistry(transcript)
	got := RenderTranscript(transcript, reg)
	want := "Speaker 1: [00:00-00:01] a\nSpeaker 1: [00:01-00:02] b"
	if got != want {
		t.Errorf("RenderTranscript = %q, want %q", got, want)
	}
}
