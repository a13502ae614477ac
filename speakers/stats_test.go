package speakers

import (
	"math"
	"reflect"
	"testing"

	"github.com/kbukum/fusionkit/fusion"
	"github.com/kbukum/fusionkit/util"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func transcriptOf(segments ...fusion.FusedSegment) *fusion.DiarizedTranscript {
	return &fusion.DiarizedTranscript{Segments: segments}
}

func TestAggregate_SingleSpeaker(t *testing.T) {
	// Three segments of durations 2.0/3.0/1.0, confidences 0.9/0.8/1.0.
	transcript := transcriptOf(
		fusion.FusedSegment{Text: "one two", Start: 0, End: 2, SpeakerIndex: util.Ptr(0), Confidence: 0.9},
		fusion.FusedSegment{Text: "three", Start: 2, End: 5, SpeakerIndex: util.Ptr(0), Confidence: 0.8},
		fusion.FusedSegment{Text: "four five six", Start: 5, End: 6, SpeakerIndex: util.Ptr(0), Confidence: 1.0},
	)

	stats := Aggregate(transcript)
	if len(stats.Speakers) != 1 {
		t.Fatalf("speakers = %d, want 1", len(stats.Speakers))
	}
	got := stats.Speakers[0]
	if got.SpeakerIndex != 0 {
		t.Errorf("index = %d", got.SpeakerIndex)
	}
	if got.SegmentCount != 3 {
		t.Errorf("segment_count = %d, want 3", got.SegmentCount)
	}
	if !almostEqual(got.TotalTime, 6.0) {
		t.Errorf("total_time = %v, want 6.0", got.TotalTime)
	}
	if !almostEqual(got.MeanConfidence, 0.9) {
		t.Errorf("mean_confidence = %v, want 0.9", got.MeanConfidence)
	}
	if got.WordCount != 6 {
		t.Errorf("word_count = %d, want 6", got.WordCount)
	}
}

func TestAggregate_ExcludesUnattributed(t *testing.T) {
	transcript := transcriptOf(
		fusion.FusedSegment{Text: "spoken", Start: 0, End: 2, SpeakerIndex: util.Ptr(1), Confidence: 0.7},
		fusion.FusedSegment{Text: "mystery words here", Start: 2, End: 5.5, SpeakerIndex: nil, Confidence: 0},
		fusion.FusedSegment{Text: "also mystery", Start: 6, End: 7, SpeakerIndex: nil, Confidence: 0},
	)

	stats := Aggregate(transcript)
	if len(stats.Speakers) != 1 {
		t.Fatalf("speakers = %d, want 1", len(stats.Speakers))
	}
	if stats.UnattributedCount != 2 {
		t.Errorf("unattributed_count = %d, want 2", stats.UnattributedCount)
	}
	if !almostEqual(stats.UnattributedTime, 4.5) {
		t.Errorf("unattributed_time = %v, want 4.5", stats.UnattributedTime)
	}
	if stats.Speakers[0].WordCount != 1 {
		t.Errorf("word_count = %d, want 1", stats.Speakers[0].WordCount)
	}
}

func TestAggregate_SortedByIndex(t *testing.T) {
	transcript := transcriptOf(
		fusion.FusedSegment{Text: "b", Start: 0, End: 1, SpeakerIndex: util.Ptr(2), Confidence: 1},
		fusion.FusedSegment{Text: "a", Start: 1, End: 2, SpeakerIndex: util.Ptr(0), Confidence: 1},
		fusion.FusedSegment{Text: "c", Start: 2, End: 3, SpeakerIndex: util.Ptr(1), Confidence: 1},
	)

	stats := Aggregate(transcript)
	var indices []int
	for _, s := range stats.Speakers {
		indices = append(indices, s.SpeakerIndex)
	}
	if !reflect.DeepEqual(indices, []int{0, 1, 2}) {
		t.Errorf("indices = %v", indices)
	}
}

func TestAggregate_RecomputedFresh(t *testing.T) {
	transcript := transcriptOf(
		fusion.FusedSegment{Text: "hi", Start: 0, End: 1, SpeakerIndex: util.Ptr(0), Confidence: 1},
	)
	first := Aggregate(transcript)
	second := Aggregate(transcript)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated aggregation of the same transcript must match")
	}
	// Distinct result values: mutating one must not affect the other.
	first.Speakers[0].WordCount = 999
	if second.Speakers[0].WordCount == 999 {
		t.Error("aggregations must not share state")
	}
}

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(transcriptOf())
	if len(stats.Speakers) != 0 || stats.UnattributedCount != 0 {
		t.Errorf("stats = %+v", stats)
	}
}
