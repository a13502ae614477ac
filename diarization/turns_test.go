package diarization

import (
	"reflect"
	"testing"

	"github.com/kbukum/fusionkit/fusion"
)

func TestTurnsFromSegments(t *testing.T) {
	segments := []Segment{
		{Speaker: "SPEAKER_01", Start: 0, End: 4},
		{Speaker: "SPEAKER_00", Start: 4, End: 7},
		{Speaker: "SPEAKER_01", Start: 7, End: 9},
	}

	got := TurnsFromSegments(segments)
	want := []fusion.SpeakerTurn{
		{SpeakerIndex: 0, Start: 0, End: 4},
		{SpeakerIndex: 1, Start: 4, End: 7},
		{SpeakerIndex: 0, Start: 7, End: 9},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("turns = %+v, want %+v", got, want)
	}
}

func TestTurnsFromSegments_Deterministic(t *testing.T) {
	segments := []Segment{
		{Speaker: "B", Start: 0, End: 1},
		{Speaker: "A", Start: 1, End: 2},
		{Speaker: "C", Start: 2, End: 3},
	}
	first := TurnsFromSegments(segments)
	for i := 0; i < 5; i++ {
		if !reflect.DeepEqual(first, TurnsFromSegments(segments)) {
			t.Fatal("label-to-index mapping must be deterministic")
		}
	}
}

func TestTurnsFromSegments_Empty(t *testing.T) {
	if got := TurnsFromSegments(nil); len(got) != 0 {
		t.Errorf("turns = %v", got)
	}
}
