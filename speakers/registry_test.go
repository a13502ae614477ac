package speakers

import (
	"reflect"
	"sync"
	"testing"

	"github.com/kbukum/fusionkit/errors"
	"github.com/kbukum/fusionkit/fusion"
	"github.com/kbukum/fusionkit/util"
)

func twoSpeakerTranscript() *fusion.DiarizedTranscript {
	return transcriptOf(
		fusion.FusedSegment{Text: "hello", Start: 0, End: 2, SpeakerIndex: util.Ptr(0), Confidence: 1},
		fusion.FusedSegment{Text: "hi there", Start: 2, End: 4, SpeakerIndex: util.Ptr(1), Confidence: 0.9},
		fusion.FusedSegment{Text: "hm", Start: 4, End: 5, SpeakerIndex: nil, Confidence: 0},
	)
}

func TestAssignAndResolve(t *testing.T) {
	reg := NewRegistry(twoSpeakerTranscript())

	if err := reg.Assign(0, "Alice Chen", "alice@example.com", "Engineer"); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	got := reg.Resolve(0)
	want := SpeakerProfile{SpeakerIndex: 0, DisplayName: "Alice Chen", Email: "alice@example.com", Title: "Engineer"}
	if got != want {
		t.Errorf("Resolve(0) = %+v, want %+v", got, want)
	}
}

func TestResolve_PositionalDefault(t *testing.T) {
	reg := NewRegistry(twoSpeakerTranscript())

	if got := reg.Resolve(1).DisplayName; got != "Speaker 2" {
		t.Errorf("default name = %q, want \"Speaker 2\"", got)
	}
	// Resolve never fails, even for indices outside the transcript.
	if got := reg.Resolve(99).DisplayName; got != "Speaker 100" {
		t.Errorf("default name = %q, want \"Speaker 100\"", got)
	}
}

func TestAssign_UnknownSpeaker(t *testing.T) {
	reg := NewRegistry(twoSpeakerTranscript())

	err := reg.Assign(5, "Ghost", "", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsCode(err, errors.ErrCodeUnknownSpeaker) {
		t.Errorf("code = %v, want UNKNOWN_SPEAKER", err)
	}
	// Failure must not corrupt existing profiles.
	if got := reg.Resolve(5).DisplayName; got != "Speaker 6" {
		t.Errorf("profile leaked on failed assign: %q", got)
	}
}

func TestAssign_NegativeIndexIsUnknownSpeaker(t *testing.T) {
	reg := NewRegistry(twoSpeakerTranscript())

	err := reg.Assign(-1, "Ghost", "", "")
	if err == nil {
		t.Fatal("expected error")
	}
	// Out-of-range indices fail uniformly, whatever their sign.
	if !errors.IsCode(err, errors.ErrCodeUnknownSpeaker) {
		t.Errorf("code = %v, want UNKNOWN_SPEAKER", err)
	}
}

func TestAssign_Validation(t *testing.T) {
	reg := NewRegistry(twoSpeakerTranscript())

	tests := []struct {
		name        string
		displayName string
		email       string
		wantErr     bool
	}{
		{"valid without email", "Bob", "", false},
		{"empty name", "", "", true},
		{"bad email", "Bob", "not-an-email", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := reg.Assign(0, tc.displayName, tc.email, "")
			if (err != nil) != tc.wantErr {
				t.Errorf("Assign error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestAssign_LastWriteWins(t *testing.T) {
	reg := NewRegistry(twoSpeakerTranscript())

	if err := reg.Assign(1, "First Name", "", ""); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := reg.Assign(1, "Second Name", "second@example.com", ""); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	got := reg.Resolve(1)
	if got.DisplayName != "Second Name" || got.Email != "second@example.com" {
		t.Errorf("Resolve(1) = %+v", got)
	}
}

func TestAssign_NeverMutatesTranscript(t *testing.T) {
	transcript := twoSpeakerTranscript()
	before := make([]fusion.FusedSegment, len(transcript.Segments))
	copy(before, transcript.Segments)
	statsBefore := Aggregate(transcript)

	reg := NewRegistry(transcript)
	for i := 0; i < 3; i++ {
		if err := reg.Assign(0, "Renamed Again", "", ""); err != nil {
			t.Fatalf("Assign: %v", err)
		}
	}

	if !reflect.DeepEqual(before, transcript.Segments) {
		t.Error("Assign mutated the fused segments")
	}
	if !reflect.DeepEqual(statsBefore, Aggregate(transcript)) {
		t.Error("Assign changed derived statistics")
	}
}

func TestAssigned(t *testing.T) {
	reg := NewRegistry(twoSpeakerTranscript())
	if err := reg.Assign(1, "Bea", "", ""); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := reg.Assign(0, "Al", "", ""); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	assigned := reg.Assigned()
	if len(assigned) != 2 {
		t.Fatalf("len = %d", len(assigned))
	}
	if assigned[0].SpeakerIndex != 0 || assigned[1].SpeakerIndex != 1 {
		t.Errorf("assigned order = %+v", assigned)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry(twoSpeakerTranscript())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = reg.Assign(0, "Writer", "", "")
		}()
		go func() {
			defer wg.Done()
			_ = reg.Resolve(0)
		}()
	}
	wg.Wait()

	if got := reg.Resolve(0).DisplayName; got != "Writer" {
		t.Errorf("final profile = %q", got)
	}
}
