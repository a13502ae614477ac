package fusion

// FallbackTurns synthesizes the single-speaker turn set used when the
// diarization collaborator is unavailable: one speaker-0 turn spanning the
// whole recording.
func FallbackTurns(totalDuration float64) []SpeakerTurn {
	return []SpeakerTurn{{SpeakerIndex: 0, Start: 0, End: totalDuration}}
}

// FuseDegraded fuses the segments against the single-speaker fallback turn
// and marks the transcript degraded. Every segment is fully contained in the
// synthesized turn, so every attribution carries confidence 1.0; that value
// means "fully contained in the only known turn", not model certainty.
//
// If totalDuration is not positive or does not cover the segments, the
// latest segment end is used instead so containment holds.
func FuseDegraded(segments []TranscriptSegment, totalDuration float64) (*DiarizedTranscript, error) {
	for _, seg := range segments {
		totalDuration = max(totalDuration, seg.End)
	}

	if totalDuration <= 0 {
		// Nothing to span: an empty recording still yields a valid,
		// degraded, empty transcript.
		return &DiarizedTranscript{
			Segments: make([]FusedSegment, 0),
			Degraded: true,
		}, nil
	}

	index, err := NewTurnIndex(FallbackTurns(totalDuration))
	if err != nil {
		return nil, err
	}

	transcript, err := Fuse(segments, index)
	if err != nil {
		return nil, err
	}
	transcript.Degraded = true
	return transcript, nil
}
