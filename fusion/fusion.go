package fusion

import (
	"github.com/kbukum/fusionkit/errors"
	"github.com/kbukum/fusionkit/interval"
)

// Fuse attributes each transcript segment to the speaker turn with the
// greatest temporal overlap, breaking ties toward the earliest starting turn.
// The result preserves segment order, count, timing, and text exactly.
//
// Segments with non-positive duration are rejected with INVALID_SEGMENT:
// attributing them would divide by zero, so callers must filter or reject
// zero-duration segments before fusing.
func Fuse(segments []TranscriptSegment, index *TurnIndex) (*DiarizedTranscript, error) {
	fused := make([]FusedSegment, 0, len(segments))
	var maxEnd float64

	for i, seg := range segments {
		if seg.End <= seg.Start {
			return nil, errors.InvalidSegment(i, seg.Start, seg.End)
		}
		maxEnd = max(maxEnd, seg.End)

		fs := FusedSegment{
			Text:  seg.Text,
			Start: seg.Start,
			End:   seg.End,
		}

		if winner, overlap, ok := bestTurn(seg, index); ok {
			idx := winner.SpeakerIndex
			fs.SpeakerIndex = &idx
			// Overlap with non-winning turns is discarded, not summed: a
			// segment is attributed to exactly one speaker, never split.
			fs.Confidence = overlap / seg.Duration()
		}

		fused = append(fused, fs)
	}

	return &DiarizedTranscript{
		Segments:      fused,
		SpeakerCount:  index.SpeakerCount(),
		TotalDuration: max(maxEnd, index.End()),
	}, nil
}

// bestTurn returns the turn with the greatest overlap against the segment.
// Candidates come back in ascending start order, so keeping the first
// strict maximum makes the earliest-starting turn win ties.
func bestTurn(seg TranscriptSegment, index *TurnIndex) (SpeakerTurn, float64, bool) {
	candidates := index.Overlapping(seg.Start, seg.End)
	if len(candidates) == 0 {
		return SpeakerTurn{}, 0, false
	}

	winner := candidates[0]
	best := interval.Overlap(seg.Start, seg.End, winner.Start, winner.End)
	for _, turn := range candidates[1:] {
		if ov := interval.Overlap(seg.Start, seg.End, turn.Start, turn.End); ov > best {
			winner, best = turn, ov
		}
	}
	return winner, best, true
}
