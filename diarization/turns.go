package diarization

import "github.com/kbukum/fusionkit/fusion"

// TurnsFromSegments converts backend segments into fusion speaker turns,
// assigning each distinct speaker label a zero-based integer index in order
// of first appearance. The mapping is deterministic for a given segment
// order, so repeated conversions of the same response agree.
func TurnsFromSegments(segments []Segment) []fusion.SpeakerTurn {
	indexByLabel := make(map[string]int)
	turns := make([]fusion.SpeakerTurn, 0, len(segments))
	for _, seg := range segments {
		idx, ok := indexByLabel[seg.Speaker]
		if !ok {
			idx = len(indexByLabel)
			indexByLabel[seg.Speaker] = idx
		}
		turns = append(turns, fusion.SpeakerTurn{
			SpeakerIndex: idx,
			Start:        seg.Start,
			End:          seg.End,
		})
	}
	return turns
}
