package fusion

import (
	"sort"

	"github.com/kbukum/fusionkit/errors"
	"github.com/kbukum/fusionkit/interval"
)

// TurnIndex is a queryable ordered view over speaker turns, sorted by start
// time. Turn counts are small (tens to low hundreds per recording), so range
// queries are a linear scan.
type TurnIndex struct {
	turns    []SpeakerTurn
	speakers int
}

// NewTurnIndex builds a TurnIndex from the given turns. It rejects any turn
// with non-positive duration and does not mutate the input slice.
func NewTurnIndex(turns []SpeakerTurn) (*TurnIndex, error) {
	for i, turn := range turns {
		if turn.End <= turn.Start {
			return nil, errors.InvalidTurn(i, turn.Start, turn.End)
		}
	}

	sorted := make([]SpeakerTurn, len(turns))
	copy(sorted, turns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	seen := make(map[int]struct{})
	for _, turn := range sorted {
		seen[turn.SpeakerIndex] = struct{}{}
	}

	return &TurnIndex{turns: sorted, speakers: len(seen)}, nil
}

// Overlapping returns all turns whose interval overlaps [start, end), in
// ascending start order.
func (ix *TurnIndex) Overlapping(start, end float64) []SpeakerTurn {
	var result []SpeakerTurn
	for _, turn := range ix.turns {
		if turn.Start >= end {
			break
		}
		if interval.Overlap(start, end, turn.Start, turn.End) > 0 {
			result = append(result, turn)
		}
	}
	return result
}

// Len returns the number of indexed turns.
func (ix *TurnIndex) Len() int {
	return len(ix.turns)
}

// SpeakerCount returns the number of distinct speaker indices among the turns.
func (ix *TurnIndex) SpeakerCount() int {
	return ix.speakers
}

// End returns the latest turn end time, or zero for an empty index.
func (ix *TurnIndex) End() float64 {
	var end float64
	for _, turn := range ix.turns {
		end = max(end, turn.End)
	}
	return end
}
