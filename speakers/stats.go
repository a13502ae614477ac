package speakers

import (
	"sort"

	"github.com/kbukum/fusionkit/fusion"
	"github.com/kbukum/fusionkit/util"
)

// SpeakerStatistics holds derived talk metrics for one speaker.
type SpeakerStatistics struct {
	// SpeakerIndex is the opaque speaker identity the metrics belong to.
	SpeakerIndex int `json:"speaker_index"`
	// SegmentCount is the number of segments attributed to the speaker.
	SegmentCount int `json:"segment_count"`
	// TotalTime is the summed segment duration in seconds.
	TotalTime float64 `json:"total_time"`
	// MeanConfidence is the arithmetic mean of the segments' confidence.
	MeanConfidence float64 `json:"mean_confidence"`
	// WordCount is the whitespace-token count across the segments' text.
	WordCount int `json:"word_count"`
}

// Statistics is the aggregate over all speakers of one transcript.
// Unattributed segments are excluded from per-speaker metrics but tracked
// separately for observability.
type Statistics struct {
	// Speakers holds per-speaker metrics, ascending by speaker index.
	Speakers []SpeakerStatistics `json:"speakers"`
	// UnattributedCount is the number of segments with no speaker.
	UnattributedCount int `json:"unattributed_count"`
	// UnattributedTime is the summed duration of unattributed segments.
	UnattributedTime float64 `json:"unattributed_time"`
}

// Aggregate computes per-speaker statistics from the transcript's fused
// segments. The result is recomputed fresh on every call.
func Aggregate(t *fusion.DiarizedTranscript) *Statistics {
	type accumulator struct {
		segments   int
		totalTime  float64
		confidence float64
		words      int
	}

	stats := &Statistics{Speakers: make([]SpeakerStatistics, 0)}
	bySpeaker := make(map[int]*accumulator)

	for _, seg := range t.Segments {
		if seg.SpeakerIndex == nil {
			stats.UnattributedCount++
			stats.UnattributedTime += seg.Duration()
			continue
		}
		acc := bySpeaker[*seg.SpeakerIndex]
		if acc == nil {
			acc = &accumulator{}
			bySpeaker[*seg.SpeakerIndex] = acc
		}
		acc.segments++
		acc.totalTime += seg.Duration()
		acc.confidence += seg.Confidence
		acc.words += util.CountWords(seg.Text)
	}

	for idx, acc := range bySpeaker {
		stats.Speakers = append(stats.Speakers, SpeakerStatistics{
			SpeakerIndex:   idx,
			SegmentCount:   acc.segments,
			TotalTime:      acc.totalTime,
			MeanConfidence: acc.confidence / float64(acc.segments),
			WordCount:      acc.words,
		})
	}
	sort.Slice(stats.Speakers, func(i, j int) bool {
		return stats.Speakers[i].SpeakerIndex < stats.Speakers[j].SpeakerIndex
	})

	return stats
}
