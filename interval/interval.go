// Package interval provides overlap arithmetic over half-open time
// intervals [start, end), expressed in seconds from recording start.
package interval

// Overlap returns the length of the intersection of [aStart, aEnd) and
// [bStart, bEnd). Disjoint or degenerate zero-length intervals yield zero.
func Overlap(aStart, aEnd, bStart, bEnd float64) float64 {
	return max(0, min(aEnd, bEnd)-max(aStart, bStart))
}
