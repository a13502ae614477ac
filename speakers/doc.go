// Package speakers derives per-speaker statistics from a fused transcript
// and maps opaque speaker indices to human-assigned profiles.
//
// Statistics are always a projection: Aggregate recomputes them from the
// current segment list on every call and nothing is cached. Profile
// assignment is fully decoupled from fusion; renaming a speaker never
// requires refusing or recomputing anything.
package speakers
