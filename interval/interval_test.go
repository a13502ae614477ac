package interval

import "testing"

func TestOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     float64
		want                           float64
	}{
		{"partial overlap", 0, 2, 1, 3, 1},
		{"full containment", 1, 2, 0, 10, 1},
		{"identical", 3, 7, 3, 7, 4},
		{"disjoint", 0, 1, 2, 3, 0},
		{"touching endpoints", 0, 1, 1, 2, 0},
		{"zero-length a", 1, 1, 0, 2, 0},
		{"zero-length b", 0, 2, 1, 1, 0},
		{"b inside a", 0, 10, 4, 6, 2},
		{"fractional", 0.5, 1.75, 1.0, 3.0, 0.75},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Errorf("Overlap(%v,%v,%v,%v) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
		})
	}
}

func TestOverlapSymmetric(t *testing.T) {
	if Overlap(0, 5, 3, 8) != Overlap(3, 8, 0, 5) {
		t.Error("overlap must be symmetric in its arguments")
	}
}
