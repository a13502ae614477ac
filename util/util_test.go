package util

import "testing"

func TestCountWords(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello world", 2},
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"  leading and trailing  ", 3},
		{"tabs\tand\nnewlines count", 4},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := CountWords(tc.input); got != tc.want {
				t.Errorf("CountWords(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestPtr(t *testing.T) {
	p := Ptr(42)
	if *p != 42 {
		t.Errorf("Ptr(42) = %d", *p)
	}
}
