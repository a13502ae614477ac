package util

import "strings"

// CountWords returns the number of whitespace-separated tokens in s.
// This is a cheap approximation, not locale-aware tokenization.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
