// Package util provides small generic helpers shared across fusionkit.
package util

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}
