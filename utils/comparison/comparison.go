// Package comparison holds small generic helpers over ordered values and slices.
package comparison

import "golang.org/x/exp/constraints"

func Min[V constraints.Ordered](a, b V) V {
	if a < b {
		return a
	}
	return b
}

// Prefix returns at most the first n elements of s, and whether elements were cut off.
// A negative n is treated as zero.
func Prefix[S ~[]E, E any](s S, n int) (S, bool) {
	n = Min(len(s), n)
	if n < 0 {
		n = 0
	}
	return s[:n], n < len(s)
}
