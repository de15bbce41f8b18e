package math

import "golang.org/x/exp/constraints"

// Clamp returns f limited to [low, high]. low must not exceed high.
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Abs returns the magnitude of a signed integer or float.
// For integers the most negative value wraps back to itself.
func Abs[T constraints.Signed | constraints.Float](f T) T {
	if f < 0 {
		return -f
	}
	return f
}
