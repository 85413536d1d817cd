package sampling

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b. Property tests use it to cap the
// number of randomized trials at the transform length itself, so a
// degree-2 table doesn't get the same trial count as a degree-32768 one.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
