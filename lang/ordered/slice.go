package ordered

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Wrap returns a new slice holding the wrapped values of vs.
func Wrap[T constraints.Float](vs []T) []Float[T] {
	fs := make([]Float[T], len(vs))
	for i, v := range vs {
		fs[i] = Float[T]{v: v}
	}
	return fs
}

// Unwrap returns a new slice holding the native values of fs.
func Unwrap[T constraints.Float](fs []Float[T]) []T {
	vs := make([]T, len(fs))
	for i, f := range fs {
		vs[i] = f.v
	}
	return vs
}

// Sort sorts fs in ascending order. The sort is stable, so values that are
// equal but distinct (e.g. -0 and +0, or NaNs with different payloads) keep
// their relative order.
func Sort[T constraints.Float](fs []Float[T]) {
	slices.SortStableFunc(fs, Compare[T])
}
