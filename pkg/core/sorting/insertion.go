// Package sorting holds the quadratic baseline sort compared against the
// standard library's stable sort.
package sorting

import "cmp"

// InsertionSort returns a copy of xs stably ordered by ascending key.
// xs is never mutated.
func InsertionSort[T any, K cmp.Ordered](xs []T, key func(T) K) []T {
	a := make([]T, len(xs))
	copy(a, xs)

	for i := 1; i < len(a); i++ {
		current := a[i]
		k := key(current)
		j := i - 1
		// strict > keeps equal keys in their original order
		for j >= 0 && key(a[j]) > k {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = current
	}
	return a
}
