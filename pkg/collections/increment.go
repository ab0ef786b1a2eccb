// Package collections provides small helpers for manipulating integer
// collections: bulk increments over slices, sets and map values, and an
// integer-keyed map that maintains a reverse value-to-key index.
package collections

// Integer constrains to the built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Incremented returns a new slice with delta added to every element, in the
// input order.
func Incremented[E Integer](vals []E, delta E) []E {
	out := make([]E, len(vals))
	for i, v := range vals {
		out[i] = v + delta
	}
	return out
}

// IncrementedSet returns a new set with delta added to every member. The
// result may be smaller than the input when increments collide with wrapped
// values.
func IncrementedSet[E Integer](set map[E]struct{}, delta E) map[E]struct{} {
	out := make(map[E]struct{}, len(set))
	for v := range set {
		out[v+delta] = struct{}{}
	}
	return out
}

// IncrementValues adds delta to every value of m, in place.
func IncrementValues[K comparable, E Integer](m map[K]E, delta E) {
	for k, v := range m {
		m[k] = v + delta
	}
}
