// Package compare provides comparator adapters over ordered sequences and
// map entries: lexicographic comparison of slices and single-use sequences,
// entry comparators by key or by value, and order reversal.
package compare

import (
	"cmp"
	"iter"
	"slices"
)

// Func orders two values: negative when a sorts before b, zero when equal,
// positive when a sorts after b.
type Func[E any] func(a, b E) int

// Slices compares two slices lexicographically, element by element. When
// one slice is a prefix of the other, the shorter sorts first.
func Slices[E cmp.Ordered](a, b []E) int {
	return slices.Compare(a, b)
}

// Seqs compares two sequences lexicographically. Both sequences are
// consumed up to the first inequality; when one is a prefix of the other,
// the shorter sorts first.
func Seqs[E cmp.Ordered](a, b iter.Seq[E]) int {
	next1, stop1 := iter.Pull(a)
	defer stop1()
	next2, stop2 := iter.Pull(b)
	defer stop2()

	for {
		v1, ok1 := next1()
		v2, ok2 := next2()
		switch {
		case !ok1 && !ok2:
			return 0
		case !ok1:
			return -1
		case !ok2:
			return 1
		}
		if c := cmp.Compare(v1, v2); c != 0 {
			return c
		}
	}
}

// Reversed returns a comparator imposing the opposite order of f.
func Reversed[E any](f Func[E]) Func[E] {
	return func(a, b E) int {
		return f(b, a)
	}
}

// Entry is a key/value pair taken from a map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// ByKey orders entries by key.
func ByKey[K cmp.Ordered, V any](a, b Entry[K, V]) int {
	return cmp.Compare(a.Key, b.Key)
}

// ByValue orders entries by value.
func ByValue[K comparable, V cmp.Ordered](a, b Entry[K, V]) int {
	return cmp.Compare(a.Value, b.Value)
}

// Entries returns the entries of m in unspecified order.
func Entries[K comparable, V any](m map[K]V) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// SortedEntries returns the entries of m ordered by f.
func SortedEntries[K comparable, V any](m map[K]V, f Func[Entry[K, V]]) []Entry[K, V] {
	out := Entries(m)
	slices.SortFunc(out, f)
	return out
}
