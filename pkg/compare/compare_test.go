package compare

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func seqOf[E any](vals ...E) iter.Seq[E] {
	return slices.Values(vals)
}

func TestSlices(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"both empty", nil, nil, 0},
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, 0},
		{"first smaller element", []int{1, 2}, []int{1, 3}, -1},
		{"first larger element", []int{2}, []int{1, 9, 9}, 1},
		{"prefix sorts first", []int{1, 2}, []int{1, 2, 3}, -1},
		{"longer sorts last", []int{1, 2, 3}, []int{1, 2}, 1},
		{"empty vs non-empty", nil, []int{0}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slices(tt.a, tt.b); sign(got) != tt.want {
				t.Fatalf("Slices(%v, %v) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
			// Seqs must agree with Slices on the same elements.
			if got := Seqs(seqOf(tt.a...), seqOf(tt.b...)); sign(got) != tt.want {
				t.Fatalf("Seqs(%v, %v) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestSeqsStrings(t *testing.T) {
	if got := Seqs(seqOf("a", "b"), seqOf("a", "c")); got >= 0 {
		t.Fatalf("got %d, want negative", got)
	}
}

func TestReversed(t *testing.T) {
	in := []Entry[string, int]{
		{Key: "b", Value: 2},
		{Key: "a", Value: 1},
		{Key: "c", Value: 3},
	}
	slices.SortFunc(in, Reversed(ByKey[string, int]))

	want := []Entry[string, int]{
		{Key: "c", Value: 3},
		{Key: "b", Value: 2},
		{Key: "a", Value: 1},
	}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Fatalf("reversed sort mismatch (-want +got):\n%s", diff)
	}
}

func TestSortedEntries(t *testing.T) {
	m := map[string]int{"one": 1, "three": 3, "two": 2}

	byKey := SortedEntries(m, ByKey[string, int])
	wantKeys := []Entry[string, int]{
		{Key: "one", Value: 1},
		{Key: "three", Value: 3},
		{Key: "two", Value: 2},
	}
	if diff := cmp.Diff(wantKeys, byKey); diff != "" {
		t.Fatalf("ByKey mismatch (-want +got):\n%s", diff)
	}

	byValue := SortedEntries(m, ByValue[string, int])
	wantValues := []Entry[string, int]{
		{Key: "one", Value: 1},
		{Key: "two", Value: 2},
		{Key: "three", Value: 3},
	}
	if diff := cmp.Diff(wantValues, byValue); diff != "" {
		t.Fatalf("ByValue mismatch (-want +got):\n%s", diff)
	}
}

func TestEntriesLen(t *testing.T) {
	m := map[int]string{1: "a", 2: "b"}
	if got := len(Entries(m)); got != 2 {
		t.Fatalf("len(Entries) = %d, want 2", got)
	}
}
