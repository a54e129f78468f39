package reconcile

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for list reconciliation.
var (
	// ErrLengthMismatch indicates Distance was given lists of different lengths.
	ErrLengthMismatch = errors.New("reconcile: lists must have the same length")
)

// Distance returns the total gap between the two lists: both are sorted
// ascending (copies — the inputs stay untouched) and the absolute pairwise
// differences are summed.
func Distance(left, right []int) (int, error) {
	if len(left) != len(right) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(left), len(right))
	}
	a := append([]int(nil), left...)
	b := append([]int(nil), right...)
	sort.Ints(a)
	sort.Ints(b)

	total := 0
	for i := range a {
		total += abs(a[i] - b[i])
	}
	return total, nil
}

// Similarity returns the count-weighted score: the sum over left of
// value × occurrences of that value in right.
func Similarity(left, right []int) int {
	counts := make(map[int]int, len(right))
	for _, v := range right {
		counts[v]++
	}
	score := 0
	for _, v := range left {
		score += v * counts[v]
	}
	return score
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
