package safety

import "sort"

// Safe — bounded monotonic step validation
//
// Description:
//
//	A report is safe when its consecutive steps all point the same way
//	(strictly increasing or strictly decreasing for the entire length)
//	and every step magnitude lies within [MinStep, MaxStep].
//	Equivalently, with default bounds: the set of distinct steps is a
//	subset of {1, 2, 3} or a subset of {-1, -2, -3}.
//
// Algorithm Outline:
//  1. Length 0 or 1 → safe (no steps exist).
//  2. Walk steps d = r[i] - r[i-1]:
//     d == 0                     → unsafe (flat step has no direction)
//     |d| outside [MinStep, MaxStep] → unsafe
//     d disagrees with both remaining direction hypotheses → unsafe
//  3. Survive the walk → safe.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
//
// Errors:
//   - ErrBadBounds — opts has MinStep < 1 or MaxStep < MinStep.

// Safe reports whether r keeps a bounded monotonic step end to end.
// A nil opts means DefaultOptions.
func Safe(r Report, opts *Options) (bool, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return false, err
	}
	return safe(r, o), nil
}

// SafeWithOneRemoval reports whether r is safe outright, or becomes safe
// after deleting exactly one element (order of the rest preserved).
// Every single-deletion candidate is tried; the search stops at the first
// success, though any order would yield the same verdict.
// A nil opts means DefaultOptions.
//
// Complexity: O(n²) time, O(n) memory — n candidates, O(n) recheck each.
func SafeWithOneRemoval(r Report, opts *Options) (bool, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return false, err
	}
	return safeWithOneRemoval(r, o), nil
}

// IsSafe is Safe under DefaultOptions. It cannot fail: every integer
// sequence, including empty and singleton, has a verdict.
func IsSafe(r Report) bool {
	return safe(r, DefaultOptions())
}

// IsSafeWithOneRemoval is SafeWithOneRemoval under DefaultOptions.
func IsSafeWithOneRemoval(r Report) bool {
	return safeWithOneRemoval(r, DefaultOptions())
}

// Steps returns the consecutive differences r[i+1]-r[i], in order.
// A report of length ≤ 1 has no steps and yields nil.
func Steps(r Report) []int {
	if len(r) < 2 {
		return nil
	}
	steps := make([]int, len(r)-1)
	for i := 1; i < len(r); i++ {
		steps[i-1] = r[i] - r[i-1]
	}
	return steps
}

// StepSet returns the distinct consecutive differences of r, ascending.
func StepSet(r Report) []int {
	seen := make(map[int]struct{})
	var set []int
	for _, d := range Steps(r) {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		set = append(set, d)
	}
	sort.Ints(set)
	return set
}

// safe is the single-pass core shared by all entry points.
// Direction hypotheses start true and are eliminated as steps arrive;
// losing both means the sequence reversed somewhere.
func safe(r Report, o Options) bool {
	if len(r) < 2 {
		return true
	}
	increasing, decreasing := true, true
	for i := 1; i < len(r); i++ {
		d := r[i] - r[i-1]
		switch {
		case d > 0:
			decreasing = false
		case d < 0:
			increasing = false
			d = -d
		default:
			// Flat step: belongs to neither direction.
			return false
		}
		if d < o.MinStep || d > o.MaxStep {
			return false
		}
		if !increasing && !decreasing {
			return false
		}
	}
	return true
}

// safeWithOneRemoval tries the untouched sequence first, then every
// single-deletion candidate, stopping at the first success.
func safeWithOneRemoval(r Report, o Options) bool {
	if safe(r, o) {
		return true
	}
	for i := range r {
		if safe(excise(r, i), o) {
			return true
		}
	}
	return false
}

// excise returns a copy of r with the element at index i removed,
// preserving the relative order of the rest.
func excise(r Report, i int) Report {
	out := make(Report, 0, len(r)-1)
	out = append(out, r[:i]...)
	return append(out, r[i+1:]...)
}
