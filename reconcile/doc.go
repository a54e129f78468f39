// Package reconcile compares two integer lists the way a pair of
// independently collected columns gets reconciled: by total gap after
// sorting, and by a count-weighted similarity score.
//
// What:
//
//   - Distance: sort both lists ascending (on copies — inputs are never
//     mutated), then sum |left[i] − right[i]| pairwise. Requires equal
//     lengths.
//   - Similarity: for every left value, add value × occurrences of that
//     value in the right list. No length precondition — the weighting is
//     well-defined regardless.
//
// Complexity:
//
//   - Distance:   O(n log n) time, O(n) memory (the sorted copies).
//   - Similarity: O(n + m) time, O(m) memory (right-side count map).
//
// Errors:
//
//   - ErrLengthMismatch: Distance over lists of different lengths.
package reconcile
