// Package safety decides whether an integer sequence keeps a bounded
// monotonic step from end to end, directly or after one element removal.
//
// What:
//
//   - Report is one row of integers; Steps/StepSet expose its consecutive
//     differences.
//   - Safe reports a sequence whose steps all share one sign and whose
//     magnitudes stay within [MinStep, MaxStep] (default [1, 3]).
//   - SafeWithOneRemoval relaxes Safe by allowing exactly one element to be
//     deleted, trying every single-deletion candidate in turn.
//
// Why:
//
//   - Sensor rows: reject readings that stall, jump, or reverse trend.
//   - Data auditing: count rows that pass a gradient rule, with and without
//     a single-fault tolerance.
//
// Semantics:
//
//   - Direction is global: one step against the prevailing sign fails the
//     whole sequence, even if its magnitude is in bounds.
//   - A zero step (repeated value) is never safe — it belongs to neither
//     direction.
//   - Length 0 or 1 is vacuously safe: there are no steps to violate the
//     rule. The empty case is a deliberate convention, chosen for
//     consistency with the singleton case.
//
// Complexity:
//
//   - Safe:                O(n) time, O(1) memory.
//   - SafeWithOneRemoval:  O(n²) time, O(n) memory — n candidates × O(n)
//     recheck. Deliberate brute force; reports are tens of elements.
//
// Options:
//
//   - Options.MinStep / Options.MaxStep: inclusive magnitude bounds on every
//     step. DefaultOptions() returns {1, 3}.
//
// Errors:
//
//   - ErrBadBounds: MinStep < 1 or MaxStep < MinStep.
//
// See examples in example_test.go.
package safety
