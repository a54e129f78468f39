// Package safety defines the report type, options, and sentinel errors
// for the safety subpackage of github.com/katalvlaran/stepsafe.
package safety

import (
	"errors"
	"fmt"
)

// Sentinel errors for safety evaluation.
var (
	// ErrBadBounds indicates an Options value with MinStep < 1 or MaxStep < MinStep.
	ErrBadBounds = errors.New("safety: step bounds must satisfy 1 <= MinStep <= MaxStep")
)

// Report is one input row: an ordered sequence of integers.
// Reports are never mutated; deletion candidates are fresh copies.
type Report []int

// Options contains the tunable step bounds for safety evaluation.
//
// Fields:
//   - MinStep — minimum allowed step magnitude, inclusive. Must be ≥ 1,
//     so a flat step (repeated value) can never be safe.
//   - MaxStep — maximum allowed step magnitude, inclusive. Must be ≥ MinStep.
//
// Example:
//
//	opts := safety.DefaultOptions() // MinStep=1, MaxStep=3
//	ok, err := safety.Safe(report, &opts)
//	if err != nil {
//	  // handle ErrBadBounds
//	}
type Options struct {
	MinStep int
	MaxStep int
}

// DefaultOptions returns an Options with the canonical bounds:
// MinStep=1, MaxStep=3 (steps drawn from {1,2,3} or {-1,-2,-3}).
func DefaultOptions() Options {
	return Options{
		MinStep: 1,
		MaxStep: 3,
	}
}

// validate reports ErrBadBounds for out-of-order or sub-unit bounds.
func (o Options) validate() error {
	if o.MinStep < 1 || o.MaxStep < o.MinStep {
		return fmt.Errorf("%w: MinStep=%d, MaxStep=%d", ErrBadBounds, o.MinStep, o.MaxStep)
	}
	return nil
}
