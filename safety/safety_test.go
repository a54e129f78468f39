package safety_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/stepsafe/safety"
)

// SafetySuite exercises Safe and SafeWithOneRemoval under various scenarios.
type SafetySuite struct {
	suite.Suite
}

// TestVacuousReports verifies that empty and singleton reports are safe:
// they have no steps, so there is nothing to violate.
func (s *SafetySuite) TestVacuousReports() {
	require.True(s.T(), safety.IsSafe(safety.Report{}))
	require.True(s.T(), safety.IsSafe(safety.Report{42}))
	require.True(s.T(), safety.IsSafe(safety.Report{-7}))
}

// TestFlatStep verifies that any repeated value makes a report unsafe,
// regardless of where the repetition occurs.
func (s *SafetySuite) TestFlatStep() {
	require.False(s.T(), safety.IsSafe(safety.Report{5, 5}))
	require.False(s.T(), safety.IsSafe(safety.Report{0, 0}))
	require.False(s.T(), safety.IsSafe(safety.Report{1, 2, 2, 3}), "flat step in the middle")
}

// TestDirectionConsistency verifies that direction is decided globally:
// one step against the prevailing sign fails the whole sequence.
func (s *SafetySuite) TestDirectionConsistency() {
	require.True(s.T(), safety.IsSafe(safety.Report{1, 2, 3, 4}))
	require.True(s.T(), safety.IsSafe(safety.Report{4, 3, 2, 1}))
	require.False(s.T(), safety.IsSafe(safety.Report{1, 2, 3, 2}), "sign flip on the last step")
	require.False(s.T(), safety.IsSafe(safety.Report{3, 1, 2, 4}), "in-bound magnitudes, mixed signs")
}

// TestStepBound verifies the inclusive magnitude bound on every step.
func (s *SafetySuite) TestStepBound() {
	require.True(s.T(), safety.IsSafe(safety.Report{1, 4, 7}), "step of exactly 3 is allowed")
	require.False(s.T(), safety.IsSafe(safety.Report{1, 5, 6}), "first step of 4 exceeds the bound")
	require.False(s.T(), safety.IsSafe(safety.Report{10, 6, 5}), "drop of 4 exceeds the bound")
}

// TestOneRemovalLiteral pins the worked scenario: [1 3 2 4 5] is unsafe
// directly (sign flip at the second step) but removing the 3 at index 1
// yields [1 2 4 5], safe with steps 1, 2, 1.
func (s *SafetySuite) TestOneRemovalLiteral() {
	r := safety.Report{1, 3, 2, 4, 5}
	require.False(s.T(), safety.IsSafe(r))
	require.True(s.T(), safety.IsSafeWithOneRemoval(r))
}

// TestOneRemovalEndpoints verifies that deleting the first or last element
// is considered, not just interior elements.
func (s *SafetySuite) TestOneRemovalEndpoints() {
	require.True(s.T(), safety.IsSafeWithOneRemoval(safety.Report{9, 1, 2, 3}), "drop the leading 9")
	require.True(s.T(), safety.IsSafeWithOneRemoval(safety.Report{1, 2, 3, 9}), "drop the trailing 9")
}

// TestOneRemovalInsufficient verifies that two faults cannot be tolerated.
func (s *SafetySuite) TestOneRemovalInsufficient() {
	require.False(s.T(), safety.IsSafeWithOneRemoval(safety.Report{1, 2, 7, 8, 9}), "jump of 5")
	require.False(s.T(), safety.IsSafeWithOneRemoval(safety.Report{9, 7, 6, 2, 1}), "drop of 4")
	require.False(s.T(), safety.IsSafeWithOneRemoval(safety.Report{1, 9, 1, 9, 1}))
}

// TestRemovalRelaxationMonotonic verifies that IsSafe implies
// IsSafeWithOneRemoval across a mixed case table.
func (s *SafetySuite) TestRemovalRelaxationMonotonic() {
	cases := []safety.Report{
		{},
		{3},
		{7, 6, 4, 2, 1},
		{1, 2, 7, 8, 9},
		{9, 7, 6, 2, 1},
		{1, 3, 2, 4, 5},
		{8, 6, 4, 4, 1},
		{1, 3, 6, 7, 9},
		{5, 5},
		{1, 2, 3, 2},
	}
	for _, r := range cases {
		if safety.IsSafe(r) {
			require.True(s.T(), safety.IsSafeWithOneRemoval(r), "safe report %v must stay safe under the relaxation", r)
		}
	}
}

// TestCustomBounds verifies options-aware evaluation with widened bounds.
func (s *SafetySuite) TestCustomBounds() {
	opts := safety.Options{MinStep: 1, MaxStep: 5}
	ok, err := safety.Safe(safety.Report{1, 5, 6}, &opts)
	require.NoError(s.T(), err)
	require.True(s.T(), ok, "step of 4 fits within MaxStep=5")

	ok, err = safety.Safe(safety.Report{1, 5, 6}, nil)
	require.NoError(s.T(), err)
	require.False(s.T(), ok, "nil opts must mean the default [1,3] bound")
}

// TestBadBounds verifies that invalid bounds surface ErrBadBounds.
func (s *SafetySuite) TestBadBounds() {
	bad := safety.Options{MinStep: 0, MaxStep: 3}
	_, err := safety.Safe(safety.Report{1, 2}, &bad)
	require.ErrorIs(s.T(), err, safety.ErrBadBounds)

	inverted := safety.Options{MinStep: 3, MaxStep: 1}
	_, err = safety.SafeWithOneRemoval(safety.Report{1, 2}, &inverted)
	require.ErrorIs(s.T(), err, safety.ErrBadBounds)
}

// TestInputNotMutated verifies that the removal search never touches the
// original report.
func (s *SafetySuite) TestInputNotMutated() {
	r := safety.Report{1, 3, 2, 4, 5}
	_ = safety.IsSafeWithOneRemoval(r)
	require.Equal(s.T(), safety.Report{1, 3, 2, 4, 5}, r)
}

func TestSafetySuite(t *testing.T) {
	suite.Run(t, new(SafetySuite))
}

// TestSteps verifies the consecutive-difference helper.
func TestSteps(t *testing.T) {
	require.Nil(t, safety.Steps(safety.Report{}))
	require.Nil(t, safety.Steps(safety.Report{9}))
	require.Equal(t, []int{2, -1, 2, 1}, safety.Steps(safety.Report{1, 3, 2, 4, 5}))
}

// TestStepSet verifies deduplication and ascending order.
func TestStepSet(t *testing.T) {
	require.Nil(t, safety.StepSet(safety.Report{7}))
	require.Equal(t, []int{1, 2}, safety.StepSet(safety.Report{1, 2, 4, 5, 6}))
	require.Equal(t, []int{-1, 2}, safety.StepSet(safety.Report{1, 3, 2, 4}))
}
