package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeVoteGoal(t *testing.T) {
	t.Run("Happy path - head to head race", func(t *testing.T) {
		goal := ComputeVoteGoal(100000, 0.5, 0.05, 1)

		assert.Equal(t, 50000, goal.ExpectedTotalVotes)
		assert.Equal(t, 25001, goal.VotesNeededToWin)
		assert.Equal(t, 2500, goal.MarginForSafety)
		assert.Equal(t, 27501, goal.TargetVoteGoal)
	})

	t.Run("Happy path - multi candidate field uses plurality share", func(t *testing.T) {
		goal := ComputeVoteGoal(100000, 0.5, 0.05, 3)

		assert.Equal(t, 50000, goal.ExpectedTotalVotes)
		assert.Equal(t, 20000, goal.VotesNeededToWin)
		assert.Equal(t, 22500, goal.TargetVoteGoal)
	})

	t.Run("Target is always threshold plus margin", func(t *testing.T) {
		cases := []struct {
			registered int
			turnout    float64
			margin     float64
			opponents  int
		}{
			{0, 0, 0.05, 1},
			{1, 1, 0.05, 1},
			{12345, 0.37, 0.1, 1},
			{12345, 0.37, 0.1, 4},
			{9000000, 0.62, 0.02, 2},
		}

		for _, c := range cases {
			goal := ComputeVoteGoal(c.registered, c.turnout, c.margin, c.opponents)
			assert.Equal(t, goal.VotesNeededToWin+goal.MarginForSafety, goal.TargetVoteGoal)
		}
	})

	t.Run("Zero registered voters still yields a majority threshold of one", func(t *testing.T) {
		goal := ComputeVoteGoal(0, 0.5, 0.05, 1)

		assert.Equal(t, 0, goal.ExpectedTotalVotes)
		assert.Equal(t, 1, goal.VotesNeededToWin)
		assert.Equal(t, 1, goal.TargetVoteGoal)
	})

	t.Run("Breakdown starts at zero", func(t *testing.T) {
		goal := ComputeVoteGoal(50000, 0.4, 0.05, 1)

		assert.Equal(t, VoteGoalBreakdown{}, goal.Breakdown)
	})

	t.Run("Turnout percentage is reported as a percentage", func(t *testing.T) {
		goal := ComputeVoteGoal(100000, 0.5, 0.05, 1)

		assert.InDelta(t, 50.0, goal.ExpectedTurnoutPercentage, 0.0001)
	})
}
