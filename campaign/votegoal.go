package campaign

import "math"

// DefaultMarginForSafety is the vote buffer applied when a caller does not
// supply its own margin.
const DefaultMarginForSafety = 0.05

// pluralityShare is the vote share treated as a winning threshold in a
// multi-candidate field. A policy choice, not a guaranteed majority.
const pluralityShare = 0.40

// VoteGoalBreakdown holds the support tiers of a field plan. The calculator
// leaves them at zero; the campaign fills them in as canvassing data comes in.
type VoteGoalBreakdown struct {
	HardSupport      int `json:"hard_support"`
	SoftSupport      int `json:"soft_support"`
	PersuasionTarget int `json:"persuasion_target"`
	GOTVTarget       int `json:"gotv_target"`
}

type VoteGoal struct {
	TotalRegisteredVoters     int               `json:"total_registered_voters"`
	ExpectedTurnoutPercentage float64           `json:"expected_turnout_percentage"`
	ExpectedTotalVotes        int               `json:"expected_total_votes"`
	VotesNeededToWin          int               `json:"votes_needed_to_win"`
	MarginForSafety           int               `json:"margin_for_safety"`
	TargetVoteGoal            int               `json:"target_vote_goal"`
	Breakdown                 VoteGoalBreakdown `json:"breakdown"`
}

// ComputeVoteGoal projects the win threshold for a race. A head-to-head race
// (opponentCount == 1) needs a majority; a larger field uses the plurality
// share instead. historicalTurnout and marginForSafety are fractions in [0,1],
// clamped and defaulted by the caller.
func ComputeVoteGoal(totalRegistered int, historicalTurnout, marginForSafety float64, opponentCount int) VoteGoal {
	expectedTotalVotes := int(math.Round(float64(totalRegistered) * historicalTurnout))

	var votesNeededToWin int
	if opponentCount == 1 {
		votesNeededToWin = expectedTotalVotes/2 + 1
	} else {
		votesNeededToWin = int(math.Round(float64(expectedTotalVotes) * pluralityShare))
	}

	marginVotes := int(math.Round(float64(expectedTotalVotes) * marginForSafety))

	return VoteGoal{
		TotalRegisteredVoters:     totalRegistered,
		ExpectedTurnoutPercentage: historicalTurnout * 100,
		ExpectedTotalVotes:        expectedTotalVotes,
		VotesNeededToWin:          votesNeededToWin,
		MarginForSafety:           marginVotes,
		TargetVoteGoal:            votesNeededToWin + marginVotes,
	}
}
