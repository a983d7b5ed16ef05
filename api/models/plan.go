package models

import (
	"github.com/Felipeu28/CampaignControl-sub001/campaign"
	"github.com/Felipeu28/CampaignControl-sub001/storage"
)

type VoteGoalRequest struct {
	TotalRegisteredVoters int      `json:"totalRegisteredVoters"`
	HistoricalTurnout     float64  `json:"historicalTurnout"`
	MarginForSafety       *float64 `json:"marginForSafety,omitempty"`
	OpponentCount         int      `json:"opponentCount"`
	// When set, the computed goal is also saved onto the profile.
	ProfileID string `json:"profileId,omitempty"`
}

type VoteGoalBreakdown struct {
	HardSupport      int `json:"hardSupport"`
	SoftSupport      int `json:"softSupport"`
	PersuasionTarget int `json:"persuasionTarget"`
	GOTVTarget       int `json:"gotvTarget"`
}

type VoteGoalResponse struct {
	TotalRegisteredVoters     int               `json:"totalRegisteredVoters"`
	ExpectedTurnoutPercentage float64           `json:"expectedTurnoutPercentage"`
	ExpectedTotalVotes        int               `json:"expectedTotalVotes"`
	VotesNeededToWin          int               `json:"votesNeededToWin"`
	MarginForSafety           int               `json:"marginForSafety"`
	TargetVoteGoal            int               `json:"targetVoteGoal"`
	Breakdown                 VoteGoalBreakdown `json:"breakdown"`
}

func TransformVoteGoal(goal campaign.VoteGoal) VoteGoalResponse {
	return VoteGoalResponse{
		TotalRegisteredVoters:     goal.TotalRegisteredVoters,
		ExpectedTurnoutPercentage: goal.ExpectedTurnoutPercentage,
		ExpectedTotalVotes:        goal.ExpectedTotalVotes,
		VotesNeededToWin:          goal.VotesNeededToWin,
		MarginForSafety:           goal.MarginForSafety,
		TargetVoteGoal:            goal.TargetVoteGoal,
		Breakdown:                 VoteGoalBreakdown(goal.Breakdown),
	}
}

func TransformVoteGoalFromStorage(goal *storage.VoteGoalSnapshot) VoteGoalResponse {
	return VoteGoalResponse{
		TotalRegisteredVoters:     goal.TotalRegisteredVoters,
		ExpectedTurnoutPercentage: goal.ExpectedTurnoutPercentage,
		ExpectedTotalVotes:        goal.ExpectedTotalVotes,
		VotesNeededToWin:          goal.VotesNeededToWin,
		MarginForSafety:           goal.MarginForSafety,
		TargetVoteGoal:            goal.TargetVoteGoal,
	}
}

func TransformVoteGoalToStorage(goal campaign.VoteGoal) *storage.VoteGoalSnapshot {
	return &storage.VoteGoalSnapshot{
		TotalRegisteredVoters:     goal.TotalRegisteredVoters,
		ExpectedTurnoutPercentage: goal.ExpectedTurnoutPercentage,
		ExpectedTotalVotes:        goal.ExpectedTotalVotes,
		VotesNeededToWin:          goal.VotesNeededToWin,
		MarginForSafety:           goal.MarginForSafety,
		TargetVoteGoal:            goal.TargetVoteGoal,
	}
}

type BudgetSetRequest struct {
	// Raw user input, may carry thousands separators or garbage.
	Amount string `json:"amount"`
}

type BudgetResponse struct {
	Categories           map[string]int     `json:"categories"`
	TotalProjectedNeeded int                `json:"totalProjectedNeeded"`
	Percentages          map[string]float64 `json:"percentages"`
}

func TransformBudgetFromStorage(b storage.BudgetSnapshot) BudgetResponse {
	resp := BudgetResponse{
		Categories:           make(map[string]int, len(b.Categories)),
		TotalProjectedNeeded: b.TotalProjectedNeeded,
		Percentages:          make(map[string]float64, len(b.Categories)),
	}
	for name, amount := range b.Categories {
		resp.Categories[name] = amount
		resp.Percentages[name] = campaign.PercentageOf(amount, b.TotalProjectedNeeded)
	}
	return resp
}
