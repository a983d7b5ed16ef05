package storage

import "time"

type CampaignProfile struct {
	ID            string            `dynamodbav:"PK"`
	CandidateName string            `dynamodbav:"CandidateName"`
	Office        string            `dynamodbav:"Office"`
	District      string            `dynamodbav:"District"`
	Party         string            `dynamodbav:"Party"`
	DistrictIntel DistrictIntel     `dynamodbav:"DistrictIntel"`
	Opposition    []Opponent        `dynamodbav:"Opposition"`
	Compliance    ComplianceInfo    `dynamodbav:"Compliance"`
	Budget        BudgetSnapshot    `dynamodbav:"Budget"`
	VoteGoal      *VoteGoalSnapshot `dynamodbav:"VoteGoal"`
	CreatedAt     time.Time         `dynamodbav:"CreatedAt"`
	UpdatedAt     time.Time         `dynamodbav:"UpdatedAt"`
}

// DistrictIntel is the electorate data the vote-goal projection runs on.
type DistrictIntel struct {
	TotalRegisteredVoters int     `dynamodbav:"TotalRegisteredVoters"`
	HistoricalTurnout     float64 `dynamodbav:"HistoricalTurnout"`
	OpponentCount         int     `dynamodbav:"OpponentCount"`
}

type Opponent struct {
	Name      string `dynamodbav:"Name"`
	Party     string `dynamodbav:"Party"`
	Incumbent bool   `dynamodbav:"Incumbent"`
	Notes     string `dynamodbav:"Notes"`
}

type ComplianceInfo struct {
	TreasurerName   string           `dynamodbav:"TreasurerName"`
	CampaignAddress string           `dynamodbav:"CampaignAddress"`
	FilingDeadlines []FilingDeadline `dynamodbav:"FilingDeadlines"`
}

type FilingDeadline struct {
	Name string    `dynamodbav:"Name"`
	Due  time.Time `dynamodbav:"Due"`
}

type BudgetSnapshot struct {
	Categories           map[string]int `dynamodbav:"Categories"`
	TotalProjectedNeeded int            `dynamodbav:"TotalProjectedNeeded"`
}

type VoteGoalSnapshot struct {
	TotalRegisteredVoters     int     `dynamodbav:"TotalRegisteredVoters"`
	ExpectedTurnoutPercentage float64 `dynamodbav:"ExpectedTurnoutPercentage"`
	ExpectedTotalVotes        int     `dynamodbav:"ExpectedTotalVotes"`
	VotesNeededToWin          int     `dynamodbav:"VotesNeededToWin"`
	MarginForSafety           int     `dynamodbav:"MarginForSafety"`
	TargetVoteGoal            int     `dynamodbav:"TargetVoteGoal"`
}

type ContentDraft struct {
	ProfileID string    `dynamodbav:"PK" json:"profileId"`
	SortKey   string    `dynamodbav:"SK" json:"-"` // Unique composite of kind/draft id
	DraftID   string    `dynamodbav:"DraftID" json:"draftId"`
	Kind      string    `dynamodbav:"Kind" json:"kind"`
	Prompt    string    `dynamodbav:"Prompt" json:"prompt"`
	Body      string    `dynamodbav:"Body" json:"body"`
	Model     string    `dynamodbav:"Model" json:"model"`
	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
}
