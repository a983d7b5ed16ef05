package models

import (
	"time"

	"github.com/Felipeu28/CampaignControl-sub001/storage"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type DistrictIntel struct {
	TotalRegisteredVoters int     `json:"totalRegisteredVoters"`
	HistoricalTurnout     float64 `json:"historicalTurnout"`
	OpponentCount         int     `json:"opponentCount"`
}

type Opponent struct {
	Name      string `json:"name"`
	Party     string `json:"party"`
	Incumbent bool   `json:"incumbent"`
	Notes     string `json:"notes"`
}

type FilingDeadline struct {
	Name string    `json:"name"`
	Due  time.Time `json:"due"`
}

type ComplianceInfo struct {
	TreasurerName   string           `json:"treasurerName"`
	CampaignAddress string           `json:"campaignAddress"`
	FilingDeadlines []FilingDeadline `json:"filingDeadlines"`
}

type ProfileCreateRequest struct {
	CandidateName string         `json:"candidateName"`
	Office        string         `json:"office"`
	District      string         `json:"district"`
	Party         string         `json:"party"`
	DistrictIntel DistrictIntel  `json:"districtIntel"`
	Opposition    []Opponent     `json:"opposition"`
	Compliance    ComplianceInfo `json:"compliance"`
}

type ProfileUpdateRequest struct {
	CandidateName string         `json:"candidateName"`
	Office        string         `json:"office"`
	District      string         `json:"district"`
	Party         string         `json:"party"`
	DistrictIntel DistrictIntel  `json:"districtIntel"`
	Opposition    []Opponent     `json:"opposition"`
	Compliance    ComplianceInfo `json:"compliance"`
}

type ProfileResponse struct {
	ID            string            `json:"id"`
	CandidateName string            `json:"candidateName"`
	Office        string            `json:"office"`
	District      string            `json:"district"`
	Party         string            `json:"party"`
	DistrictIntel DistrictIntel     `json:"districtIntel"`
	Opposition    []Opponent        `json:"opposition"`
	Compliance    ComplianceInfo    `json:"compliance"`
	Budget        BudgetResponse    `json:"budget"`
	VoteGoal      *VoteGoalResponse `json:"voteGoal,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func TransformProfileFromStorage(p *storage.CampaignProfile) ProfileResponse {
	resp := ProfileResponse{
		ID:            p.ID,
		CandidateName: p.CandidateName,
		Office:        p.Office,
		District:      p.District,
		Party:         p.Party,
		DistrictIntel: DistrictIntel{
			TotalRegisteredVoters: p.DistrictIntel.TotalRegisteredVoters,
			HistoricalTurnout:     p.DistrictIntel.HistoricalTurnout,
			OpponentCount:         p.DistrictIntel.OpponentCount,
		},
		Opposition: make([]Opponent, 0, len(p.Opposition)),
		Compliance: ComplianceInfo{
			TreasurerName:   p.Compliance.TreasurerName,
			CampaignAddress: p.Compliance.CampaignAddress,
			FilingDeadlines: make([]FilingDeadline, 0, len(p.Compliance.FilingDeadlines)),
		},
		Budget:    TransformBudgetFromStorage(p.Budget),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	for _, o := range p.Opposition {
		resp.Opposition = append(resp.Opposition, Opponent(o))
	}
	for _, d := range p.Compliance.FilingDeadlines {
		resp.Compliance.FilingDeadlines = append(resp.Compliance.FilingDeadlines, FilingDeadline(d))
	}
	if p.VoteGoal != nil {
		goal := TransformVoteGoalFromStorage(p.VoteGoal)
		resp.VoteGoal = &goal
	}
	return resp
}

// TransformProfileToStorage builds a fresh storage row from a create request.
func TransformProfileToStorage(id string, req *ProfileCreateRequest) *storage.CampaignProfile {
	p := &storage.CampaignProfile{
		ID:            id,
		CandidateName: req.CandidateName,
		Office:        req.Office,
		District:      req.District,
		Party:         req.Party,
		DistrictIntel: storage.DistrictIntel(req.DistrictIntel),
		Opposition:    make([]storage.Opponent, 0, len(req.Opposition)),
		Compliance: storage.ComplianceInfo{
			TreasurerName:   req.Compliance.TreasurerName,
			CampaignAddress: req.Compliance.CampaignAddress,
			FilingDeadlines: make([]storage.FilingDeadline, 0, len(req.Compliance.FilingDeadlines)),
		},
		Budget: storage.BudgetSnapshot{Categories: map[string]int{}},
	}
	for _, o := range req.Opposition {
		p.Opposition = append(p.Opposition, storage.Opponent(o))
	}
	for _, d := range req.Compliance.FilingDeadlines {
		p.Compliance.FilingDeadlines = append(p.Compliance.FilingDeadlines, storage.FilingDeadline(d))
	}
	return p
}
