package models

import "github.com/Felipeu28/CampaignControl-sub001/campaign"

type VoterFileSummaryRequest struct {
	// Raw delimited text exactly as uploaded from the dashboard.
	Content string `json:"content"`
}

type VoterFileSummaryResponse struct {
	Voters  []campaign.VoterRecord    `json:"voters"`
	Summary campaign.VoterFileSummary `json:"summary"`
}
