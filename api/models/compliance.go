package models

type DisclaimerRequest struct {
	Channel         string `json:"channel"`
	CandidateName   string `json:"candidateName"`
	TreasurerName   string `json:"treasurerName"`
	CampaignAddress string `json:"campaignAddress"`
	// When set, missing fields are filled from the stored profile.
	ProfileID string `json:"profileId,omitempty"`
}

type DisclaimerResponse struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type ChannelResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
