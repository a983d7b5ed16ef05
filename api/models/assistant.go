package models

import "github.com/Felipeu28/CampaignControl-sub001/storage"

type ClassifyRequest struct {
	Message string `json:"message"`
}

type ClassifyResponse struct {
	Need string `json:"need"`
}

type DraftRequest struct {
	ProfileID string `json:"profileId"`
	Kind      string `json:"kind"`
	Topic     string `json:"topic"`
	Tone      string `json:"tone,omitempty"`
	Model     string `json:"model,omitempty"`
}

type DraftResponse struct {
	DraftID string `json:"draftId"`
	Kind    string `json:"kind"`
	Body    string `json:"body"`
	Model   string `json:"model"`
}

type ImageRequest struct {
	ProfileID   string `json:"profileId,omitempty"`
	Subject     string `json:"subject"`
	AspectRatio string `json:"aspectRatio,omitempty"`
	Quality     string `json:"quality,omitempty"`
	Model       string `json:"model,omitempty"`
}

type ImageResponse struct {
	URL string `json:"url"`
}

type DraftListResponse struct {
	ProfileID string                  `json:"profileId"`
	Drafts    []*storage.ContentDraft `json:"drafts"`
}
