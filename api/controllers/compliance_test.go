package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	testutils "github.com/Felipeu28/CampaignControl-sub001/api/controllers/testing"
	"github.com/Felipeu28/CampaignControl-sub001/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDisclaimer(t *testing.T) {
	env := setupTestRouter(t)

	generate := func(t *testing.T, req models.DisclaimerRequest) models.DisclaimerResponse {
		t.Helper()
		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/compliance/disclaimer", req, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var parsed models.DisclaimerResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &parsed))
		return parsed
	}

	t.Run("Happy path - SMS disclaimer", func(t *testing.T) {
		resp := generate(t, models.DisclaimerRequest{
			Channel:         "sms",
			CandidateName:   "Jane Doe",
			TreasurerName:   "John Smith",
			CampaignAddress: "1 Main St",
		})

		assert.Contains(t, resp.Text, "Reply STOP to opt-out.")
		assert.NotContains(t, resp.Text, "RIGHT-OF-WAY")
	})

	t.Run("Invalid channel is rejected", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/compliance/disclaimer",
			models.DisclaimerRequest{Channel: "skywriting"}, nil)

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Missing fields are filled from the stored profile", func(t *testing.T) {
		seedProfile(t, env, "COMP01")

		resp := generate(t, models.DisclaimerRequest{
			Channel:   "print",
			ProfileID: "COMP01",
		})

		assert.Contains(t, resp.Text, "Jane Doe")
		assert.Contains(t, resp.Text, "John Smith, Treasurer")
		assert.Contains(t, resp.Text, "1 Main St")
	})

	t.Run("Without a profile missing fields become placeholders", func(t *testing.T) {
		resp := generate(t, models.DisclaimerRequest{Channel: "digital"})

		assert.Contains(t, resp.Text, "[CANDIDATE NAME]")
	})
}

func TestListChannels(t *testing.T) {
	env := setupTestRouter(t)

	res := testutils.PerformRequest(env.router, http.MethodGet, "/api/compliance/channels", nil, nil)
	require.Equal(t, http.StatusOK, res.Code)

	var channels []models.ChannelResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &channels))
	assert.Len(t, channels, 5)
}
