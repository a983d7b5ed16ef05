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

func TestProfileLifecycle(t *testing.T) {
	env := setupTestRouter(t)

	t.Run("Happy path - create, read, update", func(t *testing.T) {
		createRes := testutils.PerformRequest(env.router, http.MethodPost, "/api/profile", models.ProfileCreateRequest{
			CandidateName: "Jane Doe",
			Office:        "City Council",
			District:      "District 4",
			Party:         "Independent",
			DistrictIntel: models.DistrictIntel{
				TotalRegisteredVoters: 100000,
				HistoricalTurnout:     0.5,
				OpponentCount:         1,
			},
			Compliance: models.ComplianceInfo{
				TreasurerName:   "John Smith",
				CampaignAddress: "1 Main St",
			},
		}, nil)
		require.Equal(t, http.StatusOK, createRes.Code)

		var created models.ProfileResponse
		require.NoError(t, json.Unmarshal(createRes.Body.Bytes(), &created))
		require.NotEmpty(t, created.ID)
		assert.Equal(t, "Jane Doe", created.CandidateName)
		assert.Equal(t, 100000, created.DistrictIntel.TotalRegisteredVoters)

		getRes := testutils.PerformRequest(env.router, http.MethodGet, profilePath(created.ID, ""), nil, nil)
		require.Equal(t, http.StatusOK, getRes.Code)

		updateRes := testutils.PerformRequest(env.router, http.MethodPut, profilePath(created.ID, ""), models.ProfileUpdateRequest{
			CandidateName: "Jane Doe",
			Office:        "Mayor",
			District:      "Citywide",
			Party:         "Independent",
			DistrictIntel: models.DistrictIntel{
				TotalRegisteredVoters: 250000,
				HistoricalTurnout:     0.42,
				OpponentCount:         2,
			},
			Opposition: []models.Opponent{
				{Name: "Pat Riley", Party: "D", Incumbent: true},
			},
			Compliance: models.ComplianceInfo{
				TreasurerName:   "John Smith",
				CampaignAddress: "1 Main St",
			},
		}, nil)
		require.Equal(t, http.StatusOK, updateRes.Code)

		var updated models.ProfileResponse
		require.NoError(t, json.Unmarshal(updateRes.Body.Bytes(), &updated))
		assert.Equal(t, "Mayor", updated.Office)
		require.Len(t, updated.Opposition, 1)
		assert.True(t, updated.Opposition[0].Incumbent)
	})

	t.Run("Happy path - list", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/profile", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var profiles []models.ProfileResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &profiles))
		assert.Len(t, profiles, 1)
	})

	t.Run("Create without a candidate name is rejected", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/profile",
			models.ProfileCreateRequest{}, nil)

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unknown profile returns 404", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodGet, profilePath("MISSING1", ""), nil, nil)

		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}
