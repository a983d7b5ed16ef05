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

func TestAdminEndpoints(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "secret-token")
	adminHeaders := map[string]string{"x-admin-token": "secret-token"}

	env := setupTestRouter(t)
	seedProfile(t, env, "ADM001")

	t.Run("Requests without the admin token are rejected", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/admin/profiles", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Happy path - list profiles", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/admin/profiles", nil, adminHeaders)
		require.Equal(t, http.StatusOK, res.Code)

		var profiles []models.ProfileResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &profiles))
		assert.Len(t, profiles, 1)
	})

	t.Run("Happy path - reset drafts", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/assistant/draft", models.DraftRequest{
			ProfileID: "ADM001",
			Kind:      "social_post",
			Topic:     "election day",
		}, nil)
		require.Equal(t, http.StatusOK, res.Code)

		resetRes := testutils.PerformRequest(env.router, http.MethodPost, "/api/admin/drafts/reset", nil, adminHeaders)
		require.Equal(t, http.StatusOK, resetRes.Code)

		listRes := testutils.PerformRequest(env.router, http.MethodGet, "/api/assistant/drafts/ADM001", nil, nil)
		require.Equal(t, http.StatusOK, listRes.Code)

		var list models.DraftListResponse
		require.NoError(t, json.Unmarshal(listRes.Body.Bytes(), &list))
		assert.Empty(t, list.Drafts)
	})

	t.Run("Happy path - delete profile", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodDelete, "/api/admin/profiles/ADM001", nil, adminHeaders)
		require.Equal(t, http.StatusOK, res.Code)

		getRes := testutils.PerformRequest(env.router, http.MethodGet, profilePath("ADM001", ""), nil, nil)
		assert.Equal(t, http.StatusNotFound, getRes.Code)
	})
}
