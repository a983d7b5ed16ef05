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

func TestSummarizeVoterFile(t *testing.T) {
	env := setupTestRouter(t)

	t.Run("Happy path - header plus two rows", func(t *testing.T) {
		content := "voter_id,first_name,last_name,address,city,zip,precinct,party,registration_date\n" +
			"V001,Maria,Lopez,12 Oak St,Springfield,62704,P-12,D,2019-05-01\n" +
			"V002,James,Carter,48 Elm Ave,Springfield,62704,P-14,R,2021-11-12\n"

		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/voterfile/summary",
			models.VoterFileSummaryRequest{Content: content}, nil)

		require.Equal(t, http.StatusOK, res.Code)

		var parsed models.VoterFileSummaryResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &parsed))
		assert.Len(t, parsed.Voters, 2)
		assert.Equal(t, 2, parsed.Summary.Total)
		assert.Equal(t, 1, parsed.Summary.ByParty["D"])
		assert.Equal(t, 1, parsed.Summary.ByParty["R"])
	})

	t.Run("Empty content is rejected", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/voterfile/summary",
			models.VoterFileSummaryRequest{Content: ""}, nil)

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Malformed rows degrade to placeholders, never an error", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/voterfile/summary",
			models.VoterFileSummaryRequest{Content: "header\nV001\n"}, nil)

		require.Equal(t, http.StatusOK, res.Code)

		var parsed models.VoterFileSummaryResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &parsed))
		require.Len(t, parsed.Voters, 1)
		assert.Equal(t, "V001", parsed.Voters[0].VoterID)
		assert.Equal(t, "unknown", parsed.Voters[0].Party)
	})
}
