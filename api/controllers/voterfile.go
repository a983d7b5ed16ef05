package controllers

import (
	"net/http"

	"github.com/Felipeu28/CampaignControl-sub001/api/models"
	"github.com/Felipeu28/CampaignControl-sub001/campaign"
	"github.com/Felipeu28/CampaignControl-sub001/logging"
	"github.com/gin-gonic/gin"
)

type VoterFileController struct{}

func NewVoterFileController() *VoterFileController {
	return &VoterFileController{}
}

func (c *VoterFileController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/voterfile/summary", c.summarizeVoterFile)
}

// summarizeVoterFile godoc
// @Summary Parse and summarize a voter file
// @Description Parses delimited voter data into records and aggregate counts; nothing is persisted
// @Tags voterfile
// @Accept json
// @Produce json
// @Param request body models.VoterFileSummaryRequest true "Raw voter file content"
// @Success 200 {object} models.VoterFileSummaryResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/voterfile/summary [post]
func (c *VoterFileController) summarizeVoterFile(g *gin.Context) {
	var req models.VoterFileSummaryRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.Content == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "content is required"})
		return
	}

	result := campaign.ParseVoterFile(req.Content)
	logging.Log.Infof("VOTERFILE: summarized %d records across %d precincts",
		result.Summary.Total, len(result.Summary.ByPrecinct))

	g.JSON(http.StatusOK, models.VoterFileSummaryResponse{
		Voters:  result.Voters,
		Summary: result.Summary,
	})
}
