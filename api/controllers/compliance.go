package controllers

import (
	"net/http"

	"github.com/Felipeu28/CampaignControl-sub001/api/models"
	"github.com/Felipeu28/CampaignControl-sub001/campaign"
	"github.com/Felipeu28/CampaignControl-sub001/logging"
	"github.com/Felipeu28/CampaignControl-sub001/storage"
	"github.com/gin-gonic/gin"
)

type ComplianceController struct {
	profilesStorage storage.CampaignProfileStorage
}

func NewComplianceController(profilesStorage storage.CampaignProfileStorage) *ComplianceController {
	return &ComplianceController{
		profilesStorage: profilesStorage,
	}
}

func (c *ComplianceController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.GET("/compliance/channels", c.listChannels)
	group.POST("/compliance/disclaimer", c.generateDisclaimer)
}

// listChannels godoc
// @Summary List media channels with disclaimer rules
// @Tags compliance
// @Produce json
// @Success 200 {array} models.ChannelResponse
// @Router /api/compliance/channels [get]
func (c *ComplianceController) listChannels(g *gin.Context) {
	channels := make([]models.ChannelResponse, 0, len(models.ValidChannels))
	for key, label := range models.ValidChannels {
		channels = append(channels, models.ChannelResponse{
			Key:   string(key),
			Label: label,
		})
	}
	g.JSON(http.StatusOK, channels)
}

// generateDisclaimer godoc
// @Summary Generate the legal disclaimer for one channel
// @Description Renders the channel's required attribution text; missing fields become bracketed placeholders
// @Tags compliance
// @Accept json
// @Produce json
// @Param request body models.DisclaimerRequest true "Disclaimer inputs"
// @Success 200 {object} models.DisclaimerResponse
// @Failure 400 {object} models.ErrorResponse "Unknown channel"
// @Router /api/compliance/disclaimer [post]
func (c *ComplianceController) generateDisclaimer(g *gin.Context) {
	var req models.DisclaimerRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	channel := campaign.Channel(req.Channel)
	if _, ok := models.ValidChannels[channel]; !ok {
		logging.Log.Warnf("COMPLIANCE: disclaimer requested for unknown channel: %s", req.Channel)
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid channel"})
		return
	}

	// Profile fields fill whatever the request left blank.
	if req.ProfileID != "" {
		if profile, err := c.profilesStorage.Get(g.Request.Context(), req.ProfileID); err == nil {
			if req.CandidateName == "" {
				req.CandidateName = profile.CandidateName
			}
			if req.TreasurerName == "" {
				req.TreasurerName = profile.Compliance.TreasurerName
			}
			if req.CampaignAddress == "" {
				req.CampaignAddress = profile.Compliance.CampaignAddress
			}
		} else {
			logging.Log.Warnf("COMPLIANCE: could not load profile %s: %v", req.ProfileID, err)
		}
	}

	text := campaign.GenerateDisclaimer(channel, req.CandidateName, req.TreasurerName, req.CampaignAddress)
	g.JSON(http.StatusOK, models.DisclaimerResponse{
		Channel: req.Channel,
		Text:    text,
	})
}
