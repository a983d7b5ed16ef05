package controllers

import (
	"net/http"

	"github.com/Felipeu28/CampaignControl-sub001/api/models"
	"github.com/Felipeu28/CampaignControl-sub001/api/transport"
	"github.com/Felipeu28/CampaignControl-sub001/logging"
	"github.com/Felipeu28/CampaignControl-sub001/storage"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	profilesStorage storage.CampaignProfileStorage
	draftsStorage   storage.ContentDraftStorage
}

func NewAdminController(profilesStorage storage.CampaignProfileStorage, draftsStorage storage.ContentDraftStorage) *AdminController {
	return &AdminController{
		profilesStorage: profilesStorage,
		draftsStorage:   draftsStorage,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin", transport.AdminAuthMiddleware())

	group.GET("/profiles", c.listProfiles)
	group.DELETE("/profiles/:id", c.deleteProfile)
	group.POST("/drafts/reset", c.resetDrafts)
}

// @Security AdminToken
// listProfiles godoc
// @Summary List all campaign profiles
// @Tags admin
// @Produce json
// @Success 200 {array} models.ProfileResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/profiles [get]
func (c *AdminController) listProfiles(g *gin.Context) {
	profiles, err := c.profilesStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to list profiles: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]models.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, models.TransformProfileFromStorage(p))
	}

	logging.Log.Infof("ADMIN: listed %d profiles", len(responses))
	g.JSON(http.StatusOK, responses)
}

// @Security AdminToken
// deleteProfile godoc
// @Summary Delete a campaign profile by ID
// @Tags admin
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/profiles/{id} [delete]
func (c *AdminController) deleteProfile(g *gin.Context) {
	id := g.Param("id")
	if id == "" {
		g.JSON(http.StatusBadRequest, gin.H{"error": "missing profile id"})
		return
	}
	if err := c.profilesStorage.Delete(g.Request.Context(), id); err != nil {
		logging.Log.Errorf("ADMIN: failed to delete profile %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logging.Log.Infof("ADMIN: deleted profile: %s", id)
	g.JSON(http.StatusOK, gin.H{"deleted": id})
}

// @Security AdminToken
// resetDrafts godoc
// @Summary Delete all stored AI drafts
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/drafts/reset [post]
func (c *AdminController) resetDrafts(g *gin.Context) {
	if err := c.draftsStorage.DeleteAll(g.Request.Context()); err != nil {
		logging.Log.Errorf("ADMIN: failed to reset drafts: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logging.Log.Info("ADMIN: all drafts deleted")
	g.JSON(http.StatusOK, gin.H{"message": "All drafts deleted"})
}
