package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Felipeu28/CampaignControl-sub001/api/models"
	"github.com/Felipeu28/CampaignControl-sub001/logging"
	"github.com/Felipeu28/CampaignControl-sub001/storage"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type ProfileController struct {
	profilesStorage storage.CampaignProfileStorage
}

func NewProfileController(profilesStorage storage.CampaignProfileStorage) *ProfileController {
	return &ProfileController{
		profilesStorage: profilesStorage,
	}
}

func (c *ProfileController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/profile", c.createProfile)
	group.GET("/profile", c.listProfiles)
	group.GET("/profile/:id", c.getProfile)
	group.PUT("/profile/:id", c.updateProfile)
}

// listProfiles godoc
// @Summary List campaign profiles
// @Tags profile
// @Produce json
// @Success 200 {array} models.ProfileResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/profile [get]
func (c *ProfileController) listProfiles(g *gin.Context) {
	profiles, err := c.profilesStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("error trying to list profiles from storage: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load profiles"})
		return
	}

	response := make([]models.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		response = append(response, models.TransformProfileFromStorage(p))
	}
	g.JSON(http.StatusOK, response)
}

// createProfile godoc
// @Summary Create a campaign profile
// @Description Creates a new campaign profile and returns it with its generated ID
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body models.ProfileCreateRequest true "Profile data"
// @Success 200 {object} models.ProfileResponse
// @Failure 400 {object} models.ErrorResponse "Invalid profile data"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/profile [post]
func (c *ProfileController) createProfile(g *gin.Context) {
	var req models.ProfileCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.CandidateName == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request, missing candidate name"})
		return
	}

	profile := models.TransformProfileToStorage(c.generateProfileID(), &req)
	if err := c.profilesStorage.Create(g.Request.Context(), profile); err != nil {
		logging.Log.Errorf("failed to create profile: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save profile"})
		return
	}

	logging.Log.Infof("PROFILE: created profile %s for candidate %s", profile.ID, profile.CandidateName)
	g.JSON(http.StatusOK, models.TransformProfileFromStorage(profile))
}

// getProfile godoc
// @Summary Get a campaign profile
// @Description Loads one campaign profile by ID
// @Tags profile
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} models.ProfileResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "Profile not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/profile/{id} [get]
func (c *ProfileController) getProfile(g *gin.Context) {
	id := g.Param("id")
	if id == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "profile id is required"})
		return
	}

	profile, err := c.profilesStorage.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: fmt.Sprintf("profile not found: %s", id)})
			return
		}
		logging.Log.Errorf("error trying to get profile from storage: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load profile"})
		return
	}

	g.JSON(http.StatusOK, models.TransformProfileFromStorage(profile))
}

// updateProfile godoc
// @Summary Update a campaign profile
// @Description Replaces the editable fields of a profile, keeping budget and vote goal snapshots
// @Tags profile
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param profile body models.ProfileUpdateRequest true "Profile data"
// @Success 200 {object} models.ProfileResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/profile/{id} [put]
func (c *ProfileController) updateProfile(g *gin.Context) {
	id := g.Param("id")
	if id == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "profile id is required"})
		return
	}

	var req models.ProfileUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	profile, err := c.profilesStorage.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: fmt.Sprintf("profile not found: %s", id)})
			return
		}
		logging.Log.Errorf("error trying to get profile from storage: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load profile"})
		return
	}

	profile.CandidateName = req.CandidateName
	profile.Office = req.Office
	profile.District = req.District
	profile.Party = req.Party
	profile.DistrictIntel = storage.DistrictIntel(req.DistrictIntel)
	profile.Opposition = profile.Opposition[:0]
	for _, o := range req.Opposition {
		profile.Opposition = append(profile.Opposition, storage.Opponent(o))
	}
	profile.Compliance.TreasurerName = req.Compliance.TreasurerName
	profile.Compliance.CampaignAddress = req.Compliance.CampaignAddress
	profile.Compliance.FilingDeadlines = profile.Compliance.FilingDeadlines[:0]
	for _, d := range req.Compliance.FilingDeadlines {
		profile.Compliance.FilingDeadlines = append(profile.Compliance.FilingDeadlines, storage.FilingDeadline(d))
	}

	if err := c.profilesStorage.Update(g.Request.Context(), profile); err != nil {
		logging.Log.Errorf("failed to update profile %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save profile"})
		return
	}

	g.JSON(http.StatusOK, models.TransformProfileFromStorage(profile))
}

func (c *ProfileController) generateProfileID() string {
	id, err := gonanoid.Generate(models.Alphabet, 8)
	if err != nil {
		logging.Log.Errorf("PROFILE: failed to generate id: %v", err)
		return "ERROR"
	}
	return id
}
