package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Felipeu28/CampaignControl-sub001/api/models"
	"github.com/Felipeu28/CampaignControl-sub001/campaign"
	"github.com/Felipeu28/CampaignControl-sub001/logging"
	"github.com/Felipeu28/CampaignControl-sub001/storage"
	"github.com/gin-gonic/gin"
)

// PlanController serves the vote-goal projection and the budget editor.
type PlanController struct {
	profilesStorage storage.CampaignProfileStorage
}

func NewPlanController(profilesStorage storage.CampaignProfileStorage) *PlanController {
	return &PlanController{
		profilesStorage: profilesStorage,
	}
}

func (c *PlanController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/plan/votegoal", c.computeVoteGoal)
	group.GET("/profile/:id/budget", c.getBudget)
	group.PUT("/profile/:id/budget/:category", c.setBudgetCategory)
}

// computeVoteGoal godoc
// @Summary Compute a vote goal projection
// @Description Projects the win threshold and safety target from registration and turnout inputs
// @Tags plan
// @Accept json
// @Produce json
// @Param request body models.VoteGoalRequest true "Projection inputs"
// @Success 200 {object} models.VoteGoalResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "Profile to persist into not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/plan/votegoal [post]
func (c *PlanController) computeVoteGoal(g *gin.Context) {
	var req models.VoteGoalRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	// The calculator expects clamped inputs; clamping is this caller's job.
	totalRegistered := req.TotalRegisteredVoters
	if totalRegistered < 0 {
		totalRegistered = 0
	}
	turnout := clampFraction(req.HistoricalTurnout)
	margin := campaign.DefaultMarginForSafety
	if req.MarginForSafety != nil {
		margin = clampFraction(*req.MarginForSafety)
	}
	opponentCount := req.OpponentCount
	if opponentCount < 1 {
		opponentCount = 1
	}

	goal := campaign.ComputeVoteGoal(totalRegistered, turnout, margin, opponentCount)

	if req.ProfileID != "" {
		if err := c.persistVoteGoal(g, req.ProfileID, goal); err != nil {
			return // response already written
		}
	}

	g.JSON(http.StatusOK, models.TransformVoteGoal(goal))
}

func (c *PlanController) persistVoteGoal(g *gin.Context, profileID string, goal campaign.VoteGoal) error {
	profile, err := c.profilesStorage.Get(g.Request.Context(), profileID)
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: fmt.Sprintf("profile not found: %s", profileID)})
			return err
		}
		logging.Log.Errorf("PLAN: failed to load profile %s: %v", profileID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load profile"})
		return err
	}

	profile.VoteGoal = models.TransformVoteGoalToStorage(goal)
	if err := c.profilesStorage.Update(g.Request.Context(), profile); err != nil {
		logging.Log.Errorf("PLAN: failed to save vote goal for %s: %v", profileID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save vote goal"})
		return err
	}

	logging.Log.Infof("PLAN: saved vote goal %d for profile %s", goal.TargetVoteGoal, profileID)
	return nil
}

// getBudget godoc
// @Summary Get the budget estimate of a profile
// @Tags plan
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} models.BudgetResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/profile/{id}/budget [get]
func (c *PlanController) getBudget(g *gin.Context) {
	profile, ok := c.loadProfile(g)
	if !ok {
		return
	}
	g.JSON(http.StatusOK, models.TransformBudgetFromStorage(profile.Budget))
}

// setBudgetCategory godoc
// @Summary Set one budget category amount
// @Description Replaces a category amount from raw user input and recomputes the projected total
// @Tags plan
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param category path string true "Budget category"
// @Param request body models.BudgetSetRequest true "Raw amount"
// @Success 200 {object} models.BudgetResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/profile/{id}/budget/{category} [put]
func (c *PlanController) setBudgetCategory(g *gin.Context) {
	category := g.Param("category")
	if category == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "category is required"})
		return
	}

	var req models.BudgetSetRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	profile, ok := c.loadProfile(g)
	if !ok {
		return
	}

	estimate := campaign.SetCategoryAmount(campaign.BudgetEstimate{
		Categories:           profile.Budget.Categories,
		TotalProjectedNeeded: profile.Budget.TotalProjectedNeeded,
	}, category, req.Amount)

	profile.Budget = storage.BudgetSnapshot{
		Categories:           estimate.Categories,
		TotalProjectedNeeded: estimate.TotalProjectedNeeded,
	}

	if err := c.profilesStorage.Update(g.Request.Context(), profile); err != nil {
		logging.Log.Errorf("PLAN: failed to save budget for %s: %v", profile.ID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save budget"})
		return
	}

	g.JSON(http.StatusOK, models.TransformBudgetFromStorage(profile.Budget))
}

func (c *PlanController) loadProfile(g *gin.Context) (*storage.CampaignProfile, bool) {
	id := g.Param("id")
	if id == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "profile id is required"})
		return nil, false
	}

	profile, err := c.profilesStorage.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: fmt.Sprintf("profile not found: %s", id)})
			return nil, false
		}
		logging.Log.Errorf("PLAN: failed to load profile %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load profile"})
		return nil, false
	}
	return profile, true
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
