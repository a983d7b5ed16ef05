package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Felipeu28/CampaignControl-sub001/ai"
	"github.com/Felipeu28/CampaignControl-sub001/api/models"
	"github.com/Felipeu28/CampaignControl-sub001/campaign"
	"github.com/Felipeu28/CampaignControl-sub001/logging"
	"github.com/Felipeu28/CampaignControl-sub001/storage"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// AssistantController fronts the generative-AI service: it classifies free-text
// requests, builds prompts from the stored profile and keeps the drafts.
type AssistantController struct {
	profilesStorage storage.CampaignProfileStorage
	draftsStorage   storage.ContentDraftStorage
	generator       ai.Generator
	textModel       string
	imageModel      string
}

func NewAssistantController(profilesStorage storage.CampaignProfileStorage, draftsStorage storage.ContentDraftStorage,
	generator ai.Generator, textModel, imageModel string) *AssistantController {
	return &AssistantController{
		profilesStorage: profilesStorage,
		draftsStorage:   draftsStorage,
		generator:       generator,
		textModel:       textModel,
		imageModel:      imageModel,
	}
}

func (c *AssistantController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/assistant/classify", c.classifyNeed)
	group.POST("/assistant/draft", c.createDraft)
	group.POST("/assistant/image", c.createImage)
	group.GET("/assistant/drafts/:profileId", c.listDrafts)
}

// classifyNeed godoc
// @Summary Classify a free-text campaign request
// @Description Maps a message to one of the fixed need categories used for dashboard routing
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body models.ClassifyRequest true "Message"
// @Success 200 {object} models.ClassifyResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/assistant/classify [post]
func (c *AssistantController) classifyNeed(g *gin.Context) {
	var req models.ClassifyRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Message == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "message is required"})
		return
	}

	need := campaign.ClassifyNeed(req.Message)
	g.JSON(http.StatusOK, models.ClassifyResponse{Need: string(need)})
}

// createDraft godoc
// @Summary Draft campaign content with the AI service
// @Description Builds a prompt from the profile context, calls the generation service and stores the draft
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body models.DraftRequest true "Draft request"
// @Success 200 {object} models.DraftResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "Profile not found"
// @Failure 422 {object} models.ErrorResponse "Rejected by the service's safety policy"
// @Failure 429 {object} models.ErrorResponse "Generation quota exceeded"
// @Failure 502 {object} models.ErrorResponse "Generation service failure"
// @Router /api/assistant/draft [post]
func (c *AssistantController) createDraft(g *gin.Context) {
	var req models.DraftRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.ProfileID == "" || req.Topic == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request, missing profileId or topic"})
		return
	}

	kind := ai.DraftKind(req.Kind)
	if !ai.ValidDraftKinds[kind] {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: fmt.Sprintf("invalid draft kind: %s", req.Kind)})
		return
	}

	profile, err := c.profilesStorage.Get(g.Request.Context(), req.ProfileID)
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: fmt.Sprintf("profile not found: %s", req.ProfileID)})
			return
		}
		logging.Log.Errorf("ASSISTANT: failed to load profile %s: %v", req.ProfileID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load profile"})
		return
	}

	prompt, err := ai.BuildPrompt(kind, promptContextFromProfile(profile, req.Tone), req.Topic)
	if err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
		return
	}

	model := req.Model
	if model == "" {
		model = c.textModel
	}

	body, err := c.generator.GenerateText(g.Request.Context(), model, prompt)
	if err != nil {
		c.writeGenerationError(g, err)
		return
	}

	draft := &storage.ContentDraft{
		ProfileID: profile.ID,
		DraftID:   c.generateDraftID(),
		Kind:      string(kind),
		Prompt:    prompt,
		Body:      body,
		Model:     model,
		CreatedAt: time.Now().UTC(),
	}
	draft.SortKey = fmt.Sprintf("draft#%s#%s", draft.Kind, draft.DraftID)

	if err := c.draftsStorage.Create(g.Request.Context(), draft); err != nil {
		logging.Log.Errorf("ASSISTANT: failed to store draft for profile %s: %v", profile.ID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save draft"})
		return
	}

	logging.Log.Infof("ASSISTANT: stored %s draft %s for profile %s", draft.Kind, draft.DraftID, profile.ID)
	g.JSON(http.StatusOK, models.DraftResponse{
		DraftID: draft.DraftID,
		Kind:    draft.Kind,
		Body:    draft.Body,
		Model:   draft.Model,
	})
}

// createImage godoc
// @Summary Generate campaign artwork with the AI service
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body models.ImageRequest true "Image request"
// @Success 200 {object} models.ImageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse "Rejected by the service's safety policy"
// @Failure 429 {object} models.ErrorResponse "Generation quota exceeded"
// @Failure 502 {object} models.ErrorResponse "Generation service failure"
// @Router /api/assistant/image [post]
func (c *AssistantController) createImage(g *gin.Context) {
	var req models.ImageRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Subject == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request, missing subject"})
		return
	}

	pc := ai.PromptContext{}
	if req.ProfileID != "" {
		if profile, err := c.profilesStorage.Get(g.Request.Context(), req.ProfileID); err == nil {
			pc = promptContextFromProfile(profile, "")
		} else {
			logging.Log.Warnf("ASSISTANT: could not load profile %s for image context: %v", req.ProfileID, err)
		}
	}

	model := req.Model
	if model == "" {
		model = c.imageModel
	}

	url, err := c.generator.GenerateImage(g.Request.Context(), model, ai.BuildImagePrompt(pc, req.Subject), ai.ImageOptions{
		AspectRatio: req.AspectRatio,
		Quality:     req.Quality,
	})
	if err != nil {
		c.writeGenerationError(g, err)
		return
	}

	g.JSON(http.StatusOK, models.ImageResponse{URL: url})
}

// listDrafts godoc
// @Summary List stored drafts of a profile
// @Tags assistant
// @Produce json
// @Param profileId path string true "Profile ID"
// @Success 200 {object} models.DraftListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/assistant/drafts/{profileId} [get]
func (c *AssistantController) listDrafts(g *gin.Context) {
	profileID := g.Param("profileId")
	if profileID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "profile id is required"})
		return
	}

	drafts, err := c.draftsStorage.GetByProfile(g.Request.Context(), profileID)
	if err != nil {
		logging.Log.Errorf("ASSISTANT: failed to list drafts for %s: %v", profileID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load drafts"})
		return
	}
	if drafts == nil {
		drafts = make([]*storage.ContentDraft, 0)
	}

	g.JSON(http.StatusOK, models.DraftListResponse{
		ProfileID: profileID,
		Drafts:    drafts,
	})
}

// writeGenerationError maps a generation failure onto a status the dashboard
// can present: the taxonomy is credential / quota / safety / unavailable.
func (c *AssistantController) writeGenerationError(g *gin.Context, err error) {
	kind := ai.ClassifyError(err)
	logging.Log.Errorf("ASSISTANT: generation failed (%s): %v", kind, err)

	status := http.StatusBadGateway
	switch kind {
	case ai.ErrorKindQuotaExceeded:
		status = http.StatusTooManyRequests
	case ai.ErrorKindSafetyRejected:
		status = http.StatusUnprocessableEntity
	}

	g.JSON(status, &models.ErrorResponse{
		Error: "content generation failed",
		Kind:  string(kind),
	})
}

func (c *AssistantController) generateDraftID() string {
	id, err := gonanoid.Generate(models.Alphabet, 10)
	if err != nil {
		logging.Log.Errorf("ASSISTANT: failed to generate draft id: %v", err)
		return "ERROR"
	}
	return id
}

func promptContextFromProfile(p *storage.CampaignProfile, tone string) ai.PromptContext {
	return ai.PromptContext{
		CandidateName: p.CandidateName,
		Office:        p.Office,
		District:      p.District,
		Party:         p.Party,
		Tone:          tone,
	}
}
