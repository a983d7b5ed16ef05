package controllers

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Felipeu28/CampaignControl-sub001/ai"
	"github.com/Felipeu28/CampaignControl-sub001/logging"
	"github.com/Felipeu28/CampaignControl-sub001/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// In-memory doubles for the Dynamo storages and the generation client so the
// handler tests run without any infrastructure.

type fakeProfileStorage struct {
	mu       sync.Mutex
	profiles map[string]*storage.CampaignProfile
}

func newFakeProfileStorage() *fakeProfileStorage {
	return &fakeProfileStorage{profiles: make(map[string]*storage.CampaignProfile)}
}

func (s *fakeProfileStorage) Get(_ context.Context, id string) (*storage.CampaignProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, storage.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *fakeProfileStorage) GetAll(_ context.Context) ([]*storage.CampaignProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*storage.CampaignProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeProfileStorage) Create(_ context.Context, profile *storage.CampaignProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[profile.ID]; ok {
		return storage.ErrProfileAlreadyExists
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	copied := *profile
	s.profiles[profile.ID] = &copied
	return nil
}

func (s *fakeProfileStorage) Update(_ context.Context, profile *storage.CampaignProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile.UpdatedAt = time.Now().UTC()
	copied := *profile
	s.profiles[profile.ID] = &copied
	return nil
}

func (s *fakeProfileStorage) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, id)
	return nil
}

type fakeDraftStorage struct {
	mu     sync.Mutex
	drafts []*storage.ContentDraft
}

func (s *fakeDraftStorage) Create(_ context.Context, draft *storage.ContentDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts = append(s.drafts, draft)
	return nil
}

func (s *fakeDraftStorage) GetByProfile(_ context.Context, profileID string) ([]*storage.ContentDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*storage.ContentDraft
	for _, d := range s.drafts {
		if d.ProfileID == profileID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *fakeDraftStorage) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts = nil
	return nil
}

type fakeGenerator struct {
	text     string
	imageURL string
	err      error
	prompts  []string
}

func (f *fakeGenerator) GenerateText(_ context.Context, _, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeGenerator) GenerateImage(_ context.Context, _, prompt string, _ ai.ImageOptions) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.imageURL, nil
}

type testEnv struct {
	router    *gin.Engine
	profiles  *fakeProfileStorage
	drafts    *fakeDraftStorage
	generator *fakeGenerator
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	logging.Log = logrus.New()

	env := &testEnv{
		profiles:  newFakeProfileStorage(),
		drafts:    &fakeDraftStorage{},
		generator: &fakeGenerator{text: "generated draft", imageURL: "https://img.example/out.png"},
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()

	NewProfileController(env.profiles).RegisterRoutes(r)
	NewPlanController(env.profiles).RegisterRoutes(r)
	NewVoterFileController().RegisterRoutes(r)
	NewComplianceController(env.profiles).RegisterRoutes(r)
	NewAssistantController(env.profiles, env.drafts, env.generator, "test-text-model", "test-image-model").RegisterRoutes(r)
	NewAdminController(env.profiles, env.drafts).RegisterRoutes(r)

	env.router = r
	return env
}

func seedProfile(t *testing.T, env *testEnv, id string) *storage.CampaignProfile {
	t.Helper()
	profile := &storage.CampaignProfile{
		ID:            id,
		CandidateName: "Jane Doe",
		Office:        "City Council",
		District:      "District 4",
		Party:         "Independent",
		DistrictIntel: storage.DistrictIntel{
			TotalRegisteredVoters: 100000,
			HistoricalTurnout:     0.5,
			OpponentCount:         1,
		},
		Compliance: storage.ComplianceInfo{
			TreasurerName:   "John Smith",
			CampaignAddress: "1 Main St",
		},
		Budget: storage.BudgetSnapshot{Categories: map[string]int{}},
	}
	if err := env.profiles.Create(context.Background(), profile); err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	return profile
}

func profilePath(id, suffix string) string {
	return fmt.Sprintf("/api/profile/%s%s", id, suffix)
}
