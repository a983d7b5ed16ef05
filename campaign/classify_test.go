package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyNeed(t *testing.T) {
	t.Run("Budget questions", func(t *testing.T) {
		assert.Equal(t, NeedBudgetAllocation, ClassifyNeed("How much will this cost?"))
		assert.Equal(t, NeedBudgetAllocation, ClassifyNeed("Where should we SPEND the money"))
	})

	t.Run("Path to victory questions", func(t *testing.T) {
		assert.Equal(t, NeedPathToVictory, ClassifyNeed("What's my path to 50000 votes?"))
		assert.Equal(t, NeedPathToVictory, ClassifyNeed("what turnout should we expect"))
	})

	t.Run("Voter file questions", func(t *testing.T) {
		assert.Equal(t, NeedVoterFileAnalysis, ClassifyNeed("Can you summarize this voter file?"))
	})

	t.Run("Compliance questions", func(t *testing.T) {
		assert.Equal(t, NeedCompliance, ClassifyNeed("When is the next filing deadline?"))
	})

	t.Run("Content requests", func(t *testing.T) {
		assert.Equal(t, NeedContentCreation, ClassifyNeed("Draft a press release about the endorsement"))
	})

	t.Run("Opposition research", func(t *testing.T) {
		assert.Equal(t, NeedOppositionResearch, ClassifyNeed("What do we know about the incumbent?"))
	})

	t.Run("Unmatched text falls back to general", func(t *testing.T) {
		assert.Equal(t, NeedGeneralCampaign, ClassifyNeed("hello there"))
	})

	t.Run("Matching is case insensitive", func(t *testing.T) {
		assert.Equal(t, NeedPathToVictory, ClassifyNeed("HOW MANY VOTES DO WE NEED"))
	})
}
