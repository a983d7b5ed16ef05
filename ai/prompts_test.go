package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	pc := PromptContext{
		CandidateName: "Jane Doe",
		Office:        "City Council",
		District:      "District 4",
		Party:         "Independent",
		Tone:          "hopeful",
	}

	t.Run("Profile context is woven into every kind", func(t *testing.T) {
		for kind := range ValidDraftKinds {
			prompt, err := BuildPrompt(kind, pc, "the new transit plan")
			require.NoError(t, err)
			assert.Contains(t, prompt, "Jane Doe")
			assert.Contains(t, prompt, "the new transit plan")
		}
	})

	t.Run("Unknown kind errors", func(t *testing.T) {
		_, err := BuildPrompt(DraftKind("haiku"), pc, "topic")
		assert.Error(t, err)
	})

	t.Run("Empty context still produces a usable prompt", func(t *testing.T) {
		prompt, err := BuildPrompt(DraftSocialPost, PromptContext{}, "election day")
		require.NoError(t, err)
		assert.Contains(t, prompt, "election day")
	})
}

func TestBuildImagePrompt(t *testing.T) {
	prompt := BuildImagePrompt(PromptContext{CandidateName: "Jane Doe"}, "volunteers knocking doors")

	assert.Contains(t, prompt, "Jane Doe")
	assert.Contains(t, prompt, "volunteers knocking doors")
}
