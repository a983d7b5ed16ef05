package ai

import (
	"fmt"
	"strings"
)

// DraftKind names a type of campaign content the assistant can draft.
type DraftKind string

const (
	DraftPressRelease     DraftKind = "press_release"
	DraftFundraisingEmail DraftKind = "fundraising_email"
	DraftSocialPost       DraftKind = "social_post"
	DraftOppositionBrief  DraftKind = "opposition_brief"
)

var ValidDraftKinds = map[DraftKind]bool{
	DraftPressRelease:     true,
	DraftFundraisingEmail: true,
	DraftSocialPost:       true,
	DraftOppositionBrief:  true,
}

// PromptContext is the campaign background woven into every prompt.
type PromptContext struct {
	CandidateName string
	Office        string
	District      string
	Party         string
	Tone          string
}

// BuildPrompt assembles the generation prompt for one draft kind. The topic
// is free text from the dashboard; the context comes from the stored profile.
func BuildPrompt(kind DraftKind, pc PromptContext, topic string) (string, error) {
	header := contextHeader(pc)

	switch kind {
	case DraftPressRelease:
		return fmt.Sprintf("%s\nWrite a press release from the campaign about: %s. "+
			"Use a professional newsroom structure with a headline, dateline, two short "+
			"body paragraphs and a quote from the candidate.", header, topic), nil
	case DraftFundraisingEmail:
		return fmt.Sprintf("%s\nWrite a fundraising email about: %s. "+
			"Keep it under 200 words, personal in tone, with a single clear donation ask "+
			"and a subject line on the first line.", header, topic), nil
	case DraftSocialPost:
		return fmt.Sprintf("%s\nWrite a short social media post about: %s. "+
			"Maximum 280 characters, no hashtags unless they appear in the topic.", header, topic), nil
	case DraftOppositionBrief:
		return fmt.Sprintf("%s\nWrite a factual research brief about the opponent: %s. "+
			"Stick to publicly verifiable claims, cite the kind of source for each claim, "+
			"and flag anything uncertain.", header, topic), nil
	default:
		return "", fmt.Errorf("ai: unknown draft kind %q", kind)
	}
}

// BuildImagePrompt assembles the prompt for campaign imagery.
func BuildImagePrompt(pc PromptContext, subject string) string {
	return fmt.Sprintf("%s\nCreate campaign artwork: %s. "+
		"Clean, optimistic political campaign style, no text overlays, no real faces.",
		contextHeader(pc), subject)
}

func contextHeader(pc PromptContext) string {
	parts := []string{"You are a campaign communications assistant."}
	if pc.CandidateName != "" {
		line := "The candidate is " + pc.CandidateName
		if pc.Party != "" {
			line += " (" + pc.Party + ")"
		}
		if pc.Office != "" {
			line += ", running for " + pc.Office
		}
		if pc.District != "" {
			line += " in " + pc.District
		}
		parts = append(parts, line+".")
	}
	if pc.Tone != "" {
		parts = append(parts, "Preferred tone: "+pc.Tone+".")
	}
	return strings.Join(parts, " ")
}
