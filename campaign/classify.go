package campaign

import (
	"regexp"
	"strings"
)

// NeedType labels what a free-text request from the campaign team is about,
// used to route the request to the matching dashboard module.
type NeedType string

const (
	NeedPathToVictory      NeedType = "path_to_victory"
	NeedBudgetAllocation   NeedType = "budget_allocation"
	NeedVoterFileAnalysis  NeedType = "voter_file_analysis"
	NeedCompliance         NeedType = "compliance"
	NeedContentCreation    NeedType = "content_creation"
	NeedOppositionResearch NeedType = "opposition_research"
	NeedGeneralCampaign    NeedType = "general_campaign"
)

// Ordered: the first matching pattern wins, so broader patterns go last.
var needPatterns = []struct {
	need    NeedType
	pattern *regexp.Regexp
}{
	{NeedPathToVictory, regexp.MustCompile(`path to victory|vote goal|votes|turnout|how do i win|win the (race|election)`)},
	{NeedBudgetAllocation, regexp.MustCompile(`budget|cost|spend|afford|money|dollar|fundrais`)},
	{NeedVoterFileAnalysis, regexp.MustCompile(`voter file|voter list|precinct|canvass|walk list|door knock`)},
	{NeedCompliance, regexp.MustCompile(`disclaimer|compliance|legal|deadline|filing|treasurer`)},
	{NeedContentCreation, regexp.MustCompile(`write|draft|flyer|speech|press release|social|slogan|mailer`)},
	{NeedOppositionResearch, regexp.MustCompile(`opponent|opposition|incumbent|rival`)},
}

// ClassifyNeed keyword-matches a message to a NeedType. Deterministic regex
// matching over the lower-cased input; anything unmatched is general_campaign.
func ClassifyNeed(message string) NeedType {
	normalized := strings.ToLower(message)
	for _, p := range needPatterns {
		if p.pattern.MatchString(normalized) {
			return p.need
		}
	}
	return NeedGeneralCampaign
}
