package campaign

import (
	"math"
	"strings"
)

// Placeholder written into any voter field the file did not supply.
const unknownField = "unknown"

// Fixed-ratio turnout estimates, not derived from voting history.
// TODO: classify from the voting_history map once files carry more
// than the single placeholder election.
const (
	likelyVoterRatio   = 0.35
	sporadicVoterRatio = 0.45
	newVoterRatio      = 0.10
)

type VoterRecord struct {
	VoterID          string          `json:"voter_id"`
	FirstName        string          `json:"first_name"`
	LastName         string          `json:"last_name"`
	Address          string          `json:"address"`
	City             string          `json:"city"`
	Zip              string          `json:"zip"`
	Precinct         string          `json:"precinct"`
	Party            string          `json:"party"`
	RegistrationDate string          `json:"registration_date"`
	VotingHistory    map[string]bool `json:"voting_history"`
}

type VoterFileSummary struct {
	Total          int            `json:"total"`
	ByParty        map[string]int `json:"by_party"`
	ByPrecinct     map[string]int `json:"by_precinct"`
	LikelyVoters   int            `json:"likely_voters"`
	SporadicVoters int            `json:"sporadic_voters"`
	NewVoters      int            `json:"new_voters"`
}

type VoterFileResult struct {
	Voters  []VoterRecord    `json:"voters"`
	Summary VoterFileSummary `json:"summary"`
}

// ParseVoterFile turns a delimited voter export into records plus aggregate
// counts. The parser is intentionally simple: lines split on newlines, blank
// lines dropped, the first remaining line discarded as a header, and every
// data line split positionally on commas. Quoted commas and escaped fields
// are NOT handled; that is a known limitation of the contract, not a bug.
// Missing trailing fields fall back to placeholder values.
func ParseVoterFile(text string) VoterFileResult {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	result := VoterFileResult{
		Voters: make([]VoterRecord, 0),
		Summary: VoterFileSummary{
			ByParty:    make(map[string]int),
			ByPrecinct: make(map[string]int),
		},
	}
	if len(lines) <= 1 {
		return result
	}

	for _, line := range lines[1:] {
		cols := strings.Split(line, ",")
		record := VoterRecord{
			VoterID:          columnOrDefault(cols, 0),
			FirstName:        columnOrDefault(cols, 1),
			LastName:         columnOrDefault(cols, 2),
			Address:          columnOrDefault(cols, 3),
			City:             columnOrDefault(cols, 4),
			Zip:              columnOrDefault(cols, 5),
			Precinct:         columnOrDefault(cols, 6),
			Party:            columnOrDefault(cols, 7),
			RegistrationDate: columnOrDefault(cols, 8),
			// Placeholder history entry until real election columns are mapped.
			VotingHistory: map[string]bool{"last_general": true},
		}
		result.Voters = append(result.Voters, record)
		result.Summary.ByParty[record.Party]++
		result.Summary.ByPrecinct[record.Precinct]++
	}

	total := len(result.Voters)
	result.Summary.Total = total
	result.Summary.LikelyVoters = int(math.Round(float64(total) * likelyVoterRatio))
	result.Summary.SporadicVoters = int(math.Round(float64(total) * sporadicVoterRatio))
	result.Summary.NewVoters = int(math.Round(float64(total) * newVoterRatio))

	return result
}

func columnOrDefault(cols []string, i int) string {
	if i >= len(cols) {
		return unknownField
	}
	v := strings.TrimSpace(cols[i])
	if v == "" {
		return unknownField
	}
	return v
}
