package campaign

import (
	"strconv"
	"strings"
)

type BudgetEstimate struct {
	Categories           map[string]int `json:"categories"`
	TotalProjectedNeeded int            `json:"total_projected_needed"`
}

// SetCategoryAmount replaces one category amount and recomputes the total.
// rawValue is user input: thousands separators are stripped and anything that
// still fails to parse counts as 0. The total is always the sum of the
// categories, never set independently. The input estimate is not modified.
func SetCategoryAmount(est BudgetEstimate, category, rawValue string) BudgetEstimate {
	out := BudgetEstimate{Categories: make(map[string]int, len(est.Categories)+1)}
	for name, amount := range est.Categories {
		out.Categories[name] = amount
	}
	out.Categories[category] = parseAmount(rawValue)

	for _, amount := range out.Categories {
		out.TotalProjectedNeeded += amount
	}
	return out
}

// PercentageOf reports amount as a percentage of total, 0 when total is 0.
func PercentageOf(amount, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(amount) / float64(total) * 100
}

func parseAmount(raw string) int {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return 0
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
