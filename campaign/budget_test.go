package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetCategoryAmount(t *testing.T) {
	t.Run("Happy path - total tracks the sum after every edit", func(t *testing.T) {
		est := BudgetEstimate{}

		est = SetCategoryAmount(est, "advertising", "12,500")
		assert.Equal(t, 12500, est.Categories["advertising"])
		assert.Equal(t, 12500, est.TotalProjectedNeeded)

		est = SetCategoryAmount(est, "staff", "30000")
		assert.Equal(t, 42500, est.TotalProjectedNeeded)

		est = SetCategoryAmount(est, "advertising", "10000")
		assert.Equal(t, 40000, est.TotalProjectedNeeded)

		sum := 0
		for _, amount := range est.Categories {
			sum += amount
		}
		assert.Equal(t, sum, est.TotalProjectedNeeded)
	})

	t.Run("Non numeric input becomes zero instead of an error", func(t *testing.T) {
		est := SetCategoryAmount(BudgetEstimate{}, "advertising", "abc")

		assert.Equal(t, 0, est.Categories["advertising"])
		assert.Equal(t, 0, est.TotalProjectedNeeded)
	})

	t.Run("Empty input becomes zero", func(t *testing.T) {
		est := SetCategoryAmount(BudgetEstimate{}, "events", "")

		assert.Equal(t, 0, est.Categories["events"])
	})

	t.Run("Negative input becomes zero", func(t *testing.T) {
		est := SetCategoryAmount(BudgetEstimate{}, "events", "-500")

		assert.Equal(t, 0, est.Categories["events"])
	})

	t.Run("Input estimate is not mutated", func(t *testing.T) {
		original := BudgetEstimate{
			Categories:           map[string]int{"staff": 1000},
			TotalProjectedNeeded: 1000,
		}

		_ = SetCategoryAmount(original, "staff", "9999")

		assert.Equal(t, 1000, original.Categories["staff"])
		assert.Equal(t, 1000, original.TotalProjectedNeeded)
	})
}

func TestPercentageOf(t *testing.T) {
	t.Run("Happy path", func(t *testing.T) {
		assert.InDelta(t, 25.0, PercentageOf(2500, 10000), 0.0001)
	})

	t.Run("Zero total returns zero instead of dividing", func(t *testing.T) {
		assert.Equal(t, 0.0, PercentageOf(500, 0))
	})
}
