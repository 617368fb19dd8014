// Package metrics derives display-ready aggregates from raw backend records.
// Every function is a pure transformation of its inputs; nothing here caches
// or mutates state, so results always reflect the snapshot passed in.
package metrics

import (
	"sort"

	"github.com/tdeshpande/finly/internal/model"
)

// TopCategoryLimit is how many category slices the compact widgets show.
const TopCategoryLimit = 4

// TotalByType sums amounts over transactions of the given type.
func TotalByType(txns []model.Transaction, typ model.TransactionType) float64 {
	var total float64
	for _, t := range txns {
		if t.Type == typ {
			total += t.Amount.Float()
		}
	}
	return total
}

// CategorySlice is one category's share of total spending.
type CategorySlice struct {
	Name       string
	Amount     float64
	Percentage float64
}

// CategoryBreakdown groups expense transactions by category name, computes
// each group's share of the expense total, and sorts descending by amount.
// Percentages are 0 when the total is 0. A positive topN caps the result.
func CategoryBreakdown(txns []model.Transaction, topN int) []CategorySlice {
	totals := make(map[string]float64)
	for _, t := range txns {
		if t.Type != model.TransactionTypeExpense {
			continue
		}
		totals[t.CategoryName()] += t.Amount.Float()
	}

	var totalSpent float64
	for _, amount := range totals {
		totalSpent += amount
	}

	slices := make([]CategorySlice, 0, len(totals))
	for name, amount := range totals {
		var pct float64
		if totalSpent > 0 {
			pct = amount / totalSpent * 100
		}
		slices = append(slices, CategorySlice{Name: name, Amount: amount, Percentage: pct})
	}

	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Amount != slices[j].Amount {
			return slices[i].Amount > slices[j].Amount
		}
		return slices[i].Name < slices[j].Name
	})

	if topN > 0 && len(slices) > topN {
		slices = slices[:topN]
	}
	return slices
}

// TopCategory names the largest expense category, or "N/A" when there is none.
func TopCategory(slices []CategorySlice) string {
	if len(slices) == 0 {
		return "N/A"
	}
	return slices[0].Name
}
