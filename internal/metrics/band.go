package metrics

import "math"

// DefaultMonthlyBudget is the fallback limit when the backend reports no
// budget (or zero); it keeps percent-used meaningful for new accounts.
const DefaultMonthlyBudget = 10000

// Band is a severity tier derived from percent-of-budget-used.
type Band int

// Budget utilization bands, from calm to critical.
const (
	BandNormal Band = iota
	BandAlert
	BandWarning
	BandExceeded
)

func (b Band) String() string {
	switch b {
	case BandAlert:
		return "alert"
	case BandWarning:
		return "warning"
	case BandExceeded:
		return "exceeded"
	default:
		return "normal"
	}
}

// BudgetStatus is the budget utilization summary for one snapshot.
type BudgetStatus struct {
	PercentUsed float64
	FillPercent float64
	Band        Band
}

// DisplayPercent is PercentUsed rounded to the nearest integer for labels.
func (s BudgetStatus) DisplayPercent() int {
	return int(math.Round(s.PercentUsed))
}

// Utilization computes percent-of-budget-used and classifies the band:
// >100 exceeded, >=60 warning, >=50 alert, otherwise normal. The fill
// percent is clamped to 100 so over-budget bars still render full width.
func Utilization(expense, totalBudget float64) BudgetStatus {
	if totalBudget <= 0 {
		totalBudget = DefaultMonthlyBudget
	}

	percent := expense / totalBudget * 100

	var band Band
	switch {
	case percent > 100:
		band = BandExceeded
	case percent >= 60:
		band = BandWarning
	case percent >= 50:
		band = BandAlert
	default:
		band = BandNormal
	}

	return BudgetStatus{
		PercentUsed: percent,
		FillPercent: math.Min(percent, 100),
		Band:        band,
	}
}
