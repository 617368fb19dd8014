package model

import (
	"math"
	"time"
)

// SavingsGoal represents a savings target with accumulated progress.
// The backend does not reject saved_amount > target_amount; display code
// clamps the bar while the percentage label reports the true figure.
type SavingsGoal struct {
	CreatedAt    time.Time `json:"created_at"`
	Name         string    `json:"name"`
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
	ID           int64     `json:"id"`
	TargetAmount Amount    `json:"target_amount"`
	SavedAmount  Amount    `json:"saved_amount"`
}

// ProgressPercent returns saved/target as a rounded percentage.
// A zero target yields 0 rather than dividing by zero.
func (g SavingsGoal) ProgressPercent() int {
	if g.TargetAmount == 0 {
		return 0
	}
	return int(math.Round(g.SavedAmount.Float() / g.TargetAmount.Float() * 100))
}

// FillPercent is the progress bar width, clamped to 100 for over-saved goals.
func (g SavingsGoal) FillPercent() float64 {
	p := float64(g.ProgressPercent())
	return math.Min(p, 100)
}
