package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSavingsGoalProgress(t *testing.T) {
	tests := []struct {
		name        string
		goal        SavingsGoal
		wantPercent int
		wantFill    float64
	}{
		{
			name:        "halfway",
			goal:        SavingsGoal{TargetAmount: 1000, SavedAmount: 500},
			wantPercent: 50,
			wantFill:    50,
		},
		{
			name:        "complete",
			goal:        SavingsGoal{TargetAmount: 1000, SavedAmount: 1000},
			wantPercent: 100,
			wantFill:    100,
		},
		{
			// Over-saving is allowed by the backend; only the bar clamps.
			name:        "over-saved clamps bar not label",
			goal:        SavingsGoal{TargetAmount: 1000, SavedAmount: 1300},
			wantPercent: 130,
			wantFill:    100,
		},
		{
			name:        "zero target",
			goal:        SavingsGoal{TargetAmount: 0, SavedAmount: 500},
			wantPercent: 0,
			wantFill:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPercent, tt.goal.ProgressPercent())
			assert.InDelta(t, tt.wantFill, tt.goal.FillPercent(), 0.0001)
		})
	}
}
