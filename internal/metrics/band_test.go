package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtilizationBands(t *testing.T) {
	tests := []struct {
		name        string
		expense     float64
		budget      float64
		wantBand    Band
		wantPercent int
	}{
		{name: "no spending", expense: 0, budget: 10000, wantBand: BandNormal, wantPercent: 0},
		{name: "under half", expense: 4999, budget: 10000, wantBand: BandNormal, wantPercent: 50},
		{name: "alert at 50", expense: 5000, budget: 10000, wantBand: BandAlert, wantPercent: 50},
		{name: "alert below 60", expense: 5999, budget: 10000, wantBand: BandAlert, wantPercent: 60},
		{name: "warning at 60", expense: 6000, budget: 10000, wantBand: BandWarning, wantPercent: 60},
		{name: "warning at exactly 100", expense: 10000, budget: 10000, wantBand: BandWarning, wantPercent: 100},
		{name: "exceeded just past limit", expense: 10001, budget: 10000, wantBand: BandExceeded, wantPercent: 100},
		{name: "exceeded well past limit", expense: 14000, budget: 10000, wantBand: BandExceeded, wantPercent: 140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := Utilization(tt.expense, tt.budget)
			assert.Equal(t, tt.wantBand, status.Band)
			assert.Equal(t, tt.wantPercent, status.DisplayPercent())
		})
	}
}

func TestUtilizationFillClamped(t *testing.T) {
	status := Utilization(14000, 10000)
	assert.InDelta(t, 100, status.FillPercent, 0.0001)
	assert.Greater(t, status.PercentUsed, 100.0)
}

func TestUtilizationBudgetFallback(t *testing.T) {
	// A missing or zero budget falls back to the default limit.
	status := Utilization(5000, 0)
	assert.InDelta(t, 50, status.PercentUsed, 0.0001)
	assert.Equal(t, BandAlert, status.Band)

	status = Utilization(5000, -1)
	assert.InDelta(t, 50, status.PercentUsed, 0.0001)
}

func TestBandString(t *testing.T) {
	assert.Equal(t, "normal", BandNormal.String())
	assert.Equal(t, "alert", BandAlert.String())
	assert.Equal(t, "warning", BandWarning.String())
	assert.Equal(t, "exceeded", BandExceeded.String())
}
