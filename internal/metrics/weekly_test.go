package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdeshpande/finly/internal/model"
)

func TestWeeklySeries(t *testing.T) {
	now := time.Date(2025, 6, 18, 14, 0, 0, 0, time.Local)
	days := []model.DaySpend{
		{Day: "Mon", FullDate: "2025-06-16", Amount: 0},
		{Day: "Tue", FullDate: "2025-06-17", Amount: 50},
		{Day: "Wed", FullDate: "2025-06-18", Amount: 100},
	}

	bars, maxAmount := WeeklySeries(days, now)
	require.Len(t, bars, 3)
	assert.InDelta(t, 100, maxAmount, 0.0001)

	// Zero day keeps a minimal non-zero height, strictly below the tallest bar.
	assert.Greater(t, bars[0].HeightPercent, 0.0)
	assert.Less(t, bars[0].HeightPercent, bars[2].HeightPercent)

	assert.InDelta(t, 50, bars[1].HeightPercent, 0.0001)
	assert.InDelta(t, 100, bars[2].HeightPercent, 0.0001)

	assert.False(t, bars[0].IsToday)
	assert.False(t, bars[1].IsToday)
	assert.True(t, bars[2].IsToday)
}

func TestWeeklySeriesAllZero(t *testing.T) {
	days := []model.DaySpend{
		{Day: "Mon", FullDate: "2025-06-16", Amount: 0},
		{Day: "Tue", FullDate: "2025-06-17", Amount: 0},
	}

	bars, maxAmount := WeeklySeries(days, time.Now())
	assert.InDelta(t, 1, maxAmount, 0.0001)
	for _, b := range bars {
		assert.Greater(t, b.HeightPercent, 0.0)
	}
}

func TestWeeklySeriesBadDate(t *testing.T) {
	days := []model.DaySpend{
		{Day: "???", FullDate: "not-a-date", Amount: 10},
	}

	bars, _ := WeeklySeries(days, time.Now())
	require.Len(t, bars, 1)
	assert.False(t, bars[0].IsToday)
}

func TestWeeklySeriesEmpty(t *testing.T) {
	bars, maxAmount := WeeklySeries(nil, time.Now())
	assert.Empty(t, bars)
	assert.InDelta(t, 1, maxAmount, 0.0001)
}
