package metrics

import (
	"time"

	"github.com/tdeshpande/finly/internal/model"
)

// zeroBarHeight keeps empty days visible instead of collapsing to nothing.
const zeroBarHeight = 2

// DayBar is one rendered bucket of the weekly spending chart.
type DayBar struct {
	Day           string
	Amount        float64
	HeightPercent float64
	IsToday       bool
}

// WeeklySeries turns the server's day buckets into renderable bars. The
// maximum amount has a floor of 1 so an all-zero week still divides cleanly,
// zero days get a minimal non-zero height, and the bucket whose full_date
// matches today's local date is flagged for highlighting.
func WeeklySeries(days []model.DaySpend, now time.Time) ([]DayBar, float64) {
	maxAmount := 1.0
	for _, d := range days {
		if d.Amount.Float() > maxAmount {
			maxAmount = d.Amount.Float()
		}
	}

	bars := make([]DayBar, 0, len(days))
	for _, d := range days {
		amount := d.Amount.Float()

		height := float64(zeroBarHeight)
		if amount > 0 {
			height = amount / maxAmount * 100
		}

		isToday := false
		if parsed, err := time.ParseInLocation("2006-01-02", d.FullDate, now.Location()); err == nil {
			isToday = sameDay(parsed, now)
		}

		bars = append(bars, DayBar{
			Day:           d.Day,
			Amount:        amount,
			HeightPercent: height,
			IsToday:       isToday,
		})
	}

	return bars, maxAmount
}
