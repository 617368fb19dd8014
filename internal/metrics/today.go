package metrics

import (
	"time"

	"github.com/tdeshpande/finly/internal/model"
)

// TodayActivityLimit caps the "today's activity" list.
const TodayActivityLimit = 5

// sameDay compares local calendar dates, not a rolling 24h window.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TodayTransactions selects transactions dated today (local calendar date),
// preserving input order, capped at limit entries. A non-positive limit
// returns all of today's transactions.
func TodayTransactions(txns []model.Transaction, now time.Time, limit int) []model.Transaction {
	var today []model.Transaction
	for _, t := range txns {
		if !sameDay(t.Date.Local(), now.Local()) {
			continue
		}
		today = append(today, t)
		if limit > 0 && len(today) == limit {
			break
		}
	}
	return today
}
