package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// MonthlyBudget is the per-user monthly spending limit.
type MonthlyBudget struct {
	UpdatedAt time.Time `json:"updated_at"`
	Amount    Amount    `json:"amount"`
}

// NormalizeMonthlyBudget maps both shapes the budget endpoint is known to
// return (a bare object, or a list whose first element carries the limit)
// into the canonical struct. An empty list means no limit has been set yet.
func NormalizeMonthlyBudget(raw json.RawMessage) (MonthlyBudget, error) {
	if len(raw) == 0 {
		return MonthlyBudget{}, nil
	}

	var budget MonthlyBudget
	if err := json.Unmarshal(raw, &budget); err == nil {
		return budget, nil
	}

	var list []MonthlyBudget
	if err := json.Unmarshal(raw, &list); err != nil {
		return MonthlyBudget{}, fmt.Errorf("unexpected monthly budget shape: %w", err)
	}
	if len(list) == 0 {
		return MonthlyBudget{}, nil
	}
	return list[0], nil
}
