package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMonthlyBudget(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "bare object", raw: `{"amount": 15000}`, want: 15000},
		{name: "list with one element", raw: `[{"amount": "12000"}]`, want: 12000},
		{name: "list takes first element", raw: `[{"amount": 8000}, {"amount": 9000}]`, want: 8000},
		{name: "empty list means unset", raw: `[]`, want: 0},
		{name: "string amount in object", raw: `{"amount": "7500.50"}`, want: 7500.50},
		{name: "unexpected shape", raw: `"nope"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget, err := NormalizeMonthlyBudget(json.RawMessage(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, budget.Amount.Float(), 0.0001)
		})
	}
}
