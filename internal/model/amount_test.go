package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want float64
	}{
		{name: "number", json: `123.45`, want: 123.45},
		{name: "integer", json: `500`, want: 500},
		{name: "decimal string", json: `"123.45"`, want: 123.45},
		{name: "integer string", json: `"500"`, want: 500},
		{name: "null", json: `null`, want: 0},
		{name: "empty string", json: `""`, want: 0},
		{name: "garbage string", json: `"12abc"`, want: 0},
		{name: "negative", json: `-42.5`, want: -42.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tt.json), &a)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, a.Float(), 0.0001)
		})
	}
}

func TestAmountMalformedDoesNotPoisonRecord(t *testing.T) {
	// One bad amount inside a transaction must decode to 0, not fail the record.
	var tx Transaction
	err := json.Unmarshal([]byte(`{"id": 1, "title": "Chai", "amount": "not-a-number", "transaction_type": "expense"}`), &tx)
	require.NoError(t, err)
	assert.Equal(t, "Chai", tx.Title)
	assert.Zero(t, tx.Amount.Float())
}

func TestAmountMarshal(t *testing.T) {
	data, err := json.Marshal(Amount(99.9))
	require.NoError(t, err)
	assert.Equal(t, "99.9", string(data))
}
