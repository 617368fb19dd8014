package model

import (
	"bytes"
	"strconv"
)

// Amount is a monetary value. The backend serializes amounts inconsistently
// (JSON number, decimal string, or null); malformed values decode to 0 so a
// single bad record cannot poison an aggregate.
type Amount float64

// UnmarshalJSON accepts numbers, quoted decimal strings, and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	raw := string(data)
	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			*a = 0
			return nil
		}
		raw = unquoted
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*a = 0
		return nil
	}

	*a = Amount(v)
	return nil
}

// MarshalJSON emits a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', -1, 64)), nil
}

// Float returns the amount as a float64.
func (a Amount) Float() float64 {
	return float64(a)
}
