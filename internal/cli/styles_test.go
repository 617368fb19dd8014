package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name       string
		percent    float64
		width      int
		wantFilled int
	}{
		{name: "empty", percent: 0, width: 10, wantFilled: 0},
		{name: "half", percent: 50, width: 10, wantFilled: 5},
		{name: "full", percent: 100, width: 10, wantFilled: 10},
		{name: "over budget clamps to full", percent: 140, width: 10, wantFilled: 10},
		{name: "negative clamps to empty", percent: -5, width: 10, wantFilled: 0},
		{name: "rounds to nearest cell", percent: 33, width: 10, wantFilled: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := ProgressBar(tt.percent, tt.width)
			assert.Equal(t, tt.wantFilled, strings.Count(bar, "█"))
			assert.Equal(t, tt.width-tt.wantFilled, strings.Count(bar, "░"))
		})
	}
}

func TestProgressBarZeroWidth(t *testing.T) {
	assert.Empty(t, ProgressBar(50, 0))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₹1234.50", FormatAmount(1234.5))
	assert.Equal(t, "₹0.00", FormatAmount(0))
}
