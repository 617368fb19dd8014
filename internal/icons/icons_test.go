package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Icon
	}{
		{name: "known icon", input: "Target", want: Target},
		{name: "another known icon", input: "Coffee", want: Coffee},
		{name: "unknown icon falls back", input: "FluxCapacitor", want: Fallback},
		{name: "empty falls back", input: "", want: Fallback},
		{name: "case sensitive", input: "target", want: Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(tt.input))
		})
	}
}

func TestGlyphAlwaysNonEmpty(t *testing.T) {
	assert.NotEmpty(t, Glyph("Target"))
	assert.NotEmpty(t, Glyph("definitely-not-an-icon"))
	assert.Equal(t, Glyph(string(Fallback)), Glyph("definitely-not-an-icon"))
}
