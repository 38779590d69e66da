package fitness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected string
	}{
		{name: "increase", current: 150, previous: 100, expected: "+50.0%"},
		{name: "decrease", current: 50, previous: 100, expected: "-50.0%"},
		{name: "no change", current: 100, previous: 100, expected: "+0.0%"},
		{name: "fractional change", current: 103.2, previous: 100, expected: "+3.2%"},
		{name: "no previous record", current: 150, previous: 0, expected: NeutralTrend},
		{name: "no current record", current: 0, previous: 150, expected: NeutralTrend},
		{name: "neither record", current: 0, previous: 0, expected: NeutralTrend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PercentChange(tt.current, tt.previous))
		})
	}
}

func TestMacroShareFallback(t *testing.T) {
	protein, carb, fat := MacroShare(0, 0, 0)
	assert.Equal(t, 25, protein)
	assert.Equal(t, 45, carb)
	assert.Equal(t, 30, fat)
}

func TestMacroShare(t *testing.T) {
	protein, carb, fat := MacroShare(30, 40, 30)
	assert.Equal(t, 30, protein)
	assert.Equal(t, 40, carb)
	assert.Equal(t, 30, fat)

	// Independent rounding: each share rounds on its own, so the three can
	// legitimately sum to 99 or 101.
	protein, carb, fat = MacroShare(1, 1, 1)
	assert.Equal(t, 33, protein)
	assert.Equal(t, 33, carb)
	assert.Equal(t, 33, fat)
}
