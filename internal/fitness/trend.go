package fitness

import (
	"fmt"
	"math"
)

// NeutralTrend is returned whenever a day-over-day change cannot be computed.
const NeutralTrend = "+0%"

// Fallback macro distribution shown before any food has been logged.
const (
	fallbackProteinShare = 25
	fallbackCarbShare    = 45
	fallbackFatShare     = 30
)

// PercentChange formats a day-over-day change between two samples as the
// dashboard trend string, e.g. "+5.0%" or "-3.2%". When either sample is zero
// (no record for that day) the neutral sentinel is returned instead of
// dividing by zero.
func PercentChange(current, previous float64) string {
	if previous == 0 || current == 0 {
		return NeutralTrend
	}
	return fmt.Sprintf("%+.1f%%", (current-previous)/previous*100)
}

// MacroShare converts raw macro grams into rounded display percentages.
// With nothing logged it returns the fixed 25/45/30 fallback. The three shares
// are rounded independently and may not sum to exactly 100; the dashboard
// accepts this rather than redistributing the remainder.
func MacroShare(proteinG, carbG, fatG float64) (protein, carb, fat int) {
	total := proteinG + carbG + fatG
	if total == 0 {
		return fallbackProteinShare, fallbackCarbShare, fallbackFatShare
	}
	protein = int(math.Round(proteinG / total * 100))
	carb = int(math.Round(carbG / total * 100))
	fat = int(math.Round(fatG / total * 100))
	return protein, carb, fat
}
