package fitness

import (
	"fmt"
	"math"
)

// Sex selects the Mifflin-St Jeor constant term. SexUnspecified uses the
// male constant, matching the signup flow which never asks for sex.
type Sex string

const (
	SexMale        Sex = "male"
	SexFemale      Sex = "female"
	SexUnspecified Sex = ""
)

// Goal is the user's weight goal selected on the last wizard step.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// ValidGoal reports whether g is one of the three supported goals.
func ValidGoal(g Goal) bool {
	return g == GoalLose || g == GoalMaintain || g == GoalGain
}

// ActivityLevels maps each supported TDEE multiplier to its display label.
// This is the single source of truth for valid activity levels — the wizard
// and the profile PATCH handler both validate against it.
var ActivityLevels = map[float64]string{
	1.2:   "Sedentary",
	1.375: "Lightly Active",
	1.55:  "Moderately Active",
	1.725: "Very Active",
	1.9:   "Extra Active",
}

// ValidActivityMultiplier reports whether m is one of the five supported levels.
func ValidActivityMultiplier(m float64) bool {
	_, ok := ActivityLevels[m]
	return ok
}

// Policy names a goal-adjustment strategy. The product carries two: the signup
// wizard scales TDEE by ±20%, the fitness-metrics view offsets it by ±500
// calories. Callers pick one explicitly per call site.
type Policy int

const (
	PolicyRatio Policy = iota
	PolicyFixedOffset
)

// BMR computes basal metabolic rate (Mifflin-St Jeor) in calories/day.
// The male constant exceeds the female constant by exactly 166.
func BMR(weightKg, heightCm, ageYears float64, sex Sex) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*ageYears
	if sex == SexFemale {
		return bmr - 161
	}
	return bmr + 5
}

// BasicBMR is the simplified signup-time variant with no sex term at all.
func BasicBMR(weightKg, heightCm, ageYears float64) float64 {
	return 10*weightKg + 6.25*heightCm - 5*ageYears
}

// TDEE scales a BMR by one of the five supported activity multipliers.
func TDEE(bmr, multiplier float64) (float64, error) {
	if !ValidActivityMultiplier(multiplier) {
		return 0, fmt.Errorf("unknown activity multiplier: %v", multiplier)
	}
	return bmr * multiplier, nil
}

// AdjustForGoal applies the chosen policy to a daily energy expenditure and
// returns the calorie target. The result is clamped to a minimum of 0 so that
// implausible inputs (tiny weight/height with high age) never yield a negative
// target.
func AdjustForGoal(tdee float64, goal Goal, policy Policy) int {
	var target float64
	switch policy {
	case PolicyFixedOffset:
		switch goal {
		case GoalLose:
			target = tdee - 500
		case GoalGain:
			target = tdee + 500
		default:
			target = tdee
		}
	default: // PolicyRatio
		switch goal {
		case GoalLose:
			target = tdee * 0.8
		case GoalGain:
			target = tdee * 1.2
		default:
			target = tdee
		}
	}

	result := int(math.Round(target))
	if result < 0 {
		result = 0
	}
	return result
}

// CalculateCalorieGoal is the simplified signup-time calculation: BasicBMR
// adjusted by the ratio policy, with no activity multiplier and no sex term.
func CalculateCalorieGoal(weightKg, heightCm, ageYears float64, goal Goal) int {
	return AdjustForGoal(BasicBMR(weightKg, heightCm, ageYears), goal, PolicyRatio)
}

// CalorieTarget is the full-profile calculation used when the wizard submits:
// BMR (sex-unspecified) scaled by the activity multiplier, then adjusted by
// the given policy. Errors only on an unknown multiplier — range validation of
// the anthropometric fields is the wizard's job, not the calculator's.
func CalorieTarget(weightKg, heightCm, ageYears, multiplier float64, goal Goal, policy Policy) (int, error) {
	tdee, err := TDEE(BMR(weightKg, heightCm, ageYears, SexUnspecified), multiplier)
	if err != nil {
		return 0, err
	}
	return AdjustForGoal(tdee, goal, policy), nil
}

// BMI returns the body mass index for height in centimeters and weight in
// kilograms, rounded to one decimal.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	h := heightCm / 100.0
	return math.Round(weightKg/(h*h)*10) / 10
}

// BMICategory buckets a BMI value into the standard WHO labels.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
