package wizard

import (
	"errors"
	"fmt"
	"strings"

	"saporis/internal/fitness"
)

// Step identifies the wizard's current state. Steps advance strictly forward;
// there are no back-transitions.
type Step string

const (
	StepPersonalInfo  Step = "personal_info"
	StepAge           Step = "age"
	StepHeight        Step = "height"
	StepWeight        Step = "weight"
	StepActivityLevel Step = "activity_level"
	StepGoal          Step = "goal"
	StepSubmitted     Step = "submitted"
)

var (
	// ErrWrongStep is returned when a submission does not match the wizard's
	// current step.
	ErrWrongStep = errors.New("submission does not match current step")

	// ErrCompleted is returned for any submission after the wizard reached
	// the submitted state.
	ErrCompleted = errors.New("wizard already submitted")
)

// ValidationError describes a rejected step field. The step does not advance
// when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Profile is the completed output of a wizard run. CalorieGoal is derived on
// submission and never user-entered.
type Profile struct {
	FirstName          string
	LastName           string
	Email              string
	Password           string
	Age                int
	HeightCm           float64
	WeightKg           float64
	ActivityMultiplier float64
	Goal               fitness.Goal
	CalorieGoal        int
	OAuth              bool
}

// Wizard accumulates a user profile across the six onboarding steps and
// derives the calorie goal on the final one. The struct is JSON-serializable
// so a signup session can round-trip through the session store between steps.
type Wizard struct {
	Step      Step    `json:"step"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Age       int     `json:"age"`
	HeightCm  float64 `json:"height_cm"`
	WeightKg  float64 `json:"weight_kg"`
	Activity  float64 `json:"activity_multiplier"`
	OAuth     bool    `json:"oauth"`
}

// New starts a wizard at the personal-info step.
func New() *Wizard {
	return &Wizard{Step: StepPersonalInfo}
}

// NewPrefilled starts a wizard with identity fields sourced from an OAuth
// provider. The personal-info step is pre-completed and the wizard starts at
// the age step — the only conditional entry point. No password is collected.
func NewPrefilled(firstName, lastName, email string) *Wizard {
	return &Wizard{
		Step:      StepAge,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		OAuth:     true,
	}
}

// SubmitPersonalInfo validates and stores the identity fields. The password
// confirmation must match and the password must be at least 8 characters.
func (w *Wizard) SubmitPersonalInfo(firstName, lastName, email, password, confirm string) error {
	if err := w.guard(StepPersonalInfo); err != nil {
		return err
	}
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.ToLower(strings.TrimSpace(email))

	if firstName == "" {
		return &ValidationError{Field: "first_name", Reason: "must not be empty"}
	}
	if lastName == "" {
		return &ValidationError{Field: "last_name", Reason: "must not be empty"}
	}
	if email == "" || !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if len(password) < 8 {
		return &ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	if password != confirm {
		return &ValidationError{Field: "confirm_password", Reason: "passwords don't match"}
	}

	w.FirstName = firstName
	w.LastName = lastName
	w.Email = email
	w.Password = password
	w.Step = StepAge
	return nil
}

// SubmitAge validates and stores the age (13-120).
func (w *Wizard) SubmitAge(age int) error {
	if err := w.guard(StepAge); err != nil {
		return err
	}
	if age < 13 || age > 120 {
		return &ValidationError{Field: "age", Reason: "must be between 13 and 120"}
	}
	w.Age = age
	w.Step = StepHeight
	return nil
}

// SubmitHeight validates and stores the height in centimeters (100-250).
func (w *Wizard) SubmitHeight(heightCm float64) error {
	if err := w.guard(StepHeight); err != nil {
		return err
	}
	if heightCm < 100 || heightCm > 250 {
		return &ValidationError{Field: "height_cm", Reason: "must be between 100 and 250"}
	}
	w.HeightCm = heightCm
	w.Step = StepWeight
	return nil
}

// SubmitWeight validates and stores the weight in kilograms (30-300).
func (w *Wizard) SubmitWeight(weightKg float64) error {
	if err := w.guard(StepWeight); err != nil {
		return err
	}
	if weightKg < 30 || weightKg > 300 {
		return &ValidationError{Field: "weight_kg", Reason: "must be between 30 and 300"}
	}
	w.WeightKg = weightKg
	w.Step = StepActivityLevel
	return nil
}

// SubmitActivityLevel validates and stores the activity multiplier, which must
// be one of the five enumerated levels.
func (w *Wizard) SubmitActivityLevel(multiplier float64) error {
	if err := w.guard(StepActivityLevel); err != nil {
		return err
	}
	if !fitness.ValidActivityMultiplier(multiplier) {
		return &ValidationError{Field: "activity_multiplier", Reason: "must be one of the supported activity levels"}
	}
	w.Activity = multiplier
	w.Step = StepGoal
	return nil
}

// SubmitGoal completes the wizard: it validates the goal, derives the calorie
// target from the accumulated fields (ratio policy) and transitions to the
// submitted state. The returned profile is the wizard's final output and is
// not mutated afterwards; persisting it is the caller's concern.
func (w *Wizard) SubmitGoal(goal fitness.Goal) (*Profile, error) {
	if err := w.guard(StepGoal); err != nil {
		return nil, err
	}
	if !fitness.ValidGoal(goal) {
		return nil, &ValidationError{Field: "goal", Reason: "must be lose, maintain or gain"}
	}

	calorieGoal, err := fitness.CalorieTarget(
		w.WeightKg, w.HeightCm, float64(w.Age), w.Activity, goal, fitness.PolicyRatio)
	if err != nil {
		// Unreachable when steps were submitted in order; kept as a guard
		// against deserialized sessions with a stale multiplier.
		return nil, &ValidationError{Field: "activity_multiplier", Reason: err.Error()}
	}

	w.Step = StepSubmitted
	return &Profile{
		FirstName:          w.FirstName,
		LastName:           w.LastName,
		Email:              w.Email,
		Password:           w.Password,
		Age:                w.Age,
		HeightCm:           w.HeightCm,
		WeightKg:           w.WeightKg,
		ActivityMultiplier: w.Activity,
		Goal:               goal,
		CalorieGoal:        calorieGoal,
		OAuth:              w.OAuth,
	}, nil
}

// Completed reports whether the wizard reached the submitted state.
func (w *Wizard) Completed() bool {
	return w.Step == StepSubmitted
}

func (w *Wizard) guard(expected Step) error {
	if w.Step == StepSubmitted {
		return ErrCompleted
	}
	if w.Step != expected {
		return fmt.Errorf("%w: at %s, got %s", ErrWrongStep, w.Step, expected)
	}
	return nil
}
