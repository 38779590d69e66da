package wizard

import (
	"encoding/json"
	"errors"
	"testing"

	"saporis/internal/fitness"

	"github.com/stretchr/testify/assert"
)

func completePersonalInfo(t *testing.T, w *Wizard) {
	t.Helper()
	err := w.SubmitPersonalInfo("Jane", "Doe", "jane@example.com", "password123", "password123")
	assert.NoError(t, err)
}

func TestWizardFullWalkthrough(t *testing.T) {
	w := New()
	assert.Equal(t, StepPersonalInfo, w.Step)

	completePersonalInfo(t, w)
	assert.Equal(t, StepAge, w.Step)

	assert.NoError(t, w.SubmitAge(30))
	assert.Equal(t, StepHeight, w.Step)

	assert.NoError(t, w.SubmitHeight(175))
	assert.Equal(t, StepWeight, w.Step)

	assert.NoError(t, w.SubmitWeight(70))
	assert.Equal(t, StepActivityLevel, w.Step)

	assert.NoError(t, w.SubmitActivityLevel(1.55))
	assert.Equal(t, StepGoal, w.Step)

	profile, err := w.SubmitGoal(fitness.GoalMaintain)
	assert.NoError(t, err)
	assert.True(t, w.Completed())

	assert.Equal(t, "Jane", profile.FirstName)
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.False(t, profile.OAuth)

	// The derived goal matches the calculator run with the same inputs.
	expected, err := fitness.CalorieTarget(70, 175, 30, 1.55, fitness.GoalMaintain, fitness.PolicyRatio)
	assert.NoError(t, err)
	assert.Equal(t, expected, profile.CalorieGoal)
}

func TestSubmitPersonalInfoValidation(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		password  string
		confirm   string
		field     string
	}{
		{name: "empty first name", lastName: "Doe", email: "a@b.com", password: "password123", confirm: "password123", field: "first_name"},
		{name: "empty last name", firstName: "Jane", email: "a@b.com", password: "password123", confirm: "password123", field: "last_name"},
		{name: "invalid email", firstName: "Jane", lastName: "Doe", email: "not-an-email", password: "password123", confirm: "password123", field: "email"},
		{name: "short password", firstName: "Jane", lastName: "Doe", email: "a@b.com", password: "short", confirm: "short", field: "password"},
		{name: "mismatched confirmation", firstName: "Jane", lastName: "Doe", email: "a@b.com", password: "password123", confirm: "password124", field: "confirm_password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			err := w.SubmitPersonalInfo(tt.firstName, tt.lastName, tt.email, tt.password, tt.confirm)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)

			// A rejected step leaves the wizard where it was.
			assert.Equal(t, StepPersonalInfo, w.Step)
		})
	}
}

func TestSubmitPersonalInfoNormalizesEmail(t *testing.T) {
	w := New()
	err := w.SubmitPersonalInfo("Jane", "Doe", "  Jane@Example.COM ", "password123", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", w.Email)
}

func TestRangeValidation(t *testing.T) {
	w := New()
	completePersonalInfo(t, w)

	assert.Error(t, w.SubmitAge(12))
	assert.Error(t, w.SubmitAge(121))
	assert.Equal(t, StepAge, w.Step)
	assert.NoError(t, w.SubmitAge(13))

	assert.Error(t, w.SubmitHeight(99))
	assert.Error(t, w.SubmitHeight(251))
	assert.Equal(t, StepHeight, w.Step)
	assert.NoError(t, w.SubmitHeight(100))

	assert.Error(t, w.SubmitWeight(29))
	assert.Error(t, w.SubmitWeight(301))
	assert.Equal(t, StepWeight, w.Step)
	assert.NoError(t, w.SubmitWeight(30))

	assert.Error(t, w.SubmitActivityLevel(1.5))
	assert.Equal(t, StepActivityLevel, w.Step)
	assert.NoError(t, w.SubmitActivityLevel(1.2))

	_, err := w.SubmitGoal(fitness.Goal("bulk"))
	assert.Error(t, err)
	assert.Equal(t, StepGoal, w.Step)
}

func TestOutOfOrderSubmission(t *testing.T) {
	w := New()

	err := w.SubmitAge(30)
	assert.ErrorIs(t, err, ErrWrongStep)
	assert.Equal(t, StepPersonalInfo, w.Step)

	err = w.SubmitHeight(175)
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestPrefilledWizardStartsAtAge(t *testing.T) {
	w := NewPrefilled("Jane", "Doe", "Jane@Example.com")
	assert.Equal(t, StepAge, w.Step)
	assert.Equal(t, "jane@example.com", w.Email)
	assert.True(t, w.OAuth)

	// The personal-info step is pre-completed and cannot be resubmitted.
	err := w.SubmitPersonalInfo("Other", "Name", "other@example.com", "password123", "password123")
	assert.ErrorIs(t, err, ErrWrongStep)

	assert.NoError(t, w.SubmitAge(25))
	assert.NoError(t, w.SubmitHeight(160))
	assert.NoError(t, w.SubmitWeight(55))
	assert.NoError(t, w.SubmitActivityLevel(1.375))

	profile, err := w.SubmitGoal(fitness.GoalLose)
	assert.NoError(t, err)
	assert.True(t, profile.OAuth)
	assert.Empty(t, profile.Password)
}

func TestSubmissionAfterCompletion(t *testing.T) {
	w := New()
	completePersonalInfo(t, w)
	assert.NoError(t, w.SubmitAge(30))
	assert.NoError(t, w.SubmitHeight(175))
	assert.NoError(t, w.SubmitWeight(70))
	assert.NoError(t, w.SubmitActivityLevel(1.55))

	_, err := w.SubmitGoal(fitness.GoalGain)
	assert.NoError(t, err)

	// Every further submission fails with ErrCompleted.
	assert.True(t, errors.Is(w.SubmitAge(31), ErrCompleted))
	_, err = w.SubmitGoal(fitness.GoalLose)
	assert.True(t, errors.Is(err, ErrCompleted))
}

func TestWizardRoundTripsThroughJSON(t *testing.T) {
	w := New()
	completePersonalInfo(t, w)
	assert.NoError(t, w.SubmitAge(30))
	assert.NoError(t, w.SubmitHeight(175))

	data, err := json.Marshal(w)
	assert.NoError(t, err)

	var restored Wizard
	assert.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, StepWeight, restored.Step)

	// The restored wizard continues where the original left off.
	assert.NoError(t, restored.SubmitWeight(70))
	assert.NoError(t, restored.SubmitActivityLevel(1.9))

	profile, err := restored.SubmitGoal(fitness.GoalMaintain)
	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", profile.Email)
}
