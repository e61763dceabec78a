package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Bipul-Dubey/loyalty-predictor/constants"
	"github.com/Bipul-Dubey/loyalty-predictor/models"
	"github.com/Bipul-Dubey/loyalty-predictor/services"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPredictor struct {
	score float64
	err   error
	calls int
}

func (s *stubPredictor) PredictLoyalty(context.Context, models.PredictionRequest) (float64, error) {
	s.calls++
	return s.score, s.err
}

func newTestModel(t *testing.T, predictor services.PredictService) Model {
	t.Helper()
	v, err := services.NewValidator()
	require.NoError(t, err)
	svc := services.NewSubmissionService(v, predictor, 3*time.Second, nil)
	return New(context.Background(), svc, nil)
}

func typeText(m Model, text string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func press(m Model, key tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(Model), cmd
}

func fillScenario(t *testing.T, m Model, attendance string) Model {
	t.Helper()
	for i, value := range []string{"5", "2", "100", attendance, "8", "Alice"} {
		m = typeText(m, value)
		if i < 5 {
			m, _ = press(m, tea.KeyTab)
		}
	}
	return m
}

// runSubmit executes the submission command the way the bubbletea runtime
// would and feeds the resulting message back into the model.
func runSubmit(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	m, cmd := press(m, tea.KeyCtrlS)
	require.NotNil(t, cmd)
	require.True(t, m.Submitting())

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if c == nil {
			continue
		}
		if done, ok := c().(submitDoneMsg); ok {
			next, follow := m.Update(done)
			return next.(Model), follow
		}
	}
	t.Fatal("submission command produced no result")
	return m, nil
}

func TestTypingUpdatesOnlyFocusedField(t *testing.T) {
	m := newTestModel(t, &stubPredictor{})

	m = typeText(m, "12")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "3")

	form := m.Form()
	assert.Equal(t, "12", form.Get(models.FieldFrequencyOfCommunication))
	assert.Equal(t, "3", form.Get(models.FieldHelpInCrises))
	assert.Empty(t, form.Get(models.FieldRelationshipName))
}

func TestSubmitSuccessResetsForm(t *testing.T) {
	predictor := &stubPredictor{score: 9}
	m := fillScenario(t, newTestModel(t, predictor), "50")

	m, follow := runSubmit(t, m)

	assert.False(t, m.Submitting())
	assert.Equal(t, 1, predictor.calls)
	require.NotNil(t, m.Toast())
	assert.Equal(t, constants.SeveritySuccess, m.Toast().Severity)
	assert.Contains(t, m.Toast().Message, "Alice")
	assert.Contains(t, m.Toast().Message, "high")
	assert.Equal(t, models.PredictionRequest{}, m.Form().Values)
	assert.Contains(t, m.View(), "Congratulations Alice")
	require.NotNil(t, follow)

	next, _ := m.Update(resetMsg{seq: m.resetSeq})
	m = next.(Model)
	assert.Nil(t, m.Toast())
}

func TestSubmitSuccessRefocusesFirstInput(t *testing.T) {
	m := fillScenario(t, newTestModel(t, &stubPredictor{score: 9}), "50")

	m, follow := runSubmit(t, m)

	assert.Equal(t, 0, m.focus)
	assert.True(t, m.inputs[0].Focused())
	batch, ok := follow().(tea.BatchMsg)
	require.True(t, ok, "focus and reset commands are batched")
	assert.Len(t, batch, 2)
}

func TestFailedResubmitKeepsScheduledReset(t *testing.T) {
	predictor := &stubPredictor{score: 9}
	m := fillScenario(t, newTestModel(t, predictor), "50")
	m, _ = runSubmit(t, m)
	reset := resetMsg{seq: m.resetSeq}

	predictor.score, predictor.err = 0, errors.New("connection refused")
	m = fillScenario(t, m, "60")
	m, _ = runSubmit(t, m)
	require.NotNil(t, m.Toast())
	assert.Equal(t, constants.SeverityError, m.Toast().Severity)

	next, _ := m.Update(reset)
	m = next.(Model)
	assert.Nil(t, m.Toast())
	assert.Equal(t, models.PredictionRequest{}, m.Form().Values)
}

func TestSubmitBlockedShowsInlineError(t *testing.T) {
	predictor := &stubPredictor{score: 9}
	m := fillScenario(t, newTestModel(t, predictor), "150")

	m, _ = runSubmit(t, m)

	assert.Zero(t, predictor.calls)
	assert.Nil(t, m.Toast())
	assert.Equal(t, models.ValidationErrors{
		models.FieldAttendanceAtEvents: "Attendance at Events must be a percentage (0-100).",
	}, m.Form().Errors)
	form := m.Form()
	assert.Equal(t, "Alice", form.Get(models.FieldRelationshipName))
	assert.Contains(t, m.View(), "Attendance at Events must be a percentage (0-100).")
}

func TestSubmitFailureKeepsValues(t *testing.T) {
	predictor := &stubPredictor{err: errors.New("connection refused")}
	m := fillScenario(t, newTestModel(t, predictor), "50")

	m, _ = runSubmit(t, m)

	require.NotNil(t, m.Toast())
	assert.Equal(t, constants.SeverityError, m.Toast().Severity)
	assert.Equal(t, constants.GenericPredictionFailure, m.Toast().Message)
	form := m.Form()
	assert.Equal(t, "50", form.Get(models.FieldAttendanceAtEvents))
	assert.Equal(t, "Alice", form.Get(models.FieldRelationshipName))

	next, _ := m.Update(toastExpiredMsg{seq: m.toastSeq})
	m = next.(Model)
	assert.Nil(t, m.Toast())
	form = m.Form()
	assert.Equal(t, "Alice", form.Get(models.FieldRelationshipName))
}

func TestSecondSubmitIgnoredWhileInFlight(t *testing.T) {
	m := fillScenario(t, newTestModel(t, &stubPredictor{score: 9}), "50")

	m, cmd := press(m, tea.KeyCtrlS)
	require.NotNil(t, cmd)
	_, cmd = press(m, tea.KeyCtrlS)
	assert.Nil(t, cmd)
}

func TestStaleResetIgnored(t *testing.T) {
	m := newTestModel(t, &stubPredictor{})
	m.toast = &services.Notification{Message: "hi", Severity: constants.SeverityInfo}
	m.resetSeq = 2

	next, _ := m.Update(resetMsg{seq: 1})
	assert.NotNil(t, next.(Model).Toast())
}
