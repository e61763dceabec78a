// Package tui is the terminal rendition of the loyalty prediction form.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/Bipul-Dubey/loyalty-predictor/models"
	"github.com/Bipul-Dubey/loyalty-predictor/services"
	"github.com/Bipul-Dubey/loyalty-predictor/views"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// toastTTL is how long a failure toast stays up. Success toasts stay until
// the reset delay of the submission elapses.
const toastTTL = 5 * time.Second

type submitDoneMsg struct {
	form   models.Form
	result *services.SubmitResult
	toast  *services.Notification
	err    error
}

// resetMsg clears the screen after a successful prediction.
type resetMsg struct{ seq int }

type toastExpiredMsg struct{ seq int }

// Model is the bubbletea model for the prediction form.
type Model struct {
	ctx        context.Context
	submission services.SubmissionService
	logger     *zap.Logger
	styles     Styles

	form   *models.Form
	inputs []textinput.Model
	// focus indexes inputs; len(inputs) is the submit button.
	focus int

	submitting bool
	spinner    spinner.Model

	toast    *services.Notification
	toastSeq int
	// resetSeq identifies the latest scheduled reset; toasts never cancel it.
	resetSeq int
}

func New(ctx context.Context, submission services.SubmissionService, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	inputs := make([]textinput.Model, len(views.FormFields))
	for i, fv := range views.FormFields {
		ti := textinput.New()
		ti.Placeholder = fv.Placeholder
		ti.CharLimit = 64
		ti.Width = 40
		ti.Prompt = "> "
		inputs[i] = ti
	}
	inputs[0].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:        ctx,
		submission: submission,
		logger:     logger,
		styles:     DefaultStyles(),
		form:       models.NewForm(),
		inputs:     inputs,
		spinner:    sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			return m, m.moveFocus(1)
		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.moveFocus(-1)
		case tea.KeyCtrlS:
			return m.submit()
		case tea.KeyEnter:
			if m.focus >= len(m.inputs)-1 {
				return m.submit()
			}
			return m, m.moveFocus(1)
		}
		return m.updateFocusedInput(msg)

	case submitDoneMsg:
		return m.finishSubmit(msg)

	case resetMsg:
		if msg.seq == m.resetSeq {
			m.toast = nil
			m.form.Reset()
			m.syncInputs()
		}
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards msg to the focused input and copies its value
// into the form. Only that one field changes.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	field := views.FormFields[m.focus].Field
	if err := m.form.Set(field, m.inputs[m.focus].Value()); err != nil {
		m.logger.Warn("Dropping input for unknown field", zap.String("field", string(field)), zap.Error(err))
	}
	return m, cmd
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	stops := len(m.inputs) + 1
	m.focus = (m.focus + delta + stops) % stops

	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	// One submission at a time.
	if m.submitting {
		return m, nil
	}
	m.submitting = true

	snapshot := copyForm(m.form)
	ctx, svc := m.ctx, m.submission
	run := func() tea.Msg {
		toasts := &services.ToastCollector{}
		result, err := svc.Submit(ctx, &snapshot, toasts)
		done := submitDoneMsg{form: snapshot, result: result, err: err}
		if last, ok := toasts.Last(); ok {
			done.toast = &last
		}
		return done
	}
	return m, tea.Batch(run, m.spinner.Tick)
}

func (m Model) finishSubmit(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		m.logger.Warn("Submission failed", zap.Error(msg.err))
	}

	switch msg.result.Status {
	case services.SubmitBlocked:
		m.form.Errors = msg.form.Errors
		return m, nil

	case services.SubmitFailed:
		// Form is kept as typed so the user can retry.
		m.toastSeq++
		m.toast = msg.toast
		seq := m.toastSeq
		return m, tea.Tick(toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
	}

	*m.form = msg.form
	m.syncInputs()
	m.toastSeq++
	m.toast = msg.toast
	m.focus = len(m.inputs)
	focusCmd := m.moveFocus(1)

	if msg.result.ResetAfter <= 0 {
		return m, focusCmd
	}
	m.resetSeq++
	seq := m.resetSeq
	return m, tea.Batch(focusCmd, tea.Tick(msg.result.ResetAfter, func(time.Time) tea.Msg { return resetMsg{seq: seq} }))
}

func (m *Model) syncInputs() {
	for i, fv := range views.FormFields {
		m.inputs[i].SetValue(m.form.Get(fv.Field))
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Predict Loyalty"))
	b.WriteString("\n")

	for i, fv := range views.FormFields {
		b.WriteString(m.styles.Label.Render(fv.Label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg := m.form.Error(fv.Field); msg != "" {
			b.WriteString(m.styles.Error.Render(msg))
		} else {
			b.WriteString(m.styles.Note.Render(fv.Note))
		}
		b.WriteString("\n\n")
	}

	button := m.styles.Button
	if m.focus == len(m.inputs) {
		button = m.styles.ActiveButton
	}
	b.WriteString(button.Render("Predict Loyalty"))
	if m.submitting {
		b.WriteString(" " + m.spinner.View() + " predicting…")
	}
	b.WriteString("\n")

	if m.toast != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.ToastStyle(m.toast.Severity).Render(m.toast.Message))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("tab/↓ next • shift+tab/↑ previous • enter on last field or ctrl+s submit • esc quit"))
	return b.String()
}

// Form exposes the current form state.
func (m Model) Form() models.Form {
	return copyForm(m.form)
}

// Toast returns the notification currently on screen.
func (m Model) Toast() *services.Notification {
	return m.toast
}

func (m Model) Submitting() bool {
	return m.submitting
}

func copyForm(f *models.Form) models.Form {
	out := models.Form{Values: f.Values, Errors: make(models.ValidationErrors, len(f.Errors))}
	for k, v := range f.Errors {
		out.Errors[k] = v
	}
	return out
}
