package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fraudlens/fraudlens/internal/engine"
	"github.com/fraudlens/fraudlens/internal/model"
	"github.com/fraudlens/fraudlens/internal/payload"
	"github.com/fraudlens/fraudlens/internal/validate"
)

// Focusable fields, in display order. The first seven are text inputs; the
// rest are cycled selections.
const (
	fieldAmount = iota
	fieldAge
	fieldHour
	fieldTrxLat
	fieldTrxLong
	fieldMerchLat
	fieldMerchLong
	fieldDay
	fieldMonth
	fieldMerchant
	fieldCategory
	fieldJob
	fieldRegion
	fieldGender
	fieldCount
)

const textInputCount = 7

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var genders = []string{model.GenderMale, model.GenderFemale}

// Model is the bubbletea model for the prediction form.
type Model struct {
	ctx    context.Context
	eng    *engine.Engine
	styles Styles

	inputs   []textinput.Model
	rawInput textarea.Model
	focus    int

	// Cycled selection indices; -1 means no selection for categoricals.
	dayIdx      int
	monthIdx    int
	merchantIdx int
	categoryIdx int
	jobIdx      int
	regionIdx   int
	genderIdx   int

	busy     bool
	errMsg   string
	note     string
	quitting bool
}

// NewModel creates the form bound to an engine.
func NewModel(eng *engine.Engine) Model {
	placeholders := []string{"100.00", "34", "0-23", "12.9716", "77.5946", "12.9000", "77.6000"}

	inputs := make([]textinput.Model, textInputCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 16
		ti.Width = 14
		inputs[i] = ti
	}
	inputs[fieldAmount].Focus()

	raw := textarea.New()
	raw.Placeholder = `{"amt": 100.0, ...}`
	raw.SetHeight(8)
	raw.SetWidth(60)

	return Model{
		eng:         eng,
		styles:      DefaultStyles(),
		inputs:      inputs,
		rawInput:    raw,
		merchantIdx: -1,
		categoryIdx: -1,
		jobIdx:      -1,
		regionIdx:   -1,
		genderIdx:   -1,
		monthIdx:    0,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case predictionMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = engine.DescribeLocalError(msg.err)
			m.focusMissingField(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, nil

	case feedbackMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("feedback failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.note = "Thanks for your feedback!"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	raw := m.eng.Store().Draft().Mode == model.ModeRaw

	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "ctrl+r":
		if raw {
			m.eng.Store().SetMode(model.ModeStructured)
			m.rawInput.Blur()
			m.setFocus(m.focus)
		} else {
			m.eng.Store().SetMode(model.ModeRaw)
			m.blurAll()
			m.rawInput.Focus()
		}
		m.errMsg = ""
		return m, nil

	case "ctrl+s":
		return m.submit()

	case "enter":
		if raw {
			break // newline in the override buffer
		}
		return m.submit()

	case "y", "n":
		if fb := m.eng.Feedback(); fb != nil && !fb.Answered && !m.busy && !m.editingText() {
			return m, m.sendFeedback(msg.String() == "y")
		}

	case "tab", "down":
		if !raw {
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		}

	case "shift+tab", "up":
		if !raw {
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		}

	case "left", "right":
		if !raw && m.focus >= textInputCount {
			m.cycle(m.focus, msg.String() == "right")
			return m, nil
		}
	}

	return m.updateInputs(msg)
}

// editingText reports whether the focused control consumes plain letters,
// so y/n keep working as text there.
func (m Model) editingText() bool {
	return m.eng.Store().Draft().Mode == model.ModeRaw
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.errMsg = ""
	m.note = ""
	m.syncStore()

	ctx, eng := m.runContext(), m.eng
	return m, func() tea.Msg {
		result, err := eng.Submit(ctx)
		return predictionMsg{result: result, err: err}
	}
}

func (m Model) sendFeedback(correct bool) tea.Cmd {
	ctx, eng := m.runContext(), m.eng
	return func() tea.Msg {
		err := eng.SubmitFeedback(ctx, correct)
		return feedbackMsg{correct: correct, err: err}
	}
}

func (m Model) runContext() context.Context {
	if m.ctx != nil {
		return m.ctx
	}
	return context.Background()
}

// syncStore pushes every widget value into the draft store. Coordinate
// pairs only materialize once both halves parse; a half-typed pair reads
// as "not picked yet".
func (m *Model) syncStore() {
	s := m.eng.Store()
	s.SetAmount(strings.TrimSpace(m.inputs[fieldAmount].Value()))
	s.SetAge(strings.TrimSpace(m.inputs[fieldAge].Value()))
	s.SetHour(strings.TrimSpace(m.inputs[fieldHour].Value()))

	if lat, long, ok := parsePair(m.inputs[fieldTrxLat].Value(), m.inputs[fieldTrxLong].Value()); ok {
		s.SetTransactionLocation(lat, long)
	} else {
		s.ClearTransactionLocation()
	}
	if lat, long, ok := parsePair(m.inputs[fieldMerchLat].Value(), m.inputs[fieldMerchLong].Value()); ok {
		s.SetMerchantLocation(lat, long)
	} else {
		s.ClearMerchantLocation()
	}

	s.SetDayOfWeek(m.dayIdx)
	s.SetMonth(m.monthIdx + 1)
	s.SetMerchantGroup(selection(model.MerchantGroups.Values, m.merchantIdx))
	s.SetCategory(selection(model.Categories.Values, m.categoryIdx))
	s.SetJobGroup(selection(model.JobGroups.Values, m.jobIdx))
	s.SetRegion(selection(model.Regions.Values, m.regionIdx))
	s.SetGender(selection(genders, m.genderIdx))
	s.SetRawText(m.rawInput.Value())
}

func parsePair(latText, longText string) (lat, long float64, ok bool) {
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	long, err2 := strconv.ParseFloat(strings.TrimSpace(longText), 64)
	return lat, long, err1 == nil && err2 == nil
}

func selection(values []string, idx int) string {
	if idx < 0 || idx >= len(values) {
		return ""
	}
	return values[idx]
}

// cycle advances a selection field. Categoricals include a leading "none"
// slot; day and month wrap over their full ranges.
func (m *Model) cycle(field int, forward bool) {
	step := func(idx, n int, optional bool) int {
		low := 0
		if optional {
			low = -1
		}
		if forward {
			idx++
			if idx >= n {
				idx = low
			}
		} else {
			idx--
			if idx < low {
				idx = n - 1
			}
		}
		return idx
	}

	switch field {
	case fieldDay:
		m.dayIdx = step(m.dayIdx, len(weekdays), false)
	case fieldMonth:
		m.monthIdx = step(m.monthIdx, 12, false)
	case fieldMerchant:
		m.merchantIdx = step(m.merchantIdx, len(model.MerchantGroups.Values), true)
	case fieldCategory:
		m.categoryIdx = step(m.categoryIdx, len(model.Categories.Values), true)
	case fieldJob:
		m.jobIdx = step(m.jobIdx, len(model.JobGroups.Values), true)
	case fieldRegion:
		m.regionIdx = step(m.regionIdx, len(model.Regions.Values), true)
	case fieldGender:
		m.genderIdx = step(m.genderIdx, len(genders), true)
	}
}

func (m *Model) setFocus(field int) {
	m.focus = field
	for i := range m.inputs {
		if i == field {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *Model) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// focusMissingField directs the operator at the first missing field
// reported by validation.
func (m *Model) focusMissingField(err error) {
	var gap *payload.ValidationGapError
	if !errors.As(err, &gap) {
		return
	}

	switch gap.Field {
	case validate.FieldAmount:
		m.setFocus(fieldAmount)
	case validate.FieldAge:
		m.setFocus(fieldAge)
	case validate.FieldHour:
		m.setFocus(fieldHour)
	case validate.FieldTransactionLocation:
		m.setFocus(fieldTrxLat)
	case validate.FieldMerchantLocation:
		m.setFocus(fieldMerchLat)
	}
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.eng.Store().Draft().Mode == model.ModeRaw {
		var cmd tea.Cmd
		m.rawInput, cmd = m.rawInput.Update(msg)
		return m, cmd
	}

	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Fraud prediction"))
	b.WriteString("\n")

	if m.eng.Store().Draft().Mode == model.ModeRaw {
		b.WriteString(m.styles.Label.Render("Raw JSON override"))
		b.WriteString("\n")
		b.WriteString(m.rawInput.View())
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderStructured())
	}

	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.renderResult())
	b.WriteString(m.styles.Help.Render(m.helpLine()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderStructured() string {
	rows := []string{
		m.inputRow("Amount *", fieldAmount),
		m.inputRow("Age *", fieldAge),
		m.inputRow("Hour (0-23) *", fieldHour),
		m.pairRow("Transaction loc *", fieldTrxLat, fieldTrxLong),
		m.pairRow("Merchant loc *", fieldMerchLat, fieldMerchLong),
		m.cycleRow("Day of week", fieldDay, weekdays[m.dayIdx]),
		m.cycleRow("Month", fieldMonth, time.Month(m.monthIdx+1).String()),
		m.cycleRow("Merchant", fieldMerchant, displaySelection(model.MerchantGroups.Values, m.merchantIdx)),
		m.cycleRow("Category", fieldCategory, displaySelection(model.Categories.Values, m.categoryIdx)),
		m.cycleRow("Job", fieldJob, displaySelection(model.JobGroups.Values, m.jobIdx)),
		m.cycleRow("Region", fieldRegion, displaySelection(model.Regions.Values, m.regionIdx)),
		m.cycleRow("Gender", fieldGender, displaySelection(genders, m.genderIdx)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func displaySelection(values []string, idx int) string {
	if idx < 0 {
		return "(none)"
	}
	return values[idx]
}

func (m Model) inputRow(label string, field int) string {
	return m.rowLabel(label, field) + m.inputs[field].View()
}

func (m Model) pairRow(label string, latField, longField int) string {
	return m.rowLabel(label, latField) + m.inputs[latField].View() + "  " + m.inputs[longField].View()
}

func (m Model) cycleRow(label string, field int, value string) string {
	rendered := m.styles.Value.Render("‹ " + value + " ›")
	if m.focus == field {
		rendered = m.styles.Selected.Render("‹ " + value + " ›")
	}
	return m.rowLabel(label, field) + rendered
}

func (m Model) rowLabel(label string, field int) string {
	if m.focus == field {
		return m.styles.Selected.Render("› ") + m.styles.Label.Render(label)
	}
	return "  " + m.styles.Label.Render(label)
}

func (m Model) renderResult() string {
	result := m.eng.Result()
	if m.busy {
		return "\nPredicting...\n"
	}
	if result == nil {
		return ""
	}

	label := m.styles.NotFraud.Render("Not Fraud")
	if result.Label == model.LabelFraud {
		label = m.styles.Fraud.Render("Fraud")
	}

	lines := []string{
		fmt.Sprintf("Fraud probability: %.1f%%", result.FraudProbability*100),
		"Prediction: " + label,
	}

	fb := m.eng.Feedback()
	switch {
	case m.note != "":
		lines = append(lines, m.styles.Help.Render(m.note))
	case fb != nil && !fb.Answered:
		lines = append(lines, "Was this correct? (y/n)")
	}

	return m.styles.Result.Render(strings.Join(lines, "\n")) + "\n"
}

func (m Model) helpLine() string {
	if m.eng.Store().Draft().Mode == model.ModeRaw {
		return "ctrl+s submit • ctrl+r form mode • esc quit"
	}
	return "tab/↑↓ move • ←→ change • enter submit • ctrl+r raw mode • esc quit"
}
