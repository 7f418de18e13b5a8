package tui

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-visit-feedback/internal/form"
	"github.com/MKhiriev/go-visit-feedback/internal/service"
	"github.com/MKhiriev/go-visit-feedback/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	msgThanksWithSurvey = "Thank you! We have sent a short survey to your email. Please check your inbox."
	msgThanksRecorded   = "Thank you! Your visit has been recorded."
)

// IntakeModel is the customer intake screen. Field state, validation and the
// submission lifecycle live in a [form.Controller]; the model only maps key
// events onto it and renders the result.
//
// Text fields are edited in place, the purpose of visit is cycled with ←/→ and
// the consent checkbox toggled with space. The custom purpose input is only
// reachable while "Others" is selected.
type IntakeModel struct {
	ctx    context.Context
	intake service.IntakeService

	schema *form.Schema
	ctrl   *form.Controller

	inputs     map[string]textinput.Model
	focus      string
	spinner    spinner.Model
	labelWidth int
}

func NewIntakeModel(ctx context.Context, intake service.IntakeService) *IntakeModel {
	schema := form.IntakeSchema()
	m := &IntakeModel{
		ctx:     ctx,
		intake:  intake,
		schema:  schema,
		ctrl:    form.NewController(schema),
		inputs:  make(map[string]textinput.Model),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	for _, f := range schema.Fields() {
		if w := utf8.RuneCountInString(f.Label); w > m.labelWidth {
			m.labelWidth = w
		}
		if !isTextField(f) {
			continue
		}
		in := textinput.New()
		in.Placeholder = strings.ToLower(f.Label)
		in.Width = 40
		in.CharLimit = 120
		m.inputs[f.Name] = in
	}

	m.focusField(form.FieldName)
	return m
}

// isTextField reports whether f is edited through a text input.
func isTextField(f form.Field) bool {
	return f.Default.Kind() == form.KindText && f.Name != form.FieldPurposeOfVisit
}

func (m *IntakeModel) Init() tea.Cmd {
	return textinput.Blink
}

// Discard drops a pending submission when the screen is left.
func (m *IntakeModel) Discard() {
	m.ctrl.Discard()
}

func (m *IntakeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case customerRegisteredMsg:
		m.ctrl.FinishSubmit(msg.ticket, msg.created, msg.err)
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.State() != form.StateSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInput(msg)
}

func (m *IntakeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ctrl.State() == form.StateSucceeded {
		if key.Matches(msg, keys.enter, keys.esc) {
			return m, navigate(pageMenu, m.successNotice())
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageMenu, nil)
	case key.Matches(msg, keys.enter):
		return m, m.submit()
	}

	if !m.ctrl.CanSubmit() {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.moveFocus(-1)
		return m, nil
	}

	switch m.focus {
	case form.FieldPurposeOfVisit:
		switch {
		case key.Matches(msg, keys.right):
			m.cyclePurpose(1)
		case key.Matches(msg, keys.left):
			m.cyclePurpose(-1)
		}
		return m, nil

	case form.FieldEmailConsent:
		if key.Matches(msg, keys.toggle) {
			_ = m.ctrl.SetField(form.FieldEmailConsent, form.BoolValue(!m.ctrl.Value(form.FieldEmailConsent).Bool()))
		}
		return m, nil
	}

	return m.updateInput(msg)
}

// updateInput forwards msg to the focused text input and mirrors its value
// into the draft.
func (m *IntakeModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	in, ok := m.inputs[m.focus]
	if !ok {
		return m, nil
	}
	if _, isKey := msg.(tea.KeyMsg); isKey && !m.ctrl.CanSubmit() {
		return m, nil
	}

	var cmd tea.Cmd
	in, cmd = in.Update(msg)
	m.inputs[m.focus] = in

	if m.ctrl.Value(m.focus).Text() != in.Value() {
		_ = m.ctrl.SetField(m.focus, form.TextValue(in.Value()))
	}
	return m, cmd
}

func (m *IntakeModel) submit() tea.Cmd {
	sub, err := m.ctrl.BeginSubmit()
	if err != nil {
		if errors.Is(err, form.ErrValidation) {
			m.focusFirstInvalid()
		}
		return nil
	}

	ctx := m.ctx
	intake := m.intake
	customer := form.CustomerFromDraft(sub.Values)

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		created, err := intake.Register(ctx, customer)
		return customerRegisteredMsg{ticket: sub.Ticket, created: created, err: err}
	})
}

func (m *IntakeModel) cyclePurpose(delta int) {
	current := m.ctrl.Value(form.FieldPurposeOfVisit).Text()
	idx := 0
	for i, opt := range form.PurposeOptions {
		if opt == current {
			idx = i
			break
		}
	}
	n := len(form.PurposeOptions)
	idx = (idx + delta + n) % n
	_ = m.ctrl.SetField(form.FieldPurposeOfVisit, form.TextValue(form.PurposeOptions[idx]))

	if !m.ctrl.Active(form.FieldCustomPurpose) {
		in := m.inputs[form.FieldCustomPurpose]
		in.SetValue("")
		m.inputs[form.FieldCustomPurpose] = in
	}
}

// visibleFields returns the names of the fields currently on screen.
func (m *IntakeModel) visibleFields() []string {
	out := make([]string, 0, len(m.inputs)+2)
	for _, f := range m.schema.Fields() {
		if m.ctrl.Active(f.Name) {
			out = append(out, f.Name)
		}
	}
	return out
}

// moveFocus blurs the field being left and focuses its neighbour.
func (m *IntakeModel) moveFocus(delta int) {
	visible := m.visibleFields()
	idx := 0
	for i, name := range visible {
		if name == m.focus {
			idx = i
			break
		}
	}
	_ = m.ctrl.BlurField(m.focus)

	n := len(visible)
	m.focusField(visible[(idx+delta+n)%n])
}

func (m *IntakeModel) focusField(name string) {
	if in, ok := m.inputs[m.focus]; ok {
		in.Blur()
		m.inputs[m.focus] = in
	}
	m.focus = name
	if in, ok := m.inputs[name]; ok {
		in.Focus()
		m.inputs[name] = in
	}
}

func (m *IntakeModel) focusFirstInvalid() {
	for _, name := range m.visibleFields() {
		if m.ctrl.Error(name) != "" {
			m.focusField(name)
			return
		}
	}
}

func (m *IntakeModel) successNotice() string {
	created, _ := m.ctrl.Result().(models.CustomerCreated)
	name := strings.TrimSpace(m.ctrl.Value(form.FieldName).Text())
	if created.CustomerID != "" {
		return "Customer " + name + " registered (id " + created.CustomerID + ")"
	}
	return "Customer " + name + " registered"
}

func (m *IntakeModel) View() string {
	if m.ctrl.State() == form.StateSucceeded {
		return m.viewSucceeded()
	}

	var b strings.Builder
	for _, name := range m.visibleFields() {
		f, _ := m.schema.Field(name)
		fieldRow(&b, name == m.focus, f.Label, m.labelWidth, m.fieldValue(f))
		if m.ctrl.Touched(name) {
			fieldError(&b, m.labelWidth, m.ctrl.Error(name))
		}
	}

	b.WriteString("\n")
	switch {
	case m.ctrl.State() == form.StateSubmitting:
		b.WriteString(m.spinner.View())
		b.WriteString(" Saving customer details...\n")
	default:
		b.WriteString("[Submit]\n")
	}

	if notice := m.ctrl.Notice(); notice != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + notice))
		b.WriteString("\n")
	}

	return renderPage("CUSTOMER INTAKE", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ←/→: purpose │ space: consent │ enter: submit")
}

func (m *IntakeModel) fieldValue(f form.Field) string {
	switch f.Name {
	case form.FieldPurposeOfVisit:
		v := m.ctrl.Value(f.Name).Text()
		if v == "" {
			v = "select…"
		}
		return "‹ " + v + " ›"
	case form.FieldEmailConsent:
		if m.ctrl.Value(f.Name).Bool() {
			return "[x]"
		}
		return "[ ]"
	}
	in := m.inputs[f.Name]
	return "[" + in.View() + "]"
}

func (m *IntakeModel) viewSucceeded() string {
	created, _ := m.ctrl.Result().(models.CustomerCreated)

	var b strings.Builder
	if m.ctrl.Value(form.FieldEmailConsent).Bool() {
		b.WriteString(successStyle.Render(msgThanksWithSurvey))
	} else {
		b.WriteString(successStyle.Render(msgThanksRecorded))
	}
	b.WriteString("\n")
	if created.Message != "" {
		b.WriteString("\n")
		b.WriteString(created.Message)
		b.WriteString("\n")
	}
	if created.CustomerID != "" {
		b.WriteString("Customer ID: ")
		b.WriteString(created.CustomerID)
		b.WriteString("\n")
	}

	return renderPage("CUSTOMER INTAKE", strings.TrimRight(b.String(), "\n"), "enter / esc: back to menu")
}
