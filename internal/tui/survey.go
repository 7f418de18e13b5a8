package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-visit-feedback/internal/form"
	"github.com/MKhiriev/go-visit-feedback/internal/service"
	"github.com/MKhiriev/go-visit-feedback/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	msgInvalidSurveyLink = "Invalid survey link"
	msgSurveyThanks      = "Thank you for your feedback!"
)

type surveyFocus int

const (
	surveyFocusRating surveyFocus = iota
	surveyFocusText
)

// SurveyModel is the follow-up survey screen for one token. The token is
// resolved once on Init; the form is editable only after a successful lookup
// and any lookup failure is terminal.
type SurveyModel struct {
	ctx    context.Context
	survey service.SurveyService
	token  string

	ctrl    *form.Controller
	info    models.SurveyContext

	text    textarea.Model
	focus   surveyFocus
	spinner spinner.Model
}

func NewSurveyModel(ctx context.Context, survey service.SurveyService, token string) *SurveyModel {
	ta := textarea.New()
	ta.Placeholder = "Tell us about your visit..."
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(5)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))

	return &SurveyModel{
		ctx:     ctx,
		survey:  survey,
		token:   token,
		ctrl:    form.NewController(form.SurveySchema()),
		text:    ta,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Init starts the token lookup. A blank token makes the link invalid right
// away without calling the service.
func (m *SurveyModel) Init() tea.Cmd {
	ticket, err := m.ctrl.BeginResolve(m.token)
	if err != nil {
		return nil
	}

	ctx := m.ctx
	survey := m.survey
	token := m.token

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		sc, err := survey.Resolve(ctx, token)
		return surveyResolvedMsg{ticket: ticket, survey: sc, err: err}
	})
}

// Discard drops a pending lookup or submission when the screen is left.
func (m *SurveyModel) Discard() {
	m.ctrl.Discard()
}

func (m *SurveyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case surveyResolvedMsg:
		if m.ctrl.FinishResolve(msg.ticket, msg.err) && msg.err == nil {
			m.info = msg.survey
		}
		return m, nil

	case feedbackSubmittedMsg:
		m.ctrl.FinishSubmit(msg.ticket, msg.accepted, msg.err)
		return m, nil

	case spinner.TickMsg:
		if s := m.ctrl.State(); s != form.StateResolving && s != form.StateSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == surveyFocusText && m.ctrl.CanSubmit() {
		var cmd tea.Cmd
		m.text, cmd = m.text.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *SurveyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		return m, navigate(pageMenu, nil)
	}
	if m.ctrl.State().Terminal() {
		if key.Matches(msg, keys.enter) {
			return m, navigate(pageMenu, nil)
		}
		return m, nil
	}
	if key.Matches(msg, keys.enter) {
		return m, m.submit()
	}
	if !m.ctrl.CanSubmit() {
		return m, nil
	}

	if key.Matches(msg, keys.tab, keys.backtab) {
		m.toggleFocus()
		return m, nil
	}

	if m.focus == surveyFocusRating {
		rating := m.ctrl.Value(form.FieldStarRating).Int()
		switch {
		case key.Matches(msg, keys.left):
			rating = max(rating-1, form.MinRating)
		case key.Matches(msg, keys.right):
			rating = min(rating+1, form.MaxRating)
		case key.Matches(msg, keys.rating):
			rating = int(msg.String()[0] - '0')
		default:
			return m, nil
		}
		_ = m.ctrl.SetField(form.FieldStarRating, form.IntValue(rating))
		return m, nil
	}

	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	if m.ctrl.Value(form.FieldTextualFeedback).Text() != m.text.Value() {
		_ = m.ctrl.SetField(form.FieldTextualFeedback, form.TextValue(m.text.Value()))
	}
	return m, cmd
}

func (m *SurveyModel) toggleFocus() {
	if m.focus == surveyFocusRating {
		_ = m.ctrl.BlurField(form.FieldStarRating)
		m.focus = surveyFocusText
		m.text.Focus()
		return
	}
	_ = m.ctrl.BlurField(form.FieldTextualFeedback)
	m.text.Blur()
	m.focus = surveyFocusRating
}

func (m *SurveyModel) submit() tea.Cmd {
	sub, err := m.ctrl.BeginSubmit()
	if err != nil {
		if errors.Is(err, form.ErrValidation) && m.ctrl.Error(form.FieldTextualFeedback) != "" && m.focus != surveyFocusText {
			m.toggleFocus()
		}
		return nil
	}

	ctx := m.ctx
	survey := m.survey
	token := m.token
	feedback := form.FeedbackFromDraft(sub.Values)

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		accepted, err := survey.Submit(ctx, token, feedback)
		return feedbackSubmittedMsg{ticket: sub.Ticket, accepted: accepted, err: err}
	})
}

func (m *SurveyModel) View() string {
	switch m.ctrl.State() {
	case form.StateResolving:
		return renderPage("SURVEY", m.spinner.View()+" Loading survey...", "esc: back")
	case form.StateInvalidLink:
		return renderPage("SURVEY",
			errorStyle.Render(msgInvalidSurveyLink)+"\n\nThis link is invalid or has expired. Please ask the branch for a new one.",
			"enter / esc: back to menu")
	case form.StateSucceeded:
		return renderPage("SURVEY", m.viewSucceeded(), "enter / esc: back to menu")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Dear %s, thank you for visiting %s.\n", m.info.CustomerName, valueOrDash(m.info.BranchName)))
	if m.info.PurposeOfVisit != "" {
		b.WriteString("Purpose of visit: ")
		b.WriteString(m.info.PurposeOfVisit)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	const labelWidth = 13
	rating := m.ctrl.Value(form.FieldStarRating).Int()
	fieldRow(&b, m.focus == surveyFocusRating, "Rating", labelWidth, fmt.Sprintf("%s  %d/%d", stars(rating), rating, form.MaxRating))
	if m.ctrl.Touched(form.FieldStarRating) {
		fieldError(&b, labelWidth, m.ctrl.Error(form.FieldStarRating))
	}

	fieldRow(&b, m.focus == surveyFocusText, "Your feedback", labelWidth, fmt.Sprintf("%d/%d", utf8.RuneCountInString(m.text.Value()), form.MaxFeedbackLength))
	b.WriteString(m.text.View())
	b.WriteString("\n")
	if m.ctrl.Touched(form.FieldTextualFeedback) {
		fieldError(&b, labelWidth, m.ctrl.Error(form.FieldTextualFeedback))
	}

	b.WriteString("\n")
	if m.ctrl.State() == form.StateSubmitting {
		b.WriteString(m.spinner.View())
		b.WriteString(" Submitting feedback...\n")
	} else {
		b.WriteString("[Submit]\n")
	}

	if notice := m.ctrl.Notice(); notice != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + notice))
		b.WriteString("\n")
	}

	return renderPage("SURVEY", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: switch field │ ←/→ or 1-5: rating │ alt+enter: new line │ enter: submit")
}

func (m *SurveyModel) viewSucceeded() string {
	accepted, _ := m.ctrl.Result().(models.FeedbackAccepted)

	var b strings.Builder
	b.WriteString(successStyle.Render(msgSurveyThanks))
	if accepted.Message != "" {
		b.WriteString("\n\n")
		b.WriteString(accepted.Message)
	}
	return b.String()
}
