package tui

import (
	"strings"

	"github.com/MKhiriev/go-visit-feedback/internal/form"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SurveyLinkModel asks for a survey link or a bare token and opens the
// survey screen for it.
type SurveyLinkModel struct {
	input  textinput.Model
	errMsg string
}

func NewSurveyLinkModel() *SurveyLinkModel {
	in := textinput.New()
	in.Placeholder = "https://feedback.example.com/feedback/<token>"
	in.Width = 60
	in.Focus()
	return &SurveyLinkModel{input: in}
}

func (m *SurveyLinkModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SurveyLinkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(keyMsg, keys.enter):
			token := form.TokenFromLink(m.input.Value())
			if token == "" {
				m.errMsg = "Paste a survey link or token"
				return m, nil
			}
			return m, navigate(pageSurvey, token)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SurveyLinkModel) View() string {
	var b strings.Builder
	b.WriteString("Survey link │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("OPEN SURVEY", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: open")
}
