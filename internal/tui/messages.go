package tui

import (
	"github.com/MKhiriev/go-visit-feedback/internal/form"
	"github.com/MKhiriev/go-visit-feedback/models"
)

// NavigateTo asks the [RootModel] to open Page. Payload is handed to the
// page factory.
type NavigateTo struct {
	Page    string
	Payload any
}

// Page names.
const (
	pageMenu       = "menu"
	pageIntake     = "intake"
	pageSurveyLink = "survey-link"
	pageSurvey     = "survey"
	pageDashboard  = "dashboard"
)

// customerRegisteredMsg carries the outcome of an intake submission.
type customerRegisteredMsg struct {
	ticket  form.Ticket
	created models.CustomerCreated
	err     error
}

// surveyResolvedMsg carries the outcome of a survey token lookup.
type surveyResolvedMsg struct {
	ticket form.Ticket
	survey models.SurveyContext
	err    error
}

type feedbackSubmittedMsg struct {
	ticket   form.Ticket
	accepted models.FeedbackAccepted
	err      error
}

type dashboardLoadedMsg struct {
	seq       uint64
	dashboard models.Dashboard
	err       error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
