package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-visit-feedback/models"
	tea "github.com/charmbracelet/bubbletea"
)

// collect runs cmd and flattens batches. Commands that sleep (tea.Tick) must
// not be passed here.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// typeText sends s one rune at a time.
func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

type detailError struct {
	detail string
}

func (e detailError) Error() string  { return "http 400: " + e.detail }
func (e detailError) Detail() string { return e.detail }

type fakeIntake struct {
	mu      sync.Mutex
	calls   []models.Customer
	created models.CustomerCreated
	err     error
}

func (f *fakeIntake) Register(_ context.Context, c models.Customer) (models.CustomerCreated, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	return f.created, f.err
}

type fakeSurvey struct {
	mu         sync.Mutex
	resolved   []string
	submitted  []models.FeedbackSubmission
	survey     models.SurveyContext
	resolveErr error
	accepted   models.FeedbackAccepted
	submitErr  error
}

func (f *fakeSurvey) Resolve(_ context.Context, token string) (models.SurveyContext, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolved = append(f.resolved, token)
	return f.survey, f.resolveErr
}

func (f *fakeSurvey) Submit(_ context.Context, _ string, fb models.FeedbackSubmission) (models.FeedbackAccepted, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, fb)
	return f.accepted, f.submitErr
}

type fakeDashboard struct {
	mu    sync.Mutex
	loads int
	data  models.Dashboard
	err   error
}

func (f *fakeDashboard) Load(context.Context) (models.Dashboard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	return f.data, f.err
}
