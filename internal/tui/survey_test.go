package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/go-visit-feedback/internal/form"
	"github.com/MKhiriev/go-visit-feedback/internal/service"
	"github.com/MKhiriev/go-visit-feedback/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolvedSurveyModel(t *testing.T, svc *fakeSurvey) *SurveyModel {
	t.Helper()
	m := NewSurveyModel(context.Background(), svc, "tok-1")
	msg, ok := findMsg[surveyResolvedMsg](collect(m.Init()))
	require.True(t, ok)
	m.Update(msg)
	require.Equal(t, form.StateEditing, m.ctrl.State())
	return m
}

func TestSurvey_BlankTokenIsInvalidWithoutLookup(t *testing.T) {
	svc := &fakeSurvey{}
	m := NewSurveyModel(context.Background(), svc, "  ")

	assert.Nil(t, m.Init())
	assert.Equal(t, form.StateInvalidLink, m.ctrl.State())
	assert.Empty(t, svc.resolved)

	view := m.View()
	assert.Contains(t, view, msgInvalidSurveyLink)
	assert.NotContains(t, view, "Your feedback")
	assert.NotContains(t, view, "[Submit]")
}

func TestSurvey_LookupFailureIsTerminal(t *testing.T) {
	svc := &fakeSurvey{resolveErr: fmt.Errorf("%w: not found", service.ErrInvalidSurveyLink)}
	m := NewSurveyModel(context.Background(), svc, "tok-1")

	cmd := m.Init()
	assert.Contains(t, m.View(), "Loading survey")

	msg, ok := findMsg[surveyResolvedMsg](collect(cmd))
	require.True(t, ok)
	m.Update(msg)

	assert.Equal(t, form.StateInvalidLink, m.ctrl.State())
	assert.Contains(t, m.View(), msgInvalidSurveyLink)

	_, cmd = m.Update(keyOf(tea.KeyEnter))
	nav, ok := findMsg[NavigateTo](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, pageMenu, nav.Page)
}

func TestSurvey_ResolvedShowsContext(t *testing.T) {
	svc := &fakeSurvey{survey: models.SurveyContext{CustomerName: "Ann", BranchName: "Main", PurposeOfVisit: "Deposit"}}
	m := resolvedSurveyModel(t, svc)

	view := m.View()
	assert.Contains(t, view, "Dear Ann")
	assert.Contains(t, view, "Main")
	assert.Contains(t, view, "Deposit")
	assert.Contains(t, view, "5/5")
	assert.Contains(t, view, "0/500")
	assert.Equal(t, []string{"tok-1"}, svc.resolved)
}

func TestSurvey_RatingKeys(t *testing.T) {
	m := resolvedSurveyModel(t, &fakeSurvey{})

	m.Update(keyOf(tea.KeyRight))
	assert.Equal(t, 5, m.ctrl.Value(form.FieldStarRating).Int())

	m.Update(keyOf(tea.KeyLeft))
	m.Update(keyOf(tea.KeyLeft))
	assert.Equal(t, 3, m.ctrl.Value(form.FieldStarRating).Int())

	m.Update(keyRunes("1"))
	m.Update(keyOf(tea.KeyLeft))
	assert.Equal(t, 1, m.ctrl.Value(form.FieldStarRating).Int())
}

func TestSurvey_CounterAndShortFeedback(t *testing.T) {
	svc := &fakeSurvey{}
	m := resolvedSurveyModel(t, svc)

	m.Update(keyOf(tea.KeyTab))
	typeText(m, "Nice")
	assert.Contains(t, m.View(), "4/500")

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Feedback is too short (minimum 10 characters)")
	assert.Empty(t, svc.submitted)
}

func TestSurvey_TooLongFeedback(t *testing.T) {
	m := resolvedSurveyModel(t, &fakeSurvey{})

	m.Update(keyOf(tea.KeyTab))
	m.text.SetValue(strings.Repeat("aaaaaaaaaa\n", 50))
	m.Update(keyRunes("a"))

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Feedback is too long (maximum 500 characters)")
}

func TestSurvey_SubmitSuccess(t *testing.T) {
	svc := &fakeSurvey{accepted: models.FeedbackAccepted{Message: "Feedback stored", FeedbackID: "f-1"}}
	m := resolvedSurveyModel(t, svc)

	m.Update(keyRunes("4"))
	m.Update(keyOf(tea.KeyTab))
	typeText(m, "Friendly and quick service")

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, form.StateSubmitting, m.ctrl.State())

	msg, ok := findMsg[feedbackSubmittedMsg](collect(cmd))
	require.True(t, ok)
	require.Len(t, svc.submitted, 1)
	assert.Equal(t, models.FeedbackSubmission{StarRating: 4, TextualFeedback: "Friendly and quick service"}, svc.submitted[0])

	m.Update(msg)
	assert.Equal(t, form.StateSucceeded, m.ctrl.State())
	assert.Contains(t, m.View(), msgSurveyThanks)
	assert.Contains(t, m.View(), "Feedback stored")
}

func TestSurvey_SubmitFailureKeepsDraft(t *testing.T) {
	svc := &fakeSurvey{submitErr: detailError{detail: "Invalid or expired survey link"}}
	m := resolvedSurveyModel(t, svc)

	m.Update(keyOf(tea.KeyTab))
	typeText(m, "Friendly and quick service")

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	msg, ok := findMsg[feedbackSubmittedMsg](collect(cmd))
	require.True(t, ok)
	m.Update(msg)

	assert.Equal(t, form.StateEditing, m.ctrl.State())
	assert.Contains(t, m.View(), "Invalid or expired survey link")
	assert.Equal(t, "Friendly and quick service", m.ctrl.Value(form.FieldTextualFeedback).Text())
}

func TestSurvey_StaleResolveIgnored(t *testing.T) {
	m := NewSurveyModel(context.Background(), &fakeSurvey{}, "tok-1")
	msg, ok := findMsg[surveyResolvedMsg](collect(m.Init()))
	require.True(t, ok)

	m.Discard()
	m.Update(msg)

	assert.Equal(t, form.StateResolving, m.ctrl.State())
}
