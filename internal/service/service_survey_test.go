package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-visit-feedback/internal/adapter"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/mock"
	"github.com/MKhiriev/go-visit-feedback/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSurveySvc(t *testing.T) (SurveyService, *mock.MockFeedbackAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockFeedbackAPI(ctrl)
	return NewSurveyService(api, logger.Nop()), api
}

// ── Resolve ──────────────────────────────────────────────────────────────────

func TestSurveyService_Resolve_Success(t *testing.T) {
	svc, api := newTestSurveySvc(t)

	api.EXPECT().GetSurvey(gomock.Any(), "tok-1").Return(models.SurveyContext{
		CustomerName:   "Ann",
		BranchName:     "Main",
		PurposeOfVisit: "Deposit",
	}, nil)

	survey, err := svc.Resolve(context.Background(), " tok-1 ")
	require.NoError(t, err)
	assert.Equal(t, "Ann", survey.CustomerName)
	assert.Equal(t, "tok-1", survey.Token)
}

func TestSurveyService_Resolve_DefaultName(t *testing.T) {
	svc, api := newTestSurveySvc(t)

	api.EXPECT().GetSurvey(gomock.Any(), "tok-1").Return(models.SurveyContext{BranchName: "Main"}, nil)

	survey, err := svc.Resolve(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, DefaultCustomerName, survey.CustomerName)
}

func TestSurveyService_Resolve_EmptyToken(t *testing.T) {
	svc, _ := newTestSurveySvc(t)

	// без токена адаптер не вызывается
	_, err := svc.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidSurveyLink)
}

func TestSurveyService_Resolve_AnyFailureIsInvalidLink(t *testing.T) {
	for _, apiErr := range []error{
		&adapter.APIError{Status: http.StatusNotFound, Message: "Invalid or expired survey link", Err: adapter.ErrNotFound},
		&adapter.APIError{Status: http.StatusInternalServerError, Err: adapter.ErrInternalServerError},
		context.DeadlineExceeded,
	} {
		svc, api := newTestSurveySvc(t)
		api.EXPECT().GetSurvey(gomock.Any(), "tok-1").Return(models.SurveyContext{}, apiErr)

		_, err := svc.Resolve(context.Background(), "tok-1")
		assert.ErrorIs(t, err, ErrInvalidSurveyLink, apiErr.Error())
		assert.ErrorIs(t, err, apiErr)
	}
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestSurveyService_Submit_Success(t *testing.T) {
	svc, api := newTestSurveySvc(t)
	feedback := models.FeedbackSubmission{StarRating: 5, TextualFeedback: "Great service today"}

	api.EXPECT().SubmitFeedback(gomock.Any(), "tok-1", feedback).Return(models.FeedbackAccepted{FeedbackID: "f-1"}, nil)

	accepted, err := svc.Submit(context.Background(), "tok-1", feedback)
	require.NoError(t, err)
	assert.Equal(t, "f-1", accepted.FeedbackID)
}

func TestSurveyService_Submit_UsedToken(t *testing.T) {
	svc, api := newTestSurveySvc(t)

	api.EXPECT().SubmitFeedback(gomock.Any(), "tok-1", gomock.Any()).Return(models.FeedbackAccepted{},
		&adapter.APIError{Status: http.StatusNotFound, Message: "Invalid or expired token", Err: adapter.ErrNotFound})

	_, err := svc.Submit(context.Background(), "tok-1", models.FeedbackSubmission{StarRating: 3})
	require.ErrorIs(t, err, ErrInvalidSurveyLink)

	var apiErr *adapter.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid or expired token", apiErr.Detail())
}

func TestSurveyService_Submit_Unprocessable(t *testing.T) {
	svc, api := newTestSurveySvc(t)
	apiErr := &adapter.APIError{Status: http.StatusUnprocessableEntity, Message: "Feedback is too long", Err: adapter.ErrUnprocessable}

	api.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.FeedbackAccepted{}, apiErr)

	_, err := svc.Submit(context.Background(), "tok-1", models.FeedbackSubmission{StarRating: 3})
	assert.Same(t, apiErr, err)
}
