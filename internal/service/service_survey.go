package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-visit-feedback/internal/adapter"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/models"
)

// DefaultCustomerName greets customers whose record has no name.
const DefaultCustomerName = "Valued Customer"

type surveyService struct {
	api adapter.FeedbackAPI

	logger *logger.Logger
}

func NewSurveyService(api adapter.FeedbackAPI, logger *logger.Logger) SurveyService {
	return &surveyService{api: api, logger: logger}
}

// Resolve implements [SurveyService].
func (s *surveyService) Resolve(ctx context.Context, token string) (models.SurveyContext, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.SurveyContext{}, fmt.Errorf("%w: empty token", ErrInvalidSurveyLink)
	}

	survey, err := s.api.GetSurvey(ctx, token)
	if err != nil {
		s.logger.Warn().Err(err).Msg("survey token not resolved")
		return models.SurveyContext{}, fmt.Errorf("%w: %w", ErrInvalidSurveyLink, mapAdapterError(err))
	}

	survey.Token = token
	if strings.TrimSpace(survey.CustomerName) == "" {
		survey.CustomerName = DefaultCustomerName
	}

	return survey, nil
}

// Submit implements [SurveyService].
func (s *surveyService) Submit(ctx context.Context, token string, feedback models.FeedbackSubmission) (models.FeedbackAccepted, error) {
	accepted, err := s.api.SubmitFeedback(ctx, token, feedback)
	if err != nil {
		s.logger.Err(err).Int("star_rating", feedback.StarRating).Msg("feedback submission failed")
		return models.FeedbackAccepted{}, mapSurveyError(err)
	}

	s.logger.Info().
		Str("feedback_id", accepted.FeedbackID).
		Int("star_rating", feedback.StarRating).
		Msg("feedback submitted")

	return accepted, nil
}
