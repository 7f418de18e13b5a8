package service

import (
	"context"

	"github.com/MKhiriev/go-visit-feedback/internal/adapter"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/models"
)

type intakeService struct {
	api adapter.FeedbackAPI

	logger *logger.Logger
}

func NewIntakeService(api adapter.FeedbackAPI, logger *logger.Logger) IntakeService {
	return &intakeService{api: api, logger: logger}
}

// Register implements [IntakeService].
func (s *intakeService) Register(ctx context.Context, customer models.Customer) (models.CustomerCreated, error) {
	created, err := s.api.CreateCustomer(ctx, customer)
	if err != nil {
		s.logger.Err(err).
			Str("branch_id", customer.BranchID).
			Str("purpose_of_visit", customer.PurposeOfVisit).
			Msg("customer registration failed")
		return models.CustomerCreated{}, mapAdapterError(err)
	}

	s.logger.Info().
		Str("customer_id", created.CustomerID).
		Bool("email_consent", customer.EmailConsent).
		Bool("email_sent", created.EmailSent).
		Msg("customer registered")

	return created, nil
}
