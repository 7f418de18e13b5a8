package sandbox

import (
	"context"

	"github.com/MKhiriev/go-visit-feedback/models"
)

// Service is the sandbox API behind the HTTP handlers.
type Service interface {
	RegisterCustomer(ctx context.Context, customer models.Customer) (models.CustomerCreated, error)

	// SurveyContext resolves a survey token without consuming it.
	SurveyContext(ctx context.Context, token string) (models.SurveyContext, error)

	// SubmitFeedback consumes the token and stores the feedback.
	SubmitFeedback(ctx context.Context, token string, feedback models.FeedbackSubmission) (models.FeedbackAccepted, error)

	ListCustomers(ctx context.Context) ([]models.CustomerRecord, error)
	ListFeedback(ctx context.Context) ([]models.FeedbackRecord, error)
	ListArchived(ctx context.Context) ([]models.ArchivedFeedback, error)
}

// Notifier delivers survey links to customers.
type Notifier interface {
	SendSurvey(ctx context.Context, customer models.CustomerRecord, link string) error
}
