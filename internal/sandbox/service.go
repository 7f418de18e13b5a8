package sandbox

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-visit-feedback/internal/app"
	"github.com/MKhiriev/go-visit-feedback/internal/config"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/store"
	"github.com/MKhiriev/go-visit-feedback/internal/validators"
	"github.com/MKhiriev/go-visit-feedback/models"
)

// DefaultCustomerName greets customers whose record has no name.
const DefaultCustomerName = "Valued Customer"

type service struct {
	storage   store.Storage
	validator validators.Validator
	notifier  Notifier
	links     config.SandboxLinks

	now    func() time.Time
	logger *logger.Logger
}

// Option customizes a [Service] built by [NewService].
type Option func(*service)

// WithClock replaces the wall clock used for token expiry.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithNotifier replaces the logging notifier.
func WithNotifier(n Notifier) Option {
	return func(s *service) {
		s.notifier = n
	}
}

func NewService(storage store.Storage, validator validators.Validator, links config.SandboxLinks, logger *logger.Logger, opts ...Option) Service {
	s := &service{
		storage:   storage,
		validator: validator,
		notifier:  NewLogNotifier(logger),
		links:     links,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) RegisterCustomer(ctx context.Context, customer models.Customer) (models.CustomerCreated, error) {
	if err := s.validator.Validate(ctx, customer); err != nil {
		return models.CustomerCreated{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	record, err := s.storage.CreateCustomer(ctx, models.CustomerRecord{
		Name:           strings.TrimSpace(customer.Name),
		Email:          strings.TrimSpace(customer.Email),
		Mobile:         strings.TrimSpace(customer.Mobile),
		EmailConsent:   customer.EmailConsent,
		PurposeOfVisit: strings.TrimSpace(customer.PurposeOfVisit),
		BranchID:       strings.TrimSpace(customer.BranchID),
		BranchName:     strings.TrimSpace(customer.BranchName),
		StaffName:      strings.TrimSpace(customer.StaffName),
	})
	if err != nil {
		return models.CustomerCreated{}, fmt.Errorf("create customer: %w", err)
	}

	log := logger.FromContext(ctx)
	log.Info().Str("customer_id", record.ID).Bool("email_consent", record.EmailConsent).Msg("customer registered")

	if !record.EmailConsent {
		return models.CustomerCreated{
			Message:    app.MsgCustomerCreated,
			CustomerID: record.ID,
		}, nil
	}

	token, err := s.storage.IssueToken(ctx, record.ID, s.now().Add(s.links.TTL))
	if err != nil {
		return models.CustomerCreated{}, fmt.Errorf("issue survey token: %w", err)
	}

	emailSent := true
	if err = s.notifier.SendSurvey(ctx, record, s.SurveyLink(token)); err != nil {
		log.Err(err).Str("customer_id", record.ID).Msg("survey email was not sent")
		emailSent = false
	}

	message := app.MsgCustomerCreatedEmailSent
	if !emailSent {
		message = app.MsgCustomerCreatedEmailFailed
	}

	return models.CustomerCreated{
		Message:     message,
		CustomerID:  record.ID,
		SurveyToken: token,
		EmailSent:   emailSent,
	}, nil
}

func (s *service) SurveyContext(ctx context.Context, token string) (models.SurveyContext, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.SurveyContext{}, ErrInvalidSurveyLink
	}

	customer, err := s.storage.LookupToken(ctx, token, s.now())
	if err != nil {
		return models.SurveyContext{}, mapStoreError(err)
	}

	name := customer.Name
	if strings.TrimSpace(name) == "" {
		name = DefaultCustomerName
	}

	return models.SurveyContext{
		CustomerName:   name,
		BranchName:     customer.BranchName,
		PurposeOfVisit: customer.PurposeOfVisit,
		Token:          token,
		Message:        app.MsgProvideFeedback,
	}, nil
}

func (s *service) SubmitFeedback(ctx context.Context, token string, feedback models.FeedbackSubmission) (models.FeedbackAccepted, error) {
	if err := s.validator.Validate(ctx, feedback); err != nil {
		return models.FeedbackAccepted{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return models.FeedbackAccepted{}, ErrInvalidSurveyLink
	}

	record, err := s.storage.RedeemToken(ctx, token, s.now(), models.FeedbackRecord{
		StarRating:      feedback.StarRating,
		TextualFeedback: strings.TrimSpace(feedback.TextualFeedback),
		Sentiment:       SentimentFor(feedback.StarRating),
		GPTSummary:      SummaryFor(feedback.StarRating),
	})
	if err != nil {
		return models.FeedbackAccepted{}, mapStoreError(err)
	}

	logger.FromContext(ctx).Info().
		Str("feedback_id", record.ID).
		Str("customer_id", record.CustomerID).
		Int("star_rating", record.StarRating).
		Msg("feedback stored")

	return models.FeedbackAccepted{
		Message:       app.MsgFeedbackSubmitted,
		FeedbackID:    record.ID,
		AzureFilePath: record.AzureFilePath,
	}, nil
}

func (s *service) ListCustomers(ctx context.Context) ([]models.CustomerRecord, error) {
	out, err := s.storage.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

func (s *service) ListFeedback(ctx context.Context) ([]models.FeedbackRecord, error) {
	out, err := s.storage.ListFeedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return out, nil
}

func (s *service) ListArchived(ctx context.Context) ([]models.ArchivedFeedback, error) {
	out, err := s.storage.ListArchived(ctx)
	if err != nil {
		return nil, fmt.Errorf("list archived feedback: %w", err)
	}
	return out, nil
}

// SurveyLink returns the public survey URL for token.
func (s *service) SurveyLink(token string) string {
	base := strings.TrimRight(s.links.PublicURL, "/")
	return base + "/feedback/" + url.PathEscape(token)
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrSurveyTokenNotFound),
		errors.Is(err, store.ErrSurveyTokenUsed),
		errors.Is(err, store.ErrSurveyTokenExpired),
		errors.Is(err, store.ErrCustomerNotFound):
		return fmt.Errorf("%w: %w", ErrInvalidSurveyLink, err)
	default:
		return err
	}
}

// SentimentFor classifies a star rating.
func SentimentFor(rating int) string {
	switch {
	case rating >= 4:
		return "positive"
	case rating >= 3:
		return "neutral"
	default:
		return "negative"
	}
}

// SummaryFor is the summary stored with feedback; no text analysis is done.
func SummaryFor(rating int) string {
	return fmt.Sprintf("Customer provided %d-star rating with feedback about their experience.", rating)
}
