package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-visit-feedback/internal/config"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/utils"
	"github.com/MKhiriev/go-visit-feedback/models"
)

const (
	customersPath = "/api/customers"
	feedbackPath  = "/api/feedback"
	surveyPath    = "/api/feedback/{token}"
	archivePath   = "/api/azure-data"
)

type httpFeedbackAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPFeedbackAdapter constructs an HTTP/REST implementation of
// [FeedbackAPI]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL, the request timeout and per-request trace ids.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPFeedbackAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (FeedbackAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithTraceIDs(utils.NewUUIDGenerator())
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpFeedbackAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateCustomer implements [FeedbackAPI].
func (h *httpFeedbackAdapter) CreateCustomer(ctx context.Context, customer models.Customer) (models.CustomerCreated, error) {
	var created models.CustomerCreated

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(customer).
		SetResult(&created).
		Post(customersPath)
	if err != nil {
		return models.CustomerCreated{}, fmt.Errorf("create customer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CustomerCreated{}, fmt.Errorf("create customer: %w", err)
	}

	h.logger.Debug().
		Str("customer_id", created.CustomerID).
		Bool("email_sent", created.EmailSent).
		Msg("customer created")

	return created, nil
}

// GetSurvey implements [FeedbackAPI].
func (h *httpFeedbackAdapter) GetSurvey(ctx context.Context, token string) (models.SurveyContext, error) {
	var survey models.SurveyContext

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("token", token).
		SetResult(&survey).
		Get(surveyPath)
	if err != nil {
		return models.SurveyContext{}, fmt.Errorf("get survey request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SurveyContext{}, fmt.Errorf("get survey: %w", err)
	}

	return survey, nil
}

// SubmitFeedback implements [FeedbackAPI].
func (h *httpFeedbackAdapter) SubmitFeedback(ctx context.Context, token string, feedback models.FeedbackSubmission) (models.FeedbackAccepted, error) {
	var accepted models.FeedbackAccepted

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("token", token).
		SetBody(feedback).
		SetResult(&accepted).
		Post(surveyPath)
	if err != nil {
		return models.FeedbackAccepted{}, fmt.Errorf("submit feedback request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FeedbackAccepted{}, fmt.Errorf("submit feedback: %w", err)
	}

	h.logger.Debug().
		Str("feedback_id", accepted.FeedbackID).
		Str("azure_file_path", accepted.AzureFilePath).
		Msg("feedback submitted")

	return accepted, nil
}

// ListCustomers implements [FeedbackAPI].
func (h *httpFeedbackAdapter) ListCustomers(ctx context.Context) ([]models.CustomerRecord, error) {
	var customers []models.CustomerRecord
	if err := h.list(ctx, customersPath, &customers); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// ListFeedback implements [FeedbackAPI].
func (h *httpFeedbackAdapter) ListFeedback(ctx context.Context) ([]models.FeedbackRecord, error) {
	var feedback []models.FeedbackRecord
	if err := h.list(ctx, feedbackPath, &feedback); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return feedback, nil
}

// ListArchived implements [FeedbackAPI].
func (h *httpFeedbackAdapter) ListArchived(ctx context.Context) ([]models.ArchivedFeedback, error) {
	var archived []models.ArchivedFeedback
	if err := h.list(ctx, archivePath, &archived); err != nil {
		return nil, fmt.Errorf("list archived feedback: %w", err)
	}
	return archived, nil
}

func (h *httpFeedbackAdapter) list(ctx context.Context, path string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	return mapHTTPError(resp)
}
