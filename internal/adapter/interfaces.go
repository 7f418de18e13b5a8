// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the feedback client
// and the remote feedback API.
//
// The primary abstraction is [FeedbackAPI], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPFeedbackAdapter]) whose base URL is injected at construction.
//
// Non-2xx responses are mapped by mapHTTPError to an [*APIError] wrapping one
// of the sentinel values defined in errors.go, so callers can use
// [errors.Is] for status checks (e.g. [ErrNotFound] for 404) and read the
// server-supplied detail message through [APIError.Detail].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-visit-feedback/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/feedback_api_mock.go -package=mock

// FeedbackAPI defines communication with the feedback backend. Requests are
// issued once: implementations do not retry, cache or deduplicate.
type FeedbackAPI interface {
	// CreateCustomer registers a visiting customer via POST /api/customers.
	// For consenting customers the backend emails a survey link; the
	// returned token is informational only.
	CreateCustomer(ctx context.Context, customer models.Customer) (models.CustomerCreated, error)

	// GetSurvey resolves an opaque survey token via GET /api/feedback/{token}.
	// Unknown, expired or already used tokens yield [ErrNotFound] (wrapped).
	GetSurvey(ctx context.Context, token string) (models.SurveyContext, error)

	// SubmitFeedback posts the survey answer via POST /api/feedback/{token}.
	SubmitFeedback(ctx context.Context, token string, feedback models.FeedbackSubmission) (models.FeedbackAccepted, error)

	// ListCustomers returns all registered customers (GET /api/customers).
	ListCustomers(ctx context.Context) ([]models.CustomerRecord, error)

	// ListFeedback returns all stored survey answers (GET /api/feedback).
	ListFeedback(ctx context.Context) ([]models.FeedbackRecord, error)

	// ListArchived returns the feedback documents kept in blob storage
	// (GET /api/azure-data).
	ListArchived(ctx context.Context) ([]models.ArchivedFeedback, error)
}
