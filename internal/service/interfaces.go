// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client use cases on top of the feedback API
// transport: registering a visiting customer, resolving and answering a
// survey, and loading the dashboard lists.
//
// Services translate transport failures into business errors (see errors.go)
// while keeping the original error in the chain, so a server-supplied detail
// message stays reachable via errors.As.
package service

import (
	"context"

	"github.com/MKhiriev/go-visit-feedback/models"
)

// IntakeService registers visiting customers.
type IntakeService interface {
	// Register submits the intake record. The returned value echoes whether
	// a survey email was sent; the survey token itself is not surfaced.
	Register(ctx context.Context, customer models.Customer) (models.CustomerCreated, error)
}

// SurveyService resolves and answers follow-up surveys.
type SurveyService interface {
	// Resolve looks the survey token up once. Any failure to resolve a
	// non-empty token, and an empty token, is reported as
	// [ErrInvalidSurveyLink] (wrapped).
	Resolve(ctx context.Context, token string) (models.SurveyContext, error)

	// Submit posts the survey answer for token.
	Submit(ctx context.Context, token string, feedback models.FeedbackSubmission) (models.FeedbackAccepted, error)
}

// DashboardService loads the read-only dashboard collections.
type DashboardService interface {
	// Load fetches customers, feedback and archived documents in parallel.
	// The first failing request cancels the others and its error is
	// returned.
	Load(ctx context.Context) (models.Dashboard, error)
}
