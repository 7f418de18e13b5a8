// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the records of the sandbox feedback API.
//
// Everything lives in process memory and is lost on restart. Storage methods
// take a context for symmetry with real backends and never block on it.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-visit-feedback/models"
)

// CustomerRepository stores registered visits.
type CustomerRepository interface {
	// CreateCustomer assigns an id and creation time and stores c.
	CreateCustomer(ctx context.Context, c models.CustomerRecord) (models.CustomerRecord, error)
	ListCustomers(ctx context.Context) ([]models.CustomerRecord, error)
}

// SurveyTokenRepository issues and redeems one-shot survey tokens.
type SurveyTokenRepository interface {
	// IssueToken creates a token for customerID valid until expiresAt.
	IssueToken(ctx context.Context, customerID string, expiresAt time.Time) (string, error)

	// LookupToken returns the customer of a valid, unused token.
	LookupToken(ctx context.Context, token string, now time.Time) (models.CustomerRecord, error)

	// RedeemToken atomically marks the token used and stores fb and its
	// archive record. A token can be redeemed once.
	RedeemToken(ctx context.Context, token string, now time.Time, fb models.FeedbackRecord) (models.FeedbackRecord, error)

	// DeleteExpired drops tokens expired at now and returns how many were
	// removed.
	DeleteExpired(ctx context.Context, now time.Time) int
}

// FeedbackRepository lists submitted feedback and its archive records.
type FeedbackRepository interface {
	ListFeedback(ctx context.Context) ([]models.FeedbackRecord, error)
	ListArchived(ctx context.Context) ([]models.ArchivedFeedback, error)
}

// Storage is the complete sandbox storage.
type Storage interface {
	CustomerRepository
	SurveyTokenRepository
	FeedbackRepository
}
