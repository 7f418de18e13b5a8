// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sandbox feedback API handlers and services.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The wording follows the hosted feedback API so that
// clients render the same text against either backend.
package app

const (
	// MsgAPIRunning is the body of GET /.
	MsgAPIRunning = "Customer Feedback API is running!"

	// MsgHealthy is the status reported by GET /health.
	MsgHealthy = "healthy"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgCustomerCreated is returned for customers without email consent.
	MsgCustomerCreated = "Customer created successfully!"

	// MsgCustomerCreatedEmailSent is returned when the survey email went out.
	MsgCustomerCreatedEmailSent = "Customer created and survey email sent!"

	// MsgCustomerCreatedEmailFailed is returned when the customer was stored
	// but the survey email could not be delivered.
	MsgCustomerCreatedEmailFailed = "Customer created, email failed"

	// MsgInvalidSurveyLink is the detail of a survey lookup with an unknown,
	// used or expired token.
	MsgInvalidSurveyLink = "Invalid or expired survey link"

	// MsgInvalidToken is the detail of a feedback submission with an unknown,
	// used or expired token.
	MsgInvalidToken = "Invalid or expired token"

	// MsgProvideFeedback accompanies a resolved survey context.
	MsgProvideFeedback = "Please provide your feedback"

	// MsgFeedbackSubmitted is returned once feedback is stored.
	MsgFeedbackSubmitted = "Feedback submitted successfully!"
)
