// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SurveyContext personalises the survey form. It is resolved once from the
// opaque survey token via GET /api/feedback/{token}.
type SurveyContext struct {
	CustomerName   string `json:"customer_name"`
	BranchName     string `json:"branch_name"`
	PurposeOfVisit string `json:"purpose_of_visit"`
	Token          string `json:"token,omitempty"`
	Message        string `json:"message,omitempty"`
}

// FeedbackSubmission is the survey answer sent to POST /api/feedback/{token}.
type FeedbackSubmission struct {
	// StarRating is an integer in [1, 5].
	StarRating int `json:"star_rating"`

	// TextualFeedback is the free-text review, at most 500 characters.
	TextualFeedback string `json:"textual_feedback"`
}

// FeedbackAccepted is the backend reply to a successful survey submission.
// Only success or failure matters to the survey form; the fields are kept for
// logging.
type FeedbackAccepted struct {
	Message       string `json:"message"`
	FeedbackID    string `json:"feedback_id"`
	AzureFilePath string `json:"azure_file_path"`
}
