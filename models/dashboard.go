// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CustomerRecord is a stored customer as listed by GET /api/customers.
// Timestamps are kept as the raw strings the backend emits.
type CustomerRecord struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Mobile         string `json:"mobile"`
	EmailConsent   bool   `json:"email_consent"`
	PurposeOfVisit string `json:"purpose_of_visit"`
	BranchID       string `json:"branch_id"`
	BranchName     string `json:"branch_name"`
	StaffName      string `json:"staff_name"`
	CreatedAt      string `json:"created_at"`
}

// FeedbackRecord is a stored survey answer as listed by GET /api/feedback.
// Sentiment and GPTSummary are computed by the backend.
type FeedbackRecord struct {
	ID              string `json:"_id"`
	CustomerID      string `json:"customer_id"`
	StarRating      int    `json:"star_rating"`
	TextualFeedback string `json:"textual_feedback"`
	Sentiment       string `json:"sentiment"`
	GPTSummary      string `json:"gpt_summary"`
	AzureFilePath   string `json:"azure_file_path"`
	CreatedAt       string `json:"created_at"`
}

// ArchivedFeedback is the complete feedback document the backend uploads to
// blob storage, as listed by GET /api/azure-data.
type ArchivedFeedback struct {
	FeedbackID string `json:"feedback_id"`

	CustomerData struct {
		Name           string `json:"name"`
		Email          string `json:"email"`
		PurposeOfVisit string `json:"purpose_of_visit"`
		BranchName     string `json:"branch_name"`
		StaffName      string `json:"staff_name"`
	} `json:"customer_data"`

	Feedback struct {
		StarRating      int    `json:"star_rating"`
		TextualFeedback string `json:"textual_feedback"`
		Sentiment       string `json:"sentiment"`
		GPTSummary      string `json:"gpt_summary"`
	} `json:"feedback"`

	Metadata struct {
		SubmissionTime string `json:"submission_time"`
		SurveyToken    string `json:"survey_token"`
	} `json:"metadata"`
}

// Dashboard bundles the three read-only collections shown on the dashboard.
type Dashboard struct {
	Customers []CustomerRecord
	Feedback  []FeedbackRecord
	Archived  []ArchivedFeedback
}

// CustomerByID returns the customer with the given id.
func (d Dashboard) CustomerByID(id string) (CustomerRecord, bool) {
	for _, c := range d.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return CustomerRecord{}, false
}

// ArchiveFor returns the archived document of the given feedback record.
func (d Dashboard) ArchiveFor(feedbackID string) (ArchivedFeedback, bool) {
	for _, a := range d.Archived {
		if a.FeedbackID == feedbackID {
			return a, true
		}
	}
	return ArchivedFeedback{}, false
}
