// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Customer is the intake record sent to POST /api/customers when a visiting
// customer is registered at a branch.
type Customer struct {
	// Name is the customer's full name.
	Name string `json:"name"`

	// Email is the address the follow-up survey link is sent to.
	Email string `json:"email"`

	// Mobile is a 10-15 digit phone number.
	Mobile string `json:"mobile"`

	// EmailConsent reports whether the customer agreed to receive the
	// survey email. The backend issues a survey token only when it is true.
	EmailConsent bool `json:"email_consent"`

	// PurposeOfVisit is either one of the predefined options or, when the
	// customer picked "Others", the free-text purpose they typed.
	PurposeOfVisit string `json:"purpose_of_visit"`

	BranchID   string `json:"branch_id"`
	BranchName string `json:"branch_name"`
	StaffName  string `json:"staff_name"`
}

// CustomerCreated is the backend reply to a successful intake submission.
//
// SurveyToken is only present for consenting customers. The client does not
// show it: the customer receives it by email.
type CustomerCreated struct {
	Message     string `json:"message"`
	CustomerID  string `json:"customer_id"`
	SurveyToken string `json:"survey_token,omitempty"`
	EmailSent   bool   `json:"email_sent"`
}
