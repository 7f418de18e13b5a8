package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSurveyTokenNotFound is returned for a survey token that was never
	// issued or has been swept after expiry.
	ErrSurveyTokenNotFound = errors.New("survey token was not found")

	// ErrSurveyTokenUsed is returned when feedback was already submitted with
	// the token.
	ErrSurveyTokenUsed = errors.New("survey token was already used")

	ErrSurveyTokenExpired = errors.New("survey token is expired")

	// ErrCustomerNotFound is returned when a token points at a customer that
	// no longer exists.
	ErrCustomerNotFound = errors.New("customer was not found")
)
