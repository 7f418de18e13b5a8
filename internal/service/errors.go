package service

import "errors"

var (
	// ErrInvalidSurveyLink means the survey token is missing, unknown,
	// expired or already used.
	ErrInvalidSurveyLink = errors.New("invalid survey link")

	// ErrAPIUnavailable means the feedback API could not be reached or
	// answered with a gateway error.
	ErrAPIUnavailable = errors.New("feedback service unavailable")

	ErrDashboardLoad = errors.New("dashboard load failed")
)
