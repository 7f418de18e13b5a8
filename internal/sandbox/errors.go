package sandbox

import "errors"

var (
	// ErrInvalidSurveyLink is returned for unknown, used or expired survey
	// tokens.
	ErrInvalidSurveyLink = errors.New("invalid or expired survey link")

	// ErrInvalidRequest wraps validation failures of request bodies.
	ErrInvalidRequest = errors.New("invalid request")
)
