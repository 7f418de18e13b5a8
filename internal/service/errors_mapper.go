package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-visit-feedback/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The transport error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	switch {
	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrAPIUnavailable, err)
	case !errors.As(err, &apiErr):
		// no HTTP response at all: refused connection, timeout, DNS
		return fmt.Errorf("%w: %w", ErrAPIUnavailable, err)
	}

	return err
}

// mapSurveyError is [mapAdapterError] for token-addressed requests, where a
// 404 means the link is no longer valid.
func mapSurveyError(err error) error {
	if errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrInvalidSurveyLink, err)
	}
	return mapAdapterError(err)
}
