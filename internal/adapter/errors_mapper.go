package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-visit-feedback/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{
		Status:  resp.StatusCode(),
		Message: detailFromBody(resp.Body()),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		apiErr.Err = ErrBadRequest
	case http.StatusNotFound:
		apiErr.Err = ErrNotFound
	case http.StatusConflict:
		apiErr.Err = ErrConflict
	case http.StatusUnprocessableEntity:
		apiErr.Err = ErrUnprocessable
	case http.StatusInternalServerError:
		apiErr.Err = ErrInternalServerError
	case http.StatusBadGateway:
		apiErr.Err = ErrBadGateway
	case http.StatusServiceUnavailable:
		apiErr.Err = ErrServiceUnavailable
	default:
		apiErr.Err = ErrUnexpectedStatus
	}

	return apiErr
}

// detailFromBody extracts the "detail" message of a JSON error body. Bodies
// that are not JSON (proxy error pages) carry no detail.
func detailFromBody(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	return errResp.Message()
}
