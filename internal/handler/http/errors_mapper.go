package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-visit-feedback/internal/app"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/sandbox"
	"github.com/MKhiriev/go-visit-feedback/internal/utils"
	"github.com/MKhiriev/go-visit-feedback/internal/validators"
	"github.com/MKhiriev/go-visit-feedback/models"
)

var errorStatusMap = map[error]int{
	sandbox.ErrInvalidRequest:    http.StatusUnprocessableEntity,
	sandbox.ErrInvalidSurveyLink: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as the API error body. notFound is the detail used
// for an invalid survey link, which differs between lookup and submit.
func writeError(w http.ResponseWriter, log *logger.Logger, err error, notFound string) {
	status := statusFromError(err)

	switch status {
	case http.StatusUnprocessableEntity:
		log.Warn().Err(err).Msg("request validation failed")
		utils.WriteJSON(w, models.NewValidationErrorResponse(validationIssues(err)...), status)
	case http.StatusNotFound:
		log.Warn().Err(err).Msg("survey link rejected")
		utils.WriteDetail(w, notFound, status)
	default:
		log.Err(err).Msg("unexpected error")
		utils.WriteDetail(w, app.MsgInternalServerError, status)
	}
}

func validationIssues(err error) []models.ValidationIssue {
	var fields validators.FieldErrors
	if !errors.As(err, &fields) {
		var field *validators.FieldError
		if !errors.As(err, &field) {
			return []models.ValidationIssue{{Loc: []any{"body"}, Msg: err.Error(), Type: "value_error"}}
		}
		fields = validators.FieldErrors{field}
	}

	issues := make([]models.ValidationIssue, 0, len(fields))
	for _, f := range fields {
		issues = append(issues, models.ValidationIssue{
			Loc:  []any{"body", f.Field},
			Msg:  f.Message,
			Type: f.Type,
		})
	}
	return issues
}
