package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-visit-feedback/internal/app"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/utils"
	"github.com/MKhiriev/go-visit-feedback/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) surveyContext(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	survey, err := h.service.SurveyContext(r.Context(), token)
	if err != nil {
		writeError(w, logger.FromRequest(r), err, app.MsgInvalidSurveyLink)
		return
	}

	utils.WriteJSON(w, survey, http.StatusOK)
}

func (h *Handler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	token := chi.URLParam(r, "token")

	var submission models.FeedbackSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteDetail(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	accepted, err := h.service.SubmitFeedback(r.Context(), token, submission)
	if err != nil {
		writeError(w, log, err, app.MsgInvalidToken)
		return
	}

	utils.WriteJSON(w, accepted, http.StatusOK)
}

func (h *Handler) listFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.service.ListFeedback(r.Context())
	if err != nil {
		writeError(w, logger.FromRequest(r), err, app.MsgInvalidSurveyLink)
		return
	}
	if feedback == nil {
		feedback = []models.FeedbackRecord{}
	}

	utils.WriteJSON(w, feedback, http.StatusOK)
}

func (h *Handler) listArchived(w http.ResponseWriter, r *http.Request) {
	archived, err := h.service.ListArchived(r.Context())
	if err != nil {
		writeError(w, logger.FromRequest(r), err, app.MsgInvalidSurveyLink)
		return
	}
	if archived == nil {
		archived = []models.ArchivedFeedback{}
	}

	utils.WriteJSON(w, archived, http.StatusOK)
}
