package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-visit-feedback/internal/app"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/utils"
	"github.com/MKhiriev/go-visit-feedback/models"
)

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteDetail(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.service.RegisterCustomer(r.Context(), customer)
	if err != nil {
		writeError(w, log, err, app.MsgInvalidSurveyLink)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		writeError(w, logger.FromRequest(r), err, app.MsgInvalidSurveyLink)
		return
	}
	if customers == nil {
		customers = []models.CustomerRecord{}
	}

	utils.WriteJSON(w, customers, http.StatusOK)
}
