package http

import (
	"net/http"

	"github.com/MKhiriev/go-visit-feedback/internal/app"
	"github.com/MKhiriev/go-visit-feedback/internal/utils"
)

type statusMessage struct {
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
}

func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, statusMessage{Message: app.MsgAPIRunning}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, statusMessage{Status: app.MsgHealthy}, http.StatusOK)
}
