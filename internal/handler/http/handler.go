package http

import (
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/sandbox"
	"github.com/MKhiriev/go-visit-feedback/internal/utils"
)

type Handler struct {
	service  sandbox.Service
	traceIDs utils.IDGenerator

	logger *logger.Logger
}

func NewHandler(service sandbox.Service, traceIDs utils.IDGenerator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		service:  service,
		traceIDs: traceIDs,
		logger:   logger,
	}
}
