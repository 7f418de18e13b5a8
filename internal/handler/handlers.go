package handler

import (
	"github.com/MKhiriev/go-visit-feedback/internal/config"
	"github.com/MKhiriev/go-visit-feedback/internal/handler/http"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/sandbox"
	"github.com/MKhiriev/go-visit-feedback/internal/utils"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(service sandbox.Service, traceIDs utils.IDGenerator, cfg config.SandboxServer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(service, traceIDs, logger)}, nil
}
