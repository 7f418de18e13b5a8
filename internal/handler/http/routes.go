package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get("/", h.root)
	router.Get("/health", h.health)

	router.Post("/api/customers", h.createCustomer)
	router.Get("/api/customers", h.listCustomers)

	router.Get("/api/feedback", h.listFeedback)
	router.Get("/api/feedback/{token}", h.surveyContext)
	router.Post("/api/feedback/{token}", h.submitFeedback)

	router.Get("/api/azure-data", h.listArchived)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
