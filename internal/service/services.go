package service

import (
	"github.com/MKhiriev/go-visit-feedback/internal/adapter"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
)

type Services struct {
	IntakeService    IntakeService
	SurveyService    SurveyService
	DashboardService DashboardService
}

func NewServices(api adapter.FeedbackAPI, logger *logger.Logger) *Services {
	return &Services{
		IntakeService:    NewIntakeService(api, logger),
		SurveyService:    NewSurveyService(api, logger),
		DashboardService: NewDashboardService(api, logger),
	}
}
