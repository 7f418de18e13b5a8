package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-visit-feedback/internal/adapter"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/models"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	api adapter.FeedbackAPI

	logger *logger.Logger
}

func NewDashboardService(api adapter.FeedbackAPI, logger *logger.Logger) DashboardService {
	return &dashboardService{api: api, logger: logger}
}

// Load implements [DashboardService].
func (s *dashboardService) Load(ctx context.Context) (models.Dashboard, error) {
	var dashboard models.Dashboard

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		customers, err := s.api.ListCustomers(gCtx)
		dashboard.Customers = customers
		return err
	})
	g.Go(func() error {
		feedback, err := s.api.ListFeedback(gCtx)
		dashboard.Feedback = feedback
		return err
	})
	g.Go(func() error {
		archived, err := s.api.ListArchived(gCtx)
		dashboard.Archived = archived
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Msg("dashboard load failed")
		return models.Dashboard{}, fmt.Errorf("%w: %w", ErrDashboardLoad, mapAdapterError(err))
	}

	s.logger.Debug().
		Int("customers", len(dashboard.Customers)).
		Int("feedback", len(dashboard.Feedback)).
		Int("archived", len(dashboard.Archived)).
		Msg("dashboard loaded")

	return dashboard, nil
}
