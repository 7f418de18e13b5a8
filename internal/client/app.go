package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-visit-feedback/internal/config"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/tui"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context, surveyLink string) error
}

var (
	_ Client = (*App)(nil)
	_ UI     = (*tui.TUI)(nil)
)

type App struct {
	ui     UI
	cfg    config.ClientApp
	logger *logger.Logger
}

func NewApp(ui UI, cfg config.ClientApp, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}
	return &App{ui: ui, cfg: cfg, logger: log}, nil
}

// Run blocks until the user leaves the UI or the process is interrupted.
// Leaving the UI on purpose is not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Str("survey_link", a.cfg.SurveyLink).Msg("client started")

	err := a.ui.Run(ctx, a.cfg.SurveyLink)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("client interrupted")
		return nil
	default:
		return fmt.Errorf("run ui: %w", err)
	}
}
