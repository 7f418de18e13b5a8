package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-visit-feedback/internal/form"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/service"
	"github.com/MKhiriev/go-visit-feedback/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: log}, nil
}

// Pages returns the page factories bound to ctx.
func (t *TUI) Pages(ctx context.Context) map[string]PageFactory {
	return map[string]PageFactory{
		pageMenu: func(payload any) tea.Model {
			notice, _ := payload.(string)
			return NewMenuModel(notice)
		},
		pageIntake: func(any) tea.Model {
			return NewIntakeModel(ctx, t.services.IntakeService)
		},
		pageSurveyLink: func(any) tea.Model {
			return NewSurveyLinkModel()
		},
		pageSurvey: func(payload any) tea.Model {
			token, _ := payload.(string)
			return NewSurveyModel(ctx, t.services.SurveyService, token)
		},
		pageDashboard: func(any) tea.Model {
			return NewDashboardModel(ctx, t.services.DashboardService, clipboard.WriteAll)
		},
	}
}

// Run blocks until the user quits. A non-empty surveyLink opens that survey
// instead of the menu.
func (t *TUI) Run(ctx context.Context, surveyLink string) error {
	startPage, payload := pageMenu, any(nil)
	if surveyLink != "" {
		startPage, payload = pageSurvey, form.TokenFromLink(surveyLink)
		t.logger.Info().Str("page", startPage).Msg("opening survey link from configuration")
	}

	root := NewRootModel(t.Pages(ctx), startPage, payload, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
