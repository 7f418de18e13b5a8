package tui

import (
	"github.com/MKhiriev/go-visit-feedback/models"
	tea "github.com/charmbracelet/bubbletea"
)

// PageFactory builds a fresh page for a navigation request.
type PageFactory func(payload any) tea.Model

// discarder is implemented by pages owning a form with pending work.
type discarder interface {
	Discard()
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages, building every page anew
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]PageFactory
	current tea.Model
	name    string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage with startPayload.
func NewRootModel(pages map[string]PageFactory, startPage string, startPayload any, buildInfo models.AppBuildInfo) RootModel {
	r := RootModel{
		pages:     pages,
		buildInfo: buildInfo,
	}
	if factory, ok := pages[startPage]; ok {
		r.current = factory(startPayload)
		r.name = startPage
	}
	return r
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			r.discardCurrent()
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "q":
			if r.isMenuPage() && !r.showBuildInfo {
				r.quitByUser = true
				return r, tea.Quit
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		factory, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.discardCurrent()
		r.showBuildInfo = false
		r.current = factory(nav.Payload)
		r.name = nav.Page
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if r.current == nil {
		return appStyle.Render(renderPage("VISIT FEEDBACK", "", ""))
	}
	return appStyle.Render(r.current.View())
}

// Page returns the name of the active page.
func (r RootModel) Page() string {
	return r.name
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

// discardCurrent drops pending work of the page being left so late results
// are ignored.
func (r RootModel) discardCurrent() {
	if d, ok := r.current.(discarder); ok {
		d.Discard()
	}
}

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
