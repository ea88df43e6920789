package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/models"
	tea "github.com/charmbracelet/bubbletea"
)

const versionTimeout = 5 * time.Second

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info window
// 3) follows the session: sign-in opens the session page, logout leaves it
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx        context.Context
	controller service.ClientSessionController

	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	state      models.ClientSessionState
	quitByUser bool

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	serverVersion *models.VersionResponse
	serverErr     string
}

// NewRootModel registers all pages and opens the page matching state.
func NewRootModel(
	ctx context.Context,
	controller service.ClientSessionController,
	pages map[string]tea.Model,
	state models.ClientSessionState,
	buildInfo models.AppBuildInfo,
) RootModel {
	r := RootModel{
		ctx:        ctx,
		controller: controller,
		pages:      pages,
		buildInfo:  buildInfo,
	}
	r.applyState(state)

	start := pageMenu
	if state.IsAuthenticated() {
		start = pageSession
	}
	r.current, r.currentName = pages[start], start
	return r
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.currentName == pageMenu || r.currentName == pageSession {
				r.showBuildInfo = !r.showBuildInfo
				if r.showBuildInfo {
					return r, r.cmdServerVersion()
				}
				return r, nil
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

	case serverVersionMsg:
		if msg.err != nil {
			r.serverVersion, r.serverErr = nil, humanizeError(msg.err)
			return r, nil
		}
		version := msg.version
		r.serverVersion, r.serverErr = &version, ""
		return r, nil

	case NavigateTo:
		return r.navigate(msg)

	case sessionStateMsg:
		wasAuthenticated := r.state.IsAuthenticated()
		r.applyState(msg.state)

		switch {
		case msg.state.IsAuthenticated() && isAuthPage(r.currentName):
			return r.navigate(NavigateTo{Page: pageSession})
		case !msg.state.IsAuthenticated() && wasAuthenticated && !isAuthPage(r.currentName):
			return r.navigate(NavigateTo{Page: pageMenu})
		}
		return r, nil

	case forcedLogoutMsg:
		return r.navigate(NavigateTo{Page: pageLogin, Payload: loginNotice{text: msg.reason}})
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.currentName] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion, r.serverErr)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return r.current.View()
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current, r.currentName = next, nav.Page

	init := r.current.Init()
	if nav.Payload != nil {
		payload := nav.Payload
		return r, tea.Batch(init, func() tea.Msg { return payload })
	}
	return r, init
}

// applyState records state and hands it to the pages that render the
// session, whether or not they are active.
func (r *RootModel) applyState(state models.ClientSessionState) {
	r.state = state
	for _, name := range []string{pageSession, pageProfile} {
		if page, ok := r.pages[name]; ok {
			r.pages[name], _ = page.Update(sessionStateMsg{state: state})
		}
	}
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	ctx, controller := r.ctx, r.controller
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, versionTimeout)
		defer cancel()
		version, err := controller.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func isAuthPage(name string) bool {
	switch name {
	case pageMenu, pageLogin, pageGoogle, pageRegisterCandidate, pageRegisterRecruiter:
		return true
	default:
		return false
	}
}
