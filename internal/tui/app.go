package tui

import (
	"path"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/mystore/internal/inventory"
	"github.com/muurk/mystore/internal/logging"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenDashboard Screen = "dashboard"
	ScreenNotFound  Screen = "not-found"
)

// Route paths
const (
	PathLogin     = "/"
	PathDashboard = "/dashboard"
)

// ScreenForPath maps a route path to its screen. Matching ignores case and a
// trailing slash; any unknown path is ScreenNotFound.
func ScreenForPath(p string) Screen {
	p = strings.TrimSpace(p)
	if p == "" {
		return ScreenLogin
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	switch strings.ToLower(path.Clean(p)) {
	case PathLogin:
		return ScreenLogin
	case PathDashboard:
		return ScreenDashboard
	default:
		return ScreenNotFound
	}
}

// Options configures a new AppModel.
type Options struct {
	StartPath       string
	Store           *inventory.Store // Shared by every dashboard instance; nil means empty
	DefaultUsername string
	DefaultSort     inventory.SortMode
	Currency        string
}

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	CurrentScreen  Screen
	PreviousScreen Screen
	RequestedPath  string // Shown by the not-found screen

	LoginModel     LoginModel
	DashboardModel DashboardModel
	NotFoundModel  NotFoundModel

	// Shared application state
	Store    *inventory.Store
	Username string
	opts     Options

	Width  int
	Height int
}

// NewAppModel creates a new application model starting at the screen for
// opts.StartPath.
func NewAppModel(opts Options) AppModel {
	if opts.Store == nil {
		opts.Store = inventory.NewStore()
	}
	if opts.Currency == "" {
		opts.Currency = "$"
	}

	m := AppModel{
		CurrentScreen: ScreenForPath(opts.StartPath),
		RequestedPath: opts.StartPath,
		Store:         opts.Store,
		Username:      opts.DefaultUsername,
		opts:          opts,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
	}
	m.initScreen(m.CurrentScreen)

	logging.Debug("App started",
		zap.String("path", opts.StartPath),
		zap.String("screen", string(m.CurrentScreen)),
		zap.Int("products", opts.Store.Len()),
	)
	return m
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	switch m.CurrentScreen {
	case ScreenLogin:
		return m.LoginModel.Init()
	case ScreenDashboard:
		return m.DashboardModel.Init()
	default:
		return nil
	}
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// Inactive screens pick the size up in initScreen
		switch m.CurrentScreen {
		case ScreenLogin:
			m.LoginModel.Width, m.LoginModel.Height = msg.Width, msg.Height
		case ScreenDashboard:
			m.DashboardModel.SetSize(msg.Width, msg.Height)
		case ScreenNotFound:
			m.NotFoundModel.Width, m.NotFoundModel.Height = msg.Width, msg.Height
		}
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenLogin:
		m.LoginModel, cmd = m.LoginModel.Update(msg)

		// Check if the user signed in
		if m.LoginModel.Submitted() {
			m.Username = m.LoginModel.Username()
			return m.transitionTo(ScreenDashboard)
		}

	case ScreenDashboard:
		m.DashboardModel, cmd = m.DashboardModel.Update(msg)

		if m.DashboardModel.LogoutRequested() {
			return m.transitionTo(ScreenLogin)
		}

	case ScreenNotFound:
		m.NotFoundModel, cmd = m.NotFoundModel.Update(msg)

		if m.NotFoundModel.HomeRequested() {
			return m.transitionTo(ScreenLogin)
		}
	}

	return m, cmd
}

// transitionTo transitions to a new screen
func (m AppModel) transitionTo(screen Screen) (tea.Model, tea.Cmd) {
	if screen == m.CurrentScreen {
		return m, nil
	}
	logging.LogScreenTransition(string(m.CurrentScreen), string(screen))

	m.PreviousScreen = m.CurrentScreen
	m.CurrentScreen = screen
	m.initScreen(screen)

	switch screen {
	case ScreenLogin:
		return m, m.LoginModel.Init()
	case ScreenDashboard:
		return m, m.DashboardModel.Init()
	}
	return m, nil
}

// initScreen builds a fresh model for screen. The dashboard always reuses the
// shared store, so products survive leaving and re-entering it.
func (m *AppModel) initScreen(screen Screen) {
	switch screen {
	case ScreenLogin:
		m.LoginModel = NewLoginModel(m.Username)
		m.LoginModel.Width, m.LoginModel.Height = m.Width, m.Height
	case ScreenDashboard:
		m.DashboardModel = NewDashboardModel(DashboardOptions{
			Store:    m.Store,
			Username: m.Username,
			Sort:     m.opts.DefaultSort,
			Currency: m.opts.Currency,
		})
		m.DashboardModel.SetSize(m.Width, m.Height)
	case ScreenNotFound:
		m.NotFoundModel = NewNotFoundModel(m.RequestedPath)
		m.NotFoundModel.Width, m.NotFoundModel.Height = m.Width, m.Height
	}
}

// View renders the current screen
// Each screen handles its own container using RenderApplicationContainer()
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenLogin:
		return m.LoginModel.View()
	case ScreenDashboard:
		return m.DashboardModel.View()
	case ScreenNotFound:
		return m.NotFoundModel.View()
	default:
		return "Unknown screen"
	}
}
