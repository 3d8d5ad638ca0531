package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/mystore/internal/inventory"
)

func TestScreenForPath(t *testing.T) {
	tests := []struct {
		path string
		want Screen
	}{
		{"/", ScreenLogin},
		{"", ScreenLogin},
		{"/dashboard", ScreenDashboard},
		{"/dashboard/", ScreenDashboard},
		{"/Dashboard", ScreenDashboard},
		{"dashboard", ScreenDashboard},
		{"/dashboard/extra", ScreenNotFound},
		{"/login", ScreenNotFound},
		{"/nope", ScreenNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ScreenForPath(tt.path))
		})
	}
}

// run feeds msg to the app. Returned commands are dropped; screen changes
// happen inside Update.
func run(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(AppModel), cmd
}

func TestNewAppModel_StartScreen(t *testing.T) {
	assert.Equal(t, ScreenLogin, NewAppModel(Options{}).CurrentScreen)
	assert.Equal(t, ScreenDashboard, NewAppModel(Options{StartPath: "/dashboard"}).CurrentScreen)
	assert.Equal(t, ScreenNotFound, NewAppModel(Options{StartPath: "/missing"}).CurrentScreen)
}

func TestApp_LoginToDashboard(t *testing.T) {
	m := NewAppModel(Options{})
	require.Equal(t, loginUsername, m.LoginModel.Focused())

	for _, r := range "bob" {
		m, _ = run(t, m, keyRunes(string(r)))
	}
	m, _ = run(t, m, keyType(tea.KeyEnter))
	require.Equal(t, loginPassword, m.LoginModel.Focused())
	require.Equal(t, ScreenLogin, m.CurrentScreen)

	for _, r := range "secret" {
		m, _ = run(t, m, keyRunes(string(r)))
	}
	assert.NotContains(t, m.View(), "secret", "password is masked")

	m, _ = run(t, m, keyType(tea.KeyEnter))
	assert.Equal(t, ScreenDashboard, m.CurrentScreen)
	assert.Equal(t, ScreenLogin, m.PreviousScreen)
	assert.Equal(t, "bob", m.Username)
	assert.Contains(t, m.View(), "Signed in as bob")
}

func TestApp_DefaultUsernameFocusesPassword(t *testing.T) {
	m := NewAppModel(Options{DefaultUsername: "admin"})

	assert.Equal(t, loginPassword, m.LoginModel.Focused())
	assert.Equal(t, "admin", m.LoginModel.Username())

	m, _ = run(t, m, keyType(tea.KeyEnter))
	assert.Equal(t, ScreenDashboard, m.CurrentScreen)
}

func TestApp_NotFoundGoesToLogin(t *testing.T) {
	m := NewAppModel(Options{StartPath: "/nope"})

	view := m.View()
	assert.Contains(t, view, "Page Not Found")
	assert.Contains(t, view, `"/nope"`)

	m, _ = run(t, m, keyType(tea.KeyEnter))
	assert.Equal(t, ScreenLogin, m.CurrentScreen)
}

func TestApp_ProductsSurviveSignOut(t *testing.T) {
	store := newTestStore(inventory.Product{Title: "A"})
	m := NewAppModel(Options{StartPath: "/dashboard", Store: store, DefaultUsername: "admin"})

	m, _ = run(t, m, keyRunes("d"))
	m, _ = run(t, m, keyRunes("y"))
	require.Equal(t, 0, store.Len())

	m, _ = run(t, m, keyRunes("L"))
	require.Equal(t, ScreenLogin, m.CurrentScreen)

	m, _ = run(t, m, keyType(tea.KeyEnter))
	require.Equal(t, ScreenDashboard, m.CurrentScreen)
	assert.Same(t, store, m.DashboardModel.State().Store())
	assert.Empty(t, m.DashboardModel.Products())
}

func TestApp_WindowSizePropagates(t *testing.T) {
	m := NewAppModel(Options{DefaultUsername: "admin"})

	m, _ = run(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.Width)
	assert.Equal(t, 100, m.LoginModel.Width)

	// The dashboard is built after the resize and starts at the same size.
	m, _ = run(t, m, keyType(tea.KeyEnter))
	require.Equal(t, ScreenDashboard, m.CurrentScreen)
	assert.Equal(t, 40, m.DashboardModel.Height)
	assert.Equal(t, 96, m.DashboardModel.viewport.Width)

	m, _ = run(t, m, tea.WindowSizeMsg{Width: 70, Height: 30})
	assert.Equal(t, 66, m.DashboardModel.viewport.Width)
}

func TestApp_CtrlCQuitsEverywhere(t *testing.T) {
	for _, path := range []string{"/", "/dashboard", "/nope"} {
		m := NewAppModel(Options{StartPath: path})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd, path)
		assert.IsType(t, tea.QuitMsg{}, cmd(), path)
	}
}

func TestApp_QuitFromDashboardList(t *testing.T) {
	m := NewAppModel(Options{StartPath: "/dashboard"})
	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
