package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// notFoundKeyMap defines key bindings for the not-found screen
type notFoundKeyMap struct {
	Home key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k notFoundKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k notFoundKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Home, k.Quit}}
}

// NotFoundModel is shown for any route without a screen.
type NotFoundModel struct {
	Path          string
	homeRequested bool

	Width  int
	Height int

	Help help.Model
	Keys notFoundKeyMap
}

// NewNotFoundModel creates the not-found screen for path.
func NewNotFoundModel(path string) NotFoundModel {
	return NotFoundModel{
		Path:   path,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Help:   help.New(),
		Keys: notFoundKeyMap{
			Home: key.NewBinding(
				key.WithKeys("enter", "h"),
				key.WithHelp("enter", "go to login"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "esc"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

// HomeRequested reports whether the user asked to go to the login screen.
func (m NotFoundModel) HomeRequested() bool {
	return m.homeRequested
}

// Update handles messages and updates the model
func (m NotFoundModel) Update(msg tea.Msg) (NotFoundModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.Keys.Home):
			m.homeRequested = true
			return m, nil
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the not-found screen
func (m NotFoundModel) View() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		ErrorStyle.Render("404"),
		RenderTitle("Page Not Found"),
		"",
		SubtitleStyle.Render("No screen for "+quotePath(m.Path)),
	)

	content := lipgloss.Place(
		max(m.Width-4, 0),
		max(m.Height-containerChrome, 1),
		lipgloss.Center,
		lipgloss.Center,
		body,
	)
	return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
}

func quotePath(p string) string {
	if p == "" {
		return `""`
	}
	return `"` + p + `"`
}
