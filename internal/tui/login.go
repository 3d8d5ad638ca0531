package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/mystore/internal/logging"
)

const (
	loginUsername = iota
	loginPassword
	loginFieldCount
)

// loginKeyMap defines key bindings for the login screen
type loginKeyMap struct {
	Next   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k loginKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k loginKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Submit, k.Quit}}
}

// LoginModel is the sign-in screen. Credentials are collected but not
// checked; submitting always opens the dashboard.
type LoginModel struct {
	inputs    [loginFieldCount]textinput.Model
	focus     int
	submitted bool

	Width  int
	Height int

	Help help.Model
	Keys loginKeyMap
}

// NewLoginModel creates the login screen with username prefilled.
func NewLoginModel(username string) LoginModel {
	user := textinput.New()
	user.Placeholder = "Enter username"
	user.CharLimit = 64
	user.Width = 32
	user.Prompt = ""
	user.SetValue(username)

	pass := textinput.New()
	pass.Placeholder = "Enter password"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.CharLimit = 64
	pass.Width = 32
	pass.Prompt = ""

	m := LoginModel{
		inputs: [loginFieldCount]textinput.Model{user, pass},
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Help:   help.New(),
		Keys: loginKeyMap{
			Next: key.NewBinding(
				key.WithKeys("tab", "shift+tab", "up", "down"),
				key.WithHelp("tab", "switch field"),
			),
			Submit: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "sign in"),
			),
			Quit: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "quit"),
			),
		},
	}
	// Start on the password when the username is already known.
	if username != "" {
		m.focus = loginPassword
	}
	m.inputs[m.focus].Focus()
	return m
}

// Init initializes the login screen
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Username returns the entered username, trimmed.
func (m LoginModel) Username() string {
	return strings.TrimSpace(m.inputs[loginUsername].Value())
}

// Submitted reports whether the user pressed enter on the password field.
func (m LoginModel) Submitted() bool {
	return m.submitted
}

// Focused returns the index of the focused input.
func (m LoginModel) Focused() int {
	return m.focus
}

// Update handles messages and updates the model
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.Keys.Next):
			return m, m.setFocus((m.focus + 1) % loginFieldCount)

		case key.Matches(msg, m.Keys.Submit):
			if m.focus == loginUsername {
				return m, m.setFocus(loginPassword)
			}
			logging.Info("Signed in", zap.String("username", m.Username()))
			m.submitted = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// View renders the login screen
func (m LoginModel) View() string {
	field := func(label string, i int) string {
		labelStyle := BlurredInputStyle
		if m.focus == i {
			labelStyle = FocusedInputStyle
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1).
			Width(36)
		if m.focus == i {
			box = box.BorderForeground(PrimaryColor)
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			labelStyle.Render(label),
			box.Render(m.inputs[i].View()),
		)
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		RenderTitle("Sign in"),
		SubtitleStyle.Render("Any credentials will do."),
		"",
		field("Username", loginUsername),
		"",
		field("Password", loginPassword),
	)

	content := lipgloss.Place(
		max(m.Width-4, 0),
		max(m.Height-containerChrome, 1),
		lipgloss.Center,
		lipgloss.Center,
		ModalStyle(44, PrimaryColor).Render(form),
	)

	return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
}
