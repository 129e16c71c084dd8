package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// returns the application model; width and height seed the layout until
// the first window size message arrives
func NewApp(mode string, client *Client, saveDir string, width, height int) *Model {
	m := &Model{
		state:     StateWelcome,
		mode:      mode,
		width:     width,
		height:    height,
		welcome:   NewWelcome(mode, client.Endpoint()),
		workspace: NewWorkspace(client, saveDir),
	}

	if width > 0 && height > 0 {
		m.workspace.resize(width, height)
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			switch {
			case m.err != nil:
				m.err = nil
				return m, nil
			case m.state == StateWorkspace:
				m.state = StateWelcome
				return m, nil
			default:
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.workspace, _ = m.workspace.Update(msg)
		return m, nil

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case EnterWorkspaceMsg:
		m.state = StateWorkspace
		return m, m.workspace.Init()
	}

	var cmd tea.Cmd

	switch m.state {
	case StateWelcome:
		m.welcome, cmd = m.welcome.Update(msg, m.workspace.client)
	case StateWorkspace:
		m.workspace, cmd = m.workspace.Update(msg)
	}

	return m, cmd
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.err)
	}

	switch m.state {
	case StateWelcome:
		return m.welcome.View()
	case StateWorkspace:
		return m.workspace.View()
	default:
		return "Unknown state"
	}
}

func errorView(err error) string {
	return fmt.Sprintf("\n  Error: %v\n\n  Press Ctrl+C to go back\n", err)
}
