package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// returns a new welcome screen
func NewWelcome(mode, endpoint string) *Welcome {
	return &Welcome{
		mode:     mode,
		endpoint: endpoint,
		commands: []Command{
			{Name: "open", Description: "open the documentation workspace"},
			{Name: "ping", Description: "check the server connection"},
			{Name: "quit", Description: "exit doctor"},
		},
	}
}

func (m *Welcome) Update(msg tea.Msg, client *Client) (*Welcome, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			cmd := m.executeCommand(client)
			m.input = ""
			return m, cmd
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.input += msg.String()
			}
		}

	case ServerReachableMsg:
		m.status = "server reachable at " + msg.endpoint
	}

	return m, nil
}

func (m *Welcome) View() string {
	var b strings.Builder

	b.WriteString(logoStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("AI-powered code documentation"))
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf("mode: %s | server: %s", strings.ToUpper(m.mode), m.endpoint)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("commands:"))
	b.WriteString("\n\n")

	for _, cmd := range m.commands {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			commandStyle.Render(cmd.Name),
			commandDescStyle.Render("- "+cmd.Description),
		))
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("> ") + inputStyle.Render(m.input+"_"))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("type a command and press enter. press ctrl+c to quit."))

	return b.String()
}

func (m *Welcome) executeCommand(client *Client) tea.Cmd {
	cmd := strings.TrimSpace(m.input)

	switch cmd {
	case "quit":
		return tea.Quit

	case "open":
		return func() tea.Msg {
			return EnterWorkspaceMsg{}
		}

	case "ping":
		return client.PingCmd()

	case "":
		return nil

	default:
		return func() tea.Msg {
			return ErrorMsg{err: fmt.Errorf("unknown command: %s", cmd)}
		}
	}
}
