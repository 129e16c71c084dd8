package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorAccent    = lipgloss.Color("#58A6FF")
	colorYellow    = lipgloss.Color("#D29922")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(colorAccent).
			Padding(0, 1)

	logoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			MarginBottom(2)

	commandStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	commandDescStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				PaddingLeft(1)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorDarkGray)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	disclaimerStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Italic(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true)
)

const logo = `
  ██████╗  ██████╗  ██████╗████████╗ ██████╗ ██████╗
  ██╔══██╗██╔═══██╗██╔════╝╚══██╔══╝██╔═══██╗██╔══██╗
  ██║  ██║██║   ██║██║        ██║   ██║   ██║██████╔╝
  ██║  ██║██║   ██║██║        ██║   ██║   ██║██╔══██╗
  ██████╔╝╚██████╔╝╚██████╗   ██║   ╚██████╔╝██║  ██║
  ╚═════╝  ╚═════╝  ╚═════╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝
`
