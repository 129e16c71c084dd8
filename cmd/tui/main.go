package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"codeberg.org/doctor/server/internal/tui"
)

func main() {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	saveDir, err := os.Getwd()
	if err != nil {
		saveDir = "."
	}

	var width, height int
	if term.IsTerminal(os.Stdout.Fd()) {
		width, height, _ = term.GetSize(os.Stdout.Fd())
	}

	app := tui.NewApp(env, tui.NewClient(), saveDir, width, height)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running doctor: %v\n", err)
		os.Exit(1)
	}
}
