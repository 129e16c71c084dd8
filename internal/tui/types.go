package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateWorkspace
)

// main TUI application model
type Model struct {
	state     AppState
	mode      string
	width     int
	height    int
	err       error
	welcome   *Welcome
	workspace *Workspace
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to transition to the workspace state
type EnterWorkspaceMsg struct{}

// sent when the server answered a ping
type ServerReachableMsg struct {
	endpoint string
}

type focusArea int

const (
	focusCode focusArea = iota
	focusResult
)

// code input, option pickers and the result pane
type Workspace struct {
	client   *Client
	code     textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	languages    []string
	depths       []string
	instructions string
	language     int // -1 until the user picks one
	depth        int

	dark      bool
	focus     focusArea
	fetching  bool
	showHelp  bool
	sessionID string
	result    *Output
	status    string
	saveDir   string

	width  int
	height int
}

// sent when the options request completes
type OptionsMsg struct {
	options *OptionsResponse
}

// sent when a generation request completes
type GenerateMsg struct {
	action   string
	response *GenerateResponse
}

// sent when the documentation download completes
type DocumentationMsg struct {
	response *GenerateResponse
}

// sent when a request to the server fails
type RequestErrorMsg struct {
	action string
	err    error
}

// sent when a download was written to disk
type SavedMsg struct {
	path string
}

// welcome screen model
type Welcome struct {
	mode     string
	endpoint string
	input    string
	status   string
	commands []Command
}

// represents an available TUI command
type Command struct {
	Name        string
	Description string
}
