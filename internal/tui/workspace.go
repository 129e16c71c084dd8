package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codeberg.org/doctor/server/internal/prompt"
)

const helpLine = "[ctrl+g docs] [ctrl+e deps] [ctrl+r hardcoding] [ctrl+o .md] [ctrl+s save] [ctrl+l lang] [ctrl+p depth] [ctrl+t theme] [tab focus] [f1 help]"

// returns a workspace talking to client; downloads are written to saveDir
func NewWorkspace(client *Client, saveDir string) *Workspace {
	ta := textarea.New()
	ta.Placeholder = "paste your code here..."
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	w := &Workspace{
		client:   client,
		code:     ta,
		viewport: viewport.New(80, 10),
		spinner:  sp,
		language: -1,
		dark:     true,
		saveDir:  saveDir,
	}

	for _, l := range prompt.Languages() {
		w.languages = append(w.languages, string(l))
	}

	for i, d := range prompt.Depths() {
		w.depths = append(w.depths, string(d))
		if d == prompt.DefaultDepth {
			w.depth = i
		}
	}

	w.renderer = newRenderer(w.dark, 78)

	return w
}

func (w *Workspace) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, w.client.OptionsCmd())
}

func (w *Workspace) Update(msg tea.Msg) (*Workspace, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := w.handleKey(msg); handled {
			return w, cmd
		}

	case tea.WindowSizeMsg:
		w.resize(msg.Width, msg.Height)
		return w, nil

	case spinner.TickMsg:
		if !w.fetching {
			return w, nil
		}

		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return w, cmd

	case OptionsMsg:
		w.applyOptions(msg.options)
		return w, nil

	case GenerateMsg:
		w.fetching = false
		w.sessionID = msg.response.SessionID
		if msg.response.Skipped || msg.response.Result == nil {
			return w, nil
		}

		w.result = msg.response.Result
		w.status = ""
		w.refreshResult()
		return w, nil

	case DocumentationMsg:
		w.fetching = false
		if len(msg.response.Downloads) == 0 {
			return w, nil
		}

		return w, w.saveCmd(msg.response.Downloads[0])

	case SavedMsg:
		w.status = "saved " + msg.path
		return w, nil

	case RequestErrorMsg:
		w.fetching = false
		w.status = fmt.Sprintf("%s failed: %v", msg.action, msg.err)
		return w, nil
	}

	var cmd tea.Cmd
	if w.focus == focusCode {
		w.code, cmd = w.code.Update(msg)
	} else {
		w.viewport, cmd = w.viewport.Update(msg)
	}

	return w, cmd
}

func (w *Workspace) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+g":
		return w.generate(prompt.GenerateDocs), true
	case "ctrl+e":
		return w.generate(prompt.GenerateDeps), true
	case "ctrl+r":
		return w.generate(prompt.RemoveHardcoding), true

	case "ctrl+o":
		// nothing to download before the first request
		if w.fetching || w.sessionID == "" {
			return nil, true
		}

		w.fetching = true
		return tea.Batch(w.spinner.Tick, w.client.DocumentationCmd(w.sessionID)), true

	case "ctrl+s":
		if w.result == nil || w.result.Download == nil {
			return nil, true
		}

		return w.saveCmd(*w.result.Download), true

	case "ctrl+l":
		w.language = (w.language + 1) % len(w.languages)
		w.status = ""
		return nil, true

	case "ctrl+p":
		w.depth = (w.depth + 1) % len(w.depths)
		return nil, true

	case "ctrl+t":
		w.dark = !w.dark
		w.renderer = newRenderer(w.dark, w.viewport.Width-2)
		w.refreshResult()
		return nil, true

	case "tab":
		if w.focus == focusCode {
			w.focus = focusResult
			w.code.Blur()
		} else {
			w.focus = focusCode
			return w.code.Focus(), true
		}
		return nil, true

	case "f1":
		w.showHelp = !w.showHelp
		return nil, true
	}

	return nil, false
}

// starts a generation request with the values currently shown
func (w *Workspace) generate(action prompt.Action) tea.Cmd {
	if w.fetching || prompt.IsBlank(w.code.Value()) {
		return nil
	}

	if w.language < 0 {
		w.status = "select a language first (ctrl+l)"
		return nil
	}

	w.fetching = true
	w.status = ""

	return tea.Batch(w.spinner.Tick, w.client.GenerateCmd(string(action), GenerateRequest{
		SessionID: w.sessionID,
		Language:  w.languages[w.language],
		Depth:     w.depths[w.depth],
		Code:      w.code.Value(),
	}))
}

func (w *Workspace) saveCmd(d Download) tea.Cmd {
	dir := w.saveDir

	return func() tea.Msg {
		path := filepath.Join(dir, filepath.Base(d.FileName))
		if err := os.WriteFile(path, []byte(d.Content), 0o644); err != nil { //nolint:gosec // user-facing download
			return RequestErrorMsg{action: "save", err: err}
		}

		return SavedMsg{path: path}
	}
}

// takes server-provided option lists when they are non-empty
func (w *Workspace) applyOptions(opts *OptionsResponse) {
	if opts == nil {
		return
	}

	if len(opts.Languages) > 0 {
		w.languages = opts.Languages
		w.language = -1
	}

	if len(opts.Depths) > 0 {
		w.depths = opts.Depths
		w.depth = 0
		for i, d := range opts.Depths {
			if d == opts.DefaultDepth {
				w.depth = i
			}
		}
	}

	w.instructions = opts.Instructions
}

func (w *Workspace) resize(width, height int) {
	w.width = width
	w.height = height

	paneWidth := max(20, width/2-2)
	paneHeight := max(5, height-8)

	w.code.SetWidth(paneWidth)
	w.code.SetHeight(paneHeight)
	w.viewport.Width = paneWidth
	w.viewport.Height = paneHeight

	w.renderer = newRenderer(w.dark, paneWidth-2)
	w.refreshResult()
}

func (w *Workspace) refreshResult() {
	if w.result == nil {
		w.viewport.SetContent("")
		return
	}

	w.viewport.SetContent(renderOutput(w.renderer, w.result))
	w.viewport.GotoTop()
}

func (w *Workspace) View() string {
	var b strings.Builder

	header := titleStyle.Render("DOCTOR")
	options := infoStyle.Render(fmt.Sprintf("language: %s | depth: %s | theme: %s",
		w.languageLabel(), w.depths[w.depth], w.themeLabel()))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, header, "  ", options))
	b.WriteString("\n")

	if w.showHelp {
		help := w.instructions
		if help == "" {
			help = helpLine
		}

		b.WriteString(borderStyle.Width(max(20, w.width-4)).Render(help))
		b.WriteString("\n")
	}

	codeBox := w.paneStyle(w.focus == focusCode).Render(w.code.View())
	resultBox := w.paneStyle(w.focus == focusResult).Render(w.resultView())

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, codeBox, resultBox))
	b.WriteString("\n")

	switch {
	case w.fetching:
		b.WriteString(infoStyle.Render(w.spinner.View() + " working on it..."))
	case w.status != "":
		b.WriteString(statusStyle.Render(w.status))
	default:
		b.WriteString(disclaimerStyle.Render("AI can make mistakes. Review generated content before using it."))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine))

	return b.String()
}

func (w *Workspace) resultView() string {
	if w.result == nil {
		return infoStyle.Render("results appear here")
	}

	return w.viewport.View()
}

func (w *Workspace) paneStyle(focused bool) lipgloss.Style {
	if focused {
		return paneStyle.BorderForeground(colorAccent)
	}

	return paneStyle
}

func (w *Workspace) languageLabel() string {
	if w.language < 0 {
		return "none"
	}

	return w.languages[w.language]
}

func (w *Workspace) themeLabel() string {
	if w.dark {
		return "dark"
	}

	return "light"
}
