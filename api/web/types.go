package web

import (
	"html/template"

	"github.com/gorilla/sessions"

	"codeberg.org/doctor/server/internal/assistant"
	"codeberg.org/doctor/server/internal/markdown"
	"codeberg.org/doctor/server/internal/prompt"
	docsessions "codeberg.org/doctor/server/internal/sessions"
)

const (
	cookieName   = "doctor"
	sessionIDKey = "sid"
)

type Handlers struct {
	assistant *assistant.Assistant
	sessions  *docsessions.Manager
	store     sessions.Store
	renderer  *markdown.Renderer
}

// posted form values; every action button submits the whole form
type pageForm struct {
	Action   string `form:"action"`
	Language string `form:"language"`
	Depth    string `form:"depth"`
	Code     string `form:"code"`
	DarkMode bool   `form:"dark_mode"`
}

type pageData struct {
	Labels    assistant.Labels
	CodeLabel string
	Languages []prompt.Language
	Depths    []prompt.Depth
	Form      pageForm
	Notice    string
	Result    *resultView
}

// one action's output prepared for the template
type resultView struct {
	Heading      string
	Notice       string
	HTML         template.HTML
	Code         string
	CodeLanguage string
	Failed       bool

	DownloadLabel string
	DownloadName  string
	DownloadHref  template.URL
}
