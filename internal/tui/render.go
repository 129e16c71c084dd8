package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// returns a Markdown renderer for the theme; nil if glamour cannot be set up
func newRenderer(dark bool, width int) *glamour.TermRenderer {
	style := styles.LightStyle
	if dark {
		style = styles.DarkStyle
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(20, width)),
	)
	if err != nil {
		return nil
	}

	return r
}

// renders a result as heading, optional notice and body
func renderOutput(r *glamour.TermRenderer, out *Output) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(out.Heading))
	b.WriteString("\n")

	if out.Notice != "" {
		b.WriteString(noticeStyle.Render(out.Notice))
		b.WriteString("\n")
	}

	source := out.Body
	if out.Format == "code" && !out.Failed {
		source = "```" + out.CodeLanguage + "\n" + out.Body + "\n```"
	}

	b.WriteString(renderMarkdown(r, source, out.Body))

	if out.Download != nil {
		b.WriteString(infoStyle.Render("ctrl+s saves " + out.Download.FileName))
	}

	return b.String()
}

// falls back to the raw text when rendering is unavailable
func renderMarkdown(r *glamour.TermRenderer, source, fallback string) string {
	if r == nil {
		return fallback + "\n"
	}

	rendered, err := r.Render(source)
	if err != nil {
		return fallback + "\n"
	}

	return rendered
}
