package assistant

import (
	"context"
	"errors"

	"codeberg.org/doctor/server/internal/llm"
	"codeberg.org/doctor/server/internal/prompt"
)

var ErrLanguageRequired = errors.New("select a language")

// the model side of the assistant, satisfied by *llm.Client
type Model interface {
	Call(ctx context.Context, systemPrompt, userPrompt string) llm.Result
}

// one user action with the form values current at the time of the click
type Request struct {
	Action   prompt.Action
	Language prompt.Language
	Depth    prompt.Depth
	Code     string
}

// how the result body should be rendered
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatCode     Format = "code"
	FormatNone     Format = ""
)

// a file offered to the user on explicit action
type Download struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
}

// everything the presentation layer needs to show one action's result
type Output struct {
	Action       prompt.Action `json:"action"`
	Heading      string        `json:"heading,omitempty"`
	Notice       string        `json:"notice,omitempty"`
	Body         string        `json:"body,omitempty"`
	Format       Format        `json:"format,omitempty"`
	CodeLanguage string        `json:"code_language,omitempty"`
	Failed       bool          `json:"failed"`
	Download     *Download     `json:"download,omitempty"`

	// cause of a failed model call, for server-side logging only
	Err error `json:"-"`
}

// orchestrates prompt building, the model call and result presentation
type Assistant struct {
	model  Model
	labels Labels
}
