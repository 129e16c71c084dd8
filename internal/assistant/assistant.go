package assistant

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/doctor/server/internal/prompt"
	"codeberg.org/doctor/server/internal/sessions"
)

const (
	documentationFile = "documentation.md"
	dependenciesFile  = "dependencies.txt"
	cleanedCodePrefix = "cleaned_code."

	contentTypeMarkdown = "text/markdown; charset=utf-8"
	contentTypeText     = "text/plain; charset=utf-8"
)

func New(model Model, style Style) *Assistant {
	return &Assistant{
		model:  model,
		labels: LabelsFor(style),
	}
}

func (a *Assistant) Labels() Labels {
	return a.labels
}

// runs one action for a session. a nil Output with a nil error means the
// action was skipped: blank code, or a download with nothing stored yet
func (a *Assistant) Run(ctx context.Context, session *sessions.Session, req Request) (*Output, error) {
	if req.Action == prompt.DownloadDocs {
		return a.downloadDocs(session), nil
	}

	if !req.Action.CallsModel() {
		return nil, fmt.Errorf("%q: %w", req.Action, prompt.ErrUnknownAction)
	}

	if prompt.IsBlank(req.Code) {
		return nil, nil
	}

	if req.Language == "" {
		return nil, ErrLanguageRequired
	}

	language, err := prompt.ParseLanguage(string(req.Language))
	if err != nil {
		return nil, err
	}

	depth := req.Depth
	if depth == "" {
		depth = prompt.DefaultDepth
	}

	p, err := prompt.Build(req.Action, language, depth, req.Code)
	if err != nil {
		return nil, err
	}

	result := a.model.Call(ctx, p.System, p.User)

	switch req.Action {
	case prompt.GenerateDocs:
		// only a successful reply replaces the stored documentation
		if !result.Failed() {
			session.SetDocumentation(result.Text)
		}

		return &Output{
			Action:  req.Action,
			Heading: a.labels.DocsHeading,
			Body:    result.Text,
			Format:  FormatMarkdown,
			Failed:  result.Failed(),
			Err:     result.Err,
		}, nil

	case prompt.GenerateDeps:
		return &Output{
			Action:       req.Action,
			Heading:      fmt.Sprintf(a.labels.DepsHeading, language),
			Body:         result.Text,
			Format:       FormatCode,
			CodeLanguage: "bash",
			Failed:       result.Failed(),
			Err:          result.Err,
			Download: &Download{
				FileName:    dependenciesFile,
				ContentType: contentTypeText,
				Content:     result.Text,
			},
		}, nil

	default:
		return &Output{
			Action:       req.Action,
			Heading:      a.labels.CleanedHeading,
			Notice:       a.labels.HardcodingNotice,
			Body:         result.Text,
			Format:       FormatCode,
			CodeLanguage: strings.ToLower(string(language)),
			Failed:       result.Failed(),
			Err:          result.Err,
			Download: &Download{
				FileName:    CleanedCodeFileName(language),
				ContentType: contentTypeText,
				Content:     result.Text,
			},
		}, nil
	}
}

func (a *Assistant) downloadDocs(session *sessions.Session) *Output {
	doc, ok := session.Documentation()
	if !ok {
		return nil
	}

	return &Output{
		Action: prompt.DownloadDocs,
		Download: &Download{
			FileName:    documentationFile,
			ContentType: contentTypeMarkdown,
			Content:     doc,
		},
	}
}

// returns the download name for de-hardcoded code, e.g. cleaned_code.py
func CleanedCodeFileName(language prompt.Language) string {
	return cleanedCodePrefix + prompt.Extension(language)
}
