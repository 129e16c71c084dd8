package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/doctor/server/internal/llm"
	"codeberg.org/doctor/server/internal/prompt"
	"codeberg.org/doctor/server/internal/sessions"
)

type call struct {
	system string
	user   string
}

// implements Model for testing, replying with queued texts in order
type mockModel struct {
	calls   []call
	replies []llm.Result
}

func (m *mockModel) Call(_ context.Context, systemPrompt, userPrompt string) llm.Result {
	m.calls = append(m.calls, call{system: systemPrompt, user: userPrompt})

	if len(m.replies) == 0 {
		return llm.Result{Text: "ok"}
	}

	r := m.replies[0]
	m.replies = m.replies[1:]
	return r
}

func reply(text string) llm.Result {
	return llm.Result{Text: text}
}

func failed(msg string) llm.Result {
	err := errors.New(msg)
	return llm.Result{Text: "Error: " + msg, Err: err}
}

func newSession() *sessions.Session {
	return sessions.NewManager(time.Hour).Create()
}

func TestRun_EndToEndSimplePython(t *testing.T) {
	model := &mockModel{replies: []llm.Result{reply("Prints the number 1.")}}
	a := New(model, StylePlain)
	s := newSession()

	out, err := a.Run(context.Background(), s, Request{
		Action:   prompt.GenerateDocs,
		Language: prompt.Python,
		Depth:    prompt.Simple,
		Code:     "print(1)",
	})

	require.NoError(t, err)
	require.Len(t, model.calls, 1)
	assert.Equal(t, "Write a basic explanation of this Python code:\n\nprint(1)", model.calls[0].user)
	assert.Equal(t, "You are an expert Python developer writing documentation.", model.calls[0].system)

	require.NotNil(t, out)
	assert.Equal(t, "Generated Documentation", out.Heading)
	assert.Equal(t, "Prints the number 1.", out.Body)
	assert.Equal(t, FormatMarkdown, out.Format)
	assert.False(t, out.Failed)
	assert.Nil(t, out.Download)

	doc, ok := s.Documentation()
	require.True(t, ok)
	assert.Equal(t, "Prints the number 1.", doc)
}

func TestRun_DocsOverwriteAndAuxiliaryActionsDoNotTouchSession(t *testing.T) {
	model := &mockModel{replies: []llm.Result{
		reply("first docs"),
		reply("second docs"),
		reply("numpy"),
		reply("X = 5"),
	}}
	a := New(model, StylePlain)
	s := newSession()
	ctx := context.Background()

	base := Request{Language: prompt.Python, Depth: prompt.Detailed, Code: "import numpy"}

	for _, action := range []prompt.Action{prompt.GenerateDocs, prompt.GenerateDocs} {
		req := base
		req.Action = action
		_, err := a.Run(ctx, s, req)
		require.NoError(t, err)
	}

	doc, _ := s.Documentation()
	assert.Equal(t, "second docs", doc)

	for _, action := range []prompt.Action{prompt.GenerateDeps, prompt.RemoveHardcoding} {
		req := base
		req.Action = action
		out, err := a.Run(ctx, s, req)
		require.NoError(t, err)
		require.NotNil(t, out)
	}

	doc, _ = s.Documentation()
	assert.Equal(t, "second docs", doc)
	assert.Len(t, model.calls, 4)
}

func TestRun_FailedDocsAreShownButNotStored(t *testing.T) {
	model := &mockModel{replies: []llm.Result{reply("good"), failed("connection refused")}}
	a := New(model, StylePlain)
	s := newSession()
	req := Request{Action: prompt.GenerateDocs, Language: prompt.R, Code: "x <- 1"}

	_, err := a.Run(context.Background(), s, req)
	require.NoError(t, err)

	out, err := a.Run(context.Background(), s, req)
	require.NoError(t, err)

	assert.True(t, out.Failed)
	assert.True(t, strings.HasPrefix(out.Body, "Error: "))
	assert.Equal(t, "Generated Documentation", out.Heading)
	assert.Error(t, out.Err)

	doc, _ := s.Documentation()
	assert.Equal(t, "good", doc)
}

func TestRun_FailureBeforeAnySuccessLeavesDocumentationUndefined(t *testing.T) {
	model := &mockModel{replies: []llm.Result{failed("401 unauthorized")}}
	s := newSession()

	_, err := New(model, StylePlain).Run(context.Background(), s, Request{Action: prompt.GenerateDocs, Language: prompt.R, Code: "x"})
	require.NoError(t, err)

	_, ok := s.Documentation()
	assert.False(t, ok)
}

func TestRun_BlankCodeIsSkippedForEveryAction(t *testing.T) {
	model := &mockModel{}
	a := New(model, StylePlain)
	s := newSession()

	for _, action := range []prompt.Action{prompt.GenerateDocs, prompt.GenerateDeps, prompt.RemoveHardcoding} {
		for _, code := range []string{"", "   ", "\n\t "} {
			out, err := a.Run(context.Background(), s, Request{Action: action, Language: prompt.Python, Code: code})

			assert.NoError(t, err)
			assert.Nil(t, out, "%s with %q", action, code)
		}
	}

	assert.Empty(t, model.calls)
}

func TestRun_Dependencies(t *testing.T) {
	model := &mockModel{replies: []llm.Result{reply("dplyr\nggplot2")}}
	a := New(model, StylePlain)

	out, err := a.Run(context.Background(), newSession(), Request{
		Action:   prompt.GenerateDeps,
		Language: prompt.R,
		Depth:    prompt.Expert,
		Code:     "library(dplyr)",
	})

	require.NoError(t, err)
	assert.Equal(t, "Generate a list of dependencies or packages used in this R code:\n\nlibrary(dplyr)", model.calls[0].user)
	assert.Equal(t, "You are a R expert generating a dependency list.", model.calls[0].system)
	assert.Equal(t, "Dependencies (R)", out.Heading)
	assert.Equal(t, FormatCode, out.Format)
	assert.Equal(t, "bash", out.CodeLanguage)
	require.NotNil(t, out.Download)
	assert.Equal(t, "dependencies.txt", out.Download.FileName)
	assert.Equal(t, "dplyr\nggplot2", out.Download.Content)
}

func TestRun_RemoveHardcoding(t *testing.T) {
	model := &mockModel{replies: []llm.Result{reply("const LIMIT = 5;")}}
	a := New(model, StylePlain)

	out, err := a.Run(context.Background(), newSession(), Request{
		Action:   prompt.RemoveHardcoding,
		Language: prompt.JavaScript,
		Code:     "if (x > 5) {}",
	})

	require.NoError(t, err)
	assert.Equal(t, "Removing hardcoded variables may change your code behavior. Review carefully.", out.Notice)
	assert.Equal(t, "Cleaned Code (No Hardcoding)", out.Heading)
	assert.Equal(t, "javascript", out.CodeLanguage)
	require.NotNil(t, out.Download)
	assert.Equal(t, "cleaned_code.ja", out.Download.FileName)
	assert.Equal(t, "const LIMIT = 5;", out.Download.Content)
}

func TestRun_DownloadDocs(t *testing.T) {
	model := &mockModel{replies: []llm.Result{reply("# Docs")}}
	a := New(model, StylePlain)
	s := newSession()
	ctx := context.Background()

	out, err := a.Run(ctx, s, Request{Action: prompt.DownloadDocs})
	require.NoError(t, err)
	assert.Nil(t, out, "no-op before any documentation exists")

	_, err = a.Run(ctx, s, Request{Action: prompt.GenerateDocs, Language: prompt.Julia, Code: "f(x) = x"})
	require.NoError(t, err)

	out, err = a.Run(ctx, s, Request{Action: prompt.DownloadDocs})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotNil(t, out.Download)
	assert.Equal(t, "documentation.md", out.Download.FileName)
	assert.Equal(t, "# Docs", out.Download.Content)
	assert.Len(t, model.calls, 1, "download never calls the model")
}

func TestRun_DefaultsDepthToDetailed(t *testing.T) {
	model := &mockModel{}
	a := New(model, StylePlain)

	_, err := a.Run(context.Background(), newSession(), Request{Action: prompt.GenerateDocs, Language: prompt.Python, Code: "x = 1"})

	require.NoError(t, err)
	assert.Equal(t, prompt.BuildPrompt(prompt.Python, prompt.Detailed, "x = 1"), model.calls[0].user)
}

func TestRun_InputErrors(t *testing.T) {
	a := New(&mockModel{}, StylePlain)
	s := newSession()

	_, err := a.Run(context.Background(), s, Request{Action: prompt.GenerateDocs, Code: "x"})
	assert.True(t, errors.Is(err, ErrLanguageRequired))

	_, err = a.Run(context.Background(), s, Request{Action: prompt.GenerateDocs, Language: "Cobol", Code: "x"})
	assert.True(t, errors.Is(err, prompt.ErrUnknownLanguage))

	_, err = a.Run(context.Background(), s, Request{Action: "shred", Language: prompt.Python, Code: "x"})
	assert.True(t, errors.Is(err, prompt.ErrUnknownAction))
}

func TestCleanedCodeFileName(t *testing.T) {
	assert.Equal(t, "cleaned_code.py", CleanedCodeFileName(prompt.Python))
	assert.Equal(t, "cleaned_code.r", CleanedCodeFileName(prompt.R))
	assert.Equal(t, "cleaned_code.ju", CleanedCodeFileName(prompt.Julia))
	assert.Equal(t, "cleaned_code.ja", CleanedCodeFileName(prompt.JavaScript))
}

func TestLabelsFor(t *testing.T) {
	plain := LabelsFor(StylePlain)
	emoji := LabelsFor(StyleEmoji)

	assert.Equal(t, plain, LabelsFor("unknown"))
	assert.NotEqual(t, plain.DocsHeading, emoji.DocsHeading)
	assert.Contains(t, emoji.DocsHeading, plain.DocsHeading)
	assert.Equal(t, "Paste your Julia code here:", plain.CodeInputFor("Julia"))
	assert.Equal(t, "Paste your source code here:", plain.CodeInputFor(""))

	model := &mockModel{replies: []llm.Result{reply("x")}}
	out, err := New(model, StyleEmoji).Run(context.Background(), newSession(), Request{Action: prompt.GenerateDeps, Language: prompt.Python, Code: "import os"})
	require.NoError(t, err)
	assert.Equal(t, "📦 Dependencies (Python)", out.Heading)
}
