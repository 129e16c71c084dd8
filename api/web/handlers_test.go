package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/doctor/server/internal/assistant"
	"codeberg.org/doctor/server/internal/llm"
	docsessions "codeberg.org/doctor/server/internal/sessions"
)

type mockCompleter struct {
	reply string
	err   error
	calls int
}

func (m *mockCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	m.calls++
	return m.reply, m.err
}

func (m *mockCompleter) Model() string { return "mock-model" }

type testPage struct {
	router  *gin.Engine
	cookies []*http.Cookie
}

func newTestPage(completer *mockCompleter, style assistant.Style) *testPage {
	gin.SetMode(gin.TestMode)

	assist := assistant.New(llm.NewWithCompleter(llm.ProviderOpenAI, completer), style)
	store := NewCookieStore([]byte("test-secret-key-32-bytes-long!!"), false)

	router := gin.New()
	RegisterRoutes(router, NewHandlers(assist, docsessions.NewManager(docsessions.DefaultTTL), store))

	return &testPage{router: router}
}

func (p *testPage) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range p.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	p.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		p.cookies = set
	}

	return w
}

func (p *testPage) submit(values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return p.do(req)
}

func TestPage(t *testing.T) {
	page := newTestPage(&mockCompleter{}, assistant.StylePlain)

	w := page.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Generate Code Documentation")
	assert.Contains(t, body, "Choose a language")
	assert.Contains(t, body, `<option value="Detailed" selected>`)
	assert.Contains(t, body, "AI can make mistakes")
	assert.NotEmpty(t, page.cookies, "session cookie should be set")
}

func TestSubmitGenerateDocs(t *testing.T) {
	completer := &mockCompleter{reply: "# Add\n\nAdds **two** numbers.\n\n<script>alert(1)</script>"}
	page := newTestPage(completer, assistant.StylePlain)

	w := page.submit(url.Values{
		"action":   {"docs"},
		"language": {"Python"},
		"depth":    {"Simple"},
		"code":     {"def add(a,b): return a+b"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Generated Documentation")
	assert.Contains(t, body, "<h1>Add</h1>")
	assert.Contains(t, body, "<strong>two</strong>")
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, `href="/download/documentation.md"`)
	assert.Contains(t, body, "Paste your Python code here:")

	t.Run("download route serves the stored documentation", func(t *testing.T) {
		w := page.do(httptest.NewRequest(http.MethodGet, "/download/documentation.md", nil))
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, "text/markdown; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="documentation.md"`)
		assert.Equal(t, completer.reply, w.Body.String())
	})

	t.Run("download button serves the same file", func(t *testing.T) {
		w := page.submit(url.Values{"action": {"download"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, completer.reply, w.Body.String())
	})
}

func TestSubmitDownloadWithoutDocumentation(t *testing.T) {
	page := newTestPage(&mockCompleter{}, assistant.StylePlain)

	w := page.submit(url.Values{"action": {"download"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `id="result"`)

	w = page.do(httptest.NewRequest(http.MethodGet, "/download/documentation.md", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestSubmitCodeResults(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		reply    string
		heading  string
		fileName string
		codeLang string
	}{
		{
			name:     "dependencies",
			action:   "dependencies",
			reply:    "numpy\npandas",
			heading:  "Dependencies (Python)",
			fileName: "dependencies.txt",
			codeLang: "language-bash",
		},
		{
			name:     "hardcoding",
			action:   "hardcoding",
			reply:    "import os\nKEY = os.getenv(KEY_NAME)",
			heading:  "Cleaned Code (No Hardcoding)",
			fileName: "cleaned_code.py",
			codeLang: "language-python",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := newTestPage(&mockCompleter{reply: tt.reply}, assistant.StylePlain)

			w := page.submit(url.Values{
				"action":   {tt.action},
				"language": {"Python"},
				"code":     {"import numpy"},
			})
			require.Equal(t, http.StatusOK, w.Code)

			body := w.Body.String()
			assert.Contains(t, body, tt.heading)
			assert.Contains(t, body, tt.codeLang)
			assert.Contains(t, body, `download="`+tt.fileName+`"`)
			assert.Contains(t, body, `href="data:text/plain;charset=utf-8;base64,`)
		})
	}
}

func TestSubmitNotices(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		notice string
	}{
		{
			name:   "missing language",
			values: url.Values{"action": {"docs"}, "code": {"x <- 1"}},
			notice: "Select a language before generating.",
		},
		{
			name:   "unknown depth",
			values: url.Values{"action": {"docs"}, "language": {"R"}, "depth": {"Novice"}, "code": {"x <- 1"}},
			notice: "Choose a documentation depth.",
		},
		{
			name:   "unknown action",
			values: url.Values{"action": {"deploy"}, "language": {"R"}, "code": {"x <- 1"}},
			notice: "Unknown action.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &mockCompleter{reply: "unused"}
			page := newTestPage(completer, assistant.StylePlain)

			w := page.submit(tt.values)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.notice)
			assert.Equal(t, 0, completer.calls)
		})
	}
}

func TestSubmitBlankCode(t *testing.T) {
	completer := &mockCompleter{reply: "unused"}
	page := newTestPage(completer, assistant.StylePlain)

	w := page.submit(url.Values{"action": {"docs"}, "language": {"Julia"}, "code": {"  \n "}})
	require.Equal(t, http.StatusOK, w.Code)

	assert.NotContains(t, w.Body.String(), `id="result"`)
	assert.Equal(t, 0, completer.calls)
}

func TestSubmitModelFailure(t *testing.T) {
	page := newTestPage(&mockCompleter{err: errors.New("connection refused")}, assistant.StylePlain)

	w := page.submit(url.Values{"action": {"docs"}, "language": {"JavaScript"}, "code": {"let x = 1"}})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Error: connection refused")
	assert.NotContains(t, body, `href="/download/documentation.md"`)

	w = page.do(httptest.NewRequest(http.MethodGet, "/download/documentation.md", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestDarkModeAndEmojiStyle(t *testing.T) {
	page := newTestPage(&mockCompleter{reply: "ok"}, assistant.StyleEmoji)

	w := page.submit(url.Values{"action": {"download"}, "dark_mode": {"true"}})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `<body class="dark">`)
	assert.Contains(t, body, "🩺 Generate Code Documentation")
}
