// Package markdown renders model-produced Markdown into HTML that is safe to
// embed in the page. Model output is untrusted, so every render is passed
// through a user-generated-content sanitizer.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() *Renderer {
	policy := bluemonday.UGCPolicy()
	// keep fenced-code language hints for client-side highlighting
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code")

	return &Renderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: policy,
	}
}

// converts Markdown source to sanitized HTML
func (r *Renderer) Render(source string) (template.HTML, error) {
	var buf bytes.Buffer

	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}

	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil //nolint:gosec // sanitized above
}
