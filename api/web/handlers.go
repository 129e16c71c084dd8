package web

import (
	"encoding/base64"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"codeberg.org/doctor/server/internal/assistant"
	apierrors "codeberg.org/doctor/server/internal/errors"
	"codeberg.org/doctor/server/internal/logger"
	"codeberg.org/doctor/server/internal/prompt"
	docsessions "codeberg.org/doctor/server/internal/sessions"
)

// renders the empty page
func (h *Handlers) Page(c *gin.Context) {
	if _, err := h.session(c); err != nil {
		apierrors.InternalError(c, "failed to start session", err)
		return
	}

	h.render(c, pageForm{Depth: string(prompt.DefaultDepth)}, "", nil)
}

// handles every action button on the page
func (h *Handlers) Submit(c *gin.Context) {
	var form pageForm
	if err := c.ShouldBind(&form); err != nil {
		apierrors.BadRequest(c, "invalid form", err)
		return
	}

	session, err := h.session(c)
	if err != nil {
		apierrors.InternalError(c, "failed to start session", err)
		return
	}

	action, err := prompt.ParseAction(form.Action)
	if err != nil {
		h.render(c, form, "Unknown action.", nil)
		return
	}

	depth, err := prompt.ParseDepth(form.Depth)
	if err != nil {
		h.render(c, form, "Choose a documentation depth.", nil)
		return
	}

	out, err := h.assistant.Run(c.Request.Context(), session, assistant.Request{
		Action:   action,
		Language: prompt.Language(form.Language),
		Depth:    depth,
		Code:     form.Code,
	})

	switch {
	case errors.Is(err, assistant.ErrLanguageRequired):
		h.render(c, form, "Select a language before generating.", nil)
		return
	case errors.Is(err, prompt.ErrUnknownLanguage):
		h.render(c, form, "Choose one of the listed languages.", nil)
		return
	case err != nil:
		apierrors.InternalError(c, "failed to run action", err)
		return
	}

	if action == prompt.DownloadDocs {
		if out == nil {
			h.render(c, form, "", nil)
			return
		}

		attach(c, out.Download)
		return
	}

	if out != nil && out.Failed {
		logger.Warn("model call failed",
			"action", action,
			"session_id", session.ID,
			"error", out.Err,
		)
	}

	h.render(c, form, "", h.view(out))
}

// serves the stored documentation, or returns home when there is none
func (h *Handlers) DownloadDocumentation(c *gin.Context) {
	session, err := h.session(c)
	if err != nil {
		apierrors.InternalError(c, "failed to start session", err)
		return
	}

	out, err := h.assistant.Run(c.Request.Context(), session, assistant.Request{Action: prompt.DownloadDocs})
	if err != nil || out == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	attach(c, out.Download)
}

// loads the session named by the cookie, creating one when it is missing or
// expired, and writes the cookie back before any body is sent
func (h *Handlers) session(c *gin.Context) (*docsessions.Session, error) {
	// a cookie that fails to decode still yields a fresh gorilla session
	cookie, _ := h.store.Get(c.Request, cookieName)

	id, _ := cookie.Values[sessionIDKey].(string)
	session, created := h.sessions.Resolve(id)

	if created {
		cookie.Values[sessionIDKey] = session.ID
		if err := cookie.Save(c.Request, c.Writer); err != nil {
			return nil, err
		}
	}

	return session, nil
}

func (h *Handlers) render(c *gin.Context, form pageForm, notice string, result *resultView) {
	labels := h.assistant.Labels()

	c.HTML(http.StatusOK, "index.html", pageData{
		Labels:    labels,
		CodeLabel: labels.CodeInputFor(form.Language),
		Languages: prompt.Languages(),
		Depths:    prompt.Depths(),
		Form:      form,
		Notice:    notice,
		Result:    result,
	})
}

func (h *Handlers) view(out *assistant.Output) *resultView {
	if out == nil {
		return nil
	}

	labels := h.assistant.Labels()

	v := &resultView{
		Heading:      out.Heading,
		Notice:       out.Notice,
		CodeLanguage: out.CodeLanguage,
		Failed:       out.Failed,
	}

	switch out.Format {
	case assistant.FormatMarkdown:
		html, err := h.renderer.Render(out.Body)
		if err != nil {
			logger.ErrorErr(err, "failed to render documentation")
			v.Code = out.Body
		} else {
			v.HTML = html
		}

		if !out.Failed {
			v.DownloadLabel = labels.DownloadMarkdown
			v.DownloadName = "documentation.md"
			v.DownloadHref = "/download/documentation.md"
		}

	case assistant.FormatCode:
		v.Code = out.Body

		if out.Download != nil {
			v.DownloadLabel = labels.DownloadCleaned
			if out.Action == prompt.GenerateDeps {
				v.DownloadLabel = labels.DownloadDeps
			}

			v.DownloadName = out.Download.FileName
			v.DownloadHref = dataURI(out.Download)
		}
	}

	return v
}

// returns the download as an inline data URI for an anchor href
func dataURI(d *assistant.Download) template.URL {
	mediaType := strings.ReplaceAll(d.ContentType, " ", "")
	encoded := base64.StdEncoding.EncodeToString([]byte(d.Content))

	return template.URL("data:" + mediaType + ";base64," + encoded) //nolint:gosec // base64 payload
}

func attach(c *gin.Context, d *assistant.Download) {
	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(d.FileName))
	c.Data(http.StatusOK, d.ContentType, []byte(d.Content))
}
