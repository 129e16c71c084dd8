package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"codeberg.org/doctor/server/internal/assistant"
	"codeberg.org/doctor/server/internal/markdown"
	docsessions "codeberg.org/doctor/server/internal/sessions"
)

//go:embed templates/*.html
var templatesFS embed.FS

func NewHandlers(assist *assistant.Assistant, sessionMgr *docsessions.Manager, store sessions.Store) *Handlers {
	return &Handlers{
		assistant: assist,
		sessions:  sessionMgr,
		store:     store,
		renderer:  markdown.NewRenderer(),
	}
}

// registers the page routes and loads the page template into the engine
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	tmpl := template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)

	router.GET("/", h.Page)
	router.POST("/", h.Submit)
	router.GET("/download/documentation.md", h.DownloadDocumentation)
}
