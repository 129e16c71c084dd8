package assistant

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/doctor/server/internal/assistant"
	"codeberg.org/doctor/server/internal/prompt"
	"codeberg.org/doctor/server/internal/sessions"
)

// registers the assistant JSON routes
func RegisterRoutes(router *gin.RouterGroup, assist *assistant.Assistant, sessionMgr *sessions.Manager, modelName string) {
	router.GET("/options", OptionsHandler(assist.Labels()))

	group := router.Group("/assistant")
	{
		group.POST("/docs", GenerateHandler(assist, sessionMgr, modelName, prompt.GenerateDocs))
		group.POST("/dependencies", GenerateHandler(assist, sessionMgr, modelName, prompt.GenerateDeps))
		group.POST("/hardcoding", GenerateHandler(assist, sessionMgr, modelName, prompt.RemoveHardcoding))
		group.GET("/documentation", DocumentationHandler(assist, sessionMgr))
	}
}
