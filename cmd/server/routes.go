package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"

	"codeberg.org/doctor/server/api/rest/assistant"
	"codeberg.org/doctor/server/api/rest/health"
	"codeberg.org/doctor/server/api/web"
	_ "codeberg.org/doctor/server/docs" // registers the OpenAPI document
	"codeberg.org/doctor/server/internal/logger"
)

// sets up all routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	web.RegisterRoutes(router, web.NewHandlers(
		server.services.Assistant,
		server.sessionMgr,
		server.sessionStore,
	))

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)
		v1.GET("/openapi.json", OpenAPIHandler)

		assistant.RegisterRoutes(v1, server.services.Assistant, server.sessionMgr, server.services.LLM.Model())
	}
}

// serves the generated OpenAPI document
func OpenAPIHandler(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		logger.ErrorErr(err, "failed to read OpenAPI document")
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
