package main

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"codeberg.org/doctor/server/internal/assistant"
	"codeberg.org/doctor/server/internal/config"
	"codeberg.org/doctor/server/internal/llm"
	docsessions "codeberg.org/doctor/server/internal/sessions"
)

// holds all dependencies and state for the server
type Server struct {
	config       *config.Config
	sessionMgr   *docsessions.Manager
	sessionStore *sessions.CookieStore
	services     *Services
	router       *gin.Engine
}

// holds the model client and the assistant built on it
type Services struct {
	LLM       *llm.Client
	Assistant *assistant.Assistant
}
