package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"codeberg.org/doctor/server/api/web"
	"codeberg.org/doctor/server/internal/config"
	"codeberg.org/doctor/server/internal/logger"
	"codeberg.org/doctor/server/internal/sessions"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	logger.Info("model client ready",
		"provider", services.LLM.Provider(),
		"model", services.LLM.Model(),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	if !cfg.IsProduction() {
		router.Use(gin.Logger())
	}

	server := &Server{
		config:       cfg,
		sessionMgr:   sessions.NewManager(sessions.DefaultTTL),
		sessionStore: web.NewCookieStore(cfg.SessionSecret, cfg.IsProduction()),
		services:     services,
		router:       router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
