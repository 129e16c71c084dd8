package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"codeberg.org/doctor/server/internal/config"
	"codeberg.org/doctor/server/internal/logger"
	"codeberg.org/doctor/server/internal/sessions"
)

// @title Doctor API
// @version 1.0
// @description AI-powered code documentation assistant
// @description
// @description Features:
// @description - Documentation for Python, R, Julia and JavaScript at three depths
// @description - Dependency lists for pasted code
// @description - Removal of hardcoded values
// @description - Markdown download of the latest documentation

// @contact.name API Support
// @contact.url https://codeberg.org/doctor/server

// @license.name GPL-3.0
// @license.url https://www.gnu.org/licenses/gpl-3.0.html

type serveOptions struct {
	Port    string
	EnvFile string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "doctor-server",
		Short: "Serve the Doctor documentation assistant",
		Long: `Serve the Doctor web page and JSON API.

Configuration is read from the environment and an optional .env file.
OPENAI_API_KEY (or ANTHROPIC_API_KEY with LLM_PROVIDER=anthropic) is required.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Port, "port", "", "Port to listen on (default: $PORT or 8080)")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", "", "Path to a .env file (default: .env)")

	return cmd
}

func serve(ctx context.Context, opts *serveOptions) error {
	cfg, err := config.LoadEnvironmentVariables(opts.EnvFile)
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	logger.Setup(cfg.Environment)
	logger.Info("starting doctor server", "provider", cfg.Provider, "environment", cfg.Environment)

	if cfg.EphemeralSecret {
		logger.Warn("SESSION_SECRET not set, sessions will not survive a restart")
	}

	if opts.Port != "" {
		cfg.Port = opts.Port
	}

	srv, err := NewServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // model calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info("server listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}

		return nil
	})

	eg.Go(func() error {
		return srv.sessionMgr.Run(egctx, sessions.DefaultCleanupInterval)
	})

	eg.Go(func() error {
		<-egctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorErr(err, "server stopped with error")
		return err
	}

	logger.Info("server stopped")

	return nil
}
