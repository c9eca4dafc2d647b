package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/api"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/config"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/handlers"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/inspection"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/live"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/session"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	slog.Info("starting Hammer & Tongues console")

	cfg := config.Load()

	apiClient := api.NewClient(cfg.APIBaseURL)
	sessions := session.NewCookieStore(cfg.SessionKey, cfg.CookieSecure)

	templates := handlers.NewTemplateCache()
	if err := templates.Load(cfg.TemplateDir); err != nil {
		slog.Error("failed to load templates", "dir", cfg.TemplateDir, "error", err)
		os.Exit(1)
	}

	hub := live.NewHub()
	feed := live.NewFeed(cfg.BroadcastURL, hub)
	// drop the upstream connection once the last browser stops watching
	hub.OnEmpty(feed.Unwatch)
	go hub.Run()

	handler := &handlers.Handler{
		API:          apiClient,
		Sessions:     sessions,
		Templates:    templates,
		Hub:          hub,
		Feed:         feed,
		Guard:        inspection.NewSubmitGuard(),
		MediaBaseURL: cfg.MediaBaseURL,
	}
	router := handler.SetupRoutes()

	protect := csrf.Protect(cfg.CSRFKey, csrf.Secure(cfg.CookieSecure), csrf.Path("/"))

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      protect(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("console listening", "addr", cfg.ServerAddr, "api", cfg.APIBaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}
