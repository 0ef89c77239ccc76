package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/community-portal/internal/api"
	"github.com/dom/community-portal/internal/config"
	"github.com/dom/community-portal/internal/repository/postgres"
	"github.com/dom/community-portal/internal/service"
	"github.com/dom/community-portal/internal/session"
	"github.com/dom/community-portal/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories and services
	repos := postgres.NewRepositories(db)
	services := service.NewServices(repos)

	// Session signing
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)

	// Templates
	render, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}

	// Initialize router
	router := api.NewRouter(services, sessions, render)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
