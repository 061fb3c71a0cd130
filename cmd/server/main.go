package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frenzyhq/frenzy-backend/internal/apperror"
	"github.com/frenzyhq/frenzy-backend/internal/config"
	"github.com/frenzyhq/frenzy-backend/internal/database"
	"github.com/frenzyhq/frenzy-backend/internal/handler"
	"github.com/frenzyhq/frenzy-backend/internal/middleware"
	"github.com/frenzyhq/frenzy-backend/internal/repository"
	"github.com/frenzyhq/frenzy-backend/internal/service"
	"github.com/frenzyhq/frenzy-backend/internal/token"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize database
	db, err := database.New(context.Background(), cfg.DbURL)
	if err != nil {
		log.Fatal(fmt.Sprintf("Failed to connect to database: %v", err))
	}
	defer db.Close()

	// A missing signing secret is fatal at startup, never bypassed
	issuer, err := token.New(cfg.JwtSecret, token.DefaultTTL)
	if err != nil {
		log.Fatal(fmt.Sprintf("Failed to configure token signing: %v", err))
	}

	// Initialize repositories, services, and handlers
	responder := apperror.NewResponder(cfg.Dev())
	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, issuer)
	authHandler := handler.NewAuthHandler(authService, responder)
	healthHandler := handler.NewHealthHandler(time.Now())

	// Create router with middleware
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RateLimit(cfg.RateLimit, responder))

	// Health check endpoints
	r.Get("/health", healthHandler.Check)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(issuer, responder))
		r.Get("/health/protected", healthHandler.Protected)
	})

	// Auth routes with strict rate limiting
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.AuthLimit, responder))
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
	})

	// Create server with timeouts
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(fmt.Sprintf("Server failed to start: %v", err))
		}
	}()

	// Graceful shutdown: drain in-flight requests, force exit after the grace
	// period if the drain stalls
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server is shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	log.Println("Server exited properly")
}
