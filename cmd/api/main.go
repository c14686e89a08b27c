package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/zingozingo/reading-tracker/internal/config"
	apphttp "github.com/zingozingo/reading-tracker/internal/http"
	"github.com/zingozingo/reading-tracker/internal/httpx"
	"github.com/zingozingo/reading-tracker/internal/store"
	"github.com/zingozingo/reading-tracker/internal/usecase"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	dbPool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatalf("ping database: %v", err)
	}
	if err := store.EnsureSchema(ctx, dbPool); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}
	log.Println("database connection established")

	bookRepo := store.NewBookPG(dbPool)
	sessionRepo := store.NewSessionPG(dbPool)
	trackerRepo := store.NewTrackerPG(dbPool)

	bookService := usecase.NewBookService(bookRepo)
	sessionService := usecase.NewSessionService(sessionRepo)
	trackerService := usecase.NewTrackerService(trackerRepo)

	bookHandler := apphttp.NewBookHandler(bookService)
	sessionHandler := apphttp.NewSessionHandler(sessionService, trackerService, bookService)
	systemHandler := apphttp.NewSystemHandler(dbPool)

	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", systemHandler.Welcome)
	router.HandleFunc("GET /health", systemHandler.Health)
	router.HandleFunc("GET /debug", systemHandler.Debug)

	router.HandleFunc("GET /api/v1/books", bookHandler.List)
	router.HandleFunc("POST /api/v1/books", bookHandler.Create)
	router.HandleFunc("GET /api/v1/books/{id}", bookHandler.Get)
	router.HandleFunc("PUT /api/v1/books/{id}", bookHandler.Update)
	router.HandleFunc("DELETE /api/v1/books/{id}", bookHandler.Delete)

	router.HandleFunc("POST /api/v1/books/{id}/sessions", sessionHandler.Log)
	router.HandleFunc("GET /api/v1/books/{id}/sessions", sessionHandler.ListForBook)
	router.HandleFunc("GET /api/v1/sessions", sessionHandler.List)
	router.HandleFunc("GET /api/v1/sessions/{id}", sessionHandler.Get)
	router.HandleFunc("PUT /api/v1/sessions/{id}/end", sessionHandler.End)
	router.HandleFunc("PUT /api/v1/sessions/{id}", sessionHandler.Update)

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	var handler http.Handler = router
	handler = httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes)(handler)
	handler = rateLimit.Middleware(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.CORSMiddleware(cfg.CORSOrigins)(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	case sig := <-stop:
		log.Printf("received %s, shutting down", sig)
		shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ShutdownTimeout)*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
}
