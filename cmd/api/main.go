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

	"github.com/go-event-checkin/internal/config"
	jwtinfra "github.com/go-event-checkin/internal/infrastructure/jwt"
	"github.com/go-event-checkin/internal/infrastructure/postgres"
	"github.com/go-event-checkin/internal/infrastructure/qr"
	s3infra "github.com/go-event-checkin/internal/infrastructure/s3"
	transporthttp "github.com/go-event-checkin/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	// Create tables and indexes if they don't exist.
	if err := postgres.Bootstrap(ctx, pool); err != nil {
		log.Fatalf("database bootstrap failed: %v", err)
	}

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Fatalf("JWT provider not available: %v", err)
	}

	// S3 store for QR badges and archived import spreadsheets
	// (optional — the API runs without it, archiving is skipped).
	var s3Store *s3infra.Store
	if cfg.S3BucketName != "" {
		s3Store = s3infra.NewStore(s3infra.NewClient(cfg), cfg.S3BucketName)
	} else {
		log.Println("WARN: S3 bucket not configured, artifact archiving disabled")
	}

	deps := &transporthttp.Deps{
		RegistrantRepo:   postgres.NewRegistrantRepo(pool),
		NotificationRepo: postgres.NewNotificationRepo(pool),
		TokenProvider:    jwtProvider,
		QRGenerator:      qr.NewGenerator(cfg.QRBaseURL),
		ObjectStore:      s3Store,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
