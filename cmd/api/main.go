package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	app "github.com/rafaelmp/employee-import/internal/application/employee"
	"github.com/rafaelmp/employee-import/internal/bootstrap"
	infrafile "github.com/rafaelmp/employee-import/internal/infrastructure/file"
	"github.com/rafaelmp/employee-import/internal/infrastructure/notify"
	"github.com/rafaelmp/employee-import/internal/infrastructure/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(newLogger())

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("failed to create pgx pool: %v", err)
	}
	defer pool.Close()

	uploads := infrafile.NewLocalSource(getEnv("IMPORT_BASE_DIR", "."))
	server := bootstrap.NewHTTPServer(db, pool, uploads)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	importJobRepo := repository.NewImportJobRepository(db)
	employeeImporter := repository.NewEmployeeImportRepository(pool)
	managerRepo := repository.NewManagerRepository(db)
	mailer := notify.NewMailer(notify.Config{
		Host: os.Getenv("MAIL_HOST"),
		Port: getEnv("MAIL_PORT", "587"),
		User: os.Getenv("MAIL_USERNAME"),
		Pass: os.Getenv("MAIL_PASSWORD"),
		From: os.Getenv("MAIL_FROM_ADDRESS"),
	}, managerRepo)

	batch := app.NewBatchImport(uploads, employeeImporter)
	worker := app.NewImportWorker(importJobRepo, batch, mailer, app.ImportWorkerConfig{
		Workers:       parseWorkerCount(),
		LeaseDuration: time.Duration(parseIntEnv("IMPORT_JOB_LEASE_SECONDS", 60)) * time.Second,
		JobTimeout:    time.Duration(parseIntEnv("IMPORT_JOB_TIMEOUT_SECONDS", 600)) * time.Second,
	})
	worker.Start(workerCtx)

	go func() {
		if err := server.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
}

func newLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if getEnv("LOG_FORMAT", "json") == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func parseWorkerCount() int {
	workers := parseIntEnv("IMPORT_WORKERS", 4)
	if workers <= 0 {
		return 4
	}
	if workers > 10 {
		return 10
	}
	return workers
}

func parseIntEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
