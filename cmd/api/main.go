package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"arsipku/internal/auth"
	"arsipku/internal/config"
	"arsipku/internal/feed"
	"arsipku/internal/filestore"
	"arsipku/internal/http"
	"arsipku/internal/service"
	"arsipku/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	archiveRepo := storage.NewArchiveRepo(db)
	classificationRepo := storage.NewClassificationRepo(db)

	// Initialize file storage for attachments
	files, err := filestore.New(cfg.StorageDir)
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}
	slog.Info("File storage ready", "dir", cfg.StorageDir)

	// Change feed hub for server-sent events
	hub := feed.NewHub()

	// Session manager for the single admin account
	sessions := auth.NewManager(cfg.AdminEmail, cfg.AdminPassword, cfg.ServiceKey)

	archiveService := service.NewArchiveService(archiveRepo, classificationRepo, files, hub)
	classificationService := service.NewClassificationService(classificationRepo, hub)

	// Create router with dependencies
	deps := &http.Deps{
		Archives:        archiveService,
		Classifications: classificationService,
		Sessions:        sessions,
		Hub:             hub,
		Files:           files,
		DB:              db,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
