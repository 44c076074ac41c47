package main

import (
	"fmt"
	"net/http"
	"os"
	"sync"

	"nurse-roster/internal/config"
	"nurse-roster/internal/logging"
	"nurse-roster/internal/middleware"
	"nurse-roster/internal/models"
	"nurse-roster/internal/roster"
	"nurse-roster/internal/schedule"

	"go.uber.org/zap"
)

var (
	store     *roster.Store
	generator schedule.Generator
	logger    *zap.Logger

	// Add-form state rendered inline on the roster page. Cleared on a
	// successful add, preserved across the redirect on a rejected one.
	formMu   sync.RWMutex
	addError string
	addName  string

	// Generation state machine: idle, pending, settled. At most one
	// request is in flight; the trigger is ignored while pending.
	genMu      sync.RWMutex
	generating bool
	current    models.Schedule
	genError   string
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store = roster.NewStore()
	generator = schedule.NewGeminiClient(schedule.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Gemini.Timeout,
	}, logger)

	http.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("ui/static"))))
	http.HandleFunc("/", middleware.CSRF(handleRoster))
	http.HandleFunc("/api/nurses", middleware.CSRF(handleAddNurse))
	http.HandleFunc("/api/nurses/delete", middleware.CSRF(handleRemoveNurse))
	http.HandleFunc("/api/nurses/preferences", middleware.CSRF(handleSavePreferences))
	http.HandleFunc("/api/schedule/generate", middleware.CSRF(handleGenerate))
	http.HandleFunc("/active_search", handleActiveSearch)

	logger.Info("Nurse roster server started", zap.String("port", cfg.Server.Port))
	if err := http.ListenAndServe(":"+cfg.Server.Port, nil); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
