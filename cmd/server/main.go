package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"talentscout/internal/api/routes"
	"talentscout/internal/config"
	"talentscout/internal/evaluator"
	"talentscout/internal/exporter"
	"talentscout/internal/interview"
	"talentscout/internal/llm"
	"talentscout/internal/logging"
	"talentscout/internal/questions"
	"talentscout/pkg/utils"
)

func main() {
	configPath := utils.GetStringOrDefault(os.Getenv("CONFIG_PATH"), "configs/config.yaml")

	// Load configuration. A missing API credential or dataset path aborts
	// here, before any session can start.
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Adapters); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting TalentScout Screening Assistant")

	// Load the static HR question dataset. Startup fails hard if it cannot
	// be loaded.
	store, err := questions.LoadStore(cfg.Questions.DatasetPath)
	if err != nil {
		logger.Fatal("Failed to load HR question dataset", map[string]interface{}{"error": err.Error()})
	}
	logger.Info("HR question dataset loaded", map[string]interface{}{
		"path":    cfg.Questions.DatasetPath,
		"entries": store.Len(),
	})

	// Initialize LLM manager
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logger.Fatal("Failed to start LLM manager", map[string]interface{}{"error": err.Error()})
	}

	// Wire the screening pipeline
	generator := questions.NewGenerator(llmManager, cfg.LLM.Temperature, cfg.LLM.MaxTokens, cfg.Questions.MaxPerTechnology)
	candidateEvaluator := evaluator.New(llmManager, cfg.LLM.Temperature, cfg.LLM.MaxTokens)
	reportExporter := exporter.New(cfg.Export.OutputDir)

	controller := interview.NewController(
		store,
		generator,
		candidateEvaluator,
		reportExporter,
		cfg.Questions.HRQuestionLimit,
		cfg.Questions.MaxTechnologies,
	)

	sessionManager := interview.NewManager(controller, cfg.Sessions.IdleTTL, cfg.Sessions.CleanupInterval)
	sessionManager.Start()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, sessionManager, llmManager)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping session manager...")
		sessionManager.Stop()

		logger.Info("Stopping LLM manager...")
		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping LLM manager", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}
