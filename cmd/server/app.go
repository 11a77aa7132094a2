package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emberdate/onboarding-api/internal/analysis"
	"github.com/emberdate/onboarding-api/internal/config"
	"github.com/emberdate/onboarding-api/internal/platform/gemini"
	"github.com/emberdate/onboarding-api/internal/platform/logger"
	"github.com/emberdate/onboarding-api/internal/platform/metrics"
)

// application holds the long-lived dependencies of the server process.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	analyzer *analysis.Analyzer
	metrics  *metrics.Recorder
}

// newApplication loads configuration and wires up application components:
// logger, Gemini backend, analyzer, and metrics recorder.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)

	backend, err := gemini.NewBackend(ctx, appLogger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini backend: %w", err)
	}

	analyzer, err := analysis.NewAnalyzer(backend, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}

	return &application{
		config:   cfg,
		logger:   appLogger,
		analyzer: analyzer,
		metrics:  metrics.NewRecorder(),
	}, nil
}
