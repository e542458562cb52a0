package app

import (
	"net/http"
	"os"
	"time"

	"quote-genius/go_backend/internal/app/config"
	apphttp "quote-genius/go_backend/internal/app/http"
	"quote-genius/go_backend/internal/app/session"
	"quote-genius/go_backend/internal/domain/assist"
	"quote-genius/go_backend/internal/domain/assist/gemini"
	"quote-genius/go_backend/internal/domain/assist/mock"
	pdfgen "quote-genius/go_backend/internal/domain/quote/pdf/gofpdf"
	"quote-genius/go_backend/internal/logging"
)

func Run() {
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.Env, cfg.LogLevel)

	var gen assist.Generator
	switch cfg.AIProvider {
	case "mock":
		gen = mock.New()
	default:
		gen = gemini.New(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AIRequestTimeout)
		if cfg.GeminiAPIKey == "" {
			logger.Warn("GEMINI_API_KEY is not set, assist operations will degrade")
		}
	}

	store := session.NewStore()
	assistSvc := assist.NewService(gen, logger)
	router := apphttp.NewRouter(cfg, logger, store, assistSvc, pdfgen.New())

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("listening", "addr", cfg.HTTPAddr, "ai_provider", cfg.AIProvider)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
