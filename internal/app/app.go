package app

import (
	"context"
	"net/http"
	"time"

	"github.com/HarshXTrisha/vericheck-pro/internal/config"
	"github.com/HarshXTrisha/vericheck-pro/internal/delivery/httpd"
	custommw "github.com/HarshXTrisha/vericheck-pro/internal/middleware"
	"github.com/HarshXTrisha/vericheck-pro/internal/repository"
	"github.com/HarshXTrisha/vericheck-pro/internal/service"
	"github.com/HarshXTrisha/vericheck-pro/internal/service/integration"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type App struct {
	server *http.Server
	logger zerolog.Logger
	config *config.Config
}

func New(cfg *config.Config, log zerolog.Logger) *App {
	gateway := integration.NewGeminiClient(
		cfg.Gateway.BaseURL,
		cfg.Gateway.Model,
		cfg.Gateway.APIKey,
		cfg.Gateway.Timeout,
		cfg.Gateway.RetryCount,
		cfg.Gateway.RetryDelay,
		log,
	)

	reportRepo := repository.NewReportRepository(cfg.Analysis.HistoryLimit, log)

	analysisService := service.NewAnalysisService(
		gateway,
		reportRepo,
		log,
		service.AnalysisConfig{
			MaxTextChars:        cfg.Analysis.MaxTextChars,
			PlagiarismCharLimit: cfg.Analysis.PlagiarismCharLimit,
			DetectionCharLimit:  cfg.Analysis.DetectionCharLimit,
		},
	)

	reportService := service.NewReportService(reportRepo, log)

	rateLimiter := custommw.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, log)

	handler := httpd.NewHandler(analysisService, reportService, gateway, log)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(custommw.RequestLogger(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(90 * time.Second))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router, rateLimiter.Handler)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server: server,
		logger: log,
		config: cfg,
	}
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting analysis server on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down analysis server...")

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error().Err(err).Msg("Failed to shutdown HTTP server")
		return err
	}

	a.logger.Info().Msg("Analysis server stopped")
	return nil
}
