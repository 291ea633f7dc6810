package api

import (
	"log/slog"
	"mortgage-engine/internal/api/handler"
	mw "mortgage-engine/internal/api/middleware"
	"mortgage-engine/internal/config"
	"mortgage-engine/internal/domain/mortgage"
	"net/http"
	"time"

	_ "mortgage-engine/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func SetupRouter(calcService mortgage.CalculatorService, cfg *config.Config, logger *slog.Logger, rateLimiter mw.RateLimiter) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, logger, rateLimiter)
	setupMetricsEndpoint(router, cfg, logger)
	setupWebRoutes(router, calcService, logger)
	setupCalculationRoutes(router, calcService, cfg, logger)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(router *chi.Mux, logger *slog.Logger, rateLimiter mw.RateLimiter) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(rateLimiter.Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupWebRoutes(router *chi.Mux, calcService mortgage.CalculatorService, logger *slog.Logger) {
	webHandler := handler.NewWebHandler(calcService, logger)
	exportHandler := handler.NewExportHandler(calcService, logger)

	router.Get("/", webHandler.Index)
	router.Post("/calculate", webHandler.Calculate)
	router.Post("/export/xlsx", exportHandler.Xlsx)
	router.Get("/charts", exportHandler.Charts)
}

func setupCalculationRoutes(router *chi.Mux, calcService mortgage.CalculatorService, cfg *config.Config, logger *slog.Logger) {
	calculationHandler := handler.NewCalculationHandler(calcService, logger)
	authHandler := handler.NewAuthHandler(*cfg, logger)
	logger.Info("Route Config")
	router.Route("/auth", func(r chi.Router) {
		r.Post("/token", authHandler.GenerateBearerToken)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Post("/calculations", calculationHandler.Calculate)
	})
}
