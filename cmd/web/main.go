package main

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"ecommerce-dashboard/internal/config"
	"ecommerce-dashboard/internal/dataset"
	"ecommerce-dashboard/internal/handlers"
	"ecommerce-dashboard/internal/middleware"
	"ecommerce-dashboard/internal/observability"
	"ecommerce-dashboard/internal/server"
	"ecommerce-dashboard/internal/services"
	"ecommerce-dashboard/internal/ui/templates"
)

const (
	renderTimeout = 10 * time.Second
	noCache       = "no-cache"
)

// newDashboardHandler regenerates the report for every page view.
func newDashboardHandler(reports *services.Reports, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
		defer cancel()

		w.Header().Set("Cache-Control", noCache)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		rep, err := reports.Generate(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "generate report", "error", err)
			status := http.StatusInternalServerError
			if errors.Is(err, services.ErrClosed) {
				status = http.StatusServiceUnavailable
			}
			w.WriteHeader(status)
			if err := templates.ErrorPage("Report data could not be loaded.").Render(ctx, w); err != nil {
				logger.ErrorContext(ctx, "render error page", "error", err)
			}
			return
		}

		figures := handlers.FiguresFor(rep)
		page := templates.Page{
			Status:       handlers.StatusFor(rep),
			RevenueChart: figures.Revenue,
			LateChart:    figures.LateOrders,
		}
		var buf bytes.Buffer
		if err := templates.Dashboard(page).Render(ctx, &buf); err != nil {
			logger.ErrorContext(ctx, "render dashboard", "error", err)
			http.Error(w, "render error", http.StatusInternalServerError)
			return
		}
		buf.WriteTo(w)
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to read .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", "1.0.0",
		"config", cfg,
	)

	reports := services.NewReports(dataset.PathsIn(cfg.Data.Dir), logger)
	reports.SetTimeout(cfg.Data.LoadTimeout)

	// Fail fast when the source files are unusable; every page view
	// regenerates the report afterwards.
	start := time.Now()
	if _, err := reports.Generate(context.Background()); err != nil {
		logger.Error("failed to load CSV data", "error", err, "data_dir", cfg.Data.Dir)
		os.Exit(1)
	}
	logger.Info("CSV data verified", "duration", time.Since(start))

	templateHandlers := &server.TemplateHandlers{
		Dashboard: newDashboardHandler(reports, logger),
	}

	srv := server.NewServer(reports, logger, templateHandlers)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(logger),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.RateLimit(rateLimiter, logger),
	)

	handler := middlewareChain(srv)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg.Server)

	// Cancel in-flight generations before the server drains.
	gracefulServer.OnShutdown(func(ctx context.Context) error {
		reports.Close()
		logger.InfoContext(ctx, "report service stopped", "stats", reports.Stats())
		return nil
	})

	logger.Info("starting graceful server")
	if err := gracefulServer.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
