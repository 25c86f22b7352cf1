package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/sales_dashboard/internal/dashboard"
	"github.com/SscSPs/sales_dashboard/internal/middleware"
	"github.com/SscSPs/sales_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	client := dashboard.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	defer client.Close()

	renderer, err := dashboard.NewRenderer()
	if err != nil {
		logger.Error("Failed to load dashboard templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dashboard.RegisterRoutes(r, dashboard.NewLoader(client), renderer, cfg.DashboardMonth)

	logger.Info("Dashboard starting", slog.String("port", cfg.DashboardPort), slog.String("api", cfg.APIBaseURL))
	if err := r.Run(":" + cfg.DashboardPort); err != nil {
		logger.Error("Dashboard failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
