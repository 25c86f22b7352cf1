package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/sales_dashboard/internal/adapters/seedfeed"
	portsrepo "github.com/SscSPs/sales_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/sales_dashboard/internal/core/services"
	"github.com/SscSPs/sales_dashboard/internal/handlers"
	"github.com/SscSPs/sales_dashboard/internal/middleware"
	"github.com/SscSPs/sales_dashboard/internal/platform/config"
	"github.com/SscSPs/sales_dashboard/internal/repositories/database/memory"
	"github.com/SscSPs/sales_dashboard/internal/repositories/database/mongodb"
	"github.com/SscSPs/sales_dashboard/internal/repositories/database/pgsql"
	"github.com/SscSPs/sales_dashboard/internal/utils"
	"github.com/SscSPs/sales_dashboard/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Sales Dashboard API
// @version 1.0
// @description Transaction listing and monthly sales reports over a seeded product dataset.

// @host localhost:5000
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := cfg.ValidateStore(); err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize store", slog.String("backend", cfg.StoreBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	seedClient := seedfeed.NewClient(cfg.SeedURL, cfg.SeedTimeout)
	defer seedClient.Close()

	serviceContainer := services.NewServiceContainer(cfg, repos, seedClient)

	if cfg.SeedOnStartup {
		count, err := serviceContainer.Seed.Initialize(ctx)
		if err != nil {
			logger.Error("Startup seed failed, serving existing data", slog.String("error", err.Error()))
		} else {
			logger.Info("Startup seed completed", slog.Int("count", count))
		}
	}

	posthogClient := utils.InitializePosthogClient(cfg.PostHogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("backend", cfg.StoreBackend))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openStore connects the configured backend and returns its repositories with a close function.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil

	case config.BackendMongo:
		client, err := database.NewMongoClient(ctx, cfg.MongoURI, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		collection := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
		repos, err := mongodb.NewRepositoryProvider(ctx, collection)
		if err != nil {
			database.CloseMongoClient(ctx, client)
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return repos, func() { database.CloseMongoClient(context.Background(), client) }, nil

	case config.BackendMemory:
		logger.Warn("Using in-memory store, data is lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil

	default:
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
