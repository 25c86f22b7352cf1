package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Store backends selectable through STORE_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendMemory   = "memory"
)

const (
	defaultSeedURL             = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"
	defaultSeedTimeout         = 30 * time.Second
	defaultAPITimeout          = 10 * time.Second
	defaultInitializeRateLimit = "5-M"
)

// Config holds application configuration.
type Config struct {
	Port          string `validate:"required,numeric"`
	IsProduction  bool
	EnableDBCheck bool

	StoreBackend    string `validate:"oneof=postgres mongo memory"`
	DatabaseURL     string `validate:"required_if=StoreBackend postgres"`
	MongoURI        string `validate:"required_if=StoreBackend mongo"`
	MongoDatabase   string `validate:"required_if=StoreBackend mongo"`
	MongoCollection string `validate:"required_if=StoreBackend mongo"`

	SeedURL       string `validate:"required,url"`
	SeedTimeout   time.Duration
	SeedOnStartup bool
	PriceBuckets  []domain.PriceBucket `validate:"min=1"`

	CORSAllowedOrigins  []string
	InitializeRateLimit limiter.Rate
	PostHogAPIKey       string

	// Dashboard web server
	APIBaseURL     string `validate:"required,url"`
	APITimeout     time.Duration
	DashboardPort  string `validate:"required,numeric"`
	DashboardMonth string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORE_BACKEND", BackendPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "mern-challenge")
	v.SetDefault("MONGO_COLLECTION", "transactions")
	v.SetDefault("SEED_URL", defaultSeedURL)
	v.SetDefault("SEED_TIMEOUT", defaultSeedTimeout.String())
	v.SetDefault("SEED_ON_STARTUP", false)
	v.SetDefault("PRICE_BUCKETS", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("INITIALIZE_RATE_LIMIT", defaultInitializeRateLimit)
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("API_BASE_URL", "http://localhost:5000/api")
	v.SetDefault("API_TIMEOUT", defaultAPITimeout.String())
	v.SetDefault("DASHBOARD_PORT", "3000")
	v.SetDefault("DASHBOARD_MONTH", "March")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		StoreBackend:    strings.ToLower(strings.TrimSpace(v.GetString("STORE_BACKEND"))),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		MongoURI:        v.GetString("MONGO_URI"),
		MongoDatabase:   v.GetString("MONGO_DATABASE"),
		MongoCollection: v.GetString("MONGO_COLLECTION"),
		SeedURL:         v.GetString("SEED_URL"),
		SeedOnStartup:   v.GetBool("SEED_ON_STARTUP"),
		PostHogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		APIBaseURL:      strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		DashboardPort:   v.GetString("DASHBOARD_PORT"),
		DashboardMonth:  v.GetString("DASHBOARD_MONTH"),
	}

	cfg.SeedTimeout = durationOrDefault(v, "SEED_TIMEOUT", defaultSeedTimeout)
	cfg.APITimeout = durationOrDefault(v, "API_TIMEOUT", defaultAPITimeout)

	cfg.PriceBuckets = domain.DefaultPriceBuckets()
	if raw := strings.TrimSpace(v.GetString("PRICE_BUCKETS")); raw != "" {
		buckets, err := domain.ParsePriceBuckets(raw)
		if err != nil {
			slog.Warn("Invalid value for PRICE_BUCKETS, using default buckets",
				slog.String("value", raw), slog.String("error", err.Error()))
		} else {
			cfg.PriceBuckets = buckets
		}
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	rateRaw := v.GetString("INITIALIZE_RATE_LIMIT")
	rate, err := limiter.NewRateFromFormatted(rateRaw)
	if err != nil {
		slog.Warn("Invalid value for INITIALIZE_RATE_LIMIT, using default",
			slog.String("value", rateRaw), slog.String("default", defaultInitializeRateLimit))
		rate, _ = limiter.NewRateFromFormatted(defaultInitializeRateLimit)
	}
	cfg.InitializeRateLimit = rate

	if cfg.StoreBackend == BackendPostgres && cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}

	// Store connection settings are only required by the API process, see ValidateStore.
	if err := validator.New().StructExcept(cfg, storeFields...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

var storeFields = []string{"DatabaseURL", "MongoURI", "MongoDatabase", "MongoCollection"}

// ValidateStore checks that the connection settings of the selected backend are present.
func (c *Config) ValidateStore() error {
	if err := validator.New().StructPartial(c, storeFields...); err != nil {
		return fmt.Errorf("invalid store configuration: %w", err)
	}
	return nil
}

func durationOrDefault(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("Invalid duration, using default",
			slog.String("key", key), slog.String("value", raw), slog.String("default", fallback.String()))
		return fallback
	}
	return d
}
