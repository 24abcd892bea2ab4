package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gorm.io/gorm"

	"github.com/bookhaven/backoffice/internal/catalog"
	cataloghttp "github.com/bookhaven/backoffice/internal/catalog/delivery/http"
	catalogdomain "github.com/bookhaven/backoffice/internal/catalog/domain"
	"github.com/bookhaven/backoffice/internal/catalog/seed"
	"github.com/bookhaven/backoffice/internal/order"
	orderdomain "github.com/bookhaven/backoffice/internal/order/domain"
	ordercommand "github.com/bookhaven/backoffice/internal/order/usecase/command"
	"github.com/bookhaven/backoffice/internal/staff"
	staffdomain "github.com/bookhaven/backoffice/internal/staff/domain"
	"github.com/bookhaven/backoffice/kafka"
	"github.com/bookhaven/backoffice/pkg/cache"
	"github.com/bookhaven/backoffice/pkg/config"
	"github.com/bookhaven/backoffice/pkg/database"
	"github.com/bookhaven/backoffice/pkg/logger"
	"github.com/bookhaven/backoffice/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting back-office service")

	// Tracing
	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Warn().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	// Database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Dedicated connection for the health endpoint, so probes do not
	// contend with the gorm pool.
	healthDB, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open health check connection")
	}
	defer healthDB.Close()

	// Migrations
	if err := db.AutoMigrate(
		&catalogdomain.Product{},
		&staffdomain.Staff{},
		&orderdomain.Order{},
		&orderdomain.OrderItem{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Catalog handler, with the redis cache when configured
	var catalogHandler = initCatalogHandler(cfg, db)

	// Staff handler
	staffHandler, err := staff.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize staff handler")
	}

	// Sale events, when brokers are configured
	var publisher ordercommand.SalePublisher
	if len(cfg.KafkaBrokers) > 0 {
		p, err := kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to initialize Kafka publisher, continuing without events")
		} else {
			defer p.Close()
			publisher = p
		}
	}

	// Order handler shares the catalog and staff repositories
	orderHandler, err := order.InitializeHTTPHandler(
		db,
		catalog.ProvideProductRepository(db),
		staff.ProvideStaffRepository(db),
		publisher,
	)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}

	// Baseline catalog entries
	if cfg.SeedCatalog {
		if err := seed.Catalog(catalog.ProvideProductRepository(db)); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to seed catalog")
		}
	}

	// Router
	router := mux.NewRouter()
	catalogHandler.RegisterRoutes(router)
	catalogHandler.RegisterHealthCheck(router, healthDB)
	staffHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := otelhttp.NewHandler(c.Handler(router), "http.server")

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shut down")
	}
}

func initCatalogHandler(cfg *config.Config, db *gorm.DB) *cataloghttp.ProductHandler {
	if cfg.RedisAddr != "" {
		rdb, err := cache.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to connect to redis, continuing without cache")
		} else {
			handler, err := catalog.InitializeHTTPHandlerWithCache(db, rdb)
			if err != nil {
				logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
			}
			logger.Logger.Info().Str("redis_addr", cfg.RedisAddr).Msg("Catalog cache enabled")
			return handler
		}
	}

	handler, err := catalog.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}
	return handler
}
