package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	analyticsFile "github.com/laudwin/Dashlite-v5/internal/analytics/adapters/file"
	analyticsHttp "github.com/laudwin/Dashlite-v5/internal/analytics/adapters/http/fiber"
	analyticsPg "github.com/laudwin/Dashlite-v5/internal/analytics/adapters/postgres"
	analyticsPorts "github.com/laudwin/Dashlite-v5/internal/analytics/core/ports"
	analyticsUsecase "github.com/laudwin/Dashlite-v5/internal/analytics/core/usecase"

	ingestHttp "github.com/laudwin/Dashlite-v5/internal/ingest/adapters/http/fiber"
	ingestPg "github.com/laudwin/Dashlite-v5/internal/ingest/adapters/postgres"
	ingestUsecase "github.com/laudwin/Dashlite-v5/internal/ingest/core/usecase"

	"github.com/laudwin/Dashlite-v5/internal/config"
	applog "github.com/laudwin/Dashlite-v5/internal/log"
	"github.com/laudwin/Dashlite-v5/internal/storage"
	"github.com/laudwin/Dashlite-v5/internal/telemetry"

	_ "github.com/laudwin/Dashlite-v5/docs"
)

// @title Mentions Dashboard API
// @version 1.0
// @description Time-bucketed aggregation over social-media mention datasets.
// @BasePath /
func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Component: applog.ComponentApp,
		Output:    os.Stdout,
		JSON:      cfg.LogFormat == "json",
	})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", applog.FieldError, err)
		os.Exit(1)
	}

	metrics := telemetry.New()

	// DB connection, only when something needs it
	var db *sql.DB
	if cfg.PostgresDSN != "" {
		var err error
		db, err = openPostgres(cfg)
		if err != nil {
			logger.Error("failed to connect to postgres", applog.FieldError, err)
			os.Exit(1)
		}
		defer db.Close()

		if cfg.RunMigrations {
			if err := storage.RunMigrations(db); err != nil {
				logger.Error("failed to run migrations", applog.FieldError, err)
				os.Exit(1)
			}
			logger.WithComponent(applog.ComponentStorage).Info("migrations applied")
		}
	}

	// Dataset reader
	var reader analyticsPorts.DatasetReaderPort
	switch cfg.DataSource {
	case config.SourcePostgres:
		reader = analyticsPg.NewDatasetRepository(analyticsPg.NewSQLDB(db), metrics)
	default:
		reader = analyticsFile.NewDatasetReader(analyticsFile.Config{
			Dir:             cfg.DataDir,
			TimestampColumn: cfg.TimestampColumn,
			MeasureColumns:  cfg.MeasureColumns,
		}, logger, metrics)
	}
	logger.Info("dataset source configured", applog.FieldSource, cfg.DataSource)

	// Usecases
	analyticsHandler := analyticsHttp.NewAnalyticsHandler(
		analyticsUsecase.NewGetSeriesUseCase(reader),
		analyticsUsecase.NewGetChangeUseCase(reader),
		analyticsUsecase.NewGetSignalToNoiseUseCase(reader),
		analyticsUsecase.NewGetProfileUseCase(reader),
		analyticsUsecase.NewGetTotalsUseCase(reader),
	)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(applog.RequestLogger(logger))
	app.Use(metrics.Middleware())

	datasets := app.Group("/datasets/:dataset")
	datasets.Get("/series", analyticsHandler.GetSeries)
	datasets.Get("/change", analyticsHandler.GetChange)
	datasets.Get("/signal-to-noise", analyticsHandler.GetSignalToNoise)
	datasets.Get("/profile", analyticsHandler.GetProfile)
	datasets.Get("/totals", analyticsHandler.GetTotals)

	// ingest endpoints need a database to write to
	if db != nil {
		mentionRepository := ingestPg.NewMentionRepository(ingestPg.NewSQLDB(db))
		storeMentionUC := ingestUsecase.NewStoreMentionUseCase(mentionRepository, metrics)
		ingestHandler := ingestHttp.NewMentionHandler(storeMentionUC)

		app.Post("/events", ingestHandler.CreateMention)
		app.Post("/events/bulk", ingestHandler.BulkCreateMentions)
	} else {
		logger.Warn("POSTGRES_DSN is not set, ingest endpoints disabled")
	}

	app.Get("/internal/prometheus", metrics.Handler())

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("fiber stopped", applog.FieldError, err)
		}
	}()

	logger.Info("server started", "port", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("fiber shutdown error", applog.FieldError, err)
	}

	logger.Info("server exiting")
}

func openPostgres(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxOpenConns / 2)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
