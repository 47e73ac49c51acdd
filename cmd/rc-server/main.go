package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/haiminhng/retail-console/internal/config"
	"github.com/haiminhng/retail-console/internal/http"
	"github.com/haiminhng/retail-console/internal/log"
	"github.com/haiminhng/retail-console/internal/repository"
	"github.com/haiminhng/retail-console/internal/seed"
	"github.com/haiminhng/retail-console/internal/service"
	"github.com/haiminhng/retail-console/internal/storage/memdb"
	"github.com/haiminhng/retail-console/internal/telemetry"
	"github.com/haiminhng/retail-console/pkg/cmdutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running retail console: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log   config.Log
		HTTP  config.HTTP
		Otel  config.Otel
		Store config.Store
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	store := memdb.NewStore()
	if cfg.Store.Seed {
		if err := seed.Apply(ctx, store, time.Now()); err != nil {
			return fmt.Errorf("error seeding store: %w", err)
		}
		logger.InfoContext(ctx, "store seeded with demo snapshot")
	}

	productRepository := repository.NewProductRepository(store)
	saleRepository := repository.NewSaleRepository(store)
	customerRepository := repository.NewCustomerRepository(store)

	catalogService := service.NewCatalogService(productRepository)
	customerService := service.NewCustomerService(customerRepository)
	saleService := service.NewSaleService(store, productRepository, saleRepository, customerRepository)
	analyticsService := service.NewAnalyticsService(store, cfg.Store.LowStockThreshold)

	svc := http.New(
		cfg.HTTP,
		logger,
		prometheus.DefaultRegisterer,
		catalogService,
		customerService,
		saleService,
		analyticsService,
	)
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}

	logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

	<-cmdutil.InterruptChan()

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "http service is stopped")

	return nil
}
