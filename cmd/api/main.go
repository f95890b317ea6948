package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"storefront-api/internal/app"
	"storefront-api/internal/config"
	"storefront-api/internal/events"
	"storefront-api/internal/observability"
	"storefront-api/internal/repository"
	"storefront-api/internal/service"
	"storefront-api/internal/ws"
	"storefront-api/pkg/database"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	// 2. Setup database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		logger.Error("migration failed", "err", err)
		os.Exit(1)
	}

	productRepo := repository.NewProductRepo(db)
	leadRepo := repository.NewLeadRepo(db)
	orderRepo := repository.NewOrderRepo(db)

	// 3. Seed the default catalog on first start
	if n, err := productRepo.SeedDefaults(context.Background()); err != nil {
		logger.Warn("catalog seed failed", "err", err)
	} else if n > 0 {
		logger.Info("catalog seeded", "products", n)
	}

	// 4. Event fan-out: websocket hub, metrics, optional Kafka
	wsHub := ws.NewHub()
	go wsHub.Run()

	metrics := observability.NewMetrics()
	publisher := events.Multi{wsHub, metrics}
	if cfg.KafkaEnabled() {
		publisher = append(publisher, events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic))
		logger.Info("kafka events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// 5. Wire services
	authService := service.NewAuthService(service.AdminCredentials{
		Username:     cfg.AdminUser,
		Password:     cfg.AdminPass,
		PasswordHash: cfg.AdminPassHash,
		Token:        cfg.AdminToken,
	})

	server := app.New(cfg, app.Services{
		Catalog:   service.NewCatalogService(productRepo, publisher),
		Leads:     service.NewLeadService(leadRepo, publisher),
		Orders:    service.NewOrderService(productRepo, orderRepo, publisher),
		Auth:      authService,
		Dashboard: service.NewDashboardService(productRepo, orderRepo, leadRepo, cfg.LowStockThreshold),
		Hub:       wsHub,
		Metrics:   metrics,
	})

	// 6. Serve with graceful shutdown
	go func() {
		logger.Info("storefront api listening", "addr", cfg.Addr(), "env", cfg.AppEnv, "db", cfg.DBDriver)
		if err := server.Listen(cfg.Addr()); err != nil {
			logger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	if err := server.Shutdown(); err != nil {
		logger.Error("server forced to shutdown", "err", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Warn("closing publishers", "err", err)
	}
	if err := database.Close(db); err != nil {
		logger.Warn("closing database", "err", err)
	}
	logger.Info("server exited")
}
