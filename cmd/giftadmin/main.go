package main

import (
	"context"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/giftmart/giftadmin/config"
	"github.com/giftmart/giftadmin/internal/auth"
	"github.com/giftmart/giftadmin/internal/backend"
	handler "github.com/giftmart/giftadmin/internal/handler/http"
	"github.com/giftmart/giftadmin/internal/middleware"
	"github.com/giftmart/giftadmin/internal/store"
	"github.com/giftmart/giftadmin/internal/worker"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const authTokenKey = "f53ac685bbceebd75043e6be2e06ee07"

// newLogger creates logger with log level
func newLogger(level string) (*zap.Logger, error) {

	loggerLvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl

	return loggerCfg.Build()
}

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keyHex := cfg.AuthTokenKey
	if keyHex == "" {
		keyHex = authTokenKey
	}
	tokenKey, err := hex.DecodeString(keyHex)
	if err != nil {
		logger.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey)

	// dependency injection
	backendClient := backend.NewClient(cfg.BackendAddr, backend.StaticToken(cfg.BackendToken))
	orderStore := store.New(backendClient, logger)
	orderHandler := handler.NewOrderHandler(orderStore, cfg.DefaultPageSize, cfg.MaxPageSize)

	// initial load; the dashboard starts from last-known-good state and
	// the worker retries if the backend is down
	if err := orderStore.Refresh(ctx, nil); err != nil {
		logger.Error("Error loading initial order set", zap.Error(err))
	}

	refreshWorker := worker.NewRefreshWorker(orderStore, cfg.RefreshInterval, logger)
	go refreshWorker.Run(ctx)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger))

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(middleware.Auth(token))
		group.Get("/api/admin/orders", orderHandler.ListOrders())
		group.Post("/api/admin/orders/refresh", orderHandler.RefreshOrders())
		group.Get("/api/admin/orders/stats", orderHandler.OrderStats())
		group.Get("/api/admin/orders/{id}/transitions", orderHandler.OrderTransitions())
		group.Post("/api/admin/orders/{id}/status", orderHandler.UpdateOrderStatus())
	})

	logger.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
