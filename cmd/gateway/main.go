package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cardworks/payment-gateway/internal/application"
	"github.com/cardworks/payment-gateway/internal/application/services"
	"github.com/cardworks/payment-gateway/internal/auth"
	"github.com/cardworks/payment-gateway/internal/config"
	"github.com/cardworks/payment-gateway/internal/infrastructure/bank"
	"github.com/cardworks/payment-gateway/internal/infrastructure/persistence/mongodb"
	"github.com/cardworks/payment-gateway/internal/interfaces/rest/handlers"
	"github.com/cardworks/payment-gateway/internal/interfaces/rest/middleware"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, &cfg.Mongo, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	initialBalance, err := decimal.NewFromString(cfg.Gateway.InitialBalance)
	if err != nil {
		logger.Error("invalid gateway initial balance", "error", err)
		os.Exit(1)
	}

	paymentRepo := mongodb.NewPaymentRepository(db)
	bankGateway := bank.NewSimulator(initialBalance)
	faults := application.NopFaultInjector{}

	authorizeService := services.NewAuthorizeService(paymentRepo, faults, logger)
	captureService := services.NewCaptureService(paymentRepo, bankGateway, faults, logger)
	refundService := services.NewRefundService(paymentRepo, bankGateway, faults, logger)
	voidService := services.NewVoidService(paymentRepo, logger)
	queryService := services.NewQueryService(paymentRepo)

	tokenIssuer := auth.NewTokenIssuer(&cfg.Auth)

	h := handlers.NewHandlers(
		authorizeService,
		captureService,
		refundService,
		voidService,
		queryService,
		tokenIssuer,
		logger,
	)

	mux := http.NewServeMux()
	h.Register(mux)

	idempotencyStore := cache.New(24*time.Hour, time.Hour)

	handler := http.Handler(mux)
	handler = middleware.Idempotency(idempotencyStore, logger)(handler)
	handler = middleware.Auth(tokenIssuer)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}

	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("database disconnect failed", "error", err)
	}

	logger.Info("server stopped")
}
