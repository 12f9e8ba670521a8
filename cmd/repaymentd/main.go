package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/lendcircle/repayment-service/internal/application/usecase"
	"github.com/lendcircle/repayment-service/internal/domain/service"
	"github.com/lendcircle/repayment-service/internal/infrastructure/cache"
	"github.com/lendcircle/repayment-service/internal/infrastructure/config"
	"github.com/lendcircle/repayment-service/internal/infrastructure/kafka"
	pgRepo "github.com/lendcircle/repayment-service/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/lendcircle/repayment-service/internal/presentation/grpc"
	"github.com/lendcircle/repayment-service/internal/presentation/rest"
	pkgkafka "github.com/lendcircle/repayment-service/pkg/kafka"
	"github.com/lendcircle/repayment-service/pkg/observability"
	pkgpostgres "github.com/lendcircle/repayment-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load .env when present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "json"),
	})
	slog.SetDefault(logger)

	logger.Info("starting repayment-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Fee policy is validated once, at startup. A bad policy is a deploy
	// error, not something to limp along with.
	feePolicy, err := cfg.FeePolicy()
	if err != nil {
		logger.Error("invalid fee policy configuration", "error", err)
		os.Exit(1)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pgCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	planRepo := pgRepo.NewPlanRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := kafka.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	suggestionCache := cache.NewRedisSuggestionCache(redisClient, cfg.Redis.TTL, logger)

	feePolicies := config.NewStaticFeePolicyProvider(feePolicy)

	// Wire domain services and use cases.
	advisor := service.NewAffordabilityAdvisor()
	presets := service.NewPresetGenerator()
	feeCalc := service.NewPlatformFeeCalculator()

	createPlanUC := usecase.NewCreatePlanUseCase(planRepo, publisher)
	getPlanUC := usecase.NewGetPlanUseCase(planRepo)
	suggestUC := usecase.NewSuggestTermsUseCase(advisor, suggestionCache)
	presetsUC := usecase.NewGetPresetsUseCase(presets)
	quoteFeeUC := usecase.NewQuoteFeeUseCase(feeCalc, feePolicies)

	metrics := observability.NewMetrics(cfg.ServiceName)

	// gRPC server.
	handler := grpcPresentation.NewRepaymentHandler(
		createPlanUC, getPlanUC, suggestUC, presetsUC, quoteFeeUC, metrics, logger)
	grpcServer := grpcPresentation.NewServer(handler, logger, cfg.EnableReflection)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", observability.Handler())

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("repayment-service stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
